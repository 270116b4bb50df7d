package testsupport

import (
	"path/filepath"
	"testing"

	"marquee/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config rooted in a unique temp directory per test.
// The base URL is left empty; tests that download point it at a stub
// server with WithBaseURL.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Cache.Dir = filepath.Join(base, "cache")
	cfg.Catalog.Path = filepath.Join(base, "cache", "catalog.db")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithBaseURL points the dataset source at the given endpoint.
func WithBaseURL(url string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Source.BaseURL = url
	}
}

// WithChunkSize overrides the people scan batch size.
func WithChunkSize(size int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Pipeline.ChunkSize = size
	}
}

// WithoutCatalog disables build-run history recording.
func WithoutCatalog() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Catalog.Enabled = false
	}
}
