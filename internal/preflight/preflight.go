package preflight

import (
	"context"
	"path/filepath"

	"marquee/internal/config"
)

// defaultMinFreeBytes is the space floor for the cache filesystem. The
// four dumps decompress through memory but the artifact plus catalog
// still need room, with margin for the temp file during publish.
const defaultMinFreeBytes = 2 << 30

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config.
// The builder refuses to start while any of them fail.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	results = append(results, CheckDirectoryAccess("Cache directory", cfg.Cache.Dir))

	// Catalog directory (only when it differs from the cache directory,
	// which the first check already covers).
	if cfg.Catalog.Enabled {
		if dir := filepath.Dir(cfg.Catalog.Path); dir != cfg.Cache.Dir {
			results = append(results, CheckDirectoryAccess("Catalog directory", dir))
		}
	}

	results = append(results, CheckDiskSpace("Free disk space", cfg.Cache.Dir, defaultMinFreeBytes))
	results = append(results, CheckSource(ctx, cfg.Source.BaseURL))

	return results
}

// Failures filters results down to the checks that did not pass.
func Failures(results []Result) []Result {
	var failed []Result
	for _, result := range results {
		if !result.Passed {
			failed = append(failed, result)
		}
	}
	return failed
}
