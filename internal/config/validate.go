package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSource(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	if err := c.validatePipeline(); err != nil {
		return err
	}
	return c.validateCatalog()
}

func (c *Config) validateSource() error {
	parsed, err := url.Parse(c.Source.BaseURL)
	if err != nil {
		return fmt.Errorf("source.base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("source.base_url %q must use http or https", c.Source.BaseURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("source.base_url %q is missing a host", c.Source.BaseURL)
	}
	if c.Source.TimeoutSeconds <= 0 {
		return errors.New("source.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateCache() error {
	if strings.TrimSpace(c.Cache.Dir) == "" {
		return errors.New("cache.dir must be set")
	}
	name := c.Cache.Filename
	if name == "" {
		return errors.New("cache.filename must be set")
	}
	if name != filepath.Base(name) || name == "." || name == ".." {
		return fmt.Errorf("cache.filename %q must be a bare file name", name)
	}
	return nil
}

func (c *Config) validatePipeline() error {
	if c.Pipeline.ChunkSize <= 0 {
		return errors.New("pipeline.chunk_size must be positive")
	}
	if c.Pipeline.MinStartYear < 0 {
		return errors.New("pipeline.min_start_year must be >= 0")
	}
	if c.Pipeline.MinVotes < 0 {
		return errors.New("pipeline.min_votes must be >= 0")
	}
	if c.Pipeline.TitleType == "" {
		return errors.New("pipeline.title_type must be set")
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if c.Catalog.Enabled && strings.TrimSpace(c.Catalog.Path) == "" {
		return errors.New("catalog.path must be set when catalog.enabled is true")
	}
	return nil
}
