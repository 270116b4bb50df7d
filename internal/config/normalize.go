package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeSource()
	if err := c.normalizeCache(); err != nil {
		return err
	}
	c.normalizePipeline()
	if err := c.normalizeCatalog(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeSource() {
	c.Source.BaseURL = strings.TrimSpace(c.Source.BaseURL)
	if c.Source.BaseURL == "" {
		if value, ok := os.LookupEnv("MARQUEE_BASE_URL"); ok {
			c.Source.BaseURL = strings.TrimSpace(value)
		}
	}
	if c.Source.BaseURL == "" {
		c.Source.BaseURL = defaultBaseURL
	}
	c.Source.BaseURL = strings.TrimRight(c.Source.BaseURL, "/")
	if c.Source.TimeoutSeconds == 0 {
		c.Source.TimeoutSeconds = defaultTimeoutSeconds
	}
}

func (c *Config) normalizeCache() error {
	var err error
	if strings.TrimSpace(c.Cache.Dir) == "" {
		c.Cache.Dir = defaultCacheDir
	}
	if c.Cache.Dir, err = expandPath(c.Cache.Dir); err != nil {
		return fmt.Errorf("cache.dir: %w", err)
	}
	c.Cache.Filename = strings.TrimSpace(c.Cache.Filename)
	if c.Cache.Filename == "" {
		c.Cache.Filename = defaultArtifactName
	}
	return nil
}

func (c *Config) normalizePipeline() {
	if c.Pipeline.ChunkSize == 0 {
		c.Pipeline.ChunkSize = defaultChunkSize
	}
	if c.Pipeline.MinStartYear == 0 {
		c.Pipeline.MinStartYear = defaultMinStartYear
	}
	if c.Pipeline.MinVotes == 0 {
		c.Pipeline.MinVotes = defaultMinVotes
	}
	c.Pipeline.TitleType = strings.TrimSpace(c.Pipeline.TitleType)
	if c.Pipeline.TitleType == "" {
		c.Pipeline.TitleType = defaultTitleType
	}
}

func (c *Config) normalizeCatalog() error {
	var err error
	if strings.TrimSpace(c.Catalog.Path) == "" {
		c.Catalog.Path = filepath.Join(c.Cache.Dir, defaultCatalogName)
	}
	if c.Catalog.Path, err = expandPath(c.Catalog.Path); err != nil {
		return fmt.Errorf("catalog.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.File = strings.TrimSpace(c.Logging.File)
	if c.Logging.File != "" {
		expanded, err := expandPath(c.Logging.File)
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}
