package config

const (
	defaultBaseURL        = "https://datasets.imdbws.com"
	defaultTimeoutSeconds = 300
	defaultCacheDir       = "~/.local/share/marquee"
	defaultArtifactName   = "imdb_movies.csv"
	defaultChunkSize      = 250_000
	defaultMinStartYear   = 1930
	defaultMinVotes       = 1000
	defaultTitleType      = "movie"
	defaultCatalogName    = "catalog.db"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Source: Source{
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Cache: Cache{
			Dir:      defaultCacheDir,
			Filename: defaultArtifactName,
		},
		Pipeline: Pipeline{
			ChunkSize:    defaultChunkSize,
			MinStartYear: defaultMinStartYear,
			MinVotes:     defaultMinVotes,
			TitleType:    defaultTitleType,
		},
		Catalog: Catalog{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
