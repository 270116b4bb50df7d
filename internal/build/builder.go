package build

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"marquee/internal/catalog"
	"marquee/internal/config"
	"marquee/internal/imdb"
	"marquee/internal/logging"
	"marquee/internal/preflight"
	"marquee/internal/table"
	"marquee/internal/textutil"
)

// lockFileName is created inside the cache directory to serialize
// builds across processes.
const lockFileName = ".marquee-build.lock"

// Builder runs dataset builds against a configured source.
type Builder struct {
	cfg    *config.Config
	source imdb.Source
	logger *slog.Logger
}

// Result describes a finished build.
type Result struct {
	ArtifactPath string
	FromCache    bool
	RunID        string
	Rows         int
	Elapsed      time.Duration
}

// New constructs a builder from configuration. The dataset client is
// created from the configured base URL and timeout.
func New(cfg *config.Config, logger *slog.Logger) (*Builder, error) {
	if cfg == nil {
		return nil, errors.New("builder requires config")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	source, err := imdb.New(cfg.Source.BaseURL, cfg.SourceTimeout(), imdb.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("create dataset client: %w", err)
	}

	return &Builder{
		cfg:    cfg,
		source: source,
		logger: logging.NewComponentLogger(logger, "build"),
	}, nil
}

// Run produces the artifact unless a cached copy already satisfies the
// request. force rebuilds even when a cached artifact exists.
func (b *Builder) Run(ctx context.Context, force bool) (*Result, error) {
	artifactPath := b.cfg.ArtifactPath()

	if !force {
		if info, err := os.Stat(artifactPath); err == nil && !info.IsDir() {
			b.logger.Info("using cached artifact", logging.String("path", artifactPath))
			return &Result{ArtifactPath: artifactPath, FromCache: true}, nil
		}
	}

	if err := b.cfg.EnsureDirectories(); err != nil {
		return nil, err
	}

	lock := flock.New(filepath.Join(b.cfg.Cache.Dir, lockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire build lock: %w", err)
	}
	if !ok {
		return nil, errors.New("another build is already running")
	}
	defer func() { _ = lock.Unlock() }()

	if err := b.preflight(ctx); err != nil {
		return nil, err
	}

	start := time.Now()
	runID := uuid.NewString()
	history := b.beginHistory(ctx, runID, force, artifactPath)
	defer history.Close()

	b.logger.Info("building movie dataset, this can take a few minutes",
		logging.String(logging.FieldRunID, runID),
		logging.String("base_url", b.cfg.Source.BaseURL),
		logging.Bool("force", force))

	movies, stats, err := b.produce(ctx)
	if err != nil {
		history.fail(ctx, err)
		return nil, err
	}

	b.logger.Info("writing artifact", logging.String("path", artifactPath))
	if err := table.WriteFile(artifactPath, movies); err != nil {
		history.fail(ctx, err)
		return nil, err
	}

	var artifactBytes int64
	if info, statErr := os.Stat(artifactPath); statErr == nil {
		artifactBytes = info.Size()
	}

	history.complete(ctx, catalog.Summary{
		RowCount:         int64(len(movies)),
		ArtifactBytes:    artifactBytes,
		PeopleMatched:    int64(stats.peopleMatched),
		PeopleUnresolved: int64(stats.peopleUnresolved),
	})

	elapsed := time.Since(start)
	b.logger.Info(fmt.Sprintf("finished: %s rows, %d columns", textutil.Count(len(movies)), len(table.Columns)),
		logging.String(logging.FieldRunID, runID),
		logging.Duration("elapsed", elapsed))

	return &Result{
		ArtifactPath: artifactPath,
		RunID:        runID,
		Rows:         len(movies),
		Elapsed:      elapsed,
	}, nil
}

func (b *Builder) preflight(ctx context.Context) error {
	failures := preflight.Failures(preflight.RunAll(ctx, b.cfg))
	if len(failures) == 0 {
		return nil
	}
	details := make([]string, 0, len(failures))
	for _, failure := range failures {
		logging.ErrorWithContext(b.logger, "preflight check failed", "preflight_failure",
			logging.String("check", failure.Name),
			logging.String("detail", failure.Detail))
		details = append(details, fmt.Sprintf("%s: %s", failure.Name, failure.Detail))
	}
	return fmt.Errorf("preflight failed: %s", strings.Join(details, "; "))
}

// history wraps the optional catalog store so the pipeline can record
// outcomes without checking for nil at every call site.
type history struct {
	store  *catalog.Store
	runID  string
	logger *slog.Logger
}

func (b *Builder) beginHistory(ctx context.Context, runID string, force bool, artifactPath string) *history {
	h := &history{runID: runID, logger: b.logger}
	if !b.cfg.Catalog.Enabled {
		return h
	}

	store, err := catalog.Open(b.cfg)
	if err != nil {
		logging.WarnWithContext(b.logger, "catalog unavailable", "catalog_degraded",
			logging.String(logging.FieldImpact, "build will not be recorded in history"),
			logging.Error(err))
		return h
	}
	if _, err := store.Begin(ctx, runID, force, b.cfg.Source.BaseURL, artifactPath); err != nil {
		logging.WarnWithContext(b.logger, "failed to record build start", "catalog_degraded",
			logging.String(logging.FieldImpact, "build will not be recorded in history"),
			logging.Error(err))
		_ = store.Close()
		return h
	}
	h.store = store
	return h
}

func (h *history) complete(ctx context.Context, summary catalog.Summary) {
	if h.store == nil {
		return
	}
	if err := h.store.Complete(ctx, h.runID, summary); err != nil {
		logging.WarnWithContext(h.logger, "failed to record build success", "catalog_degraded",
			logging.String(logging.FieldImpact, "history will show this build as still running"),
			logging.Error(err))
	}
}

func (h *history) fail(ctx context.Context, cause error) {
	if h.store == nil {
		return
	}
	if err := h.store.Fail(ctx, h.runID, cause); err != nil {
		logging.WarnWithContext(h.logger, "failed to record build failure", "catalog_degraded",
			logging.String(logging.FieldImpact, "history will show this build as still running"),
			logging.Error(err))
	}
}

func (h *history) Close() {
	if h.store == nil {
		return
	}
	_ = h.store.Close()
}
