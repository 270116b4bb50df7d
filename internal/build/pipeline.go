package build

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"marquee/internal/imdb"
	"marquee/internal/logging"
	"marquee/internal/names"
	"marquee/internal/textutil"
	"marquee/internal/titles"
)

type pipelineStats struct {
	peopleWanted     int
	peopleMatched    int
	peopleUnresolved int
}

// produce runs the in-memory pipeline: download the three title dumps,
// join and filter them, then resolve credit identifiers to names.
func (b *Builder) produce(ctx context.Context) ([]imdb.Movie, pipelineStats, error) {
	var stats pipelineStats

	// The three title dumps are independent of each other; only the
	// people scan depends on their combined output. A failed download
	// cancels the remaining ones.
	var (
		basics  []imdb.Title
		ratings []imdb.Rating
		crews   []imdb.Crew
	)
	b.logger.Debug("downloading title dumps")
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		basics, err = b.source.TitleBasics(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		ratings, err = b.source.TitleRatings(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		crews, err = b.source.TitleCrew(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, stats, err
	}

	b.logger.Debug("merging title tables")
	joined := titles.Join(basics, ratings, crews)
	b.logger.Debug("applying title filters", logging.Int("rows_joined", len(joined)))
	kept := titles.Filter(joined, titles.Criteria{
		TitleType:    b.cfg.Pipeline.TitleType,
		MinStartYear: b.cfg.Pipeline.MinStartYear,
		MinVotes:     b.cfg.Pipeline.MinVotes,
	})
	movies := titles.Movies(kept)

	b.logger.Debug("collecting director and writer ids", logging.Int("rows_kept", len(movies)))
	wanted := titles.CollectPeopleIDs(movies)
	stats.peopleWanted = len(wanted)
	b.logger.Debug(fmt.Sprintf("unique people ids collected: %s", textutil.Count(len(wanted))))

	resolver := names.NewResolver(b.cfg.Pipeline.ChunkSize, b.logger)
	matches, err := resolver.Resolve(ctx, b.source, wanted)
	if err != nil {
		return nil, stats, err
	}
	stats.peopleMatched = len(matches)
	stats.peopleUnresolved = len(wanted) - len(matches)

	if len(matches) > 0 {
		b.logger.Debug("disambiguating duplicate names")
		matches = names.Disambiguate(matches)
	} else if len(wanted) > 0 {
		b.logger.Debug("no relevant people found; skipping name disambiguation")
	}

	names.RewriteCredits(movies, names.Lookup(matches))
	return movies, stats, nil
}
