package names

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"marquee/internal/imdb"
	"marquee/internal/logging"
	"marquee/internal/textutil"
)

// ChunkSource streams people records in bounded batches.
type ChunkSource interface {
	PeopleChunks(ctx context.Context, chunkSize int) iter.Seq2[[]imdb.Person, error]
}

// Match pairs a person identifier with its primary name. Matches are
// recorded in the order the scan first encounters them, which later
// fixes the numbering of disambiguated duplicates.
type Match struct {
	ID   string
	Name string
}

// Resolver scans the people dump for a wanted identifier set.
type Resolver struct {
	chunkSize int
	sampler   *logging.ChunkSampler
	logger    *slog.Logger
}

// NewResolver returns a resolver reading chunkSize records per batch.
// A non-positive chunkSize falls back to the stock batch size.
func NewResolver(chunkSize int, logger *slog.Logger) *Resolver {
	if chunkSize <= 0 {
		chunkSize = imdb.DefaultChunkSize
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Resolver{
		chunkSize: chunkSize,
		sampler:   logging.NewChunkSampler(0),
		logger:    logging.NewComponentLogger(logger, "names"),
	}
}

// Resolve streams people chunks from source until every wanted
// identifier has a name or the dump is exhausted. Records missing a
// name are skipped; an identifier resolves to the first name seen for
// it. Identifiers never seen are reported as a warning because the
// credits that reference them will be silently thinner.
func (r *Resolver) Resolve(ctx context.Context, source ChunkSource, wanted map[string]struct{}) ([]Match, error) {
	if len(wanted) == 0 {
		logging.WarnWithContext(r.logger, "no people referenced by any credit list", "empty_relevant_set",
			logging.String(logging.FieldImpact, "director and writer columns will be empty"))
		return nil, nil
	}

	r.logger.Debug("scanning people dump in chunks",
		logging.Int("ids_wanted", len(wanted)),
		logging.Int("chunk_size", r.chunkSize))

	outstanding := make(map[string]struct{}, len(wanted))
	for id := range wanted {
		outstanding[id] = struct{}{}
	}

	matches := make([]Match, 0, len(wanted))
	chunkIndex := 0
	for chunk, err := range source.PeopleChunks(ctx, r.chunkSize) {
		if err != nil {
			return nil, err
		}
		chunkIndex++
		for _, p := range chunk {
			if p.PrimaryName == nil {
				continue
			}
			if _, ok := outstanding[p.Nconst]; !ok {
				continue
			}
			delete(outstanding, p.Nconst)
			matches = append(matches, Match{ID: p.Nconst, Name: *p.PrimaryName})
		}
		if r.sampler.ShouldLog(chunkIndex) {
			r.logger.Debug(fmt.Sprintf("processed %s rows; %s identifiers still missing",
				textutil.Count(chunkIndex*r.chunkSize), textutil.Count(len(outstanding))),
				logging.String(logging.FieldEventType, "scan_progress"))
		}
		if len(outstanding) == 0 {
			r.logger.Debug("found all relevant names; stopping early",
				logging.Int("chunks_read", chunkIndex))
			break
		}
	}

	if len(outstanding) > 0 {
		logging.WarnWithContext(r.logger, fmt.Sprintf("%s identifiers have no name entry", textutil.Count(len(outstanding))),
			"unresolved_references",
			logging.String(logging.FieldImpact, "affected credit lists will omit these people"))
	}
	r.logger.Debug(fmt.Sprintf("matched %s people rows", textutil.Count(len(matches))))
	return matches, nil
}
