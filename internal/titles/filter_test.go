package titles_test

import (
	"testing"

	"marquee/internal/imdb"
	"marquee/internal/titles"
)

func passingRow(tconst string) titles.Row {
	return titles.Row{
		Title:  basicsRow(tconst, "Keeper"),
		Rating: imdb.Rating{Tconst: tconst, AverageRating: ptr(float32(7.2)), NumVotes: ptr(int32(5000))},
	}
}

func TestCriteriaMatches(t *testing.T) {
	criteria := titles.Criteria{TitleType: "movie", MinStartYear: 1930, MinVotes: 1000}

	tests := []struct {
		name   string
		mutate func(*titles.Row)
		want   bool
	}{
		{"rated feature film passes", func(*titles.Row) {}, true},
		{"adult title fails", func(r *titles.Row) { r.Title.IsAdult = ptr(true) }, false},
		{"null adult flag fails", func(r *titles.Row) { r.Title.IsAdult = nil }, false},
		{"non movie type fails", func(r *titles.Row) { r.Title.TitleType = ptr("tvSeries") }, false},
		{"null type fails", func(r *titles.Row) { r.Title.TitleType = nil }, false},
		{"null runtime fails", func(r *titles.Row) { r.Title.RuntimeMinutes = nil }, false},
		{"pre cutoff year fails", func(r *titles.Row) { r.Title.StartYear = ptr(int16(1929)) }, false},
		{"cutoff year passes", func(r *titles.Row) { r.Title.StartYear = ptr(int16(1930)) }, true},
		{"null year fails", func(r *titles.Row) { r.Title.StartYear = nil }, false},
		{"low vote count fails", func(r *titles.Row) { r.Rating.NumVotes = ptr(int32(999)) }, false},
		{"exact vote floor passes", func(r *titles.Row) { r.Rating.NumVotes = ptr(int32(1000)) }, true},
		{"null vote count fails", func(r *titles.Row) { r.Rating.NumVotes = nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := passingRow("tt0000001")
			tt.mutate(&row)
			if got := criteria.Matches(row); got != tt.want {
				t.Fatalf("Matches = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	criteria := titles.Criteria{TitleType: "movie", MinStartYear: 1930, MinVotes: 1000}

	rows := []titles.Row{passingRow("tt0000003"), passingRow("tt0000001"), passingRow("tt0000002")}
	rows[1].Title.RuntimeMinutes = nil

	kept := titles.Filter(rows, criteria)
	if len(kept) != 2 {
		t.Fatalf("expected 2 kept rows, got %d", len(kept))
	}
	if kept[0].Title.Tconst != "tt0000003" || kept[1].Title.Tconst != "tt0000002" {
		t.Fatalf("filter reordered rows: %q, %q", kept[0].Title.Tconst, kept[1].Title.Tconst)
	}
}

func TestMoviesProjectsArtifactColumns(t *testing.T) {
	row := passingRow("tt0000001")
	row.Crew = imdb.Crew{Tconst: "tt0000001", Directors: ptr("nm0000001,nm0000002"), Writers: nil}

	movies := titles.Movies([]titles.Row{row})
	if len(movies) != 1 {
		t.Fatalf("expected 1 movie, got %d", len(movies))
	}
	m := movies[0]
	if m.PrimaryTitle != "Keeper" || m.OriginalTitle != "Keeper" {
		t.Fatalf("titles not carried over: %+v", m)
	}
	if m.StartYear == nil || *m.StartYear != 1999 {
		t.Fatalf("start year not carried over: %+v", m.StartYear)
	}
	if m.Directors == nil || *m.Directors != "nm0000001,nm0000002" {
		t.Fatalf("directors cell not carried over: %+v", m.Directors)
	}
	if m.Writers != nil {
		t.Fatalf("expected null writers cell, got %q", *m.Writers)
	}
}

func TestMoviesNullTitleBecomesEmptyString(t *testing.T) {
	row := passingRow("tt0000001")
	row.Title.PrimaryTitle = nil

	movies := titles.Movies([]titles.Row{row})
	if movies[0].PrimaryTitle != "" {
		t.Fatalf("expected empty primary title, got %q", movies[0].PrimaryTitle)
	}
}
