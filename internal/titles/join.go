package titles

import "marquee/internal/imdb"

// Row is one title joined with its rating and crew credits. Crew is
// zero-valued when the title has no crew record.
type Row struct {
	Title  imdb.Title
	Rating imdb.Rating
	Crew   imdb.Crew
}

// Join merges the three dump slices on title identifier: basics with
// ratings as an inner join, the result with crew as a left join. Output
// order follows basics. When a dump repeats an identifier the first
// record wins.
func Join(basics []imdb.Title, ratings []imdb.Rating, crews []imdb.Crew) []Row {
	ratingByID := make(map[string]imdb.Rating, len(ratings))
	for _, r := range ratings {
		if _, ok := ratingByID[r.Tconst]; !ok {
			ratingByID[r.Tconst] = r
		}
	}
	crewByID := make(map[string]imdb.Crew, len(crews))
	for _, c := range crews {
		if _, ok := crewByID[c.Tconst]; !ok {
			crewByID[c.Tconst] = c
		}
	}

	rows := make([]Row, 0, min(len(basics), len(ratings)))
	for _, t := range basics {
		rating, ok := ratingByID[t.Tconst]
		if !ok {
			continue
		}
		rows = append(rows, Row{Title: t, Rating: rating, Crew: crewByID[t.Tconst]})
	}
	return rows
}
