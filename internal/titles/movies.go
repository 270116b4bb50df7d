package titles

import "marquee/internal/imdb"

// Movies projects joined rows onto the artifact schema. Director and
// writer cells still hold raw person identifier lists at this point;
// the names package rewrites them before the table is written.
func Movies(rows []Row) []imdb.Movie {
	movies := make([]imdb.Movie, 0, len(rows))
	for _, row := range rows {
		movies = append(movies, imdb.Movie{
			PrimaryTitle:   stringValue(row.Title.PrimaryTitle),
			OriginalTitle:  stringValue(row.Title.OriginalTitle),
			StartYear:      row.Title.StartYear,
			RuntimeMinutes: row.Title.RuntimeMinutes,
			Genres:         row.Title.Genres,
			AverageRating:  row.Rating.AverageRating,
			NumVotes:       row.Rating.NumVotes,
			Directors:      row.Crew.Directors,
			Writers:        row.Crew.Writers,
		})
	}
	return movies
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
