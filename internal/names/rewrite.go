package names

import (
	"strings"

	"marquee/internal/imdb"
)

// Lookup builds the identifier to display-name table from resolved
// matches. The first record wins when an identifier repeats.
func Lookup(matches []Match) map[string]string {
	table := make(map[string]string, len(matches))
	for _, m := range matches {
		if _, ok := table[m.ID]; !ok {
			table[m.ID] = m.Name
		}
	}
	return table
}

// RewriteList converts a comma separated identifier list into the
// corresponding display names. Tokens are trimmed, identifiers absent
// from the lookup are dropped, and a cell left with no names becomes
// null, the same representation the raw dumps use for missing credits.
func RewriteList(cell *string, lookup map[string]string) *string {
	if cell == nil {
		return nil
	}
	var resolved []string
	for _, token := range strings.Split(*cell, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if name, ok := lookup[token]; ok {
			resolved = append(resolved, name)
		}
	}
	if len(resolved) == 0 {
		return nil
	}
	joined := strings.Join(resolved, ",")
	return &joined
}

// RewriteCredits replaces the identifier lists on every movie with
// resolved display names, in place.
func RewriteCredits(movies []imdb.Movie, lookup map[string]string) {
	for i := range movies {
		movies[i].Directors = RewriteList(movies[i].Directors, lookup)
		movies[i].Writers = RewriteList(movies[i].Writers, lookup)
	}
}
