package titles

import (
	"strings"

	"marquee/internal/imdb"
)

// CollectPeopleIDs gathers every distinct person identifier referenced
// by the director and writer credit lists. Tokens are trimmed and empty
// entries dropped, so "nm0001, ,nm0002" contributes two identifiers.
func CollectPeopleIDs(movies []imdb.Movie) map[string]struct{} {
	ids := make(map[string]struct{})
	for _, m := range movies {
		addPeopleIDs(ids, m.Directors)
		addPeopleIDs(ids, m.Writers)
	}
	return ids
}

func addPeopleIDs(ids map[string]struct{}, cell *string) {
	if cell == nil {
		return
	}
	for _, token := range strings.Split(*cell, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		ids[token] = struct{}{}
	}
}
