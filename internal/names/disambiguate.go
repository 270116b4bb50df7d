package names

import "fmt"

// Disambiguate appends an occurrence counter to every name shared by
// more than one matched person, numbering duplicates in match order.
// All occurrences of a shared name get a suffix, so no ambiguous bare
// form survives. Unique names pass through untouched.
func Disambiguate(matches []Match) []Match {
	counts := make(map[string]int, len(matches))
	for _, m := range matches {
		counts[m.Name]++
	}

	seen := make(map[string]int)
	out := make([]Match, len(matches))
	for i, m := range matches {
		out[i] = m
		if counts[m.Name] < 2 {
			continue
		}
		seen[m.Name]++
		out[i].Name = fmt.Sprintf("%s (%d)", m.Name, seen[m.Name])
	}
	return out
}
