package names_test

import (
	"testing"

	"marquee/internal/names"
)

func TestDisambiguateSuffixesDuplicatesInMatchOrder(t *testing.T) {
	matches := []names.Match{
		{ID: "nm0000001", Name: "John Smith"},
		{ID: "nm0000002", Name: "Greta Yamamoto"},
		{ID: "nm0000003", Name: "John Smith"},
	}

	out := names.Disambiguate(matches)
	want := []string{"John Smith (1)", "Greta Yamamoto", "John Smith (2)"}
	for i, w := range want {
		if out[i].Name != w {
			t.Fatalf("name %d = %q, want %q", i, out[i].Name, w)
		}
	}
	if out[0].ID != "nm0000001" || out[2].ID != "nm0000003" {
		t.Fatalf("identifiers shuffled: %+v", out)
	}
}

func TestDisambiguateNumbersEveryOccurrence(t *testing.T) {
	matches := []names.Match{
		{ID: "nm0000001", Name: "Alex Chen"},
		{ID: "nm0000002", Name: "Alex Chen"},
		{ID: "nm0000003", Name: "Alex Chen"},
	}

	out := names.Disambiguate(matches)
	for i, want := range []string{"Alex Chen (1)", "Alex Chen (2)", "Alex Chen (3)"} {
		if out[i].Name != want {
			t.Fatalf("name %d = %q, want %q", i, out[i].Name, want)
		}
	}
}

func TestDisambiguateLeavesUniqueNamesAlone(t *testing.T) {
	matches := []names.Match{
		{ID: "nm0000001", Name: "Ingrid Duarte"},
		{ID: "nm0000002", Name: "Omar Haddad"},
	}

	out := names.Disambiguate(matches)
	if out[0].Name != "Ingrid Duarte" || out[1].Name != "Omar Haddad" {
		t.Fatalf("unique names were altered: %+v", out)
	}
}

func TestDisambiguateDoesNotMutateInput(t *testing.T) {
	matches := []names.Match{
		{ID: "nm0000001", Name: "Pat Doyle"},
		{ID: "nm0000002", Name: "Pat Doyle"},
	}

	names.Disambiguate(matches)
	if matches[0].Name != "Pat Doyle" || matches[1].Name != "Pat Doyle" {
		t.Fatalf("input slice mutated: %+v", matches)
	}
}

func TestDisambiguateEmptyInput(t *testing.T) {
	if out := names.Disambiguate(nil); len(out) != 0 {
		t.Fatalf("expected empty output, got %+v", out)
	}
}
