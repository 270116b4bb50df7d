package titles

// Criteria selects which joined rows survive into the artifact.
type Criteria struct {
	TitleType    string
	MinStartYear int
	MinVotes     int
}

// Matches reports whether a joined row passes every relevance check.
// A null in any checked column fails that check, mirroring how the
// comparisons behave on the raw dumps.
func (c Criteria) Matches(row Row) bool {
	t := row.Title
	if t.IsAdult == nil || *t.IsAdult {
		return false
	}
	if t.TitleType == nil || *t.TitleType != c.TitleType {
		return false
	}
	if t.RuntimeMinutes == nil {
		return false
	}
	if t.StartYear == nil || int(*t.StartYear) < c.MinStartYear {
		return false
	}
	if row.Rating.NumVotes == nil || int(*row.Rating.NumVotes) < c.MinVotes {
		return false
	}
	return true
}

// Filter keeps the rows matching c, preserving input order.
func Filter(rows []Row, c Criteria) []Row {
	kept := make([]Row, 0, len(rows))
	for _, row := range rows {
		if c.Matches(row) {
			kept = append(kept, row)
		}
	}
	return kept
}
