package main

import (
	"time"
)

// roundDisplay keeps durations readable in tables and status lines.
const roundDisplay = time.Second

const tableStampLayout = "2006-01-02 15:04"

func formatStamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(tableStampLayout)
}

// truncateCell shortens long table cells so wide columns such as genre or
// director lists do not blow out the terminal. Counts runes, not bytes,
// because titles are frequently non-ASCII.
func truncateCell(value string, max int) string {
	if max <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

func derefOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
