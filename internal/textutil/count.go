package textutil

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// countPrinter groups digits the way English locales do (1,234,567).
var countPrinter = message.NewPrinter(language.English)

// Count renders n with thousands separators. Row and identifier counts in
// the datasets run into the millions, so raw %d output is hard to scan.
func Count(n int) string {
	return countPrinter.Sprintf("%d", n)
}

// Count64 is Count for 64-bit values such as byte totals.
func Count64(n int64) string {
	return countPrinter.Sprintf("%d", n)
}
