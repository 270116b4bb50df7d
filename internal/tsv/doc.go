// Package tsv implements streaming decode of the tab-separated dump format
// used by the IMDb dataset exports.
//
// The format is simple enough that encoding/csv is a poor fit: fields are
// never quoted, rows never span lines, and the literal token `\N` marks a
// null value. Reader scans one row at a time without whole-file buffering,
// projects the caller's requested columns by header name, and reports
// structural problems (missing columns, ragged rows) as *ParseError with the
// offending line number.
//
// Type coercion happens exactly once, through the Row accessor methods, so
// records leave this package fully typed. Callers never re-interpret cell
// text downstream.
package tsv
