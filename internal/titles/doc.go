// Package titles combines the per-dataset dump slices into movie rows.
// Basics join inner with ratings and left with crew credits, then a
// relevance filter keeps the rated feature films that belong in the
// artifact.
package titles
