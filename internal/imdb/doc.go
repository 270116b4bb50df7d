// Package imdb streams the IMDb non-commercial dataset dumps over HTTP.
//
// Each dump is a gzip-compressed TSV file with a header row and the literal
// token \N for absent values. The client decodes rows as the body downloads,
// so a dump is never buffered whole. name.basics, the largest dump, is
// exposed as bounded chunks; breaking out of the chunk sequence aborts the
// download.
package imdb
