// Package build orchestrates a complete dataset build: cache gate,
// preflight, dump downloads, join and filter, name resolution, credit
// rewrite, artifact publication, and catalog bookkeeping.
//
// A build is all-or-nothing from the artifact's point of view. Rows are
// staged to a temporary file and renamed into place only after every
// stage succeeds, so a failed run never corrupts or half-replaces an
// existing artifact. Catalog recording is deliberately best-effort: a
// broken history database downgrades to warnings instead of failing a
// build that already has its data.
package build
