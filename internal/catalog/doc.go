// Package catalog records build-run history in a local SQLite database.
// Every build inserts a running row up front and settles it to
// succeeded or failed when it ends, so operators can ask which run
// produced the current artifact and how earlier attempts went. History
// is bookkeeping only: builds still succeed when the catalog is
// unavailable.
package catalog
