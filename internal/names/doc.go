// Package names resolves the person identifiers referenced by movie
// credit lists into display names. The people dump is far larger than
// the slice of it any build needs, so resolution streams the dump in
// chunks, keeps only referenced records, and stops as soon as every
// identifier has been seen. Shared names receive an occurrence suffix
// so credits stay distinguishable after identifiers are gone.
package names
