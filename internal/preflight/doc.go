// Package preflight provides readiness checks for the filesystem paths
// and the dataset endpoint a build depends on.
//
// These checks run in two contexts:
//   - The builder calls RunAll before downloading anything. If any check
//     fails, the build halts instead of wasting minutes on a doomed run.
//   - The CLI "marquee status" command uses the same checks to display
//     environment health alongside the cached artifact snapshot.
package preflight
