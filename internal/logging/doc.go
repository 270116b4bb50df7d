// Package logging assembles the structured slog loggers used across
// marquee.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes attribute helpers so every component tags log lines
// the same way. The package also provides a no-op logger for tests and for
// wiring code that cannot fail, plus a sampler that keeps chunk-scan
// progress logs readable.
package logging
