// Package config loads, normalizes, and validates marquee configuration
// data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// MARQUEE_BASE_URL. The Config type centralizes every knob the CLI and the
// build pipeline need: dataset source, cache location, filter criteria, and
// catalog/logging settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
