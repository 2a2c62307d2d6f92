// Package config loads, normalizes, and validates agenda configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// AGENDA_DB_PATH so CI automation can redirect the database without a config
// file. Struct-level rules are checked with go-playground/validator and
// reported using the same section.key names that appear in the TOML file.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical log formats, and clear validation errors.
package config
