// Package config loads, normalizes, and validates reellog configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the REELLOG_DATA_DIR environment
// override. The Config type centralizes where the two movie list files live,
// how logs are written, and whether terminal output is colorized.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical log formats, and clear validation errors.
package config
