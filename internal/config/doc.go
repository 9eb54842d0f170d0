// Package config loads, normalizes, and validates isolang configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// ISOLANG_CATALOG_PATH. Language settings are checked against the code table
// so a typo in the fallback language fails at load time instead of silently
// producing empty results later.
package config
