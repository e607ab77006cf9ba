// Package config loads, normalizes, and validates the hlsgrab TOML
// configuration.
package config
