// Package config loads, normalizes, and validates application configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads the TOML settings file that controls where projects,
// presets, logs, and the task history database live, which encoder binary is
// used, and how logging behaves. Obtain settings through this package so
// downstream code always sees sanitized absolute paths and validated values.
//
// Note this is the tool's own configuration; the per-project file a user
// saves and reopens is the project package's JSON document, a separate format
// with its own compatibility rules.
package config
