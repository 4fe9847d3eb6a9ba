// Package config loads and validates the trisub TOML configuration.
//
// Load resolves the config path (explicit flag, then the user config dir,
// then a project-local trisub.toml), decodes it over the repository
// defaults, expands ~ in every path field, and validates the result. Other
// packages receive a fully normalized *Config and never re-check paths or
// suffix spellings themselves.
package config
