// Package config loads and validates keysmith's TOML configuration.
//
// Configuration is resolved from an explicit --config path, then
// ~/.config/keysmith/config.toml, then keysmith.toml in the working
// directory; defaults apply when no file exists. Loading normalizes all
// path fields (~ expansion, absolute paths) before validation so the
// rest of the program never re-resolves paths.
package config
