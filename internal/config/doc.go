// Package config loads foodwagen's settings.
//
// # Resolution order
//
// Load builds a Config in layers, each overriding the previous one:
//
//  1. Built-in defaults (the public mock API, a log file under
//     ~/.local/state/foodwagen, level "info")
//  2. The TOML file at the given path, or ~/.config/foodwagen/config.toml
//  3. FOODWAGEN_* keys from a .env file in the working directory
//  4. FOODWAGEN_* variables in the process environment
//
// Command-line flags are applied by the caller after Load returns.
//
// A missing config file or .env file is not an error. Blank values in
// either layer leave the previous value in place.
//
// # TOML Format
//
//	api_base = "https://6852821e0594059b23cdd834.mockapi.io"
//	log_file = "~/.local/state/foodwagen/foodwagen.log"
//	log_level = "info"
//
// # Environment
//
//	FOODWAGEN_API_BASE   overrides api_base
//	FOODWAGEN_LOG_FILE   overrides log_file
//	FOODWAGEN_LOG_LEVEL  overrides log_level
//
// Tilde expansion is applied to the config path and to log_file.
package config
