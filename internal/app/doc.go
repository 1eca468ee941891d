// Package app is the composition root for foodwagen.
//
// Run performs startup in a fixed order:
//
//  1. Load configuration (config file, then .env and FOODWAGEN_* variables)
//  2. Apply command-line overrides for the API base and log level
//  3. Open the log file through internal/logging
//  4. Read user preferences (theme, compact cards)
//  5. Build the food API client and the storefront controller
//  6. Start the TUI and block until the user quits or the context ends
//
// Only configuration and logger failures stop startup. Unreadable
// preferences fall back to defaults, and an unreachable API shows up as the
// load-failure banner inside the UI rather than as a startup error.
package app
