// Package config loads and validates the steam-sync-relay configuration.
//
// Values are merged from three sources (first non-zero value wins):
// environment variables, command-line flags, and an optional JSON file whose
// path is itself taken from the first two sources. Validation runs once at
// startup: a missing Steam API key is always fatal, and a missing Turnstile
// secret is fatal in production mode.
package config
