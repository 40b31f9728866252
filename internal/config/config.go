// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexander Voronov

package config

import "time"

// StructuredConfig is the top-level configuration container for the
// steam-sync-relay service. It is populated by merging values from
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the deployment environment and
	// the service version exposed on /api/version.
	App App `envPrefix:"APP_"`

	// Steam holds credentials and endpoint settings for the Steam Web API.
	Steam Steam `envPrefix:"STEAM_"`

	// Turnstile holds settings for the Cloudflare Turnstile verification
	// service. Only consulted in production mode.
	Turnstile Turnstile `envPrefix:"TURNSTILE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Environment selects the deployment mode. The value "production"
	// enables Turnstile challenge verification; anything else bypasses it.
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// Version is the version string of the running service
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// IsProduction reports whether challenge verification is mandatory.
func (a App) IsProduction() bool {
	return a.Environment == "production"
}

// Steam holds Steam Web API access settings.
type Steam struct {
	// APIKey authenticates calls to the vanity-resolution and player-stats
	// endpoints. Required; the process refuses to start without it.
	// Must be kept confidential; outbound errors are redacted before use.
	// Env: STEAM_API_KEY
	APIKey string `env:"API_KEY"`

	// BaseURL overrides the Steam Web API base URL. Empty means the public
	// https://api.steampowered.com endpoint; tests point it at a local server.
	// Env: STEAM_BASE_URL
	BaseURL string `env:"BASE_URL"`
}

// Turnstile holds Cloudflare Turnstile verification settings.
type Turnstile struct {
	// SecretKey is the server-side Turnstile secret. Required when
	// App.Environment is "production"; unused otherwise.
	// Env: TURNSTILE_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// VerifyURL overrides the siteverify endpoint. Empty means the public
	// Cloudflare endpoint.
	// Env: TURNSTILE_VERIFY_URL
	VerifyURL string `env:"VERIFY_URL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format. Defaults to ":8080".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds each outbound HTTP call made while serving a
	// request (e.g. "15s"). Defaults to 15s.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the service configuration
// from all available sources in the following priority order (first non-zero
// value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig with defaults applied, or an
// error if any source fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
