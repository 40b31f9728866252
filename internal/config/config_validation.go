// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexander Voronov

package config

import "time"

const (
	defaultHTTPAddress    = ":8080"
	defaultRequestTimeout = 15 * time.Second
)

// applyDefaults fills in defaults for optional settings after all sources
// have been merged.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants:
//   - the Steam API key must always be present;
//   - the Turnstile secret must be present in production mode, so that
//     challenge verification can never be silently skipped.
func (cfg *StructuredConfig) validate() error {
	if cfg.Steam.APIKey == "" {
		return ErrMissingSteamAPIKey
	}

	if cfg.App.IsProduction() && cfg.Turnstile.SecretKey == "" {
		return ErrMissingTurnstileSecret
	}

	return nil
}
