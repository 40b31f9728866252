package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// settings are missing. Both are fatal at startup.
var (
	// ErrMissingSteamAPIKey indicates that no Steam Web API key was provided
	// by any configuration source.
	ErrMissingSteamAPIKey = errors.New("missing Steam API key (STEAM_API_KEY)")
	// ErrMissingTurnstileSecret indicates that production mode is active but
	// no Turnstile secret was provided, which would silently disable
	// challenge verification.
	ErrMissingTurnstileSecret = errors.New("missing Turnstile secret key (TURNSTILE_SECRET_KEY) in production mode")
)
