package adapter

import "errors"

var (
	// ErrVanityNotResolved is returned when a vanity name cannot be resolved
	// to a canonical SteamID64.
	ErrVanityNotResolved = errors.New("could not resolve profile")

	// ErrStatsUnavailable is returned when the player achievements call
	// fails or the stats API reports an embedded error.
	ErrStatsUnavailable = errors.New("stats api request failed")
)
