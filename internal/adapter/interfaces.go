package adapter

import (
	"context"

	"github.com/avoronov/steam-sync-relay/models"
)

// SteamGateway is the outbound port to the Steam Web API.
type SteamGateway interface {
	// ResolveVanityURL resolves a vanity name to a canonical SteamID64.
	// Failures wrap ErrVanityNotResolved and carry the vanity name, never
	// the API key.
	ResolveVanityURL(ctx context.Context, vanity string) (string, error)

	// FetchPlayerAchievements returns the achievement records for the given
	// account and the relay's fixed app id, in the order the stats API
	// returned them. A profile with no achievements data yields an empty
	// slice, not an error.
	FetchPlayerAchievements(ctx context.Context, steamID string) ([]models.AchievementRecord, error)
}

// ChallengeGateway verifies Turnstile tokens against the siteverify endpoint.
// Verification failures are encoded in the returned result, not as errors.
type ChallengeGateway interface {
	Verify(ctx context.Context, token, remoteIP string) models.ChallengeResult
}
