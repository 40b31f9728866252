package service

import (
	"context"

	"github.com/avoronov/steam-sync-relay/models"
)

// SyncService resolves a profile reference, fetches its achievements, and
// translates them through the client manifest.
type SyncService interface {
	Sync(ctx context.Context, profile string, manifest []models.ManifestEntry) (models.SyncResult, error)
}

// ChallengeService gates requests behind the Turnstile challenge. Outside
// production mode verification always succeeds without a network call.
type ChallengeService interface {
	Verify(ctx context.Context, token, remoteIP string) models.ChallengeResult
}

// AppInfoService exposes build/version information about the running service.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
