// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexander Voronov

package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/avoronov/steam-sync-relay/internal/adapter"
	"github.com/avoronov/steam-sync-relay/internal/logger"
	"github.com/avoronov/steam-sync-relay/models"
)

// Profile references arrive in four shapes: a bare SteamID64, a full
// /profiles/<id> URL, a full /id/<vanity> URL, or a bare vanity name.
// The first two resolve locally; the last two go through the vanity API.
var (
	steamID64Pattern   = regexp.MustCompile(`^\d{17}$`)
	profilesURLPattern = regexp.MustCompile(`(?i)/profiles/(\d{17})`)
	vanityURLPattern   = regexp.MustCompile(`(?i)/id/([^/?#]+)`)
)

// syncService is the concrete implementation of SyncService. It composes the
// Steam gateway's two calls and performs the manifest intersection; it holds
// no state across requests.
type syncService struct {
	steam adapter.SteamGateway

	logger *logger.Logger
}

// NewSyncService constructs a SyncService backed by the given Steam gateway.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewSyncService(steam adapter.SteamGateway, logger *logger.Logger) SyncService {
	return &syncService{steam: steam, logger: logger}
}

// Sync resolves profile to a canonical SteamID64, fetches that account's
// achievements, and returns the client keys of achieved manifest entries in
// the order the stats API returned them.
//
// Resolution and fetch failures propagate unchanged, so the caller sees the
// gateway's sentinel errors (adapter.ErrVanityNotResolved,
// adapter.ErrStatsUnavailable). The returned Unlocked slice is never nil.
func (s *syncService) Sync(ctx context.Context, profile string, manifest []models.ManifestEntry) (models.SyncResult, error) {
	log := logger.FromContext(ctx)

	steamID, err := s.resolveProfile(ctx, profile)
	if err != nil {
		log.Err(err).Msg("profile resolution failed")
		return models.SyncResult{}, err
	}

	achievements, err := s.steam.FetchPlayerAchievements(ctx, steamID)
	if err != nil {
		log.Err(err).Str("steamid64", steamID).Msg("achievement fetch failed")
		return models.SyncResult{}, err
	}

	// Last manifest entry wins for a duplicated apiname.
	keysByAPIName := make(map[string]string, len(manifest))
	for _, entry := range manifest {
		keysByAPIName[entry.APIName] = entry.Key
	}

	unlocked := make([]string, 0, len(manifest))
	for _, achievement := range achievements {
		if achievement.Achieved != 1 {
			continue
		}
		if key, ok := keysByAPIName[achievement.APIName]; ok {
			unlocked = append(unlocked, key)
		}
	}

	log.Debug().
		Str("steamid64", steamID).
		Int("achievements", len(achievements)).
		Int("unlocked", len(unlocked)).
		Msg("sync completed")

	return models.SyncResult{
		SteamID64: steamID,
		Unlocked:  unlocked,
		Count:     len(unlocked),
	}, nil
}

// resolveProfile normalizes a free-form profile reference into a canonical
// 17-digit SteamID64. The first matching rule wins; only vanity names reach
// the network.
func (s *syncService) resolveProfile(ctx context.Context, profile string) (string, error) {
	trimmed := strings.TrimSpace(profile)

	if steamID64Pattern.MatchString(trimmed) {
		return trimmed, nil
	}

	if match := profilesURLPattern.FindStringSubmatch(trimmed); match != nil {
		return match[1], nil
	}

	if match := vanityURLPattern.FindStringSubmatch(trimmed); match != nil {
		return s.steam.ResolveVanityURL(ctx, match[1])
	}

	return s.steam.ResolveVanityURL(ctx, trimmed)
}
