// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexander Voronov

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/avoronov/steam-sync-relay/internal/adapter"
	"github.com/avoronov/steam-sync-relay/internal/logger"
	"github.com/avoronov/steam-sync-relay/internal/mock"
	"github.com/avoronov/steam-sync-relay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSyncSvc(t *testing.T, ctrl *gomock.Controller) (*syncService, *mock.MockSteamGateway) {
	t.Helper()
	mockSteam := mock.NewMockSteamGateway(ctrl)
	svc := NewSyncService(mockSteam, logger.Nop()).(*syncService)
	return svc, mockSteam
}

func TestResolveProfile_BareSteamID64(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestSyncSvc(t, ctrl) // no EXPECT: any gateway call fails the test
	ctx := context.Background()

	steamID, err := svc.resolveProfile(ctx, "76561197960287930")
	require.NoError(t, err)
	assert.Equal(t, "76561197960287930", steamID)

	// surrounding whitespace is tolerated
	steamID, err = svc.resolveProfile(ctx, "  76561197960287930\n")
	require.NoError(t, err)
	assert.Equal(t, "76561197960287930", steamID)
}

func TestResolveProfile_ProfilesURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name    string
		profile string
	}{
		{"plain", "https://steamcommunity.com/profiles/76561197960287930"},
		{"trailing slash", "https://steamcommunity.com/profiles/76561197960287930/"},
		{"mixed case", "HTTPS://STEAMCOMMUNITY.COM/PROFILES/76561197960287930"},
		{"query string", "https://steamcommunity.com/profiles/76561197960287930?tab=achievements"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steamID, err := svc.resolveProfile(ctx, tt.profile)
			require.NoError(t, err)
			assert.Equal(t, "76561197960287930", steamID)
		})
	}
}

func TestResolveProfile_VanityURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSteam := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	// the token between /id/ and the next separator is what gets resolved
	mockSteam.EXPECT().
		ResolveVanityURL(ctx, "gabelogannewell").
		Return("76561197960287930", nil).
		Times(3)

	for _, profile := range []string{
		"https://steamcommunity.com/id/gabelogannewell",
		"https://steamcommunity.com/id/gabelogannewell/",
		"https://steamcommunity.com/ID/gabelogannewell?l=en#games",
	} {
		steamID, err := svc.resolveProfile(ctx, profile)
		require.NoError(t, err)
		assert.Equal(t, "76561197960287930", steamID)
	}
}

func TestResolveProfile_BareVanityName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSteam := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	mockSteam.EXPECT().
		ResolveVanityURL(ctx, "gabelogannewell").
		Return("76561197960287930", nil)

	steamID, err := svc.resolveProfile(ctx, " gabelogannewell ")
	require.NoError(t, err)
	assert.Equal(t, "76561197960287930", steamID)
}

func TestResolveProfile_TooShortNumericGoesToVanity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSteam := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	// 16 digits is not a SteamID64; it is treated as a vanity name
	mockSteam.EXPECT().
		ResolveVanityURL(ctx, "7656119796028793").
		Return("", adapter.ErrVanityNotResolved)

	_, err := svc.resolveProfile(ctx, "7656119796028793")
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrVanityNotResolved)
}

func TestSync_OrderedIntersection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSteam := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	achievements := []models.AchievementRecord{
		{APIName: "A", Achieved: 1},
		{APIName: "B", Achieved: 0},
		{APIName: "C", Achieved: 1},
	}
	manifest := []models.ManifestEntry{
		{APIName: "A", Key: "k1"},
		{APIName: "C", Key: "k3"},
	}

	mockSteam.EXPECT().FetchPlayerAchievements(ctx, "76561197960287930").Return(achievements, nil)

	result, err := svc.Sync(ctx, "76561197960287930", manifest)

	require.NoError(t, err)
	assert.Equal(t, "76561197960287930", result.SteamID64)
	assert.Equal(t, []string{"k1", "k3"}, result.Unlocked)
	assert.Equal(t, 2, result.Count)
}

func TestSync_AchievedWithoutManifestEntryIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSteam := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	achievements := []models.AchievementRecord{
		{APIName: "UNMAPPED", Achieved: 1},
		{APIName: "A", Achieved: 1},
	}
	manifest := []models.ManifestEntry{{APIName: "A", Key: "k1"}}

	mockSteam.EXPECT().FetchPlayerAchievements(ctx, "76561197960287930").Return(achievements, nil)

	result, err := svc.Sync(ctx, "76561197960287930", manifest)

	require.NoError(t, err)
	assert.Equal(t, []string{"k1"}, result.Unlocked)
	assert.Equal(t, 1, result.Count)
}

func TestSync_DuplicateAPINameLastWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSteam := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	achievements := []models.AchievementRecord{{APIName: "A", Achieved: 1}}
	manifest := []models.ManifestEntry{
		{APIName: "A", Key: "old"},
		{APIName: "A", Key: "new"},
	}

	mockSteam.EXPECT().FetchPlayerAchievements(ctx, "76561197960287930").Return(achievements, nil)

	result, err := svc.Sync(ctx, "76561197960287930", manifest)

	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, result.Unlocked)
}

func TestSync_EmptyManifest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSteam := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	achievements := []models.AchievementRecord{{APIName: "A", Achieved: 1}}
	mockSteam.EXPECT().FetchPlayerAchievements(ctx, "76561197960287930").Return(achievements, nil)

	result, err := svc.Sync(ctx, "76561197960287930", nil)

	require.NoError(t, err)
	assert.NotNil(t, result.Unlocked, "unlocked must serialize as [] rather than null")
	assert.Empty(t, result.Unlocked)
	assert.Zero(t, result.Count)
}

func TestSync_ResolutionErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSteam := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	mockSteam.EXPECT().
		ResolveVanityURL(ctx, "nobody").
		Return("", adapter.ErrVanityNotResolved)

	_, err := svc.Sync(ctx, "nobody", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrVanityNotResolved)
}

func TestSync_FetchErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSteam := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	statsErr := errors.New("stats api request failed: Profile is not public")
	mockSteam.EXPECT().FetchPlayerAchievements(ctx, "76561197960287930").Return(nil, statsErr)

	_, err := svc.Sync(ctx, "76561197960287930", nil)

	require.Error(t, err)
	assert.Equal(t, statsErr, err)
}

func TestSync_VanityResolvedThenFetched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSteam := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockSteam.EXPECT().ResolveVanityURL(ctx, "gabelogannewell").Return("76561197960287930", nil),
		mockSteam.EXPECT().FetchPlayerAchievements(ctx, "76561197960287930").
			Return([]models.AchievementRecord{{APIName: "A", Achieved: 1}}, nil),
	)

	result, err := svc.Sync(ctx, "https://steamcommunity.com/id/gabelogannewell", []models.ManifestEntry{{APIName: "A", Key: "k1"}})

	require.NoError(t, err)
	assert.Equal(t, "76561197960287930", result.SteamID64)
	assert.Equal(t, []string{"k1"}, result.Unlocked)
}
