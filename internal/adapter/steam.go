// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexander Voronov

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/avoronov/steam-sync-relay/internal/config"
	"github.com/avoronov/steam-sync-relay/internal/logger"
	"github.com/avoronov/steam-sync-relay/models"
	"github.com/go-resty/resty/v2"
)

const (
	defaultSteamBaseURL = "https://api.steampowered.com"

	// steamAppID is the application whose achievements this relay
	// translates. The relay serves exactly one game, so the id is
	// compiled in rather than configured.
	steamAppID = "2947440"
)

type steamAdapter struct {
	client *resty.Client
	apiKey string
	logger *logger.Logger
}

// NewSteamGateway constructs a SteamGateway backed by the Steam Web API.
// An empty cfg.BaseURL selects the public endpoint; tests point it at a
// local httptest server.
func NewSteamGateway(cfg config.Steam, timeout time.Duration, logger *logger.Logger) SteamGateway {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultSteamBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)

	return &steamAdapter{client: cli, apiKey: cfg.APIKey, logger: logger}
}

type vanityEnvelope struct {
	Response struct {
		Success int    `json:"success"`
		SteamID string `json:"steamid"`
	} `json:"response"`
}

func (s *steamAdapter) ResolveVanityURL(ctx context.Context, vanity string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key":       s.apiKey,
			"vanityurl": vanity,
		}).
		Get("/ISteamUser/ResolveVanityURL/v1/")
	if err != nil {
		return "", fmt.Errorf("%w %q: %s", ErrVanityNotResolved, vanity, s.redact(err.Error()))
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("%w %q: http %d", ErrVanityNotResolved, vanity, resp.StatusCode())
	}

	var envelope vanityEnvelope
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return "", fmt.Errorf("%w %q: %s", ErrVanityNotResolved, vanity, s.redact(err.Error()))
	}
	if envelope.Response.Success != 1 || envelope.Response.SteamID == "" {
		return "", fmt.Errorf("%w %q", ErrVanityNotResolved, vanity)
	}

	return envelope.Response.SteamID, nil
}

type playerStatsEnvelope struct {
	PlayerStats *playerStats `json:"playerstats"`
}

type playerStats struct {
	Error        string          `json:"error"`
	Achievements json.RawMessage `json:"achievements"`
}

func (s *steamAdapter) FetchPlayerAchievements(ctx context.Context, steamID string) ([]models.AchievementRecord, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"appid":   steamAppID,
			"key":     s.apiKey,
			"steamid": steamID,
		}).
		Get("/ISteamUserStats/GetPlayerAchievements/v1/")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStatsUnavailable, s.redact(err.Error()))
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: http %d", ErrStatsUnavailable, resp.StatusCode())
	}

	var envelope playerStatsEnvelope
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStatsUnavailable, s.redact(err.Error()))
	}
	if envelope.PlayerStats == nil {
		return nil, fmt.Errorf("%w: no playerstats in response", ErrStatsUnavailable)
	}
	if envelope.PlayerStats.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrStatsUnavailable, envelope.PlayerStats.Error)
	}

	// The upstream schema varies: a profile with no stats for the app may
	// carry no achievements field at all, and some responses carry it as a
	// non-array value. Both mean "nothing unlocked", not a failure.
	achievements := make([]models.AchievementRecord, 0)
	if len(envelope.PlayerStats.Achievements) > 0 {
		if err = json.Unmarshal(envelope.PlayerStats.Achievements, &achievements); err != nil {
			s.logger.Warn().Str("steamid64", steamID).Msg("achievements field is not a list, treating as empty")
			return make([]models.AchievementRecord, 0), nil
		}
	}

	return achievements, nil
}

// redact strips the API key from diagnostic text. resty includes the full
// request URL in transport errors, so every error string derived from it
// passes through here before leaving the adapter.
func (s *steamAdapter) redact(msg string) string {
	if s.apiKey == "" {
		return msg
	}
	return strings.ReplaceAll(msg, s.apiKey, "[REDACTED]")
}
