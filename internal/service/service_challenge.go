// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexander Voronov

package service

import (
	"context"
	"strings"

	"github.com/avoronov/steam-sync-relay/internal/adapter"
	"github.com/avoronov/steam-sync-relay/internal/config"
	"github.com/avoronov/steam-sync-relay/internal/logger"
	"github.com/avoronov/steam-sync-relay/models"
)

// challengeService applies the mode-dependent half of challenge verification:
// the bypass outside production and the missing-token short-circuit. The
// actual siteverify call is delegated to the gateway.
type challengeService struct {
	gateway    adapter.ChallengeGateway
	production bool

	logger *logger.Logger
}

// NewChallengeService constructs a ChallengeService. The production/missing-
// secret combination is rejected at startup by config validation, so it can
// never reach this service.
func NewChallengeService(gateway adapter.ChallengeGateway, cfg config.App, logger *logger.Logger) ChallengeService {
	return &challengeService{
		gateway:    gateway,
		production: cfg.IsProduction(),
		logger:     logger,
	}
}

// Verify gates a request behind the Turnstile challenge.
//
// Outside production the challenge is bypassed entirely so local development
// needs neither a secret nor a token. In production an empty token fails
// without a network call; anything else is verified by the gateway.
func (c *challengeService) Verify(ctx context.Context, token, remoteIP string) models.ChallengeResult {
	if !c.production {
		return models.ChallengeResult{Success: true}
	}

	if strings.TrimSpace(token) == "" {
		return models.ChallengeResult{Reason: "Missing Turnstile token"}
	}

	return c.gateway.Verify(ctx, token, remoteIP)
}
