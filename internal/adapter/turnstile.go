// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexander Voronov

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avoronov/steam-sync-relay/internal/config"
	"github.com/avoronov/steam-sync-relay/internal/logger"
	"github.com/avoronov/steam-sync-relay/models"
	"github.com/go-resty/resty/v2"
)

const defaultTurnstileVerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

type turnstileAdapter struct {
	client    *resty.Client
	secretKey string
	verifyURL string
	logger    *logger.Logger
}

// NewChallengeGateway constructs a ChallengeGateway backed by the Cloudflare
// Turnstile siteverify endpoint (or the override from cfg.VerifyURL).
func NewChallengeGateway(cfg config.Turnstile, timeout time.Duration, logger *logger.Logger) ChallengeGateway {
	verifyURL := cfg.VerifyURL
	if verifyURL == "" {
		verifyURL = defaultTurnstileVerifyURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().SetTimeout(timeout)

	return &turnstileAdapter{
		client:    cli,
		secretKey: cfg.SecretKey,
		verifyURL: verifyURL,
		logger:    logger,
	}
}

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

func (t *turnstileAdapter) Verify(ctx context.Context, token, remoteIP string) models.ChallengeResult {
	form := map[string]string{
		"secret":   t.secretKey,
		"response": token,
	}
	if remoteIP != "" {
		form["remoteip"] = remoteIP
	}

	resp, err := t.client.R().
		SetContext(ctx).
		SetFormData(form).
		Post(t.verifyURL)
	if err != nil {
		// the secret travels in the form body, not the URL, so err is safe to log
		t.logger.Err(err).Msg("turnstile siteverify request failed")
		return models.ChallengeResult{Reason: "Turnstile verification failed"}
	}
	if !resp.IsSuccess() {
		return models.ChallengeResult{
			Reason:     "Turnstile verification failed",
			ErrorCodes: []string{fmt.Sprintf("http_%d", resp.StatusCode())},
		}
	}

	var verdict siteverifyResponse
	if err = json.Unmarshal(resp.Body(), &verdict); err != nil {
		t.logger.Err(err).Msg("turnstile siteverify response is not parseable")
		return models.ChallengeResult{Reason: "Turnstile verification failed"}
	}
	if !verdict.Success {
		return models.ChallengeResult{
			Reason:     "Turnstile verification failed",
			ErrorCodes: verdict.ErrorCodes,
		}
	}

	return models.ChallengeResult{Success: true}
}
