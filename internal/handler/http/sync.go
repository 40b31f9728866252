// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexander Voronov

package http

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/avoronov/steam-sync-relay/internal/logger"
	"github.com/avoronov/steam-sync-relay/internal/utils"
	"github.com/avoronov/steam-sync-relay/models"
)

// steamSync handles POST /api/steam-sync: challenge verification first, then
// resolve, fetch, and intersect. Challenge failures are the caller's fault
// (400); anything that goes wrong downstream of verification is a 500 with
// the failure's message.
func (h *Handler) steamSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Missing profile"}, http.StatusBadRequest)
		return
	}

	profile := strings.TrimSpace(req.Profile)
	if profile == "" {
		log.Warn().Msg("request without profile")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Missing profile"}, http.StatusBadRequest)
		return
	}

	verdict := h.services.ChallengeService.Verify(ctx, req.TurnstileToken, clientIP(r))
	if !verdict.Success {
		log.Warn().
			Str("reason", verdict.Reason).
			Strs("error_codes", verdict.ErrorCodes).
			Msg("challenge verification rejected")

		response := models.ErrorResponse{Error: verdict.Reason}
		if len(verdict.ErrorCodes) > 0 {
			response.Details = verdict.ErrorCodes
		}
		utils.WriteJSON(w, response, http.StatusBadRequest)
		return
	}

	result, err := h.services.SyncService.Sync(ctx, profile, req.Manifest())
	if err != nil {
		log.Err(err).Msg("steam sync failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// steamSyncMissingProfile answers GET /api/steam-sync. A GET can never carry
// a profile, so the route exists only to reject the wrong method with the
// same message a profile-less POST would get.
func (h *Handler) steamSyncMissingProfile(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Error: "Missing profile"}, http.StatusBadRequest)
}

// clientIP extracts the caller's address for the remoteip hint of the
// challenge verifier. Proxy headers win over the socket address.
func clientIP(r *http.Request) string {
	if ip := r.Header.Get("CF-Connecting-IP"); ip != "" {
		return ip
	}
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
