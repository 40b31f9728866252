// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexander Voronov

package models

import "encoding/json"

// SyncRequest is the body of POST /api/steam-sync.
//
// Client is kept as raw JSON on purpose: callers send anything from a proper
// array to nothing at all, and the endpoint treats every malformed variant as
// an empty manifest instead of rejecting the request.
type SyncRequest struct {
	// Profile is a free-form Steam profile reference: a bare SteamID64,
	// a /profiles/<id> URL, an /id/<vanity> URL, or a bare vanity name.
	Profile string `json:"profile"`

	// Client is the caller's achievement manifest, an array of
	// [ManifestEntry] objects. Absent or non-array values are treated as
	// an empty manifest.
	Client json.RawMessage `json:"client,omitempty"`

	// TurnstileToken is the optional proof-of-humanity token. Only checked
	// in production mode.
	TurnstileToken string `json:"turnstileToken,omitempty"`
}

// ManifestEntry maps a Steam achievement api-name to an opaque client key.
type ManifestEntry struct {
	APIName string `json:"apiname"`
	Key     string `json:"key"`
}

// Manifest decodes the raw client manifest. An absent field, a non-array
// value, or entries of the wrong shape all yield an empty manifest.
func (r SyncRequest) Manifest() []ManifestEntry {
	if len(r.Client) == 0 {
		return nil
	}

	var entries []ManifestEntry
	if err := json.Unmarshal(r.Client, &entries); err != nil {
		return nil
	}

	return entries
}

// SyncResult is the successful response of POST /api/steam-sync.
type SyncResult struct {
	// SteamID64 is the canonical 17-digit account identifier the profile
	// reference resolved to.
	SteamID64 string `json:"steamid64"`

	// Unlocked holds the client keys of achieved manifest entries, in the
	// order the stats API returned the achievements.
	Unlocked []string `json:"unlocked"`

	// Count is len(Unlocked).
	Count int `json:"count"`
}
