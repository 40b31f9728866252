// Package http implements the inbound HTTP API of the steam-sync-relay.
//
// A single business route, POST /api/steam-sync, verifies an optional
// Turnstile challenge and relays the request through the sync service. The
// package also serves GET /api/version and wires trace-id and request
// logging middleware around every route.
package http
