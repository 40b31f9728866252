package models

// ErrorResponse is the JSON error body returned by the HTTP API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}
