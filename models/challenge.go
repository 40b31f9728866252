package models

// ChallengeResult is the outcome of a Turnstile challenge verification.
// Failures are data, not errors: the endpoint maps an unsuccessful result to
// a 400 response carrying Reason and ErrorCodes.
type ChallengeResult struct {
	Success    bool     `json:"success"`
	Reason     string   `json:"reason,omitempty"`
	ErrorCodes []string `json:"error_codes,omitempty"`
}
