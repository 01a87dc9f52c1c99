package services

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

// Overridable in tests
var turnstileVerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

// Bounded timeout so an unresponsive Cloudflare endpoint surfaces as a
// transport error instead of holding the request open.
var turnstileClient = &http.Client{Timeout: 10 * time.Second}

type TurnstileResponse struct {
	Success     bool      `json:"success"`
	ChallengeTS time.Time `json:"challenge_ts"`
	Hostname    string    `json:"hostname"`
	ErrorCodes  []string  `json:"error-codes"`
}

// VerifyTurnstileToken verifies the token with Cloudflare.
// A (false, nil) return means the service answered and rejected the token;
// a non-nil error means the verification call itself failed.
func VerifyTurnstileToken(token, secretKey, ip string) (bool, error) {
	if token == "" || secretKey == "" {
		return false, fmt.Errorf("missing token or secret key")
	}

	resp, err := turnstileClient.PostForm(turnstileVerifyURL, url.Values{
		"secret":   {secretKey},
		"response": {token},
		"remoteip": {ip},
	})
	if err != nil {
		return false, fmt.Errorf("failed to verify token: %w", err)
	}
	defer resp.Body.Close()

	var result TurnstileResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("failed to decode turnstile response: %w", err)
	}

	if !result.Success {
		log.Printf("[WARNING] Turnstile rejected token, error codes: %v", result.ErrorCodes)
		return false, nil
	}

	return true, nil
}
