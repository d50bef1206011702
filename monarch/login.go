package monarch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrMFARequired is returned by Login when the Monarch account has
// multi-factor authentication enabled; retry with a one-time code.
var ErrMFARequired = errors.New("multi-factor authentication code required")

// Login authenticates with email and password and returns a session token.
// totp is the one-time code, empty on the first attempt.
func Login(ctx context.Context, email, password, totp string) (string, error) {
	body := map[string]any{
		"username":       email,
		"password":       password,
		"trusted_device": true,
		"supports_mfa":   true,
	}
	if totp != "" {
		body["totp"] = totp
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, authURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Client-Platform", "web")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("cannot reach monarch: %w", err)
	}
	defer resp.Body.Close()
	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var out struct {
		Token     string `json:"token"`
		ErrorCode string `json:"error_code"`
		Detail    string `json:"detail"`
	}
	// The error payload is JSON too, parse before checking the status.
	if err := json.Unmarshal(content, &out); err != nil && resp.StatusCode == http.StatusOK {
		return "", fmt.Errorf("cannot parse login response: %w", err)
	}

	if out.ErrorCode == "MFA_REQUIRED" || out.ErrorCode == "EMAIL_OTP_REQUIRED" {
		return "", ErrMFARequired
	}
	if resp.StatusCode != http.StatusOK {
		if out.Detail != "" {
			return "", fmt.Errorf("login failed: %s", out.Detail)
		}
		return "", fmt.Errorf("login failed: %s", resp.Status)
	}
	if out.Token == "" {
		return "", fmt.Errorf("login response carries no token")
	}
	return out.Token, nil
}
