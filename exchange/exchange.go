// Package exchange performs the confidential-client half of the OAuth
// authorization-code flow: a single JSON POST to the provider's token
// endpoint, trading a short-lived code for an access token.
package exchange

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/rs/zerolog"
)

// Credentials is the confidential client identity presented to the provider.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// Valid reports whether both halves of the credential pair are configured.
func (c Credentials) Valid() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// tokenRequest is the JSON body sent to the provider's token endpoint.
type tokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Code         string `json:"code"`
}

// Client exchanges authorization codes against a single token endpoint.
// Calls are one-shot: no retry, bounded only by the configured timeout and
// the request context.
type Client struct {
	httpClient *http.Client
	tokenURL   string
	logger     zerolog.Logger
}

func New(tokenURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	httpClient := cleanhttp.DefaultPooledClient()
	httpClient.Timeout = timeout
	return &Client{
		httpClient: httpClient,
		tokenURL:   tokenURL,
		logger:     logger,
	}
}

// Exchange posts the authorization code and client credentials to the token
// endpoint and classifies the JSON response. Transport and decode failures
// come back as errors; a provider-level rejection is a Result, so callers can
// tell a rejected code apart from a broken wire.
func (c *Client) Exchange(ctx context.Context, creds Credentials, code string) (Result, error) {
	body, err := json.Marshal(tokenRequest{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Code:         code,
	})
	if err != nil {
		return Result{}, fmt.Errorf("[Exchange] failed to marshal token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("[Exchange] failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("[Exchange] token endpoint call failed: %w", err)
	}
	defer resp.Body.Close()

	var parsed tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Result{}, fmt.Errorf("[Exchange] failed to decode token response: %w", err)
	}

	result := parsed.classify()
	c.logger.Debug().Int("status", resp.StatusCode).Int("kind", int(result.Kind)).Msg("token endpoint responded")
	return result, nil
}
