package authsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is a client for the authd service. The zero value is not usable;
// construct one with NewClient.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new auth service client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Signup registers a new user. On success the returned envelope carries the
// created username in Data.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*Envelope, error) {
	return c.doJSON(ctx, http.MethodPost, "/api/v1/signup", req, "")
}

// Signin verifies credentials and returns an envelope whose Token field holds
// the signed bearer token.
func (c *Client) Signin(ctx context.Context, req SigninRequest) (*Envelope, error) {
	return c.doJSON(ctx, http.MethodPost, "/api/v1/signin", req, "")
}

// Signout acknowledges a signout. The service is stateless, so the only real
// effect is that the caller should discard the token.
func (c *Client) Signout(ctx context.Context, token string) (*Envelope, error) {
	return c.doJSON(ctx, http.MethodPost, "/api/v1/signout", nil, token)
}

// Me returns the identity resolved from the bearer token.
func (c *Client) Me(ctx context.Context, token string) (*Envelope, error) {
	return c.doJSON(ctx, http.MethodGet, "/api/v1/me", nil, token)
}

// doJSON performs a request with an optional JSON body and bearer token,
// decoding the uniform response envelope. Non-2xx responses are returned as
// *APIError.
func (c *Client) doJSON(
	ctx context.Context,
	method, path string,
	body any,
	token string,
) (*Envelope, error) {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("authsdk: encode request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("authsdk: create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("authsdk: send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("authsdk: read response: %w", err)
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("authsdk: decode response (HTTP %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode:  resp.StatusCode,
			Message:     env.Message,
			FieldErrors: env.Errors,
		}
	}

	return &env, nil
}
