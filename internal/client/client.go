// Package client implements the Gatherly client core: an API client
// that injects bearer tokens and tears down the session on 401, a
// session store synchronized with persistent credential storage, typed
// event and attendee operations, and the pure filtering helpers views
// render from.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gatherly/gatherly-go/internal/model"
)

// loginPath is exempt from the 401 teardown hook so that a failed
// login attempt is shown inline instead of forcing a redirect loop.
const loginPath = "/auth/login"

// TokenSource supplies the current bearer token, or "" when the client
// should make anonymous requests.
type TokenSource interface {
	Token() string
}

// Client is the single point of egress to the Gatherly backend. Every
// request carries the Authorization header when a token exists, and
// any 401 response from a non-login endpoint fires the unauthorized
// hook before the error is returned to the caller.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	onUnauthorized func()
}

// New creates a Client. baseURL should include the API prefix, e.g.
// "http://localhost:8080/api/v1". tokens may be nil for a client that
// only makes anonymous requests. onUnauthorized is invoked on any 401
// response outside the login endpoint; pass nil to disable teardown.
func New(baseURL string, httpClient *http.Client, tokens TokenSource, onUnauthorized func()) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		httpClient:     httpClient,
		tokens:         tokens,
		onUnauthorized: onUnauthorized,
	}
}

// Login authenticates against the backend and returns the issued token
// and user. It does not persist anything; that is the session store's job.
func (c *Client) Login(ctx context.Context, email, password string) (model.AuthResponse, error) {
	var resp model.AuthResponse
	err := c.do(ctx, http.MethodPost, loginPath, model.LoginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	return resp, err
}

// Register creates a new account and returns the created user. The
// backend does not issue a token here; call Login afterwards.
func (c *Client) Register(ctx context.Context, name, email, password string) (model.UserResponse, error) {
	var resp model.UserResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", model.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}, &resp)
	return resp, err
}

// do performs a single round trip. body is JSON-encoded when non-nil;
// out is JSON-decoded from a 2xx response when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && path != loginPath && c.onUnauthorized != nil {
		c.onUnauthorized()
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
