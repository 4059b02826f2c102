// Package api is the typed client for the remote booking REST API. It owns
// bearer-credential attachment, transparent access-token refresh on 401 and
// error normalization; every feature service talks to the backend through it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	httpclient "github.com/viebus/viebus/internal/pkg/http"
	"github.com/viebus/viebus/internal/pkg/logger"
	"github.com/viebus/viebus/internal/pkg/models"
	"github.com/viebus/viebus/internal/pkg/storage"
)

const refreshPath = "/auth/token/refresh/"

// Client performs HTTP calls against the booking API. Authenticated calls
// attach the stored access token; a 401 with a token present triggers one
// refresh-and-retry. Refreshes are single-flight: concurrent callers that
// observe a 401 while a refresh is outstanding await the same result.
type Client struct {
	http  *httpclient.Client
	store storage.Store
	sf    singleflight.Group
}

// NewClient creates an API client over the configured base URL and the
// persisted session store.
func NewClient(cfg models.APIConfig, store storage.Store) *Client {
	return &Client{
		http:  httpclient.NewClient(cfg.BaseURL, time.Duration(cfg.Timeout)*time.Second),
		store: store,
	}
}

type requestOptions struct {
	public bool
}

// Option configures a single request.
type Option func(*requestOptions)

// Public marks a request as unauthenticated: no bearer credential is
// attached and a 401 never triggers a refresh.
func Public() Option {
	return func(o *requestOptions) { o.public = true }
}

// Request performs one API call. body is JSON-encoded when non-nil; a 2xx
// response is decoded into out when out is non-nil. Non-2xx responses are
// returned as *APIError carrying the server status and raw payload.
func (c *Client) Request(ctx context.Context, method, path string, body, out interface{}, opts ...Option) error {
	options := requestOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	token := ""
	if !options.public {
		token = c.store.AccessToken()
	}

	status, respBody, err := c.do(ctx, method, path, body, token)
	if err != nil {
		return err
	}

	// Expired access token: refresh once and retry with the new token.
	if status == http.StatusUnauthorized && token != "" {
		if refreshErr := c.refreshAccessToken(ctx); refreshErr != nil {
			// Session already purged; surface the original 401.
			return newAPIError(status, respBody)
		}
		status, respBody, err = c.do(ctx, method, path, body, c.store.AccessToken())
		if err != nil {
			return err
		}
	}

	if status < 200 || status >= 300 {
		return newAPIError(status, respBody)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse response from %s %s: %w", method, path, err)
	}
	return nil
}

// do performs a single HTTP exchange and returns the status and full body.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, token string) (int, []byte, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.http.BaseURL+path, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.HTTPClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to send request to %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return resp.StatusCode, respBody, nil
}

// refreshAccessToken exchanges the stored refresh token for a new access
// token. Concurrent callers coalesce into a single upstream call; on any
// failure the session is purged and ErrSessionExpired is returned.
func (c *Client) refreshAccessToken(ctx context.Context) error {
	_, err, _ := c.sf.Do("refresh", func() (interface{}, error) {
		refreshToken := c.store.RefreshToken()
		if refreshToken == "" {
			_ = c.store.Clear()
			return nil, ErrSessionExpired
		}

		status, respBody, err := c.do(ctx, http.MethodPost, refreshPath,
			models.RefreshRequest{Refresh: refreshToken}, "")
		if err != nil {
			_ = c.store.Clear()
			return nil, fmt.Errorf("token refresh failed: %w", err)
		}
		if status < 200 || status >= 300 {
			logger.Warn("token refresh rejected, clearing session",
				logger.Int("status", status))
			_ = c.store.Clear()
			return nil, ErrSessionExpired
		}

		var refreshed models.RefreshResponse
		if err := json.Unmarshal(respBody, &refreshed); err != nil {
			_ = c.store.Clear()
			return nil, fmt.Errorf("failed to parse refresh response: %w", err)
		}

		if err := c.store.SetTokens(refreshed.Access, refreshed.Refresh); err != nil {
			return nil, fmt.Errorf("failed to persist refreshed tokens: %w", err)
		}

		logger.Debug("access token refreshed")
		return nil, nil
	})
	return err
}
