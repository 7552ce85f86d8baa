// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

// Package graph is a minimal Microsoft Graph client covering calendar event
// creation on behalf of the organizer mailbox.
package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/berytech/booking-invite-service/internal/logging"
)

const (
	// BaseURL is the base URL for the Microsoft Graph API
	BaseURL = "https://graph.microsoft.com/v1.0"
	// DefaultScope is the application-permission scope for client credentials
	DefaultScope = "https://graph.microsoft.com/.default"
	// DefaultClientTimeout is the default HTTP client timeout for Graph requests
	DefaultClientTimeout = 30 * time.Second
)

// Client represents a Microsoft Graph API client authenticated with
// Azure AD client credentials.
type Client struct {
	config      Config
	oauthConfig *clientcredentials.Config
}

// Config holds the configuration for the Graph client
type Config struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	// Optional: override base URL for testing
	BaseURL string
	// Optional: override token URL for testing
	TokenURL string
	// Optional: override timeout for HTTP requests
	Timeout time.Duration
}

// NewClient creates a new Graph API client
func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = BaseURL
	}
	if config.TokenURL == "" {
		config.TokenURL = fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", config.TenantID)
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultClientTimeout
	}

	oauthConfig := &clientcredentials.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		TokenURL:     config.TokenURL,
		Scopes:       []string{DefaultScope},
	}

	return &Client{
		config:      config,
		oauthConfig: oauthConfig,
	}
}

// doRequest performs one authenticated HTTP request to the Graph API.
// Failures are terminal; any re-attempt policy lives with the caller.
func (c *Client) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	slog.DebugContext(ctx, "making Graph API request",
		"method", method,
		"path", path,
	)

	httpClient := c.oauthConfig.Client(ctx)
	httpClient.Timeout = c.config.Timeout

	startTime := time.Now()
	resp, err := httpClient.Do(req)
	duration := time.Since(startTime)
	if err != nil {
		slog.ErrorContext(ctx, "Graph API request failed",
			"method", method,
			"path", path,
			"duration", duration.String(),
			logging.ErrKey, err)
		return nil, fmt.Errorf("graph API request failed: %w", err)
	}

	slog.InfoContext(ctx, "Graph API request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", duration.String(),
	)

	return resp, nil
}

// parseErrorResponse attempts to parse a Graph API error response
func parseErrorResponse(body []byte) error {
	var errResp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		return fmt.Errorf("graph API error (%s): %s", errResp.Error.Code, errResp.Error.Message)
	}
	return fmt.Errorf("graph API error: %s", string(body))
}
