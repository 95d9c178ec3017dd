package gateway_http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "github.com/ecovoit/ecovoit/internal/pkg/errors"
	httpclient "github.com/ecovoit/ecovoit/internal/pkg/http"
	"github.com/ecovoit/ecovoit/internal/pkg/models"
	"github.com/ecovoit/ecovoit/internal/pkg/observability"
	"github.com/ecovoit/ecovoit/internal/utils"
)

// AuthClient is an HTTP client for the auth service
type AuthClient struct {
	client *httpclient.Client
}

// NewAuthClient creates a new auth service client
func NewAuthClient(authServiceURL string, timeout time.Duration) *AuthClient {
	return &AuthClient{
		client: httpclient.NewClient(authServiceURL, timeout),
	}
}

// Login exchanges credentials for an upstream token. A 401 here means the
// credentials were wrong, not that a session expired.
func (g *AuthClient) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	var auth models.AuthResponse
	err := g.doJSON(ctx, "", http.MethodPost, "/auth/login", creds, &auth, "login")
	if err != nil {
		if apperrors.IsSessionExpired(err) {
			return nil, fmt.Errorf("auth service rejected login: %w", apperrors.ErrInvalidCredentials)
		}
		return nil, err
	}
	return &auth, nil
}

// CurrentUser fetches the account an upstream token belongs to
func (g *AuthClient) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	err := g.doJSON(ctx, token, http.MethodGet, "/auth/me", nil, &user, "current_user")
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout revokes an upstream token
func (g *AuthClient) Logout(ctx context.Context, token string) error {
	return g.doJSON(ctx, token, http.MethodPost, "/auth/logout", nil, nil, "logout")
}

func (g *AuthClient) doJSON(ctx context.Context, token, method, path string, body, target interface{}, operation string) error {
	err := g.do(ctx, token, method, path, body, target)
	observability.ObserveUpstream("auth", operation, err)
	return err
}

func (g *AuthClient) do(ctx context.Context, token, method, path string, body, target interface{}) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, g.client.BaseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.client.HTTPClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("auth service unreachable: %w: %v", apperrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := mapStatusError(resp.StatusCode, respBody); err != nil {
		return err
	}

	if target == nil {
		return nil
	}
	if err := utils.ParseJSONResponse(respBody, target); err != nil {
		return fmt.Errorf("failed to parse auth service response: %w", err)
	}
	return nil
}

func mapStatusError(status int, body []byte) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized:
		return fmt.Errorf("auth service rejected token: %w", apperrors.ErrSessionExpired)
	case status == http.StatusBadRequest:
		return fmt.Errorf("auth service rejected request (body: %s): %w", string(body), apperrors.ErrValidation)
	default:
		return fmt.Errorf("auth service request failed (status: %d, body: %s): %w", status, string(body), apperrors.ErrUpstream)
	}
}
