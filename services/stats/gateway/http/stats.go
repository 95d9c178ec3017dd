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

// StatsClient is an HTTP client for the stats/gamification backend. It
// shares a base URL with the trips backend.
type StatsClient struct {
	client *httpclient.Client
}

// NewStatsClient creates a new stats backend client
func NewStatsClient(statsServiceURL string, timeout time.Duration) *StatsClient {
	return &StatsClient{
		client: httpclient.NewClient(statsServiceURL, timeout),
	}
}

// GetMyStats fetches the viewer's statistics
func (g *StatsClient) GetMyStats(ctx context.Context, token string) (*models.UserStats, error) {
	var stats models.UserStats
	err := g.doJSON(ctx, token, http.MethodGet, "/stats/me", nil, &stats, "get_my_stats")
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetLeaderboard fetches raw leaderboard rows: user, name, points. Rank
// and level fields come back zero-valued.
func (g *StatsClient) GetLeaderboard(ctx context.Context, token string) ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	err := g.doJSON(ctx, token, http.MethodGet, "/stats/leaderboard", nil, &entries, "get_leaderboard")
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.LeaderboardEntry{}
	}
	return entries, nil
}

// GetCompletedTrips fetches every completed trip for the admin dashboard
func (g *StatsClient) GetCompletedTrips(ctx context.Context, token string) ([]models.Trip, error) {
	var trips []models.Trip
	err := g.doJSON(ctx, token, http.MethodGet, "/stats/completed-trips", nil, &trips, "get_completed_trips")
	if err != nil {
		return nil, err
	}
	if trips == nil {
		trips = []models.Trip{}
	}
	return trips, nil
}

// GetGamificationConfig fetches the current points configuration
func (g *StatsClient) GetGamificationConfig(ctx context.Context, token string) (*models.GamificationConfig, error) {
	var cfg models.GamificationConfig
	err := g.doJSON(ctx, token, http.MethodGet, "/gamification/config", nil, &cfg, "get_gamification_config")
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UpdateGamificationConfig replaces the points configuration
func (g *StatsClient) UpdateGamificationConfig(ctx context.Context, token string, cfg models.GamificationConfig) (*models.GamificationConfig, error) {
	var updated models.GamificationConfig
	err := g.doJSON(ctx, token, http.MethodPut, "/gamification/config", cfg, &updated, "update_gamification_config")
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (g *StatsClient) doJSON(ctx context.Context, token, method, path string, body, target interface{}, operation string) error {
	err := g.do(ctx, token, method, path, body, target)
	observability.ObserveUpstream("stats", operation, err)
	return err
}

func (g *StatsClient) do(ctx context.Context, token, method, path string, body, target interface{}) error {
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
		return fmt.Errorf("stats backend unreachable: %w: %v", apperrors.ErrUpstream, err)
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
		return fmt.Errorf("failed to parse stats backend response: %w", err)
	}
	return nil
}

func mapStatusError(status int, body []byte) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized:
		return fmt.Errorf("stats backend rejected token: %w", apperrors.ErrSessionExpired)
	case status == http.StatusBadRequest:
		return fmt.Errorf("stats backend rejected request (body: %s): %w", string(body), apperrors.ErrValidation)
	default:
		return fmt.Errorf("stats backend request failed (status: %d, body: %s): %w", status, string(body), apperrors.ErrUpstream)
	}
}
