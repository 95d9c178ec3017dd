package stats

import (
	"context"

	"github.com/ecovoit/ecovoit/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ecovoit/ecovoit/services/stats StatsUC

// StatsUC defines the statistics and gamification use case interface
type StatsUC interface {
	// MyStats returns the viewer's own statistics.
	MyStats(ctx context.Context, token string) (*models.UserStats, error)

	// Leaderboard returns the ranked leaderboard, with ranks and level
	// names assigned gateway-side. Served from cache when fresh.
	Leaderboard(ctx context.Context, token string) ([]models.LeaderboardEntry, error)

	// CompletedTrips returns every completed trip for the admin dashboard.
	CompletedTrips(ctx context.Context, token string) ([]models.Trip, error)

	// GamificationConfig returns the current points configuration.
	GamificationConfig(ctx context.Context, token string) (*models.GamificationConfig, error)

	// UpdateGamificationConfig replaces the points configuration and
	// invalidates the cached leaderboard.
	UpdateGamificationConfig(ctx context.Context, token string, cfg models.GamificationConfig) (*models.GamificationConfig, error)
}
