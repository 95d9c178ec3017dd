package stats

import (
	"context"

	"github.com/ecovoit/ecovoit/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/ecovoit/ecovoit/services/stats StatsGW

// StatsGW defines the interface to the stats/gamification backend. The
// backend returns raw point totals; ranking and levels are gateway work.
type StatsGW interface {
	GetMyStats(ctx context.Context, token string) (*models.UserStats, error)
	GetLeaderboard(ctx context.Context, token string) ([]models.LeaderboardEntry, error)
	GetCompletedTrips(ctx context.Context, token string) ([]models.Trip, error)
	GetGamificationConfig(ctx context.Context, token string) (*models.GamificationConfig, error)
	UpdateGamificationConfig(ctx context.Context, token string, cfg models.GamificationConfig) (*models.GamificationConfig, error)
}
