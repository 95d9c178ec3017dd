package stats

import (
	"context"
	"time"

	"github.com/ecovoit/ecovoit/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ecovoit/ecovoit/services/stats LeaderboardCache

// LeaderboardCache caches the fully ranked leaderboard
type LeaderboardCache interface {
	// Get returns the cached leaderboard, or nil on a miss.
	Get(ctx context.Context) ([]models.LeaderboardEntry, error)

	// Set stores a ranked leaderboard with the given TTL.
	Set(ctx context.Context, entries []models.LeaderboardEntry, ttl time.Duration) error

	// Invalidate drops the cached leaderboard.
	Invalidate(ctx context.Context) error
}
