package redis_repo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/ecovoit/ecovoit/internal/pkg/database"
	"github.com/ecovoit/ecovoit/internal/pkg/models"
	"github.com/ecovoit/ecovoit/services/stats"
)

const leaderboardKey = "leaderboard:ranked"

// LeaderboardCache caches the ranked leaderboard in Redis as one JSON blob
type LeaderboardCache struct {
	redis *database.RedisClient
}

// NewLeaderboardCache creates a new Redis-backed leaderboard cache
func NewLeaderboardCache(redisClient *database.RedisClient) stats.LeaderboardCache {
	return &LeaderboardCache{redis: redisClient}
}

// Get returns the cached leaderboard; a miss returns nil without error
func (r *LeaderboardCache) Get(ctx context.Context) ([]models.LeaderboardEntry, error) {
	payload, err := r.redis.Get(ctx, leaderboardKey)
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard cache: %w", err)
	}

	var entries []models.LeaderboardEntry
	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal leaderboard cache: %w", err)
	}
	return entries, nil
}

// Set stores a ranked leaderboard with the given TTL
func (r *LeaderboardCache) Set(ctx context.Context, entries []models.LeaderboardEntry, ttl time.Duration) error {
	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal leaderboard: %w", err)
	}
	return r.redis.Set(ctx, leaderboardKey, payload, ttl)
}

// Invalidate drops the cached leaderboard
func (r *LeaderboardCache) Invalidate(ctx context.Context) error {
	return r.redis.Delete(ctx, leaderboardKey)
}
