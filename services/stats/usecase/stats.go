package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ecovoit/ecovoit/internal/pkg/logger"
	"github.com/ecovoit/ecovoit/internal/pkg/models"
	"github.com/ecovoit/ecovoit/services/stats"
)

// statsUC implements the stats.StatsUC interface
type statsUC struct {
	cfg     *models.Config
	statsGW stats.StatsGW
	cache   stats.LeaderboardCache
}

// NewStatsUC creates a new stats use case
func NewStatsUC(cfg *models.Config, statsGW stats.StatsGW, cache stats.LeaderboardCache) stats.StatsUC {
	return &statsUC{
		cfg:     cfg,
		statsGW: statsGW,
		cache:   cache,
	}
}

// MyStats returns the viewer's own statistics
func (uc *statsUC) MyStats(ctx context.Context, token string) (*models.UserStats, error) {
	return uc.statsGW.GetMyStats(ctx, token)
}

// Leaderboard serves the ranked leaderboard from cache when fresh; on a
// miss it fetches raw points, ranks them, names the levels and caches the
// result. A cache read failure degrades to a backend fetch.
func (uc *statsUC) Leaderboard(ctx context.Context, token string) ([]models.LeaderboardEntry, error) {
	cached, err := uc.cache.Get(ctx)
	if err != nil {
		logger.Warn("leaderboard cache read failed", logrus.Fields{"error": err.Error()})
	}
	if cached != nil {
		return cached, nil
	}

	entries, err := uc.statsGW.GetLeaderboard(ctx, token)
	if err != nil {
		return nil, err
	}

	gamification, err := uc.statsGW.GetGamificationConfig(ctx, token)
	if err != nil {
		// Levels are decoration; ranking still works without them.
		logger.Warn("gamification config unavailable, leaderboard served without levels",
			logrus.Fields{"error": err.Error()})
		gamification = &models.GamificationConfig{}
	}

	ranked := RankLeaderboard(entries, gamification.Levels)

	ttl := time.Duration(uc.cfg.Stats.LeaderboardCacheTTL) * time.Second
	if ttl > 0 {
		if err := uc.cache.Set(ctx, ranked, ttl); err != nil {
			logger.Warn("leaderboard cache write failed", logrus.Fields{"error": err.Error()})
		}
	}
	return ranked, nil
}

// CompletedTrips returns every completed trip for the admin dashboard
func (uc *statsUC) CompletedTrips(ctx context.Context, token string) ([]models.Trip, error) {
	return uc.statsGW.GetCompletedTrips(ctx, token)
}

// GamificationConfig returns the current points configuration
func (uc *statsUC) GamificationConfig(ctx context.Context, token string) (*models.GamificationConfig, error) {
	return uc.statsGW.GetGamificationConfig(ctx, token)
}

// UpdateGamificationConfig replaces the points configuration. The cached
// leaderboard carries level names derived from the old config, so it is
// invalidated.
func (uc *statsUC) UpdateGamificationConfig(ctx context.Context, token string, cfg models.GamificationConfig) (*models.GamificationConfig, error) {
	updated, err := uc.statsGW.UpdateGamificationConfig(ctx, token, cfg)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Invalidate(ctx); err != nil {
		logger.Warn("leaderboard cache invalidation failed", logrus.Fields{"error": err.Error()})
	}

	logger.Info("gamification config updated", logrus.Fields{
		"levels": len(updated.Levels),
	})
	return updated, nil
}

// RankLeaderboard sorts entries by points descending and assigns ranks
// and level names. The sort is stable so ties keep the backend's order,
// and tied entries share a rank (1, 1, 3).
func RankLeaderboard(entries []models.LeaderboardEntry, levels []models.GamificationLevel) []models.LeaderboardEntry {
	ranked := make([]models.LeaderboardEntry, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Points > ranked[j].Points
	})

	for i := range ranked {
		if i > 0 && ranked[i].Points == ranked[i-1].Points {
			ranked[i].Rank = ranked[i-1].Rank
		} else {
			ranked[i].Rank = i + 1
		}
		ranked[i].Level = levelFor(ranked[i].Points, levels)
	}
	return ranked
}

// levelFor returns the name of the highest level whose threshold the
// points reach
func levelFor(points int, levels []models.GamificationLevel) string {
	name := ""
	best := -1
	for _, l := range levels {
		if points >= l.MinPoints && l.MinPoints > best {
			best = l.MinPoints
			name = l.Name
		}
	}
	return name
}
