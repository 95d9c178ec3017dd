package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	apperrors "github.com/ecovoit/ecovoit/internal/pkg/errors"
	"github.com/ecovoit/ecovoit/internal/pkg/logger"
	"github.com/ecovoit/ecovoit/internal/pkg/middleware"
	"github.com/ecovoit/ecovoit/internal/pkg/models"
	"github.com/ecovoit/ecovoit/internal/utils"
	"github.com/ecovoit/ecovoit/services/stats"
)

// StatsHandler handles HTTP requests for statistics and gamification
type StatsHandler struct {
	statsUC stats.StatsUC
}

// NewStatsHandler creates a new stats HTTP handler
func NewStatsHandler(statsUC stats.StatsUC) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
	}
}

// MyStats returns the viewer's statistics
func (h *StatsHandler) MyStats(c echo.Context) error {
	userStats, err := h.statsUC.MyStats(c.Request().Context(), middleware.UpstreamTokenFromContext(c))
	if err != nil {
		return respondServiceError(c, err, "Failed to load statistics")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Statistics retrieved", userStats)
}

// Leaderboard returns the ranked leaderboard
func (h *StatsHandler) Leaderboard(c echo.Context) error {
	entries, err := h.statsUC.Leaderboard(c.Request().Context(), middleware.UpstreamTokenFromContext(c))
	if err != nil {
		return respondServiceError(c, err, "Failed to load leaderboard")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Leaderboard retrieved", entries)
}

// CompletedTrips returns every completed trip (admin only)
func (h *StatsHandler) CompletedTrips(c echo.Context) error {
	trips, err := h.statsUC.CompletedTrips(c.Request().Context(), middleware.UpstreamTokenFromContext(c))
	if err != nil {
		return respondServiceError(c, err, "Failed to load completed trips")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Completed trips retrieved", trips)
}

// GamificationConfig returns the points configuration (admin only)
func (h *StatsHandler) GamificationConfig(c echo.Context) error {
	cfg, err := h.statsUC.GamificationConfig(c.Request().Context(), middleware.UpstreamTokenFromContext(c))
	if err != nil {
		return respondServiceError(c, err, "Failed to load gamification config")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Gamification config retrieved", cfg)
}

// UpdateGamificationConfig replaces the points configuration (admin only)
func (h *StatsHandler) UpdateGamificationConfig(c echo.Context) error {
	var cfg models.GamificationConfig
	if err := c.Bind(&cfg); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	updated, err := h.statsUC.UpdateGamificationConfig(c.Request().Context(),
		middleware.UpstreamTokenFromContext(c), cfg)
	if err != nil {
		return respondServiceError(c, err, "Failed to update gamification config")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Gamification config updated", updated)
}

// RegisterRoutes registers the stats routes on an authenticated group.
// Admin routes get an extra role gate.
func (h *StatsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/stats/me", h.MyStats)
	g.GET("/stats/leaderboard", h.Leaderboard)

	admin := g.Group("/admin", middleware.RequireRole(models.RoleAdmin))
	admin.GET("/completed-trips", h.CompletedTrips)
	admin.GET("/gamification/config", h.GamificationConfig)
	admin.PUT("/gamification/config", h.UpdateGamificationConfig)
}

func respondServiceError(c echo.Context, err error, fallback string) error {
	switch {
	case apperrors.IsSessionExpired(err):
		return utils.UnauthorizedResponse(c, "Session expired, please log in again")
	case apperrors.IsValidation(err):
		return utils.BadRequestResponse(c, err.Error())
	default:
		logger.Error(fallback, logrus.Fields{"error": err.Error()})
		return utils.BadGatewayResponse(c, fallback)
	}
}
