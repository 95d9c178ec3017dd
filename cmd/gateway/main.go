package main

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/ecovoit/ecovoit/internal/pkg/config"
	"github.com/ecovoit/ecovoit/internal/pkg/database"
	"github.com/ecovoit/ecovoit/internal/pkg/health"
	"github.com/ecovoit/ecovoit/internal/pkg/logger"
	"github.com/ecovoit/ecovoit/internal/pkg/middleware"
	"github.com/ecovoit/ecovoit/internal/pkg/observability"
	"github.com/ecovoit/ecovoit/internal/pkg/server"
	authgw "github.com/ecovoit/ecovoit/services/auth/gateway/http"
	authhandler "github.com/ecovoit/ecovoit/services/auth/handler/http"
	authrepo "github.com/ecovoit/ecovoit/services/auth/repository/redis"
	authuc "github.com/ecovoit/ecovoit/services/auth/usecase"
	statsgw "github.com/ecovoit/ecovoit/services/stats/gateway/http"
	statshandler "github.com/ecovoit/ecovoit/services/stats/handler/http"
	statsrepo "github.com/ecovoit/ecovoit/services/stats/repository/redis"
	statsuc "github.com/ecovoit/ecovoit/services/stats/usecase"
	tripsgw "github.com/ecovoit/ecovoit/services/trips/gateway/http"
	tripshandler "github.com/ecovoit/ecovoit/services/trips/handler/http"
	tripsuc "github.com/ecovoit/ecovoit/services/trips/usecase"
)

const serviceName = "ecovoit-gateway"

func main() {
	cfg := config.InitConfig(".env")

	appLogger := logger.NewAppLogger(cfg.Logger)
	logger.SetGlobalLogger(appLogger)

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logrus.Fields{"error": err.Error()})
	}
	defer redisClient.Close()

	timeout := time.Duration(cfg.Services.TimeoutSeconds) * time.Second

	// Upstream clients
	authClient := authgw.NewAuthClient(cfg.Services.AuthServiceURL, timeout)
	tripClient := tripsgw.NewTripClient(cfg.Services.TripsServiceURL, timeout)
	statsClient := statsgw.NewStatsClient(cfg.Services.TripsServiceURL, timeout)

	// Repositories
	sessionRepo := authrepo.NewSessionRepo(redisClient)
	leaderboardCache := statsrepo.NewLeaderboardCache(redisClient)

	// Use cases
	authUC := authuc.NewAuthUC(cfg, authClient, sessionRepo)
	tripUC := tripsuc.NewTripUC(cfg, tripClient)
	statsUC := statsuc.NewStatsUC(cfg, statsClient, leaderboardCache)

	// Handlers
	authHandler := authhandler.NewAuthHandler(authUC, cfg.JWT)
	tripsHandler := tripshandler.NewTripsHandler(tripUC)
	statsHandler := statshandler.NewStatsHandler(statsUC)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(appLogger))
	e.Use(middleware.PanicRecoveryMiddleware())
	e.Use(observability.MetricsMiddleware())

	health.RegisterHealthEndpoints(e, serviceName)
	observability.RegisterMetricsEndpoint(e)

	public := e.Group("")
	authHandler.RegisterPublicRoutes(public)

	authenticated := e.Group("", middleware.SessionMiddleware(cfg.JWT, authUC))
	authHandler.RegisterRoutes(authenticated)
	tripsHandler.RegisterRoutes(authenticated)
	statsHandler.RegisterRoutes(authenticated)

	logger.Info("Gateway configured", logrus.Fields{
		"auth_service":  cfg.Services.AuthServiceURL,
		"trips_service": cfg.Services.TripsServiceURL,
		"environment":   cfg.App.Environment,
	})

	srv := server.NewGracefulServer(e, cfg.Server.Port,
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server stopped with error", logrus.Fields{"error": err.Error()})
	}
}
