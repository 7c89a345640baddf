package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"playNext/app/echo-server/router"
	"playNext/business/achievements"
	"playNext/business/ingest"
	"playNext/business/profile"
	"playNext/business/recommend"
	"playNext/internal/middleware"
	psqlRepo "playNext/internal/repository/postgres"
	redisRepo "playNext/internal/repository/redis"
	"playNext/internal/repository/steam"
	"playNext/internal/rest"
	"playNext/pkg/config"
	"playNext/pkg/database"
	redisdb "playNext/pkg/database/redis"
	"playNext/pkg/logger"
	"playNext/pkg/metrics"
	"playNext/pkg/utils"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting PlayNext", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Init steam client
	steamRepo := steam.NewSteamRepository(
		steam.SteamConfig{
			APIKey:  cfg.Steam.APIKey,
			BaseURL: cfg.Steam.BaseURL,
		},
	)

	// Achievement stat cache: in-process by default, redis when enabled
	var statCache achievements.StatCache = achievements.NewMemoryCache()
	if cfg.Redis.Enabled {
		redisClient, err := redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", "error", err)
		}
		defer redisdb.CloseRedisClient(redisClient)

		statCache = redisRepo.NewAchievementCacheRepository(redisClient, 24*time.Hour)
		logger.Info("Using redis achievement cache")
	}

	// Init repo
	gameRepo := psqlRepo.NewGameRepository(db)

	// Init service
	achievementProvider := achievements.NewProvider(steamRepo, statCache)
	profileService := profile.NewService(achievementProvider)
	recommendService := recommend.NewService(gameRepo, steamRepo, profileService)
	ingestService := ingest.NewService(gameRepo, cfg.Ingest.DatasetPath)

	// Init handler
	recommendationHandler := rest.NewRecommendationHandler(recommendService)
	gameHandler := rest.NewGameHandler(recommendService)
	playerHandler := rest.NewPlayerHandler(recommendService)
	adminHandler := rest.NewAdminHandler(ingestService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupRecommendationRoutes(api, recommendationHandler)
	router.SetupGameRoutes(api, gameHandler)
	router.SetupPlayerRoutes(api, playerHandler)
	router.SetupAdminRoutes(api, adminHandler)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
