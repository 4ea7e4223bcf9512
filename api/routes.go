package api

import (
	"context"
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/codegirl-007/kiddos-api/api/channels"
	"github.com/codegirl-007/kiddos-api/api/health"
	"github.com/codegirl-007/kiddos-api/api/refresh"
	"github.com/codegirl-007/kiddos-api/api/settings"
	"github.com/codegirl-007/kiddos-api/api/types"
	"github.com/codegirl-007/kiddos-api/api/version"
	"github.com/codegirl-007/kiddos-api/api/videos"
	channelsService "github.com/codegirl-007/kiddos-api/internal/services/channels"
	refreshService "github.com/codegirl-007/kiddos-api/internal/services/refresh"
	settingsService "github.com/codegirl-007/kiddos-api/internal/services/settings"
	videosService "github.com/codegirl-007/kiddos-api/internal/services/videos"
	"github.com/codegirl-007/kiddos-api/internal/services/youtube"
	"github.com/codegirl-007/kiddos-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Initialize services if database is available
	if deps.DB != nil && deps.DB.DB != nil {
		if err := initializeCatalogServices(deps, cfg); err != nil {
			return err
		}

		// Register catalog read routes with general rate limiting (10 req/s, burst of 20)
		videoGroup := v1.Group("/videos")
		videoGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
		videos.RegisterRoutes(videoGroup, deps)

		// Register manual refresh with strict rate limiting (1 req/s, burst of 2)
		// since each call fans out to the upstream API
		refreshGroup := v1.Group("/videos")
		refreshGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 1, 2))
		refresh.RegisterRoutes(refreshGroup, deps)

		// Register channel management routes with general rate limiting (10 req/s, burst of 20)
		channelGroup := v1.Group("/channels")
		channelGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
		channels.RegisterRoutes(channelGroup, deps)

		// Register settings routes with general rate limiting (10 req/s, burst of 20)
		settingsGroup := v1.Group("/settings")
		settingsGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
		settings.RegisterRoutes(settingsGroup, deps)
	}

	return nil
}

// initializeCatalogServices creates and wires the catalog services
func initializeCatalogServices(deps *types.Dependencies, cfg *config.Config) error {
	// Use Viper directly for the API key so the env override always wins
	apiKey := viper.GetString("youtube.api_key")
	if apiKey == "" {
		apiKey = cfg.YouTube.APIKey
	}

	if deps.SettingsService == nil {
		settingsRepo := settingsService.NewRepository(deps.DB.DB)
		deps.SettingsService = settingsService.NewService(
			settingsRepo,
			settingsService.WithMaxLeaseAge(cfg.Refresh.MaxLeaseAge),
		)
	}

	if deps.VideoService == nil || deps.ChannelService == nil || deps.Coordinator == nil {
		client, err := youtube.NewClient(context.Background(), youtube.Config{
			APIKey:     apiKey,
			MaxResults: cfg.YouTube.MaxResults,
			RateLimit:  cfg.YouTube.RateLimit,
			Timeout:    cfg.YouTube.Timeout,
		})
		if err != nil {
			return fmt.Errorf("failed to create youtube client: %w", err)
		}

		channelRepo := channelsService.NewRepository(deps.DB.DB)
		videoRepo := videosService.NewRepository(deps.DB.DB, cfg.Catalog.MinVideoDurationSeconds)

		syncer := refreshService.NewSyncer(
			channelRepo,
			videoRepo,
			client,
			refreshService.WithMaxResults(cfg.YouTube.MaxResults),
		)
		coordinator := refreshService.NewCoordinator(
			syncer,
			channelRepo,
			deps.SettingsService,
			refreshService.WithMaxConcurrentSyncs(cfg.Refresh.MaxConcurrentSyncs),
			refreshService.WithSyncTimeout(cfg.Refresh.SyncTimeout),
		)

		deps.Coordinator = coordinator
		deps.ChannelService = channelsService.NewService(
			channelRepo,
			client,
			channelsService.WithSyncer(syncer),
			channelsService.WithInitialSyncTimeout(cfg.Refresh.SyncTimeout),
		)
		deps.VideoService = videosService.NewService(
			videoRepo,
			channelRepo,
			deps.SettingsService,
			videosService.WithRefreshTrigger(func(ctx context.Context, channelIDs []string) error {
				_, err := coordinator.RefreshAll(ctx, channelIDs)
				return err
			}),
			videosService.WithRefreshTimeout(cfg.Refresh.BatchTimeout),
		)
	}

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
