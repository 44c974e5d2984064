package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appearancesAPI "github.com/warpedwall/ninja-index/api/appearances"
	"github.com/warpedwall/ninja-index/api/athletes"
	"github.com/warpedwall/ninja-index/api/health"
	"github.com/warpedwall/ninja-index/api/processing"
	"github.com/warpedwall/ninja-index/api/types"
	"github.com/warpedwall/ninja-index/api/version"
	"github.com/warpedwall/ninja-index/api/videos"
	"github.com/warpedwall/ninja-index/internal/services/appearances"
	athletesService "github.com/warpedwall/ninja-index/internal/services/athletes"
	"github.com/warpedwall/ninja-index/internal/services/extraction"
	processingService "github.com/warpedwall/ninja-index/internal/services/processing"
	"github.com/warpedwall/ninja-index/internal/services/roster"
	searchService "github.com/warpedwall/ninja-index/internal/services/search"
	videosService "github.com/warpedwall/ninja-index/internal/services/videos"
	"github.com/warpedwall/ninja-index/pkg/config"
	"github.com/warpedwall/ninja-index/pkg/youtube"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine)

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
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Initialize services if database is available
	if deps.DB != nil && deps.DB.DB != nil {
		if deps.AthleteRepository == nil {
			deps.AthleteRepository = athletesService.NewRepository(deps.DB.DB)
		}
		if deps.AthleteService == nil {
			deps.AthleteService = athletesService.NewService(deps.AthleteRepository)
		}
		if deps.VideoService == nil {
			deps.VideoService = videosService.NewService(
				videosService.NewRepository(deps.DB.DB),
				appearances.NewRepository(deps.DB.DB),
			)
		}
		if deps.AppearanceService == nil {
			deps.AppearanceService = appearances.NewService(appearances.NewRepository(deps.DB.DB))
		}
		if deps.SearchService == nil {
			initializeSearchService(deps, cfg)
		}
		if deps.ProcessingService == nil {
			initializeProcessingService(deps, cfg)
		}

		// Register athlete routes with search-grade rate limiting (5 req/s, burst of 10)
		athleteGroup := v1.Group("/athletes")
		athleteGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, "athletes", 5, 10))
		athletes.RegisterRoutes(athleteGroup, deps)

		// Register video routes with general rate limiting (10 req/s, burst of 20)
		videoGroup := v1.Group("/videos")
		videoGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, "videos", 10, 20))
		videos.RegisterRoutes(videoGroup, deps)

		// Appearance review shares the general read/write tier
		appearanceGroup := v1.Group("/appearances")
		appearanceGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, "appearances", 10, 20))
		appearancesAPI.RegisterRoutes(appearanceGroup, deps)

		// Processing hits YouTube and the extraction API, so keep it slow (1 req/s, burst of 2)
		processingGroup := v1.Group("/processing")
		processingGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, "processing", 1, 2))
		processing.RegisterRoutes(processingGroup, deps)
	}

	return nil
}

// initializeSearchService creates and configures the fuzzy search service
func initializeSearchService(deps *types.Dependencies, cfg *config.Config) {
	registry := roster.NewRegistry(cfg.Roster.Path)
	deps.SearchService = searchService.NewService(
		deps.AthleteRepository,
		registry,
		searchService.WithLimit(cfg.Search.Limit),
		searchService.WithThreshold(cfg.Search.Threshold),
		searchService.WithMinQueryLength(cfg.Search.MinQueryLength),
	)
}

// initializeProcessingService wires the transcript, extraction and
// persistence pieces of the pipeline
func initializeProcessingService(deps *types.Dependencies, cfg *config.Config) {
	transcripts := youtube.NewClient(youtube.ClientConfig{
		BaseURL:   cfg.YouTube.BaseURL,
		Timeout:   cfg.YouTube.Timeout,
		Languages: cfg.YouTube.Languages,
	})
	extractor := extraction.NewClient(extraction.Config{
		APIKey:    cfg.Anthropic.APIKey,
		Model:     cfg.Anthropic.Model,
		MaxTokens: cfg.Anthropic.MaxTokens,
		BaseURL:   cfg.Anthropic.BaseURL,
		Timeout:   cfg.Anthropic.Timeout,
	})

	opts := []processingService.ServiceOption{}
	if cfg.Processing.FetchMetadata {
		opts = append(opts, processingService.WithMetadataFetcher(
			youtube.NewMetadataClient(youtube.MetadataClientConfig{
				BaseURL: cfg.YouTube.BaseURL,
				Timeout: cfg.YouTube.Timeout,
			}),
		))
	}

	deps.ProcessingService = processingService.NewService(
		transcripts,
		extractor,
		deps.AthleteService,
		videosService.NewRepository(deps.DB.DB),
		appearances.NewRepository(deps.DB.DB),
		opts...,
	)
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
