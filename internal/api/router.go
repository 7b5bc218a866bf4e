package api

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/tastecraft/tastecraft-api/internal/api/handlers"
	apimiddleware "github.com/tastecraft/tastecraft-api/internal/api/middleware"
	"github.com/tastecraft/tastecraft-api/internal/config"
	"github.com/tastecraft/tastecraft-api/internal/llm"
	"github.com/tastecraft/tastecraft-api/internal/metrics"
	"github.com/tastecraft/tastecraft-api/internal/services"
	webhandlers "github.com/tastecraft/tastecraft-api/internal/web/handlers"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, cfg *config.Config, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking())

	// CORS middleware
	router.Use(apimiddleware.CORS())

	// Web UI templates
	router.LoadHTMLGlob("templates/*.html")

	// CloudWatch metrics (no-op outside production)
	cloudwatch, err := metrics.NewClient(context.Background(), cfg.Environment)
	if err != nil {
		log.Printf("⚠️  CloudWatch metrics unavailable: %v", err)
	}

	// Generation service with the real provider factory
	factory := llm.NewProviderFactory(cfg.GeminiAPIKey, cfg.OpenAIAPIKey)
	genService := services.NewGenerationService(cfg, factory, db, cloudwatch)

	// Health check
	healthHandler := handlers.NewHealthHandler(cfg)
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// Web pages
	webHandler := webhandlers.NewWebHandler()
	router.GET("/", webHandler.Home)

	// API routes v1
	v1 := router.Group("/api/v1")
	{
		genHandler := handlers.NewGenerationHandler(genService)
		v1.GET("/options", genHandler.Options)
		v1.POST("/names", genHandler.Names)
		v1.POST("/menu", genHandler.Menu)
		v1.POST("/export", genHandler.Export)

		historyHandler := handlers.NewHistoryHandler(genService)
		v1.GET("/history", historyHandler.List)
	}

	return router
}
