package router

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/denisAlshanov/clipgrab/internal/api/handlers"
	"github.com/denisAlshanov/clipgrab/internal/api/middleware"
	"github.com/denisAlshanov/clipgrab/internal/config"
)

type Router struct {
	engine *gin.Engine
	config *config.Config
	server *http.Server
}

// NewRouter wires every route. ctx bounds background work started by the
// middleware, such as the rate limiter cleanup.
func NewRouter(ctx context.Context, cfg *config.Config, videoHandler *handlers.VideoHandler, preferencesHandler *handlers.PreferencesHandler, historyHandler *handlers.HistoryHandler, healthHandler *handlers.HealthHandler) *Router {
	// Set Gin mode
	if cfg.Server.Host == "0.0.0.0" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Add middleware
	engine.Use(gin.Recovery())
	engine.Use(middleware.CorrelationIDMiddleware())
	engine.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health endpoints (no auth required)
	health := engine.Group("/")
	{
		health.GET("/health", healthHandler.Health)
		health.GET("/ready", healthHandler.Readiness)
		health.GET("/live", healthHandler.Liveness)
	}

	// Swagger documentation (no auth required)
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API endpoints with optional API key and rate limiting
	api := engine.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(&cfg.API))
	api.Use(middleware.RateLimitMiddleware(ctx, &cfg.API))
	{
		video := api.Group("/video")
		{
			video.POST("/analyze", videoHandler.Analyze)   // /api/v1/video/analyze
			video.POST("/download", videoHandler.Download) // /api/v1/video/download
		}

		prefs := api.Group("/preferences")
		{
			prefs.GET("", preferencesHandler.GetPreferences)     // /api/v1/preferences
			prefs.PUT("", preferencesHandler.UpdatePreferences)  // /api/v1/preferences
			prefs.GET("/locales", preferencesHandler.GetLocales) // /api/v1/preferences/locales
		}

		api.GET("/history", historyHandler.GetHistory) // /api/v1/history
	}

	return &Router{
		engine: engine,
		config: cfg,
		server: &http.Server{
			Addr:    cfg.Server.Host + ":" + cfg.Server.Port,
			Handler: engine,
		},
	}
}

// Start serves HTTP until Shutdown is called.
func (r *Router) Start() error {
	if err := r.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (r *Router) Shutdown(ctx context.Context) error {
	return r.server.Shutdown(ctx)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
