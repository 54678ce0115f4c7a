// Package main provides the entry point for the ClipGrab service.
// @title ClipGrab API
// @version 1.0
// @description Paste a video URL and get a direct download link. Analyzes the quality options of a video and resolves YouTube format lists into a single downloadable link.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.example.com/support
// @contact.email support@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Optional API key, required only when API_KEY is set

package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	_ "github.com/denisAlshanov/clipgrab/docs" // Import for swagger docs
	"github.com/denisAlshanov/clipgrab/internal/api/handlers"
	"github.com/denisAlshanov/clipgrab/internal/api/router"
	"github.com/denisAlshanov/clipgrab/internal/config"
	"github.com/denisAlshanov/clipgrab/internal/database"
	"github.com/denisAlshanov/clipgrab/internal/services/analyzer"
	"github.com/denisAlshanov/clipgrab/internal/services/downloader"
	"github.com/denisAlshanov/clipgrab/internal/services/preferences"
	"github.com/denisAlshanov/clipgrab/internal/services/rapidapi"
	"github.com/denisAlshanov/clipgrab/internal/services/telegram"
	"github.com/denisAlshanov/clipgrab/internal/services/youtube"
	"github.com/denisAlshanov/clipgrab/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := utils.GetLogger()
	logger.Info("Starting ClipGrab service")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize store
	store, err := database.Open(cfg)
	if err != nil {
		logger.Fatalf("Failed to open %s store: %v", cfg.Store.Driver, err)
	}
	logger.Infof("Using %s store", cfg.Store.Driver)

	// Metadata source
	var source youtube.MetadataSource
	switch cfg.Metadata.Provider {
	case config.ProviderYouTube:
		source = youtube.NewClient(cfg.RapidAPI.Timeout)
	default:
		if !cfg.RapidAPI.Configured() {
			logger.Warn("RAPIDAPI_KEY is not set; download requests will fail until it is configured")
		}
		source = rapidapi.NewClient(cfg.RapidAPI)
	}
	logger.Infof("Using metadata source: %s", source.Name())

	// Quality analysis. Without a key the analyzer answers with a
	// configuration error and clients fall back to default qualities.
	var generator analyzer.Generator
	if cfg.Gemini.APIKey != "" {
		gemini, err := analyzer.NewGeminiGenerator(ctx, cfg.Gemini)
		if err != nil {
			logger.Fatalf("Failed to initialize Gemini client: %v", err)
		}
		generator = gemini
	} else {
		logger.Warn("GEMINI_API_KEY is not set; quality analysis is disabled")
	}

	qualityAnalyzer := analyzer.NewAnalyzer(generator)
	downloaderService := downloader.NewDownloader(source)

	// Initialize handlers
	videoHandler := handlers.NewVideoHandler(qualityAnalyzer, downloaderService, store)
	preferencesHandler := handlers.NewPreferencesHandler(preferences.NewService(store))
	historyHandler := handlers.NewHistoryHandler(store)
	healthHandler := handlers.NewHealthHandler(store, cfg.Store.Driver)

	// Initialize router
	r := router.NewRouter(ctx, cfg, videoHandler, preferencesHandler, historyHandler, healthHandler)

	group, groupCtx := errgroup.WithContext(ctx)

	// Start server
	group.Go(func() error {
		logger.Infof("Starting server on %s:%s", cfg.Server.Host, cfg.Server.Port)
		return r.Start()
	})

	// Optional Telegram bot
	var bot *telegram.BotClient
	if cfg.Telegram.BotToken != "" {
		bot, err = telegram.NewBotClient(cfg.Telegram.BotToken, qualityAnalyzer, downloaderService, store)
		if err != nil {
			logger.Errorf("Failed to initialize Telegram bot: %v", err)
		} else if err := bot.Connect(ctx); err != nil {
			logger.Errorf("Failed to connect Telegram bot: %v", err)
			bot = nil
		} else {
			group.Go(func() error {
				return bot.Run(groupCtx)
			})
		}
	}

	// Wait for a signal or a component failure
	<-groupCtx.Done()
	logger.Info("Shutting down server...")

	// Create a deadline for shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := r.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Failed to shut down HTTP server: %v", err)
	}

	if bot != nil {
		if err := bot.Close(); err != nil {
			logger.Errorf("Failed to close Telegram bot: %v", err)
		}
	}

	if err := group.Wait(); err != nil {
		logger.Errorf("Service stopped with error: %v", err)
	}

	// Close store connection
	if err := store.Close(shutdownCtx); err != nil {
		logger.Errorf("Failed to close store: %v", err)
	}

	logger.Info("Server shutdown complete")
}
