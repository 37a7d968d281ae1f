// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andresuchdata/vendex/internal/api"
	"github.com/andresuchdata/vendex/internal/config"
	"github.com/andresuchdata/vendex/internal/llm"
	"github.com/andresuchdata/vendex/internal/ratelimit"
	"github.com/andresuchdata/vendex/internal/roster"
	"github.com/andresuchdata/vendex/internal/service"
	"github.com/andresuchdata/vendex/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	logger.Setup(cfg.Server.Mode, cfg.Server.LogLevel)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	llmClient, err := llm.NewClient(ctx, llm.Config{APIKey: cfg.LLM.APIKey, Model: cfg.LLM.Model})
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to initialize LLM client")
	}
	if cfg.LLM.APIKey == "" {
		logger.Log.Warn().Msg("GENAI_API_KEY not set, intent and roster endpoints will use fallbacks")
	}

	limiter, err := ratelimit.New(cfg.RateLimit)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Rate limiter unavailable, continuing without it")
		limiter = ratelimit.NewNoop()
	}

	var rosterPrimary roster.Provider = roster.NewRuleBasedProvider(roster.RuleConfidence)
	if cfg.LLM.APIKey != "" {
		rosterPrimary = roster.NewLLMProvider(llmClient)
	}

	services := &api.Services{
		InventoryService: service.NewInventoryService(cfg.Inventory.BulkWorkers),
		SourcingService:  service.NewSourcingService(nil),
		IntentService:    service.NewIntentService(llmClient, cfg.LLM.IntentTemperature, cfg.LLM.Timeout()),
		RosterService: service.NewRosterService(
			rosterPrimary,
			roster.NewRuleBasedProvider(roster.FallbackConfidence),
			cfg.LLM.Timeout(),
		),
	}

	router := api.NewRouter(services, cfg.Server.AllowedOrigins, limiter)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
