// Package main provides the entry point for the YouTube video gateway.
// @title YouTube Video Gateway API
// @version 1.0
// @description HTTP gateway exposing YouTube metadata lookup, stream enumeration, file download and keyword search.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/ytgate/ytgate/docs" // Import for swagger docs
	"github.com/ytgate/ytgate/internal/api/handlers"
	"github.com/ytgate/ytgate/internal/api/router"
	"github.com/ytgate/ytgate/internal/config"
	"github.com/ytgate/ytgate/internal/services/resolver"
	"github.com/ytgate/ytgate/internal/services/search"
	"github.com/ytgate/ytgate/internal/utils"
)

func main() {
	// The process start timestamp backs /api/stats; captured exactly once.
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := utils.GetLogger()
	logger.Info("Starting YouTube video gateway")

	// Initialize providers
	resolverClient := resolver.NewClient(&cfg.Provider)
	searchClient := search.NewClient(&cfg.Search, &cfg.Provider)
	if cfg.Search.APIKey == "" {
		logger.Warn("YOUTUBE_API_KEY not set - /api/search will be unavailable")
	}

	// Initialize handlers
	videoHandler := handlers.NewVideoHandler(resolverClient)
	searchHandler := handlers.NewSearchHandler(searchClient)
	healthHandler := handlers.NewHealthHandler(startTime)

	// Initialize router
	r := router.NewRouter(cfg, videoHandler, searchHandler, healthHandler)

	// Start server
	go func() {
		logger.Infof("Starting server on %s:%s", cfg.Server.Host, cfg.Server.Port)
		if err := r.Start(); err != nil {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server shutdown complete")
}
