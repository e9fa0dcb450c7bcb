package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dushan-Edirisinghe/Nexus-DownLoader/internal/api"
	"github.com/Dushan-Edirisinghe/Nexus-DownLoader/internal/api/handler"
	"github.com/Dushan-Edirisinghe/Nexus-DownLoader/internal/config"
	"github.com/Dushan-Edirisinghe/Nexus-DownLoader/internal/extractor"
	"github.com/Dushan-Edirisinghe/Nexus-DownLoader/internal/relay"
	"github.com/Dushan-Edirisinghe/Nexus-DownLoader/internal/service"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "", "Path to config file")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("nexus-downloader %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting nexus-downloader",
		"version", Version,
		"build_time", BuildTime,
	)

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize dependencies
	engine := extractor.NewYtDlp(cfg.Extractor, logger)
	relayClient := relay.NewClient(cfg.Relay, logger)
	mediaSvc := service.NewMediaService(engine, logger)

	// Initialize handlers
	mediaHandler := handler.NewMediaHandler(mediaSvc, logger)
	downloadHandler := handler.NewDownloadHandler(relayClient, logger)
	healthHandler := handler.NewHealthHandler()

	// Setup router
	router := api.NewRouter(mediaHandler, downloadHandler, healthHandler)

	// Setup HTTP server. WriteTimeout stays disabled unless configured:
	// relayed downloads run for as long as the origin keeps serving bytes.
	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("starting HTTP server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
