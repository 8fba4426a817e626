package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mkearns/fantasyline/internal/config"
	"github.com/mkearns/fantasyline/internal/dataset"
	"github.com/mkearns/fantasyline/internal/logging"
	"github.com/mkearns/fantasyline/internal/web"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"dataset_path", cfg.Dataset.Path,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	cache := dataset.NewCache()

	// Warm the cache. A broken or missing file is not fatal at startup:
	// the server stays up and handlers report the load error until the
	// file is fixed and re-read.
	if table, err := cache.Load(cfg.Dataset.Path); err != nil {
		slog.Warn("dataset unavailable at startup", "path", cfg.Dataset.Path, "error", err)
	} else {
		slog.Info("dataset loaded",
			"path", cfg.Dataset.Path,
			"rows", table.Len(),
			"columns", len(table.Columns),
			"snapshot_id", table.SnapshotID,
		)
	}

	// Create server with config
	server := web.NewServer(cache, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	// Start server (uses addr from config internally)
	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
