package main

import (
	"context"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"stocktracker/internal/app"
	"stocktracker/internal/config"
	"stocktracker/internal/logging"
)

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer closer.Close()
	slog.SetDefault(logger)

	if cfg.AlphaVantage.APIKey == "" {
		logger.Warn("ALPHA_VANTAGE_API_KEY not set; quote requests will fail with API_KEY_MISSING")
	}

	ln, err := net.Listen("tcp", ":"+cfg.Server.Port)
	if err != nil {
		logger.Error("listen", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = app.Serve(ctx, ln, app.Handler(cfg, logger), app.TimeoutsFor(cfg), logger)
	if err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
