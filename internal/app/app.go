// Package app assembles the service from configuration for the binaries.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"stocktracker/internal/alphavantage"
	"stocktracker/internal/api"
	"stocktracker/internal/config"
	"stocktracker/internal/httpx"
	"stocktracker/internal/metrics"
	"stocktracker/internal/quote"
)

// QuoteService builds the Alpha Vantage backed quote service. rec may be nil.
func QuoteService(cfg config.Config, logger *slog.Logger, rec quote.Recorder) *quote.Service {
	timeout := time.Duration(cfg.AlphaVantage.TimeoutSec) * time.Second
	client := alphavantage.NewClient(
		alphavantage.WithBaseURL(cfg.AlphaVantage.BaseURL),
		alphavantage.WithInterval(cfg.AlphaVantage.Interval),
		alphavantage.WithHTTPClient(httpx.New(timeout)),
	)
	opts := []quote.Option{quote.WithTimeout(timeout), quote.WithLogger(logger)}
	if rec != nil {
		opts = append(opts, quote.WithRecorder(rec))
	}
	return quote.NewService(client, cfg.AlphaVantage.APIKey, opts...)
}

// Handler builds the HTTP handler for cfg.
func Handler(cfg config.Config, logger *slog.Logger) http.Handler {
	gin.SetMode(cfg.Server.Mode)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}
	var rec quote.Recorder
	if m != nil {
		rec = m
	}
	return api.NewRouter(QuoteService(cfg, logger, rec), api.Options{
		Logger:         logger,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Metrics:        m,
		MetricsPath:    cfg.Metrics.Path,
	})
}

// responseSlack is the time a handler may spend around the upstream call.
const responseSlack = 10 * time.Second

// Timeouts bounds the HTTP server.
type Timeouts struct {
	ReadHeader time.Duration
	Read       time.Duration
	Write      time.Duration
	Idle       time.Duration
	Shutdown   time.Duration
}

// TimeoutsFor derives server timeouts from cfg. Write always outlasts the
// upstream timeout so slow quotes are answered rather than cut off.
func TimeoutsFor(cfg config.Config) Timeouts {
	return Timeouts{
		ReadHeader: time.Duration(cfg.Server.ReadHeaderTimeoutSec) * time.Second,
		Read:       15 * time.Second,
		Write:      time.Duration(cfg.AlphaVantage.TimeoutSec)*time.Second + responseSlack,
		Idle:       60 * time.Second,
		Shutdown:   time.Duration(cfg.Server.ShutdownTimeoutSec) * time.Second,
	}
}

// Serve runs handler on ln until ctx is cancelled, then shuts down within
// t.Shutdown.
func Serve(ctx context.Context, ln net.Listener, handler http.Handler, t Timeouts, logger *slog.Logger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: t.ReadHeader,
		ReadTimeout:       t.Read,
		WriteTimeout:      t.Write,
		IdleTimeout:       t.Idle,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), t.Shutdown)
		defer cancel()
		logger.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}
