// Command metoceand serves the metocean helpers over HTTP, with
// Prometheus metrics and a cached BGS geomagnetism client.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/metocean-kit/bgs"
	"github.com/couchcryptid/metocean-kit/internal/config"
	"github.com/couchcryptid/metocean-kit/internal/httpapi"
	"github.com/couchcryptid/metocean-kit/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	client := bgs.NewClient(
		bgs.WithBaseURL(cfg.BGSBaseURL),
		bgs.WithModel(cfg.BGSModel, cfg.BGSRevision),
		bgs.WithTimeout(cfg.BGSTimeout),
		bgs.WithLogger(logger),
	)

	// Instrument the raw client, then cache, so cache hits stay out of
	// the API metrics.
	var provider bgs.Provider = observability.InstrumentProvider(client, metrics)
	if cfg.BGSCacheSize > 0 {
		provider = bgs.NewCachedProvider(provider, cfg.BGSCacheSize)
		logger.Info("declination cache enabled", "cache_size", cfg.BGSCacheSize)
	}

	srv := httpapi.NewServer(cfg.HTTPAddr, provider, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
