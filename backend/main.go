// ABOUTME: Entry point for the HRG configurator backend service
// ABOUTME: Serves build recommendations over HTTP from a reloadable parts catalog

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/catalog"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/config"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/logger"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Initialize structured logging
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting HRG Configurator Backend")

	store, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		slog.Error("Failed to load catalog", "path", cfg.CatalogPath, "error", err)
		os.Exit(1)
	}

	s := server.New(cfg, store)
	defer s.Close()
	slog.Info("Build cache initialized",
		"ttl", time.Duration(cfg.CacheTTL)*time.Second,
		"clearance_policy", cfg.ClearancePolicy,
		"metrics", cfg.MetricsEnabled)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           s.Mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// SIGHUP reloads the catalog in place
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	go func() {
		for range hup {
			if err := s.Reload(); err != nil {
				slog.Error("Catalog reload failed, keeping previous catalog", "error", err)
			}
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
