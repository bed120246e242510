package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/chestmenus/internal/bootstrap"
	"github.com/osse101/chestmenus/internal/config"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	initLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Invalid environment", "error", err)
		os.Exit(1)
	}
	for _, warning := range warnings {
		slog.Warn("Configuration warning", "warning", warning)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := bootstrap.Build(cfg)
	if err := app.Start(ctx); err != nil {
		slog.Error("Startup failed", "error", err)
		os.Exit(1)
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := app.Server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, app)
}
