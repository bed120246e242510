package bootstrap

import (
	"context"
	"log/slog"
)

// GracefulShutdown stops the HTTP server first so no reload can be
// requested, then the watcher with its queued reload, then the event hub.
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, app *App) {
	slog.Info(LogMsgShuttingDownServer)

	if err := app.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if app.Watcher != nil {
		if err := app.Watcher.Close(); err != nil {
			slog.Error(LogMsgWatcherShutdownFailed, "error", err)
		}
	}

	app.Events.Stop()
	app.Sessions.Purge()
	slog.Info(LogMsgServerStopped)
}
