package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/chestmenus/internal/config"
	"github.com/osse101/chestmenus/internal/menu"
	"github.com/osse101/chestmenus/internal/reload"
	"github.com/osse101/chestmenus/internal/server"
	"github.com/osse101/chestmenus/internal/session"
	"github.com/osse101/chestmenus/internal/sse"
	"github.com/osse101/chestmenus/internal/watcher"
)

// App holds the wired components of the service.
type App struct {
	Config   *config.Config
	Registry *menu.Registry
	Sessions *session.Tracker
	Reloads  *reload.Service
	Events   *sse.Hub
	Watcher  *watcher.Watcher
	Server   *server.Server
}

// Build wires every component from the configuration. Nothing is started.
func Build(cfg *config.Config) *App {
	host := NewLogServer()
	registry := menu.NewRegistry(host)
	sessions := session.NewTracker(registry, host, cfg.SessionCapacity, cfg.SessionTTL)
	events := sse.NewHub()

	reloads := reload.NewService(cfg.MenusDir, registry,
		reload.WithPermissionPrefix(cfg.OpenPermissionPrefix),
		// open sessions point at menus that were just replaced
		reload.WithReloadHook(func(*reload.Report) { sessions.Purge() }),
		reload.WithReloadHook(events.PublishReload),
		reload.WithFailureHook(events.PublishReloadFailure),
	)

	srv := server.NewServer(server.Options{
		Port:        cfg.Port,
		APIKey:      cfg.APIKey,
		Guard: server.GuardConfig{
			MaxRequests:     cfg.RateLimit,
			Window:          cfg.RateLimitWindow,
			FailedAuthAlert: cfg.FailedAuthAlert,
			TrustedProxies:  cfg.TrustedProxies,
		},
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
		Events:      events,
	}, registry, reloads)

	return &App{
		Config:   cfg,
		Registry: registry,
		Sessions: sessions,
		Reloads:  reloads,
		Events:   events,
		Server:   srv,
	}
}

// Start runs the first reload and, when enabled, starts the directory
// watcher. A first reload that cannot read the menus directory is fatal.
func (a *App) Start(ctx context.Context) error {
	report, err := a.Reloads.Reload(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgInitialReload, err)
	}
	slog.Info(LogMsgMenusLoaded, "menus", report.Menus, "errors", report.Errors, "warnings", report.Warnings)

	if !a.Config.AutoReload {
		return nil
	}
	w, err := watcher.New(a.Config.MenusDir, a.Config.ReloadDebounce, a.Reloads)
	if err != nil {
		return fmt.Errorf(ErrMsgStartWatcher, err)
	}
	w.Start()
	a.Watcher = w
	return nil
}
