package watcher

import "time"

// DefaultDebounce is used when no positive debounce delay is configured.
const DefaultDebounce = 500 * time.Millisecond

// Log messages
const (
	LogMsgWatching       = "Watching menus directory"
	LogMsgWatchError     = "Menus watcher error"
	LogMsgChangeDetected = "Menu file changed"
	LogMsgReloadPending  = "Reload already queued, skipping"
)

// Error messages
const (
	ErrMsgCreateWatcher = "failed to create file watcher: %w"
	ErrMsgWatchDir      = "failed to watch %q: %w"
)
