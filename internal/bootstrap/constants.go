package bootstrap

// ComponentHost tags log lines written on behalf of the host server.
const ComponentHost = "host"

// Log messages
const (
	LogMsgMenusLoaded           = "Initial menus loaded"
	LogMsgConsoleCommand        = "Console command dispatched"
	LogMsgBroadcast             = "Broadcast"
	LogMsgShuttingDownServer    = "Shutting down server..."
	LogMsgServerForcedShutdown  = "Server forced to shutdown"
	LogMsgWatcherShutdownFailed = "Menus watcher shutdown failed"
	LogMsgServerStopped         = "Server stopped"
)

// Error messages
const (
	ErrMsgInitialReload = "initial menu load failed: %w"
	ErrMsgStartWatcher  = "failed to start menus watcher: %w"
)
