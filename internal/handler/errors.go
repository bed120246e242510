package handler

// Client-facing error messages. They never include internal error details.
const (
	ErrMsgInternal       = "Something went wrong"
	ErrMsgMenuNotFound   = "Menu not found"
	ErrMsgCommandUnknown = "No menu is bound to that command"
	ErrMsgNoReloadYet    = "Menus have not been loaded yet"
	ErrMsgReloadFailed   = "Failed to reload menus"
)

// Success messages
const (
	MsgMenusReloaded = "Menus reloaded"
)

// Log messages
const (
	LogMsgEncodeFailed   = "Failed to encode JSON response"
	LogMsgWriteFailed    = "Failed to write response buffer"
	LogMsgReloadFailed   = "Reload requested over HTTP failed"
	LogMsgReloadNotReady = "Readiness check failed"
)

// Health statuses
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)
