package reload

// Log messages
const (
	LogMsgReloadStarted  = "Reloading menus"
	LogMsgReloadFinished = "Menus reloaded"
	LogMsgReloadFailed   = "Menu reload failed"
)

// Error messages
const (
	ErrMsgMenusDir      = "cannot read menus directory %q: %w"
	ErrMsgNotADirectory = "menus path %q is not a directory"
	ErrMsgSkippedFile   = "The menu file %q could not be loaded and was skipped"
)
