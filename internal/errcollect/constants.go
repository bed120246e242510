package errcollect

// Log messages
const (
	LogMsgProblemsFound = "Problems found while loading menus"
)
