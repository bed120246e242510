package sse

// ReloadCompletedPayload summarises a finished reload pass.
type ReloadCompletedPayload struct {
	ReloadID   string `json:"reload_id"`
	Files      int    `json:"files"`
	Menus      int    `json:"menus"`
	Errors     int    `json:"errors"`
	Warnings   int    `json:"warnings"`
	DurationMs int64  `json:"duration_ms"`
}

// ReloadFailedPayload is sent when a reload pass could not run at all.
type ReloadFailedPayload struct {
	Error string `json:"error"`
}
