package sse

import "time"

// SubscriberBuffer is how many undelivered events a subscriber can hold.
const SubscriberBuffer = 16

// KeepaliveInterval is how often idle connections get a keepalive event.
const KeepaliveInterval = 30 * time.Second

// Event types
const (
	EventTypeConnected       = "connected"
	EventTypeReloadCompleted = "reload.completed"
	EventTypeReloadFailed    = "reload.failed"
	EventTypeKeepalive       = "keepalive"
)

// ErrMsgStreamingUnsupported is returned when the connection cannot flush.
const ErrMsgStreamingUnsupported = "SSE not supported"

// Log messages
const (
	LogMsgSubscribed   = "Reload event stream opened"
	LogMsgUnsubscribed = "Reload event stream closed"
	LogMsgWriteError   = "Failed to write SSE event"
)
