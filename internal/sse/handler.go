package sse

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/chestmenus/internal/logger"
)

// Handler streams reload events. The optional "types" query parameter is a
// comma separated event type filter. The latest reload outcome follows the
// connected event.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, ErrMsgStreamingUnsupported, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		var eventTypes []string
		if filter := r.URL.Query().Get("types"); filter != "" {
			eventTypes = strings.Split(filter, ",")
		}

		sub := hub.Subscribe(eventTypes)
		log := logger.FromContext(r.Context()).With("subscriber_id", sub.ID)
		log.Info(LogMsgSubscribed, "filters", eventTypes, "subscribers", hub.SubscriberCount())

		defer func() {
			hub.Unsubscribe(sub.ID)
			log.Info(LogMsgUnsubscribed)
		}()

		connected := Event{
			ID:        sub.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload:   map[string]any{"subscriber_id": sub.ID, "filters": eventTypes},
		}
		if !write(w, flusher, connected) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-sub.Events:
				if !ok {
					// hub stopped
					return
				}
				if !write(w, flusher, event) {
					return
				}

			case <-ticker.C:
				if !write(w, flusher, Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}

// write sends one event and reports whether the connection is still usable.
func write(w http.ResponseWriter, flusher http.Flusher, event Event) bool {
	msg, err := FormatSSEMessage(event)
	if err != nil {
		slog.Error(LogMsgWriteError, "error", err)
		return true
	}
	if _, err := w.Write(msg); err != nil {
		slog.Warn(LogMsgWriteError, "error", err)
		return false
	}
	flusher.Flush()
	return true
}
