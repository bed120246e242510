// Package sse streams reload notifications to connected HTTP clients.
package sse

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/chestmenus/internal/metrics"
)

// Event represents an event sent over SSE
type Event struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	Payload   any    `json:"payload"`
}

// Subscriber receives the events it asked for on Events. The channel is
// closed when the subscriber is removed or the hub stops.
type Subscriber struct {
	ID     string
	Events chan Event
	types  map[string]bool // nil means every type
}

func (s *Subscriber) wants(eventType string) bool {
	return s.types == nil || s.types[eventType]
}

// Hub fans reload events out to subscribers. It remembers the outcome of the
// latest reload so a dashboard that connects later starts from the current
// state. Slow subscribers miss events instead of delaying the reload.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]*Subscriber
	latest      *Event
	stopped     bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subscribers: make(map[string]*Subscriber)}
}

// Subscribe adds a subscriber for eventTypes, or for every type when
// eventTypes is empty. The latest reload outcome, if any, is queued first.
// After Stop the returned subscriber's channel is already closed.
func (h *Hub) Subscribe(eventTypes []string) *Subscriber {
	sub := &Subscriber{
		ID:     uuid.NewString(),
		Events: make(chan Event, SubscriberBuffer),
	}
	if len(eventTypes) > 0 {
		sub.types = make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			sub.types[t] = true
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stopped {
		close(sub.Events)
		return sub
	}
	if h.latest != nil && sub.wants(h.latest.Type) {
		sub.Events <- *h.latest
	}
	h.subscribers[sub.ID] = sub
	metrics.EventSubscribers.Set(float64(len(h.subscribers)))
	return sub
}

// Unsubscribe removes a subscriber and closes its channel.
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if sub, ok := h.subscribers[id]; ok {
		close(sub.Events)
		delete(h.subscribers, id)
		metrics.EventSubscribers.Set(float64(len(h.subscribers)))
	}
}

// Publish delivers an event to every interested subscriber without
// blocking. Reload outcomes are remembered for later subscribers.
func (h *Hub) Publish(eventType string, payload any) {
	event := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stopped {
		return
	}
	if isReloadOutcome(eventType) {
		h.latest = &event
	}
	for _, sub := range h.subscribers {
		if !sub.wants(eventType) {
			continue
		}
		select {
		case sub.Events <- event:
		default:
			metrics.EventsDroppedTotal.Inc()
		}
	}
}

// Latest returns the most recent reload outcome.
func (h *Hub) Latest() (Event, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.latest == nil {
		return Event{}, false
	}
	return *h.latest, true
}

// Stop closes every subscriber. Later publishes are ignored. Safe to call
// more than once.
func (h *Hub) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stopped {
		return
	}
	h.stopped = true
	for id, sub := range h.subscribers {
		close(sub.Events)
		delete(h.subscribers, id)
	}
	metrics.EventSubscribers.Set(0)
}

// SubscriberCount returns the number of live subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

func isReloadOutcome(eventType string) bool {
	return eventType == EventTypeReloadCompleted || eventType == EventTypeReloadFailed
}

// FormatSSEMessage formats an event as "id", "event" and "data" lines.
func FormatSSEMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	msg := "id: " + event.ID + "\n"
	msg += "event: " + event.Type + "\n"
	msg += "data: " + string(data) + "\n\n"
	return []byte(msg), nil
}
