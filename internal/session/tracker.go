// Package session tracks which menu each player has open so inventory clicks
// can be resolved back to icons.
package session

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/chestmenus/internal/action"
	"github.com/osse101/chestmenus/internal/domain"
	"github.com/osse101/chestmenus/internal/menu"
	"github.com/osse101/chestmenus/internal/metrics"
)

// Session is the menu a player is looking at.
type Session struct {
	Menu     *menu.Menu
	OpenedAt time.Time
}

// Tracker maps player IDs to their open menu in a bounded LRU whose entries
// expire, so players who disconnect without closing are forgotten.
type Tracker struct {
	lru      *expirable.LRU[string, *Session]
	registry *menu.Registry
	server   domain.Server
}

// NewTracker creates a tracker holding at most capacity sessions for ttl.
func NewTracker(registry *menu.Registry, server domain.Server, capacity int, ttl time.Duration) *Tracker {
	return &Tracker{
		lru:      expirable.NewLRU[string, *Session](capacity, nil, ttl),
		registry: registry,
		server:   server,
	}
}

// Wrap returns a Player whose OpenMenu and CloseMenu calls are tracked.
// Pass the wrapped player to the registry's open methods.
func (t *Tracker) Wrap(p domain.Player) domain.Player {
	if tp, ok := p.(*trackedPlayer); ok && tp.tracker == t {
		return tp
	}
	return &trackedPlayer{Player: p, tracker: t}
}

// Current returns the menu the player has open.
func (t *Tracker) Current(playerID string) (*menu.Menu, bool) {
	s, ok := t.lru.Get(playerID)
	if !ok {
		return nil, false
	}
	return s.Menu, true
}

// HandleClick resolves an inventory slot of the player's open menu and runs
// the icon there. It reports false when there is no open menu or no icon in
// the slot.
func (t *Tracker) HandleClick(p domain.Player, slot int) bool {
	m, ok := t.Current(p.ID())
	if !ok {
		return false
	}
	icon := m.IconAt(slot)
	if icon == nil {
		return false
	}

	metrics.IconClicksTotal.WithLabelValues(m.SourceFile()).Inc()

	player := t.Wrap(p)
	ctx := action.Context{Player: player, Server: t.server, Menus: t.registry}
	if icon.OnClick(ctx) {
		// an action may have opened another menu in the meantime
		if current, _ := t.Current(p.ID()); current == m {
			player.CloseMenu()
		}
	}
	return true
}

// HandleClose forgets the player's session after the host reports the
// window was closed.
func (t *Tracker) HandleClose(playerID string) {
	t.lru.Remove(playerID)
	t.publish()
}

// Len returns the number of live sessions.
func (t *Tracker) Len() int {
	return t.lru.Len()
}

// Purge forgets every session. Call it after a reload replaced the menus.
func (t *Tracker) Purge() {
	t.lru.Purge()
	t.publish()
}

func (t *Tracker) opened(playerID string, m *menu.Menu) {
	t.lru.Add(playerID, &Session{Menu: m, OpenedAt: time.Now()})
	metrics.MenuOpensTotal.WithLabelValues(m.SourceFile()).Inc()
	t.publish()
}

func (t *Tracker) publish() {
	metrics.OpenSessions.Set(float64(t.lru.Len()))
}

// trackedPlayer decorates a host player.
type trackedPlayer struct {
	domain.Player
	tracker *Tracker
}

func (p *trackedPlayer) OpenMenu(view domain.MenuView) {
	p.Player.OpenMenu(view)
	if m, ok := view.(*menu.Menu); ok {
		p.tracker.opened(p.ID(), m)
	}
}

func (p *trackedPlayer) CloseMenu() {
	p.Player.CloseMenu()
	p.tracker.HandleClose(p.ID())
}
