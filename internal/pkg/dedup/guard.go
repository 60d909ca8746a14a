package dedup

import (
	"sync"
	"time"
)

// Window is the cool-down during which a repeated scan in the same direction
// for the same card is rejected outright.
const Window = 10 * time.Minute

// Action is the direction of a scan.
type Action string

const (
	ActionCheckIn  Action = "checkin"
	ActionCheckOut Action = "checkout"
)

type entry struct {
	at     time.Time
	action Action
}

// Guard is a short-lived per-card cache that absorbs rapid repeated taps of
// the same badge before the ledger transaction completes. One live entry per
// card id; the newest write overwrites. Constructed once at service start and
// shared by every scan path.
type Guard struct {
	mu      sync.Mutex
	window  time.Duration
	entries map[string]entry
}

// NewGuard creates a Guard with the given cool-down window. A non-positive
// window falls back to the default.
func NewGuard(window time.Duration) *Guard {
	if window <= 0 {
		window = Window
	}
	return &Guard{
		window:  window,
		entries: make(map[string]entry),
	}
}

// IsDuplicate reports whether the card already has a live entry in the same
// direction. Called before any state-machine work.
func (g *Guard) IsDuplicate(cardID string, action Action, now time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.entries[cardID]
	if !ok {
		return false
	}
	return e.action == action && now.Sub(e.at) < g.window
}

// Record overwrites the card's entry after a successful transition. Entries
// older than the window are swept on every write, so memory stays bounded to
// active scanners plus one window of history.
func (g *Guard) Record(cardID string, action Action, now time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for id, e := range g.entries {
		if now.Sub(e.at) >= g.window {
			delete(g.entries, id)
		}
	}
	g.entries[cardID] = entry{at: now, action: action}
}

// Len returns the number of live entries.
func (g *Guard) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.entries)
}
