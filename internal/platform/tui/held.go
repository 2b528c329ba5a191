package tui

import (
	"time"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// HeldKeys emulates key-held state on terminals that only report presses.
// A press keeps its action active for one hold window; the terminal's key
// repeat renews it while the key stays down.
type HeldKeys struct {
	window  time.Duration
	expires map[core.Action]time.Time
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	return &HeldKeys{
		window:  window,
		expires: make(map[core.Action]time.Time),
	}
}

// Press records a key press at now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	h.expires[a] = now.Add(h.window)
}

// Active returns the actions still held at now and forgets expired ones.
func (h *HeldKeys) Active(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, until := range h.expires {
		if now.Before(until) {
			frame.Set(a)
		} else {
			delete(h.expires, a)
		}
	}
	return frame
}

// Release drops every held action.
func (h *HeldKeys) Release() {
	clear(h.expires)
}
