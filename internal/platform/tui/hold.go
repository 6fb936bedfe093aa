package tui

import (
	"time"

	"github.com/vovakirdan/starfall/internal/core"
)

// DefaultHoldWindow is how long a movement key counts as held after its
// last key event. Terminals report presses and auto-repeats but never
// releases, so holding is inferred from repeats arriving inside this window.
// It must outlast the terminal's delay before the first repeat (commonly
// 250-600 ms), so a single tap also moves the player for about half a second.
const DefaultHoldWindow = 500 * time.Millisecond

// HoldTracker turns a stream of key presses into per-tick held state for
// movement actions, and queues one-shot actions until the next tick.
type HoldTracker struct {
	window  time.Duration
	pressed map[core.Action]time.Time
	oneShot core.InputFrame
}

// NewHoldTracker creates a tracker with the given hold window.
// A non-positive window selects DefaultHoldWindow.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window:  window,
		pressed: make(map[core.Action]time.Time),
		oneShot: core.NewInputFrame(),
	}
}

// isHeld reports whether an action is a continuous movement action.
func isHeld(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight || a == core.ActionUp
}

// Press records a key event at time now.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if !isHeld(a) {
		h.oneShot.Set(a)
		return
	}
	// turning around releases the opposite direction at once
	switch a {
	case core.ActionLeft:
		delete(h.pressed, core.ActionRight)
	case core.ActionRight:
		delete(h.pressed, core.ActionLeft)
	}
	h.pressed[a] = now
}

// Frame returns the input for a tick at time now and clears one-shot actions.
func (h *HoldTracker) Frame(now time.Time) core.InputFrame {
	in := h.oneShot.Clone()
	h.oneShot.Clear()
	for a, at := range h.pressed {
		if now.Sub(at) <= h.window {
			in.Set(a)
		} else {
			delete(h.pressed, a)
		}
	}
	return in
}

// Reset forgets every key.
func (h *HoldTracker) Reset() {
	h.oneShot.Clear()
	for a := range h.pressed {
		delete(h.pressed, a)
	}
}
