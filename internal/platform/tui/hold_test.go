package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/starfall/internal/core"
)

func TestHoldTrackerWindow(t *testing.T) {
	h := NewHoldTracker(150 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionLeft, t0)

	tests := []struct {
		after time.Duration
		held  bool
	}{
		{0, true},
		{100 * time.Millisecond, true},
		{150 * time.Millisecond, true},
		{151 * time.Millisecond, false},
		{100 * time.Millisecond, false}, // expired keys stay released
	}
	for _, tc := range tests {
		in := h.Frame(t0.Add(tc.after))
		if in.Has(core.ActionLeft) != tc.held {
			t.Errorf("at +%v held = %v, expected %v", tc.after, !tc.held, tc.held)
		}
	}
}

func TestHoldTrackerRepeatExtends(t *testing.T) {
	h := NewHoldTracker(0)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionRight, t0)
	h.Press(core.ActionRight, t0.Add(400*time.Millisecond))

	if !h.Frame(t0.Add(800 * time.Millisecond)).Has(core.ActionRight) {
		t.Error("auto-repeat should keep the key held")
	}
	if h.Frame(t0.Add(901 * time.Millisecond)).Has(core.ActionRight) {
		t.Error("the key should release one window after the last repeat")
	}
}

func TestDefaultHoldWindowBridgesRepeatDelay(t *testing.T) {
	h := NewHoldTracker(0)
	t0 := time.Unix(1000, 0)

	// a terminal with a 450 ms repeat delay and a 30 ms repeat rate
	events := []time.Duration{0}
	for at := 450 * time.Millisecond; at <= time.Second; at += 30 * time.Millisecond {
		events = append(events, at)
	}

	for at := time.Duration(0); at <= time.Second; at += time.Second / 60 {
		for len(events) > 0 && events[0] <= at {
			h.Press(core.ActionLeft, t0.Add(events[0]))
			events = events[1:]
		}
		if !h.Frame(t0.Add(at)).Has(core.ActionLeft) {
			t.Fatalf("held key dropped at +%v", at)
		}
	}
}

func TestHoldTrackerOppositeReleases(t *testing.T) {
	h := NewHoldTracker(0)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionRight, t0.Add(10*time.Millisecond))

	in := h.Frame(t0.Add(20 * time.Millisecond))
	if in.Has(core.ActionLeft) || !in.Has(core.ActionRight) {
		t.Errorf("expected only right held, got %v", in.Actions)
	}
}

func TestHoldTrackerOneShot(t *testing.T) {
	h := NewHoldTracker(0)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionPause, t0)
	h.Press(core.ActionUp, t0)

	first := h.Frame(t0)
	if !first.Has(core.ActionPause) || !first.Has(core.ActionUp) {
		t.Fatalf("first frame = %v", first.Actions)
	}
	second := h.Frame(t0.Add(time.Millisecond))
	if second.Has(core.ActionPause) {
		t.Error("one-shot actions should fire once")
	}
	if !second.Has(core.ActionUp) {
		t.Error("jump is a held action")
	}

	h.Reset()
	if h.Frame(t0).Has(core.ActionUp) {
		t.Error("Reset should release everything")
	}
}
