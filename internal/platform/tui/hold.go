package tui

import (
	"time"

	"github.com/vovakirdan/shrink-arena/internal/core"
)

// Terminals report key presses and auto-repeats but never releases, so a
// direction counts as held until its latch runs out. The first press
// waits out the auto-repeat delay; each repeat only extends it briefly.
const (
	holdInitial = 500 * time.Millisecond
	holdRepeat  = 120 * time.Millisecond
)

var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// holdTracker latches direction keys.
type holdTracker struct {
	until map[core.Action]time.Time
}

func newHoldTracker() holdTracker {
	return holdTracker{until: make(map[core.Action]time.Time)}
}

// press records a key event for a direction at time now.
func (h holdTracker) press(a core.Action, now time.Time) {
	if _, ok := opposite[a]; !ok {
		return
	}
	// Turning around drops the old direction at once.
	delete(h.until, opposite[a])

	if t, ok := h.until[a]; ok && now.Before(t) {
		h.until[a] = maxTime(t, now.Add(holdRepeat))
		return
	}
	h.until[a] = now.Add(holdInitial)
}

// apply sets every still-held direction on the frame and forgets expired ones.
func (h holdTracker) apply(f *core.InputFrame, now time.Time) {
	for a, t := range h.until {
		if !now.Before(t) {
			delete(h.until, a)
			continue
		}
		f.Set(a)
	}
}

// release forgets every held direction.
func (h holdTracker) release() {
	clear(h.until)
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
