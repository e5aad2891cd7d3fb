package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/harvest-rush/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case "enter", " ":
		return core.ActionConfirm, false
	case "p", "esc":
		return core.ActionPause, false
	case "m", "b":
		return core.ActionBack, false
	case "tab":
		return core.ActionScoreboard, false
	}

	return core.ActionNone, false
}

// Default hold windows. The first press has to outlast the terminal's
// key repeat delay; every repeat then only needs to bridge the repeat rate.
const (
	DefaultInitialHold = 400 * time.Millisecond
	DefaultRepeatHold  = 150 * time.Millisecond
)

var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// HoldTracker turns key presses into held directions.
//
// Terminals report key presses (and auto-repeats) but never releases, so a
// direction counts as held until its hold window runs out without another
// press. Pressing a direction releases the opposite one at once.
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration
	until   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold windows.
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		initial: initial,
		repeat:  repeat,
		until:   make(map[core.Action]time.Time),
	}
}

// Press records a direction press at now. Non-directions are ignored.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	if !a.IsDirection() {
		return
	}
	delete(h.until, opposite[a])

	window := h.initial
	if exp, ok := h.until[a]; ok && now.Before(exp) {
		window = h.repeat
	}
	if exp := now.Add(window); exp.After(h.until[a]) {
		h.until[a] = exp
	}
}

// ReleaseAll drops every held direction.
func (h *HoldTracker) ReleaseAll() {
	clear(h.until)
}

// Holding reports whether a is held at now.
func (h *HoldTracker) Holding(a core.Action, now time.Time) bool {
	exp, ok := h.until[a]
	return ok && now.Before(exp)
}

// Apply marks every direction held at now on the frame and forgets the
// expired ones.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, exp := range h.until {
		if !now.Before(exp) {
			delete(h.until, a)
			continue
		}
		frame.Hold(a)
	}
}
