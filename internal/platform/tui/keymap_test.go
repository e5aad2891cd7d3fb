package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/harvest-rush/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"w", runeKey('w'), core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"m", runeKey('m'), core.ActionBack, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionScoreboard, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestHoldTrackerExpires(t *testing.T) {
	h := NewHoldTracker(400*time.Millisecond, 150*time.Millisecond)
	t0 := time.Unix(100, 0)

	h.Press(core.ActionRight, t0)
	if !h.Holding(core.ActionRight, t0.Add(399*time.Millisecond)) {
		t.Error("released before the initial window ended")
	}
	if h.Holding(core.ActionRight, t0.Add(400*time.Millisecond)) {
		t.Error("still held after the initial window")
	}
}

func TestHoldTrackerRepeatExtends(t *testing.T) {
	h := NewHoldTracker(400*time.Millisecond, 150*time.Millisecond)
	t0 := time.Unix(100, 0)

	h.Press(core.ActionUp, t0)
	// Auto-repeat early in the window never shortens the hold.
	h.Press(core.ActionUp, t0.Add(50*time.Millisecond))
	if !h.Holding(core.ActionUp, t0.Add(350*time.Millisecond)) {
		t.Error("early repeat shortened the hold")
	}

	h.Press(core.ActionUp, t0.Add(380*time.Millisecond))
	if !h.Holding(core.ActionUp, t0.Add(520*time.Millisecond)) {
		t.Error("repeat did not extend the hold")
	}
	if h.Holding(core.ActionUp, t0.Add(530*time.Millisecond)) {
		t.Error("repeat extended by more than the repeat window")
	}
}

func TestHoldTrackerOppositeReleases(t *testing.T) {
	h := NewHoldTracker(400*time.Millisecond, 150*time.Millisecond)
	t0 := time.Unix(100, 0)

	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionUp, t0)
	h.Press(core.ActionRight, t0.Add(10*time.Millisecond))

	now := t0.Add(20 * time.Millisecond)
	if h.Holding(core.ActionLeft, now) {
		t.Error("left still held after pressing right")
	}
	if !h.Holding(core.ActionRight, now) || !h.Holding(core.ActionUp, now) {
		t.Error("right and up should both be held")
	}
}

func TestHoldTrackerApply(t *testing.T) {
	h := NewHoldTracker(400*time.Millisecond, 150*time.Millisecond)
	t0 := time.Unix(100, 0)

	h.Press(core.ActionDown, t0)
	h.Press(core.ActionConfirm, t0)

	frame := core.NewInputFrame()
	h.Apply(&frame, t0.Add(100*time.Millisecond))
	if !frame.Holding(core.ActionDown) {
		t.Error("down not applied")
	}
	if frame.Holding(core.ActionConfirm) || frame.Has(core.ActionConfirm) {
		t.Error("non-direction tracked as held")
	}

	frame.Clear()
	h.Apply(&frame, t0.Add(time.Second))
	if frame.Holding(core.ActionDown) {
		t.Error("expired direction applied")
	}

	h.Press(core.ActionLeft, t0)
	h.ReleaseAll()
	if h.Holding(core.ActionLeft, t0) {
		t.Error("ReleaseAll kept a direction")
	}
}
