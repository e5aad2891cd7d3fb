package tui

import (
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/harvest-rush/internal/config"
	"github.com/vovakirdan/harvest-rush/internal/core"
	"github.com/vovakirdan/harvest-rush/internal/registry"
)

var registerStubs sync.Once

func withStubModes(t *testing.T) {
	t.Helper()
	registerStubs.Do(func() {
		registry.Register(registry.ModeInfo{ID: "stub", Title: "Stub"}, func() registry.Game { return &stubGame{} })
	})
}

func pick(t *testing.T, m PickerModel, msgs ...tea.Msg) (PickerModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		pm, ok := next.(PickerModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m = pm
	}
	return m, cmd
}

func TestPickerSelectsMode(t *testing.T) {
	withStubModes(t)
	m := NewPickerModel(core.DefaultConfig(), "")

	m, cmd := pick(t, m,
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if cmd == nil {
		t.Fatal("confirm did not quit the picker")
	}
	if m.Selected() == "" {
		t.Fatal("no mode selected")
	}
	if !registry.Exists(m.Selected()) {
		t.Errorf("selected unknown mode %q", m.Selected())
	}
}

func TestPickerCyclesDifficulty(t *testing.T) {
	withStubModes(t)
	m := NewPickerModel(core.DefaultConfig(), config.DifficultyHard)
	if m.Preset() != config.DifficultyHard {
		t.Fatalf("initial preset = %q, want hard", m.Preset())
	}

	m, _ = pick(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Preset() != "" {
		t.Errorf("right from hard = %q, want config", m.Preset())
	}
	m, _ = pick(t, m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Preset() != config.DifficultyNormal {
		t.Errorf("preset = %q, want normal", m.Preset())
	}
	if !strings.Contains(m.View(), "Difficulty: < normal >") {
		t.Error("view does not show the preset")
	}
}

func TestPickerQuit(t *testing.T) {
	withStubModes(t)
	m := NewPickerModel(core.DefaultConfig(), "")

	m, cmd := pick(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q did not quit")
	}
	if m.Selected() != "" {
		t.Error("quit selected a mode")
	}
	if m.View() != "" {
		t.Error("view not empty after quit")
	}
}

func TestPickerTracksResize(t *testing.T) {
	m := NewPickerModel(core.DefaultConfig(), "")
	m, _ = pick(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if c := m.Config(); c.ScreenW != 100 || c.ScreenH != 30 {
		t.Errorf("config = %dx%d, want 100x30", c.ScreenW, c.ScreenH)
	}
}
