package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/harvest-rush/internal/core"
	"github.com/vovakirdan/harvest-rush/internal/storage"
)

// stubGame records what the model feeds it and reports a scripted state.
type stubGame struct {
	state    core.GameState
	resets   int
	frames   []core.InputFrame
	hooks    []func()
	disposed bool
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Level: 1, BestLevel: 1, InMenu: true}
}

func (g *stubGame) Frame(_ time.Time, in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState   { return g.state }
func (g *stubGame) OnDispose(fn func())     { g.hooks = append(g.hooks, fn) }

func (g *stubGame) Dispose() {
	if g.disposed {
		return
	}
	g.disposed = true
	for i := len(g.hooks) - 1; i >= 0; i-- {
		g.hooks[i]()
	}
}

func (g *stubGame) lastFrame() core.InputFrame {
	return g.frames[len(g.frames)-1]
}

func newTestModel(t *testing.T) (Model, *stubGame, *storage.Store) {
	t.Helper()
	store, err := storage.OpenSession()
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	game := &stubGame{}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1, Player: "tester"})
	return m, game, store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelResetsOnce(t *testing.T) {
	m, game, _ := newTestModel(t)
	if game.resets != 1 {
		t.Fatalf("resets = %d, want 1", game.resets)
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if game.resets != 1 {
		t.Errorf("resize reset the game")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 120x40", m.screen.Width(), m.screen.Height())
	}
}

func TestModelEdgeActionsLastOneFrame(t *testing.T) {
	m, game, _ := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg(time.Unix(10, 0)))
	if !game.lastFrame().Has(core.ActionConfirm) {
		t.Fatal("confirm not delivered")
	}

	update(t, m, TickMsg(time.Unix(10, 16_000_000)))
	if game.lastFrame().Has(core.ActionConfirm) {
		t.Error("confirm delivered twice")
	}
}

func TestModelDirectionHeldAcrossTicks(t *testing.T) {
	m, game, _ := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	now := time.Now()
	m = update(t, m, TickMsg(now))
	update(t, m, TickMsg(now.Add(50*time.Millisecond)))

	for i, f := range game.frames {
		if !f.Holding(core.ActionRight) {
			t.Errorf("frame %d: right not held", i)
		}
	}
}

func TestModelLogsRunOncePerGameOver(t *testing.T) {
	m, game, store := newTestModel(t)
	t0 := time.Unix(50, 0)

	game.state = core.GameState{Score: 120, Level: 3, GameOver: true, RunSeconds: 42.5}
	m = update(t, m, TickMsg(t0))
	m = update(t, m, TickMsg(t0.Add(time.Second)))

	n, err := store.RunCount("stub")
	if err != nil {
		t.Fatalf("RunCount: %v", err)
	}
	if n != 1 {
		t.Fatalf("runs = %d after one game over, want 1", n)
	}

	runs, err := store.TopRuns("stub", 0)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	r := runs[0]
	if r.Player != "tester" || r.Score != 120 || r.Level != 3 || r.Duration != 42500*time.Millisecond {
		t.Errorf("run = %+v", r)
	}

	game.state = core.GameState{Level: 1}
	m = update(t, m, TickMsg(t0.Add(2*time.Second)))
	game.state = core.GameState{Score: 10, Level: 1, GameOver: true}
	update(t, m, TickMsg(t0.Add(3*time.Second)))

	if n, _ := store.RunCount("stub"); n != 2 {
		t.Errorf("runs = %d after second game over, want 2", n)
	}
}

func TestModelScoreboardPausesRun(t *testing.T) {
	m, game, _ := newTestModel(t)
	game.state = core.GameState{Level: 1}

	m = update(t, m, TickMsg(time.Unix(1, 0)))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("scoreboard not opened")
	}
	if !strings.Contains(m.View(), "SESSION RUNS") {
		t.Error("scoreboard view missing title")
	}

	m = update(t, m, TickMsg(time.Unix(2, 0)))
	if !game.lastFrame().Has(core.ActionPause) {
		t.Error("opening the scoreboard did not pause the run")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scoreboard != nil {
		t.Error("esc did not close the scoreboard")
	}
	if !strings.Contains(m.View(), "stub") {
		t.Error("game view not restored")
	}
}

func TestModelScoreboardInMenuDoesNotPause(t *testing.T) {
	m, game, _ := newTestModel(t)

	m = update(t, m, TickMsg(time.Unix(1, 0)))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	update(t, m, TickMsg(time.Unix(2, 0)))
	if game.lastFrame().Has(core.ActionPause) {
		t.Error("pause sent while in the menu")
	}
}

func TestModelQuitDisposes(t *testing.T) {
	m, game, _ := newTestModel(t)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if !game.disposed {
		t.Error("game not disposed on quit")
	}
	if next.View() != "" {
		t.Error("view not empty after quit")
	}
}

func TestModelDisposeStopsDriver(t *testing.T) {
	m, game, _ := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	game.Dispose()

	now := time.Now()
	if m.holds.Holding(core.ActionLeft, now) {
		t.Error("dispose kept a held direction")
	}

	next, cmd := m.Update(TickMsg(now))
	if cmd != nil {
		t.Error("tick after dispose scheduled another tick")
	}
	if len(game.frames) != 0 {
		t.Errorf("disposed game got %d frames", len(game.frames))
	}
	if _, ok := next.(Model); !ok {
		t.Fatalf("Update returned %T", next)
	}
}
