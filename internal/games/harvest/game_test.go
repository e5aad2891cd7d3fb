package harvest

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/harvest-rush/internal/core"
	"github.com/vovakirdan/harvest-rush/internal/registry"
)

func newTestGame(t *testing.T, g *Game) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 12345})
	return g
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{"harvest", "harvest_steady"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
	}
	if New().Title() != "Harvest Rush" || NewSteady().Title() != "Harvest Rush (Steady)" {
		t.Error("unexpected titles")
	}

	if def, ok := registry.Default(); !ok || def.ID != string(ModeClassic) {
		t.Errorf("Default() = %+v, want the classic mode", def)
	}
	for _, info := range registry.List() {
		g, _ := registry.Create(info.ID)
		if info.Title != g.Title() || info.Summary == "" {
			t.Errorf("mode %q info = %+v, game title %q", info.ID, info, g.Title())
		}
	}
}

func TestGameMenuFlow(t *testing.T) {
	g := newTestGame(t, New())
	now := time.Unix(5000, 0)

	if s := g.State(); !s.InMenu || s.Level != 1 || s.BestLevel != 1 {
		t.Fatalf("initial state = %+v, want menu at level 1", s)
	}

	res := g.Frame(now, press(core.ActionConfirm))
	if res.State.InMenu || res.State.Paused || res.State.GameOver {
		t.Fatalf("after confirm state = %+v, want playing", res.State)
	}

	// Back is ignored while a run is in progress.
	now = now.Add(16 * time.Millisecond)
	g.Frame(now, press(core.ActionBack))
	if g.State().InMenu {
		t.Fatal("back returned to the menu during play")
	}

	now = now.Add(16 * time.Millisecond)
	g.Frame(now, press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause edge did not pause")
	}

	now = now.Add(16 * time.Millisecond)
	g.Frame(now, press(core.ActionBack))
	if !g.State().InMenu {
		t.Fatal("back from pause did not return to the menu")
	}
}

func TestGameRunSecondsExcludesPause(t *testing.T) {
	g := newTestGame(t, New())
	now := time.Unix(6000, 0)
	g.Frame(now, press(core.ActionConfirm))

	for range 10 {
		now = now.Add(20 * time.Millisecond)
		g.Frame(now, core.NewInputFrame())
	}
	played := g.State().RunSeconds

	g.Frame(now, press(core.ActionPause))
	for range 10 {
		now = now.Add(20 * time.Millisecond)
		g.Frame(now, core.NewInputFrame())
	}
	if got := g.State().RunSeconds; got != played {
		t.Errorf("RunSeconds = %v after pause, want %v", got, played)
	}
	if played < 0.19 || played > 0.21 {
		t.Errorf("RunSeconds = %v, want about 0.2", played)
	}
}

func TestGameRenderMenu(t *testing.T) {
	g := newTestGame(t, New())
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "HARVEST RUSH") {
		t.Errorf("menu render missing title:\n%s", out)
	}
	if !strings.Contains(screen.Row(0), "Goal 50") {
		t.Errorf("HUD row = %q, want goal label", screen.Row(0))
	}
}

func TestGameRenderPlaying(t *testing.T) {
	g := newTestGame(t, New())
	g.Frame(time.Unix(7000, 0), press(core.ActionConfirm))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.ContainsRune(out, '▓') {
		t.Error("no scarecrow drawn")
	}
	if !strings.ContainsRune(out, '▼') {
		t.Error("no farmer drawn")
	}
	if !strings.Contains(screen.Row(1), "Level 1") {
		t.Errorf("status row = %q, want %q", screen.Row(1), "Level 1")
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newTestGame(t, New())
	screen := core.NewScreen(20, 8)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected too small message:\n%s", screen.String())
	}
}

func TestGameDispose(t *testing.T) {
	g := newTestGame(t, New())
	g.Dispose()
	g.Dispose()

	if !g.State().Disposed {
		t.Fatal("State().Disposed = false")
	}
	g.Frame(time.Now(), press(core.ActionConfirm))
	if !g.State().InMenu {
		t.Error("disposed game left the menu")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if strings.TrimSpace(screen.String()) != "" {
		t.Error("disposed game still renders")
	}
}

func TestGameDisposeHooks(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := New()

	var calls []string
	g.OnDispose(func() { calls = append(calls, "early") })
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7})
	g.OnDispose(func() { calls = append(calls, "late") })

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 8})
	if len(calls) != 0 {
		t.Fatalf("Reset fired dispose hooks: %v", calls)
	}

	g.Dispose()
	g.Dispose()
	if len(calls) != 2 || calls[0] != "late" || calls[1] != "early" {
		t.Errorf("hooks ran as %v, want [late early]", calls)
	}
}

func TestSteadyGameKeepsSpawnBase(t *testing.T) {
	g := newTestGame(t, NewSteady())
	now := time.Unix(8000, 0)
	g.Frame(now, press(core.ActionConfirm))
	for range 60 {
		now = now.Add(30 * time.Millisecond)
		g.Frame(now, core.NewInputFrame())
	}
	if got := g.Controller().SpawnInterval(); g.State().Level == 1 && got != SpawnBase(1) {
		t.Errorf("SpawnInterval() = %v, want %v", got, SpawnBase(1))
	}
}
