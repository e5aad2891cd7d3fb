// Package harvest implements Harvest Rush: a farmer collects crops against a
// level countdown while scarecrows block the way. The level curve, the spawn
// engine and the run state machine live here with no UI dependency; the
// platform layer drives frames and supplies input.
package harvest

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/harvest-rush/internal/config"
	"github.com/vovakirdan/harvest-rush/internal/core"
	"github.com/vovakirdan/harvest-rush/internal/registry"
)

// Mode selects the registered variant.
type Mode string

const (
	ModeClassic Mode = "harvest"
	ModeSteady  Mode = "harvest_steady" // No in-level spawn ramp
)

// hud holds the latest values pushed through the sink.
type hud struct {
	score     int
	timeLeft  int
	goal      int
	bestLevel int
	status    string
}

func (h *hud) sink() Sink {
	return Sink{
		Score:     func(v int) { h.score = v },
		TimeLeft:  func(v int) { h.timeLeft = v },
		Goal:      func(v int) { h.goal = v },
		BestLevel: func(v int) { h.bestLevel = v },
		Status:    func(v string) { h.status = v },
	}
}

// Game adapts a Controller to the registry interface.
type Game struct {
	mode  Mode
	ctrl  *Controller
	hud   hud
	hooks []func() // Platform dispose hooks, carried across Reset
}

// Package-level settings applied on the next Reset, set by the CLI.
var (
	configPath       string
	difficultyPreset string
	logger           = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset name.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetLogger sets the logger handed to new controllers.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// New creates a classic Harvest Rush game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewSteady creates a game whose spawn interval stays at the level base.
func NewSteady() *Game {
	return &Game{mode: ModeSteady}
}

func init() {
	registry.Register(registry.ModeInfo{
		ID:      string(ModeClassic),
		Title:   "Harvest Rush",
		Summary: "spawns speed up as the field fills",
	}, func() registry.Game { return New() })
	registry.Register(registry.ModeInfo{
		ID:      string(ModeSteady),
		Title:   "Harvest Rush (Steady)",
		Summary: "spawn interval stays at the level base",
	}, func() registry.Game { return NewSteady() })
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSteady {
		return "Harvest Rush (Steady)"
	}
	return "Harvest Rush"
}

// Reset loads the configuration and creates a controller waiting in the menu.
// It replaces any previous controller; registered dispose hooks move to the
// new one and do not fire.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	hc, err := config.LoadHarvest(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		hc = config.DefaultHarvestConfig()
	}

	preset := config.ParsePreset(difficultyPreset)
	if g.mode == ModeSteady {
		preset = config.DifficultySteady
	}
	config.ApplyHarvestPreset(&hc, preset)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g.hud = hud{}
	g.ctrl = NewController(hc,
		WithSink(g.hud.sink()),
		WithLogger(logger.With("game", g.ID())),
		WithRand(rand.New(rand.NewSource(seed))),
	)
	for _, fn := range g.hooks {
		g.ctrl.OnDispose(fn)
	}
	logger.Debug("game reset", "game", g.ID(), "preset", preset, "seed", seed)
}

// Frame handles menu actions, then runs one controller frame.
// Confirm starts a run (or resumes a paused one); Back returns to the menu
// when no run is in progress.
func (g *Game) Frame(now time.Time, in core.InputFrame) core.StepResult {
	if g.ctrl == nil {
		return core.StepResult{}
	}

	if in.Has(core.ActionConfirm) {
		g.ctrl.Start()
	}
	if in.Has(core.ActionBack) && g.ctrl.State() != StatePlaying {
		g.ctrl.ResetToMenu()
	}

	g.ctrl.Frame(now, in)
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{}
	}
	s := g.ctrl.State()
	return core.GameState{
		Score:      g.ctrl.Score(),
		Level:      g.ctrl.Level(),
		BestLevel:  g.ctrl.BestLevel(),
		GameOver:   s == StateGameOver,
		Paused:     s == StatePaused,
		InMenu:     s == StateMenu,
		Disposed:   g.ctrl.Disposed(),
		RunSeconds: g.ctrl.RunTime(),
	}
}

// Controller exposes the underlying controller.
func (g *Game) Controller() *Controller {
	return g.ctrl
}

// OnDispose registers fn with the current controller and with every
// controller a later Reset creates.
func (g *Game) OnDispose(fn func()) {
	if fn == nil {
		return
	}
	g.hooks = append(g.hooks, fn)
	if g.ctrl != nil {
		g.ctrl.OnDispose(fn)
	}
}

// Dispose releases the controller and runs its hooks.
func (g *Game) Dispose() {
	if g.ctrl != nil {
		g.ctrl.Dispose()
	}
}
