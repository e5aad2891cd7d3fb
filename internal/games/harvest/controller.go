package harvest

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/harvest-rush/internal/config"
)

// RunState is the controller state machine.
type RunState int

const (
	StateMenu RunState = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s RunState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Controller owns a run: score, countdown, level, field contents and the
// Menu/Playing/Paused/GameOver state machine. It is the only mutator of that
// state and is not safe for concurrent use.
type Controller struct {
	cfg     config.HarvestConfig
	ramp    *config.SpawnRamp
	rng     *rand.Rand
	sink    Sink
	logger  *log.Logger
	clock   *Clock
	spawner *Spawner

	state     RunState
	level     int
	score     int
	goal      int
	bestLevel int

	timeLeft      float64
	spawnBase     float64
	spawnInterval float64
	elapsed       float64 // Seconds played in the current level
	runTime       float64 // Seconds played in the current run

	farmer     Farmer
	crops      []Crop
	scarecrows []Scarecrow

	disposed  bool
	disposers []func()
}

// Option configures a Controller.
type Option func(*Controller)

// WithSink sets the HUD label sink.
func WithSink(s Sink) Option {
	return func(c *Controller) {
		c.sink = s
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRand sets the random source for crop and scarecrow placement.
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// NewController creates a controller waiting in the menu at level 1.
func NewController(cfg config.HarvestConfig, opts ...Option) *Controller {
	c := &Controller{
		cfg:       cfg,
		ramp:      config.NewSpawnRamp(cfg.Ramp),
		logger:    log.New(io.Discard),
		clock:     NewClock(cfg.Timing.MaxStep),
		state:     StateMenu,
		level:     1,
		bestLevel: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	c.spawner = NewSpawner(c.rng, cfg)

	params := Curve(c.level)
	c.goal = params.Goal
	c.timeLeft = params.TimeLimit
	c.spawnBase = params.SpawnBase
	c.spawnInterval = params.SpawnBase
	c.farmer = NewFarmer(cfg)

	c.sync()
	c.sink.status("Menu")
	return c
}

// Start begins a fresh run from the menu or after game over, or resumes a
// paused run. It does nothing while playing.
func (c *Controller) Start() {
	if c.disposed {
		return
	}
	switch c.state {
	case StateMenu, StateGameOver:
		c.level = 1
		c.score = 0
		c.runTime = 0
		c.setupLevel()
		c.state = StatePlaying
		c.logger.Info("run started", "goal", c.goal, "time", c.timeLeft)
	case StatePaused:
		c.state = StatePlaying
		c.sink.status(fmt.Sprintf("Level %d", c.level))
	}
}

// TogglePause switches between Playing and Paused. It does nothing in the
// menu or after game over.
func (c *Controller) TogglePause() {
	if c.disposed {
		return
	}
	switch c.state {
	case StatePlaying:
		c.state = StatePaused
		c.sink.status(fmt.Sprintf("Paused: Level %d", c.level))
	case StatePaused:
		c.state = StatePlaying
		c.sink.status(fmt.Sprintf("Level %d", c.level))
	}
}

// ResetToMenu returns to the menu. The current level is set up again so the
// field behind the menu is fresh; score and level stay visible until the
// next Start.
func (c *Controller) ResetToMenu() {
	if c.disposed {
		return
	}
	c.state = StateMenu
	c.setupLevel()
	c.sink.status("Menu")
}

// OnDispose registers a release hook run by Dispose, such as unregistering
// an input listener or stopping the frame driver.
func (c *Controller) OnDispose(fn func()) {
	if fn == nil {
		return
	}
	if c.disposed {
		fn()
		return
	}
	c.disposers = append(c.disposers, fn)
}

// Dispose runs the release hooks in reverse registration order. Afterwards
// every entry point is a no-op. Calling it again does nothing.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	for i := len(c.disposers) - 1; i >= 0; i-- {
		c.disposers[i]()
	}
	c.disposers = nil
	c.logger.Debug("controller disposed", "snapshot", c.Snapshot())
}

// setupLevel prepares the current level. Score carries over.
func (c *Controller) setupLevel() {
	params := Curve(c.level)
	c.timeLeft = params.TimeLimit
	c.goal = params.Goal
	c.spawnBase = params.SpawnBase
	c.spawnInterval = params.SpawnBase
	c.spawner.Reset()
	c.elapsed = 0
	c.clock.Reset()
	c.bumpBestLevel()

	c.farmer = NewFarmer(c.cfg)
	c.crops = c.crops[:0]
	c.scarecrows = layoutScarecrows(c.rng, c.cfg, params.Obstacles)

	c.sync()
	c.sink.status(fmt.Sprintf("Level %d", c.level))
}

// nextLevel advances to the following level without stopping play.
func (c *Controller) nextLevel() {
	c.logger.Debug("level cleared", "level", c.level, "score", c.score, "goal", c.goal)
	c.level++
	c.setupLevel()
}

// bumpBestLevel records the current level if it beats the session best.
func (c *Controller) bumpBestLevel() {
	if c.level > c.bestLevel {
		c.bestLevel = c.level
		c.sink.bestLevel(c.bestLevel)
	}
}

// endRun moves to GameOver once the countdown runs out.
func (c *Controller) endRun() {
	c.state = StateGameOver
	c.sink.status(fmt.Sprintf("Game Over: Reached Level %d", c.level))
	c.sync()
	c.logger.Info("run over", "level", c.level, "score", c.score, "best_level", c.bestLevel)
}

// sync pushes every HUD value to the sink.
func (c *Controller) sync() {
	c.sink.score(c.score)
	c.sink.timeLeft(int(math.Ceil(c.timeLeft)))
	c.sink.goal(c.goal)
	c.sink.bestLevel(c.bestLevel)
}

// State returns the current run state.
func (c *Controller) State() RunState { return c.state }

// Level returns the current level.
func (c *Controller) Level() int { return c.level }

// Score returns the cumulative score of the run.
func (c *Controller) Score() int { return c.score }

// Goal returns the score needed to clear the current level.
func (c *Controller) Goal() int { return c.goal }

// BestLevel returns the highest level reached since the controller was created.
func (c *Controller) BestLevel() int { return c.bestLevel }

// TimeLeft returns the remaining countdown in seconds.
func (c *Controller) TimeLeft() float64 { return c.timeLeft }

// SpawnInterval returns the current time between crop spawns.
func (c *Controller) SpawnInterval() float64 { return c.spawnInterval }

// RunTime returns the seconds played in the current run, pauses excluded.
func (c *Controller) RunTime() float64 { return c.runTime }

// Disposed reports whether Dispose has been called.
func (c *Controller) Disposed() bool { return c.disposed }

// Farmer returns a copy of the player character.
func (c *Controller) Farmer() Farmer { return c.farmer }

// Crops returns a copy of the live crops.
func (c *Controller) Crops() []Crop {
	return append([]Crop(nil), c.crops...)
}

// Scarecrows returns a copy of the scarecrow layout.
func (c *Controller) Scarecrows() []Scarecrow {
	return append([]Scarecrow(nil), c.scarecrows...)
}
