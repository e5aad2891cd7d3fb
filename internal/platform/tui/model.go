package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/harvest-rush/internal/core"
	"github.com/vovakirdan/harvest-rush/internal/registry"
	"github.com/vovakirdan/harvest-rush/internal/storage"
)

// Model is the Bubble Tea model that drives one game.
// Every tick runs one game frame; View renders it.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	logger     *log.Logger
	keys       *KeyMapper
	holds      *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	scoreboard *ScoreboardModel
	driver     *driver
	quitting   bool
	runSaved   bool // Whether the current game over has been logged
}

// driver is the tick loop state shared by every copy of a Model.
type driver struct {
	stopped bool
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the model logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithHoldWindows overrides how long a key press keeps a direction held.
func WithHoldWindows(initial, repeat time.Duration) Option {
	return func(m *Model) {
		m.holds = NewHoldTracker(initial, repeat)
	}
}

// NewModel creates a new Bubble Tea model for the given game.
// store may be nil, in which case finished runs are not logged.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		logger:     log.New(io.Discard),
		keys:       NewKeyMapper(),
		holds:      NewHoldTracker(DefaultInitialHold, DefaultRepeatHold),
		inputFrame: core.NewInputFrame(),
		driver:     &driver{},
	}
	for _, opt := range opts {
		opt(&m)
	}

	game.Reset(cfg)
	holds, drv := m.holds, m.driver
	game.OnDispose(holds.ReleaseAll)
	game.OnDispose(func() { drv.stopped = true })
	m.gameState = game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.scoreboard != nil {
			return m.updateScoreboard(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		return m.quit()
	case action.IsDirection():
		m.holds.Press(action, time.Now())
	case action == core.ActionScoreboard:
		m.openScoreboard()
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// openScoreboard shows the run log, pausing a run in progress first.
func (m *Model) openScoreboard() {
	s := m.gameState
	if !s.InMenu && !s.GameOver && !s.Paused {
		m.inputFrame.Set(core.ActionPause)
	}
	m.holds.ReleaseAll()

	sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH, m.game.ID())
	m.scoreboard = &sb
}

// updateScoreboard forwards input to the open scoreboard.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	sb, cmd := m.scoreboard.Update(msg)
	switch {
	case sb.IsQuitting():
		return m.quit()
	case sb.Closed():
		m.scoreboard = nil
	default:
		m.scoreboard = &sb
	}
	return m, cmd
}

// handleResize resizes the screen. The run keeps going.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

// handleTick runs one game frame at the tick timestamp.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.driver.stopped {
		return m, nil
	}

	m.holds.Apply(&m.inputFrame, now)
	result := m.game.Frame(now, m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	switch {
	case m.gameState.GameOver && !m.runSaved:
		m.saveRun()
		m.runSaved = true
	case !m.gameState.GameOver:
		m.runSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun logs the finished run. Failures are logged and otherwise ignored.
func (m Model) saveRun() {
	s := m.gameState
	m.logger.Info("run finished", "game", m.game.ID(), "player", m.config.Player,
		"score", s.Score, "level", s.Level, "seconds", fmt.Sprintf("%.1f", s.RunSeconds))
	if m.store == nil {
		return
	}

	id, err := m.store.SaveRun(storage.Run{
		GameID:   m.game.ID(),
		Player:   m.config.Player,
		Score:    s.Score,
		Level:    s.Level,
		Duration: time.Duration(s.RunSeconds * float64(time.Second)),
	})
	if err != nil {
		m.logger.Warn("could not log run", "err", err)
		return
	}
	m.logger.Debug("run logged", "run_id", id)
}

// quit disposes the game, which stops the tick loop, and ends the program.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.game.Dispose()
	return m, tea.Quit
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".harvest", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "err", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// GameState returns the state after the last frame.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
