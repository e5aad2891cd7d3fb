// Package registry holds the playable game modes. Modes register in init()
// functions, so the CLI, the picker and the SSH server find them without
// importing a game package directly.
package registry

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/vovakirdan/harvest-rush/internal/core"
)

// Game is the interface every playable mode implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, frame scheduling, and rendering.
type Game interface {
	// ID returns the mode identifier (e.g., "harvest").
	// Used for CLI flags and the run log.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game. Called once before the first frame.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Frame runs one driver callback at the given timestamp.
	// Timestamps must not go backwards; the game computes and clamps the delta.
	Frame(now time.Time, in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState

	// OnDispose registers a hook run once by Dispose. The platform uses it
	// to stop its frame driver and drop held input.
	OnDispose(fn func())

	// Dispose releases the game and runs the registered hooks.
	// Frame and Render do nothing afterwards.
	Dispose()
}

// ModeInfo describes a registered mode.
type ModeInfo struct {
	ID      string
	Title   string
	Summary string // One line for pickers and `harvest list`
}

// Factory creates a new instance of a mode.
type Factory func() Game

// ErrUnknownMode is returned by Create for IDs nobody registered.
var ErrUnknownMode = errors.New("registry: unknown mode")

type entry struct {
	info    ModeInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries []entry // Registration order; the first is the default
	byID    = make(map[string]int)
)

// Register adds a mode. It panics on an empty ID, a nil factory or a
// duplicate ID, since all of those are programming errors in an init().
func Register(info ModeInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	switch {
	case info.ID == "":
		panic("registry: empty mode id")
	case f == nil:
		panic(fmt.Sprintf("registry: nil factory for %q", info.ID))
	}
	if _, exists := byID[info.ID]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", info.ID))
	}
	if info.Title == "" {
		info.Title = info.ID
	}

	byID[info.ID] = len(entries)
	entries = append(entries, entry{info: info, factory: f})
}

// List returns every mode in registration order.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]ModeInfo, len(entries))
	for i, e := range entries {
		out[i] = e.info
	}
	return out
}

// Default returns the first registered mode.
func Default() (ModeInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	if len(entries) == 0 {
		return ModeInfo{}, false
	}
	return entries[0].info, true
}

// Lookup returns the metadata of a mode.
func Lookup(id string) (ModeInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	i, ok := byID[id]
	if !ok {
		return ModeInfo{}, false
	}
	return entries[i].info, true
}

// Create instantiates a mode by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	i, ok := byID[id]
	var f Factory
	if ok {
		f = entries[i].factory
	}
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMode, id)
	}
	return f(), nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
