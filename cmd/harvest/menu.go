package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/harvest-rush/internal/config"
	"github.com/vovakirdan/harvest-rush/internal/core"
	"github.com/vovakirdan/harvest-rush/internal/games/harvest"
	"github.com/vovakirdan/harvest-rush/internal/platform/tui"
	"github.com/vovakirdan/harvest-rush/internal/registry"
	"github.com/vovakirdan/harvest-rush/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode and difficulty interactively",
	Long: `Start with a mode and difficulty picker.

After quitting a game you return to the picker. Every run played from the
picker goes to the same run log, so the scoreboard covers all modes.

Controls:
  Up/Down/j/k     - Choose mode
  Left/Right/h/l  - Choose difficulty
  Enter/Space     - Play
  Q               - Quit

Examples:
  harvest menu
  harvest menu --fps 30`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Name recorded with finished runs")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := setupLogging()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer closeLog()

	store, err := storage.OpenSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run log: %v\n", err)
		store = nil
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Player:   flagPlayer,
	}
	harvest.SetConfigPath(flagConfig)

	var preset config.DifficultyPreset
	for {
		result, err := tui.RunPicker(cfg, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = result.Config
		preset = result.Preset
		if result.Quit {
			break
		}

		harvest.SetDifficultyPreset(string(preset))
		game, err := registry.Create(result.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		if err := tui.Run(game, store, cfg, tui.WithLogger(logger)); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		// A fixed --seed only applies to the first game
		cfg.Seed = time.Now().UnixNano()
	}

	if store != nil {
		store.Close()
	}
}
