package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/harvest-rush/internal/config"
	"github.com/vovakirdan/harvest-rush/internal/core"
	"github.com/vovakirdan/harvest-rush/internal/games/harvest"
	"github.com/vovakirdan/harvest-rush/internal/platform/tui"
	"github.com/vovakirdan/harvest-rush/internal/registry"
	"github.com/vovakirdan/harvest-rush/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagGame       string
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Harvest Rush",
	Long: `Start the game in this terminal.

Controls:
  WASD/Arrows/HJKL - Move the farmer
  Enter/Space      - Start a run, resume, play again
  P/Esc            - Pause
  M                - Back to the menu (paused or game over)
  Tab              - Session scoreboard
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Gentle spawn ramp, faster farmer
  normal - Config values with the spawn ramp on
  hard   - Steep spawn ramp, slower farmer
  steady - Spawn interval never ramps within a level

Examples:
  harvest play
  harvest play --difficulty easy
  harvest play --game harvest_steady
  harvest play --config ./my-harvest.yaml --log ./harvest.log`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, steady")
	playCmd.Flags().StringVar(&flagGame, "game", string(harvest.ModeClassic), "Game mode to play")
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Name recorded with finished runs")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if !registry.Exists(flagGame) {
		return fmt.Errorf("unknown game %q (run 'harvest list' to see available modes)", flagGame)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}

	logger, closeLog, err := setupLogging()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
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

	// Set config path and difficulty before the game is created
	harvest.SetConfigPath(flagConfig)
	harvest.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(flagGame)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	// The run log lives as long as this process
	store, err := storage.OpenSession()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not open run log: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, cfg, tui.WithLogger(logger)); err != nil {
		return fmt.Errorf("cannot run game: %w", err)
	}
	return nil
}
