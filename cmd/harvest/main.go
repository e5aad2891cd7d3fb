// harvest is a terminal harvesting game: steer the farmer, collect crops
// before the level timer runs out, and dodge scarecrows on the way.
//
// Usage:
//
//	harvest play             - Play in this terminal
//	harvest menu             - Pick mode and difficulty interactively
//	harvest list             - List available game modes
//	harvest curve            - Print the difficulty curve
//	harvest serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--log <path>    - Write debug logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/harvest-rush/internal/games/harvest"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "harvest",
	Short: "Harvest Rush - collect crops against the clock",
	Long: `Harvest Rush is a terminal game. Walk the farmer across the field,
collect crops before time runs out and reach the score goal to advance.
Scarecrows block the way, and every level asks for more.

Available commands:
  play     - Play in this terminal
  menu     - Pick mode and difficulty interactively
  list     - Show all game modes
  curve    - Print goal, time and spawn rate per level
  serve    - Start SSH server for remote play

Examples:
  harvest play
  harvest play --difficulty hard
  harvest play --game harvest_steady
  harvest menu
  harvest curve --levels 20
  harvest serve --ssh :2222`,
}

func init() {
	// main reports the error
	rootCmd.SilenceErrors = true

	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(curveCmd)
	rootCmd.AddCommand(serveCmd)
}
