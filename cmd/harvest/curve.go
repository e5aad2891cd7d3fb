package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/harvest-rush/internal/games/harvest"
)

var flagLevels int

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Print the difficulty curve",
	Long: `Prints the goal score, time limit, base spawn interval and scarecrow
count for the first levels.

Examples:
  harvest curve
  harvest curve --levels 30`,
	Args: cobra.NoArgs,
	RunE: runCurve,
}

func init() {
	curveCmd.Flags().IntVar(&flagLevels, "levels", 15, "Number of levels to print")
}

func runCurve(cmd *cobra.Command, _ []string) error {
	if flagLevels < 1 {
		return fmt.Errorf("--levels must be at least 1, got %d", flagLevels)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-5s  %-6s  %-6s  %-7s  %s\n", "Level", "Goal", "Time", "Spawn", "Scarecrows")
	fmt.Fprintf(out, "  %-5s  %-6s  %-6s  %-7s  %s\n", "-----", "----", "----", "-----", "----------")
	for level := 1; level <= flagLevels; level++ {
		p := harvest.Curve(level)
		fmt.Fprintf(out, "  %-5d  %-6d  %-6s  %-7s  %d\n",
			p.Level, p.Goal,
			fmt.Sprintf("%.0fs", p.TimeLimit),
			fmt.Sprintf("%.2fs", p.SpawnBase),
			p.Obstacles)
	}
	return nil
}
