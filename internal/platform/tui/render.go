package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/harvest-rush/internal/core"
)

// styles caches one lipgloss style per palette color.
var styles = map[core.Color]lipgloss.Style{}

func styleFor(c core.Color) lipgloss.Style {
	if s, ok := styles[c]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if code := c.ANSI(); code != "" {
		s = s.Foreground(lipgloss.Color(code))
	}
	styles[c] = s
	return s
}

func init() {
	for c := core.ColorDefault; c <= core.ColorSoil; c++ {
		styleFor(c)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[color]
			if !ok {
				style = styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
