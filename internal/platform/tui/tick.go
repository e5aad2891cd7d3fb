// Package tui provides the Bubble Tea integration for Harvest Rush.
// It owns the frame driver, keyboard input, screen rendering and the
// SSH server; games only see timestamps and input frames.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the timestamp of one frame driver callback.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
