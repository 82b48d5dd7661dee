// Package tui provides the Bubble Tea integration for the spider
// platform. It handles the terminal UI loop, input mapping, rendering,
// and the elapsed-time tick.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per second to advance the game clock.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends the next tick.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
