// Package tui provides the Bubble Tea frontend: it samples the keyboard,
// drives the simulation clock and draws the world into a terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameRate is how often the terminal is redrawn. The simulation runs at
// its own fixed rate; each frame runs however many ticks are due.
const frameRate = 60

// FrameMsg is sent to trigger one rendered frame.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the specified rate.
func frameCmd(rate int) tea.Cmd {
	interval := time.Second / time.Duration(rate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
