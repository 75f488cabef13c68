// Package tui runs the game in a terminal with Bubble Tea, locally or over
// SSH. It handles the frame loop, key mapping and the menu screens.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per rendered frame.
type TickMsg time.Time

// tickCmd schedules the next frame. The game itself decides how many
// logical ticks the elapsed time covers.
func tickCmd(frameRate int) tea.Cmd {
	if frameRate <= 0 {
		frameRate = 60
	}
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
