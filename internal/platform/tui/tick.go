// Package tui runs arena games in a terminal with Bubble Tea.
// It owns the tick loop, key and mouse mapping, the menu and scoreboard
// screens, and the SSH server that serves the same screens over Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next TickMsg. A non-positive rate runs at 60 ticks/s.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
