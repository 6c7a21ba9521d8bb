// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and gravity scheduling.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// GravityMsg is sent when a scheduled gravity tick fires.
type GravityMsg struct {
	Epoch uint64
}

// gravityCmd returns a command that delivers a GravityMsg after the delay
// the engine asked for, or nil when nothing needs scheduling.
func gravityCmd(t tetris.Tick) tea.Cmd {
	if t.IsZero() {
		return nil
	}
	epoch := t.Epoch
	return tea.Tick(t.After, func(time.Time) tea.Msg {
		return GravityMsg{Epoch: epoch}
	})
}
