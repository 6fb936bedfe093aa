// Package tui provides the Bubble Tea integration for Starfall.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Loop identifies the tick loop that scheduled it, so a loop left running
// by a closed game cannot drive the next one.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

var loopIDs atomic.Uint64

// nextLoopID returns a fresh tick loop identifier.
func nextLoopID() uint64 {
	return loopIDs.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tagged tick after interval.
func tickCmd(interval time.Duration, loop uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
