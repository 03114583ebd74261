// Package tui provides the Bubble Tea integration for Trails.
// It handles the terminal UI loop, input mapping, score recording and the
// SSH-hosted session flow.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// tick loop that produced it, so a loop left behind by a finished game in
// a session never drives the next one.
type TickMsg struct {
	Gen int64
	At  time.Time
}

var tickGen atomic.Int64

// nextTickGen returns a fresh tick loop generation.
func nextTickGen() int64 {
	return tickGen.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, gen int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}
