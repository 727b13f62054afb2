// Package tui runs the sweeper in a terminal: the Bubble Tea game loop, key
// bindings, the variant picker, the stats table and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// TickMsg drives one game step. Input collected since the previous tick is
// applied in order.
type TickMsg time.Time

// tickCmd schedules the next TickMsg at tickRate ticks per second.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
