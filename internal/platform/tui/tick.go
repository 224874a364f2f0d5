// Package tui provides the Bubble Tea frontend for the clock, locally and
// over SSH via Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tetrotime/internal/core"
)

// Frame rate bounds.
const (
	MinFPS = 1
	MaxFPS = 120
)

// TickMsg is sent to trigger an animation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(core.Clamp(fps, MinFPS, MaxFPS))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
