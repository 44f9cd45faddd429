// Package tui provides the Bubble Tea integration for the simulator: the
// terminal replay of a computed event log and the saved-run browser.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to advance playback by one frame.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the
// specified rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 10
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
