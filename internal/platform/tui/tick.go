package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const blinkInterval = 500 * time.Millisecond

// BlinkMsg flips the selection highlight on or off.
type BlinkMsg time.Time

func blinkCmd() tea.Cmd {
	return tea.Tick(blinkInterval, func(t time.Time) tea.Msg {
		return BlinkMsg(t)
	})
}
