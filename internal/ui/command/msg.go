package command

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const ClearMessageTimeout = time.Second * 10

type ClearStatusMessageMsg struct{}

func ClearStatusAfter(t time.Duration) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return ClearStatusMessageMsg{}
	})
}

type StatusMsg struct {
	Message string
	Err     bool
}

func SetStatusMessage(msg string, err bool) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Message: msg, Err: err}
	}
}
