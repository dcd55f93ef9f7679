package component

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/tvwindow/internal/ui/command"
	"github.com/leighmacdonald/tvwindow/internal/ui/input"
	"github.com/leighmacdonald/tvwindow/internal/ui/styles"
	"github.com/leighmacdonald/tvwindow/internal/window"
	zone "github.com/lrstanley/bubblezone"
)

// BadgeZoneID marks the visibility badge. Clicking it acts like pressing enter on the remote.
const BadgeZoneID = "window-badge"

type StatusBar struct {
	version     string
	statusMsg   string
	statusError bool
}

func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetVersion sets the application version label. Empty hides the label.
func (m *StatusBar) SetVersion(version string) {
	m.version = version
}

func (m *StatusBar) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case command.StatusMsg:
		m.statusMsg = msg.Message
		m.statusError = msg.Err

		return command.ClearStatusAfter(command.ClearMessageTimeout)
	case command.ClearStatusMessageMsg:
		m.statusError = false
		m.statusMsg = ""
	}

	return nil
}

func (m *StatusBar) Render(width int, state *window.State, zones *zone.Manager) string {
	args := make([]string, 0, 5)
	if m.version != "" {
		args = append(args, styles.VersionLabel.Render("ver: "+m.version))
	}

	if state != nil {
		badge := styles.BadgeShown
		if state.Visibility == window.Hidden {
			badge = styles.BadgeHidden
		}

		args = append(args,
			zones.Mark(BadgeZoneID, badge.Render(state.Visibility.String())),
			styles.StatusWindow.Render(fmt.Sprintf("%s %s", state.WindowType, state.Coordinates)))
	}

	args = append(args, styles.StatusHelp.Render(fmt.Sprintf("%s %s", input.Default.Help.Help().Key, input.Default.Help.Help().Desc)))

	if m.statusMsg != "" {
		if m.statusError {
			args = append(args, styles.StatusError.Render(m.statusMsg))
		} else {
			args = append(args, styles.StatusMessage.Render(m.statusMsg))
		}
	}

	return lipgloss.NewStyle().Width(width).Render(lipgloss.JoinHorizontal(lipgloss.Top, args...))
}
