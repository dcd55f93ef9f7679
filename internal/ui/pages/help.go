package pages

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/tvwindow/internal/platform"
	"github.com/leighmacdonald/tvwindow/internal/ui/component"
	"github.com/leighmacdonald/tvwindow/internal/ui/input"
	"github.com/leighmacdonald/tvwindow/internal/ui/styles"
)

func NewHelp(buildVersion, buildDate, buildCommit string, configPath string) Help {
	return Help{
		helpView:     help.New(),
		configPath:   configPath,
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

type Help struct {
	helpView     help.Model
	configPath   string
	buildVersion string
	buildDate    string
	buildCommit  string
}

func (m Help) Render(width int, height int) string {
	remote := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Enter,
			input.Default.Back,
			input.Default.Red,
		},
		{
			input.Default.ScrollUp,
			input.Default.ScrollDown,
			input.Default.Help,
			input.Default.Quit,
		},
	})

	codes := component.NewUnstyledTable("Key code", "Action").
		Row(fmt.Sprint(platform.KeyEnter), "Show or hide the TV window").
		Row(fmt.Sprint(platform.Key0), "Clear the log").
		Row(fmt.Sprint(platform.KeyColorRed), styles.RemoteRed.Render("Red")+" Window information").
		Row(fmt.Sprint(platform.KeyBack), "Exit").
		Render()

	build := lipgloss.JoinVertical(lipgloss.Left,
		styles.DetailRow("Version", m.buildVersion),
		styles.DetailRow("Commit", m.buildCommit),
		styles.DetailRow("Date", m.buildDate),
		styles.DetailRow("Config", m.configPath),
	)

	return styles.HelpBox.Width(width).Height(height).Render(lipgloss.JoinVertical(lipgloss.Left,
		remote, "", codes, "", build))
}
