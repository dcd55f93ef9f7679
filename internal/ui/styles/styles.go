package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Accent = lipgloss.Color("#f4722b")

	ContainerTitle       = lipgloss.NewStyle().Bold(true)
	ContainerBorder      = lipgloss.DoubleBorder()
	ContainerStyle       = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Gray)
	ContainerStyleActive = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Blu)

	ContentContainerStyle = lipgloss.NewStyle().Align(lipgloss.Left)
	FooterContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)

	Black  = lipgloss.Color("#111111")
	Gray   = lipgloss.Color("#3e3e3e")
	White  = lipgloss.Color("#cccccc")
	Whiter = lipgloss.Color("#aaaaaa")

	Red    = lipgloss.Color("#B8383B")
	Green  = lipgloss.Color("#4d7455")
	Yellow = lipgloss.Color("#ffd700")
	Blu    = lipgloss.Color("#5885A2")

	ColourStrange = lipgloss.Color("#cf6a32")
	ColourVintage = lipgloss.Color("#476291")
	ColourUnusual = lipgloss.Color("#8650ac")

	LogLine      = lipgloss.NewStyle().Foreground(White)
	LogEmpty     = lipgloss.NewStyle().Foreground(Gray).Italic(true)
	VersionLabel = lipgloss.NewStyle().Foreground(Green).Bold(true).PaddingRight(2).PaddingLeft(1)

	BadgeShown  = lipgloss.NewStyle().Foreground(Black).Background(Green).Bold(true).Padding(0, 1)
	BadgeHidden = lipgloss.NewStyle().Foreground(Black).Background(Red).Bold(true).Padding(0, 1)

	StatusWindow  = lipgloss.NewStyle().Foreground(ColourVintage).PaddingRight(2).PaddingLeft(1)
	StatusError   = lipgloss.NewStyle().Foreground(Red).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusMessage = lipgloss.NewStyle().Foreground(Green).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusHelp    = lipgloss.NewStyle().Foreground(Whiter).Bold(true).Align(lipgloss.Center).PaddingLeft(1)

	RemoteRed    = lipgloss.NewStyle().Foreground(Red).Bold(true)
	RemoteGreen  = lipgloss.NewStyle().Foreground(Green).Bold(true)
	RemoteYellow = lipgloss.NewStyle().Foreground(Yellow).Bold(true)
	RemoteBlue   = lipgloss.NewStyle().Foreground(Blu).Bold(true)

	PanelLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right).Width(16)
	PanelValue = lipgloss.NewStyle().Width(60)

	HelpBox = lipgloss.NewStyle().Padding(1, 3)
)

func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}

// WrapX will wrap a centered string with the supplied character up to the lenth specified.
func WrapX(width int, value string, character string) string {
	all := max(width-lipgloss.Width(value), 0)

	return strings.Repeat(character, all/2) + value + strings.Repeat(character, all/2)
}

func TitleBorder(border lipgloss.Border, width int, title string) lipgloss.Border {
	border.Top = WrapX(width, "║"+title+"║", border.Top)

	return border
}
