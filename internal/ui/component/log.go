package component

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/tvwindow/internal/ui/input"
	"github.com/leighmacdonald/tvwindow/internal/ui/model"
	"github.com/leighmacdonald/tvwindow/internal/ui/styles"
	"github.com/muesli/reflow/wordwrap"
)

// LineBreak terminates every entry in the raw panel content.
const LineBreak = "<br />"

// LogPanel is the on screen log. Entries are only ever appended, or all removed at once.
type LogPanel struct {
	entries  []string
	width    int
	viewPort viewport.Model
}

func NewLogPanel() *LogPanel {
	viewPort := viewport.New(10, 20)
	// Every other key belongs to the remote.
	viewPort.KeyMap = viewport.KeyMap{
		PageUp:   input.Default.ScrollUp,
		PageDown: input.Default.ScrollDown,
	}
	viewPort.MouseWheelEnabled = true

	return &LogPanel{viewPort: viewPort}
}

// Log appends msg to the panel and the debug log. An empty msg clears the panel.
func (p *LogPanel) Log(msg string) {
	if msg == "" {
		p.entries = nil
		p.refresh()

		return
	}

	slog.Info("[TVWindow]", slog.String("msg", msg))

	p.entries = append(p.entries, msg)
	p.refresh()
	p.viewPort.GotoBottom()
}

// Content is the raw panel content.
func (p *LogPanel) Content() string {
	var content strings.Builder
	for _, entry := range p.entries {
		content.WriteString(entry + LineBreak)
	}

	return content.String()
}

// Lines is the number of logged messages, whatever they contain.
func (p *LogPanel) Lines() int {
	return len(p.entries)
}

func (p *LogPanel) SetSize(width int, height int) {
	// Border and title.
	p.width = max(width-2, 0)
	p.viewPort.Width = p.width
	p.viewPort.Height = max(height-2, 0)
	p.refresh()
	p.viewPort.GotoBottom()
}

func (p *LogPanel) refresh() {
	if len(p.entries) == 0 {
		p.viewPort.SetContent(styles.LogEmpty.Render("<<< Start of logs >>>"))

		return
	}

	rendered := make([]string, len(p.entries))
	for idx, entry := range p.entries {
		rendered[idx] = styles.LogLine.Render(wordwrap.String(entry, p.viewPort.Width))
	}

	p.viewPort.SetContent(lipgloss.JoinVertical(lipgloss.Left, rendered...))
}

func (p *LogPanel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !key.Matches(msg, input.Default.ScrollUp, input.Default.ScrollDown) {
			return nil
		}
	case tea.MouseMsg:
		if !tea.MouseEvent(msg).IsWheel() {
			return nil
		}
	default:
		return nil
	}

	var cmd tea.Cmd
	p.viewPort, cmd = p.viewPort.Update(msg)

	return cmd
}

func (p *LogPanel) Render(height int) string {
	p.viewPort.Height = max(height-2, 0)
	title := fmt.Sprintf(" Logs: %s ", humanize.Comma(int64(len(p.entries))))

	return model.Container(title, p.width, p.viewPort.Height, p.viewPort.View(), false)
}
