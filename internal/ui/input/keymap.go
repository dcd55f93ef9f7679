package input

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/tvwindow/internal/platform"
)

// Map binds terminal keys to the remote control buttons a keyboard lacks, plus the few
// keys the terminal app needs for itself.
type Map struct {
	Enter      key.Binding
	Back       key.Binding
	Red        key.Binding
	Green      key.Binding
	Yellow     key.Binding
	Blue       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var Default = Map{
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "Show/Hide window"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "Back/Exit"),
	),
	Red: key.NewBinding(
		key.WithKeys("r", "f1"),
		key.WithHelp("r", "Window info"),
	),
	Green: key.NewBinding(
		key.WithKeys("g", "f2"),
		key.WithHelp("g", "Green"),
	),
	Yellow: key.NewBinding(
		key.WithKeys("y", "f3"),
		key.WithHelp("y", "Yellow"),
	),
	Blue: key.NewBinding(
		key.WithKeys("b", "f4"),
		key.WithHelp("b", "Blue"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "Scroll up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "Scroll down"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "Quit"),
	),
}

var namedKeys = map[tea.KeyType]platform.KeyCode{
	tea.KeyTab:    9,
	tea.KeySpace:  32,
	tea.KeyEnd:    35,
	tea.KeyHome:   36,
	tea.KeyLeft:   platform.KeyLeft,
	tea.KeyUp:     platform.KeyUp,
	tea.KeyRight:  platform.KeyRight,
	tea.KeyDown:   platform.KeyDown,
	tea.KeyInsert: 45,
	tea.KeyDelete: 46,
	tea.KeyF5:     116,
	tea.KeyF6:     117,
	tea.KeyF7:     118,
	tea.KeyF8:     119,
	tea.KeyF9:     120,
	tea.KeyF10:    121,
	tea.KeyF11:    122,
	tea.KeyF12:    123,
}

// Translate returns the key code a TV would report for the terminal key press. Keys with no
// sensible code are not translated.
func Translate(msg tea.KeyMsg) (platform.KeyCode, bool) {
	switch {
	case key.Matches(msg, Default.Enter):
		return platform.KeyEnter, true
	case key.Matches(msg, Default.Back):
		return platform.KeyBack, true
	case key.Matches(msg, Default.Red):
		return platform.KeyColorRed, true
	case key.Matches(msg, Default.Green):
		return platform.KeyColorGreen, true
	case key.Matches(msg, Default.Yellow):
		return platform.KeyColorYel, true
	case key.Matches(msg, Default.Blue):
		return platform.KeyColorBlue, true
	}

	if code, found := namedKeys[msg.Type]; found {
		return code, true
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 || msg.Alt {
		return 0, false
	}

	// Letters report their upper case ascii value, the same as a browser keyCode.
	char := unicode.ToUpper(msg.Runes[0])
	if (char >= '0' && char <= '9') || (char >= 'A' && char <= 'Z') {
		return platform.KeyCode(char), true
	}

	return 0, false
}
