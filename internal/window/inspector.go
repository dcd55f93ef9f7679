package window

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/tvwindow/internal/platform"
)

type WindowsResult struct {
	Windows []platform.WindowType
	Err     *platform.Error
}

type RectResult struct {
	Rect platform.Rect
	Err  *platform.Error
}

// Inspector runs read only queries against the window. It never touches the visibility state.
type Inspector struct {
	ctx    context.Context
	window platform.Window
	state  *State
	log    Logger
}

func NewInspector(ctx context.Context, window platform.Window, state *State, log Logger) *Inspector {
	return &Inspector{ctx: ctx, window: window, state: state, log: log}
}

func (i *Inspector) ListAvailableWindows() tea.Cmd {
	return call(func() ([]platform.WindowType, error) {
		return i.window.AvailableWindows(i.ctx)
	}, func(windows []platform.WindowType, err *platform.Error) tea.Msg {
		return WindowsResult{Windows: windows, Err: err}
	})
}

// Source queries the window source synchronously. Failures are only written to the debug log.
func (i *Inspector) Source() {
	var source platform.Source
	err := platform.Guard(func() error {
		var errSource error
		source, errSource = i.window.Source(i.state.WindowType)

		return errSource
	})

	if err != nil {
		platformErr := platform.AsError(err)
		slog.Warn(fmt.Sprintf("Error name = %s, Error message = %s", platformErr.Name, platformErr.Message))

		return
	}

	i.log.Log(fmt.Sprintf("Source type: %s, number = %d", source.Type, source.Number))
}

func (i *Inspector) Rect() tea.Cmd {
	windowType := i.state.WindowType

	return call(func() (platform.Rect, error) {
		return i.window.Rect(i.ctx, windowType)
	}, func(rect platform.Rect, err *platform.Error) tea.Msg {
		return RectResult{Rect: rect, Err: err}
	})
}

// DisplayInfo issues all three queries. Their results arrive in whatever order the device
// completes them.
func (i *Inspector) DisplayInfo() tea.Cmd {
	windows := i.ListAvailableWindows()
	i.Source()
	rect := i.Rect()

	return tea.Batch(windows, rect)
}

func (i *Inspector) Update(msg tea.Msg) {
	switch msg := msg.(type) {
	case WindowsResult:
		if msg.Err != nil {
			i.log.Log(fmt.Sprintf("Error name = %s, Error message = %s", msg.Err.Name, msg.Err.Message))

			return
		}

		for idx, windowType := range msg.Windows {
			i.log.Log(fmt.Sprintf("Available window [%d] = %s", idx, windowType))
		}
	case RectResult:
		if msg.Err != nil {
			i.log.Log(errorLine(msg.Err))

			return
		}

		i.log.Log("Rectangle: " + msg.Rect.String())
	}
}
