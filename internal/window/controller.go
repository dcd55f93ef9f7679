package window

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/tvwindow/internal/platform"
)

// ShowResult is delivered once a show request completes.
type ShowResult struct {
	Requested platform.Rect
	Rect      platform.Rect
	Err       *platform.Error
}

// HideResult is delivered once a hide request completes.
type HideResult struct {
	Err *platform.Error
}

// Controller mediates every show and hide of the window.
type Controller struct {
	ctx    context.Context
	window platform.Window
	state  *State
	log    Logger
}

func NewController(ctx context.Context, window platform.Window, state *State, log Logger) *Controller {
	return &Controller{ctx: ctx, window: window, state: state, log: log}
}

func (c *Controller) Visibility() Visibility {
	return c.state.Visibility
}

// Show requests the window be shown. When coordinates are given and the device accepts them
// they replace the configured ones and are used by later toggles.
func (c *Controller) Show(coordinates ...platform.Rect) tea.Cmd {
	rect, windowType := c.state.Coordinates, c.state.WindowType
	if len(coordinates) > 0 {
		rect = coordinates[0]
	}

	return call(func() (platform.Rect, error) {
		return c.window.Show(c.ctx, rect, windowType)
	}, func(echoed platform.Rect, err *platform.Error) tea.Msg {
		return ShowResult{Requested: rect, Rect: echoed, Err: err}
	})
}

func (c *Controller) Hide() tea.Cmd {
	windowType := c.state.WindowType

	return call(func() (struct{}, error) {
		return struct{}{}, c.window.Hide(c.ctx, windowType)
	}, func(_ struct{}, err *platform.Error) tea.Msg {
		return HideResult{Err: err}
	})
}

// Toggle hides a shown window and shows a hidden one using the last used coordinates.
func (c *Controller) Toggle() tea.Cmd {
	if c.state.Visibility == Shown {
		return c.Hide()
	}

	return c.Show()
}

// Update applies completed requests to the state. It must be called from the event loop.
func (c *Controller) Update(msg tea.Msg) {
	switch msg := msg.(type) {
	case ShowResult:
		if msg.Err != nil {
			slog.Error("Failed to show window", slog.String("name", msg.Err.Name),
				slog.String("message", msg.Err.Message))
			c.log.Log(errorLine(msg.Err))

			return
		}

		c.state.Visibility = Shown
		c.state.Coordinates = msg.Requested
		// The device may answer in different units than requested.
		c.log.Log("Rectangle : " + msg.Rect.String())
	case HideResult:
		if msg.Err != nil {
			slog.Error("Failed to hide window", slog.String("name", msg.Err.Name),
				slog.String("message", msg.Err.Message))
			c.log.Log(errorLine(msg.Err))

			return
		}

		c.state.Visibility = Hidden
		c.log.Log("TVWindow hidden")
	}
}
