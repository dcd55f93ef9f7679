package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/tvwindow/internal/config"
	"github.com/leighmacdonald/tvwindow/internal/platform"
)

var ErrUIExit = errors.New("ui error returned")

type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

type UI struct {
	program *tea.Program
}

func New(ctx context.Context, userConfig config.Config, device platform.Device, build BuildInfo, configPath string) *UI {
	return &UI{
		program: tea.NewProgram(
			newRootModel(ctx, userConfig, device, build, configPath),
			tea.WithMouseCellMotion(),
			tea.WithAltScreen(),
			tea.WithContext(ctx),
			tea.WithFPS(30)),
	}
}

func (t UI) Run() error {
	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

func (t UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}
