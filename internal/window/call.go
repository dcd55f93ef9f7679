package window

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/tvwindow/internal/platform"
)

// call issues fn and returns a command that resolves to its result. It returns once fn has been
// entered, so calls reach the device in the order they are made. The command may be run at any
// later point.
func call[T any](fn func() (T, error), resolve func(T, *platform.Error) tea.Msg) tea.Cmd {
	done := make(chan tea.Msg, 1)
	started := make(chan struct{})

	go func() {
		var value T
		err := platform.Guard(func() error {
			var errCall error
			close(started)
			value, errCall = fn()

			return errCall
		})

		done <- resolve(value, platform.AsError(err))
	}()

	<-started

	return func() tea.Msg {
		return <-done
	}
}

func errorLine(err *platform.Error) string {
	return "error: " + err.Name
}
