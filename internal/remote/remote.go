// Package remote handles remote control keys: which keys the app asks for and what each key
// does once delivered.
package remote

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/leighmacdonald/tvwindow/internal/platform"
)

// DefaultKeys are registered at startup.
var DefaultKeys = []string{"0", "ColorF0Red"}

var errRegister = errors.New("failed to register key")

// RegisterKeys asks the input device to deliver each named key. Every name is attempted, the
// failures are returned together.
func RegisterKeys(input platform.Input, names []string) error {
	var errs []error

	for _, name := range names {
		err := platform.Guard(func() error {
			return input.RegisterKey(name)
		})
		if err != nil {
			slog.Error("Failed to register key", slog.String("name", name), slog.String("error", err.Error()))
			errs = append(errs, fmt.Errorf("%w %q: %w", errRegister, name, err))

			continue
		}

		slog.Debug("Registered key", slog.String("name", name))
	}

	return errors.Join(errs...)
}

// Action is what a key press results in.
type Action int

const (
	ActionUnknown Action = iota
	ActionToggle
	ActionClearLog
	ActionDisplayInfo
	ActionExit
)

func (a Action) String() string {
	switch a {
	case ActionToggle:
		return "toggle"
	case ActionClearLog:
		return "clear"
	case ActionDisplayInfo:
		return "info"
	case ActionExit:
		return "exit"
	case ActionUnknown:
		fallthrough
	default:
		return "unknown"
	}
}

var bindings = map[platform.KeyCode]Action{
	platform.KeyEnter:    ActionToggle,
	platform.Key0:        ActionClearLog,
	platform.KeyColorRed: ActionDisplayInfo,
	platform.KeyBack:     ActionExit,
}

// Dispatch returns the action bound to the key code, ActionUnknown when nothing is bound.
func Dispatch(code platform.KeyCode) Action {
	if action, found := bindings[code]; found {
		return action
	}

	return ActionUnknown
}

// Diagnostic is the line logged for a key without an action.
func Diagnostic(code platform.KeyCode) string {
	return fmt.Sprintf("keycode: %d", code)
}

// Failures lists the device errors inside an error returned by RegisterKeys.
func Failures(err error) []*platform.Error {
	if err == nil {
		return nil
	}

	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		return []*platform.Error{platform.AsError(err)}
	}

	failures := make([]*platform.Error, 0, len(joined.Unwrap()))
	for _, inner := range joined.Unwrap() {
		failures = append(failures, platform.AsError(inner))
	}

	return failures
}
