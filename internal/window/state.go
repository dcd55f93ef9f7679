// Package window controls and inspects the TV hole window.
package window

import "github.com/leighmacdonald/tvwindow/internal/platform"

type Visibility int

const (
	Shown Visibility = iota
	Hidden
)

func (v Visibility) String() string {
	switch v {
	case Shown:
		return "shown"
	case Hidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// DefaultCoordinates is used when no coordinates are configured.
var DefaultCoordinates = platform.Rect{"10px", "300px", "50%", "540px"}

// State is what the controller believes about the window. Visibility only ever changes when the
// device confirms a show or hide, it is never read back from the device.
type State struct {
	Visibility  Visibility
	Coordinates platform.Rect
	WindowType  platform.WindowType
}

// NewState returns a state that already considers the window shown, matching the show request
// issued at startup.
func NewState(coordinates platform.Rect, windowType platform.WindowType) *State {
	if windowType == "" {
		windowType = platform.Main
	}

	return &State{
		Visibility:  Shown,
		Coordinates: coordinates,
		WindowType:  windowType,
	}
}

// Logger receives the lines shown to the user.
type Logger interface {
	Log(msg string)
}
