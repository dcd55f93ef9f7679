// Package platform describes the television device capabilities used by the app. Implementations
// wrap a real device API or, as with the sim package, stand in for one.
package platform

import (
	"context"
	"errors"
	"fmt"
)

// WindowType identifies a hole window on the device.
type WindowType string

const (
	Main WindowType = "MAIN"
	PIP  WindowType = "PIP"
)

// Rect is the position and size of a hole window. Each value carries its own unit, either
// pixels ("540px") or a percentage of the screen dimension ("50%"). Values are passed to and
// from the device untouched.
type Rect [4]string

func (r Rect) X() string      { return r[0] }
func (r Rect) Y() string      { return r[1] }
func (r Rect) Width() string  { return r[2] }
func (r Rect) Height() string { return r[3] }

func (r Rect) String() string {
	return fmt.Sprintf("[%s, %s, %s, %s]", r[0], r[1], r[2], r[3])
}

// Source is the video source currently feeding a window.
type Source struct {
	Type   string
	Number int
}

// KeyCode is the numeric code carried by a key down event.
type KeyCode int

const (
	KeyEnter      KeyCode = 13
	KeyLeft       KeyCode = 37
	KeyUp         KeyCode = 38
	KeyRight      KeyCode = 39
	KeyDown       KeyCode = 40
	Key0          KeyCode = 48
	KeyColorRed   KeyCode = 403
	KeyColorGreen KeyCode = 404
	KeyColorYel   KeyCode = 405
	KeyColorBlue  KeyCode = 406
	KeyBack       KeyCode = 10009
)

// Key is a named remote control key.
type Key struct {
	Name string
	Code KeyCode
}

// Window is the hole window API.
type Window interface {
	// Show sets the display area and shows the window. The returned rect is what the device
	// reports back, which may use different units than requested.
	Show(ctx context.Context, rect Rect, windowType WindowType) (Rect, error)
	Hide(ctx context.Context, windowType WindowType) error
	// Rect reports the current area of the window in pixels.
	Rect(ctx context.Context, windowType WindowType) (Rect, error)
	// Source is synchronous on the device and is expected to fail regularly.
	Source(windowType WindowType) (Source, error)
	AvailableWindows(ctx context.Context) ([]WindowType, error)
}

// Input controls which remote keys are delivered to the app.
type Input interface {
	SupportedKeys() []Key
	RegisterKey(name string) error
	// Accepts reports whether a key down event with the code reaches the app.
	Accepts(code KeyCode) bool
}

type AppInfo struct {
	ID      string
	Name    string
	Version string
}

// Application is the running application's lifecycle handle.
type Application interface {
	Exit()
	Info() AppInfo
}

// Device bundles the capabilities a backend provides.
type Device struct {
	Window      Window
	Input       Input
	Application Application
}

// Valid reports whether every capability is present.
func (d Device) Valid() bool {
	return d.Window != nil && d.Input != nil && d.Application != nil
}

// Error names used by devices.
const (
	InvalidValuesError = "InvalidValuesError"
	NotSupportedError  = "NotSupportedError"
	NotFoundError      = "NotFoundError"
	AbortError         = "AbortError"
	UnknownError       = "UnknownError"
)

// Error is a failure reported by the device.
type Error struct {
	Name    string
	Message string
}

func NewError(name string, format string, args ...any) *Error {
	return &Error{Name: name, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Name
	}

	return e.Name + ": " + e.Message
}

// AsError converts any error into a device error. Errors that did not come from the device are
// reported as an UnknownError carrying the original text.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}

	var platformErr *Error
	if errors.As(err, &platformErr) {
		return platformErr
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &Error{Name: AbortError, Message: err.Error()}
	}

	return &Error{Name: UnknownError, Message: err.Error()}
}

// Guard runs fn, turning a panic inside the device implementation into an UnknownError.
func Guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &Error{Name: UnknownError, Message: fmt.Sprint(r)}
		}
	}()

	return fn()
}
