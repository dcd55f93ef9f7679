// Package sim provides an in-process television device. It behaves like the hole window and
// input device APIs of a TV so the app can run and be tested without hardware.
package sim

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/leighmacdonald/tvwindow/internal/platform"
)

// Operation names used as keys for Options.Faults.
const (
	OpShow     = "show"
	OpHide     = "hide"
	OpRect     = "rect"
	OpSource   = "source"
	OpWindows  = "windows"
	OpRegister = "register"
)

var valuePattern = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)(px|%)$`)

type Options struct {
	ScreenWidth  int
	ScreenHeight int
	Latency      time.Duration
	Source       platform.Source
	Windows      []platform.WindowType
	// Faults maps an operation name to the error name it fails with.
	Faults  map[string]string
	AppID   string
	AppName string
	Version string
}

func DefaultOptions() Options {
	return Options{
		ScreenWidth:  1920,
		ScreenHeight: 1080,
		Latency:      50 * time.Millisecond,
		Source:       platform.Source{Type: "TV", Number: 1},
		Windows:      []platform.WindowType{platform.Main},
		Faults:       map[string]string{},
		AppID:        "tvwindow.sim",
		AppName:      "TVWindow",
		Version:      "0.0.0",
	}
}

// Device is a simulated TV. It is safe for concurrent use.
type Device struct {
	mu         sync.RWMutex
	opts       Options
	rect       platform.Rect
	hasRect    bool
	visible    map[platform.WindowType]bool
	registered map[string]bool
	exited     chan struct{}
	exitOnce   sync.Once
}

func New(opts Options) *Device {
	if opts.Faults == nil {
		opts.Faults = map[string]string{}
	}

	return &Device{
		opts:       opts,
		visible:    map[platform.WindowType]bool{},
		registered: map[string]bool{},
		exited:     make(chan struct{}),
	}
}

// Platform returns the device as the set of capabilities the app consumes.
func (d *Device) Platform() platform.Device {
	return platform.Device{Window: d, Input: d, Application: d}
}

// Configure swaps the behaviour options. Window and key registration state is kept.
func (d *Device) Configure(opts Options) {
	if opts.Faults == nil {
		opts.Faults = map[string]string{}
	}

	d.mu.Lock()
	d.opts = opts
	d.mu.Unlock()
}

func (d *Device) fault(op string) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	name, found := d.opts.Faults[op]
	if !found || name == "" {
		return nil
	}

	return platform.NewError(name, "simulated %s failure", op)
}

func (d *Device) wait(ctx context.Context) error {
	d.mu.RLock()
	latency := d.opts.Latency
	d.mu.RUnlock()

	if latency <= 0 {
		if err := ctx.Err(); err != nil {
			return platform.AsError(err)
		}

		return nil
	}

	timer := time.NewTimer(latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return platform.AsError(ctx.Err())
	case <-timer.C:
		return nil
	}
}

func (d *Device) checkWindow(windowType platform.WindowType) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !slices.Contains(d.opts.Windows, windowType) {
		return platform.NewError(platform.NotSupportedError, "window type %q is not available", windowType)
	}

	return nil
}

func validateRect(rect platform.Rect) error {
	for idx, value := range rect {
		if !valuePattern.MatchString(value) {
			return platform.NewError(platform.InvalidValuesError, "rectangle value %d %q must be in px or %%", idx, value)
		}
	}

	return nil
}

func (d *Device) Show(ctx context.Context, rect platform.Rect, windowType platform.WindowType) (platform.Rect, error) {
	if err := validateRect(rect); err != nil {
		return platform.Rect{}, err
	}

	if err := d.checkWindow(windowType); err != nil {
		return platform.Rect{}, err
	}

	if err := d.wait(ctx); err != nil {
		return platform.Rect{}, err
	}

	if err := d.fault(OpShow); err != nil {
		return platform.Rect{}, err
	}

	d.mu.Lock()
	d.rect = rect
	d.hasRect = true
	d.visible[windowType] = true
	d.mu.Unlock()

	slog.Debug("sim window shown", slog.String("type", string(windowType)), slog.String("rect", rect.String()))

	return rect, nil
}

func (d *Device) Hide(ctx context.Context, windowType platform.WindowType) error {
	if err := d.checkWindow(windowType); err != nil {
		return err
	}

	if err := d.wait(ctx); err != nil {
		return err
	}

	if err := d.fault(OpHide); err != nil {
		return err
	}

	d.mu.Lock()
	d.visible[windowType] = false
	d.mu.Unlock()

	slog.Debug("sim window hidden", slog.String("type", string(windowType)))

	return nil
}

// Visible reports whether the window is currently shown on the simulated screen.
func (d *Device) Visible(windowType platform.WindowType) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.visible[windowType]
}

func (d *Device) Rect(ctx context.Context, windowType platform.WindowType) (platform.Rect, error) {
	if err := d.checkWindow(windowType); err != nil {
		return platform.Rect{}, err
	}

	if err := d.wait(ctx); err != nil {
		return platform.Rect{}, err
	}

	if err := d.fault(OpRect); err != nil {
		return platform.Rect{}, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	width, height := d.opts.ScreenWidth, d.opts.ScreenHeight
	if !d.hasRect {
		// Never positioned, the window covers the whole screen.
		return platform.Rect{"0px", "0px", pixels(float64(width)), pixels(float64(height))}, nil
	}

	return platform.Rect{
		toPixels(d.rect.X(), width),
		toPixels(d.rect.Y(), height),
		toPixels(d.rect.Width(), width),
		toPixels(d.rect.Height(), height),
	}, nil
}

func toPixels(value string, dimension int) string {
	match := valuePattern.FindStringSubmatch(value)
	if match == nil {
		return value
	}

	number, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return value
	}

	if match[2] == "%" {
		number = number * float64(dimension) / 100
	}

	return pixels(number)
}

func pixels(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64) + "px"
}

func (d *Device) Source(windowType platform.WindowType) (platform.Source, error) {
	if err := d.checkWindow(windowType); err != nil {
		return platform.Source{}, err
	}

	if err := d.fault(OpSource); err != nil {
		return platform.Source{}, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.opts.Source, nil
}

func (d *Device) AvailableWindows(ctx context.Context) ([]platform.WindowType, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}

	if err := d.fault(OpWindows); err != nil {
		return nil, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	return slices.Clone(d.opts.Windows), nil
}

func (d *Device) Exit() {
	d.exitOnce.Do(func() {
		slog.Info("sim application exit")
		close(d.exited)
	})
}

// Exited is closed once Exit has been called.
func (d *Device) Exited() <-chan struct{} {
	return d.exited
}

func (d *Device) Info() platform.AppInfo {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return platform.AppInfo{ID: d.opts.AppID, Name: d.opts.AppName, Version: d.opts.Version}
}

// String is used in debug logs.
func (d *Device) String() string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	faults := make([]string, 0, len(d.opts.Faults))
	for op, name := range d.opts.Faults {
		faults = append(faults, op+"="+name)
	}
	slices.Sort(faults)

	return fmt.Sprintf("sim %dx%d latency=%s faults=[%s]", d.opts.ScreenWidth, d.opts.ScreenHeight,
		d.opts.Latency, strings.Join(faults, ","))
}
