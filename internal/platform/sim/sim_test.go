package sim_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/leighmacdonald/tvwindow/internal/platform"
	"github.com/leighmacdonald/tvwindow/internal/platform/sim"
	"github.com/stretchr/testify/require"
)

func newDevice(t *testing.T, faults map[string]string) *sim.Device {
	t.Helper()

	opts := sim.DefaultOptions()
	opts.Latency = 0
	opts.Faults = faults

	return sim.New(opts)
}

func requireErrorName(t *testing.T, err error, name string) {
	t.Helper()

	var platformErr *platform.Error
	require.True(t, errors.As(err, &platformErr), "expected a device error, got %v", err)
	require.Equal(t, name, platformErr.Name)
}

func TestShowEchoesRequest(t *testing.T) {
	device := newDevice(t, nil)
	requested := platform.Rect{"10px", "300px", "50%", "540px"}

	echoed, err := device.Show(t.Context(), requested, platform.Main)
	require.NoError(t, err)
	require.Equal(t, requested, echoed)
	require.True(t, device.Visible(platform.Main))
}

func TestRectReportsPixels(t *testing.T) {
	device := newDevice(t, nil)

	full, err := device.Rect(t.Context(), platform.Main)
	require.NoError(t, err)
	require.Equal(t, platform.Rect{"0px", "0px", "1920px", "1080px"}, full)

	_, errShow := device.Show(t.Context(), platform.Rect{"10px", "25%", "50%", "540px"}, platform.Main)
	require.NoError(t, errShow)

	rect, errRect := device.Rect(t.Context(), platform.Main)
	require.NoError(t, errRect)
	require.Equal(t, platform.Rect{"10px", "270px", "960px", "540px"}, rect)
}

func TestShowInvalidValues(t *testing.T) {
	device := newDevice(t, nil)

	for _, rect := range []platform.Rect{
		{"10", "300px", "50%", "540px"},
		{"10px", "abc", "50%", "540px"},
		{"10px", "300px", "50 %", "540px"},
		{"", "", "", ""},
	} {
		_, err := device.Show(t.Context(), rect, platform.Main)
		requireErrorName(t, err, platform.InvalidValuesError)
	}

	require.False(t, device.Visible(platform.Main))
}

func TestUnavailableWindow(t *testing.T) {
	device := newDevice(t, nil)

	_, err := device.Show(t.Context(), platform.Rect{"0px", "0px", "10px", "10px"}, platform.PIP)
	requireErrorName(t, err, platform.NotSupportedError)

	requireErrorName(t, device.Hide(t.Context(), platform.PIP), platform.NotSupportedError)

	_, errSource := device.Source(platform.PIP)
	requireErrorName(t, errSource, platform.NotSupportedError)
}

func TestHide(t *testing.T) {
	device := newDevice(t, nil)

	_, err := device.Show(t.Context(), platform.Rect{"0px", "0px", "10px", "10px"}, platform.Main)
	require.NoError(t, err)
	require.NoError(t, device.Hide(t.Context(), platform.Main))
	require.False(t, device.Visible(platform.Main))
}

func TestFaults(t *testing.T) {
	device := newDevice(t, map[string]string{
		sim.OpShow:    platform.UnknownError,
		sim.OpHide:    platform.NotSupportedError,
		sim.OpRect:    platform.UnknownError,
		sim.OpSource:  platform.NotFoundError,
		sim.OpWindows: platform.NotSupportedError,
	})

	_, errShow := device.Show(t.Context(), platform.Rect{"0px", "0px", "10px", "10px"}, platform.Main)
	requireErrorName(t, errShow, platform.UnknownError)
	requireErrorName(t, device.Hide(t.Context(), platform.Main), platform.NotSupportedError)

	_, errRect := device.Rect(t.Context(), platform.Main)
	requireErrorName(t, errRect, platform.UnknownError)

	_, errSource := device.Source(platform.Main)
	requireErrorName(t, errSource, platform.NotFoundError)

	_, errWindows := device.AvailableWindows(t.Context())
	requireErrorName(t, errWindows, platform.NotSupportedError)

	// Clearing the faults restores normal behaviour.
	opts := sim.DefaultOptions()
	opts.Latency = 0
	device.Configure(opts)

	source, errSourceOK := device.Source(platform.Main)
	require.NoError(t, errSourceOK)
	require.Equal(t, platform.Source{Type: "TV", Number: 1}, source)
}

func TestAvailableWindows(t *testing.T) {
	opts := sim.DefaultOptions()
	opts.Latency = 0
	opts.Windows = []platform.WindowType{platform.Main, platform.PIP}
	device := sim.New(opts)

	windows, err := device.AvailableWindows(t.Context())
	require.NoError(t, err)
	require.Equal(t, []platform.WindowType{platform.Main, platform.PIP}, windows)
}

func TestLatencyHonoursContext(t *testing.T) {
	opts := sim.DefaultOptions()
	opts.Latency = time.Hour
	device := sim.New(opts)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := device.Show(ctx, platform.Rect{"0px", "0px", "10px", "10px"}, platform.Main)
	requireErrorName(t, err, platform.AbortError)
}

func TestKeys(t *testing.T) {
	device := newDevice(t, nil)

	require.True(t, device.Accepts(platform.KeyEnter))
	require.True(t, device.Accepts(platform.KeyBack))
	require.True(t, device.Accepts(88), "keyboard keys are always delivered")
	require.False(t, device.Accepts(platform.Key0))
	require.False(t, device.Accepts(platform.KeyColorRed))

	require.NoError(t, device.RegisterKey("0"))
	require.NoError(t, device.RegisterKey("ColorF0Red"))
	require.True(t, device.Accepts(platform.Key0))
	require.True(t, device.Accepts(platform.KeyColorRed))
	require.False(t, device.Accepts(platform.KeyColorGreen))

	requireErrorName(t, device.RegisterKey("Enter"), platform.InvalidValuesError)
	requireErrorName(t, device.RegisterKey("NoSuchKey"), platform.InvalidValuesError)

	names := make([]string, 0)
	for _, k := range device.SupportedKeys() {
		names = append(names, k.Name)
	}
	require.Contains(t, names, "Enter")
	require.Contains(t, names, "ColorF0Red")
}

func TestApplication(t *testing.T) {
	opts := sim.DefaultOptions()
	opts.Version = "1.2.3"
	device := sim.New(opts)

	require.Equal(t, "1.2.3", device.Info().Version)

	device.Exit()
	device.Exit()

	select {
	case <-device.Exited():
	default:
		t.Fatal("exit was not signalled")
	}

	require.True(t, device.Platform().Valid())
}
