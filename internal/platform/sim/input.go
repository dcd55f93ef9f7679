package sim

import (
	"log/slog"
	"slices"

	"github.com/leighmacdonald/tvwindow/internal/platform"
)

// mandatoryKeys are always delivered and can not be registered.
var mandatoryKeys = []platform.Key{
	{Name: "ArrowLeft", Code: platform.KeyLeft},
	{Name: "ArrowUp", Code: platform.KeyUp},
	{Name: "ArrowRight", Code: platform.KeyRight},
	{Name: "ArrowDown", Code: platform.KeyDown},
	{Name: "Enter", Code: platform.KeyEnter},
	{Name: "Back", Code: platform.KeyBack},
}

var supportedKeys = []platform.Key{
	{Name: "0", Code: platform.Key0},
	{Name: "1", Code: 49},
	{Name: "2", Code: 50},
	{Name: "3", Code: 51},
	{Name: "4", Code: 52},
	{Name: "5", Code: 53},
	{Name: "6", Code: 54},
	{Name: "7", Code: 55},
	{Name: "8", Code: 56},
	{Name: "9", Code: 57},
	{Name: "ColorF0Red", Code: platform.KeyColorRed},
	{Name: "ColorF1Green", Code: platform.KeyColorGreen},
	{Name: "ColorF2Yellow", Code: platform.KeyColorYel},
	{Name: "ColorF3Blue", Code: platform.KeyColorBlue},
	{Name: "ChannelUp", Code: 427},
	{Name: "ChannelDown", Code: 428},
	{Name: "VolumeUp", Code: 447},
	{Name: "VolumeDown", Code: 448},
	{Name: "VolumeMute", Code: 449},
	{Name: "MediaPlayPause", Code: 10252},
	{Name: "Info", Code: 457},
	{Name: "Exit", Code: 10182},
}

func (d *Device) SupportedKeys() []platform.Key {
	return slices.Concat(mandatoryKeys, supportedKeys)
}

func (d *Device) RegisterKey(name string) error {
	if err := d.fault(OpRegister); err != nil {
		return err
	}

	idx := slices.IndexFunc(supportedKeys, func(k platform.Key) bool { return k.Name == name })
	if idx < 0 {
		return platform.NewError(platform.InvalidValuesError, "key %q is not supported", name)
	}

	d.mu.Lock()
	d.registered[name] = true
	d.mu.Unlock()

	slog.Debug("sim key registered", slog.String("name", name), slog.Int("code", int(supportedKeys[idx].Code)))

	return nil
}

func (d *Device) Accepts(code platform.KeyCode) bool {
	if slices.ContainsFunc(mandatoryKeys, func(k platform.Key) bool { return k.Code == code }) {
		return true
	}

	idx := slices.IndexFunc(supportedKeys, func(k platform.Key) bool { return k.Code == code })
	if idx < 0 {
		// Not a remote key, for example a letter typed on an attached keyboard.
		return true
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.registered[supportedKeys[idx].Name]
}
