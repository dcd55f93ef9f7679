package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/tvwindow/internal/config"
	"github.com/leighmacdonald/tvwindow/internal/platform"
	"github.com/leighmacdonald/tvwindow/internal/platform/sim"
	"github.com/leighmacdonald/tvwindow/internal/ui/component"
	"github.com/leighmacdonald/tvwindow/internal/ui/model"
	"github.com/leighmacdonald/tvwindow/internal/window"
	"github.com/stretchr/testify/require"
)

type harness struct {
	t     *testing.T
	model rootModel
	sim   *sim.Device
	quit  bool
}

func testConfig() config.Config {
	return config.Config{
		Platform:       config.PlatformSim,
		WindowType:     "MAIN",
		Window:         config.Coordinates{X: "10px", Y: "300px", Width: "50%", Height: "540px"},
		RegisteredKeys: []string{"0", "ColorF0Red"},
	}
}

func newHarness(t *testing.T, faults map[string]string) *harness {
	t.Helper()

	opts := sim.DefaultOptions()
	opts.Latency = 0
	opts.Version = "1.0.0"
	opts.Faults = faults
	device := sim.New(opts)

	h := &harness{
		t:     t,
		sim:   device,
		model: newRootModel(t.Context(), testConfig(), device.Platform(), BuildInfo{Version: "test"}, ""),
	}
	h.send(tea.WindowSizeMsg{Width: 120, Height: 40})
	h.run(h.model.Init())

	return h
}

// run executes cmd and feeds every resulting message back into the model.
func (h *harness) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}

	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, inner := range msg {
			h.run(inner)
		}
	case tea.QuitMsg:
		h.quit = true
	case window.ShowResult, window.HideResult, window.WindowsResult, window.RectResult:
		h.send(msg)
	}
}

func (h *harness) send(msg tea.Msg) {
	next, cmd := h.model.Update(msg)
	updated, ok := next.(rootModel)
	require.True(h.t, ok)
	h.model = updated
	h.run(cmd)
}

func (h *harness) press(code platform.KeyCode) {
	next, cmd := h.model.onKey(code)
	h.model = next.(rootModel) //nolint:forcetypeassert
	h.run(cmd)
}

func (h *harness) content() string {
	return h.model.logPanel.Content()
}

func TestStartup(t *testing.T) {
	h := newHarness(t, nil)

	require.Equal(t, window.Shown, h.model.state.Visibility)
	require.True(t, h.sim.Visible(platform.Main))
	require.Equal(t, "Rectangle : [10px, 300px, 50%, 540px]<br />", h.content())
	require.True(t, h.sim.Accepts(platform.Key0))
	require.True(t, h.sim.Accepts(platform.KeyColorRed))
	require.Contains(t, h.model.View(), "ver: 1.0.0")
}

func TestMissingDevice(t *testing.T) {
	m := newRootModel(t.Context(), testConfig(), platform.Device{}, BuildInfo{}, "")
	m.Init()
	require.Equal(t, missingDeviceMessage+component.LineBreak, m.logPanel.Content())

	next, cmd := m.onKey(platform.KeyEnter)
	require.Nil(t, cmd)
	require.Equal(t, missingDeviceMessage+component.LineBreak, next.(rootModel).logPanel.Content()) //nolint:forcetypeassert

	_, cmd = m.onKey(platform.KeyBack)
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestEnterToggles(t *testing.T) {
	h := newHarness(t, nil)

	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, window.Hidden, h.model.state.Visibility)
	require.False(t, h.sim.Visible(platform.Main))

	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, window.Shown, h.model.state.Visibility)
	require.True(t, h.sim.Visible(platform.Main))
	require.Contains(t, h.content(), "TVWindow hidden<br />Rectangle : [10px, 300px, 50%, 540px]<br />")
}

func TestFailedHideKeepsState(t *testing.T) {
	h := newHarness(t, map[string]string{sim.OpHide: platform.NotSupportedError})

	h.press(platform.KeyEnter)
	h.press(platform.KeyEnter)
	require.Equal(t, window.Shown, h.model.state.Visibility)
	require.Contains(t, h.content(), "error: NotSupportedError<br />error: NotSupportedError<br />")
}

func TestZeroClearsLog(t *testing.T) {
	h := newHarness(t, nil)
	require.NotEmpty(t, h.content())

	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("0")})
	require.Empty(t, h.content())
}

func TestRedDisplaysInfo(t *testing.T) {
	h := newHarness(t, nil)
	h.press(platform.Key0)

	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	content := h.content()
	require.Contains(t, content, "Available window [0] = MAIN<br />")
	require.Contains(t, content, "Source type: TV, number = 1<br />")
	require.Contains(t, content, "Rectangle: [10px, 300px, 960px, 540px]<br />")
	require.Equal(t, window.Shown, h.model.state.Visibility)
}

func TestBackExits(t *testing.T) {
	for _, hidden := range []bool{false, true} {
		h := newHarness(t, nil)
		if hidden {
			h.press(platform.KeyEnter)
		}

		h.send(tea.KeyMsg{Type: tea.KeyEsc})
		require.True(t, h.quit)

		select {
		case <-h.sim.Exited():
		default:
			t.Fatal("device application did not exit")
		}
	}
}

func TestUnknownKey(t *testing.T) {
	h := newHarness(t, nil)
	before := h.content()

	h.press(999)
	require.Equal(t, window.Shown, h.model.state.Visibility)
	require.Equal(t, before+"keycode: 999<br />", h.content())
	require.Equal(t, 2, h.model.logPanel.Lines())

	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	require.Contains(t, h.content(), "keycode: 88<br />")
}

func TestUnregisteredKeyIgnored(t *testing.T) {
	h := newHarness(t, nil)
	before := h.content()

	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	require.Equal(t, before, h.content())
}

func TestHelpPage(t *testing.T) {
	h := newHarness(t, nil)

	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	require.Equal(t, model.PageHelp, h.model.viewState.Page)
	require.Contains(t, h.model.View(), "Clear the log")

	// Back closes the help page instead of exiting.
	h.send(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, model.PageMain, h.model.viewState.Page)
	require.False(t, h.quit)
}

func TestConfigReload(t *testing.T) {
	h := newHarness(t, nil)
	h.press(platform.KeyEnter)

	conf := testConfig()
	conf.Window = config.Coordinates{X: "0px", Y: "0px", Width: "100%", Height: "100%"}
	h.send(conf)

	h.press(platform.KeyEnter)
	require.Contains(t, h.content(), "Rectangle : [0px, 0px, 100%, 100%]<br />")
}
