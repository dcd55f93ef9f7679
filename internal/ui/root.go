package ui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/tvwindow/internal/config"
	"github.com/leighmacdonald/tvwindow/internal/platform"
	"github.com/leighmacdonald/tvwindow/internal/remote"
	"github.com/leighmacdonald/tvwindow/internal/ui/command"
	"github.com/leighmacdonald/tvwindow/internal/ui/component"
	"github.com/leighmacdonald/tvwindow/internal/ui/input"
	"github.com/leighmacdonald/tvwindow/internal/ui/model"
	"github.com/leighmacdonald/tvwindow/internal/ui/pages"
	"github.com/leighmacdonald/tvwindow/internal/ui/styles"
	"github.com/leighmacdonald/tvwindow/internal/window"
	zone "github.com/lrstanley/bubblezone"
)

const missingDeviceMessage = "This application needs to be run on Tizen device"

// rootModel is the top level model for the ui side of the app.
type rootModel struct {
	viewState      model.ViewState
	device         platform.Device
	registeredKeys []string
	state          *window.State
	controller     *window.Controller
	inspector      *window.Inspector
	logPanel       *component.LogPanel
	statusBar      *component.StatusBar
	helpPage       pages.Help
	zones          *zone.Manager
	footerHeight   int
}

func newRootModel(ctx context.Context, userConfig config.Config, device platform.Device, build BuildInfo, configPath string) rootModel {
	logPanel := component.NewLogPanel()
	state := window.NewState(userConfig.Window.Rect(), platform.WindowType(userConfig.WindowType))

	return rootModel{
		viewState:      model.ViewState{Page: model.PageMain},
		device:         device,
		registeredKeys: userConfig.RegisteredKeys,
		state:          state,
		controller:     window.NewController(ctx, device.Window, state, logPanel),
		inspector:      window.NewInspector(ctx, device.Window, state, logPanel),
		logPanel:       logPanel,
		statusBar:      component.NewStatusBar(),
		helpPage:       pages.NewHelp(build.Version, build.Date, build.Commit, configPath),
		zones:          zone.New(),
		footerHeight:   1,
	}
}

// Init runs the application start up: version label, key registration and the initial show
// of the window.
func (m rootModel) Init() tea.Cmd {
	title := tea.SetWindowTitle("TVWindow")

	if !m.device.Valid() {
		m.logPanel.Log(missingDeviceMessage)

		return title
	}

	m.statusBar.SetVersion(m.device.Application.Info().Version)

	if err := remote.RegisterKeys(m.device.Input, m.registeredKeys); err != nil {
		for _, failure := range remote.Failures(err) {
			m.logPanel.Log("error: " + failure.Name)
		}
	}

	return tea.Batch(title, m.controller.Show())
}

func (m rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.viewState.Width = msg.Width
		m.viewState.Height = msg.Height
		m.logPanel.SetSize(msg.Width, msg.Height-m.footerHeight)
	case window.ShowResult, window.HideResult:
		m.controller.Update(msg)
	case window.WindowsResult, window.RectResult:
		m.inspector.Update(msg)
	case command.StatusMsg, command.ClearStatusMessageMsg:
		return m, m.statusBar.Update(msg)
	case config.Config:
		// Used by the next show, the current window is left alone.
		m.state.Coordinates = msg.Window.Rect()

		return m, command.SetStatusMessage("Config reloaded", false)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft &&
			m.zones.Get(component.BadgeZoneID).InBounds(msg) {
			return m.onKey(platform.KeyEnter)
		}

		return m, m.logPanel.Update(msg)
	case tea.KeyMsg:
		return m.onKeyMsg(msg)
	}

	return m, nil
}

func (m rootModel) onKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, input.Default.Quit):
		return m.exit()
	case key.Matches(msg, input.Default.Help):
		if m.viewState.Page == model.PageHelp {
			m.viewState.Page = model.PageMain
		} else {
			m.viewState.Page = model.PageHelp
		}

		return m, nil
	case key.Matches(msg, input.Default.ScrollUp, input.Default.ScrollDown):
		return m, m.logPanel.Update(msg)
	}

	if m.viewState.Page == model.PageHelp {
		if key.Matches(msg, input.Default.Back) {
			m.viewState.Page = model.PageMain
		}

		return m, nil
	}

	code, ok := input.Translate(msg)
	if !ok {
		slog.Debug("Untranslated key", slog.String("key", msg.String()))

		return m, nil
	}

	return m.onKey(code)
}

// onKey handles a key down event the way the TV would deliver it.
func (m rootModel) onKey(code platform.KeyCode) (tea.Model, tea.Cmd) {
	if !m.device.Valid() {
		// Without a device the only thing left to do is leave.
		if remote.Dispatch(code) == remote.ActionExit {
			return m.exit()
		}

		return m, nil
	}

	if !m.device.Input.Accepts(code) {
		slog.Debug("Key not registered", slog.Int("code", int(code)))

		return m, nil
	}

	switch remote.Dispatch(code) {
	case remote.ActionToggle:
		return m, m.controller.Toggle()
	case remote.ActionClearLog:
		m.logPanel.Log("")
	case remote.ActionDisplayInfo:
		return m, m.inspector.DisplayInfo()
	case remote.ActionExit:
		return m.exit()
	case remote.ActionUnknown:
		m.logPanel.Log(remote.Diagnostic(code))
	}

	return m, nil
}

func (m rootModel) exit() (tea.Model, tea.Cmd) {
	if m.device.Valid() {
		m.device.Application.Exit()
	}

	return m, tea.Quit
}

func (m rootModel) View() string {
	var state *window.State
	if m.device.Valid() {
		state = m.state
	}

	footer := styles.FooterContainerStyle.
		Width(m.viewState.Width).
		Render(m.statusBar.Render(m.viewState.Width, state, m.zones))

	contentHeight := m.viewState.Height - lipgloss.Height(footer)

	var content string
	switch m.viewState.Page {
	case model.PageHelp:
		content = m.helpPage.Render(m.viewState.Width, contentHeight)
	case model.PageMain:
		content = m.logPanel.Render(contentHeight)
	}

	ctr := styles.ContentContainerStyle.Height(contentHeight).Render(content)

	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, ctr, footer))
}

// logMsg is useful for debugging events. Tail the log file ~/.config/tvwindow/tvwindow.log
func logMsg(inMsg tea.Msg) {
	// Filter out very noisy stuff
	switch inMsg.(type) {
	case tea.MouseMsg:
		break
	case command.ClearStatusMessageMsg:
		break
	default:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}
