package main

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/tvwindow/internal/config"
	"github.com/leighmacdonald/tvwindow/internal/platform"
	"github.com/leighmacdonald/tvwindow/internal/platform/sim"
)

type UI interface {
	Send(msg tea.Msg)
	Run() error
}

// App is the main application container. It owns the device backend and routes config
// changes to it and to the UI.
type App struct {
	ui            UI
	config        config.Config
	device        platform.Device
	sim           *sim.Device
	configUpdates chan config.Config
}

func NewApp(conf config.Config, configUpdates chan config.Config) *App {
	app := &App{
		config:        conf,
		configUpdates: configUpdates,
	}

	switch conf.Platform {
	case config.PlatformSim:
		app.sim = sim.New(simOptions(conf))
		app.device = app.sim.Platform()
		slog.Info("Using simulated device", slog.String("device", app.sim.String()))
	default:
		slog.Warn("No device available", slog.String("platform", conf.Platform))
	}

	return app
}

// Start runs the main event processing loop until the context is cancelled or the device
// application exits.
func (app *App) Start(ctx context.Context) {
	var exited <-chan struct{}
	if app.sim != nil {
		exited = app.sim.Exited()
	}

	for {
		select {
		case conf := <-app.configUpdates:
			app.onConfig(conf)
		case <-exited:
			slog.Info("Device application exited")
			exited = nil
		case <-ctx.Done():
			return
		}
	}
}

func (app *App) onConfig(conf config.Config) {
	app.config = conf
	if app.sim != nil {
		app.sim.Configure(simOptions(conf))
		slog.Debug("Reconfigured simulated device", slog.String("device", app.sim.String()))
	}

	if app.ui != nil {
		app.ui.Send(conf)
	}
}

func simOptions(conf config.Config) sim.Options {
	opts := sim.DefaultOptions()
	opts.Version = BuildVersion

	if conf.Sim.ScreenWidth > 0 {
		opts.ScreenWidth = conf.Sim.ScreenWidth
	}

	if conf.Sim.ScreenHeight > 0 {
		opts.ScreenHeight = conf.Sim.ScreenHeight
	}

	if conf.Sim.LatencyMs >= 0 {
		opts.Latency = conf.Sim.Latency()
	}

	if conf.Sim.SourceType != "" {
		opts.Source = platform.Source{Type: conf.Sim.SourceType, Number: conf.Sim.SourceNumber}
	}

	if len(conf.Sim.Windows) > 0 {
		opts.Windows = make([]platform.WindowType, len(conf.Sim.Windows))
		for idx, name := range conf.Sim.Windows {
			opts.Windows[idx] = platform.WindowType(name)
		}
	}

	for op, name := range conf.Sim.Faults {
		opts.Faults[op] = name
	}

	return opts
}
