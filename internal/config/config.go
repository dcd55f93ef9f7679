package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/adrg/xdg"
	"github.com/leighmacdonald/tvwindow/internal/platform"
)

var (
	errConfigWrite = errors.New("failed to write config file")
	errConfigRead  = errors.New("failed to read config file")
	errLoggerInit  = errors.New("failed to initialize logger")
)

const (
	ConfigDirName     = "tvwindow"
	DefaultConfigName = "tvwindow"
	DefaultLogName    = "tvwindow.log"
	EnvPrefix         = "tvwindow"
	PlatformSim       = "sim"
)

type Config struct {
	Debug bool `mapstructure:"debug"`
	// Platform selects the device backend. Only the simulated device is built in, an empty
	// value means no device is present.
	Platform       string      `mapstructure:"platform"`
	WindowType     string      `mapstructure:"window_type"`
	Window         Coordinates `mapstructure:"window"`
	RegisteredKeys []string    `mapstructure:"registered_keys"`
	Sim            Sim         `mapstructure:"sim"`
}

// Coordinates is the default hole window area. Each value needs a px or % unit.
type Coordinates struct {
	X      string `mapstructure:"x"`
	Y      string `mapstructure:"y"`
	Width  string `mapstructure:"width"`
	Height string `mapstructure:"height"`
}

func (c Coordinates) Rect() platform.Rect {
	return platform.Rect{c.X, c.Y, c.Width, c.Height}
}

type Sim struct {
	ScreenWidth  int      `mapstructure:"screen_width"`
	ScreenHeight int      `mapstructure:"screen_height"`
	LatencyMs    int      `mapstructure:"latency_ms"`
	SourceType   string   `mapstructure:"source_type"`
	SourceNumber int      `mapstructure:"source_number"`
	Windows      []string `mapstructure:"windows"`
	// Faults maps an operation (show, hide, rect, source, windows, register) to the error
	// name it should fail with.
	Faults map[string]string `mapstructure:"faults"`
}

func (s Sim) Latency() time.Duration {
	return time.Duration(s.LatencyMs) * time.Millisecond
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(path.Join(xdg.ConfigHome, ConfigDirName, logPath))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}
