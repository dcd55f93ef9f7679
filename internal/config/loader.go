package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes  chan<- Config
	done     chan struct{}
	stopOnce sync.Once
}

// NewLoader creates a loader searching the xdg config dir and the working directory. When path
// is set, only that file is used.
func NewLoader(changes chan<- Config, path string) *Loader {
	loader := Loader{changes: changes, done: make(chan struct{}), Viper: viper.New()}
	loader.SetDefault("debug", false)
	loader.SetDefault("platform", PlatformSim)
	loader.SetDefault("window_type", "MAIN")
	loader.SetDefault("window.x", "10px")
	loader.SetDefault("window.y", "300px")
	loader.SetDefault("window.width", "50%")
	loader.SetDefault("window.height", "540px")
	loader.SetDefault("registered_keys", []string{"0", "ColorF0Red"})
	loader.SetDefault("sim.screen_width", 1920)
	loader.SetDefault("sim.screen_height", 1080)
	loader.SetDefault("sim.latency_ms", 50)
	loader.SetDefault("sim.source_type", "TV")
	loader.SetDefault("sim.source_number", 1)
	loader.SetDefault("sim.windows", []string{"MAIN"})
	loader.SetDefault("sim.faults", map[string]string{})
	loader.SetConfigType("yaml")
	if path != "" {
		loader.SetConfigFile(path)
	} else {
		loader.SetConfigName(DefaultConfigName)
		loader.AddConfigPath(Path(""))
		loader.AddConfigPath(".")
	}
	loader.SetEnvPrefix(EnvPrefix)
	loader.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	loader.AutomaticEnv()

	return &loader
}

// Watch starts broadcasting changes made to the config file while the app is running.
func (cl *Loader) Watch() {
	cl.OnConfigChange(cl.onConfigChange)
	cl.WatchConfig()
}

// Stop ends broadcasting. Reloads after Stop are read but dropped, so nothing waits on a
// receiver that has gone away.
func (cl *Loader) Stop() {
	cl.stopOnce.Do(func() {
		close(cl.done)
	})
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Rename) {
		return
	}

	slog.Debug("External config reload triggered", slog.String("file", in.Name))
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	if cl.changes == nil {
		return
	}

	select {
	case cl.changes <- config:
	case <-cl.done:
		slog.Debug("Config reload dropped, loader stopped")
	}
}

// WriteDefault writes the current settings, defaults included, to path. An existing file is
// never overwritten.
func (cl *Loader) WriteDefault(path string) error {
	if err := cl.SafeWriteConfigAs(path); err != nil {
		return errors.Join(err, errConfigWrite)
	}

	return nil
}

// Read loads the config file. A missing file is not an error, the defaults are used instead.
func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	return config, nil
}
