package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	_ "github.com/joho/godotenv/autoload"
	"github.com/leighmacdonald/tvwindow/internal/config"
	"github.com/leighmacdonald/tvwindow/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgFile        string
	rootCmd        = &cobra.Command{
		Use:   "tvwindow",
		Short: "TV hole window remote",
		Long:  `tvwindow - Show, hide and inspect the TV hole window with the remote control`,
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about tvwindow",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}

	initCmd = &cobra.Command{
		Use:               "init",
		Short:             "Write a default config file",
		Long:              "Write the default configuration to the config file path, existing files are left untouched",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              initConfig,
	}
)

var errApp = errors.New("application error")

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file path")
	rootCmd.AddCommand(versionCmd, initCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("tvwindow - TV hole window remote\n\n") //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)        //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)         //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)           //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion)    //nolint:forbidigo
}

func initConfig(cmd *cobra.Command, _ []string) error {
	target := cfgFile
	if target == "" {
		target = config.Path(config.DefaultConfigName + ".yaml")
	}

	if err := config.NewLoader(nil, target).WriteDefault(target); err != nil {
		return errors.Join(err, errApp)
	}

	cmd.Printf("Wrote %s\n", target)

	return nil
}

// run is the main entry point of tvwindow.
func run(cmd *cobra.Command, _ []string) error {
	// Make sure our config home exists.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	configUpdates := make(chan config.Config)
	configLoader := config.NewLoader(configUpdates, cfgFile)
	userConfig, errConfig := configLoader.Read()
	if errConfig != nil {
		return errors.Join(errApp, errConfig)
	}

	level := slog.LevelInfo
	if userConfig.Debug {
		level = slog.LevelDebug
	}

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	logFile, errLogger := config.LoggerInit(config.DefaultLogName, level)
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting tvwindow", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	app := NewApp(userConfig, configUpdates)
	configLoader.Watch()

	group, groupCtx := errgroup.WithContext(ctx)
	userInterface := ui.New(groupCtx, userConfig, app.device, ui.BuildInfo{
		Version: BuildVersion,
		Commit:  BuildCommit,
		Date:    BuildDate,
	}, configLoader.Path())
	app.ui = userInterface

	group.Go(func() error {
		// The ui owns the lifetime of the app, everything else stops with it.
		defer cancel()

		return userInterface.Run()
	})

	group.Go(func() error {
		// Once the app loop is gone nothing receives config reloads.
		defer configLoader.Stop()

		app.Start(groupCtx)

		return nil
	})

	if err := group.Wait(); err != nil {
		return errors.Join(err, errApp)
	}

	return nil
}
