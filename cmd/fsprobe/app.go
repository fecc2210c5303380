package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/desertwitch/fsprobe/internal/configuration"
	"github.com/desertwitch/fsprobe/internal/filesystem"
	"github.com/desertwitch/fsprobe/internal/schema"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// App holds everything the subcommands share. The filesystem handler is
// established from the configuration right before a subcommand runs.
type App struct {
	out        io.Writer
	configFile string
	debug      bool
	exitCode   int

	config    *configuration.AppConfiguration
	fsHandler *filesystem.Handler
}

func NewApp(out io.Writer) *App {
	return &App{
		out: out,
	}
}

// ExitCode returns the exit code requested by the last subcommand, for
// results which are not errors but should still be visible to scripts.
func (app *App) ExitCode() int {
	return app.exitCode
}

func (app *App) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               "fsprobe",
		Short:             "Inspect the filesystem and medium underlying a path",
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: app.establish,
	}

	root.PersistentFlags().StringVar(&app.configFile, "config", configuration.DefaultConfigFile, "configuration file (may be absent)")
	root.PersistentFlags().BoolVar(&app.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		app.mountPointCommand(),
		app.filesystemNameCommand(),
		app.spaceCommand(),
		app.startsWithCommand(),
		app.tempFileCommand(),
		app.reportCommand(),
	)

	return root
}

func (app *App) establish(_ *cobra.Command, _ []string) error {
	if app.debug {
		setupLogging(slog.LevelDebug)
	}

	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

	config, err := configHandler.EstablishConfiguration(app.configFile)
	if err != nil {
		return fmt.Errorf("(app) %w", err)
	}
	app.config = config

	if app.config.TempDir == "" {
		app.config.TempDir = os.TempDir()
	}

	app.fsHandler = filesystem.NewHandler(&schema.OS{}, &schema.Unix{}, afero.NewOsFs(), config.MountTable)

	slog.Debug("Configuration established.",
		"config", app.configFile,
		"mountTable", app.fsHandler.MountTable(),
		"tempDir", app.config.TempDir,
		"requiredBytes", app.config.RequiredBytes,
	)

	return nil
}
