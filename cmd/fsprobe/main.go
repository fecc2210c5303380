package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string
)

func setupLogging(level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	setupLogging(slog.LevelInfo)

	app := NewApp(os.Stdout)

	if err := app.RootCommand().Execute(); err != nil {
		slog.Error("Command failed.",
			"err", err,
		)
		ExitCode = 1

		return
	}

	ExitCode = app.ExitCode()
}
