package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// setupLogging routes slog output through a colour terminal handler on
// stderr, keeping stdout clean for the resolved environment name.
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	h := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
	})
	slog.SetDefault(slog.New(h))

	log.SetFlags(0)
	log.SetOutput(
		slog.NewLogLogger(
			slog.Default().Handler(),
			slog.LevelInfo,
		).Writer(),
	)
}
