package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// logLevel parses --log-level.
func logLevel() log.Level {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fail("invalid --log-level %q: %v", flagLogLevel, err)
	}
	return level
}

// interactiveLogger returns the logger used while the board owns the
// terminal. Logs go to --log-file, or nowhere, so they never draw over the
// alternate screen. The returned func closes the file.
func interactiveLogger() (*log.Logger, func()) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fail("cannot open log file: %v", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "sweeper",
		Level:           logLevel(),
	})
	log.SetDefault(logger)
	return logger, closeFn
}

// loadConfig reads the sweeper configuration, exiting on a bad --config.
func loadConfig() config.SweeperConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	return cfg
}

// openStore opens the stats database. Failure is a warning; games run
// without stats.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open stats database: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig builds the platform config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
