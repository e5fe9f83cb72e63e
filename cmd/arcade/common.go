package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/brick-arcade/internal/config"
	"github.com/vovakirdan/brick-arcade/internal/core"
	"github.com/vovakirdan/brick-arcade/internal/logging"
	"github.com/vovakirdan/brick-arcade/internal/storage"
)

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// stderrLogger returns a logger for commands that do not own the terminal.
func stderrLogger(prefix string) *log.Logger {
	logger, err := logging.New(os.Stderr, prefix, flagLogLevel)
	if err != nil {
		fatal("%v", err)
	}
	return logger
}

// fileLogger returns a logger writing to ~/.arcade/arcade.log, since the
// terminal UI owns stdout. The returned func closes the file.
func fileLogger(prefix string) (*log.Logger, func()) {
	path, err := logging.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return logging.Discard(), func() {}
	}
	f, err := logging.OpenFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return logging.Discard(), func() {}
	}
	logger, err := logging.New(f, prefix, flagLogLevel)
	if err != nil {
		f.Close()
		fatal("%v", err)
	}
	return logger, func() { f.Close() }
}

// openStore opens the score database, or returns nil with a warning.
// Games still work without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the screen from the terminal.
// requireTerminal exits when stdout is not a terminal; the TUI has nothing
// to draw on otherwise.
func requireTerminal() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fatal("stdout is not a terminal; run 'arcade window' or 'arcade serve' instead")
	}
}

func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// loadGameConfig loads the breakout config, falling back to defaults.
func loadGameConfig(logger *log.Logger) config.BreakoutConfig {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid config, using defaults: %v\n", err)
		logger.Warn("invalid config, using defaults", "error", err)
		return config.DefaultBreakoutConfig()
	}
	return cfg
}

// parseDifficulty parses the --difficulty flag. When the flag is empty
// the last difficulty stored in the settings is used.
func parseDifficulty(flag string, store *storage.Store) config.DifficultyPreset {
	if flag != "" {
		preset, err := config.ParseDifficulty(flag)
		if err != nil {
			fatal("%v", err)
		}
		return preset
	}
	if store != nil {
		if s, err := store.LoadSettings(); err == nil {
			if preset, err := config.ParseDifficulty(s.Difficulty); err == nil {
				return preset
			}
		}
	}
	return config.DifficultyNormal
}
