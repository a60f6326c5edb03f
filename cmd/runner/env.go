package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// fileLogger logs to the --log file. Interactive commands own the terminal,
// so their logs cannot go to stderr. The returned func closes the file.
func fileLogger() (*log.Logger, func()) {
	path := expandHome(flagLogPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
	})
	return logger, func() { f.Close() }
}

// stderrLogger is the logger of non-interactive commands.
func stderrLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// openStores opens the scores database. Without it, scores history is off
// and high scores last for the session only.
func openStores(logger *log.Logger) (*storage.Store, registry.Store) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("high scores are session-only", "db", flagDBPath, "err", err)
		return nil, storage.NewMemory()
	}
	return store, store
}

// runtimeConfig builds the runtime config from the terminal and global flags.
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

// requireGame exits when id is not a registered course.
func requireGame(id string) {
	if _, ok := registry.Lookup(id); !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown course %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'runner list' to see available courses.")
		os.Exit(1)
	}
}
