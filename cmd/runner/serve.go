package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagEnvFile     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the runner SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a course picker menu.
Scores are stored per-server (all users share the same leaderboard).

Defaults are read from the environment, and from a .env file when present:
  RUNNER_SSH_ADDR   - listen address
  RUNNER_HOST_KEY   - host key path
  RUNNER_DB         - scores database path
Flags given on the command line win over the environment.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.runner/host_key

Examples:
  runner serve                           # Listen on :23234 with auto-generated key
  runner serve --ssh :2222               # Listen on port 2222
  runner serve --host-key ./my_host_key  # Use specific host key
  runner serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagEnvFile, "env-file", ".env", "Environment file with server defaults")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset for every session")
}

// envDefault returns the environment value of key unless the flag was set.
func envDefault(cmd *cobra.Command, flag, key, current string) string {
	if cmd.Flags().Changed(flag) {
		return current
	}
	if v := os.Getenv(key); v != "" {
		return v
	}
	return current
}

func runServe(cmd *cobra.Command, _ []string) {
	logger := stderrLogger("runner-ssh")

	if err := godotenv.Load(flagEnvFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("could not load env file", "path", flagEnvFile, "err", err)
		}
	} else {
		logger.Info("loaded env file", "path", flagEnvFile)
	}

	cfg := tui.DefaultServerConfig()
	cfg.Address = envDefault(cmd, "ssh", "RUNNER_SSH_ADDR", flagSSHAddr)
	cfg.HostKeyPath = envDefault(cmd, "host-key", "RUNNER_HOST_KEY", flagHostKey)
	cfg.DBPath = envDefault(cmd, "db", "RUNNER_DB", flagDBPath)
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Difficulty = flagDifficulty

	server, err := tui.NewServer(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting runner SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
