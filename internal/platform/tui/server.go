package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

const shutdownGrace = 10 * time.Second

// ServerConfig configures the SSH host.
type ServerConfig struct {
	Address     string        // host:port
	HostKeyPath string        // generated on first start; empty means ~/.runner/host_key
	DBPath      string        // shared score database
	IdleTimeout time.Duration // disconnect idle sessions
	TickRate    int
	Difficulty  string // preset for every session, empty for none
}

// DefaultServerConfig returns the settings used by `runner serve`.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address:     ":23234",
		DBPath:      "~/.runner/scores.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
	}
}

// Server hosts one independent session per SSH connection. All sessions
// share the score database.
type Server struct {
	cfg    ServerConfig
	ssh    *ssh.Server
	store  *storage.Store // nil when the database is unavailable
	kv     registry.Store
	logger *log.Logger
	active atomic.Int64
}

// NewServer opens the score database and prepares the SSH listener. When the
// database cannot be opened, high scores fall back to process memory.
func NewServer(cfg ServerConfig, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "runner-ssh"})
	}
	s := &Server{cfg: cfg, logger: logger}

	if store, err := storage.Open(cfg.DBPath); err != nil {
		logger.Warn("scores database unavailable, keeping high scores in memory", "err", err)
		s.kv = storage.NewMemory()
	} else {
		s.store, s.kv = store, store
	}

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		s.store.Close()
		return nil, err
	}

	s.ssh, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		// last listed runs first
		wish.WithMiddleware(
			bubbletea.Middleware(s.newSession),
			activeterm.Middleware(),
			s.trackSession,
		),
	)
	if err != nil {
		s.store.Close()
		return nil, fmt.Errorf("ssh: %w", err)
	}
	return s, nil
}

// hostKeyPath resolves the key location and makes sure its directory exists.
func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("ssh: host key: %w", err)
		}
		path = filepath.Join(home, ".runner", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("ssh: host key directory: %w", err)
	}
	return path, nil
}

func (s *Server) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	model := NewSessionModel(SessionOptions{
		Store:      s.store,
		HighScores: s.kv,
		Difficulty: s.cfg.Difficulty,
		Username:   sess.User(),
		Logger:     s.logger,
	}, core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.cfg.TickRate,
	})
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

func (s *Server) trackSession(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		remote := sess.RemoteAddr().String()
		s.logger.Info("connect", "user", sess.User(), "remote", remote, "active", s.active.Add(1))
		defer func() {
			s.logger.Info("disconnect", "user", sess.User(), "remote", remote,
				"duration", time.Since(start).Round(time.Second), "active", s.active.Add(-1))
		}()
		next(sess)
	}
}

// Active returns the number of connected sessions.
func (s *Server) Active() int64 {
	return s.active.Load()
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.cfg.Address
}

// ListenAndServe serves until ctx is done or the listener fails. Either way
// the database is closed on return.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.logger.Info("listening", "addr", s.cfg.Address)

	done := make(chan error, 1)
	go func() { done <- s.ssh.ListenAndServe() }()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down", "active", s.Active())
		return s.Shutdown()
	case err := <-done:
		s.store.Close()
		if err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("ssh: %w", err)
		}
		return nil
	}
}

// Shutdown stops accepting connections, waits up to a grace period for
// sessions to end and closes the database.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	err := s.ssh.Shutdown(ctx)
	s.store.Close()
	return err
}
