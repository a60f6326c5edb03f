package tui

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/storage"
)

func testServerConfig(t *testing.T) ServerConfig {
	dir := t.TempDir()
	cfg := DefaultServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")
	return cfg
}

func TestNewServerOpensDatabase(t *testing.T) {
	cfg := testServerConfig(t)
	s, err := NewServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewServer() failed: %v", err)
	}
	defer s.Shutdown()

	if s.store == nil || s.kv != s.store {
		t.Error("high scores are not backed by the database")
	}
	if _, err := os.Stat(filepath.Dir(cfg.HostKeyPath)); err != nil {
		t.Errorf("host key directory missing: %v", err)
	}
	if s.Addr() != cfg.Address || s.Active() != 0 {
		t.Errorf("Addr() = %q, Active() = %d", s.Addr(), s.Active())
	}
}

func TestNewServerFallsBackToMemory(t *testing.T) {
	cfg := testServerConfig(t)
	cfg.DBPath = t.TempDir() // a directory cannot be opened as a database

	s, err := NewServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewServer() failed: %v", err)
	}
	defer s.Shutdown()

	if s.store != nil {
		t.Error("store set for an unusable path")
	}
	if _, ok := s.kv.(*storage.Memory); !ok {
		t.Errorf("high scores kept in %T, expected memory", s.kv)
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	s, err := NewServer(testServerConfig(t), log.New(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.ListenAndServe(ctx); err != nil {
		t.Errorf("ListenAndServe() after cancel = %v", err)
	}
}
