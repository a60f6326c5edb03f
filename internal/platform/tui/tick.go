// Package tui provides the Bubble Tea integration for the runner.
// It hosts the frame scheduler, input mapping, menus and SSH sessions.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// TickMsg is sent to trigger a game simulation tick. Host identifies the
// Model that scheduled it and Token the tick chain within that model's game.
type TickMsg struct {
	Host  uint64
	Token core.Token
	At    time.Time
}

var hostSeq atomic.Uint64

// nextHostID returns a process-wide unique Model ID.
func nextHostID() uint64 {
	return hostSeq.Add(1)
}

// tickCmd schedules the next tick of the chain identified by host and tok.
func tickCmd(tickRate int, host uint64, tok core.Token) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Host: host, Token: tok, At: t}
	})
}
