package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Smallest terminal the runner is drawn on.
const (
	minScreenW = 20
	minScreenH = 6
)

// ModelOptions configures a game model beyond the game itself.
type ModelOptions struct {
	Store  *storage.Store // Score history; nil disables it
	Player string         // Recorded with each score, empty for local play
	Logger *log.Logger    // nil discards
	// Embedded models live inside a SessionModel, which handles going back
	// to the menu instead of ending the program.
	Embedded bool
	// OnRunOver is called once per finished run, before the next one starts.
	OnRunOver func(g registry.Game)
}

// termSize is shared by every copy of a Model so the ready gate sees resizes.
type termSize struct {
	w, h int
}

func (s *termSize) drawable() bool {
	return s.w >= minScreenW && s.h >= minScreenH
}

// Model is the Bubble Tea model that hosts one game. Bubble Tea is the frame
// scheduler: every tick the game accepts schedules the next one with the same
// token, and a token the game no longer recognises ends the chain.
type Model struct {
	id         uint64
	game       registry.Game
	screen     *core.Screen
	size       *termSize
	opts       ModelOptions
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	gameState  core.GameState
	runSaved   bool // Whether the current finished run has been recorded
	quitting   bool
	backToMenu bool
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		id:        nextHostID(),
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		size:      &termSize{w: cfg.ScreenW, h: cfg.ScreenH},
		opts:      opts,
		logger:    logger,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init resets the game. Ticks start once the terminal has a drawable size
// and the player jumps.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.game.SetReadyGate(m.size.drawable)
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.game.Stop()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		// Back leaves a finished or paused run; during play it pauses.
		if m.gameState.GameOver() || m.gameState.Paused {
			m.game.Stop()
			m.backToMenu = true
			if m.opts.Embedded {
				return m, nil
			}
			return m, tea.Quit
		}
		if m.gameState.Phase == core.PhaseRunning {
			action = core.ActionPause
		} else {
			return m, nil
		}
	case core.ActionJump, core.ActionPause, core.ActionRestart:
	default:
		return m, nil
	}

	tok, ok := m.game.Input(action)
	m.refresh()
	if ok {
		return m, tickCmd(m.config.TickRate, m.id, tok)
	}
	return m, nil
}

// handleResize processes window resize events. The run is kept; only the
// projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.size.w, m.size.h = msg.Width, msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the game when the tick belongs to this model.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Host != m.id {
		return m, nil
	}
	result := m.game.Tick(msg.Token)
	m.refresh()
	if result.Continue {
		return m, tickCmd(m.config.TickRate, m.id, msg.Token)
	}
	return m, nil
}

// refresh pulls the game state and records a finished run exactly once.
func (m *Model) refresh() {
	m.gameState = m.game.State()
	if !m.gameState.GameOver() {
		m.runSaved = false
		return
	}
	if m.runSaved {
		return
	}
	m.runSaved = true

	if m.opts.Store != nil {
		if _, err := m.opts.Store.SaveScore(m.game.ID(), m.opts.Player, m.gameState.Score); err != nil {
			m.logger.Warn("could not save score", "game", m.game.ID(), "err", err)
		}
	}
	if m.opts.OnRunOver != nil {
		m.opts.OnRunOver(m.game)
	}
}

// saveScreenshot saves the current screen to ~/.runner/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".runner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	if !m.size.drawable() {
		return fmt.Sprintf("Terminal too small (need %dx%d)", minScreenW, minScreenH)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting reports a quit request.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for the given game. It reports whether the
// player asked to go back to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) (backToMenu bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
