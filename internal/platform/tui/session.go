package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// SessionOptions are shared by every screen of one session.
type SessionOptions struct {
	Store      *storage.Store // run history, may be nil
	HighScores registry.Store // handed to games
	Difficulty string
	Username   string
	Logger     *log.Logger
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel is the root model of one SSH connection. It moves between
// the menu, a game and the scoreboard without leaving the program.
type SessionModel struct {
	id     string
	opts   SessionOptions
	config core.RuntimeConfig
	logger *log.Logger

	screen     sessionScreen
	menu       MenuModel
	gameModel  Model
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel starts a session on the menu under a fresh session ID.
func NewSessionModel(opts SessionOptions, cfg core.RuntimeConfig) SessionModel {
	id := uuid.NewString()
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return SessionModel{
		id:     id,
		opts:   opts,
		config: cfg,
		logger: logger.With("session", id, "user", opts.Username),
		menu:   NewMenuModel(opts.Store, cfg),
	}
}

func (m SessionModel) ID() string {
	return m.id
}

func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = size.Width, size.Height
	}

	var cmd tea.Cmd
	switch m.screen {
	case screenGame:
		next, c := m.gameModel.Update(msg)
		m.gameModel, cmd = next.(Model), c
		switch {
		case m.gameModel.IsQuitting():
			return m.quit()
		case m.gameModel.BackToMenu():
			return m.toMenu()
		}

	case screenScores:
		next, c := m.scoreboard.Update(msg)
		m.scoreboard, cmd = next.(ScoreboardModel), c
		switch {
		case m.scoreboard.IsQuitting():
			return m.quit()
		case m.scoreboard.IsGoingBack():
			return m.toMenu()
		}

	default:
		next, c := m.menu.Update(msg)
		m.menu, cmd = next.(MenuModel), c
		switch {
		case m.menu.IsQuitting():
			return m.quit()
		case m.menu.WantsScoreboard():
			m.scoreboard = NewScoreboardModel(m.opts.Store, m.menu.Current(), m.config.ScreenW, m.config.ScreenH)
			m.screen = screenScores
			return m, m.scoreboard.Init()
		case m.menu.Selected() != nil:
			return m.play(m.menu.Selected().GameID)
		}
	}
	return m, cmd
}

func (m SessionModel) play(id string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(id, registry.Options{
		Difficulty: m.opts.Difficulty,
		Store:      m.opts.HighScores,
		Logger:     m.logger,
	})
	if err != nil {
		m.logger.Error("cannot create game", "game", id, "err", err)
		return m.toMenu()
	}

	m.logger.Info("run started", "game", id)
	m.gameModel = NewModel(game, m.config, ModelOptions{
		Store:    m.opts.Store,
		Player:   m.opts.Username,
		Logger:   m.logger,
		Embedded: true,
	})
	m.screen = screenGame
	return m, m.gameModel.Init()
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.gameModel = Model{}
	m.menu = NewMenuModel(m.opts.Store, m.config)
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.screen == screenGame:
		return m.gameModel.View()
	case m.screen == screenScores:
		return m.scoreboard.View()
	}
	return m.menu.View()
}
