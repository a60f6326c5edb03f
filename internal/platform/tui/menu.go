package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 2)
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuBestStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuItem is one course in the picker.
type MenuItem struct {
	GameID string
	Title  string
	Best   int // 0 when unknown
}

type menuChoice int

const (
	choiceNone menuChoice = iota
	choicePlay
	choiceScores
	choiceQuit
)

// MenuModel picks a course to play or opens the scoreboard.
type MenuModel struct {
	items  []MenuItem
	cursor int
	config core.RuntimeConfig
	keys   *KeyMapper
	choice menuChoice
}

// NewMenuModel lists every registered course with its best run from store,
// which may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem
	for _, g := range registry.List() {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if store != nil {
			item.Best, _ = store.HighScore(g.ID)
		}
		items = append(items, item)
	}
	return MenuModel{items: items, config: cfg, keys: NewKeyMapper()}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height

	case tea.KeyMsg:
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			m.cursor = min(m.cursor+1, len(m.items)-1)
		case MenuActionSelect:
			if len(m.items) > 0 {
				m.choice = choicePlay
				return m, tea.Quit
			}
		case MenuActionScoreboard:
			m.choice = choiceScores
			return m, tea.Quit
		case MenuActionQuit:
			m.choice = choiceQuit
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.choice == choiceQuit {
		return ""
	}
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(m.config.ScreenW, lipgloss.Center, s)
	}

	lines := []string{
		"",
		center(menuTitleStyle.Render("R U N N E R")),
		"",
		center("Select a course"),
		"",
	}
	for i, item := range m.items {
		line := fmt.Sprintf("  %-14s", item.Title)
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + line[2:])
		}
		if item.Best > 0 {
			line += menuBestStyle.Render(fmt.Sprintf("  best %d", item.Best))
		}
		lines = append(lines, center(line))
	}
	lines = append(lines, "",
		center(menuHintStyle.Render("↑/↓ navigate  •  enter play  •  tab scores  •  q quit")), "")

	return strings.Join(lines, "\n")
}

// Current returns the course under the cursor.
func (m MenuModel) Current() string {
	if len(m.items) == 0 {
		return ""
	}
	return m.items[m.cursor].GameID
}

// Selected returns the chosen course, nil until one is picked.
func (m MenuModel) Selected() *MenuItem {
	if m.choice != choicePlay {
		return nil
	}
	item := m.items[m.cursor]
	return &item
}

func (m MenuModel) IsQuitting() bool {
	return m.choice == choiceQuit
}

func (m MenuModel) WantsScoreboard() bool {
	return m.choice == choiceScores
}

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult is the outcome of a standalone menu program. GameID is the
// course to play, or the one to open the scoreboard on.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu as its own program.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	res := MenuResult{GameID: m.Current(), Config: m.Config()}
	switch m.choice {
	case choiceScores:
		res.WantsScoreboard = true
	case choicePlay:
	default:
		res.Quit = true
	}
	return res, nil
}
