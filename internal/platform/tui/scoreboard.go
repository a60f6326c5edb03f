package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

const scoreboardRows = 100

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardStatsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
)

type scoreboardKeys struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

var _ help.KeyMap = scoreboardKeys{}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Next, k.Prev, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next course")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←", "prev course")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("b", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the run history of one course at a time.
type ScoreboardModel struct {
	store   *storage.Store
	courses []registry.GameInfo
	sel     int
	runs    []storage.Run
	stats   storage.CourseStats
	table   table.Model
	help    help.Model
	keys    scoreboardKeys
	width   int
	height  int
	back    bool
	quit    bool
}

// NewScoreboardModel opens the scoreboard on gameID, or on the first course
// when gameID is empty or unknown. store may be nil.
func NewScoreboardModel(store *storage.Store, gameID string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:   store,
		courses: registry.List(),
		help:    help.New(),
		keys:    newScoreboardKeys(),
		width:   width,
		height:  height,
	}
	for i, c := range m.courses {
		if c.ID == gameID {
			m.sel = i
		}
	}
	m.table = newScoreTable(width, height)
	m.load()
	return m
}

func newScoreTable(width, height int) table.Model {
	player := min(max(width-40, 10), 24)
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 8},
			{Title: "Player", Width: player},
			{Title: "When", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 3)),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(lipgloss.Color("240"))
	st.Selected = st.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(false)
	t.SetStyles(st)
	return t
}

// load reads the selected course's history into the table.
func (m *ScoreboardModel) load() {
	m.runs, m.stats = nil, storage.CourseStats{}
	if len(m.courses) == 0 {
		return
	}
	course := m.courses[m.sel].ID
	m.stats.Course = course
	if m.store != nil {
		m.runs, _ = m.store.TopScores(course, scoreboardRows)
		if st, err := m.store.Stats(course); err == nil {
			m.stats = st
		}
	}

	rows := make([]table.Row, 0, len(m.runs))
	for i, r := range m.runs {
		who := r.Player
		if who == "" {
			who = "local"
		}
		rows = append(rows, table.Row{strconv.Itoa(i + 1), strconv.Itoa(r.Score), who, r.PlayedAt.Format("Jan 02 15:04")})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) step(delta int) {
	if n := len(m.courses); n > 0 {
		m.sel = (m.sel + delta + n) % n
		m.load()
	}
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newScoreTable(m.width, m.height)
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quit || m.back {
		return ""
	}

	body := boardEmptyStyle.Render("No runs on this course yet.")
	if len(m.runs) > 0 {
		body = m.table.View()
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		boardTitleStyle.Render("HIGH SCORES"),
		"",
		m.tabs(),
		m.statsLine(),
		boardFrameStyle.Render(body),
		boardHelpStyle.Render(m.help.View(m.keys)),
	)
}

// tabs renders the course strip; it collapses to "< title >" when the
// strip does not fit.
func (m ScoreboardModel) tabs() string {
	if len(m.courses) == 0 {
		return ""
	}
	parts := make([]string, len(m.courses))
	for i, c := range m.courses {
		style := boardTabStyle
		if i == m.sel {
			style = boardActiveTab
		}
		parts[i] = style.Render(c.Title)
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if lipgloss.Width(strip) > m.width {
		return boardActiveTab.Render("< " + m.courses[m.sel].Title + " >")
	}
	return strip
}

// statsLine summarises the selected course's history.
func (m ScoreboardModel) statsLine() string {
	if m.stats.Runs == 0 {
		return boardStatsStyle.Render("Runs: 0")
	}
	fields := []string{
		fmt.Sprintf("Runs: %d", m.stats.Runs),
		fmt.Sprintf("Best: %d", m.stats.Best),
		fmt.Sprintf("Avg: %.1f", m.stats.Mean),
		"Last: " + m.stats.LastRun.Format("Jan 02 15:04"),
	}
	return boardStatsStyle.Render(strings.Join(fields, "  |  "))
}

// IsGoingBack reports whether the player asked for the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

func (m ScoreboardModel) IsQuitting() bool {
	return m.quit
}

// RunScoreboard runs the scoreboard as its own program and reports whether
// the player asked to go back.
func RunScoreboard(store *storage.Store, gameID string, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, gameID, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
