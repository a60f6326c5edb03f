package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all courses",
	Long:  `Shows every runner course with its stored high score.`,
	Run:   runList,
}

var listHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

func runList(cmd *cobra.Command, args []string) {
	courses := registry.List()
	if len(courses) == 0 {
		fmt.Println("No courses available.")
		return
	}

	// list never creates the database; without one every best is blank
	var kv registry.Store
	if _, err := os.Stat(expandHome(flagDBPath)); err == nil {
		if store, err := storage.Open(flagDBPath); err == nil {
			defer store.Close()
			kv = store
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return listHeaderStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("ID", "Title", "Best").
		Rows(courseRows(courses, kv)...)

	fmt.Println(t.Render())
	fmt.Println("Run 'runner play <id>' to play a course.")
}

// courseRows lists id, title and stored high score per course. kv may be
// nil; unreadable or missing scores show as "-".
func courseRows(courses []registry.GameInfo, kv registry.Store) [][]string {
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		best := "-"
		if kv != nil {
			if v, ok, err := kv.Get(runner.HighScoreKey(c.ID)); err == nil && ok {
				if n, err := strconv.Atoi(v); err == nil {
					best = strconv.Itoa(n)
				}
			}
		}
		rows = append(rows, []string{c.ID, c.Title, best})
	}
	return rows
}
