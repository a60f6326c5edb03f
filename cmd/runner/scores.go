package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresClear bool
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [course]",
	Short: "Show high scores and stats",
	Long: `Display the top 10 runs and aggregated stats for a course.

Examples:
  runner scores runner
  runner scores runner_city --interactive
  runner scores --all
  runner scores runner_double --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show stats for every course")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the course's runs and high score")
	scoresCmd.Flags().BoolVarP(&flagScoresTUI, "interactive", "i", false, "Open the scoreboard screen")
}

func runScores(cmd *cobra.Command, args []string) {
	if len(args) == 0 && !flagScoresAll && !flagScoresTUI {
		fmt.Fprintln(os.Stderr, "Error: name a course or pass --all")
		os.Exit(1)
	}

	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		requireGame(gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresTUI:
		cfg := runtimeConfig()
		if _, err := tui.RunScoreboard(store, gameID, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case flagScoresAll:
		printAllStats(store)
	case flagScoresClear:
		if err := store.ClearScores(gameID, runner.HighScoreKey(gameID)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s.\n", gameID)
	default:
		printScores(store, gameID)
	}
}

func titleOf(gameID string) string {
	if info, ok := registry.Lookup(gameID); ok {
		return info.Title
	}
	return gameID
}

func printScores(store *storage.Store, gameID string) {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", titleOf(gameID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'runner play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-12s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-12s  %s\n", "----", "-----", "------", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "local"
		}
		fmt.Printf("  %-4d  %-8d  %-12s  %s\n", i+1, entry.Score, player, entry.PlayedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.1f  Last played: %s\n",
			stats.Runs, stats.Best, stats.Mean, stats.LastRun.Format("2006-01-02 15:04"))
	}
}

func printAllStats(store *storage.Store) {
	all, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}
	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-14s  %-6s  %-6s  %-8s  %s\n", "Course", "Runs", "Best", "Average", "Last played")
	for _, id := range ids {
		st := all[id]
		fmt.Printf("  %-14s  %-6d  %-6d  %-8.1f  %s\n",
			titleOf(id), st.Runs, st.Best, st.Mean, st.LastRun.Format("2006-01-02 15:04"))
	}
}
