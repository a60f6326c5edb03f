// runner is a terminal endless runner: jump over the obstacles scrolling in
// from the right while the course keeps speeding up.
//
// Usage:
//
//	runner list               - List available courses
//	runner play <course>      - Play a course
//	runner menu               - Pick courses interactively
//	runner scores <course>    - Show high scores and stats
//	runner sim <course>       - Run the autopilot headlessly
//	runner replay <file>      - Verify a recorded run
//	runner serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.runner/scores.db)
//	--log <path>    - Set log file for interactive commands (default: ~/.runner/runner.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import variants to register them
	_ "github.com/vovakirdan/tui-runner/internal/games/runner"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "TUI Runner - an endless runner in your terminal",
	Long: `TUI Runner is a terminal endless runner. Jump over the obstacles
scrolling in from the right; the course speeds up until you hit one.

Available commands:
  list     - Show all courses
  play     - Play a specific course
  menu     - Interactive course picker
  scores   - View high scores and stats
  sim      - Run the autopilot headlessly
  replay   - Verify a recorded run
  serve    - Start SSH server for remote play

Examples:
  runner list
  runner play runner_double
  runner menu
  runner sim runner_city --runs 50
  runner serve --ssh :2222
  runner scores runner`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.runner/runner.log", "Log file for interactive commands")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(serveCmd)
}
