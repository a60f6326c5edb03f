package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Verify a recorded run",
	Long: `Re-simulate a recorded run and check it reproduces the recorded score.
The course config must match the one the run was recorded with; pass
--config when it was recorded with a custom file.

Examples:
  runner replay ./replays/runner_20250101_120000_1a2b3c4d.runrec
  runner replay run.runrec --config ./my-runner.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagConfig, "config", "", "Path to the course config YAML the run was recorded with")
}

func runReplay(cmd *cobra.Command, args []string) {
	logger := stderrLogger("runner-replay")

	rec, err := replay.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	requireGame(rec.Variant)

	cfg, err := runner.LoadConfig(rec.Variant, flagConfig, rec.Preset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("replaying", "id", rec.ID, "course", rec.Variant, "preset", rec.Preset,
		"seed", rec.Seed, "jumps", len(rec.Jumps), "recorded", rec.CreatedAt.Local().Format("2006-01-02 15:04"))

	got, err := replay.Verify(rec, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, replay.ErrMismatch) {
			fmt.Fprintln(os.Stderr, "The course config differs from the one the run was recorded with, or the file was edited.")
		}
		os.Exit(1)
	}

	fmt.Printf("OK: %s scored %d in %d ticks\n", rec.Variant, got.Score, got.Ticks)
}
