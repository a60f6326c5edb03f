package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/replay"
)

var (
	flagSimRuns  int
	flagSimTicks int
)

var simCmd = &cobra.Command{
	Use:   "sim <course>",
	Short: "Run the autopilot headlessly",
	Long: `Play runs with the built-in autopilot, without a terminal UI.
Run i uses seed --seed + i, so a fixed --seed reproduces the whole batch.

Examples:
  runner sim runner
  runner sim runner_double --runs 100 --ticks 50000
  runner sim runner_city --seed 42 --record ./replays`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 10, "Number of runs")
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 20000, "Maximum ticks per run")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom course config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	simCmd.Flags().StringVar(&flagRecordDir, "record", "", "Save a replay of every run into this directory")
}

// simulate plays one autopilot run of at most maxTicks.
func simulate(e *runner.Engine, p *runner.Autopilot, maxTicks int) runner.RunRecord {
	e.Start()
	for e.Phase() == core.PhaseRunning && e.Ticks() < maxTicks {
		if p.Decide(e.Snapshot()) {
			e.Jump()
		}
		e.Tick()
	}
	return e.Run()
}

func runSim(cmd *cobra.Command, args []string) {
	gameID := args[0]
	requireGame(gameID)
	logger := stderrLogger("runner-sim")

	cfg, err := runner.LoadConfig(gameID, flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	baseSeed := flagSeed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	pilot := runner.NewAutopilot(cfg)
	var best, total, crashed int
	for i := 0; i < flagSimRuns; i++ {
		e := runner.NewEngine(cfg, runner.Options{Variant: gameID, Seed: baseSeed + int64(i)})
		run := simulate(e, pilot, flagSimTicks)

		logger.Info("run finished", "run", i+1, "seed", run.Seed, "score", run.Score, "ticks", run.Ticks, "jumps", len(run.Jumps), "crashed", run.Over)
		total += run.Score
		best = max(best, run.Score)
		if run.Over {
			crashed++
		}

		if flagRecordDir != "" {
			path, err := replay.Save(expandHome(flagRecordDir), replay.New(gameID, flagDifficulty, run))
			if err != nil {
				logger.Error("could not save replay", "err", err)
				continue
			}
			logger.Debug("replay saved", "path", path)
		}
	}

	if flagSimRuns <= 0 {
		return
	}
	fmt.Printf("%s: %d runs, best %d, average %.1f, %d crashed, %d reached %d ticks\n",
		gameID, flagSimRuns, best, float64(total)/float64(flagSimRuns), crashed, flagSimRuns-crashed, flagSimTicks)
}
