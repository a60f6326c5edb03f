package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/replay"
)

var (
	flagConfig     string
	flagDifficulty string
	flagRecordDir  string
)

var playCmd = &cobra.Command{
	Use:   "play <course>",
	Short: "Play a course",
	Long: `Start playing the specified course.

Controls:
  Space/Up/W - Jump (also starts a run and restarts after game over)
  P          - Pause
  Esc/B      - Pause during a run, leave when paused or over
  R          - Restart
  Ctrl+S     - Screenshot to ~/.runner/screenshots
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower start and ramp
  normal - Course defaults
  hard   - Faster start and ramp
  fixed  - No speed ramp

Examples:
  runner play runner
  runner play runner_double --difficulty hard
  runner play runner_city --difficulty fixed
  runner play runner --config ./my-runner.yaml
  runner play runner --record ./replays`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom course config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagRecordDir, "record", "", "Save a replay of every finished run into this directory")
}

// recorder saves a replay of each finished run into dir.
func recorder(dir, preset string, logger *log.Logger) func(registry.Game) {
	return func(g registry.Game) {
		rg, ok := g.(interface{ Run() runner.RunRecord })
		if !ok {
			return
		}
		rec := replay.New(g.ID(), preset, rg.Run())
		path, err := replay.Save(dir, rec)
		if err != nil {
			logger.Warn("could not save replay", "err", err)
			return
		}
		logger.Info("replay saved", "path", path, "score", rec.Score)
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]
	requireGame(gameID)

	logger, closeLog := fileLogger()
	defer closeLog()

	store, kv := openStores(logger)
	if store != nil {
		defer store.Close()
	}

	game, err := registry.Create(gameID, registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		Store:      kv,
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	opts := tui.ModelOptions{Store: store, Logger: logger}
	if flagRecordDir != "" {
		opts.OnRunOver = recorder(expandHome(flagRecordDir), flagDifficulty, logger)
	}

	if _, err := tui.Run(game, runtimeConfig(), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
