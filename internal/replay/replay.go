// Package replay stores runs as their inputs (seed plus jump ticks) and
// re-simulates them. The engine is deterministic, so a recording is enough
// to reproduce every frame of a run.
package replay

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

// FormatVersion is bumped whenever the recording layout changes.
const FormatVersion = 1

// FileExt is the extension of recording files.
const FileExt = ".runrec"

// ErrMismatch is returned when a re-simulated run does not reproduce the
// recorded result.
var ErrMismatch = errors.New("replay: re-simulated run does not match recording")

// Recording is one run's inputs and outcome.
type Recording struct {
	Version   int       `msgpack:"v"`
	ID        string    `msgpack:"id"`
	Variant   string    `msgpack:"variant"` // Registered game ID
	Preset    string    `msgpack:"preset,omitempty"`
	Seed      int64     `msgpack:"seed"`
	Jumps     []int     `msgpack:"jumps"`
	Score     int       `msgpack:"score"`
	Ticks     int       `msgpack:"ticks"`
	CreatedAt time.Time `msgpack:"created_at"`
}

// New builds a recording from a finished (or abandoned) run.
func New(variant, preset string, run runner.RunRecord) Recording {
	return Recording{
		Version:   FormatVersion,
		ID:        uuid.NewString(),
		Variant:   variant,
		Preset:    preset,
		Seed:      run.Seed,
		Jumps:     append([]int(nil), run.Jumps...),
		Score:     run.Score,
		Ticks:     run.Ticks,
		CreatedAt: time.Now().UTC(),
	}
}

// Encode serializes a recording.
func Encode(rec Recording) ([]byte, error) {
	data, err := msgpack.Marshal(&rec)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot encode recording: %w", err)
	}
	return data, nil
}

// Decode parses a recording and checks its version.
func Decode(data []byte) (Recording, error) {
	var rec Recording
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return Recording{}, fmt.Errorf("replay: cannot decode recording: %w", err)
	}
	if rec.Version != FormatVersion {
		return Recording{}, fmt.Errorf("replay: unsupported recording version %d", rec.Version)
	}
	return rec, nil
}

// Save writes a recording into dir and returns the file path.
func Save(dir string, rec Recording) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("replay: cannot create directory %s: %w", dir, err)
	}
	data, err := Encode(rec)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_%s_%s%s", rec.Variant, rec.CreatedAt.Format("20060102_150405"), shortID(rec.ID), FileExt)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("replay: cannot write %s: %w", path, err)
	}
	return path, nil
}

// Load reads a recording file.
func Load(path string) (Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Recording{}, fmt.Errorf("replay: cannot read %s: %w", path, err)
	}
	return Decode(data)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Play re-simulates a recording with cfg, calling observe (if non-nil) with
// the snapshot after every tick. It returns the replayed run.
func Play(rec Recording, cfg config.RunnerConfig, observe func(runner.Snapshot)) runner.RunRecord {
	e := runner.NewEngine(cfg, runner.Options{Variant: rec.Variant, Seed: rec.Seed})
	e.Start()

	next := 0
	for e.Phase() == core.PhaseRunning && e.Ticks() < rec.Ticks {
		if next < len(rec.Jumps) && rec.Jumps[next] == e.Ticks() {
			e.Jump()
			next++
		}
		e.Tick()
		if observe != nil {
			observe(e.Snapshot())
		}
	}
	return e.Run()
}

// Verify re-simulates a recording and compares the outcome.
// A differing score or length yields an error wrapping ErrMismatch.
func Verify(rec Recording, cfg config.RunnerConfig) (runner.RunRecord, error) {
	got := Play(rec, cfg, nil)
	if got.Score != rec.Score || got.Ticks != rec.Ticks {
		return got, fmt.Errorf("%w: score %d in %d ticks, recorded %d in %d ticks",
			ErrMismatch, got.Score, got.Ticks, rec.Score, rec.Ticks)
	}
	return got, nil
}
