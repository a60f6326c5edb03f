package replay

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

// recordRun plays an autopilot run and returns its record.
func recordRun(t *testing.T, cfg config.RunnerConfig, seed int64) runner.RunRecord {
	t.Helper()
	e := runner.NewEngine(cfg, runner.Options{Seed: seed})
	p := runner.NewAutopilot(cfg)
	e.Start()
	for e.Phase() == core.PhaseRunning && e.Ticks() < 10000 {
		if p.Decide(e.Snapshot()) {
			e.Jump()
		}
		e.Tick()
	}
	return e.Run()
}

func TestEncodeDecode(t *testing.T) {
	rec := New("runner_double", "hard", runner.RunRecord{Seed: 42, Jumps: []int{3, 9}, Score: 4, Ticks: 700})

	data, err := Encode(rec)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != rec.ID || got.Seed != 42 || got.Preset != "hard" || len(got.Jumps) != 2 || got.Jumps[1] != 9 {
		t.Errorf("Decode() = %+v, expected %+v", got, rec)
	}
	if !got.CreatedAt.Equal(rec.CreatedAt) {
		t.Errorf("CreatedAt = %v, expected %v", got.CreatedAt, rec.CreatedAt)
	}
}

func TestDecodeRejectsOtherVersions(t *testing.T) {
	rec := New("runner", "", runner.RunRecord{Seed: 1})
	rec.Version = FormatVersion + 1
	data, _ := Encode(rec)

	if _, err := Decode(data); err == nil {
		t.Error("Decode() accepted a future version")
	}
	if _, err := Decode([]byte("not msgpack")); err == nil {
		t.Error("Decode() accepted garbage")
	}
}

func TestSaveLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "replays")
	rec := New("runner", "", runner.RunRecord{Seed: 7, Jumps: []int{1}, Score: 0, Ticks: 50})

	path, err := Save(dir, rec)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(path, FileExt) || !strings.HasPrefix(filepath.Base(path), "runner_") {
		t.Errorf("Save() path = %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != rec.ID || got.Ticks != 50 {
		t.Errorf("Load() = %+v", got)
	}
}

func TestVerifyReproducesRecordedRun(t *testing.T) {
	for _, variant := range config.Variants() {
		cfg, err := config.LoadRunner(variant, "")
		if err != nil {
			t.Fatal(err)
		}
		run := recordRun(t, cfg, 31337)
		rec := New(variant, "", run)

		data, _ := Encode(rec)
		decoded, err := Decode(data)
		if err != nil {
			t.Fatal(err)
		}

		got, err := Verify(decoded, cfg)
		if err != nil {
			t.Errorf("%s: Verify() error = %v", variant, err)
		}
		if got.Score != run.Score || got.Over != run.Over {
			t.Errorf("%s: replay = %+v, recorded %+v", variant, got, run)
		}
	}
}

func TestVerifyDetectsTampering(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	rec := New("runner", "", recordRun(t, cfg, 5))
	rec.Score += 3

	if _, err := Verify(rec, cfg); !errors.Is(err, ErrMismatch) {
		t.Errorf("Verify() error = %v, expected ErrMismatch", err)
	}
}

func TestPlayObservesEveryTick(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	run := recordRun(t, cfg, 9)
	rec := New("runner", "", run)

	frames := 0
	Play(rec, cfg, func(s runner.Snapshot) {
		frames++
		if s.Tick != frames {
			t.Fatalf("frame %d carried tick %d", frames, s.Tick)
		}
	})
	if frames != run.Ticks {
		t.Errorf("observed %d frames, expected %d", frames, run.Ticks)
	}
}
