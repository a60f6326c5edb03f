package runner

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func TestWorldAdvanceWrapsByOneWidth(t *testing.T) {
	w := NewWorld(config.RunnerWorld{Width: 1024, Height: 400, GroundY: 350}, config.RunnerSpeed{Initial: 8})
	w.ScrollX = -1020

	w.Advance()
	if w.ScrollX != -4 {
		t.Errorf("ScrollX = %v, expected -4 (wrapped by exactly one width)", w.ScrollX)
	}
}

func TestWorldScrollStaysInRange(t *testing.T) {
	w := NewWorld(config.RunnerWorld{Width: 1024, Height: 400, GroundY: 350}, config.RunnerSpeed{Initial: 8, Increment: 0.5})

	for i := 0; i < 10000; i++ {
		w.Advance()
		if w.ScrollX > 0 || w.ScrollX <= -w.Width {
			t.Fatalf("tick %d: ScrollX = %v out of (-Width, 0]", i, w.ScrollX)
		}
	}
}

func TestWorldSpeedRampsWithoutCap(t *testing.T) {
	w := NewWorld(config.RunnerWorld{Width: 1024}, config.RunnerSpeed{Initial: 8, Increment: 0.003})

	for i := 0; i < 100000; i++ {
		w.Advance()
	}
	if expected := 8 + 100000*0.003; math.Abs(w.Speed-expected) > 1e-6 {
		t.Errorf("Speed = %v, expected %v", w.Speed, expected)
	}
}

func TestWorldFixedSpeed(t *testing.T) {
	w := NewWorld(config.RunnerWorld{Width: 1024}, config.RunnerSpeed{Initial: 8})
	for i := 0; i < 50; i++ {
		w.Advance()
	}
	if w.Speed != 8 {
		t.Errorf("Speed = %v, expected 8 with zero increment", w.Speed)
	}
}
