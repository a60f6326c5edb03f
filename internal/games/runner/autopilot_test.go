package runner

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestAutopilotDecide(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	p := NewAutopilot(cfg)
	e := NewEngine(quietConfig(), Options{Seed: 1})
	base := e.Snapshot()
	base.Speed = 8

	at := func(x float64) Snapshot {
		s := base
		s.Obstacles = []Obstacle{{X: x, Y: 350, W: 26, H: 50, SpeedMul: 1, Hit: core.HitRegion{Left: 0.3, Right: 0.3}}}
		return s
	}

	tests := []struct {
		name     string
		snap     Snapshot
		expected bool
	}{
		{"nothing on screen", base, false},
		{"obstacle far ahead", at(600), false},
		{"obstacle inside reaction window", at(130), true},
		{"obstacle already behind", at(10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Decide(tt.snap); got != tt.expected {
				t.Errorf("Decide() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestAutopilotClearsObstacles(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	p := NewAutopilot(cfg)

	total := 0
	for seed := int64(1); seed <= 5; seed++ {
		e := NewEngine(cfg, Options{Seed: seed})
		e.Start()
		for e.Phase() == core.PhaseRunning && e.Ticks() < 5000 {
			if p.Decide(e.Snapshot()) {
				e.Jump()
			}
			e.Tick()
		}
		total += e.Snapshot().Score
	}
	if total == 0 {
		t.Error("autopilot never cleared an obstacle in five runs")
	}
}
