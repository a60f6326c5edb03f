package runner

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

func alwaysSpawnConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawn.Chance = 1
	cfg.Spawn.MinGap = 400
	return cfg
}

func TestGeneratorRejectsSmallGap(t *testing.T) {
	g := NewGenerator(1, alwaysSpawnConfig())
	active := []Obstacle{{X: 700, W: 26, SpeedMul: 1}}

	gap, _, _ := g.Gap(active)
	if gap != 324 {
		t.Fatalf("Gap() = %v, expected 324", gap)
	}
	if _, outcome := g.TrySpawn(active, 8); outcome != SpawnRejected {
		t.Errorf("TrySpawn() outcome = %v, expected SpawnRejected", outcome)
	}
}

func TestGeneratorPlacesAtRightEdge(t *testing.T) {
	g := NewGenerator(1, alwaysSpawnConfig())
	active := []Obstacle{{X: 600, W: 26, SpeedMul: 1}}

	o, outcome := g.TrySpawn(active, 8)
	if outcome != SpawnPlaced {
		t.Fatalf("TrySpawn() outcome = %v, expected SpawnPlaced", outcome)
	}
	if o.X != 1024 || o.Y != 350 {
		t.Errorf("spawned at (%v, %v), expected (1024, 350)", o.X, o.Y)
	}
	if o.ID != 1 {
		t.Errorf("first obstacle ID = %d, expected 1", o.ID)
	}
}

func TestGeneratorFailedRollSpawnsNothing(t *testing.T) {
	cfg := alwaysSpawnConfig()
	cfg.Spawn.Chance = 0
	g := NewGenerator(1, cfg)

	for i := 0; i < 100; i++ {
		if _, outcome := g.TrySpawn(nil, 8); outcome != SpawnSkipped {
			t.Fatalf("attempt %d: outcome = %v, expected SpawnSkipped", i, outcome)
		}
	}
}

func TestGeneratorRejectsFasterArchetypeThatWouldCatchUp(t *testing.T) {
	cfg := alwaysSpawnConfig()
	cfg.Obstacles = []config.RunnerArchetype{
		{Name: "scooter", Width: 50, Height: 44, SpeedMultiplier: 1.4, Weight: 1},
	}
	g := NewGenerator(1, cfg)

	slow := []Obstacle{{X: 600, W: 26, SpeedMul: 1}}
	if _, outcome := g.TrySpawn(slow, 8); outcome != SpawnRejected {
		t.Errorf("scooter behind slow obstacle: outcome = %v, expected SpawnRejected", outcome)
	}

	leaving := []Obstacle{{X: -20, W: 26, SpeedMul: 1}}
	if _, outcome := g.TrySpawn(leaving, 8); outcome != SpawnPlaced {
		t.Errorf("scooter behind leaving obstacle: outcome = %v, expected SpawnPlaced", outcome)
	}
}

func TestGeneratorWeightedPick(t *testing.T) {
	cfg := alwaysSpawnConfig()
	cfg.Obstacles = []config.RunnerArchetype{
		{Name: "a", Width: 10, Height: 10, SpeedMultiplier: 1, Weight: 1},
		{Name: "b", Width: 10, Height: 10, SpeedMultiplier: 1, Weight: 3},
	}
	g := NewGenerator(42, cfg)

	counts := map[string]int{}
	const n = 8000
	for i := 0; i < n; i++ {
		counts[g.pick().Name]++
	}
	ratio := float64(counts["a"]) / n
	if math.Abs(ratio-0.25) > 0.03 {
		t.Errorf("archetype a picked %.3f of the time, expected about 0.25", ratio)
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	g1 := NewGenerator(99, cfg)
	g2 := NewGenerator(99, cfg)

	for i := 0; i < 1000; i++ {
		o1, out1 := g1.TrySpawn(nil, 8)
		o2, out2 := g2.TrySpawn(nil, 8)
		if out1 != out2 || o1 != o2 {
			t.Fatalf("attempt %d diverged: %v/%+v vs %v/%+v", i, out1, o1, out2, o2)
		}
	}
}

func TestMoveObstaclesRemovesAndCounts(t *testing.T) {
	obstacles := []Obstacle{
		{ID: 1, X: -20, W: 26, SpeedMul: 1}, // 6 -> -2: leaves
		{ID: 2, X: 100, W: 26, SpeedMul: 1}, // stays
		{ID: 3, X: -30, W: 26, SpeedMul: 2}, // already past edge after move
		{ID: 4, X: -10, W: 26, SpeedMul: 1}, // 16 -> 8: stays
	}

	kept, passed := moveObstacles(obstacles, 8)
	if passed != 2 {
		t.Errorf("passed = %d, expected 2", passed)
	}
	if len(kept) != 2 || kept[0].ID != 2 || kept[1].ID != 4 {
		t.Fatalf("kept = %+v, expected IDs 2 and 4", kept)
	}
	if kept[0].X != 92 {
		t.Errorf("obstacle 2 X = %v, expected 92", kept[0].X)
	}
}

// Property: for every seed and every built-in variant, no two active
// obstacles are ever closer than the minimum gap.
func TestGeneratorMinGapProperty(t *testing.T) {
	for _, variant := range config.Variants() {
		cfg, err := config.LoadRunner(variant, "")
		if err != nil {
			t.Fatal(err)
		}
		// Spawn as often as allowed to stress the gap rule.
		cfg.Spawn.Chance = 0.5

		for seed := int64(1); seed <= 20; seed++ {
			g := NewGenerator(seed, cfg)
			w := NewWorld(cfg.World, cfg.Speed)
			var active []Obstacle

			for tick := 0; tick < 4000; tick++ {
				w.Advance()
				active, _ = moveObstacles(active, w.Speed)
				if o, outcome := g.TrySpawn(active, w.Speed); outcome == SpawnPlaced {
					active = append(active, o)
				}
				for i := range active {
					for j := i + 1; j < len(active); j++ {
						if d := math.Abs(active[i].X - active[j].X); d < cfg.Spawn.MinGap-1e-9 {
							t.Fatalf("%s seed %d tick %d: obstacles %d and %d only %.2f apart",
								variant, seed, tick, active[i].ID, active[j].ID, d)
						}
					}
				}
			}
		}
	}
}

func TestObstacleHitBox(t *testing.T) {
	o := Obstacle{X: 100, Y: 350, W: 40, H: 110, Hit: core.HitRegion{Left: 0.4, Right: 0.4}}
	hit := o.HitBox()
	expected := core.Box{X: 116, Y: 240, W: 8, H: 110}
	if math.Abs(hit.X-expected.X) > 1e-9 || math.Abs(hit.W-expected.W) > 1e-9 || hit.Y != expected.Y || hit.H != expected.H {
		t.Errorf("HitBox() = %+v, expected %+v", hit, expected)
	}
}
