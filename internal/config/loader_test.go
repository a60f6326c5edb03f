package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedVariantsParse(t *testing.T) {
	for _, v := range Variants() {
		t.Run(v, func(t *testing.T) {
			cfg, err := parseRunner(GetDefaultYAML(v))
			if err != nil {
				t.Fatalf("embedded %s.yaml does not parse: %v", v, err)
			}
			if cfg.Title == "" {
				t.Error("embedded config should set a title")
			}
		})
	}
}

func TestEmbeddedVariantShapes(t *testing.T) {
	classic, _ := parseRunner(GetDefaultYAML(VariantClassic))
	if classic.Physics.MaxJumps != 1 {
		t.Errorf("classic max_jumps = %d, expected 1", classic.Physics.MaxJumps)
	}

	double, _ := parseRunner(GetDefaultYAML(VariantDouble))
	if double.Physics.MaxJumps != 2 {
		t.Errorf("double max_jumps = %d, expected 2", double.Physics.MaxJumps)
	}
	if double.Physics.SecondJumpScale != 1.05 {
		t.Errorf("double second_jump_scale = %v, expected 1.05", double.Physics.SecondJumpScale)
	}

	city, _ := parseRunner(GetDefaultYAML(VariantCity))
	var onSidewalk, fast bool
	for _, a := range city.Obstacles {
		if a.Offset > 0 {
			onSidewalk = true
		}
		if a.SpeedMultiplier > 1 {
			fast = true
		}
	}
	if !onSidewalk || !fast {
		t.Error("city variant should have a sidewalk archetype and a fast archetype")
	}
	if city.Loop.AutoStartOnReset {
		t.Error("city variant should wait for input after reset")
	}
}

func TestDefaultRunnerConfigMatchesEmbeddedClassic(t *testing.T) {
	embedded, err := parseRunner(GetDefaultYAML(VariantClassic))
	if err != nil {
		t.Fatal(err)
	}
	def := DefaultRunnerConfig()

	if def.Physics != embedded.Physics {
		t.Errorf("physics differ: default %+v, embedded %+v", def.Physics, embedded.Physics)
	}
	if def.Spawn != embedded.Spawn || def.Speed != embedded.Speed {
		t.Error("spawn/speed of hardcoded default drifted from classic.yaml")
	}
	if len(def.Obstacles) != len(embedded.Obstacles) {
		t.Errorf("obstacle count differs: %d vs %d", len(def.Obstacles), len(embedded.Obstacles))
	}
}

func TestLoadRunnerUnknownVariant(t *testing.T) {
	_, err := LoadRunner("nope", "")
	if !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("LoadRunner(nope) error = %v, expected ErrUnknownVariant", err)
	}
}

func TestLoadRunnerCustomPathOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.yaml")
	data := []byte("spawn:\n  min_gap: 250\nphysics:\n  max_jumps: 2\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(VariantClassic, path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg.Spawn.MinGap != 250 {
		t.Errorf("min_gap = %v, expected override 250", cfg.Spawn.MinGap)
	}
	if cfg.Physics.MaxJumps != 2 {
		t.Errorf("max_jumps = %d, expected override 2", cfg.Physics.MaxJumps)
	}
	// Untouched fields come from the embedded classic config
	if cfg.Physics.Gravity != 1.5 || cfg.World.Width != 1024 {
		t.Errorf("non-overridden fields should keep defaults, got %+v", cfg.Physics)
	}
}

func TestLoadRunnerCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadRunner(VariantClassic, filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("physics:\n  max_jumps: 3\n"), 0o600)
	_, err := LoadRunner(VariantClassic, invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("max_jumps=3 error = %v, expected ErrInvalidConfig", err)
	}

	broken := filepath.Join(dir, "broken.yaml")
	os.WriteFile(broken, []byte("physics: [oops"), 0o600)
	if _, err := LoadRunner(VariantClassic, broken); err == nil {
		t.Error("malformed YAML should be an error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
	}{
		{"zero width", func(c *RunnerConfig) { c.World.Width = 0 }},
		{"ground below world", func(c *RunnerConfig) { c.World.GroundY = 500 }},
		{"upward gravity", func(c *RunnerConfig) { c.Physics.Gravity = -1 }},
		{"downward jump", func(c *RunnerConfig) { c.Physics.JumpImpulse = 5 }},
		{"no chance", func(c *RunnerConfig) { c.Spawn.Chance = 0 }},
		{"chance above one", func(c *RunnerConfig) { c.Spawn.Chance = 1.5 }},
		{"no archetypes", func(c *RunnerConfig) { c.Obstacles = nil }},
		{"player hit region empty", func(c *RunnerConfig) { c.Player.HitRegion.Left = 0.6; c.Player.HitRegion.Right = 0.5 }},
		{"obstacle zero weight", func(c *RunnerConfig) { c.Obstacles[0].Weight = 0 }},
	}

	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}
