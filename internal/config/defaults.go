package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Variant names accepted by LoadRunner. They double as the YAML file names.
const (
	VariantClassic = "classic"
	VariantDouble  = "double"
	VariantCity    = "city"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/double.yaml
var defaultDoubleYAML []byte

//go:embed defaults/city.yaml
var defaultCityYAML []byte

// Variants returns the built-in variant names.
func Variants() []string {
	return []string{VariantClassic, VariantDouble, VariantCity}
}

// DefaultRunnerConfig returns the hardcoded classic configuration.
// It is the last fallback when even the embedded YAML cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Title: "Classic Runner",
		World: RunnerWorld{
			Width:   1024,
			Height:  400,
			GroundY: 350,
		},
		Physics: RunnerPhysics{
			Gravity:         1.5,
			JumpImpulse:     -22,
			SecondJumpScale: 1.0,
			MaxJumps:        1,
		},
		Speed: RunnerSpeed{
			Initial:   8,
			Increment: 0.003,
		},
		Spawn: RunnerSpawn{
			Chance: 0.02,
			MinGap: 400,
		},
		Player: RunnerPlayer{
			X:         80,
			Width:     44,
			Height:    48,
			HitRegion: core.HitRegion{Left: 0.2, Right: 0.2, Top: 0.25, Bottom: 0.05},
		},
		Obstacles: []RunnerArchetype{
			{
				Name:            "small",
				Glyph:           "▓",
				Color:           "green",
				Width:           26,
				Height:          50,
				SpeedMultiplier: 1,
				Weight:          2,
				HitRegion:       core.HitRegion{Left: 0.3, Right: 0.3, Top: 0.1},
			},
			{
				Name:            "large",
				Glyph:           "█",
				Color:           "bright_green",
				Width:           50,
				Height:          70,
				SpeedMultiplier: 1,
				Weight:          1,
				HitRegion:       core.HitRegion{Left: 0.3, Right: 0.3, Top: 0.1},
			},
		},
		Loop: LoopConfig{
			AutoStartOnReset: true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case VariantClassic:
		return defaultClassicYAML
	case VariantDouble:
		return defaultDoubleYAML
	case VariantCity:
		return defaultCityYAML
	default:
		return nil
	}
}
