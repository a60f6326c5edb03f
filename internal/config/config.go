// Package config provides YAML-based runner configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// RunnerConfig contains all configuration for one runner variant.
// Distances are world units; velocities are world units per tick.
type RunnerConfig struct {
	Title     string            `yaml:"title"`
	World     RunnerWorld       `yaml:"world"`
	Physics   RunnerPhysics     `yaml:"physics"`
	Speed     RunnerSpeed       `yaml:"speed"`
	Spawn     RunnerSpawn       `yaml:"spawn"`
	Player    RunnerPlayer      `yaml:"player"`
	Obstacles []RunnerArchetype `yaml:"obstacles"`
	Loop      LoopConfig        `yaml:"loop"`
}

// RunnerWorld defines the simulated playfield.
type RunnerWorld struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"`
	// SidewalkOffset is drawn as a second ground layer (0 = none).
	SidewalkOffset float64 `yaml:"sidewalk_offset"`
}

// RunnerPhysics defines the actor's vertical motion.
type RunnerPhysics struct {
	Gravity         float64 `yaml:"gravity"`
	JumpImpulse     float64 `yaml:"jump_impulse"`      // Negative = up
	SecondJumpScale float64 `yaml:"second_jump_scale"` // Applied to JumpImpulse for the mid-air jump
	MaxJumps        int     `yaml:"max_jumps"`         // 1 or 2
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`    // 0 = uncapped
}

// RunnerSpeed defines the scroll speed ramp.
type RunnerSpeed struct {
	Initial   float64 `yaml:"initial"`
	Increment float64 `yaml:"increment"` // Added every running tick, uncapped
}

// RunnerSpawn defines the obstacle generator policy.
type RunnerSpawn struct {
	Chance float64 `yaml:"chance"`  // Per-tick spawn probability
	MinGap float64 `yaml:"min_gap"` // Minimum distance from the last obstacle to the right edge
}

// RunnerPlayer defines the actor's size and placement.
type RunnerPlayer struct {
	X         float64        `yaml:"x"`
	Width     float64        `yaml:"width"`
	Height    float64        `yaml:"height"`
	HitRegion core.HitRegion `yaml:"hit_region"`
}

// RunnerArchetype is one obstacle kind in a variant's closed set.
type RunnerArchetype struct {
	Name            string         `yaml:"name"`
	Glyph           string         `yaml:"glyph"`
	Color           string         `yaml:"color"` // core.ParseColor name, empty = default
	Width           float64        `yaml:"width"`
	Height          float64        `yaml:"height"`
	Offset          float64        `yaml:"offset"`           // Height of the bottom edge above the ground line
	SpeedMultiplier float64        `yaml:"speed_multiplier"` // Relative to the scroll speed
	Weight          float64        `yaml:"weight"`           // Relative spawn weight
	HitRegion       core.HitRegion `yaml:"hit_region"`
}

// LoopConfig defines lifecycle behaviour.
type LoopConfig struct {
	// AutoStartOnReset makes an explicit reset go straight to Running
	// instead of waiting in Idle for the first jump.
	AutoStartOnReset bool `yaml:"auto_start_on_reset"`
}

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid runner config")

// Validate checks the config for values the engine cannot run with.
func (c RunnerConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive", ErrInvalidConfig)
	case c.World.GroundY <= 0 || c.World.GroundY > c.World.Height:
		return fmt.Errorf("%w: ground_y must be within the world height", ErrInvalidConfig)
	case c.Physics.MaxJumps < 1 || c.Physics.MaxJumps > 2:
		return fmt.Errorf("%w: max_jumps must be 1 or 2, got %d", ErrInvalidConfig, c.Physics.MaxJumps)
	case c.Physics.Gravity <= 0 || c.Physics.JumpImpulse >= 0:
		return fmt.Errorf("%w: gravity must be positive and jump_impulse negative", ErrInvalidConfig)
	case c.Speed.Initial <= 0 || c.Speed.Increment < 0:
		return fmt.Errorf("%w: speed must be positive and non-decreasing", ErrInvalidConfig)
	case c.Spawn.Chance <= 0 || c.Spawn.Chance > 1:
		return fmt.Errorf("%w: spawn chance must be in (0, 1]", ErrInvalidConfig)
	case c.Spawn.MinGap < 0:
		return fmt.Errorf("%w: min_gap must not be negative", ErrInvalidConfig)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidConfig)
	case !c.Player.HitRegion.Valid():
		return fmt.Errorf("%w: player hit_region leaves no collidable area", ErrInvalidConfig)
	case len(c.Obstacles) == 0:
		return fmt.Errorf("%w: at least one obstacle archetype is required", ErrInvalidConfig)
	}

	for _, a := range c.Obstacles {
		if a.Name == "" {
			return fmt.Errorf("%w: obstacle archetype without name", ErrInvalidConfig)
		}
		if a.Width <= 0 || a.Height <= 0 {
			return fmt.Errorf("%w: obstacle %q size must be positive", ErrInvalidConfig, a.Name)
		}
		if a.SpeedMultiplier <= 0 || a.Weight <= 0 {
			return fmt.Errorf("%w: obstacle %q needs positive speed_multiplier and weight", ErrInvalidConfig, a.Name)
		}
		if _, ok := core.ParseColor(a.Color); !ok {
			return fmt.Errorf("%w: obstacle %q has unknown color %q", ErrInvalidConfig, a.Name, a.Color)
		}
		if !a.HitRegion.Valid() {
			return fmt.Errorf("%w: obstacle %q hit_region leaves no collidable area", ErrInvalidConfig, a.Name)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
