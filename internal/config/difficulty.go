package config

import "fmt"

// presetScale describes how a preset scales the speed ramp.
type presetScale struct {
	initial   float64 // Multiplier for Speed.Initial
	increment float64 // Multiplier for Speed.Increment
	chance    float64 // Multiplier for Spawn.Chance
}

var presetScales = map[DifficultyPreset]presetScale{
	DifficultyEasy:   {initial: 0.8, increment: 0.5, chance: 0.8},
	DifficultyNormal: {initial: 1.0, increment: 1.0, chance: 1.0},
	DifficultyHard:   {initial: 1.25, increment: 1.5, chance: 1.2},
	DifficultyFixed:  {initial: 1.0, increment: 0.0, chance: 1.0},
}

// ParsePreset converts a CLI string into a preset.
// The empty string means "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return "", nil
	}
	p := DifficultyPreset(s)
	if _, ok := presetScales[p]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
	return p, nil
}

// IsFixedPreset returns true if the preset disables the speed ramp.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
// Unknown or empty presets leave the config untouched.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	scale, ok := presetScales[preset]
	if !ok {
		return
	}

	cfg.Speed.Initial *= scale.initial
	cfg.Speed.Increment *= scale.increment

	chance := cfg.Spawn.Chance * scale.chance
	if chance > 1 {
		chance = 1
	}
	cfg.Spawn.Chance = chance
}
