package config

import "testing"

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"easy", "normal", "hard", "fixed", ""} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("brutal"); err == nil {
		t.Error("ParsePreset(brutal) should fail")
	}
}

func TestApplyRunnerPreset(t *testing.T) {
	base := DefaultRunnerConfig()

	easy := DefaultRunnerConfig()
	ApplyRunnerPreset(&easy, DifficultyEasy)
	if easy.Speed.Initial >= base.Speed.Initial {
		t.Errorf("easy should start slower: %v vs %v", easy.Speed.Initial, base.Speed.Initial)
	}

	hard := DefaultRunnerConfig()
	ApplyRunnerPreset(&hard, DifficultyHard)
	if hard.Speed.Increment <= base.Speed.Increment {
		t.Errorf("hard should ramp faster: %v vs %v", hard.Speed.Increment, base.Speed.Increment)
	}

	fixed := DefaultRunnerConfig()
	ApplyRunnerPreset(&fixed, DifficultyFixed)
	if fixed.Speed.Increment != 0 {
		t.Errorf("fixed should disable the ramp, increment = %v", fixed.Speed.Increment)
	}
	if !IsFixedPreset(DifficultyFixed) || IsFixedPreset(DifficultyHard) {
		t.Error("IsFixedPreset() mismatch")
	}

	untouched := DefaultRunnerConfig()
	ApplyRunnerPreset(&untouched, "")
	if untouched.Speed != base.Speed || untouched.Spawn != base.Spawn {
		t.Error("empty preset should not modify the config")
	}
}

func TestApplyRunnerPresetClampsChance(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Spawn.Chance = 0.95
	ApplyRunnerPreset(&cfg, DifficultyHard)
	if cfg.Spawn.Chance > 1 {
		t.Errorf("spawn chance must stay a probability, got %v", cfg.Spawn.Chance)
	}
}
