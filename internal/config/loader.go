package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrUnknownVariant is returned when no embedded config exists for a variant.
var ErrUnknownVariant = errors.New("config: unknown variant")

// LoadRunner loads the configuration of a runner variant.
// Search order: customPath -> ~/.runner/configs/<variant>.yaml -> ./configs/<variant>.yaml -> embedded default
//
// A custom path that cannot be read or parsed is an error; the other
// locations are optional and silently skipped when unusable.
func LoadRunner(variant, customPath string) (RunnerConfig, error) {
	embedded := GetDefaultYAML(variant)
	if embedded == nil {
		return RunnerConfig{}, fmt.Errorf("%w %q", ErrUnknownVariant, variant)
	}

	// The variant's embedded YAML is the base; files only override what they set.
	base, err := parseRunner(embedded)
	if err != nil {
		base = DefaultRunnerConfig()
	}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := overlay(base, data)
		if err != nil {
			return base, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return base, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := variant + ".yaml"
	candidates := []string{
		userConfigPath(filename),
		filepath.Join("configs", filename),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := overlay(base, data)
		if err != nil || cfg.Validate() != nil {
			continue
		}
		return cfg, nil
	}

	return base, nil
}

// parseRunner decodes a complete runner config.
func parseRunner(data []byte) (RunnerConfig, error) {
	var cfg RunnerConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// overlay decodes data on top of a copy of base.
func overlay(base RunnerConfig, data []byte) (RunnerConfig, error) {
	cfg := base
	// Obstacles replace rather than merge element-wise.
	cfg.Obstacles = append([]RunnerArchetype(nil), base.Obstacles...)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}
