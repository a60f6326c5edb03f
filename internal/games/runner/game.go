// Package runner implements the endless-runner engine and its variants.
// The actor runs in place while obstacles scroll in from the right; the
// player jumps over them, and the speed ramps up every tick until a hit.
package runner

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// Variant IDs as registered with the registry.
const (
	IDClassic = "runner"
	IDDouble  = "runner_double"
	IDCity    = "runner_city"
)

var configVariants = map[string]string{
	IDClassic: config.VariantClassic,
	IDDouble:  config.VariantDouble,
	IDCity:    config.VariantCity,
}

// LoadConfig resolves the config of a registered variant ID, applying the
// difficulty preset if one is named.
func LoadConfig(id, customPath, difficulty string) (config.RunnerConfig, error) {
	variant, ok := configVariants[id]
	if !ok {
		return config.RunnerConfig{}, fmt.Errorf("%w %q", config.ErrUnknownVariant, id)
	}

	cfg, err := config.LoadRunner(variant, customPath)
	if err != nil {
		return cfg, err
	}

	if difficulty != "" {
		preset, err := config.ParsePreset(difficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyRunnerPreset(&cfg, preset)
	}
	return cfg, nil
}

// Game adapts the engine to the platform: it owns the driver that the host
// scheduler ticks and projects snapshots onto the screen.
type Game struct {
	id     string
	cfg    config.RunnerConfig
	opts   registry.Options
	logger *log.Logger
	gate   func() bool
	score  *ScoreKeeper
	driver *Driver
}

// NewGame creates a variant game. A config that fails to load falls back to
// the embedded defaults with a warning.
func NewGame(id string, opts registry.Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = discardLogger()
	}

	cfg, err := LoadConfig(id, opts.ConfigPath, opts.Difficulty)
	if err != nil {
		logger.Warn("using default config", "game", id, "err", err)
		if cfg.Validate() != nil {
			cfg = config.DefaultRunnerConfig()
		}
	}

	g := &Game{
		id:     id,
		cfg:    cfg,
		opts:   opts,
		logger: logger,
		score:  NewScoreKeeper(opts.Store, HighScoreKey(id), logger),
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this variant.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this variant.
func (g *Game) Title() string {
	if g.cfg.Title == "" {
		return g.id
	}
	return g.cfg.Title
}

// Reset starts a new session: a fresh engine seeded from the runtime config,
// waiting in Idle for the first jump. The score keeper carries over, so the
// store is read once per game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if g.driver != nil {
		g.driver.Stop()
	}
	e := NewEngine(g.cfg, Options{
		Variant: g.id,
		Seed:    rc.Seed,
		Score:   g.score,
		Logger:  g.logger,
	})
	g.driver = NewDriver(e)
	g.driver.SetReadyGate(g.gate)
}

// SetReadyGate installs the predicate Start waits for.
func (g *Game) SetReadyGate(fn func() bool) {
	g.gate = fn
	g.driver.SetReadyGate(fn)
}

// Start begins ticking; an Idle engine moves to Running.
func (g *Game) Start() (core.Token, bool) {
	return g.driver.Start()
}

// Tick advances one frame of the live chain.
func (g *Game) Tick(tok core.Token) core.StepResult {
	cont := g.driver.Tick(tok)
	return core.StepResult{State: g.State(), Continue: cont}
}

// Input applies a player action.
func (g *Game) Input(a core.Action) (core.Token, bool) {
	return g.driver.Input(a)
}

// Stop cancels the outstanding tick.
func (g *Game) Stop() {
	g.driver.Stop()
}

// Step applies the frame's actions and advances one tick without the
// scheduler. Restart honours the auto-start flag.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	e := g.driver.Engine()
	if in.Has(core.ActionRestart) {
		e.Reset(g.cfg.Loop.AutoStartOnReset)
	}
	if in.Has(core.ActionPause) {
		e.TogglePause()
	}
	if in.Has(core.ActionJump) {
		e.Jump()
	}
	e.Tick()

	st := g.State()
	return core.StepResult{State: st, Continue: st.Phase == core.PhaseRunning && !st.Paused}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.driver.Engine().State()
}

// Snapshot returns the current engine snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.driver.Engine().Snapshot()
}

// Run returns the record of the current run.
func (g *Game) Run() RunRecord {
	return g.driver.Engine().Run()
}

// Config returns the resolved variant config.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

func init() {
	for id := range configVariants {
		id := id
		registry.Register(id, func(opts registry.Options) registry.Game {
			return NewGame(id, opts)
		})
	}
}
