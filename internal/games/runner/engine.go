package runner

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Options configures an Engine beyond its variant config.
type Options struct {
	Variant string         // Variant ID, used for the high score key
	Seed    int64          // Session seed; 0 picks one from the clock
	Store   HighScoreStore // nil keeps high scores for the session only
	Score   *ScoreKeeper   // Carried over from a previous engine; nil builds one from Store
	Logger  *log.Logger    // nil discards engine logs
}

// RunRecord is the input log of one run: its generator seed and the ticks
// at which jumps were consumed. Replaying the jumps against the same seed and
// config reproduces the run exactly.
type RunRecord struct {
	Seed  int64
	Jumps []int
	Score int
	Ticks int
	Over  bool
}

// Engine owns all state of a runner session. It is not safe for concurrent
// use; the host delivers input and ticks from a single goroutine.
type Engine struct {
	cfg     config.RunnerConfig
	variant string
	logger  *log.Logger

	phase     core.Phase
	paused    bool
	actor     Actor
	obstacles []Obstacle
	world     World
	gen       *Generator
	score     *ScoreKeeper
	newHigh   bool

	tick         int // Simulated ticks in the current run
	pendingJumps int // Jumps queued for the next ticks, at most MaxJumps

	seeds   *rand.Rand // Seed sequence for restarts
	started bool       // First run seed already used
	seed    int64      // Session seed
	run     RunRecord
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

// NewEngine creates an engine in the Idle phase.
func NewEngine(cfg config.RunnerConfig, opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = discardLogger()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	score := opts.Score
	if score == nil {
		score = NewScoreKeeper(opts.Store, HighScoreKey(opts.Variant), logger)
	}

	e := &Engine{
		cfg:     cfg,
		variant: opts.Variant,
		logger:  logger,
		seed:    seed,
		seeds:   rand.New(rand.NewSource(seed)),
		actor:   NewActor(cfg.Player, cfg.Physics.MaxJumps, cfg.World.GroundY),
		score:   score,
	}
	e.gen = NewGenerator(0, cfg)
	e.Reset(false)
	return e
}

// nextSeed returns the session seed for the first run and draws from the
// seed sequence afterwards.
func (e *Engine) nextSeed() int64 {
	if !e.started {
		e.started = true
		return e.seed
	}
	return e.seeds.Int63()
}

// Reset discards the current run and prepares a new one. With autoStart the
// engine goes straight to Running, otherwise it waits Idle for a jump.
func (e *Engine) Reset(autoStart bool) {
	runSeed := e.nextSeed()

	e.actor.Place(e.cfg.World.GroundY)
	e.obstacles = e.obstacles[:0]
	e.world = NewWorld(e.cfg.World, e.cfg.Speed)
	e.gen.Reset(runSeed)
	e.score.NewRun()
	e.newHigh = false
	e.tick = 0
	e.pendingJumps = 0
	e.paused = false
	e.run = RunRecord{Seed: runSeed}

	e.phase = core.PhaseIdle
	if autoStart {
		e.begin()
	}
}

func (e *Engine) begin() {
	e.phase = core.PhaseRunning
	e.logger.Debug("run started", "variant", e.variant, "seed", e.run.Seed)
}

// Start moves an Idle engine to Running without jumping.
// Returns false if the engine was not Idle.
func (e *Engine) Start() bool {
	if e.phase != core.PhaseIdle {
		return false
	}
	e.begin()
	return true
}

// Jump queues a jump. Each tick consumes one queued jump, so presses that
// land between two ticks are not merged. Jumps while paused are dropped.
func (e *Engine) Jump() {
	if e.paused {
		return
	}
	e.pendingJumps = min(e.pendingJumps+1, max(e.cfg.Physics.MaxJumps, 1))
}

// TogglePause pauses or resumes a running game. Returns the new paused state.
func (e *Engine) TogglePause() bool {
	if e.phase != core.PhaseRunning {
		return e.paused
	}
	e.paused = !e.paused
	e.pendingJumps = 0
	return e.paused
}

// Tick advances the engine by one fixed step.
func (e *Engine) Tick() {
	if e.pendingJumps > 0 {
		e.pendingJumps--
		switch e.phase {
		case core.PhaseIdle:
			e.begin()
			e.jump()
		case core.PhaseOver:
			e.Reset(true)
			return
		case core.PhaseRunning:
			e.jump()
		}
	}

	if e.phase != core.PhaseRunning || e.paused {
		return
	}

	e.actor.Integrate(e.cfg.Physics, e.cfg.World.GroundY)

	// obstacles move at the speed the background scrolled at this tick
	speed := e.world.Speed
	e.world.Advance()
	var passed int
	e.obstacles, passed = moveObstacles(e.obstacles, speed)
	e.score.Passed(passed)

	if o, outcome := e.gen.TrySpawn(e.obstacles, e.world.Speed); outcome == SpawnPlaced {
		e.obstacles = append(e.obstacles, o)
	}

	e.tick++
	e.run.Ticks = e.tick
	e.run.Score = e.score.Score()

	if idx, hit := Collide(e.actor.HitBox(), e.obstacles); hit {
		e.over(idx)
	}
}

func (e *Engine) jump() {
	if e.actor.Jump(e.cfg.Physics) {
		e.run.Jumps = append(e.run.Jumps, e.tick)
	}
}

func (e *Engine) over(idx int) {
	e.phase = core.PhaseOver
	e.run.Over = true
	e.newHigh = e.score.Finish()
	e.logger.Info("run over",
		"variant", e.variant,
		"score", e.score.Score(),
		"high", e.score.High(),
		"ticks", e.tick,
		"hit", e.obstacles[idx].Kind,
	)
	if e.newHigh {
		e.logger.Info("new high score", "variant", e.variant, "score", e.score.High())
	}
}

// Phase returns the current run phase.
func (e *Engine) Phase() core.Phase {
	return e.phase
}

// Paused reports whether a running game is paused.
func (e *Engine) Paused() bool {
	return e.paused
}

// State returns the platform-facing summary of the run.
func (e *Engine) State() core.GameState {
	return core.GameState{
		Score:     e.score.Score(),
		HighScore: e.score.High(),
		Phase:     e.phase,
		Paused:    e.paused,
	}
}

// Ticks returns the number of simulated ticks in the current run.
func (e *Engine) Ticks() int {
	return e.tick
}

// Run returns a copy of the current run's record.
func (e *Engine) Run() RunRecord {
	r := e.run
	r.Jumps = append([]int(nil), e.run.Jumps...)
	return r
}

// Config returns the variant config the engine was built with.
func (e *Engine) Config() config.RunnerConfig {
	return e.cfg
}

// Variant returns the variant ID.
func (e *Engine) Variant() string {
	return e.variant
}

// Persistent reports whether high scores reach a store.
func (e *Engine) Persistent() bool {
	return e.score.Persistent()
}
