package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Pose describes how the actor should be drawn.
type Pose int

const (
	PoseRunning Pose = iota
	PoseJumping
	PoseDoubleJump
	PoseHit
)

// Snapshot is the read-only view of a run handed to the presentation
// layer, the autopilot and replay tooling. Mutating it has no effect on the
// engine.
type Snapshot struct {
	Phase     core.Phase
	Paused    bool
	Tick      int
	Actor     core.Box // Full sprite bounds
	ActorHit  core.Box
	Pose      Pose
	Grounded  bool
	JumpCount int
	MaxJumps  int
	VelY      float64
	Obstacles []Obstacle
	ScrollX   float64
	Speed     float64
	Score     int
	HighScore int
	NewHigh   bool // The run just ended with a new high score
	WorldW    float64
	WorldH    float64
	GroundY   float64
	Sidewalk  float64 // Sidewalk layer height above ground (0 = none)
}

// Snapshot returns a copy of the current run state.
func (e *Engine) Snapshot() Snapshot {
	pose := PoseRunning
	switch {
	case e.phase == core.PhaseOver:
		pose = PoseHit
	case e.actor.JumpCount >= 2:
		pose = PoseDoubleJump
	case !e.actor.Grounded:
		pose = PoseJumping
	}

	return Snapshot{
		Phase:     e.phase,
		Paused:    e.paused,
		Tick:      e.tick,
		Actor:     e.actor.Bounds(),
		ActorHit:  e.actor.HitBox(),
		Pose:      pose,
		Grounded:  e.actor.Grounded,
		JumpCount: e.actor.JumpCount,
		MaxJumps:  e.actor.MaxJumps,
		VelY:      e.actor.VelY,
		Obstacles: append([]Obstacle(nil), e.obstacles...),
		ScrollX:   e.world.ScrollX,
		Speed:     e.world.Speed,
		Score:     e.score.Score(),
		HighScore: e.score.High(),
		NewHigh:   e.newHigh,
		WorldW:    e.cfg.World.Width,
		WorldH:    e.cfg.World.Height,
		GroundY:   e.cfg.World.GroundY,
		Sidewalk:  e.cfg.World.SidewalkOffset,
	}
}
