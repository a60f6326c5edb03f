package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// Autopilot is a simple scripted player used by headless simulation.
// It jumps when the nearest obstacle ahead enters a reaction window sized
// from the variant's jump arc, and spends a second jump on obstacles it
// would otherwise land on.
type Autopilot struct {
	lead float64 // Ticks of look-ahead before an obstacle
}

// NewAutopilot derives the reaction window from the jump physics.
func NewAutopilot(cfg config.RunnerConfig) *Autopilot {
	// Ticks until the apex of a single jump.
	apex := math.Abs(cfg.Physics.JumpImpulse) / cfg.Physics.Gravity
	return &Autopilot{lead: apex * 0.5}
}

// Decide reports whether to jump on this tick.
func (a *Autopilot) Decide(s Snapshot) bool {
	o, dist, ok := nearestAhead(s)
	if !ok {
		return false
	}
	window := s.Speed * o.SpeedMul * a.lead

	if s.Grounded {
		return dist <= window
	}

	// Falling onto an obstacle with a jump left.
	if s.JumpCount < s.MaxJumps && s.VelY > 0 {
		hit := o.HitBox()
		return dist <= window && s.ActorHit.Bottom() > hit.Y
	}
	return false
}

// nearestAhead returns the closest obstacle whose hit box has not yet passed
// the actor, with the horizontal distance between them.
func nearestAhead(s Snapshot) (Obstacle, float64, bool) {
	var best Obstacle
	bestDist := math.Inf(1)
	for _, o := range s.Obstacles {
		hit := o.HitBox()
		if hit.Right() <= s.ActorHit.X {
			continue
		}
		d := hit.X - s.ActorHit.Right()
		if d < bestDist {
			best, bestDist = o, d
		}
	}
	if math.IsInf(bestDist, 1) {
		return Obstacle{}, 0, false
	}
	return best, bestDist, true
}
