package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Actor is the player-controlled runner.
// Y is the feet line in world units (y grows downward), so the actor is on
// the ground when Y == groundY and Y never exceeds it.
type Actor struct {
	X, Y      float64
	VelY      float64
	W, H      float64
	Grounded  bool
	JumpCount int // Jumps consumed since the last landing
	MaxJumps  int // 1 for single-jump variants, 2 for double-jump
	Hit       core.HitRegion
}

// NewActor creates an actor standing on the ground line.
func NewActor(p config.RunnerPlayer, maxJumps int, groundY float64) Actor {
	a := Actor{
		X:        p.X,
		W:        p.Width,
		H:        p.Height,
		MaxJumps: maxJumps,
		Hit:      p.HitRegion,
	}
	a.Place(groundY)
	return a
}

// Place puts the actor back on the ground at rest.
func (a *Actor) Place(groundY float64) {
	a.Y = groundY
	a.VelY = 0
	a.Grounded = true
	a.JumpCount = 0
}

// Jump applies the jump impulse if the actor has a jump left.
// The mid-air jump of double-jump variants uses the scaled impulse.
// Returns false (and leaves velocity untouched) when no jump is available.
func (a *Actor) Jump(phys config.RunnerPhysics) bool {
	switch {
	case a.Grounded:
		a.VelY = phys.JumpImpulse
		a.JumpCount = 1
	case a.MaxJumps >= 2 && a.JumpCount == 1:
		scale := phys.SecondJumpScale
		if scale == 0 {
			scale = 1
		}
		a.VelY = phys.JumpImpulse * scale
		a.JumpCount = 2
	default:
		return false
	}
	a.Grounded = false
	return true
}

// Integrate advances vertical motion by one tick and clamps to the ground.
// Gravity applies every tick, grounded or not; the clamp absorbs it.
func (a *Actor) Integrate(phys config.RunnerPhysics, groundY float64) {
	a.VelY += phys.Gravity
	if phys.MaxFallSpeed > 0 && a.VelY > phys.MaxFallSpeed {
		a.VelY = phys.MaxFallSpeed
	}
	a.Y += a.VelY

	if a.Y >= groundY {
		a.Y = groundY
		a.VelY = 0
		a.Grounded = true
		a.JumpCount = 0
		return
	}
	a.Grounded = false
}

// Bounds returns the full sprite box.
func (a Actor) Bounds() core.Box {
	return core.Box{X: a.X, Y: a.Y - a.H, W: a.W, H: a.H}
}

// HitBox returns the collidable part of the sprite.
func (a Actor) HitBox() core.Box {
	return a.Bounds().Inset(a.Hit)
}
