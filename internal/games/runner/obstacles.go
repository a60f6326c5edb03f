package runner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Obstacle is an active hazard scrolling toward the actor.
// X is the left edge and Y the bottom edge, both in world units.
type Obstacle struct {
	ID       int
	Kind     string
	Glyph    rune
	Color    core.Color
	X, Y     float64
	W, H     float64
	SpeedMul float64
	Hit      core.HitRegion
}

// Bounds returns the full sprite box.
func (o Obstacle) Bounds() core.Box {
	return core.Box{X: o.X, Y: o.Y - o.H, W: o.W, H: o.H}
}

// HitBox returns the collidable part of the sprite.
func (o Obstacle) HitBox() core.Box {
	return o.Bounds().Inset(o.Hit)
}

// SpawnOutcome records what the generator did on one tick.
type SpawnOutcome int

const (
	SpawnSkipped  SpawnOutcome = iota // Probability roll failed
	SpawnRejected                     // Roll passed, gap too small
	SpawnPlaced
)

// Generator procedurally creates obstacles at the right edge of the world.
type Generator struct {
	rng        *rand.Rand
	spawn      config.RunnerSpawn
	archetypes []config.RunnerArchetype
	thresholds []float64 // Cumulative weights, same order as archetypes
	worldW     float64
	groundY    float64
	increment  float64 // Per-tick speed ramp
	nextID     int
}

// NewGenerator creates a generator with its own seeded RNG.
func NewGenerator(seed int64, cfg config.RunnerConfig) *Generator {
	g := &Generator{
		spawn:      cfg.Spawn,
		archetypes: cfg.Obstacles,
		worldW:     cfg.World.Width,
		groundY:    cfg.World.GroundY,
		increment:  cfg.Speed.Increment,
	}

	total := 0.0
	g.thresholds = make([]float64, len(cfg.Obstacles))
	for i, a := range cfg.Obstacles {
		total += a.Weight
		g.thresholds[i] = total
	}

	g.Reset(seed)
	return g
}

// Reset re-seeds the RNG and restarts obstacle IDs.
func (g *Generator) Reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.nextID = 1
}

// Gap returns the distance between the right edge and the right-most active
// obstacle. ok is false when nothing is on screen.
func (g *Generator) Gap(active []Obstacle) (gap float64, last *Obstacle, ok bool) {
	for i := range active {
		if last == nil || active[i].X > last.X {
			last = &active[i]
		}
	}
	if last == nil {
		return 0, nil, false
	}
	return g.worldW - last.X, last, true
}

// TrySpawn runs one spawn attempt at the given scroll speed. The probability
// roll and the gap check are independent: a passing roll with too small a gap
// yields nothing and nothing is carried over to the next tick.
func (g *Generator) TrySpawn(active []Obstacle, speed float64) (Obstacle, SpawnOutcome) {
	if g.rng.Float64() >= g.spawn.Chance {
		return Obstacle{}, SpawnSkipped
	}

	gap, _, ok := g.Gap(active)
	if ok && gap < g.spawn.MinGap {
		return Obstacle{}, SpawnRejected
	}

	a := g.pick()

	// A faster archetype closes on slower obstacles while both scroll.
	// Reject it if any gap would shrink below the minimum before the slower
	// obstacle leaves the screen.
	for i := range active {
		o := &active[i]
		if a.SpeedMultiplier <= o.SpeedMul {
			continue
		}
		closing := (a.SpeedMultiplier - o.SpeedMul) / o.SpeedMul * g.travel(o, speed)
		if g.worldW-o.X-closing < g.spawn.MinGap {
			return Obstacle{}, SpawnRejected
		}
	}

	o := Obstacle{
		ID:       g.nextID,
		Kind:     a.Name,
		Glyph:    glyphOf(a.Glyph),
		Color:    colorOf(a.Color),
		X:        g.worldW,
		Y:        g.groundY - a.Offset,
		W:        a.Width,
		H:        a.Height,
		SpeedMul: a.SpeedMultiplier,
		Hit:      a.HitRegion,
	}
	g.nextID++
	return o, SpawnPlaced
}

// travel bounds how far o moves before it is removed, including the
// overshoot of its final step at the speed reached by then.
func (g *Generator) travel(o *Obstacle, speed float64) float64 {
	dist := o.X + o.W
	if dist < 0 {
		dist = 0
	}
	ticks := math.Ceil(dist/(speed*o.SpeedMul)) + 2
	return dist + (speed+g.increment*ticks)*o.SpeedMul
}

// pick selects an archetype by weighted thresholds.
func (g *Generator) pick() config.RunnerArchetype {
	total := g.thresholds[len(g.thresholds)-1]
	roll := g.rng.Float64() * total
	for i, t := range g.thresholds {
		if roll < t {
			return g.archetypes[i]
		}
	}
	return g.archetypes[len(g.archetypes)-1]
}

// moveObstacles scrolls obstacles left and drops the ones fully past the
// left edge. Returns the surviving obstacles and how many were dropped.
func moveObstacles(obstacles []Obstacle, speed float64) ([]Obstacle, int) {
	kept := obstacles[:0]
	passed := 0
	for _, o := range obstacles {
		o.X -= speed * o.SpeedMul
		if o.X+o.W < 0 {
			passed++
			continue
		}
		kept = append(kept, o)
	}
	return kept, passed
}

func glyphOf(s string) rune {
	for _, r := range s {
		return r
	}
	return '▓'
}

func colorOf(name string) core.Color {
	c, _ := core.ParseColor(name)
	return c
}
