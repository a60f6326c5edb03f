package runner

import "github.com/vovakirdan/tui-runner/internal/config"

// World holds the horizontal scroll state and the game speed.
type World struct {
	Width     float64
	GroundY   float64
	ScrollX   float64 // Background offset in (-Width, 0]
	Speed     float64 // World units per tick
	increment float64
}

// NewWorld creates a world at its initial speed.
func NewWorld(w config.RunnerWorld, s config.RunnerSpeed) World {
	return World{
		Width:     w.Width,
		GroundY:   w.GroundY,
		Speed:     s.Initial,
		increment: s.Increment,
	}
}

// Advance scrolls the background by the current speed, wrapping by exactly
// one width so the background pattern stays continuous, then ramps the speed.
func (w *World) Advance() {
	w.ScrollX -= w.Speed
	for w.ScrollX <= -w.Width {
		w.ScrollX += w.Width
	}
	w.Speed += w.increment
}
