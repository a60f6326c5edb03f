// Package core provides fundamental types and utilities for the runner platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is a rectangle of screen cells.
type Rect struct {
	X, Y int // Top-left cell
	W, H int // Width and height in cells
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is a floating-point axis-aligned rectangle in world units.
// The simulation works in Box; Rect is reserved for screen cells.
type Box struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Intersects reports whether the boxes overlap on both axes.
// Touching edges do not count as overlap.
func (b Box) Intersects(other Box) bool {
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}

// Inset shrinks the box by the fractions in h.
func (b Box) Inset(h HitRegion) Box {
	return Box{
		X: b.X + b.W*h.Left,
		Y: b.Y + b.H*h.Top,
		W: b.W * (1 - h.Left - h.Right),
		H: b.H * (1 - h.Top - h.Bottom),
	}
}

// HitRegion describes the collidable part of a sprite as fractions of its
// width (Left, Right) and height (Top, Bottom) trimmed from each side.
// The zero value keeps the full bounds.
type HitRegion struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// Valid reports whether the region leaves a non-empty box.
func (h HitRegion) Valid() bool {
	if h.Left < 0 || h.Right < 0 || h.Top < 0 || h.Bottom < 0 {
		return false
	}
	return h.Left+h.Right < 1 && h.Top+h.Bottom < 1
}
