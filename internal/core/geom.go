// Package core provides fundamental types and utilities shared by the
// simulation and the frontends. It has no external dependencies (especially
// no Bubble Tea or ebiten) to keep game logic pure and testable.
package core

// Box is an axis-aligned bounding box with a float position and an integer
// size taken from the source art. It is the collision shape of every entity.
type Box struct {
	X, Y float64 // Top-left corner position
	W, H int     // Width and height
}

// NewBox creates a box at (x, y) with the given size.
func NewBox(x, y float64, w, h int) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + float64(b.W)
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + float64(b.H)
}

// Overlaps reports whether two boxes share a positive-area region.
// Boxes that only touch along an edge or at a corner do not overlap.
func (b Box) Overlaps(other Box) bool {
	return max(b.X, other.X) < min(b.Right(), other.Right()) &&
		max(b.Y, other.Y) < min(b.Bottom(), other.Bottom())
}

// Rect represents an integer rectangle in screen cells or source pixels.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
