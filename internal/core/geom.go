// Package core provides the types shared by the game and its frontends:
// the cell screen, input frames, runtime settings and the seeded RNG.
// It has no UI dependencies, so game logic stays testable.
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

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether the two rectangles share at least one cell.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	return r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Vec is a 2D vector in world units.
type Vec struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale multiplies both components by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
