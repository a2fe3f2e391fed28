// Package core provides fundamental types shared by the flappy simulation and
// its frontends. It has no external dependencies so game logic stays pure and
// testable without a terminal or a window.
package core

import "math"

// Rect represents an axis-aligned bounding box used for collision detection.
// Coordinates are in world units with Y growing downward.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.W <= 0 || r.H <= 0 || other.W <= 0 || other.H <= 0 {
		return false
	}
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// ClipY returns the part of r that lies within [top, bottom).
// The result has zero height when nothing is left.
func (r Rect) ClipY(top, bottom int) Rect {
	y0 := Max(r.Y, top)
	y1 := Min(r.Bottom(), bottom)
	if y1 < y0 {
		y1 = y0
	}
	return Rect{X: r.X, Y: y0, W: r.W, H: y1 - y0}
}

// FloorInt converts a world coordinate to the integer grid the same way for
// positive and negative values.
func FloorInt(v float64) int {
	return int(math.Floor(v))
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Digits splits a non-negative integer into its decimal digits, most
// significant first. Negative values are treated as zero.
func Digits(n int) []int {
	if n <= 0 {
		return []int{0}
	}
	var out []int
	for n > 0 {
		out = append(out, n%10)
		n /= 10
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
