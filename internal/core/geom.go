// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea or ebiten)
// to keep simulation logic pure and testable.
package core

// Point is a position in world units (pixels).
type Point struct {
	X, Y float64
}

// Rect represents an axis-aligned bounding box used for collision detection.
// Coordinates are world units with Y growing downward.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection; touching edges do not overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// OverlapCenter returns the midpoint of the region shared by a and b.
// ok is false when the rectangles do not intersect.
func OverlapCenter(a, b Rect) (Point, bool) {
	if !a.Intersects(b) {
		return Point{}, false
	}
	left := MaxF(a.X, b.X)
	right := MinF(a.Right(), b.Right())
	top := MaxF(a.Y, b.Y)
	bottom := MinF(a.Bottom(), b.Bottom())
	return Point{X: (left + right) / 2, Y: (top + bottom) / 2}, true
}

// AnyIntersect scans the cross product as × bs in order and reports the
// indices of the first overlapping pair.
func AnyIntersect(as, bs []Rect) (i, j int, ok bool) {
	for i = range as {
		for j = range bs {
			if as[i].Intersects(bs[j]) {
				return i, j, true
			}
		}
	}
	return -1, -1, false
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

// ClampF restricts a float64 value to be within [min, max].
// When max < min the result is min.
func ClampF(val, min, max float64) float64 {
	if val > max {
		val = max
	}
	if val < min {
		val = min
	}
	return val
}

// MinF returns the smaller of two float64 values.
func MinF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// MaxF returns the larger of two float64 values.
func MaxF(a, b float64) float64 {
	if a > b {
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
