// Package core provides fundamental types shared by the game logic and the
// front ends. It has no external dependencies so game code stays pure and
// testable without a terminal or a window.
package core

import "cmp"

// Rect is an axis-aligned box in logical field coordinates.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewRect creates a rectangle.
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

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects reports whether two rectangles overlap.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// IntersectsCircle reports whether a circle overlaps the rectangle using the
// circle's bounding box. This is the AABB test the game uses for the ball.
func (r Rect) IntersectsCircle(cx, cy, radius float64) bool {
	return cx+radius > r.X &&
		cx-radius < r.Right() &&
		cy+radius > r.Y &&
		cy-radius < r.Bottom()
}

// Contains reports whether the point lies inside the rectangle (edges inclusive).
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp[T cmp.Ordered](val, lo, hi T) T {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
