package grid

import "math"

// Vec is a continuous 2D position or direction. The gradient descent
// navigator moves through fractional coordinates; the integer cell a Vec
// falls in is its floor.
type Vec struct {
	X, Y float64
}

// Add returns v + w.
func (v Vec) Add(w Vec) Vec {
	return Vec{X: v.X + w.X, Y: v.Y + w.Y}
}

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length, or the zero vector when v is
// (numerically) zero.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l < 1e-12 {
		return Vec{}
	}

	return Vec{X: v.X / l, Y: v.Y / l}
}

// Dist returns the Euclidean distance between v and w.
func (v Vec) Dist(w Vec) float64 {
	return math.Hypot(v.X-w.X, v.Y-w.Y)
}

// Clamp limits both components into [lo, hi] per axis pair.
// loX..hiX bound X, loY..hiY bound Y.
func (v Vec) Clamp(loX, hiX, loY, hiY float64) Vec {
	c := v
	if c.X < loX {
		c.X = loX
	}
	if c.X > hiX {
		c.X = hiX
	}
	if c.Y < loY {
		c.Y = loY
	}
	if c.Y > hiY {
		c.Y = hiY
	}

	return c
}

// Cell returns the integer grid cell the position falls in (floor).
func (v Vec) Cell() Point {
	return Point{X: int(math.Floor(v.X)), Y: int(math.Floor(v.Y))}
}
