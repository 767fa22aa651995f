package bezier

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Point is a point (or vector) in the plane. Points have value semantics;
// no operation in this package modifies a point it was given.
type Point = vec.Vec2

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// lerp linearly interpolates between two points.
func lerp(a, b Point, t float64) Point {
	// a + t * (b-a)
	return a.Add(b.Sub(a).Mul(t))
}

func midpoint(a, b Point) Point {
	return Point{
		X: 0.5 * (a.X + b.X),
		Y: 0.5 * (a.Y + b.Y),
	}
}

// cross returns the z component of the cross product of a and b.
func cross(a, b Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

func distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// unitVector returns a vector of length 1 with the same angle as v.
// This produces a NaN vector if the length is 0.
func unitVector(v Point) Point {
	return v.Mul(1.0 / v.Length())
}

// rotate rotates v counter-clockwise (in a y-up coordinate system) by th
// radians around the origin.
func rotate(v Point, th float64) Point {
	s, c := math.Sincos(th)
	return Point{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
	}
}

// perp returns v rotated by 90°, i.e. ⟨-y, x⟩.
func perp(v Point) Point {
	return Point{X: -v.Y, Y: v.X}
}

func isNaN(p Point) bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

// PointsEqual reports whether p1 and p2 differ by at most epsilon in each
// coordinate.
func PointsEqual(p1, p2 Point, epsilon float64) bool {
	return math.Abs(p1.X-p2.X) <= epsilon && math.Abs(p1.Y-p2.Y) <= epsilon
}
