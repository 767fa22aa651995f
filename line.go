package bezier

import (
	"math"
)

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Length()
}

func (l Line) Eval(t float64) Point {
	return lerp(l.P0, l.P1, t)
}

// Alignment is a rigid transform that moves a line onto the x axis.
type Alignment struct {
	// Translation is applied first.
	Translation Point
	// Angle is the rotation, in radians, applied after the translation.
	Angle float64
}

// Apply transforms p.
func (a Alignment) Apply(p Point) Point {
	return rotate(p.Add(a.Translation), a.Angle)
}

// AlignmentTransform returns the transform that maps l.P0 to the origin and
// l.P1 onto the positive x axis.
func (l Line) AlignmentTransform() Alignment {
	d := l.P1.Sub(l.P0)
	return Alignment{
		Translation: l.P0.Mul(-1),
		Angle:       -math.Atan2(d.Y, d.X),
	}
}

// Contains reports whether pt lies on the segment, allowing for a distance
// of epsilon.
func (l Line) Contains(pt Point, epsilon float64) bool {
	d := l.P1.Sub(l.P0)
	length := d.Length()
	v := pt.Sub(l.P0)
	if length == 0 {
		return v.Length() <= epsilon
	}
	if math.Abs(cross(d, v))/length > epsilon {
		return false
	}
	along := d.Dot(v) / length
	return along >= -epsilon && along <= length+epsilon
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross. It returns false for parallel lines.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := cross(ab, cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := cross(ab, l.P0.Sub(o.P0)) / pcd
	return o.P0.Add(cd.Mul(h)), true
}

// LineIntersection intersects the infinite line through p1 and p2 with the
// infinite line through p3 and p4.
func LineIntersection(p1, p2, p3, p4 Point) (Point, bool) {
	return Line{p1, p2}.CrossingPoint(Line{p3, p4})
}
