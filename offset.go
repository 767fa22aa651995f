package bezier

import (
	"math"
	"slices"
)

// linearFraction is the summed distance of the control points from the
// chord, relative to the chord's length, below which a curve is considered
// straight.
const linearFraction = 1.0 / 100.0

// OffsetOpts controls curve reduction and offsetting.
type OffsetOpts struct {
	// MaxTurn is the largest angle, in radians, between the normals at the
	// ends of a simple segment.
	MaxTurn float64
	// MinSpan is the smallest parameter span that reduction will bisect
	// further. Narrower segments are accepted even if they are not simple.
	MinSpan float64
}

// DefaultOffsetOpts are the options used by [Bezier.Reduce] and
// [Bezier.Offset].
var DefaultOffsetOpts = OffsetOpts{
	MaxTurn: math.Pi / 3,
	MinSpan: 1e-3,
}

// IsLinear reports whether the curve is, for all practical purposes, a
// straight line from its start to its end point.
func (b *Bezier) IsLinear() bool {
	chord := Line{b.Start(), b.End()}
	length := chord.Length()
	if length == 0 {
		return false
	}
	align := chord.AlignmentTransform()
	var dev float64
	for _, p := range b.points {
		dev += math.Abs(align.Apply(p).Y)
	}
	return dev < length*linearFraction
}

// Simple reports whether the curve is simple enough to be offset by
// moving its control points: the normals at its ends differ by less than
// [DefaultOffsetOpts].MaxTurn and, for cubics, both control points lie on
// the same side of the chord.
func (b *Bezier) Simple() bool {
	return b.simple(DefaultOffsetOpts)
}

func (b *Bezier) simple(opts OffsetOpts) bool {
	if len(b.points) == 4 {
		chord := b.End().Sub(b.Start())
		s1 := cross(chord, b.points[1].Sub(b.Start()))
		s2 := cross(chord, b.points[2].Sub(b.Start()))
		if s1 > 0 && s2 < 0 || s1 < 0 && s2 > 0 {
			return false
		}
	}
	t0, t1, ok := b.endTangents()
	if !ok {
		return false
	}
	n0, n1 := perp(unitVector(t0)), perp(unitVector(t1))
	cos := min(max(n0.Dot(n1), -1), 1)
	return math.Acos(cos) < opts.MaxTurn
}

// endTangents returns the directions of the curve at its ends. Where the
// derivative vanishes, the direction towards the next distinct control point
// is used instead. ok is false if all control points coincide.
func (b *Bezier) endTangents() (d0, d1 Point, ok bool) {
	const epsilon = 1e-12
	n := len(b.points)
	ok0, ok1 := false, false
	for i := 1; i < n && !ok0; i++ {
		d0 = b.points[i].Sub(b.points[0])
		ok0 = d0.Dot(d0) > epsilon
	}
	for i := n - 2; i >= 0 && !ok1; i-- {
		d1 = b.points[n-1].Sub(b.points[i])
		ok1 = d1.Dot(d1) > epsilon
	}
	return d0, d1, ok0 && ok1
}

// Inflections returns the parameters in (0, 1) at which the curvature of the
// curve changes sign, in increasing order. Quadratics have no inflections.
func (b *Bezier) Inflections() []float64 {
	if len(b.points) != 4 {
		return nil
	}
	xs := make([]float64, 4)
	ys := make([]float64, 4)
	for i, p := range b.points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	_, x1, x2, x3 := powerCoefficients(xs)
	_, y1, y2, y3 := powerCoefficients(ys)
	a1, a2, a3 := Pt(x1, y1), Pt(x2, y2), Pt(x3, y3)
	// B' × B'' = 2 (a1 × a2) + 6 (a1 × a3) t + 6 (a2 × a3) t²
	c0 := 2 * cross(a1, a2)
	c1 := 6 * cross(a1, a3)
	c2 := 6 * cross(a2, a3)
	if c0 == 0 && c1 == 0 && c2 == 0 {
		// straight
		return nil
	}
	roots, n := SolveQuadratic(c0, c1, c2)
	var out []float64
	for _, t := range roots[:n] {
		if t > 0 && t < 1 {
			out = append(out, t)
		}
	}
	return out
}

// Reduce splits the curve into simple segments (see [Bezier.Simple]). It
// first splits at the extrema and inflections and then bisects every piece
// until it is simple.
func (b *Bezier) Reduce() []*Bezier {
	return b.ReduceOpt(DefaultOffsetOpts)
}

// ReduceOpt is like [Bezier.Reduce] but with explicit options.
//
// A curve whose control points all coincide has no direction to be simple
// in and is returned as a single segment.
func (b *Bezier) ReduceOpt(opts OffsetOpts) []*Bezier {
	if _, _, ok := b.endTangents(); !ok {
		return []*Bezier{b.Segment(0, 1)}
	}
	const minExtremaGap = 1e-6
	ts := append(b.allExtrema(), b.Inflections()...)
	slices.Sort(ts)
	cuts := []float64{0}
	for _, t := range ts {
		if t-cuts[len(cuts)-1] > minExtremaGap && 1-t > minExtremaGap {
			cuts = append(cuts, t)
		}
	}
	cuts = append(cuts, 1)

	var out []*Bezier
	for i := range len(cuts) - 1 {
		// Bisect [t1, t2] until every piece is simple. The stack holds spans
		// still to be examined, the next one on top.
		stack := [][2]float64{{cuts[i], cuts[i+1]}}
		for len(stack) > 0 {
			span := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			seg := b.Segment(span[0], span[1])
			if span[1]-span[0] <= opts.MinSpan || seg.simple(opts) {
				out = append(out, seg)
				continue
			}
			mid := 0.5 * (span[0] + span[1])
			stack = append(stack, [2]float64{mid, span[1]}, [2]float64{span[0], mid})
		}
	}
	return out
}

// Raise returns the cubic Bézier that traces the same curve as the
// quadratic b. Cubics are returned unchanged.
func (b *Bezier) Raise() *Bezier {
	if len(b.points) != 3 {
		return b
	}
	p0, p1, p2 := b.points[0], b.points[1], b.points[2]
	return NewCubic(
		p0,
		lerp(p0, p1, 2.0/3.0),
		lerp(p2, p1, 2.0/3.0),
		p2,
	)
}

// translate moves every control point by d along n.
func (b *Bezier) translate(n Point, d float64) *Bezier {
	points := make([]Point, len(b.points))
	for i, p := range b.points {
		points[i] = p.Add(n.Mul(d))
	}
	return newBezier(points)
}

// Offset returns curves approximating the curve offset by d along its
// normal (see [Bezier.Normal]). Straight curves produce a single, exact
// curve.
func (b *Bezier) Offset(d float64) []*Bezier {
	return b.OffsetOpt(d, DefaultOffsetOpts)
}

// OffsetOpt is like [Bezier.Offset] but with explicit options.
func (b *Bezier) OffsetOpt(d float64, opts OffsetOpts) []*Bezier {
	if b.IsLinear() {
		n := perp(unitVector(b.End().Sub(b.Start())))
		return []*Bezier{b.translate(n, d)}
	}
	segs := b.Raise().ReduceOpt(opts)
	out := make([]*Bezier, 0, len(segs))
	for _, seg := range segs {
		out = append(out, seg.scale(d))
	}
	return out
}

// scale offsets a simple cubic by d. The end points move along their
// normals. The control points move to where the offset end tangents meet
// the lines from the normals' intersection through the original control
// points.
//
// Where the end normals are parallel, as they are for straight segments, the
// control points move along the nearer end's normal. A curve collapsed to a
// single point has no normal and is returned unmoved.
func (b *Bezier) scale(d float64) *Bezier {
	p := b.points
	t0, t1, ok := b.endTangents()
	if !ok {
		return b.translate(Point{}, 0)
	}
	n0, n1 := perp(unitVector(t0)), perp(unitVector(t1))
	q0 := p[0].Add(n0.Mul(d))
	q3 := p[3].Add(n1.Mul(d))

	origin, ok := LineIntersection(p[0], p[0].Add(n0), p[3], p[3].Add(n1))
	q1, ok1 := LineIntersection(q0, q0.Add(t0), origin, p[1])
	q2, ok2 := LineIntersection(q3, q3.Add(t1), origin, p[2])
	if !ok || !ok1 || p[1] == origin {
		q1 = p[1].Add(n0.Mul(d))
	}
	if !ok || !ok2 || p[2] == origin {
		q2 = p[2].Add(n1.Mul(d))
	}
	return NewCubic(q0, q1, q2, q3)
}

// OffsetPoint is a point offset from a curve along its normal.
type OffsetPoint struct {
	// Point is the point on the curve.
	Point Point
	// Normal is the unit normal at Point.
	Normal Point
	// X and Y are the coordinates of the offset point.
	X, Y float64
}

// OffsetAt returns the point at distance d from the curve along the normal
// at t.
func (b *Bezier) OffsetAt(t, d float64) OffsetPoint {
	checkT("OffsetAt", t)
	c := evalPoints(b.points, t)
	n := perp(unitVector(evalPoints(b.dpoints, t)))
	return OffsetPoint{
		Point:  c,
		Normal: n,
		X:      c.X + n.X*d,
		Y:      c.Y + n.Y*d,
	}
}
