package bezier

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

const defaultLUTResolution = 1000

// Bezier is a quadratic or cubic Bézier curve.
//
// A Bezier caches derived data (its hodograph, its length, an arc length
// lookup table and a memo of arc lengths). All of it is kept consistent with
// the control points: the only way to change the control points is through
// [Bezier.SetControlPoints] and [Bezier.SetControlPoint], which recompute or
// invalidate the caches.
//
// A Bezier is not safe for concurrent use, not even by concurrent readers, as
// queries populate the caches.
type Bezier struct {
	points []Point
	// dpoints are the control points of the first derivative, ddpoints those
	// of the second.
	dpoints  []Point
	ddpoints []Point

	length float64
	// lengths memoizes LengthAtT, keyed by t rounded to 6 decimals.
	lengths map[int64]float64

	lut           lookupTable
	lutResolution int
}

// New returns the Bézier curve with the given control points. It returns an
// error wrapping [ErrPointCount] unless given 3 or 4 points.
func New(points ...Point) (*Bezier, error) {
	if err := checkPointCount(len(points)); err != nil {
		return nil, err
	}
	return newBezier(slices.Clone(points)), nil
}

// NewQuad returns the quadratic Bézier curve with the given control points.
func NewQuad(p0, p1, p2 Point) *Bezier {
	return newBezier([]Point{p0, p1, p2})
}

// NewCubic returns the cubic Bézier curve with the given control points.
func NewCubic(p0, p1, p2, p3 Point) *Bezier {
	return newBezier([]Point{p0, p1, p2, p3})
}

// newBezier takes ownership of points.
func newBezier(points []Point) *Bezier {
	b := &Bezier{lutResolution: defaultLUTResolution}
	b.update(points)
	return b
}

func checkPointCount(n int) error {
	if n != 3 && n != 4 {
		return fmt.Errorf("%w, got %d", ErrPointCount, n)
	}
	return nil
}

// update installs new control points and brings every cache in line with
// them.
func (b *Bezier) update(points []Point) {
	b.points = points
	b.dpoints = hodograph(points)
	b.ddpoints = hodograph(b.dpoints)
	b.lengths = make(map[int64]float64)
	b.lut.invalidate()
	b.length = b.LengthAtT(1)
}

// hodograph returns the control points of the derivative of the Bézier curve
// with the given control points.
func hodograph(points []Point) []Point {
	if len(points) < 2 {
		return nil
	}
	d := float64(len(points) - 1)
	out := make([]Point, len(points)-1)
	for i := range out {
		out[i] = points[i+1].Sub(points[i]).Mul(d)
	}
	return out
}

// Order returns the degree of the curve, 2 for quadratics and 3 for cubics.
func (b *Bezier) Order() int {
	return len(b.points) - 1
}

// ControlPoints returns a copy of the curve's control points.
func (b *Bezier) ControlPoints() []Point {
	return slices.Clone(b.points)
}

// Hodograph returns a copy of the control points of the curve's derivative.
func (b *Bezier) Hodograph() []Point {
	return slices.Clone(b.dpoints)
}

// SetControlPoints replaces all control points. The number of points may
// differ from the current one, but must be 3 or 4.
func (b *Bezier) SetControlPoints(points ...Point) error {
	if err := checkPointCount(len(points)); err != nil {
		return err
	}
	b.update(slices.Clone(points))
	return nil
}

// SetControlPoint replaces the i-th control point. It reports false, without
// modifying the curve, if i is out of bounds.
func (b *Bezier) SetControlPoint(i int, p Point) bool {
	if i < 0 || i >= len(b.points) {
		return false
	}
	points := slices.Clone(b.points)
	points[i] = p
	b.update(points)
	return true
}

func (b *Bezier) Start() Point { return b.points[0] }
func (b *Bezier) End() Point   { return b.points[len(b.points)-1] }

func (b *Bezier) String() string {
	var sb strings.Builder
	sb.WriteString("Bezier{")
	for i, p := range b.points {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "(%g, %g)", p.X, p.Y)
	}
	sb.WriteString("}")
	return sb.String()
}

// Eval returns the point at t. It panics with a [*RangeError] if t is not in
// [0, 1].
func (b *Bezier) Eval(t float64) Point {
	checkT("Eval", t)
	return evalPoints(b.points, t)
}

// evalPoints evaluates the Bézier curve with the given control points,
// using the Bernstein polynomials for quadratics and cubics and de
// Casteljau's algorithm for any other degree.
func evalPoints(points []Point, t float64) Point {
	mt := 1.0 - t
	switch len(points) {
	case 3:
		a := points[0].Mul(mt * mt)
		b := points[1].Mul(2 * mt * t)
		c := points[2].Mul(t * t)
		return a.Add(b).Add(c)
	case 4:
		a := points[0].Mul(mt * mt * mt)
		b := points[1].Mul(mt * mt * 3.0)
		c := points[2].Mul(mt * 3.0)
		d := points[3]
		return a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	default:
		return deCasteljau(points, t)
	}
}

func deCasteljau(points []Point, t float64) Point {
	if len(points) == 0 {
		return Point{}
	}
	tmp := slices.Clone(points)
	for n := len(tmp) - 1; n > 0; n-- {
		for i := range n {
			tmp[i] = lerp(tmp[i], tmp[i+1], t)
		}
	}
	return tmp[0]
}

// Derivative returns the first derivative at t.
func (b *Bezier) Derivative(t float64) Point {
	checkT("Derivative", t)
	return evalPoints(b.dpoints, t)
}

// NormalizedDerivative returns the unit tangent at t. The result is a NaN
// vector where the derivative vanishes.
func (b *Bezier) NormalizedDerivative(t float64) Point {
	checkT("NormalizedDerivative", t)
	return unitVector(evalPoints(b.dpoints, t))
}

// SecondDerivative returns the second derivative at t.
func (b *Bezier) SecondDerivative(t float64) Point {
	checkT("SecondDerivative", t)
	return evalPoints(b.ddpoints, t)
}

// Normal returns the unit normal at t, which is the unit tangent rotated by
// 90°.
func (b *Bezier) Normal(t float64) Point {
	checkT("Normal", t)
	return perp(unitVector(evalPoints(b.dpoints, t)))
}

// Curvature returns the signed curvature at t. It returns NaN where the
// first derivative vanishes.
func (b *Bezier) Curvature(t float64) float64 {
	checkT("Curvature", t)
	d1 := evalPoints(b.dpoints, t)
	d2 := evalPoints(b.ddpoints, t)
	den := math.Pow(d1.Length(), 3)
	if den == 0 {
		return math.NaN()
	}
	return cross(d1, d2) / den
}

// Split subdivides the curve at t using de Casteljau's algorithm. The last
// point of left is the first point of right.
func (b *Bezier) Split(t float64) (left, right []Point) {
	checkT("Split", t)
	return splitPoints(b.points, t)
}

// SplitCurve is like [Bezier.Split] but returns curves.
func (b *Bezier) SplitCurve(t float64) (*Bezier, *Bezier) {
	checkT("SplitCurve", t)
	left, right := splitPoints(b.points, t)
	return newBezier(left), newBezier(right)
}

func splitPoints(points []Point, t float64) (left, right []Point) {
	n := len(points)
	left = make([]Point, n)
	right = make([]Point, n)
	tmp := slices.Clone(points)
	left[0] = tmp[0]
	right[n-1] = tmp[n-1]
	for k := 1; k < n; k++ {
		for i := range n - k {
			tmp[i] = lerp(tmp[i], tmp[i+1], t)
		}
		left[k] = tmp[0]
		right[n-1-k] = tmp[n-1-k]
	}
	return left, right
}

// SplitIn3 subdivides the curve at t1 and t2, returning the control points of
// the pieces [0, t1], [t1, t2] and [t2, 1]. If t1 > t2, the two are swapped
// and a warning is logged.
func (b *Bezier) SplitIn3(t1, t2 float64) [3][]Point {
	checkT("SplitIn3", t1)
	checkT("SplitIn3", t2)
	if t1 > t2 {
		warnLogger().Warn("bezier: SplitIn3 called with t1 > t2, swapping", "t1", t1, "t2", t2)
		t1, t2 = t2, t1
	}
	return splitIn3(b.points, t1, t2)
}

func splitIn3(points []Point, t1, t2 float64) [3][]Point {
	left, rest := splitPoints(points, t1)
	// rest spans [t1, 1] of the original curve.
	u := 0.0
	if t1 < 1 {
		u = mapRange(t2, t1, 1, 0, 1)
	}
	mid, right := splitPoints(rest, u)
	return [3][]Point{left, mid, right}
}

// Segment returns the part of the curve between t1 and t2.
func (b *Bezier) Segment(t1, t2 float64) *Bezier {
	checkT("Segment", t1)
	checkT("Segment", t2)
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return newBezier(splitIn3(b.points, t1, t2)[1])
}
