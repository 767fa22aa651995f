package bezier

import (
	"cmp"
	"math"
	"slices"
)

const (
	// rootEpsilon is how far outside of [0, 1] a root may lie and still be
	// accepted, to account for roundoff.
	rootEpsilon = 1e-9
	// lineEpsilon is the distance, relative to the line's length, within
	// which a point counts as lying on a line segment.
	lineEpsilon = 1e-7
)

// IntersectLine returns the parameters, in increasing order, at which the
// curve intersects the line segment l.
func (b *Bezier) IntersectLine(l Line) []float64 {
	align := l.AlignmentTransform()
	ys := make([]float64, len(b.points))
	for i, p := range b.points {
		ys[i] = align.Apply(p).Y
	}
	c0, c1, c2, c3 := powerCoefficients(ys)
	roots, n := SolveCubic(c0, c1, c2, c3)
	eps := lineEpsilon * max(1, l.Length())
	var out []float64
	for _, t := range roots[:n] {
		if t < -rootEpsilon || t > 1+rootEpsilon {
			continue
		}
		t = min(max(t, 0), 1)
		if !l.Contains(evalPoints(b.points, t), eps) {
			continue
		}
		if len(out) > 0 && t-out[len(out)-1] < rootEpsilon {
			// double root
			continue
		}
		out = append(out, t)
	}
	return out
}

// powerCoefficients converts one coordinate of a quadratic or cubic Bézier
// from the Bernstein to the power basis, returning c0 + c1 t + c2 t² + c3 t³.
func powerCoefficients(v []float64) (_, _, _, _ float64) {
	switch len(v) {
	case 3:
		return v[0], 2 * (v[1] - v[0]), v[0] - 2*v[1] + v[2], 0
	case 4:
		return v[0],
			3 * (v[1] - v[0]),
			3 * (v[0] - 2*v[1] + v[2]),
			-v[0] + 3*v[1] - 3*v[2] + v[3]
	default:
		panic("unreachable")
	}
}

// CurveIntersection is an intersection of two curves, or of a curve with
// itself.
type CurveIntersection struct {
	// SelfT is the parameter on the curve the method was called on.
	SelfT float64
	// OtherT is the parameter on the other curve. For self-intersections,
	// OtherT is the larger of the two parameters.
	OtherT float64
}

// IntersectOpts controls curve-curve intersection.
//
// The slack factors were tuned empirically.
type IntersectOpts struct {
	// Threshold is the arc length below which a pair of sub-curves with
	// overlapping bounding boxes counts as an intersection.
	Threshold float64
	// ParamSlack scales the parametric tolerance within which two hits are
	// merged. The tolerance on a curve of length L is
	// ParamSlack * Threshold / L.
	ParamSlack float64
	// TangentSlack scales the parametric tolerance within which two hits
	// that are also spatially close are merged. This collapses the many
	// hits found where two curves touch tangentially.
	TangentSlack float64
	// MaxIterations caps the number of sub-curve pairs that get examined.
	MaxIterations int
}

// DefaultIntersectOpts are the options used by [Bezier.Intersections] and
// [Bezier.SelfIntersections].
var DefaultIntersectOpts = IntersectOpts{
	Threshold:     0.5,
	ParamSlack:    10,
	TangentSlack:  100,
	MaxIterations: 1 << 16,
}

// Intersections returns the intersections of b and o, ordered by SelfT.
func (b *Bezier) Intersections(o *Bezier) []CurveIntersection {
	return b.IntersectionsOpt(o, DefaultIntersectOpts)
}

// IntersectionsOpt is like [Bezier.Intersections] but with explicit options.
func (b *Bezier) IntersectionsOpt(o *Bezier, opts IntersectOpts) []CurveIntersection {
	hits := pairIntersections(b, o, [2]float64{0, 1}, [2]float64{0, 1}, opts)
	return mergeHits(hits, b, o, opts)
}

// SelfIntersections returns the points where the curve crosses itself.
func (b *Bezier) SelfIntersections() []CurveIntersection {
	return b.SelfIntersectionsOpt(DefaultIntersectOpts)
}

// SelfIntersectionsOpt is like [Bezier.SelfIntersections] but with explicit
// options.
//
// The curve is split at t = 0.5 and the halves are intersected with each
// other, so a loop that lies entirely within one half is not found.
func (b *Bezier) SelfIntersectionsOpt(opts IntersectOpts) []CurveIntersection {
	left, right := b.SplitCurve(0.5)
	hits := pairIntersections(left, right, [2]float64{0, 0.5}, [2]float64{0.5, 1}, opts)
	// The halves always meet where they were split.
	tol := paramTolerance(b, opts.ParamSlack, opts.Threshold)
	hits = slices.DeleteFunc(hits, func(h CurveIntersection) bool {
		return math.Abs(h.SelfT-0.5) <= tol && math.Abs(h.OtherT-0.5) <= tol
	})
	return mergeHits(hits, b, b, opts)
}

type subcurvePair struct {
	a, b   *Bezier
	ar, br [2]float64
}

// pairIntersections finds candidate intersections by recursively
// subdividing both curves. ar and br are the parameter ranges that a and b
// span on the curves whose parameters are reported.
func pairIntersections(a, b *Bezier, ar, br [2]float64, opts IntersectOpts) []CurveIntersection {
	var hits []CurveIntersection
	stack := []subcurvePair{{a, b, ar, br}}
	for i := 0; len(stack) > 0 && i < opts.MaxIterations; i++ {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !bboxOverlap(p.a.BoundingBox(), p.b.BoundingBox()) {
			continue
		}
		amid := 0.5 * (p.ar[0] + p.ar[1])
		bmid := 0.5 * (p.br[0] + p.br[1])
		if p.a.Length() < opts.Threshold && p.b.Length() < opts.Threshold {
			hits = append(hits, CurveIntersection{SelfT: amid, OtherT: bmid})
			continue
		}
		a0, a1 := p.a.SplitCurve(0.5)
		b0, b1 := p.b.SplitCurve(0.5)
		ar0 := [2]float64{p.ar[0], amid}
		ar1 := [2]float64{amid, p.ar[1]}
		br0 := [2]float64{p.br[0], bmid}
		br1 := [2]float64{bmid, p.br[1]}
		stack = append(stack,
			subcurvePair{a1, b1, ar1, br1},
			subcurvePair{a1, b0, ar1, br0},
			subcurvePair{a0, b1, ar0, br1},
			subcurvePair{a0, b0, ar0, br0},
		)
	}
	return hits
}

func paramTolerance(c *Bezier, slack, threshold float64) float64 {
	return slack * threshold / max(c.Length(), threshold)
}

// mergeHits clusters hits that describe the same intersection and returns
// the best hit of each cluster, that is the one whose points on a and b are
// closest to each other.
func mergeHits(hits []CurveIntersection, a, b *Bezier, opts IntersectOpts) []CurveIntersection {
	tolA := paramTolerance(a, opts.ParamSlack, opts.Threshold)
	tolB := paramTolerance(b, opts.ParamSlack, opts.Threshold)
	wideA := paramTolerance(a, opts.TangentSlack, opts.Threshold)
	wideB := paramTolerance(b, opts.TangentSlack, opts.Threshold)
	near := 2 * opts.Threshold

	type hit struct {
		CurveIntersection
		pa, pb Point
	}
	same := func(h, o hit) bool {
		ds := math.Abs(h.SelfT - o.SelfT)
		do := math.Abs(h.OtherT - o.OtherT)
		if ds <= tolA && do <= tolB {
			return true
		}
		return ds <= wideA && do <= wideB && distance(h.pa, o.pa) <= near
	}

	var clusters [][]hit
	for _, ci := range hits {
		h := hit{ci, evalPoints(a.points, ci.SelfT), evalPoints(b.points, ci.OtherT)}
		// Single linkage: h joins every cluster it is close to, merging them.
		var joined []hit
		clusters = slices.DeleteFunc(clusters, func(c []hit) bool {
			if slices.ContainsFunc(c, func(o hit) bool { return same(h, o) }) {
				joined = append(joined, c...)
				return true
			}
			return false
		})
		clusters = append(clusters, append(joined, h))
	}

	out := make([]CurveIntersection, 0, len(clusters))
	for _, c := range clusters {
		best := slices.MinFunc(c, func(x, y hit) int {
			return cmp.Compare(distance(x.pa, x.pb), distance(y.pa, y.pb))
		})
		out = append(out, best.CurveIntersection)
	}
	slices.SortFunc(out, func(x, y CurveIntersection) int {
		return cmp.Or(cmp.Compare(x.SelfT, y.SelfT), cmp.Compare(x.OtherT, y.OtherT))
	})
	return out
}
