package bezier

import (
	"cmp"
	"math"
	"slices"
)

// CircleIntersection is an intersection of a curve with a circle.
type CircleIntersection struct {
	Point Point
	T     float64
}

// CircleOpts controls curve-circle intersection.
type CircleOpts struct {
	// Samples is the number of intervals the curve is sampled at when
	// looking for candidate intersections.
	Samples int
	// Epsilon is the largest deviation from the radius, relative to the
	// radius (or absolute, for radii below 1), that a refined candidate may
	// have.
	Epsilon float64
	// MaxRefinements caps the number of refinement rounds per candidate.
	MaxRefinements int
	// MinStep stops the refinement once the bracket is this small.
	MinStep float64
}

// DefaultCircleOpts are the options used by [Bezier.IntersectCircle].
var DefaultCircleOpts = CircleOpts{
	Samples:        100,
	Epsilon:        1e-6,
	MaxRefinements: 25,
	MinStep:        1e-12,
}

// IntersectCircle returns the points at which the curve crosses or touches
// the circle with the given center and radius, ordered by T.
func (b *Bezier) IntersectCircle(center Point, radius float64) []CircleIntersection {
	return b.IntersectCircleOpt(center, radius, DefaultCircleOpts)
}

// IntersectCircleOpt is like [Bezier.IntersectCircle] but with explicit
// options.
func (b *Bezier) IntersectCircleOpt(center Point, radius float64, opts CircleOpts) []CircleIntersection {
	n := max(opts.Samples, 2)
	deviation := func(t float64) float64 {
		return distance(evalPoints(b.points, t), center) - radius
	}

	ts := make([]float64, n+1)
	devs := make([]float64, n+1)
	for i := range ts {
		ts[i] = float64(i) / float64(n)
		devs[i] = deviation(ts[i])
	}

	// Candidates are local minima of the absolute deviation and samples next
	// to a sign change.
	var candidates []int
	for i := range devs {
		d := math.Abs(devs[i])
		falling := i == 0 || d <= math.Abs(devs[i-1])
		rising := i == n || d < math.Abs(devs[i+1])
		if falling && rising {
			candidates = append(candidates, i)
			continue
		}
		if i < n && math.Signbit(devs[i]) != math.Signbit(devs[i+1]) && d <= math.Abs(devs[i+1]) {
			candidates = append(candidates, i)
		}
	}

	eps := opts.Epsilon * max(1, radius)
	var out []CircleIntersection
	for _, i := range candidates {
		lo := ts[max(i-1, 0)]
		hi := ts[min(i+1, n)]
		t, dev, width := refineMinimum(func(t float64) float64 { return math.Abs(deviation(t)) }, lo, hi, opts)
		// The refined t is only known to within width, which on a fast
		// curve can still be a noticeable distance.
		if dev > eps+evalPoints(b.dpoints, t).Length()*width {
			continue
		}
		t = min(max(t, 0), 1)
		if slices.ContainsFunc(out, func(o CircleIntersection) bool { return math.Abs(o.T-t) <= 1e-7 }) {
			continue
		}
		out = append(out, CircleIntersection{Point: evalPoints(b.points, t), T: t})
	}
	slices.SortFunc(out, func(x, y CircleIntersection) int { return cmp.Compare(x.T, y.T) })
	return out
}

// refineMinimum narrows [lo, hi] around a minimum of f by repeatedly
// sampling five evenly spaced points and keeping the neighbourhood of the
// smallest. It returns the best parameter, its value and the width of the
// final bracket.
func refineMinimum(f func(float64) float64, lo, hi float64, opts CircleOpts) (float64, float64, float64) {
	var ts, vs [5]float64
	bestT, bestV := lo, f(lo)
	for range opts.MaxRefinements {
		step := (hi - lo) / 4
		if step < opts.MinStep {
			break
		}
		j := 0
		for k := range ts {
			ts[k] = lo + float64(k)*step
			vs[k] = f(ts[k])
			if vs[k] < vs[j] {
				j = k
			}
		}
		if vs[j] < bestV {
			bestT, bestV = ts[j], vs[j]
		}
		lo = ts[max(j-1, 0)]
		hi = ts[min(j+1, 4)]
	}
	return bestT, bestV, hi - lo
}
