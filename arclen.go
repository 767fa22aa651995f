package bezier

import (
	"math"
	"slices"
	"sort"
)

// LUTSample is a sample of the arc length lookup table.
type LUTSample struct {
	T float64
	// Length is the arc length from the start of the curve to T.
	Length float64
	Point  Point
}

type lookupTable struct {
	valid bool
	// snapshot holds the control points the samples were computed for.
	snapshot []Point
	samples  []LUTSample
}

func (lut *lookupTable) invalidate() {
	lut.valid = false
	lut.snapshot = nil
	lut.samples = nil
}

func (lut *lookupTable) current(points []Point) bool {
	return lut.valid && slices.Equal(lut.snapshot, points)
}

// Length returns the arc length of the whole curve.
func (b *Bezier) Length() float64 {
	return b.length
}

// LengthAtT returns the arc length from the start of the curve to t.
//
// Results are memoized, keyed by t rounded to 6 decimal places.
func (b *Bezier) LengthAtT(t float64) float64 {
	checkT("LengthAtT", t)
	key := int64(math.Round(t * 1e6))
	if l, ok := b.lengths[key]; ok {
		return l
	}
	l := b.integrate(0, t)
	b.lengths[key] = l
	return l
}

// integrate computes the arc length between t0 and t1 using 24-point
// Legendre-Gauss quadrature.
func (b *Bezier) integrate(t0, t1 float64) float64 {
	if t0 == t1 {
		return 0
	}
	z := 0.5 * (t1 - t0)
	mid := 0.5 * (t1 + t0)
	var sum float64
	for _, coeff := range gaussLegendreCoeffs24Half {
		wi, xi := coeff[0], coeff[1]
		dpx := evalPoints(b.dpoints, mid+z*xi).Length()
		dmx := evalPoints(b.dpoints, mid-z*xi).Length()
		sum += wi * (dpx + dmx)
	}
	return z * sum
}

// SetLUTResolution sets the number of intervals of the arc length lookup
// table. Values below 1 are treated as 1.
func (b *Bezier) SetLUTResolution(n int) {
	n = max(n, 1)
	if n != b.lutResolution {
		b.lutResolution = n
		b.lut.invalidate()
	}
}

// LUT returns a copy of the arc length lookup table, building it if
// necessary. The copy is not updated when the curve changes.
func (b *Bezier) LUT() []LUTSample {
	return slices.Clone(b.lookup())
}

func (b *Bezier) lookup() []LUTSample {
	if b.lut.current(b.points) {
		return b.lut.samples
	}
	n := b.lutResolution
	samples := make([]LUTSample, n+1)
	var acc, prev float64
	for i := range n + 1 {
		t := float64(i) / float64(n)
		acc += b.integrate(prev, t)
		samples[i] = LUTSample{T: t, Length: acc, Point: evalPoints(b.points, t)}
		prev = t
	}
	b.lut = lookupTable{
		valid:    true,
		snapshot: slices.Clone(b.points),
		samples:  samples,
	}
	return samples
}

// TAtLength returns the parameter at which the arc length from the start of
// the curve equals l. Lengths outside of [0, Length()] are clamped.
func (b *Bezier) TAtLength(l float64) float64 {
	samples := b.lookup()
	i := sort.Search(len(samples), func(i int) bool {
		return samples[i].Length >= l
	})
	if i == 0 {
		return 0
	}
	if i == len(samples) {
		return 1
	}
	s0, s1 := samples[i-1], samples[i]
	if s1.Length == s0.Length {
		return s0.T
	}
	t := s0.T + (l-s0.Length)/(s1.Length-s0.Length)*(s1.T-s0.T)
	return min(max(t, 0), 1)
}

// PointAtLengthPercentage returns the point at the fraction p of the curve's
// arc length.
func (b *Bezier) PointAtLengthPercentage(p float64) Point {
	checkT("PointAtLengthPercentage", p)
	return evalPoints(b.points, b.TAtLength(p*b.length))
}

// Advance is the result of [Bezier.AdvanceAtTWithLength]. It is one of
// [WithinCurve], [BeforeCurve] and [AfterCurve].
type Advance interface {
	isAdvance()
}

// WithinCurve is the result of an advance that stayed on the curve.
type WithinCurve struct {
	T     float64
	Point Point
}

// BeforeCurve is the result of an advance that went past the start of the
// curve, by Remaining.
type BeforeCurve struct {
	Remaining float64
}

// AfterCurve is the result of an advance that went past the end of the
// curve, by Remaining.
type AfterCurve struct {
	Remaining float64
}

func (WithinCurve) isAdvance() {}
func (BeforeCurve) isAdvance() {}
func (AfterCurve) isAdvance()  {}

// AdvanceAtTWithLength moves along the curve by the signed arc length delta,
// starting at t.
func (b *Bezier) AdvanceAtTWithLength(t, delta float64) Advance {
	checkT("AdvanceAtTWithLength", t)
	if t == 0 && delta < 0 {
		return BeforeCurve{Remaining: -delta}
	}
	if t == 1 && delta > 0 {
		return AfterCurve{Remaining: delta}
	}
	target := b.LengthAtT(t) + delta
	if target > b.length {
		return AfterCurve{Remaining: target - b.length}
	}
	if target < 0 {
		return BeforeCurve{Remaining: -target}
	}
	nt := b.TAtLength(target)
	return WithinCurve{T: nt, Point: evalPoints(b.points, nt)}
}
