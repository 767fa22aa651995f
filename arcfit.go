package bezier

import (
	"math"
)

// maxArcSteps bounds the expansion search in [Bezier.FindArcStartingAt].
const maxArcSteps = 100

// Arc is a circular arc approximating the part of a curve between StartT and
// EndT.
//
// Parts of a curve that are straight to within the error threshold are
// represented by arcs with an infinite radius; see [Arc.IsStraight].
type Arc struct {
	Center Point
	Radius float64
	Start  Point
	End    Point
	StartT float64
	EndT   float64
}

// IsStraight reports whether the arc is a line segment from Start to End.
func (a Arc) IsStraight() bool {
	return math.IsInf(a.Radius, 1)
}

// det3 computes the determinant of a 3×3 matrix given in row-major order.
func det3(m [9]float64) float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// FitArc returns the circle through p0, p1 and pMid. It returns false if the
// points are colinear, in which case no such circle exists.
func FitArc(p0, p1, pMid Point) (center Point, radius float64, ok bool) {
	a := det3([9]float64{
		p0.X, p0.Y, 1,
		pMid.X, pMid.Y, 1,
		p1.X, p1.Y, 1,
	})
	if a == 0 {
		return Point{}, 0, false
	}
	s0 := p0.X*p0.X + p0.Y*p0.Y
	sm := pMid.X*pMid.X + pMid.Y*pMid.Y
	s1 := p1.X*p1.X + p1.Y*p1.Y
	dx := det3([9]float64{
		s0, p0.Y, 1,
		sm, pMid.Y, 1,
		s1, p1.Y, 1,
	})
	dy := det3([9]float64{
		p0.X, s0, 1,
		pMid.X, sm, 1,
		p1.X, s1, 1,
	})
	center = Point{X: dx / (2 * a), Y: dy / (2 * a)}
	radius = distance(center, p0)
	if math.IsInf(radius, 0) || math.IsNaN(radius) {
		return Point{}, 0, false
	}
	return center, radius, true
}

// fitArcInterval fits an arc to the curve between low and high and reports
// whether it is within errorThreshold of the curve at two check points, a
// quarter of the interval away from either end.
func (b *Bezier) fitArcInterval(errorThreshold, low, high float64) (Arc, bool) {
	mid := 0.5 * (low + high)
	q := 0.25 * (high - low)
	p0 := evalPoints(b.points, low)
	p1 := evalPoints(b.points, high)
	pm := evalPoints(b.points, mid)
	c1 := evalPoints(b.points, low+q)
	c2 := evalPoints(b.points, high-q)
	arc := Arc{Start: p0, End: p1, StartT: low, EndT: high}

	center, r, ok := FitArc(p0, p1, pm)
	if ok {
		e1 := math.Abs(distance(center, c1) - r)
		e2 := math.Abs(distance(center, c2) - r)
		if max(e1, e2) > errorThreshold {
			return Arc{}, false
		}
		arc.Center = center
		arc.Radius = r
		return arc, true
	}

	// Colinear samples; accept the interval as straight if the check points
	// are on the chord.
	chord := Line{p0, p1}
	if chord.Length() == 0 {
		chord = Line{p0, pm}
	}
	if !chord.Contains(pm, errorThreshold) || !chord.Contains(c1, errorThreshold) || !chord.Contains(c2, errorThreshold) {
		return Arc{}, false
	}
	arc.Center = midpoint(p0, p1)
	arc.Radius = math.Inf(1)
	return arc, true
}

// FindArcStartingAt finds the longest arc starting at low, up to t = 1,
// whose deviation from the curve is within errorThreshold. It returns false
// if no such arc can be found.
//
// The search starts by trying to fit [low, 1]. It halves the interval until
// an arc fits and then grows it by half its length until it no longer fits.
func (b *Bezier) FindArcStartingAt(errorThreshold, low float64) (Arc, bool) {
	checkT("FindArcStartingAt", low)
	high := 1.0
	var best Arc
	var found bool
	for range maxArcSteps {
		if high <= low {
			break
		}
		arc, ok := b.fitArcInterval(errorThreshold, low, high)
		if ok {
			best, found = arc, true
			if high >= 1 {
				break
			}
			high = min(high+(high-low)/2, 1)
		} else {
			if found {
				break
			}
			high = 0.5 * (low + high)
		}
	}
	return best, found
}

// FindArcs approximates the curve with circular arcs, each within
// errorThreshold of the curve. The arcs are ordered and cover [0, 1] without
// gaps.
func (b *Bezier) FindArcs(errorThreshold float64) []Arc {
	var arcs []Arc
	low := 0.0
	for low < 1 {
		arc, ok := b.FindArcStartingAt(errorThreshold, low)
		if !ok || arc.EndT <= low {
			// Only happens for curves with non-finite coordinates. Close the
			// tiling with a straight arc.
			p0 := evalPoints(b.points, low)
			p1 := b.End()
			arc = Arc{
				Center: midpoint(p0, p1),
				Radius: math.Inf(1),
				Start:  p0,
				End:    p1,
				StartT: low,
				EndT:   1,
			}
		}
		arcs = append(arcs, arc)
		low = arc.EndT
	}
	return arcs
}
