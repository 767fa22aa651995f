package bezier

// maxProjectIterations bounds the refinement in [Bezier.Project]. Each
// iteration halves the bracket, so this is well beyond float64 precision.
const maxProjectIterations = 64

// Projection is the point on a curve closest to some other point.
type Projection struct {
	T        float64
	Point    Point
	Distance float64
}

// Project finds the point on the curve closest to pt.
//
// The search starts at the closest sample of the lookup table and refines it
// by bisection, so for points that are almost equally close to two distant
// parts of the curve it may settle on the slightly farther one.
func (b *Bezier) Project(pt Point) Projection {
	samples := b.lookup()
	best := 0
	bestD := distance(samples[0].Point, pt)
	for i, s := range samples[1:] {
		if d := distance(s.Point, pt); d < bestD {
			best, bestD = i+1, d
		}
	}

	t := samples[best].T
	// The bracket is [t-w, t+w].
	w := 1 / float64(len(samples)-1)
	for range maxProjectIterations {
		if w < 1e-15 {
			break
		}
		center := t
		for _, c := range [2]float64{center - w/2, center + w/2} {
			c = min(max(c, 0), 1)
			if d := distance(evalPoints(b.points, c), pt); d < bestD {
				t, bestD = c, d
			}
		}
		w /= 2
	}
	p := evalPoints(b.points, t)
	return Projection{T: t, Point: p, Distance: bestD}
}
