package bezier

import (
	"slices"

	"seehuhn.de/go/geom/rect"
)

// Extrema returns, per axis, the parameters in [0, 1] at which the
// derivative of that coordinate vanishes. Both slices are sorted.
//
// An axis along which the curve is constant has no extrema.
func (b *Bezier) Extrema() (x, y []float64) {
	xs := make([]float64, len(b.dpoints))
	ys := make([]float64, len(b.dpoints))
	for i, d := range b.dpoints {
		xs[i] = d.X
		ys[i] = d.Y
	}
	return axisExtrema(xs), axisExtrema(ys)
}

// allExtrema returns the extrema of both axes, merged and deduplicated.
func (b *Bezier) allExtrema() []float64 {
	x, y := b.Extrema()
	out := append(x, y...)
	slices.Sort(out)
	return slices.Compact(out)
}

// axisExtrema finds the roots in [0, 1] of the Bézier polynomial with the
// given coefficients, which are one coordinate of a hodograph.
func axisExtrema(d []float64) []float64 {
	var c0, c1, c2 float64
	switch len(d) {
	case 2:
		c0 = d[0]
		c1 = d[1] - d[0]
	case 3:
		c0 = d[0]
		c1 = 2 * (d[1] - d[0])
		c2 = d[0] - 2*d[1] + d[2]
	default:
		return nil
	}
	if c0 == 0 && c1 == 0 && c2 == 0 {
		return nil
	}
	roots, n := SolveCubic(c0, c1, c2, 0)
	var out []float64
	for _, t := range roots[:n] {
		if t >= 0 && t <= 1 {
			out = append(out, t)
		}
	}
	return slices.Compact(out)
}

// BoundingBox returns the smallest axis-aligned rectangle that encloses the
// curve.
func (b *Bezier) BoundingBox() rect.Rect {
	p0 := b.Start()
	bbox := rect.Rect{LLx: p0.X, LLy: p0.Y, URx: p0.X, URy: p0.Y}
	add := func(p Point) {
		bbox.LLx = min(bbox.LLx, p.X)
		bbox.LLy = min(bbox.LLy, p.Y)
		bbox.URx = max(bbox.URx, p.X)
		bbox.URy = max(bbox.URy, p.Y)
	}
	add(b.End())
	for _, t := range b.allExtrema() {
		add(evalPoints(b.points, t))
	}
	return bbox
}

// bboxOverlap reports whether two rectangles overlap. Rectangles that only
// touch count as overlapping.
func bboxOverlap(a, b rect.Rect) bool {
	return a.LLx <= b.URx && b.LLx <= a.URx &&
		a.LLy <= b.URy && b.LLy <= a.URy
}
