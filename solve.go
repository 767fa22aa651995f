package bezier

import (
	"math"
	"sort"
)

// degenerateRatio is the relative size below which the leading coefficient
// of a polynomial is treated as zero.
const degenerateRatio = 1e-12

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0.0
//
// If the equation is nearly linear, it will return the root ignoring the
// quadratic term. In the degenerate case where all coefficients are zero, so
// that all values of x satisfy the equation, a single 0.0 is returned.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	if math.Abs(c2) <= degenerateRatio*(math.Abs(c0)+math.Abs(c1)) {
		c2 = 0
	}
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) || math.IsNaN(sc0) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if !math.IsInf(root, 0) && !math.IsNaN(root) {
			return [2]float64{root}, 1
		} else if c0 == 0.0 && c1 == 0.0 {
			// Degenerate case
			return [2]float64{0}, 1
		} else {
			return [2]float64{}, 0
		}
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// Likely, calculation of sc1 * sc1 overflowed. Find one root
		// using sc1 x + x² = 0, other root as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if !math.IsInf(root2, 0) && !math.IsNaN(root2) {
		if root2 > root1 {
			return [2]float64{root1, root2}, 2
		} else {
			return [2]float64{root2, root1}, 2
		}
	} else {
		return [2]float64{root1}, 1
	}
}

// SolveCubic finds real roots of cubic equations.
//
// Returns values of x for which c0 + c1 x + c2 x² + c3 x³ = 0.0, in
// increasing order. The second return value states how many roots were
// found.
//
// If c3 is zero, or negligible compared to the other coefficients, the
// quadratic equation is solved instead. Otherwise the cubic is reduced to
// the depressed form t³ + pt + q = 0 and solved trigonometrically when it
// has three distinct real roots, and with Cardano's formula otherwise.
func SolveCubic(c0, c1, c2, c3 float64) ([3]float64, int) {
	if math.Abs(c3) <= degenerateRatio*(math.Abs(c0)+math.Abs(c1)+math.Abs(c2)) {
		roots, n := SolveQuadratic(c0, c1, c2)
		return [3]float64{roots[0], roots[1]}, n
	}
	a := c2 / c3
	b := c1 / c3
	c := c0 / c3

	p := (3*b - a*a) / 3
	q := (2*a*a*a - 9*a*b + 27*c) / 27
	q2 := q / 2
	shift := a / 3
	disc := q2*q2 + p*p*p/27

	var out [3]float64
	var n int
	switch {
	case disc < 0:
		mp3 := -p / 3
		r := math.Sqrt(mp3 * mp3 * mp3)
		cosphi := min(max(-q/(2*r), -1), 1)
		phi := math.Acos(cosphi)
		t1 := 2 * math.Cbrt(r)
		out = [3]float64{
			t1*math.Cos(phi/3) - shift,
			t1*math.Cos((phi+2*math.Pi)/3) - shift,
			t1*math.Cos((phi+4*math.Pi)/3) - shift,
		}
		n = 3
	case disc == 0:
		u1 := math.Cbrt(-q2)
		if u1 == 0 {
			out[0] = -shift
			n = 1
		} else {
			out[0] = 2*u1 - shift
			out[1] = -u1 - shift
			n = 2
		}
	default:
		sd := math.Sqrt(disc)
		u1 := math.Cbrt(-q2 + sd)
		v1 := math.Cbrt(q2 + sd)
		out[0] = u1 - v1 - shift
		n = 1
	}
	sort.Float64s(out[:n])
	return out, n
}

// mapRange maps v from the interval [a, b] to the interval [c, d].
func mapRange(v, a, b, c, d float64) float64 {
	return c + (v-a)*(d-c)/(b-a)
}

// Tables of Legendre-Gauss quadrature coefficients, adapted from:
// <https://pomax.github.io/bezierinfo/legendre-gauss.html>
//
// Each entry is a weight and the positive abscissa of a symmetric pair.
var gaussLegendreCoeffs24Half = [...][2]float64{
	{0.1279381953467522, 0.0640568928626056},
	{0.1258374563468283, 0.1911188674736163},
	{0.1216704729278034, 0.3150426796961634},
	{0.1155056680537256, 0.4337935076260451},
	{0.1074442701159656, 0.5454214713888396},
	{0.0976186521041139, 0.6480936519369755},
	{0.0861901615319533, 0.7401241915785544},
	{0.0733464814110803, 0.8200019859739029},
	{0.0592985849154368, 0.8864155270044011},
	{0.0442774388174198, 0.9382745520027328},
	{0.0285313886289337, 0.9747285559713095},
	{0.0123412297999872, 0.9951872199970213},
}
