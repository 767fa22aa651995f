// Package bezier implements quadratic and cubic Bézier curves and the
// geometric queries commonly needed when working with them: evaluation,
// derivatives, curvature, subdivision, arc length, bounding boxes,
// intersections, projection, arc approximation and offsetting.
//
// # Curves
//
// A [Bezier] is constructed from 3 or 4 control points with [New], [NewQuad]
// or [NewCubic]. Curves are parametrized over t ∈ [0, 1]. Operations that
// take a parameter panic with a [*RangeError] (wrapping [ErrOutOfRange]) when
// it lies outside of that interval, as that is always a bug in the caller.
//
// Every curve caches its hodograph (the control points of its derivative),
// its arc length, a memo of partial arc lengths and a lookup table mapping
// arc lengths back to parameters. Changing the control points with
// [Bezier.SetControlPoints] or [Bezier.SetControlPoint] brings all of these
// back in line.
//
// # Arc length
//
// Arc lengths are computed with 24-point Legendre-Gauss quadrature. The
// inverse mapping, from arc length to parameter (see [Bezier.TAtLength] and
// [Bezier.AdvanceAtTWithLength]), interpolates linearly in the lookup table,
// whose resolution can be changed with [Bezier.SetLUTResolution].
//
// # Intersections
//
// Intersections with lines ([Bezier.IntersectLine]) are computed by solving
// the cubic equation ([SolveCubic]) of the curve aligned to the line.
// Intersections between curves ([Bezier.Intersections],
// [Bezier.SelfIntersections]) are found by recursive subdivision and are
// accurate to within the threshold set in [IntersectOpts]. Intersections
// with circles ([Bezier.IntersectCircle]) are found by sampling and local
// refinement.
//
// # Coordinate system
//
// The package does not assume a direction for the y axis. Normals are the
// tangent rotated by 90° from the x towards the y axis, that is ⟨-dy, dx⟩.
// Offsetting a curve by a positive distance moves it in the direction of its
// normal.
package bezier
