package bezier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitArc(t *testing.T) {
	center, r, ok := FitArc(Pt(2, 1), Pt(0, 1), Pt(1, 2))
	require.True(t, ok)
	diff(t, Pt(1, 1), center, approxPoint(1e-12))
	assert.InDelta(t, 1, r, 1e-12)

	s, c := math.Sincos(0.3)
	center, r, ok = FitArc(Pt(10+5*c, -3+5*s), Pt(5, -3), Pt(10, 2))
	require.True(t, ok)
	diff(t, Pt(10, -3), center, approxPoint(1e-9))
	assert.InDelta(t, 5, r, 1e-9)

	_, _, ok = FitArc(Pt(0, 0), Pt(2, 2), Pt(1, 1))
	assert.False(t, ok, "colinear points")
}

// checkArcs verifies that arcs tile [0, 1] and stay within tolerance of b.
func checkArcs(t *testing.T, b *Bezier, arcs []Arc, tolerance float64) {
	t.Helper()
	require.NotEmpty(t, arcs)
	assert.Equal(t, 0.0, arcs[0].StartT)
	assert.Equal(t, 1.0, arcs[len(arcs)-1].EndT)
	for i, arc := range arcs {
		if arc.EndT <= arc.StartT {
			t.Errorf("arc %d is empty: %v", i, arc)
		}
		if i > 0 && arcs[i-1].EndT != arc.StartT {
			t.Errorf("gap between arc %d and %d", i-1, i)
		}
		diff(t, b.Eval(arc.StartT), arc.Start, approxPoint(1e-9))
		diff(t, b.Eval(arc.EndT), arc.End, approxPoint(1e-9))

		const n = 8
		for j := range n + 1 {
			p := b.Eval(arc.StartT + (arc.EndT-arc.StartT)*float64(j)/n)
			var dev float64
			if arc.IsStraight() {
				l := Line{arc.Start, arc.End}
				dev = math.Abs(cross(l.P1.Sub(l.P0), p.Sub(l.P0))) / max(l.Length(), 1e-12)
			} else {
				dev = math.Abs(distance(p, arc.Center) - arc.Radius)
			}
			if dev > tolerance {
				t.Errorf("arc %d deviates by %g from the curve", i, dev)
			}
		}
	}
}

func TestFindArcs(t *testing.T) {
	for name, b := range sampleCurves() {
		t.Run(name, func(t *testing.T) {
			const threshold = 0.5
			arcs := b.FindArcs(threshold)
			checkArcs(t, b, arcs, 1.5*threshold)
		})
	}
}

func TestFindArcsFinerThreshold(t *testing.T) {
	b := sampleCurves()["cubic"]
	coarse := b.FindArcs(1)
	fine := b.FindArcs(0.01)
	checkArcs(t, b, fine, 0.015)
	assert.Greater(t, len(fine), len(coarse))
}

func TestFindArcsStraight(t *testing.T) {
	b := NewQuad(Pt(0, 0), Pt(50, 0), Pt(100, 0))
	arcs := b.FindArcs(0.5)
	require.Len(t, arcs, 1)
	assert.True(t, arcs[0].IsStraight())
	diff(t, Pt(0, 0), arcs[0].Start)
	diff(t, Pt(100, 0), arcs[0].End)
}

func TestFindArcStartingAt(t *testing.T) {
	arch := sampleCurves()["arch"]
	arc, ok := arch.FindArcStartingAt(0.5, 0.5)
	require.True(t, ok)
	assert.Equal(t, 0.5, arc.StartT)
	assert.Greater(t, arc.EndT, 0.5)
	diff(t, Pt(50, 75), arc.Start, approxPoint(1e-9))

	// A circular arc approximated by a cubic fits in one piece.
	const k = 0.5522847498
	quarter := NewCubic(Pt(10, 0), Pt(10, 10*k), Pt(10*k, 10), Pt(0, 10))
	arc, ok = quarter.FindArcStartingAt(0.01, 0)
	require.True(t, ok)
	assert.Equal(t, 1.0, arc.EndT)
	diff(t, Pt(0, 0), arc.Center, approxPoint(0.01))
	assert.InDelta(t, 10, arc.Radius, 0.01)

	expectPanic(t, ErrOutOfRange, func() { arch.FindArcStartingAt(0.5, -1) })
}
