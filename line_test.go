package bezier

import (
	"math"
	"testing"
)

func TestLineLength(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}
	if got, want := l.Length(), math.Sqrt(2.0); !within(got, want, 1e-12) {
		t.Errorf("got %g, want %g", got, want)
	}
	diff(t, Pt(0.25, 0.25), l.Eval(0.25), approxPoint(1e-12))
}

func TestLineAlignmentTransform(t *testing.T) {
	lines := []Line{
		{Pt(1, 1), Pt(4, 5)},
		{Pt(0, 0), Pt(-3, 0)},
		{Pt(10, -2), Pt(10, -7)},
	}
	for _, l := range lines {
		a := l.AlignmentTransform()
		diff(t, Pt(0, 0), a.Apply(l.P0), approxPoint(1e-12))
		diff(t, Pt(l.Length(), 0), a.Apply(l.P1), approxPoint(1e-12))
		// Rigid transforms preserve distances.
		p, q := Pt(3, -8), Pt(-1, 2)
		if got, want := distance(a.Apply(p), a.Apply(q)), distance(p, q); !within(got, want, 1e-12) {
			t.Errorf("%v: distance changed from %g to %g", l, want, got)
		}
	}
}

func TestLineContains(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 0)}
	tests := []struct {
		pt   Point
		want bool
	}{
		{Pt(5, 0), true},
		{Pt(0, 0), true},
		{Pt(10, 0), true},
		{Pt(5, 1e-8), true},
		{Pt(5, 0.1), false},
		{Pt(10.1, 0), false},
		{Pt(-0.1, 0), false},
	}
	for _, tt := range tests {
		if got := l.Contains(tt.pt, 1e-6); got != tt.want {
			t.Errorf("Contains(%v) = %t, want %t", tt.pt, got, tt.want)
		}
	}

	point := Line{Pt(1, 1), Pt(1, 1)}
	if !point.Contains(Pt(1, 1), 1e-6) || point.Contains(Pt(1, 2), 1e-6) {
		t.Error("degenerate line contains the wrong points")
	}
}

func TestLineCrossingPoint(t *testing.T) {
	p, ok := LineIntersection(Pt(0, 0), Pt(1, 1), Pt(0, 1), Pt(1, 0))
	if !ok {
		t.Fatal("expected lines to cross")
	}
	diff(t, Pt(0.5, 0.5), p, approxPoint(1e-12))

	// The lines are extended to infinity.
	p, ok = Line{Pt(0, 0), Pt(1, 0)}.CrossingPoint(Line{Pt(5, 5), Pt(5, 6)})
	if !ok {
		t.Fatal("expected lines to cross")
	}
	diff(t, Pt(5, 0), p, approxPoint(1e-12))

	if _, ok := LineIntersection(Pt(0, 0), Pt(1, 1), Pt(0, 1), Pt(1, 2)); ok {
		t.Error("parallel lines crossed")
	}
}
