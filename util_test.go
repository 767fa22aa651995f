package bezier

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approxPoint compares points coordinate-wise within epsilon.
func approxPoint(epsilon float64) cmp.Option {
	return cmp.Comparer(func(a, b Point) bool {
		return PointsEqual(a, b, epsilon)
	})
}

// loopCubic crosses itself at t = (7 ∓ √21) / 14, at about (50, 42.86).
func loopCubic() *Bezier {
	return NewCubic(Pt(0, 0), Pt(150, 100), Pt(-50, 100), Pt(100, 0))
}

// straightCubic traces y = 20 from x = -50 to x = 150 at uniform speed.
func straightCubic() *Bezier {
	return NewCubic(Pt(-50, 20), Pt(50.0/3.0, 20), Pt(250.0/3.0, 20), Pt(150, 20))
}

func sampleCurves() map[string]*Bezier {
	return map[string]*Bezier{
		"quad":  NewQuad(Pt(0, 0), Pt(50, 100), Pt(100, 0)),
		"cubic": NewCubic(Pt(0, 0), Pt(30, 80), Pt(70, -40), Pt(100, 20)),
		"loop":  loopCubic(),
		"arch":  NewCubic(Pt(0, 0), Pt(0, 100), Pt(100, 100), Pt(100, 0)),
	}
}

func expectPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Errorf("expected panic")
			return
		}
		err, ok := r.(error)
		if !ok {
			t.Errorf("got panic value %v of type %T, want error", r, r)
			return
		}
		if !errors.Is(err, target) {
			t.Errorf("got error %q, want %q", err, target)
		}
	}()
	fn()
}

func within(got, want, epsilon float64) bool {
	return math.Abs(got-want) <= epsilon
}
