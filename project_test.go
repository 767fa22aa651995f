package bezier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProject(t *testing.T) {
	b := straightCubic()
	tests := []struct {
		pt   Point
		want Projection
	}{
		{Pt(30, 50), Projection{T: 0.4, Point: Pt(30, 20), Distance: 30}},
		{Pt(-100, 0), Projection{T: 0, Point: Pt(-50, 20), Distance: distance(Pt(-100, 0), Pt(-50, 20))}},
		{Pt(200, 20), Projection{T: 1, Point: Pt(150, 20), Distance: 50}},
		{Pt(12.345, 20), Projection{T: 0.311725, Point: Pt(12.345, 20), Distance: 0}},
	}
	for _, tt := range tests {
		got := b.Project(tt.pt)
		assert.InDelta(t, tt.want.T, got.T, 1e-6, "%v", tt.pt)
		assert.InDelta(t, tt.want.Distance, got.Distance, 1e-6, "%v", tt.pt)
		diff(t, tt.want.Point, got.Point, approxPoint(1e-4))
	}
}

func TestProjectArch(t *testing.T) {
	arch := sampleCurves()["arch"]
	got := arch.Project(Pt(50, 200))
	assert.InDelta(t, 0.5, got.T, 1e-6)
	assert.InDelta(t, 125, got.Distance, 1e-6)

	for _, ts := range []float64{0.1, 0.3, 0.77} {
		got := arch.Project(arch.Eval(ts))
		assert.InDelta(t, ts, got.T, 1e-6)
		assert.InDelta(t, 0, got.Distance, 1e-6)
	}
}

func TestProjectIsClosest(t *testing.T) {
	for name, b := range sampleCurves() {
		for _, pt := range []Point{Pt(10, 10), Pt(-20, 60), Pt(120, -30)} {
			got := b.Project(pt)
			for i := range 1001 {
				if d := distance(b.Eval(float64(i)/1000), pt); d < got.Distance-1e-9 {
					t.Errorf("%s: sample at %g is closer to %v than the projection %v", name, float64(i)/1000, pt, got)
					break
				}
			}
		}
	}
}
