package scene

import (
	"math"
	"testing"

	"github.com/hubastard/canopy/engine/geom"
)

func near(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-5 }

func TestScreenProject(t *testing.T) {
	s := NewScreen(geom.GS(800, 600))
	tests := map[string]struct {
		p    geom.GblPt
		x, y float32
	}{
		"top left":     {geom.GP(0, 0), -1, 1},
		"bottom right": {geom.GP(800, 600), 1, -1},
		"centre":       {geom.GP(400, 300), 0, 0},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			x, y := s.Project(tt.p)
			if !near(x, tt.x) || !near(y, tt.y) {
				t.Errorf("Project(%v) = (%v,%v), want (%v,%v)", tt.p, x, y, tt.x, tt.y)
			}
		})
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(geom.GS(100, 100))
	s.SetSize(geom.GS(200, 50))
	if x, y := s.Project(geom.GP(200, 50)); !near(x, 1) || !near(y, -1) {
		t.Errorf("after resize corner = (%v,%v)", x, y)
	}
	if s.Size() != geom.GS(200, 50) {
		t.Errorf("Size = %v", s.Size())
	}

	// A zero size must not divide by zero.
	s.SetSize(geom.GS(0, 0))
	if x, _ := s.Project(geom.GP(0, 0)); !near(x, -1) {
		t.Errorf("zero size left edge = %v", x)
	}
}
