package geom

import (
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestConcatInverseIsIdentity(t *testing.T) {
	tests := map[string]PrtTf{
		"zero":     {},
		"positive": {Off: PrtPt{10, 15}, ZOff: 3},
		"negative": {Off: PrtPt{-7.5, 2.25}, ZOff: -1000},
	}
	for name, tf := range tests {
		t.Run(name, func(t *testing.T) {
			id := Concat(tf, tf.Inv())
			if !near(id.Off.X, 0) || !near(id.Off.Y, 0) || id.ZOff != 0 {
				t.Fatalf("Concat(tf, tf.Inv()) = %+v, want identity", id)
			}
			p := LP(3, 4)
			if got := id.Pt(p); !near(got.X, p.X) || !near(got.Y, p.Y) {
				t.Errorf("identity moved %v to %v", p, got)
			}
		})
	}
}

func TestConcatIsAssociative(t *testing.T) {
	a := Tf[Local, Parent]{Off: PrtPt{1, 2}, ZOff: 1}
	b := Tf[Parent, Any]{Off: Pt[float64, Any]{30, -4}, ZOff: 1000}
	c := Tf[Any, Global]{Off: GP(-5, 8), ZOff: 7}

	left := Concat(Concat(a, b), c)
	right := Concat(a, Concat(b, c))
	if left != right {
		t.Fatalf("(a.b).c = %+v, a.(b.c) = %+v", left, right)
	}
	if want := (GblTf{Off: GP(26, 6), ZOff: 1008}); left != want {
		t.Errorf("got %+v, want %+v", left, want)
	}
}

func TestTfLayerKeepsSize(t *testing.T) {
	tf := GblTf{Off: GP(100, 50), ZOff: 2000}
	got := tf.Layer(L(LR(1, 2, 30, 40), LZ(1)))
	want := G(GR(101, 52, 30, 40), GZ(2001))
	if got != want {
		t.Errorf("Layer = %+v, want %+v", got, want)
	}
	if back := tf.Inv().Layer(got); back != L(LR(1, 2, 30, 40), LZ(1)) {
		t.Errorf("round trip = %+v", back)
	}
}

func TestTfPath(t *testing.T) {
	var p Path
	p.MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10).Close()
	got := GblTf{Off: GP(5, 6)}.Path(p)
	if len(got.Contours) != 1 || !got.Contours[0].Closed {
		t.Fatalf("contours = %+v", got.Contours)
	}
	if last := got.Contours[0].Pts[2]; last.X != 15 || last.Y != 16 {
		t.Errorf("last vertex = %v, want (15,16)", last)
	}
	if p.Contours[0].Pts[2].X != 10 {
		t.Error("source path was modified")
	}
}

func TestRectInset(t *testing.T) {
	tests := map[string]struct {
		r    LclRect
		d    LclSz
		want LclRect
	}{
		"shrink":  {LR(0, 0, 100, 50), LS(10, 5), LR(10, 5, 80, 40)},
		"grow":    {LR(20, 20, 100, 50), LS(-16, -16), LR(4, 4, 132, 82)},
		"clamped": {LR(0, 0, 10, 10), LS(20, 20), LR(5, 5, 0, 0)},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.r.Inset(tt.d); got != tt.want {
				t.Errorf("Inset(%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestRectContainsIsInclusive(t *testing.T) {
	r := GR(10, 10, 20, 20)
	tests := map[string]struct {
		p    GblPt
		want bool
	}{
		"inside":       {GP(15, 15), true},
		"top left":     {GP(10, 10), true},
		"bottom right": {GP(30, 30), true},
		"left of":      {GP(9.99, 15), false},
		"below":        {GP(15, 30.01), false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestCoerceOnlyRelabels(t *testing.T) {
	l := L(LR(1, 2, 3, 4), LZ(5))
	g := CoerceLayer[Global](l)
	if g.R.X != 1 || g.R.H != 4 || g.Z != 5 {
		t.Errorf("CoerceLayer changed values: %+v", g)
	}
	if f := RectF64(TR(1, 2, 3, 4)); f != (TexUV{1, 2, 3, 4}) {
		t.Errorf("RectF64 = %v", f)
	}
}
