package paint

import (
	"image/color"
	"testing"

	"github.com/hubastard/canopy/engine/errors"
	"github.com/hubastard/canopy/engine/geom"
)

func TestPackerRows(t *testing.T) {
	p := NewPacker(geom.TS(5, 6))
	steps := []struct {
		sz   geom.TexSz
		want geom.TexRect
		ok   bool
	}{
		{geom.TS(1, 1), geom.TR(0, 0, 1, 1), true},
		{geom.TS(1, 1), geom.TR(1, 0, 1, 1), true},
		{geom.TS(2, 2), geom.TR(2, 0, 2, 2), true},
		{geom.TS(2, 2), geom.TR(0, 2, 2, 2), true},
		{geom.TS(1, 3), geom.TR(2, 2, 1, 3), true},
		{geom.TS(2, 1), geom.TR(3, 2, 2, 1), true},
		{geom.TS(1, 1), geom.TR(0, 5, 1, 1), true},
		{geom.TS(1, 2), geom.TexRect{}, false},
		{geom.TS(5, 1), geom.TexRect{}, false},
	}
	for i, s := range steps {
		got, ok := p.Pack(s.sz)
		if ok != s.ok || got != s.want {
			t.Fatalf("step %d: Pack(%v) = %v, %v; want %v, %v", i, s.sz, got, ok, s.want, s.ok)
		}
	}
}

func TestPackerRejectsOversize(t *testing.T) {
	tests := map[string]geom.TexSz{
		"too wide":  geom.TS(6, 1),
		"too tall":  geom.TS(1, 7),
		"both":      geom.TS(9, 9),
		"zero high": geom.TS(6, 0),
	}
	for name, sz := range tests {
		t.Run(name, func(t *testing.T) {
			p := NewPacker(geom.TS(5, 6))
			if r, ok := p.Pack(sz); ok {
				t.Fatalf("Pack(%v) = %v, want rejection", sz, r)
			}
			// A rejected request leaves the bin untouched.
			if r, ok := p.Pack(geom.TS(5, 6)); !ok || r != geom.TR(0, 0, 5, 6) {
				t.Errorf("full-size Pack after rejection = %v, %v", r, ok)
			}
		})
	}
}

func TestPackerNoOverlap(t *testing.T) {
	bin := geom.TS(64, 64)
	p := NewPacker(bin)
	var placed []geom.TexRect
	for i := 0; ; i++ {
		sz := geom.TS(uint32(1+i%7), uint32(1+i%5))
		r, ok := p.Pack(sz)
		if !ok {
			break
		}
		if r.Size() != sz || r.Right() > bin.W || r.Bottom() > bin.H {
			t.Fatalf("rect %v for %v escapes the bin", r, sz)
		}
		for _, o := range placed {
			if r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom() {
				t.Fatalf("%v overlaps %v", r, o)
			}
		}
		placed = append(placed, r)
	}
	if len(placed) == 0 {
		t.Fatal("nothing packed")
	}
	// Exhaustion is deterministic: once full, the same request keeps failing.
	if _, ok := p.Pack(geom.TS(64, 64)); ok {
		t.Error("full bin accepted a full-size rect")
	}
}

func TestAtlasAlloc(t *testing.T) {
	p := newPainter(geom.TS(8, 8))

	if _, err := p.Alloc(geom.TS(0, 3)); !errors.Is(err, errors.KindResource) {
		t.Errorf("empty alloc err = %v, want resource error", err)
	}

	// Wider than the atlas even before padding.
	if _, err := p.Alloc(geom.TS(20, 2)); !errors.Is(err, errors.KindResource) {
		t.Errorf("oversize alloc err = %v, want resource error", err)
	}

	h, err := p.Alloc(geom.TS(2, 2))
	if err != nil {
		t.Fatal(err)
	}
	red := color.RGBA{255, 0, 0, 255}
	p.WritePixel(h, geom.TP(1, 0), red)
	tex := p.Textures()[0]
	if got := tex.Img.RGBAAt(2, 1); got != red {
		t.Errorf("pixel at padded (2,1) = %v, want red", got)
	}
	if !tex.Dirty {
		t.Error("write did not mark texture dirty")
	}

	l := p.Layer(h)
	if want := geom.UV(1.0/8, 1.0/8, 2.0/8, 2.0/8); l.UV != want {
		t.Errorf("uv = %v, want %v", l.UV, want)
	}

	// 4x4 padded regions: one more fits beside, then the bin is out of rows.
	if _, err := p.Alloc(geom.TS(2, 2)); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Alloc(geom.TS(6, 6)); !errors.Is(err, errors.KindResource) {
		t.Errorf("oversized alloc err = %v, want resource error", err)
	}
	if _, err := p.Alloc(geom.TS(2, 2)); err != nil {
		t.Errorf("atlas unusable after a failed alloc: %v", err)
	}
}

func TestSortedOpsStableByZ(t *testing.T) {
	p := New()
	base := NewCtx()
	p.FillRect(base.WithZ(5), geom.LR(0, 0, 1, 1))
	p.FillRect(base, geom.LR(1, 0, 1, 1))
	p.FillRect(base.WithTf(geom.GblTf{ZOff: 5}), geom.LR(2, 0, 1, 1))
	p.FillRect(base, geom.LR(3, 0, 1, 1))

	got := p.SortedOps()
	order := make([]float64, len(got))
	for i, op := range got {
		order[i] = op.Rect.X
	}
	want := []float64{1, 3, 0, 2}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}

	p.SetCursor(CursorGrab)
	p.Begin()
	if len(p.Ops()) != 0 || p.Cursor() != CursorDefault {
		t.Error("Begin did not reset the frame")
	}
}
