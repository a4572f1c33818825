package text

import (
	"math"
	"testing"

	"github.com/hubastard/canopy/engine/geom"
	"github.com/hubastard/canopy/engine/paint"
)

func defaultFont(t *testing.T) *Font {
	t.Helper()
	f, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	return f
}

func TestMeasure(t *testing.T) {
	f := defaultFont(t)
	one, err := f.Measure("Hello", 12)
	if err != nil {
		t.Fatal(err)
	}
	if one.W <= 0 || one.H <= 0 {
		t.Fatalf("Measure(Hello) = %v", one)
	}
	two, _ := f.Measure("Hello\nHello", 12)
	if two.W != one.W || two.H != 2*one.H {
		t.Errorf("two lines = %v, one line = %v", two, one)
	}
	empty, _ := f.Measure("", 12)
	if empty.W != 0 || empty.H != one.H {
		t.Errorf("empty = %v", empty)
	}
	big, _ := f.Measure("Hello", 24)
	if big.W <= one.W {
		t.Errorf("24dp (%v) not wider than 12dp (%v)", big, one)
	}
}

func TestMeasureIsInLogicalUnits(t *testing.T) {
	f := defaultFont(t)
	lo, _ := f.Measure("Scale me", 12)
	f.SetScale(2)
	hi, _ := f.Measure("Scale me", 12)
	if math.Abs(hi.W-lo.W) > lo.W*0.15 {
		t.Errorf("width at 2x = %v, at 1x = %v", hi.W, lo.W)
	}
}

func TestMeasureNormalises(t *testing.T) {
	f := defaultFont(t)
	composed, _ := f.Measure("caf\u00e9", 12)
	decomposed, _ := f.Measure("cafe\u0301", 12)
	if composed != decomposed {
		t.Errorf("composed %v != decomposed %v", composed, decomposed)
	}
}

func TestDrawCachesGlyphs(t *testing.T) {
	f := defaultFont(t)
	p := paint.New()
	l := geom.G(geom.GR(10, 20, 100, 20), geom.GZ(7))

	if err := f.Draw(p, "Hi you", 12, l); err != nil {
		t.Fatal(err)
	}
	ops := p.Ops()
	if len(ops) != 5 {
		t.Fatalf("ops = %d, want one per visible glyph (5)", len(ops))
	}
	prevX := 0.0
	for i, op := range ops {
		if op.Kind != paint.OpTexture {
			t.Fatalf("op %d kind = %v", i, op.Kind)
		}
		if op.Ctx.GlobalZ() != 7 {
			t.Errorf("op %d z = %d, want 7", i, op.Ctx.GlobalZ())
		}
		if op.Tex.R.X < 10 || op.Tex.R.Y < 20 || op.Tex.R.X <= prevX {
			t.Errorf("op %d rect %v out of place", i, op.Tex.R)
		}
		prevX = op.Tex.R.X
	}

	cached := len(f.glyphs)
	usage := p.Atlas().Usage()
	p.Begin()
	if err := f.Draw(p, "you Hi", 12, l); err != nil {
		t.Fatal(err)
	}
	if len(f.glyphs) != cached || p.Atlas().Usage() != usage {
		t.Error("redrawing the same runes allocated again")
	}
}
