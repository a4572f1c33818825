package text

import (
	stderrors "errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/hubastard/canopy/engine/errors"
	"github.com/hubastard/canopy/engine/geom"
	"github.com/hubastard/canopy/engine/paint"
)

type glyphKey struct {
	r  rune
	px int
}

// glyph metrics are in device pixels relative to the pen on the baseline.
type glyph struct {
	left, top int // top is negative above the baseline
	w, h      int
	hnd       paint.Handle
}

func (g glyph) empty() bool { return g.w == 0 || g.h == 0 }

type sizedFace struct {
	face    font.Face
	ascent  float64
	lineH   float64
	spaceAd fixed.Int26_6
}

// Font is an opentype Service. Faces are built per pixel size on demand and
// glyph masks are rasterised into the painter's atlas on first use.
type Font struct {
	otf    *opentype.Font
	scale  float64
	faces  map[int]*sizedFace
	glyphs map[glyphKey]glyph
}

// New parses TTF or OTF data.
func New(data []byte) (*Font, error) {
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Font{
		otf:    otf,
		scale:  1,
		faces:  map[int]*sizedFace{},
		glyphs: map[glyphKey]glyph{},
	}, nil
}

// Default is Go Regular.
func Default() (*Font, error) { return New(goregular.TTF) }

// Load reads a font file, or returns Default for an empty path.
func Load(path string) (*Font, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap("text.Load", errors.KindInit, fmt.Errorf("read font: %w", err))
	}
	return New(data)
}

func (f *Font) SetScale(dpToPx float64) {
	if dpToPx > 0 {
		f.scale = dpToPx
	}
}

func (f *Font) px(dp float64) int { return max(1, int(math.Round(dp*f.scale))) }

func (f *Font) face(px int) (*sizedFace, error) {
	if sf, ok := f.faces[px]; ok {
		return sf, nil
	}
	face, err := opentype.NewFace(f.otf, &opentype.FaceOptions{
		Size: float64(px), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	m := face.Metrics()
	sp, _ := face.GlyphAdvance(' ')
	sf := &sizedFace{
		face:    face,
		ascent:  float64(m.Ascent.Round()),
		lineH:   float64(m.Height.Round()),
		spaceAd: sp,
	}
	f.faces[px] = sf
	return sf, nil
}

func (sf *sizedFace) advance(r rune) fixed.Int26_6 {
	if a, ok := sf.face.GlyphAdvance(r); ok {
		return a
	}
	return sf.spaceAd
}

func (f *Font) Measure(s string, dp float64) (geom.GblSz, error) {
	sf, err := f.face(f.px(dp))
	if err != nil {
		return geom.GblSz{}, err
	}
	lines := strings.Split(norm.NFC.String(s), "\n")
	var w fixed.Int26_6
	for _, line := range lines {
		var lw fixed.Int26_6
		prev := rune(-1)
		for _, r := range line {
			if prev >= 0 {
				lw += sf.face.Kern(prev, r)
			}
			lw += sf.advance(r)
			prev = r
		}
		w = max(w, lw)
	}
	h := sf.lineH * float64(len(lines))
	return geom.GS(float64(w.Ceil())/f.scale, h/f.scale), nil
}

func (f *Font) Draw(p *paint.Painter, s string, dp float64, l geom.GblLayer) error {
	px := f.px(dp)
	sf, err := f.face(px)
	if err != nil {
		return err
	}
	ctx := paint.NewCtx().WithZ(geom.CoerceZ[geom.Local](l.Z))
	var errs []error

	baseline := sf.ascent
	for _, line := range strings.Split(norm.NFC.String(s), "\n") {
		var pen fixed.Int26_6
		prev := rune(-1)
		for _, r := range line {
			if prev >= 0 {
				pen += sf.face.Kern(prev, r)
			}
			prev = r
			g, err := f.glyph(p, sf, px, r)
			if err != nil {
				errs = append(errs, err)
			} else if !g.empty() {
				x := float64(pen.Round() + g.left)
				y := baseline + float64(g.top)
				rect := geom.GR(x/f.scale, y/f.scale, float64(g.w)/f.scale, float64(g.h)/f.scale)
				p.Texture(ctx, p.Layer(g.hnd).WithRect(rect.AddPt(l.R.TL())))
			}
			pen += sf.advance(r)
		}
		baseline += sf.lineH
	}
	return stderrors.Join(errs...)
}

// glyph returns the cached glyph for r at px, rasterising it if needed.
// Failed allocations are not cached so a later frame can retry.
func (f *Font) glyph(p *paint.Painter, sf *sizedFace, px int, r rune) (glyph, error) {
	key := glyphKey{r, px}
	if g, ok := f.glyphs[key]; ok {
		return g, nil
	}
	dr, mask, mp, _, ok := sf.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		f.glyphs[key] = glyph{}
		return glyph{}, nil
	}
	g := glyph{left: dr.Min.X, top: dr.Min.Y, w: dr.Dx(), h: dr.Dy()}
	if g.empty() {
		f.glyphs[key] = g
		return g, nil
	}
	hnd, err := p.Alloc(geom.TS(uint32(g.w), uint32(g.h)))
	if err != nil {
		return glyph{}, fmt.Errorf("glyph %q at %dpx: %w", r, px, err)
	}
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			_, _, _, a := mask.At(mp.X+x, mp.Y+y).RGBA()
			p.WritePixel(hnd, geom.TP(uint32(x), uint32(y)), color.RGBA{255, 255, 255, uint8(a >> 8)})
		}
	}
	g.hnd = hnd
	f.glyphs[key] = g
	return g, nil
}
