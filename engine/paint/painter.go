// Package paint records drawing operations for a frame. Ops are kept in
// program order and sorted by global z only when a backend asks for them.
package paint

import (
	"cmp"
	"image/color"
	"slices"

	"github.com/hubastard/canopy/engine/geom"
)

// Painter collects the ops of one frame and owns the texture atlas.
type Painter struct {
	ops    []Op
	cursor Cursor
	ts     texStore
	atlas  *Atlas
}

func New() *Painter {
	return newPainter(geom.TS(atlasSize, atlasSize))
}

func newPainter(atlas geom.TexSz) *Painter {
	p := &Painter{}
	p.atlas = newAtlas(&p.ts, atlas)
	return p
}

// Begin drops last frame's ops and resets the cursor. Textures are kept.
func (p *Painter) Begin() {
	p.ops = p.ops[:0]
	p.cursor = CursorDefault
}

// Ops returns the recorded ops in program order.
func (p *Painter) Ops() []Op { return p.ops }

// SortedOps returns the ops ordered by global z. Ops with equal z keep their
// program order, so later draws land on top.
func (p *Painter) SortedOps() []Op {
	out := slices.Clone(p.ops)
	slices.SortStableFunc(out, func(a, b Op) int {
		return cmp.Compare(a.Ctx.GlobalZ(), b.Ctx.GlobalZ())
	})
	return out
}

func (p *Painter) push(op Op) { p.ops = append(p.ops, op) }

func (p *Painter) FillPath(ctx Ctx, path geom.Path) {
	p.push(Op{Kind: OpFillPath, Ctx: ctx, Path: path})
}

func (p *Painter) FillCircle(ctx Ctx, center geom.LclPt, radius float64) {
	p.push(Op{Kind: OpFillCircle, Ctx: ctx, Center: center, Radius: radius})
}

func (p *Painter) FillPoly(ctx Ctx, pts []geom.LclPt) {
	p.push(Op{Kind: OpFillPoly, Ctx: ctx, Pts: pts, Closed: true})
}

func (p *Painter) FillQuad(ctx Ctx, v [4]geom.LclPt) {
	p.push(Op{Kind: OpFillQuad, Ctx: ctx, Pts: v[:], Closed: true})
}

func (p *Painter) FillRect(ctx Ctx, r geom.LclRect) {
	p.push(Op{Kind: OpFillRect, Ctx: ctx, Rect: r})
}

func (p *Painter) FillRRect(ctx Ctx, r geom.LclRect, radius float64) {
	p.push(Op{Kind: OpFillRRect, Ctx: ctx, Rect: r, Radius: radius})
}

func (p *Painter) StrokeLine(ctx Ctx, st, en geom.LclPt) {
	p.push(Op{Kind: OpStrokeLine, Ctx: ctx, Pts: []geom.LclPt{st, en}})
}

func (p *Painter) StrokePath(ctx Ctx, path geom.Path) {
	p.push(Op{Kind: OpStrokePath, Ctx: ctx, Path: path})
}

func (p *Painter) StrokeCircle(ctx Ctx, center geom.LclPt, radius float64) {
	p.push(Op{Kind: OpStrokeCircle, Ctx: ctx, Center: center, Radius: radius})
}

// StrokeEllipse outlines an ellipse rotated by rot radians.
func (p *Painter) StrokeEllipse(ctx Ctx, center geom.LclPt, radii geom.LclSz, rot float64) {
	p.push(Op{Kind: OpStrokeEllipse, Ctx: ctx, Center: center, Radii: radii, Rot: rot})
}

func (p *Painter) StrokePoly(ctx Ctx, pts []geom.LclPt) {
	p.push(Op{Kind: OpStrokePoly, Ctx: ctx, Pts: pts, Closed: true})
}

func (p *Painter) StrokeQuad(ctx Ctx, v [4]geom.LclPt) {
	p.push(Op{Kind: OpStrokeQuad, Ctx: ctx, Pts: v[:], Closed: true})
}

func (p *Painter) StrokeRect(ctx Ctx, r geom.LclRect) {
	p.push(Op{Kind: OpStrokeRect, Ctx: ctx, Rect: r})
}

func (p *Painter) StrokeRRect(ctx Ctx, r geom.LclRect, radius float64) {
	p.push(Op{Kind: OpStrokeRRect, Ctx: ctx, Rect: r, Radius: radius})
}

func (p *Painter) StrokeTri(ctx Ctx, v [3]geom.LclPt) {
	p.push(Op{Kind: OpStrokeTri, Ctx: ctx, Pts: v[:], Closed: true})
}

// Texture draws tex.R (already in global space) sampling tex.UV.
func (p *Painter) Texture(ctx Ctx, tex TexLayer) {
	p.push(Op{Kind: OpTexture, Ctx: ctx, Tex: tex})
}

func (p *Painter) SetCursor(c Cursor) { p.cursor = c }
func (p *Painter) Cursor() Cursor     { return p.cursor }

// Alloc reserves sz pixels in the atlas.
func (p *Painter) Alloc(sz geom.TexSz) (Handle, error) { return p.atlas.Alloc(sz) }

// WritePixel sets one pixel of an allocated region; pt is relative to it.
func (p *Painter) WritePixel(h Handle, pt geom.TexPt, c color.RGBA) {
	p.atlas.writePixel(&p.ts, h, pt, c)
}

// Layer returns the texture layer of h with an empty screen rect.
func (p *Painter) Layer(h Handle) TexLayer { return p.atlas.Layer(h) }

func (p *Painter) Atlas() *Atlas { return p.atlas }

// Textures lists every texture in id order for upload.
func (p *Painter) Textures() []*Texture {
	out := make([]*Texture, 0, len(p.ts.texs))
	for _, t := range p.ts.texs {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b *Texture) int { return cmp.Compare(a.ID, b.ID) })
	return out
}
