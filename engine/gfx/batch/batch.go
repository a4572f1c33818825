// Package batch turns a frame's paint ops into one vertex and index buffer
// plus a list of draw calls. It has no GPU dependency; backends upload what it
// builds.
package batch

import (
	"slices"

	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/geom"
	"github.com/hubastard/canopy/engine/paint"
)

// MaxTexSlots is how many samplers one call may bind (common GL limit is 16).
const MaxTexSlots = 16

// Vertex: pos2 + color4 + uv2 + texSlot1 => 9 floats.
const (
	Stride    = 9
	PosOffset = 0
	ColOffset = 2
	UVOffset  = 6
	TexOffset = 8
)

// Call draws Count indices starting at First. Textures[i] is bound to sampler
// slot i; slot 0 is always the untextured white slot (TexID 0).
type Call struct {
	First    int
	Count    int
	Textures []paint.TexID
}

// Stats captures the counts generated during a frame.
type Stats struct {
	DrawCalls int
	Triangles int
	Vertices  int
}

type Batch struct {
	verts []float32
	inds  []uint32
	calls []Call
	slots []paint.TexID
	start int
	stats Stats
}

func New() *Batch {
	b := &Batch{}
	b.Reset()
	return b
}

func (b *Batch) Reset() {
	b.verts = b.verts[:0]
	b.inds = b.inds[:0]
	b.calls = b.calls[:0]
	b.slots = append(b.slots[:0], 0)
	b.start = 0
	b.stats = Stats{}
}

// Build replaces the batch contents with ops, drawn in the given order.
func (b *Batch) Build(ops []paint.Op) {
	b.Reset()
	for _, op := range ops {
		b.Add(op)
	}
	b.Flush()
}

func (b *Batch) Verts() []float32  { return b.verts }
func (b *Batch) Indices() []uint32 { return b.inds }
func (b *Batch) Calls() []Call     { return b.calls }
func (b *Batch) Stats() Stats      { return b.stats }

// Add tessellates one op.
func (b *Batch) Add(op paint.Op) {
	ctx := op.Ctx
	col := ctx.Color
	pts := func() []geom.GblPt {
		out := make([]geom.GblPt, len(op.Pts))
		for i, p := range op.Pts {
			out[i] = ctx.Tf.Pt(p)
		}
		return out
	}

	switch op.Kind {
	case paint.OpFillRect:
		b.fill(rectPts(ctx.Tf.Rect(op.Rect)), col)
	case paint.OpFillRRect:
		b.fill(rrectPts(ctx.Tf.Rect(op.Rect), op.Radius), col)
	case paint.OpFillCircle:
		c := ctx.Tf.Pt(op.Center)
		b.fill(ellipsePts(c, op.Radius, op.Radius, 0), col)
	case paint.OpFillPoly, paint.OpFillQuad:
		b.fill(pts(), col)
	case paint.OpFillPath:
		for _, c := range ctx.Tf.Path(op.Path).Contours {
			b.fill(contourPts(c), col)
		}
	case paint.OpStrokeLine:
		b.stroke(pts(), false, ctx.LineWidth, col)
	case paint.OpStrokePoly, paint.OpStrokeQuad, paint.OpStrokeTri:
		b.stroke(pts(), true, ctx.LineWidth, col)
	case paint.OpStrokeRect:
		b.stroke(rectPts(ctx.Tf.Rect(op.Rect)), true, ctx.LineWidth, col)
	case paint.OpStrokeRRect:
		b.stroke(rrectPts(ctx.Tf.Rect(op.Rect), op.Radius), true, ctx.LineWidth, col)
	case paint.OpStrokeCircle:
		c := ctx.Tf.Pt(op.Center)
		b.stroke(ellipsePts(c, op.Radius, op.Radius, 0), true, ctx.LineWidth, col)
	case paint.OpStrokeEllipse:
		c := ctx.Tf.Pt(op.Center)
		b.stroke(ellipsePts(c, op.Radii.W, op.Radii.H, op.Rot), true, ctx.LineWidth, col)
	case paint.OpStrokePath:
		for _, c := range ctx.Tf.Path(op.Path).Contours {
			b.stroke(contourPts(c), c.Closed, ctx.LineWidth, col)
		}
	case paint.OpTexture:
		b.texQuad(op.Tex, col)
	}
}

// Flush closes the open call.
func (b *Batch) Flush() {
	if len(b.inds) == b.start {
		return
	}
	b.calls = append(b.calls, Call{
		First:    b.start,
		Count:    len(b.inds) - b.start,
		Textures: slices.Clone(b.slots),
	})
	b.stats.DrawCalls++
	b.start = len(b.inds)
	b.slots = append(b.slots[:0], 0)
}

func (b *Batch) texSlot(id paint.TexID) float32 {
	if i := slices.Index(b.slots, id); i >= 0 {
		return float32(i)
	}
	if len(b.slots) >= MaxTexSlots {
		b.Flush()
	}
	b.slots = append(b.slots, id)
	return float32(len(b.slots) - 1)
}

func (b *Batch) vertex(p geom.GblPt, col colors.Color, u, v, slot float32) uint32 {
	i := uint32(len(b.verts) / Stride)
	b.verts = append(b.verts,
		float32(p.X), float32(p.Y),
		col[0], col[1], col[2], col[3],
		u, v,
		slot,
	)
	b.stats.Vertices++
	return i
}

func (b *Batch) tri(i0, i1, i2 uint32) {
	b.inds = append(b.inds, i0, i1, i2)
	b.stats.Triangles++
}

func (b *Batch) fill(pts []geom.GblPt, col colors.Color) {
	if len(pts) < 3 {
		return
	}
	base := uint32(len(b.verts) / Stride)
	for _, p := range pts {
		b.vertex(p, col, 0, 0, 0)
	}
	for _, t := range triangulate(pts) {
		b.tri(base+t[0], base+t[1], base+t[2])
	}
}

// stroke draws each segment as a quad of the given width. Joins are left
// open; at UI line widths the gaps are not visible.
func (b *Batch) stroke(pts []geom.GblPt, closed bool, width float64, col colors.Color) {
	n := len(pts)
	if n < 2 || width <= 0 {
		return
	}
	segs := n - 1
	if closed {
		segs = n
	}
	for i := range segs {
		q, ok := segmentQuad(pts[i], pts[(i+1)%n], width)
		if !ok {
			continue
		}
		i0 := b.vertex(q[0], col, 0, 0, 0)
		i1 := b.vertex(q[1], col, 0, 0, 0)
		i2 := b.vertex(q[2], col, 0, 0, 0)
		i3 := b.vertex(q[3], col, 0, 0, 0)
		b.tri(i0, i2, i1)
		b.tri(i1, i2, i3)
	}
}

func (b *Batch) texQuad(t paint.TexLayer, col colors.Color) {
	slot := b.texSlot(t.Tex)
	r, uv := t.R, t.UV
	u0, v0 := float32(uv.X), float32(uv.Y)
	u1, v1 := float32(uv.Right()), float32(uv.Bottom())
	tl := b.vertex(r.TL(), col, u0, v0, slot)
	tr := b.vertex(r.TR(), col, u1, v0, slot)
	bl := b.vertex(r.BL(), col, u0, v1, slot)
	br := b.vertex(r.BR(), col, u1, v1, slot)
	b.tri(tl, bl, tr)
	b.tri(tr, bl, br)
}
