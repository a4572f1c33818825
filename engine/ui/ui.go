// Package ui is the immediate-mode widget layer. A Ui is a cursor into the
// widget tree: it owns one layout, knows its widget id, and records paint ops
// relative to where that layout sits on screen.
package ui

import (
	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/geom"
	"github.com/hubastard/canopy/engine/layout"
	"github.com/hubastard/canopy/engine/memory"
	"github.com/hubastard/canopy/engine/paint"
)

type Ui struct {
	Style Style

	f    *Frame
	l    layout.Layout
	id   string
	pctx paint.Ctx
}

func newUi(f *Frame, s Style, l layout.Layout, id string) *Ui {
	pctx := paint.NewCtx().WithTf(l.Info().Gtf).WithColor(s.Light)
	return &Ui{Style: s, f: f, l: l, id: id, pctx: pctx}
}

func (u *Ui) env() layout.Env {
	return layout.Env{ID: u.id, Input: u.f.Input, Memory: u.f.Memory, Painter: u.f.Painter}
}

func (u *Ui) Frame() *Frame { return u.f }

// Ctx is the paint context new ops are recorded with.
func (u *Ui) Ctx() paint.Ctx { return u.pctx }

// Push replaces the paint context until restore is called.
//
//	defer u.Push(u.Ctx().WithColor(c))()
func (u *Ui) Push(ctx paint.Ctx) (restore func()) {
	prev := u.pctx
	u.pctx = ctx
	return func() { u.pctx = prev }
}

func (u *Ui) Info() layout.Info { return u.l.Info() }
func (u *Ui) ID() string        { return u.id }

// WidgetID scopes a widget-local id under this Ui.
func (u *Ui) WidgetID(local string) string { return memory.CombineIDs(u.id, local) }

// Child runs body inside a nested layout built by newLayout and places the
// result here. The layout is worked on as a copy so body cannot observe a
// half-updated parent. On error nothing is placed.
func (u *Ui) Child(hint layout.Hint, id string, newLayout func(layout.Info) layout.Layout, body func(*Ui) error) (geom.LclLayer, error) {
	lay := u.l
	placed, err := lay.Child(u.env(), hint, id, func(info layout.Info) (layout.Layout, error) {
		c := newUi(u.f, u.Style, newLayout(info), id)
		if err := body(c); err != nil {
			return layout.Layout{}, err
		}
		return c.l, nil
	})
	if err != nil {
		return geom.LclLayer{}, err
	}
	u.overlay(placed.R, colors.Green)
	u.l = lay
	return placed, nil
}

// ChildLayer reserves space for a leaf.
func (u *Ui) ChildLayer(hint layout.Hint) geom.LclLayer {
	lay := u.l
	placed := lay.ChildLayer(u.env(), hint)
	u.overlay(placed.R, colors.Red)
	u.l = lay
	return placed
}

// ComputeLayer is this Ui's own layer in its parent's space.
func (u *Ui) ComputeLayer() geom.PrtLayer { return u.l.ComputeLayer() }

func (u *Ui) overlay(r geom.LclRect, c colors.Color) {
	if !u.f.Memory.Debug {
		return
	}
	restore := u.Push(u.pctx.WithZ(geom.MaxZ).WithColor(c))
	u.StrokeRect(r)
	restore()
}

func (u *Ui) global(l geom.LclLayer) geom.GblLayer { return u.l.Info().Gtf.Layer(l) }

// Hovered reports whether id owns the mouse and it is over l.
func (u *Ui) Hovered(id string, l geom.LclLayer) bool {
	return u.f.Input.Hovered(id, u.global(l))
}

// Pressed reports whether id holds the mouse with the button down.
func (u *Ui) Pressed(id string, l geom.LclLayer) bool {
	return u.f.Input.Held(id, u.global(l))
}

// Clicked reports a release over l by the widget that captured the press.
func (u *Ui) Clicked(id string, l geom.LclLayer) bool {
	return u.f.Input.Clicked(id, u.global(l))
}

// Scrolled is this frame's scroll delta if id is hovered, zero otherwise.
func (u *Ui) Scrolled(id string, l geom.LclLayer) geom.Pt[float64, geom.Any] {
	if u.Hovered(id, l) {
		return u.f.Input.Scroll
	}
	return geom.Pt[float64, geom.Any]{}
}

func (u *Ui) TextSize(f Frag) (geom.LclSz, error) {
	sz, err := u.f.Text.Measure(f.Text, f.Size)
	if err != nil {
		return geom.LclSz{}, err
	}
	return u.l.Info().Gtf.Inv().Sz(sz), nil
}

func (u *Ui) Text(f Frag) error {
	l, err := f.Layout(u)
	if err != nil {
		return err
	}
	return u.f.Text.Draw(u.f.Painter, f.Text, f.Size, u.global(l))
}

func (u *Ui) FillPath(p geom.Path)                       { u.f.Painter.FillPath(u.pctx, p) }
func (u *Ui) FillCircle(c geom.LclPt, radius float64)    { u.f.Painter.FillCircle(u.pctx, c, radius) }
func (u *Ui) FillPoly(pts []geom.LclPt)                  { u.f.Painter.FillPoly(u.pctx, pts) }
func (u *Ui) FillQuad(v [4]geom.LclPt)                   { u.f.Painter.FillQuad(u.pctx, v) }
func (u *Ui) FillRect(r geom.LclRect)                    { u.f.Painter.FillRect(u.pctx, r) }
func (u *Ui) FillRRect(r geom.LclRect, radius float64)   { u.f.Painter.FillRRect(u.pctx, r, radius) }
func (u *Ui) StrokeLine(st, en geom.LclPt)               { u.f.Painter.StrokeLine(u.pctx, st, en) }
func (u *Ui) StrokePath(p geom.Path)                     { u.f.Painter.StrokePath(u.pctx, p) }
func (u *Ui) StrokeCircle(c geom.LclPt, radius float64)  { u.f.Painter.StrokeCircle(u.pctx, c, radius) }
func (u *Ui) StrokePoly(pts []geom.LclPt)                { u.f.Painter.StrokePoly(u.pctx, pts) }
func (u *Ui) StrokeQuad(v [4]geom.LclPt)                 { u.f.Painter.StrokeQuad(u.pctx, v) }
func (u *Ui) StrokeRect(r geom.LclRect)                  { u.f.Painter.StrokeRect(u.pctx, r) }
func (u *Ui) StrokeRRect(r geom.LclRect, radius float64) { u.f.Painter.StrokeRRect(u.pctx, r, radius) }
func (u *Ui) StrokeTri(v [3]geom.LclPt)                  { u.f.Painter.StrokeTri(u.pctx, v) }
func (u *Ui) Texture(tex paint.TexLayer)                 { u.f.Painter.Texture(u.pctx, tex) }

func (u *Ui) StrokeEllipse(c geom.LclPt, radii geom.LclSz, rot float64) {
	u.f.Painter.StrokeEllipse(u.pctx, c, radii, rot)
}
