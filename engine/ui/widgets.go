package ui

import (
	"github.com/hubastard/canopy/engine/geom"
	"github.com/hubastard/canopy/engine/layout"
	"github.com/hubastard/canopy/engine/memory"
)

// Resp is what a widget reports back to its caller.
type Resp struct {
	// Layer is where the widget was placed, in the caller's local space.
	Layer geom.LclLayer
	// Clicked is set by widgets that can be clicked.
	Clicked bool
}

// Label draws text at the style's font size.
func (u *Ui) Label(text string) (Resp, error) {
	f := NewFrag(text, u.Style.FontSize, geom.LclPt{})
	sz, err := u.TextSize(f)
	if err != nil {
		return Resp{}, err
	}
	l := u.ChildLayer(layout.ExactHint(sz))
	if err := u.Text(f.At(l.R.TL())); err != nil {
		return Resp{}, err
	}
	return Resp{Layer: l}, nil
}

// Button is a label on a rounded background that brightens under the mouse
// and darkens while held. Buttons with the same text under the same parent
// share an id.
func (u *Ui) Button(text string) (Resp, error) {
	id := u.WidgetID(memory.CombineIDs("button", text))
	l, err := u.Child(layout.NewHint().WithOptWH(layout.Wrap), id, layout.NewStack, func(c *Ui) error {
		_, err := c.Label(text)
		return err
	})
	if err != nil {
		return Resp{}, err
	}

	col := u.Style.Light.WithAlpha(0.2)
	if u.Hovered(id, l) {
		col = u.Style.Light.WithAlpha(0.3)
	}
	if u.Pressed(id, l) {
		col = u.Style.Light.WithAlpha(0.1)
	}
	clicked := u.Clicked(id, l)

	restore := u.Push(u.pctx.WithColor(col))
	u.FillRRect(l.R, 4)
	restore()
	return Resp{Layer: l, Clicked: clicked}, nil
}

// Window is a titled panel. Inside a floating layout it can be dragged and
// resized and its placement is remembered across runs.
func (u *Ui) Window(title string, body func(*Ui) error) (Resp, error) {
	id := u.WidgetID(title)
	var titleR geom.LclRect
	l, err := u.Child(layout.NewHint().WithOptWH(layout.Exact), id, layout.NewStack, func(c *Ui) error {
		r, err := c.Label(title)
		if err != nil {
			return err
		}
		titleR = geom.CoerceRect[geom.Local](c.Info().Ptf.Rect(r.Layer.R))
		return body(c)
	})
	if err != nil {
		return Resp{}, err
	}

	restore := u.Push(u.pctx.WithZ(l.Z - 1).WithColor(u.Style.Dark.WithAlpha(0.95)))
	defer restore()
	u.FillRRect(l.R, 4)
	titleR.W = l.R.W
	u.pctx = u.pctx.WithColor(u.Style.Acc3.WithAlpha(0.95))
	u.StrokeRRect(titleR, 4)
	return Resp{Layer: l}, nil
}
