package ui

import (
	"github.com/hubastard/canopy/engine/geom"
	"github.com/hubastard/canopy/engine/layout"
)

// Frag is a run of text anchored at P. Grav says which part of the text's
// box sits on P along each axis.
type Frag struct {
	Text string
	Size float64
	Grav [2]layout.Gravity
	P    geom.LclPt
}

func NewFrag(text string, size float64, p geom.LclPt) Frag {
	return Frag{Text: text, Size: size, P: p}
}

func (f Frag) At(p geom.LclPt) Frag { f.P = p; return f }

func (f Frag) WithGrav(h, v layout.Gravity) Frag {
	f.Grav = [2]layout.Gravity{h, v}
	return f
}

// Layout is the box the text occupies in u's local space.
func (f Frag) Layout(u *Ui) (geom.LclLayer, error) {
	sz, err := u.TextSize(f)
	if err != nil {
		return geom.LclLayer{}, err
	}
	off := geom.LP(gravOffset(f.Grav[0], sz.W), gravOffset(f.Grav[1], sz.H))
	return geom.L(geom.RectFrom(f.P.Sub(off), sz), 0), nil
}

func gravOffset(g layout.Gravity, extent float64) float64 {
	switch g {
	case layout.Center:
		return extent / 2
	case layout.End:
		return extent
	default:
		return 0
	}
}
