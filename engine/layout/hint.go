package layout

import "github.com/hubastard/canopy/engine/geom"

// SizeOption is how a child wants one axis sized.
type SizeOption uint8

const (
	// Wrap sizes to content: min, then the child's request, then whatever the
	// parent offers, then max.
	Wrap SizeOption = iota
	// Fill takes what the parent offers, falling back to max, the child's
	// request and min in that order.
	Fill
	// Exact uses the child's request and never the parent's offer.
	Exact
)

func (o SizeOption) String() string {
	switch o {
	case Wrap:
		return "wrap"
	case Fill:
		return "fill"
	case Exact:
		return "exact"
	default:
		return "unknown"
	}
}

// Gravity anchors content along one axis.
type Gravity uint8

const (
	Begin Gravity = iota
	Center
	End
)

func (g Gravity) String() string {
	switch g {
	case Begin:
		return "begin"
	case Center:
		return "center"
	case End:
		return "end"
	default:
		return "unknown"
	}
}

// Hint is a size request. Nil Min, Max or Req means no constraint.
// Builders copy the hint, so a Hint value can be shared freely.
type Hint struct {
	Opt  [2]SizeOption
	Grav [2]Gravity
	Min  *geom.LclSz
	Max  *geom.LclSz
	Req  *geom.LclSz
}

// NewHint wraps on both axes with begin gravity and no constraints.
func NewHint() Hint {
	return Hint{Opt: [2]SizeOption{Wrap, Wrap}, Grav: [2]Gravity{Begin, Begin}}
}

// ExactHint asks for exactly sz.
func ExactHint(sz geom.LclSz) Hint {
	return NewHint().WithOptWH(Exact).WithReq(sz)
}

func (h Hint) WithMin(sz geom.LclSz) Hint { h.Min = &sz; return h }
func (h Hint) WithMax(sz geom.LclSz) Hint { h.Max = &sz; return h }
func (h Hint) WithReq(sz geom.LclSz) Hint { h.Req = &sz; return h }

func (h Hint) WithOpt(w, hz SizeOption) Hint {
	h.Opt = [2]SizeOption{w, hz}
	return h
}

func (h Hint) WithOptWH(o SizeOption) Hint { return h.WithOpt(o, o) }

func (h Hint) WithGrav(w, hz Gravity) Hint {
	h.Grav = [2]Gravity{w, hz}
	return h
}

// Info is what a layout knows about itself: where it sits relative to the
// screen and its parent, and the hint it was offered.
type Info struct {
	Gtf  geom.GblTf
	Ptf  geom.PrtTf
	Hint Hint
}

// ZeroInfo has identity transforms and an unconstrained hint.
func ZeroInfo() Info {
	return Info{Hint: NewHint()}
}

func (i Info) WithHint(h Hint) Info {
	i.Hint = h
	return i
}
