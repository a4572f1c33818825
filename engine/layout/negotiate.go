package layout

import "github.com/hubastard/canopy/engine/geom"

func clampSize(sz geom.LclSz, lo, hi *geom.LclSz) geom.LclSz {
	if lo != nil {
		sz = lo.Max(sz)
	}
	if hi != nil {
		sz = hi.Min(sz)
	}
	return sz
}

func firstSize(c ...*geom.LclSz) *geom.LclSz {
	for _, s := range c {
		if s != nil {
			return s
		}
	}
	return nil
}

// SelectSize picks one candidate by opt's priority order and clamps it into
// [min, max], applying min first. It returns nil if no candidate exists.
func SelectSize(lo, hi, parentReq, childReq *geom.LclSz, opt SizeOption) *geom.LclSz {
	var sz *geom.LclSz
	switch opt {
	case Wrap:
		sz = firstSize(lo, childReq, parentReq, hi)
	case Fill:
		sz = firstSize(parentReq, hi, childReq, lo)
	case Exact:
		sz = firstSize(childReq, lo, hi)
	}
	if sz == nil {
		return nil
	}
	out := clampSize(*sz, lo, hi)
	return &out
}

// selectSize2D resolves each axis on its own and succeeds only if both do.
func selectSize2D(lo, hi, parentReq, childReq *geom.LclSz, opt [2]SizeOption) *geom.LclSz {
	w := SelectSize(lo, hi, parentReq, childReq, opt[0])
	h := SelectSize(lo, hi, parentReq, childReq, opt[1])
	if w == nil || h == nil {
		return nil
	}
	return &geom.LclSz{W: w.W, H: h.H}
}

// ComputeChildInfo places a child at offset and z in parent's local space and
// resolves its hint against what the parent can offer from that point.
func ComputeChildInfo(parent Info, offset geom.LclPt, z geom.LclZ, child Hint) Info {
	ptf := geom.PrtTf{Off: geom.CoercePt[geom.Parent](offset), ZOff: geom.CoerceZ[geom.Parent](z)}
	gtf := geom.Concat(ptf, geom.CoerceTf[geom.Parent, geom.Global](parent.Gtf))
	inv := ptf.Inv()

	// The parent's max, less the offset, is the most the child can have.
	var hi *geom.LclSz
	if m := parent.Hint.Max; m != nil {
		r := geom.RectFrom(offset, m.Sub(offset.AsSz()))
		sz := inv.Rect(geom.CoerceRect[geom.Parent](r)).Size()
		hi = &sz
	}
	if child.Max != nil {
		sz := *child.Max
		if hi != nil {
			sz = sz.Min(*hi)
		}
		hi = &sz
	}

	var parentReq *geom.LclSz
	if r := parent.Hint.Req; r != nil {
		sz := inv.Sz(geom.CoerceSz[geom.Parent](r.Sub(offset.AsSz())))
		parentReq = &sz
	}

	return Info{
		Gtf: gtf,
		Ptf: ptf,
		Hint: Hint{
			Opt:  child.Opt,
			Grav: child.Grav,
			Min:  child.Min,
			Max:  hi,
			Req:  selectSize2D(child.Min, hi, parentReq, child.Req, child.Opt),
		},
	}
}

// NaturalLayer is the layer a hint resolves to with no parent constraints,
// anchored at the origin. A hint that resolves to nothing is empty.
func NaturalLayer(h Hint) geom.LclLayer {
	var sz geom.LclSz
	if s := selectSize2D(h.Min, h.Max, nil, h.Req, h.Opt); s != nil {
		sz = *s
	}
	return geom.LayerOf(sz, 0)
}

// NaturalLayerInParent maps the natural layer of info's hint into the parent.
func NaturalLayerInParent(info Info) geom.PrtLayer {
	return info.Ptf.Layer(NaturalLayer(info.Hint))
}
