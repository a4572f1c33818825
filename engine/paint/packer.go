package paint

import "github.com/hubastard/canopy/engine/geom"

// Packer fills a bin in rows, left to right. A row is as tall as its tallest
// entry; when a size no longer fits on the current row a new one starts below.
type Packer struct {
	size geom.TexSz
	cur  geom.TexPt
	maxH uint32
}

func NewPacker(size geom.TexSz) Packer {
	return Packer{size: size}
}

func (p *Packer) Size() geom.TexSz { return p.size }

// Pack reserves sz and returns its rect, or false when the bin is full or sz
// is larger than the bin in either direction.
func (p *Packer) Pack(sz geom.TexSz) (geom.TexRect, bool) {
	switch {
	case sz.W > p.size.W || sz.H > p.size.H:
		return geom.TexRect{}, false
	case p.cur.X+sz.W <= p.size.W && p.cur.Y+sz.H <= p.size.H:
		r := geom.RectFrom(p.cur, sz)
		p.cur.X += sz.W
		p.maxH = max(p.maxH, sz.H)
		return r, true
	case p.cur.Y+p.maxH+sz.H <= p.size.H:
		p.cur.Y += p.maxH
		r := geom.TR(0, p.cur.Y, sz.W, sz.H)
		p.cur.X = sz.W
		p.maxH = sz.H
		return r, true
	default:
		return geom.TexRect{}, false
	}
}
