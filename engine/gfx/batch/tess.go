package batch

import (
	"math"

	"github.com/hubastard/canopy/engine/geom"
)

func rectPts(r geom.GblRect) []geom.GblPt {
	return []geom.GblPt{r.TL(), r.TR(), r.BR(), r.BL()}
}

// arcSegs is the number of segments for an arc of radius r spanning angle a.
func arcSegs(r, a float64) int {
	n := int(math.Ceil(a / (2 * math.Pi) * max(8, min(64, r))))
	return max(n, 2)
}

// rrectPts outlines r clockwise with corners of the given radius, clamped to
// half the shorter side.
func rrectPts(r geom.GblRect, radius float64) []geom.GblPt {
	radius = min(radius, r.W/2, r.H/2)
	if radius <= 0 {
		return rectPts(r)
	}
	corners := [4]struct {
		c     geom.GblPt
		start float64
	}{
		{geom.GP(r.Right()-radius, r.Y+radius), -math.Pi / 2},
		{geom.GP(r.Right()-radius, r.Bottom()-radius), 0},
		{geom.GP(r.X+radius, r.Bottom()-radius), math.Pi / 2},
		{geom.GP(r.X+radius, r.Y+radius), math.Pi},
	}
	n := arcSegs(radius, math.Pi/2)
	out := make([]geom.GblPt, 0, 4*(n+1))
	for _, k := range corners {
		for i := 0; i <= n; i++ {
			a := k.start + math.Pi/2*float64(i)/float64(n)
			out = append(out, geom.GP(k.c.X+radius*math.Cos(a), k.c.Y+radius*math.Sin(a)))
		}
	}
	return out
}

func ellipsePts(c geom.GblPt, rx, ry, rot float64) []geom.GblPt {
	if rx <= 0 || ry <= 0 {
		return nil
	}
	n := arcSegs(max(rx, ry), 2*math.Pi)
	cr, sr := math.Cos(rot), math.Sin(rot)
	out := make([]geom.GblPt, n)
	for i := range n {
		a := 2 * math.Pi * float64(i) / float64(n)
		x, y := rx*math.Cos(a), ry*math.Sin(a)
		out[i] = geom.GP(c.X+x*cr-y*sr, c.Y+x*sr+y*cr)
	}
	return out
}

func contourPts(c geom.Contour) []geom.GblPt {
	out := make([]geom.GblPt, len(c.Pts))
	for i, p := range c.Pts {
		out[i] = geom.CoercePt[geom.Global](p)
	}
	return out
}

// segmentQuad is the rectangle of the given width centred on a-b, as
// (a+n, b+n, a-n, b-n).
func segmentQuad(a, b geom.GblPt, width float64) ([4]geom.GblPt, bool) {
	d := b.Sub(a)
	l := math.Hypot(d.X, d.Y)
	if l == 0 {
		return [4]geom.GblPt{}, false
	}
	h := width / 2
	n := geom.GP(-d.Y/l*h, d.X/l*h)
	return [4]geom.GblPt{a.Add(n), b.Add(n), a.Sub(n), b.Sub(n)}, true
}

func cross(o, a, b geom.GblPt) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func signedArea(pts []geom.GblPt) float64 {
	var s float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		s += p.X*q.Y - q.X*p.Y
	}
	return s / 2
}

func inTri(p, a, b, c geom.GblPt) bool {
	d1, d2, d3 := cross(a, b, p), cross(b, c, p), cross(c, a, p)
	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0
	return !(neg && pos)
}

// triangulate ear-clips a simple polygon of either winding. If no ear can be
// found (self-intersecting input) the rest is fanned.
func triangulate(pts []geom.GblPt) [][3]uint32 {
	n := len(pts)
	if n < 3 {
		return nil
	}
	idx := make([]uint32, n)
	for i := range idx {
		idx[i] = uint32(i)
	}
	orient := 1.0
	if signedArea(pts) < 0 {
		orient = -1
	}

	out := make([][3]uint32, 0, n-2)
	for len(idx) > 3 {
		clipped := false
		for i := range idx {
			ip, ic, in := idx[(i+len(idx)-1)%len(idx)], idx[i], idx[(i+1)%len(idx)]
			a, b, c := pts[ip], pts[ic], pts[in]
			if cross(a, b, c)*orient <= 0 {
				continue
			}
			ear := true
			for _, j := range idx {
				if j == ip || j == ic || j == in {
					continue
				}
				if inTri(pts[j], a, b, c) {
					ear = false
					break
				}
			}
			if !ear {
				continue
			}
			out = append(out, [3]uint32{ip, ic, in})
			idx = append(idx[:i], idx[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			for i := 1; i+1 < len(idx); i++ {
				out = append(out, [3]uint32{idx[0], idx[i], idx[i+1]})
			}
			return out
		}
	}
	return append(out, [3]uint32{idx[0], idx[1], idx[2]})
}
