package geom

// Tf maps values from space From into space To. Scale is always one, so a
// transform is an offset plus a paint-order delta (ZOff).
type Tf[From, To Space] struct {
	Off  Pt[float64, To] `json:"off"`
	ZOff Z[To]           `json:"z"`
}

// PrtTf maps a widget's local space into its parent's.
type PrtTf = Tf[Local, Parent]

// GblTf maps a widget's local space onto the screen.
type GblTf = Tf[Local, Global]

// Concat chains a then b.
func Concat[A, B, C Space](a Tf[A, B], b Tf[B, C]) Tf[A, C] {
	return Tf[A, C]{
		Off:  CoercePt[C](a.Off).Add(b.Off),
		ZOff: CoerceZ[C](a.ZOff) + b.ZOff,
	}
}

// Inv is the transform going the other way.
func (t Tf[From, To]) Inv() Tf[To, From] {
	return Tf[To, From]{Off: CoercePt[From](t.Off.Neg()), ZOff: CoerceZ[From](-t.ZOff)}
}

func (t Tf[From, To]) Pt(p Pt[float64, From]) Pt[float64, To] {
	return CoercePt[To](p).Add(t.Off)
}

func (t Tf[From, To]) Sz(s Sz[float64, From]) Sz[float64, To] { return CoerceSz[To](s) }

func (t Tf[From, To]) Rect(r Rect[float64, From]) Rect[float64, To] {
	return RectFrom(t.Pt(r.TL()), t.Sz(r.Size()))
}

func (t Tf[From, To]) Z(z Z[From]) Z[To] { return CoerceZ[To](z) + t.ZOff }

func (t Tf[From, To]) Layer(l Layer[From]) Layer[To] {
	return Layer[To]{R: t.Rect(l.R), Z: t.Z(l.Z)}
}

// Path translates every vertex. Paths carry no space tag of their own.
func (t Tf[From, To]) Path(p Path) Path {
	off := CoercePt[Any](t.Off)
	out := Path{Contours: make([]Contour, len(p.Contours))}
	for i, c := range p.Contours {
		pts := make([]Pt[float64, Any], len(c.Pts))
		for j, v := range c.Pts {
			pts[j] = v.Add(off)
		}
		out.Contours[i] = Contour{Pts: pts, Closed: c.Closed}
	}
	return out
}
