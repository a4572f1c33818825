package geom

// Pt is a point in space S.
type Pt[N Number, S Space] struct {
	X N `json:"x"`
	Y N `json:"y"`
}

func (p Pt[N, S]) Add(o Pt[N, S]) Pt[N, S]   { return Pt[N, S]{p.X + o.X, p.Y + o.Y} }
func (p Pt[N, S]) Sub(o Pt[N, S]) Pt[N, S]   { return Pt[N, S]{p.X - o.X, p.Y - o.Y} }
func (p Pt[N, S]) AddSz(s Sz[N, S]) Pt[N, S] { return Pt[N, S]{p.X + s.W, p.Y + s.H} }
func (p Pt[N, S]) SubSz(s Sz[N, S]) Pt[N, S] { return Pt[N, S]{p.X - s.W, p.Y - s.H} }
func (p Pt[N, S]) Scale(k N) Pt[N, S]        { return Pt[N, S]{p.X * k, p.Y * k} }
func (p Pt[N, S]) Neg() Pt[N, S]             { return Pt[N, S]{-p.X, -p.Y} }

// AsSz reinterprets the point as the size of the rect spanning from the origin.
func (p Pt[N, S]) AsSz() Sz[N, S] { return Sz[N, S]{p.X, p.Y} }

// Sz is a width/height pair in space S.
type Sz[N Number, S Space] struct {
	W N `json:"w"`
	H N `json:"h"`
}

func (s Sz[N, S]) Add(o Sz[N, S]) Sz[N, S] { return Sz[N, S]{s.W + o.W, s.H + o.H} }
func (s Sz[N, S]) Sub(o Sz[N, S]) Sz[N, S] { return Sz[N, S]{s.W - o.W, s.H - o.H} }
func (s Sz[N, S]) Scale(k N) Sz[N, S]      { return Sz[N, S]{s.W * k, s.H * k} }

// Min is the component-wise minimum.
func (s Sz[N, S]) Min(o Sz[N, S]) Sz[N, S] { return Sz[N, S]{min(s.W, o.W), min(s.H, o.H)} }

// Max is the component-wise maximum.
func (s Sz[N, S]) Max(o Sz[N, S]) Sz[N, S] { return Sz[N, S]{max(s.W, o.W), max(s.H, o.H)} }

func (s Sz[N, S]) Area() N        { return s.W * s.H }
func (s Sz[N, S]) AsPt() Pt[N, S] { return Pt[N, S]{s.W, s.H} }

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect[N Number, S Space] struct {
	X N `json:"x"`
	Y N `json:"y"`
	W N `json:"w"`
	H N `json:"h"`
}

// RectFrom builds a rect from its top-left corner and size.
func RectFrom[N Number, S Space](tl Pt[N, S], sz Sz[N, S]) Rect[N, S] {
	return Rect[N, S]{tl.X, tl.Y, sz.W, sz.H}
}

// RectOf is the rect of the given size anchored at the origin.
func RectOf[N Number, S Space](sz Sz[N, S]) Rect[N, S] {
	return Rect[N, S]{W: sz.W, H: sz.H}
}

func (r Rect[N, S]) TL() Pt[N, S]     { return Pt[N, S]{r.X, r.Y} }
func (r Rect[N, S]) TR() Pt[N, S]     { return Pt[N, S]{r.X + r.W, r.Y} }
func (r Rect[N, S]) BL() Pt[N, S]     { return Pt[N, S]{r.X, r.Y + r.H} }
func (r Rect[N, S]) BR() Pt[N, S]     { return Pt[N, S]{r.X + r.W, r.Y + r.H} }
func (r Rect[N, S]) Right() N         { return r.X + r.W }
func (r Rect[N, S]) Bottom() N        { return r.Y + r.H }
func (r Rect[N, S]) Size() Sz[N, S]   { return Sz[N, S]{r.W, r.H} }
func (r Rect[N, S]) Center() Pt[N, S] { return Pt[N, S]{r.X + r.W/2, r.Y + r.H/2} }

func (r Rect[N, S]) WithSize(sz Sz[N, S]) Rect[N, S] { return Rect[N, S]{r.X, r.Y, sz.W, sz.H} }
func (r Rect[N, S]) WithTL(p Pt[N, S]) Rect[N, S]    { return Rect[N, S]{p.X, p.Y, r.W, r.H} }

// AddPt translates the origin by p.
func (r Rect[N, S]) AddPt(p Pt[N, S]) Rect[N, S] { return Rect[N, S]{r.X + p.X, r.Y + p.Y, r.W, r.H} }

// SubPt translates the origin by -p.
func (r Rect[N, S]) SubPt(p Pt[N, S]) Rect[N, S] { return Rect[N, S]{r.X - p.X, r.Y - p.Y, r.W, r.H} }

// Add is component-wise over x, y, w and h.
func (r Rect[N, S]) Add(o Rect[N, S]) Rect[N, S] {
	return Rect[N, S]{r.X + o.X, r.Y + o.Y, r.W + o.W, r.H + o.H}
}

// Sub is component-wise over x, y, w and h.
func (r Rect[N, S]) Sub(o Rect[N, S]) Rect[N, S] {
	return Rect[N, S]{r.X - o.X, r.Y - o.Y, r.W - o.W, r.H - o.H}
}

// Contains reports whether p lies in r. Edges are inclusive.
func (r Rect[N, S]) Contains(p Pt[N, S]) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Inset shrinks r by d on every side. The shrink is clamped to the current
// size so the result never has a negative extent; a negative d grows r.
func (r Rect[N, S]) Inset(d Sz[N, S]) Rect[N, S] {
	ws := min(d.W*2, r.W)
	hs := min(d.H*2, r.H)
	return Rect[N, S]{r.X + ws/2, r.Y + hs/2, r.W - ws, r.H - hs}
}

// Z is a paint order. Higher values are drawn later and win hit tests.
type Z[S Space] int32

// Layer is a rect with a paint order.
type Layer[S Space] struct {
	R Rect[float64, S] `json:"r"`
	Z Z[S]             `json:"z"`
}

// LayerOf places a rect of the given size at the origin.
func LayerOf[S Space](sz Sz[float64, S], z Z[S]) Layer[S] {
	return Layer[S]{R: RectOf(sz), Z: z}
}

func (l Layer[S]) Contains(p Pt[float64, S]) bool { return l.R.Contains(p) }

func (l Layer[S]) Inset(d Sz[float64, S]) Layer[S] { return Layer[S]{R: l.R.Inset(d), Z: l.Z} }

func (l Layer[S]) WithRect(r Rect[float64, S]) Layer[S] { return Layer[S]{R: r, Z: l.Z} }
