// Package scene holds the projection from logical screen space to clip
// space used by the GPU backend.
package scene

import "github.com/hubastard/canopy/engine/geom"

// Screen is an orthographic projection with (0,0) at the top-left of the
// window and y growing down, matching global layout space.
type Screen struct {
	size  geom.GblSz
	vp    [16]float32
	dirty bool
}

func NewScreen(sz geom.GblSz) *Screen {
	s := &Screen{size: sz}
	s.Recalculate()
	return s
}

func (s *Screen) SetSize(sz geom.GblSz) {
	if sz == s.size {
		return
	}
	s.size = sz
	s.dirty = true
}

func (s *Screen) Size() geom.GblSz { return s.size }

func (s *Screen) VP() [16]float32 {
	if s.dirty {
		s.Recalculate()
	}
	return s.vp
}

func (s *Screen) Recalculate() {
	w := float32(max(s.size.W, 1))
	h := float32(max(s.size.H, 1))
	s.vp = ortho(0, w, h, 0, -1, 1)
	s.dirty = false
}

// Project maps a global point to normalised device coordinates.
func (s *Screen) Project(p geom.GblPt) (x, y float32) {
	v := transform(s.VP(), [4]float32{float32(p.X), float32(p.Y), 0, 1})
	return v[0], v[1]
}

// ---- tiny mat helpers (column-major, GLSL-style) ----

func ortho(l, r, b, t, n, f float32) [16]float32 {
	rl := 1 / (r - l)
	tb := 1 / (t - b)
	fn := 1 / (f - n)
	return [16]float32{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(r + l) * rl, -(t + b) * tb, -(f + n) * fn, 1,
	}
}

func transform(m [16]float32, v [4]float32) [4]float32 {
	var out [4]float32
	for i := range 4 {
		out[i] = m[i]*v[0] + m[i+4]*v[1] + m[i+8]*v[2] + m[i+12]*v[3]
	}
	return out
}
