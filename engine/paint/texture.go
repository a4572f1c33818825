package paint

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hubastard/canopy/engine/geom"
)

// TexID names a texture owned by the painter. Zero means no texture.
type TexID int

// TexLayer is a screen rect sampling a region of a texture.
type TexLayer struct {
	R   geom.GblRect
	UV  geom.TexUV
	Tex TexID
}

func (t TexLayer) WithRect(r geom.GblRect) TexLayer {
	t.R = r
	return t
}

// Texture is CPU-side pixel data. Dirty is set on every write and cleared by
// the backend after upload.
type Texture struct {
	ID    TexID
	Img   *image.RGBA
	Dirty bool
}

func (t *Texture) Size() geom.TexSz {
	b := t.Img.Bounds()
	return geom.TS(uint32(b.Dx()), uint32(b.Dy()))
}

func (t *Texture) Set(p geom.TexPt, c color.RGBA) {
	t.Img.SetRGBA(int(p.X), int(p.Y), c)
	t.Dirty = true
}

func (t *Texture) String() string {
	return fmt.Sprintf("Tex[id:%d, sz:%v, dirty:%v]", t.ID, t.Size(), t.Dirty)
}

type texStore struct {
	last TexID
	texs map[TexID]*Texture
}

func (ts *texStore) insert(sz geom.TexSz) TexID {
	if ts.texs == nil {
		ts.texs = map[TexID]*Texture{}
	}
	ts.last++
	ts.texs[ts.last] = &Texture{
		ID:    ts.last,
		Img:   image.NewRGBA(image.Rect(0, 0, int(sz.W), int(sz.H))),
		Dirty: true,
	}
	return ts.last
}

func (ts *texStore) get(id TexID) *Texture {
	t, ok := ts.texs[id]
	if !ok {
		panic(fmt.Sprintf("paint: unknown texture %d", id))
	}
	return t
}
