package paint

import (
	"fmt"
	"image/color"

	"github.com/hubastard/canopy/engine/errors"
	"github.com/hubastard/canopy/engine/geom"
)

// Handle refers to a region allocated in the atlas.
type Handle int32

const atlasSize = 2048

var atlasPad = geom.TS(1, 1)

// Atlas sub-allocates one large texture. Every region keeps a one pixel
// border so linear sampling never bleeds into a neighbour.
type Atlas struct {
	packer Packer
	tex    TexID
	rects  []geom.TexRect
	used   uint32
}

func newAtlas(ts *texStore, size geom.TexSz) *Atlas {
	return &Atlas{packer: NewPacker(size), tex: ts.insert(size)}
}

// Alloc reserves a region of sz pixels. Running out of room is a KindResource
// error; the atlas stays usable for smaller requests.
func (a *Atlas) Alloc(sz geom.TexSz) (Handle, error) {
	if sz.Area() == 0 {
		return 0, errors.New("paint.Atlas.Alloc", errors.KindResource, "can't pack empty size")
	}
	sz = sz.Add(atlasPad.Scale(2))
	r, ok := a.packer.Pack(sz)
	if !ok {
		total := a.packer.Size().Area()
		return 0, errors.Wrap("paint.Atlas.Alloc", errors.KindResource,
			fmt.Errorf("atlas full at %.2f%% capacity", float64(a.used)/float64(total)*100))
	}
	a.used += sz.Area()
	a.rects = append(a.rects, r)
	return Handle(len(a.rects) - 1), nil
}

func (a *Atlas) writePixel(ts *texStore, h Handle, p geom.TexPt, c color.RGBA) {
	ts.get(a.tex).Set(a.rects[h].TL().Add(p).AddSz(atlasPad), c)
}

// Layer is the texture layer for h. The caller sets the screen rect.
func (a *Atlas) Layer(h Handle) TexLayer {
	r := geom.RectF64(a.rects[h])
	sz := geom.SzF64(a.packer.Size())
	uv := geom.UV(r.X/sz.W, r.Y/sz.H, r.W/sz.W, r.H/sz.H)
	pad := geom.SzF64(atlasPad)
	uv = uv.Inset(geom.Sz[float64, geom.Texture]{W: pad.W / sz.W, H: pad.H / sz.H})
	return TexLayer{UV: uv, Tex: a.tex}
}

// Usage is the fraction of the atlas area handed out so far.
func (a *Atlas) Usage() float64 {
	return float64(a.used) / float64(a.packer.Size().Area())
}
