// Package assets loads images from disk and copies them into the painter's
// atlas.
package assets

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/hubastard/canopy/engine/errors"
	"github.com/hubastard/canopy/engine/geom"
	"github.com/hubastard/canopy/engine/paint"
)

// LoadImage decodes a PNG, JPEG, BMP or WebP file into RGBA with a top-left
// origin.
func LoadImage(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	return imageToRGBA(img), nil
}

// Upload copies img into a fresh atlas region. The returned layer has an
// empty screen rect; set it with WithRect before drawing.
func Upload(p *paint.Painter, img *image.RGBA) (paint.TexLayer, error) {
	b := img.Bounds()
	h, err := p.Alloc(geom.TS(uint32(b.Dx()), uint32(b.Dy())))
	if err != nil {
		return paint.TexLayer{}, errors.Wrap("assets.Upload", errors.KindResource, err)
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			p.WritePixel(h, geom.TP(uint32(x), uint32(y)), img.RGBAAt(b.Min.X+x, b.Min.Y+y))
		}
	}
	return p.Layer(h), nil
}

func imageToRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok && m.Stride == m.Rect.Dx()*4 && m.Rect.Min == (image.Point{}) {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}
