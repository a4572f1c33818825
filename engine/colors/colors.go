package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is straight (non-premultiplied) RGBA in [0, 1].
type Color [4]float32

var (
	White  = Color{0.8, 0.8, 0.8, 1}
	Red    = Color{0.8, 0.2, 0.2, 1}
	Green  = Color{0.2, 0.8, 0.2, 1}
	Black  = Color{0, 0, 0, 1}
	Opaque = Color{1, 1, 1, 1}
	Clear  = Color{}
)

// RGBA8 builds a colour from byte channels.
func RGBA8(r, g, b, a uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// RGBA converts to the image/color representation used for atlas pixels.
func (c Color) RGBA() color.RGBA {
	b := func(v float32) uint8 { return uint8(min(max(v, 0), 1)*255 + 0.5) }
	return color.RGBA{b(c[0]), b(c[1]), b(c[2]), b(c[3])}
}

// Hex parses "#rrggbb" or "#rrggbbaa".
func Hex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return Color{}, fmt.Errorf("colour %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return RGBA8(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
