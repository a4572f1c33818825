package paint

import (
	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/geom"
)

// Ctx is the state every op is recorded with: where local space sits on
// screen, a local z on top of that, colour and stroke width.
type Ctx struct {
	Tf        geom.GblTf
	Z         geom.LclZ
	Color     colors.Color
	LineWidth float64
}

// NewCtx is the identity transform, z 0, white, 1 unit lines.
func NewCtx() Ctx {
	return Ctx{Color: colors.White, LineWidth: 1}
}

func (c Ctx) WithTf(tf geom.GblTf) Ctx       { c.Tf = tf; return c }
func (c Ctx) WithZ(z geom.LclZ) Ctx          { c.Z = z; return c }
func (c Ctx) WithColor(col colors.Color) Ctx { c.Color = col; return c }
func (c Ctx) WithLineWidth(w float64) Ctx    { c.LineWidth = w; return c }

// GlobalZ is the paint order of ops recorded with this context.
func (c Ctx) GlobalZ() geom.GblZ { return c.Tf.Z(c.Z) }

type OpKind uint8

const (
	OpFillPath OpKind = iota
	OpFillCircle
	OpFillPoly
	OpFillQuad
	OpFillRect
	OpFillRRect
	OpStrokeLine
	OpStrokePath
	OpStrokeCircle
	OpStrokeEllipse
	OpStrokePoly
	OpStrokeQuad
	OpStrokeRect
	OpStrokeRRect
	OpStrokeTri
	OpTexture
)

func (k OpKind) String() string {
	switch k {
	case OpFillPath:
		return "fill-path"
	case OpFillCircle:
		return "fill-circle"
	case OpFillPoly:
		return "fill-poly"
	case OpFillQuad:
		return "fill-quad"
	case OpFillRect:
		return "fill-rect"
	case OpFillRRect:
		return "fill-rrect"
	case OpStrokeLine:
		return "stroke-line"
	case OpStrokePath:
		return "stroke-path"
	case OpStrokeCircle:
		return "stroke-circle"
	case OpStrokeEllipse:
		return "stroke-ellipse"
	case OpStrokePoly:
		return "stroke-poly"
	case OpStrokeQuad:
		return "stroke-quad"
	case OpStrokeRect:
		return "stroke-rect"
	case OpStrokeRRect:
		return "stroke-rrect"
	case OpStrokeTri:
		return "stroke-tri"
	case OpTexture:
		return "texture"
	default:
		return "unknown"
	}
}

// Op is one recorded drawing operation. Only the fields its Kind uses are set:
//
//	Path            FillPath, StrokePath
//	Center, Radius  FillCircle, StrokeCircle
//	Center, Radii   StrokeEllipse (plus Rot, radians)
//	Pts             FillPoly, FillQuad, StrokeLine, StrokePoly, StrokeQuad, StrokeTri
//	Rect            FillRect, StrokeRect, FillRRect, StrokeRRect (plus Radius)
//	Tex             Texture
type Op struct {
	Kind   OpKind
	Ctx    Ctx
	Path   geom.Path
	Pts    []geom.LclPt
	Closed bool
	Rect   geom.LclRect
	Center geom.LclPt
	Radius float64
	Radii  geom.LclSz
	Rot    float64
	Tex    TexLayer
}
