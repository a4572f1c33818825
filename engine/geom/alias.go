package geom

type (
	GblPt    = Pt[float64, Global]
	GblSz    = Sz[float64, Global]
	GblRect  = Rect[float64, Global]
	GblZ     = Z[Global]
	GblLayer = Layer[Global]

	PrtPt    = Pt[float64, Parent]
	PrtSz    = Sz[float64, Parent]
	PrtRect  = Rect[float64, Parent]
	PrtZ     = Z[Parent]
	PrtLayer = Layer[Parent]

	LclPt    = Pt[float64, Local]
	LclSz    = Sz[float64, Local]
	LclRect  = Rect[float64, Local]
	LclZ     = Z[Local]
	LclLayer = Layer[Local]

	TexPt   = Pt[uint32, Texture]
	TexSz   = Sz[uint32, Texture]
	TexRect = Rect[uint32, Texture]
	TexUV   = Rect[float64, Texture]
)

func LP(x, y float64) LclPt         { return LclPt{x, y} }
func LS(w, h float64) LclSz         { return LclSz{w, h} }
func LR(x, y, w, h float64) LclRect { return LclRect{x, y, w, h} }
func LZ(z int32) LclZ               { return LclZ(z) }
func L(r LclRect, z LclZ) LclLayer  { return LclLayer{R: r, Z: z} }
func GP(x, y float64) GblPt         { return GblPt{x, y} }
func GS(w, h float64) GblSz         { return GblSz{w, h} }
func GR(x, y, w, h float64) GblRect { return GblRect{x, y, w, h} }
func GZ(z int32) GblZ               { return GblZ(z) }
func G(r GblRect, z GblZ) GblLayer  { return GblLayer{R: r, Z: z} }
func TP(x, y uint32) TexPt          { return TexPt{x, y} }
func TS(w, h uint32) TexSz          { return TexSz{w, h} }
func TR(x, y, w, h uint32) TexRect  { return TexRect{x, y, w, h} }
func UV(x, y, w, h float64) TexUV   { return TexUV{x, y, w, h} }
