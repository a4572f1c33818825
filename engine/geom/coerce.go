package geom

// Relabelling between spaces. None of these change a value; they only tell the
// compiler the caller knows the two spaces line up.

func CoercePt[T Space, N Number, S Space](p Pt[N, S]) Pt[N, T]       { return Pt[N, T](p) }
func CoerceSz[T Space, N Number, S Space](s Sz[N, S]) Sz[N, T]       { return Sz[N, T](s) }
func CoerceRect[T Space, N Number, S Space](r Rect[N, S]) Rect[N, T] { return Rect[N, T](r) }
func CoerceZ[T Space, S Space](z Z[S]) Z[T]                          { return Z[T](z) }

func CoerceLayer[T Space, S Space](l Layer[S]) Layer[T] {
	return Layer[T]{R: CoerceRect[T](l.R), Z: CoerceZ[T](l.Z)}
}

func CoerceTf[F2, T2 Space, F, T Space](t Tf[F, T]) Tf[F2, T2] {
	return Tf[F2, T2]{Off: CoercePt[T2](t.Off), ZOff: CoerceZ[T2](t.ZOff)}
}

// PtF64 widens integer coordinates for math done in float space.
func PtF64[N Number, S Space](p Pt[N, S]) Pt[float64, S] {
	return Pt[float64, S]{float64(p.X), float64(p.Y)}
}

func SzF64[N Number, S Space](s Sz[N, S]) Sz[float64, S] {
	return Sz[float64, S]{float64(s.W), float64(s.H)}
}

func RectF64[N Number, S Space](r Rect[N, S]) Rect[float64, S] {
	return Rect[float64, S]{float64(r.X), float64(r.Y), float64(r.W), float64(r.H)}
}
