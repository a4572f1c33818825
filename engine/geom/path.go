package geom

// Contour is one connected run of vertices.
type Contour struct {
	Pts    []Pt[float64, Any]
	Closed bool
}

// Path is a list of contours built with MoveTo, LineTo and Close.
type Path struct {
	Contours []Contour
}

func (p *Path) MoveTo(x, y float64) *Path {
	p.Contours = append(p.Contours, Contour{Pts: []Pt[float64, Any]{{x, y}}})
	return p
}

// LineTo extends the current contour, starting one at the origin if needed.
func (p *Path) LineTo(x, y float64) *Path {
	if len(p.Contours) == 0 {
		p.MoveTo(0, 0)
	}
	c := &p.Contours[len(p.Contours)-1]
	c.Pts = append(c.Pts, Pt[float64, Any]{x, y})
	return p
}

func (p *Path) Close() *Path {
	if n := len(p.Contours); n > 0 {
		p.Contours[n-1].Closed = true
	}
	return p
}

// PathOf builds a closed polygon.
func PathOf[S Space](pts ...Pt[float64, S]) Path {
	var p Path
	for i, v := range pts {
		if i == 0 {
			p.MoveTo(v.X, v.Y)
			continue
		}
		p.LineTo(v.X, v.Y)
	}
	return *p.Close()
}

func (p Path) Empty() bool {
	for _, c := range p.Contours {
		if len(c.Pts) > 0 {
			return false
		}
	}
	return true
}
