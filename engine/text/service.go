// Package text measures strings and draws them through the painter's atlas.
package text

import (
	"github.com/hubastard/canopy/engine/geom"
	"github.com/hubastard/canopy/engine/paint"
)

// Service is what the UI needs from a text engine. Sizes are in logical
// units; SetScale tells the service how many device pixels that is.
type Service interface {
	SetScale(dpToPx float64)
	// Measure returns the size of s set at dp.
	Measure(s string, dp float64) (geom.GblSz, error)
	// Draw lays s out from the top-left of l and records one textured op per
	// visible glyph at l's z.
	Draw(p *paint.Painter, s string, dp float64, l geom.GblLayer) error
}
