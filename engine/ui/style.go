package ui

import (
	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/geom"
)

// Style is the look shared by every widget in a frame.
type Style struct {
	Pad      geom.LclSz
	FontSize float64
	Dark     colors.Color
	Light    colors.Color
	Acc1     colors.Color
	Acc2     colors.Color
	Acc3     colors.Color
}

func DefaultStyle() Style {
	return Style{
		Pad:      geom.LS(8, 8),
		FontSize: 12,
		Dark:     colors.RGBA8(7, 7, 7, 255),
		Light:    colors.RGBA8(233, 241, 247, 255),
		Acc1:     colors.RGBA8(249, 220, 92, 255),
		Acc2:     colors.RGBA8(250, 130, 76, 255),
		Acc3:     colors.RGBA8(60, 145, 230, 255),
	}
}
