package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hubastard/canopy/engine/assets"
	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/geom"
	"github.com/hubastard/canopy/engine/layout"
	"github.com/hubastard/canopy/engine/paint"
	"github.com/hubastard/canopy/engine/profiler"
	"github.com/hubastard/canopy/engine/ui"
)

const checkerSize = 64

// LayerDemo owns the widget tree shown by the sandbox.
type LayerDemo struct {
	frame    *ui.Frame
	iconPath string

	checker paint.TexLayer
	icon    paint.TexLayer
	hasIcon bool

	clicks int
	ticks  int
}

func (l *LayerDemo) OnAttach(e *core.Engine) {
	p := l.frame.Painter
	h, err := p.Alloc(geom.TS(checkerSize, checkerSize))
	if err != nil {
		log.Printf("sandbox: checker texture: %v", err)
	} else {
		for y := uint32(0); y < checkerSize; y++ {
			for x := uint32(0); x < checkerSize; x++ {
				c := color.RGBA{40, 40, 48, 255}
				if (x/8+y/8)%2 == 0 {
					c = color.RGBA{230, 230, 240, 255}
				}
				p.WritePixel(h, geom.TP(x, y), c)
			}
		}
		l.checker = p.Layer(h)
	}

	if l.iconPath == "" {
		return
	}
	img, err := assets.LoadImage(l.iconPath)
	if err != nil {
		log.Printf("sandbox: icon: %v", err)
		return
	}
	if l.icon, err = assets.Upload(p, img); err != nil {
		log.Printf("sandbox: icon: %v", err)
		return
	}
	l.hasIcon = true
}

func (l *LayerDemo) OnDetach(e *core.Engine) {}

func (l *LayerDemo) OnUpdate(e *core.Engine, dt float64) { l.ticks++ }

func (l *LayerDemo) OnRender(e *core.Engine, alpha float64) {}

func (l *LayerDemo) OnEvent(e *core.Engine, ev core.Event) bool { return false }

// Build is the body of one UI frame.
func (l *LayerDemo) Build(u *ui.Ui) error {
	defer profiler.Start("LayerDemo.Build")()

	if _, err := u.Window("hello", func(c *ui.Ui) error {
		if _, err := c.Label(fmt.Sprintf("ticks: %d", l.ticks)); err != nil {
			return err
		}
		r, err := c.Button("click me")
		if err != nil {
			return err
		}
		if r.Clicked {
			l.clicks++
		}
		_, err = c.Label(fmt.Sprintf("clicked %d times", l.clicks))
		return err
	}); err != nil {
		return err
	}

	if _, err := u.Window("textures", func(c *ui.Ui) error {
		if l.checker.Tex != 0 {
			l.image(c, l.checker, geom.LS(checkerSize, checkerSize))
		}
		if l.hasIcon {
			l.image(c, l.icon, geom.LS(96, 96))
		}
		return nil
	}); err != nil {
		return err
	}

	_, err := u.Window("debug", func(c *ui.Ui) error { return c.DebugPane() })
	return err
}

func (l *LayerDemo) image(u *ui.Ui, tex paint.TexLayer, sz geom.LclSz) {
	ll := u.ChildLayer(layout.ExactHint(sz))
	u.Texture(tex.WithRect(u.Info().Gtf.Rect(ll.R)))
}
