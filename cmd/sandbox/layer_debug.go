package main

import (
	"log"

	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/errors"
	"github.com/hubastard/canopy/engine/profiler"
	"github.com/hubastard/canopy/engine/ui"
)

// LayerKeys handles the global shortcuts before the UI sees any input.
type LayerKeys struct {
	frame *ui.Frame
}

func (l *LayerKeys) OnAttach(e *core.Engine)                {}
func (l *LayerKeys) OnDetach(e *core.Engine)                {}
func (l *LayerKeys) OnUpdate(e *core.Engine, dt float64)    {}
func (l *LayerKeys) OnRender(e *core.Engine, alpha float64) {}

func (l *LayerKeys) OnEvent(e *core.Engine, ev core.Event) bool {
	v, ok := ev.(core.EventKey)
	if !ok || !v.Down {
		return false
	}
	ctrl := v.Mods&core.ModCtrl != 0
	switch {
	case v.Key == core.KeyEscape:
		e.Window.RequestClose()
		return true
	case ctrl && v.Key == core.KeyD:
		l.frame.Memory.Debug = !l.frame.Memory.Debug
		return true
	case ctrl && v.Key == core.KeyS:
		if err := l.frame.Memory.Save(); err != nil {
			errors.Report("sandbox.Save", err)
		}
		return true
	case ctrl && v.Key == core.KeyP:
		if !profiler.Enabled {
			log.Println("profiler: rebuild with -tags profile")
			return true
		}
		if path, err := profiler.Dump(); err == nil {
			log.Println("speedscope dump:", path)
		} else {
			log.Println("profiler dump error:", err)
		}
		return true
	}
	return false
}
