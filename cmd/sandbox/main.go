package main

import (
	"flag"
	"log"

	"github.com/hubastard/canopy/engine/config"
	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/errors"
	glbackend "github.com/hubastard/canopy/engine/gfx/gl"
	"github.com/hubastard/canopy/engine/memory"
	"github.com/hubastard/canopy/engine/paint"
	"github.com/hubastard/canopy/engine/platform"
	"github.com/hubastard/canopy/engine/profiler"
	"github.com/hubastard/canopy/engine/text"
	"github.com/hubastard/canopy/engine/ui"
)

type App struct {
	cfg      core.Config
	iconPath string

	frame *ui.Frame
	demo  *LayerDemo
	keys  *LayerKeys
}

func (a *App) OnStart(e *core.Engine) error {
	if profiler.Enabled {
		profiler.Init(1 << 14)
	}

	mem, err := memory.Load(a.cfg.MemoryPath)
	if err != nil {
		return err
	}
	mem.Debug = mem.Debug || a.cfg.Debug

	font, err := text.Load(a.cfg.FontPath)
	if err != nil {
		return err
	}

	base := ui.DefaultStyle()
	base.FontSize = a.cfg.FontSize
	style, err := ui.LoadTheme(a.cfg.ThemePath, base)
	if err != nil {
		return err
	}

	a.frame = ui.NewFrame(e.Input, mem, paint.New(), font, style)

	a.demo = &LayerDemo{frame: a.frame, iconPath: a.iconPath}
	e.Layers.Push(e, a.demo)
	a.keys = &LayerKeys{frame: a.frame}
	e.Layers.Push(e, a.keys)
	return nil
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {}

func (a *App) OnRender(e *core.Engine, alpha float64) {
	// Frame errors are reported inside Run; the next frame starts clean.
	_ = a.frame.Run(a.demo.Build)

	if err := e.Renderer.Render(a.frame.Painter, e.Input.ScreenSize); err != nil {
		errors.Report("sandbox.Render", err)
	}
	e.Window.SetCursor(a.frame.Painter.Cursor())
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {}

func (a *App) OnShutdown(e *core.Engine) error {
	if a.frame == nil {
		return nil
	}
	return a.frame.Exit()
}

func main() {
	cfgPath := flag.String("config", config.DefaultPath, "path to the YAML config file")
	icon := flag.String("icon", "", "optional image shown in the demo window")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	app := &App{cfg: cfg, iconPath: *icon}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(app, cfg, newWindow, newRenderer); err != nil {
		log.Fatal(err)
	}
}
