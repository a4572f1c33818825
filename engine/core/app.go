package core

import (
	"time"

	"github.com/hubastard/canopy/engine/geom"
	"github.com/hubastard/canopy/engine/paint"
)

// App defines the application hooks.
type App interface {
	OnStart(e *Engine) error           // called once after window/renderer init
	OnUpdate(e *Engine, dt float64)    // called at a fixed tick (60Hz)
	OnRender(e *Engine, alpha float64) // build and draw one frame
	OnEvent(e *Engine, ev Event)       // input/window events
	OnShutdown(e *Engine) error        // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *Input
	Layers   LayerStack
	start    time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	// FramebufferSize is in device pixels, Size in logical units.
	FramebufferSize() (int, int)
	Size() (int, int)
	ContentScale() float64
	SetTitle(title string)
	SetCursor(c paint.Cursor)
	SetEventCallback(cb func(Event))
	Destroy()
}

// Renderer draws a frame's paint ops.
type Renderer interface {
	Init() error
	Resize(w, h int)
	Clear(r, g, b, a float32)
	// Render uploads dirty textures and draws p's ops sorted by z onto a
	// logical screen of the given size.
	Render(p *paint.Painter, screen geom.GblSz) error
	Shutdown()
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

// EventResize carries the new logical window size.
type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

// EventFramebufferResize carries the new framebuffer size in pixels.
type EventFramebufferResize struct{ W, H int }

func (EventFramebufferResize) isEvent() {}

// EventScale carries the device pixels per logical unit.
type EventScale struct{ Scale float64 }

func (EventScale) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

// EventMouseMove is in logical units.
type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventMouseButton struct {
	Button MouseButton
	Down   bool
}

func (EventMouseButton) isEvent() {}

// EventScroll is in lines; positive Y scrolls up.
type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) isEvent() {}

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyD
	KeyP
	KeyS
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor [4]float32 // RGBA

	// MemoryPath is the retained state file.
	MemoryPath string
	// ThemePath is an optional TOML style override.
	ThemePath string
	// FontPath is an optional TTF/OTF file; empty uses Go Regular.
	FontPath string
	FontSize float64
	// Debug starts with the layout overlay on.
	Debug bool
}
