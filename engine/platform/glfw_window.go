package platform

import (
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/paint"
)

// GLFWWindow implements core.Window and pushes events to the app via a handler.
type GLFWWindow struct {
	w       *glfw.Window
	onEv    func(core.Event)
	cursors map[paint.Cursor]*glfw.Cursor
	cursor  paint.Cursor
}

// Must be called on main thread before any GL calls.
func NewGLFWWindow(cfg core.Config) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, err
	}

	// GL 3.3 core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}
	log.Printf("GL: %s\n", gl.GoStr(gl.GetString(gl.VERSION)))

	gw := &GLFWWindow{w: win, cursors: map[paint.Cursor]*glfw.Cursor{}}

	// Callbacks -> translate to core.Event
	win.SetCloseCallback(func(*glfw.Window) { gw.emit(core.EventCloseRequested{}) })
	win.SetSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.emit(core.EventResize{W: w, H: h})
		gw.emit(core.EventScale{Scale: gw.ContentScale()})
	})
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.emit(core.EventFramebufferResize{W: w, H: h})
		gw.emit(core.EventScale{Scale: gw.ContentScale()})
	})
	win.SetContentScaleCallback(func(*glfw.Window, float32, float32) {
		gw.emit(core.EventScale{Scale: gw.ContentScale()})
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		gw.emit(core.EventMouseMove{X: x, Y: y})
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		btn, ok := translateButton(b)
		if !ok || action == glfw.Repeat {
			return
		}
		gw.emit(core.EventMouseButton{Button: btn, Down: action == glfw.Press})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		k := translateKey(key)
		if k == core.KeyUnknown {
			return
		}
		gw.emit(core.EventKey{Key: k, Down: action != glfw.Release, Mods: translateMods(mods)})
	})
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		gw.emit(core.EventScroll{Xoff: xoff, Yoff: yoff})
	})

	return gw, nil
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// core.Window impl
func (g *GLFWWindow) PollEvents()                          { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers()                         { g.w.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool                    { return g.w.ShouldClose() }
func (g *GLFWWindow) RequestClose()                        { g.w.SetShouldClose(true) }
func (g *GLFWWindow) FramebufferSize() (int, int)          { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) Size() (int, int)                     { return g.w.GetSize() }
func (g *GLFWWindow) SetTitle(t string)                    { g.w.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }

// ContentScale is framebuffer pixels per logical unit. Mouse positions and
// window sizes from GLFW are already logical, so the ratio of the two sizes
// is the scale the text service has to render at.
func (g *GLFWWindow) ContentScale() float64 {
	w, _ := g.w.GetSize()
	fw, _ := g.w.GetFramebufferSize()
	if w <= 0 || fw <= 0 {
		return 1
	}
	return float64(fw) / float64(w)
}

// SetCursor changes the pointer shape. Standard cursors are created once and
// reused; setting the current shape again is free.
func (g *GLFWWindow) SetCursor(c paint.Cursor) {
	if c == g.cursor {
		return
	}
	g.cursor = c
	if c == paint.CursorDefault {
		g.w.SetCursor(nil)
		return
	}
	cur, ok := g.cursors[c]
	if !ok {
		cur = glfw.CreateStandardCursor(standardCursor(c))
		g.cursors[c] = cur
	}
	g.w.SetCursor(cur)
}

func (g *GLFWWindow) Destroy() {
	for _, c := range g.cursors {
		c.Destroy()
	}
	g.w.Destroy()
	glfw.Terminate()
}

// standardCursor maps a cursor to the closest GLFW 3.3 shape. 3.3 has no
// diagonal resize cursors.
func standardCursor(c paint.Cursor) glfw.StandardCursor {
	switch c {
	case paint.CursorGrab, paint.CursorGrabbing:
		return glfw.HandCursor
	case paint.CursorResizeE, paint.CursorResizeW:
		return glfw.HResizeCursor
	case paint.CursorResizeN, paint.CursorResizeS:
		return glfw.VResizeCursor
	case paint.CursorResizeNE, paint.CursorResizeNW, paint.CursorResizeSE, paint.CursorResizeSW:
		return glfw.CrosshairCursor
	default:
		return glfw.ArrowCursor
	}
}

func translateButton(b glfw.MouseButton) (core.MouseButton, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return core.MouseLeft, true
	case glfw.MouseButtonRight:
		return core.MouseRight, true
	case glfw.MouseButtonMiddle:
		return core.MouseMiddle, true
	default:
		return 0, false
	}
}

func translateKey(k glfw.Key) core.Key {
	switch k {
	case glfw.KeyEscape:
		return core.KeyEscape
	case glfw.KeySpace:
		return core.KeySpace
	case glfw.KeyD:
		return core.KeyD
	case glfw.KeyP:
		return core.KeyP
	case glfw.KeyS:
		return core.KeyS
	default:
		return core.KeyUnknown
	}
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	return out
}
