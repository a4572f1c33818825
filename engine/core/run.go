package core

import (
	"fmt"
	"log"
	"runtime"
	"time"
)

// Run wires the platform window + renderer and executes the main loop.
//
// Events reach the layer stack first, then the App, then Engine.Input. The
// App renders once per loop iteration, after the fixed updates.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Destroy()

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer rend.Shutdown()

	eng := &Engine{Window: win, Renderer: rend, Input: NewInput(), start: time.Now()}

	fw, fh := win.FramebufferSize()
	rend.Resize(fw, fh)
	w, h := win.Size()
	eng.Input.Handle(EventResize{W: w, H: h})
	eng.Input.Handle(EventScale{Scale: win.ContentScale()})

	win.SetEventCallback(func(ev Event) {
		if fb, ok := ev.(EventFramebufferResize); ok && fb.W > 0 && fb.H > 0 {
			rend.Resize(fb.W, fb.H)
		}
		if eng.Layers.Dispatch(eng, ev) {
			return
		}
		app.OnEvent(eng, ev)
		eng.Input.Handle(ev)
	})

	if err := app.OnStart(eng); err != nil {
		return fmt.Errorf("start: %w", err)
	}

	// Fixed-timestep (60 Hz) updates, one render per iteration.
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		clear   = cfg.ClearColor
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		accum += now.Sub(prev)
		prev = now

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		steps := 0
		for accum >= tick && steps < maxStep {
			dt := float64(tick) / float64(time.Second)
			eng.Layers.update(eng, dt)
			app.OnUpdate(eng, dt)
			accum -= tick
			steps++
		}
		alpha := float64(accum) / float64(tick)

		rend.Clear(clear[0], clear[1], clear[2], clear[3])
		app.OnRender(eng, alpha)
		eng.Layers.render(eng, alpha)

		win.SwapBuffers()
	}

	eng.Layers.Clear(eng)
	err = app.OnShutdown(eng)
	log.Println("Engine exit")
	return err
}
