package core

import (
	"testing"
	"time"

	"github.com/hubastard/canopy/engine/geom"
)

func box(x, y, w, h float64, z int32) geom.GblLayer {
	return geom.G(geom.GR(x, y, w, h), geom.GZ(z))
}

func newTestInput() *Input {
	in := NewInput()
	clock := time.Unix(0, 0)
	in.now = func() time.Time {
		clock = clock.Add(time.Millisecond)
		return clock
	}
	return in
}

// frame runs one Begin/body/End cycle.
func frame(in *Input, body func()) {
	in.Begin()
	body()
	in.End()
}

func TestHoverHighestZWins(t *testing.T) {
	tests := map[string]struct {
		order []string
		want  string
	}{
		"low first":  {[]string{"low", "high"}, "high"},
		"high first": {[]string{"high", "low"}, "high"},
	}
	zs := map[string]int32{"low": 1, "high": 5}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			in := newTestInput()
			in.Handle(EventMouseMove{X: 10, Y: 10})
			hover := func() {
				for _, id := range tt.order {
					in.Hovered(id, box(0, 0, 20, 20, zs[id]))
				}
			}
			frame(in, hover)
			in.Begin()
			if !in.HasMouse.Is(tt.want) {
				t.Errorf("HasMouse = %+v, want %s", in.HasMouse, tt.want)
			}
			for id := range zs {
				got := in.Hovered(id, box(0, 0, 20, 20, zs[id]))
				if got != (id == tt.want) {
					t.Errorf("Hovered(%s) = %v", id, got)
				}
			}
		})
	}
}

func TestHoverEqualZLastWriterWins(t *testing.T) {
	in := newTestInput()
	in.Handle(EventMouseMove{X: 5, Y: 5})
	frame(in, func() {
		in.Hovered("a", box(0, 0, 10, 10, 3))
		in.Hovered("b", box(0, 0, 10, 10, 3))
	})
	in.Begin()
	if !in.HasMouse.Is("b") {
		t.Errorf("HasMouse = %+v, want b", in.HasMouse)
	}
}

func TestHoverOutsideFilesNothing(t *testing.T) {
	in := newTestInput()
	in.Handle(EventMouseMove{X: 50, Y: 50})
	frame(in, func() {
		if in.Hovered("a", box(0, 0, 10, 10, 1)) {
			t.Error("hovered outside its box")
		}
	})
	in.Begin()
	if in.HasMouse.Set {
		t.Errorf("HasMouse = %+v, want none", in.HasMouse)
	}
}

func TestCaptureProlongation(t *testing.T) {
	in := newTestInput()
	in.Captured = Owner{ID: "x", Set: true}

	// x renews first; a higher request cannot take over.
	in.RequestCapture(1, "x")
	in.RequestCapture(9, "y")
	if in.captureReq.id != "x" {
		t.Errorf("after renewal, request = %q, want x", in.captureReq.id)
	}

	// y asks first at a higher z; x's renewal still replaces it.
	in.captureReq = request{}
	in.RequestCapture(9, "y")
	in.RequestCapture(1, "x")
	if in.captureReq.id != "x" {
		t.Errorf("owner renewal lost to higher z: request = %q", in.captureReq.id)
	}

	// Without a current owner, plain z order applies.
	in.Captured = Owner{}
	in.captureReq = request{}
	in.RequestCapture(4, "a")
	in.RequestCapture(2, "b")
	if in.captureReq.id != "a" {
		t.Errorf("request = %q, want a", in.captureReq.id)
	}
	in.RequestCapture(4, "c")
	if in.captureReq.id != "c" {
		t.Errorf("equal z request = %q, want c", in.captureReq.id)
	}
}

func TestPressDragAndClick(t *testing.T) {
	in := newTestInput()
	btn := box(0, 0, 20, 20, 1)
	var held, clicked bool
	body := func() {
		held = in.Held("btn", btn)
		in.Hovered("btn", btn)
		clicked = in.Clicked("btn", btn)
	}

	in.Handle(EventMouseMove{X: 10, Y: 10})
	frame(in, body) // hover request filed
	frame(in, body) // hover granted
	in.Handle(EventMouseButton{Button: MouseLeft, Down: true})

	in.Begin()
	if !in.JustCaptured {
		t.Error("press frame should see JustCaptured")
	}
	body()
	if !held {
		t.Error("Held = false on the press frame")
	}
	in.End()

	// Drag far outside: capture is kept.
	in.Handle(EventMouseMove{X: 200, Y: 200})
	frame(in, body)
	if !held || !in.Captured.Is("btn") {
		t.Errorf("capture lost while dragging: held=%v captured=%+v", held, in.Captured)
	}
	if in.MouseDelta != geom.GP(190, 190) {
		t.Errorf("MouseDelta = %v", in.MouseDelta)
	}

	// Release outside: no click.
	in.Handle(EventMouseButton{Button: MouseLeft, Down: false})
	in.Begin()
	if !in.JustReleased {
		t.Error("JustReleased not set")
	}
	body()
	if clicked {
		t.Error("clicked after releasing outside")
	}
	in.End()
	if in.JustReleased {
		t.Error("JustReleased survived End")
	}
}

func TestClickInside(t *testing.T) {
	in := newTestInput()
	btn := box(0, 0, 20, 20, 1)
	var clicked bool
	body := func() {
		in.Held("btn", btn)
		in.Hovered("btn", btn)
		clicked = in.Clicked("btn", btn)
	}
	in.Handle(EventMouseMove{X: 5, Y: 5})
	frame(in, body)
	in.Handle(EventMouseButton{Button: MouseLeft, Down: true})
	frame(in, body)
	frame(in, body)
	in.Handle(EventMouseButton{Button: MouseLeft, Down: false})
	frame(in, body)
	if !clicked {
		t.Error("release inside did not click")
	}
	frame(in, body)
	if clicked {
		t.Error("click repeated on the next frame")
	}
}

func TestOtherButtonsIgnored(t *testing.T) {
	in := newTestInput()
	in.Handle(EventMouseButton{Button: MouseRight, Down: true})
	if in.Pressed {
		t.Error("right button pressed the left button state")
	}
}

func TestScrollAccumulatesAndClears(t *testing.T) {
	in := newTestInput()
	in.Handle(EventScroll{Xoff: 1, Yoff: 2})
	in.Handle(EventScroll{Xoff: 0, Yoff: 1})
	in.Begin()
	if in.Scroll.X != 1 || in.Scroll.Y != -3 {
		t.Errorf("Scroll = %v, want (1,-3)", in.Scroll)
	}
	in.End()
	if in.Scroll.X != 0 || in.Scroll.Y != 0 {
		t.Errorf("Scroll after End = %v", in.Scroll)
	}
}

func TestResizeAndScale(t *testing.T) {
	in := newTestInput()
	in.Handle(EventResize{W: 800, H: 600})
	in.Handle(EventScale{Scale: 2})
	if in.ScreenSize != geom.GS(800, 600) || in.DPToPx != 2 {
		t.Errorf("screen = %v scale = %v", in.ScreenSize, in.DPToPx)
	}
	frame(in, func() {})
	frame(in, func() {})
	if in.FrameNum != 2 || in.FrameTime <= 0 || in.FrameInterval() <= 0 {
		t.Errorf("timing: frame=%d time=%v interval=%v", in.FrameNum, in.FrameTime, in.FrameInterval())
	}
}

func TestLayerStackDispatch(t *testing.T) {
	var ls LayerStack
	e := &Engine{}
	bottom := &recLayer{name: "bottom"}
	top := &recLayer{name: "top", handle: true}
	ls.Push(e, bottom)
	ls.Push(e, top)
	if !ls.Dispatch(e, EventCloseRequested{}) {
		t.Error("top layer should handle")
	}
	if bottom.events != 0 || top.events != 1 {
		t.Errorf("events: bottom=%d top=%d", bottom.events, top.events)
	}
	ls.Clear(e)
	if ls.Len() != 0 || !bottom.detached || !top.detached {
		t.Error("Clear did not detach every layer")
	}
}

type recLayer struct {
	name     string
	handle   bool
	events   int
	detached bool
}

func (l *recLayer) OnAttach(*Engine)            {}
func (l *recLayer) OnDetach(*Engine)            { l.detached = true }
func (l *recLayer) OnUpdate(*Engine, float64)   {}
func (l *recLayer) OnRender(*Engine, float64)   {}
func (l *recLayer) OnEvent(*Engine, Event) bool { l.events++; return l.handle }
