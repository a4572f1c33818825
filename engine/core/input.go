package core

import (
	"time"

	"github.com/hubastard/canopy/engine/geom"
)

// Owner is the widget id holding a mouse slot, if any.
type Owner struct {
	ID  string
	Set bool
}

// Is reports whether id holds the slot.
func (o Owner) Is(id string) bool { return o.Set && o.ID == id }

type request struct {
	z  geom.GblZ
	id string
	ok bool
}

func (r request) owner() Owner {
	if !r.ok {
		return Owner{}
	}
	return Owner{ID: r.id, Set: true}
}

// Input is the per-frame mouse arbitration state.
//
// Widgets never decide on their own who owns the mouse. During a frame they
// file hover and capture requests with a z; the highest z wins and the result
// takes effect at the next Begin. Equal z goes to the last request.
type Input struct {
	// ScreenSize is the logical screen size.
	ScreenSize geom.GblSz
	// DPToPx is device pixels per logical unit.
	DPToPx float64

	Mouse      geom.GblPt
	PrevMouse  geom.GblPt
	MouseDelta geom.GblPt
	// Pressed tracks the left button.
	Pressed   bool
	PressedAt geom.GblPt
	// JustReleased is true for the frame the left button went up.
	JustReleased bool
	// JustCaptured is true when the previous frame's capture owner differed
	// from its mouse owner. That covers both the frame a press starts on a
	// hovered widget and the frame its capture is granted.
	JustCaptured bool
	Scroll       geom.Pt[float64, geom.Any]

	HasMouse Owner
	Captured Owner

	hoverReq   request
	captureReq request

	keys map[Key]bool

	FrameNum      uint64
	BeginTime     time.Time
	PrevBeginTime time.Time
	// FrameTime is how long the last completed frame body took.
	FrameTime time.Duration

	now func() time.Time
}

func NewInput() *Input {
	return &Input{DPToPx: 1, keys: map[Key]bool{}, now: time.Now}
}

// Begin resolves last frame's requests into this frame's owners.
func (in *Input) Begin() {
	in.PrevBeginTime = in.BeginTime
	in.BeginTime = in.now()
	in.FrameNum++
	in.MouseDelta = in.Mouse.Sub(in.PrevMouse)

	if in.Captured != in.HasMouse {
		in.JustCaptured = true
	}
	in.Captured = in.captureReq.owner()
	in.captureReq = request{}
	in.HasMouse = in.Captured
	if hover := in.hoverReq.owner(); !in.HasMouse.Set {
		in.HasMouse = hover
	}
	in.hoverReq = request{}
}

// End clears the one-frame edges.
func (in *Input) End() {
	in.JustCaptured = false
	in.JustReleased = false
	in.Scroll = geom.Pt[float64, geom.Any]{}
	in.PrevMouse = in.Mouse
	in.FrameTime = in.now().Sub(in.BeginTime)
}

// RequestHover asks for the mouse at z. It replaces an earlier request of
// lower or equal z.
func (in *Input) RequestHover(z geom.GblZ, id string) {
	if !in.hoverReq.ok || z >= in.hoverReq.z {
		in.hoverReq = request{z: z, id: id, ok: true}
	}
}

// RequestCapture asks to keep the mouse across frames while the button is
// down. Once the current owner renews its capture nobody else can take it
// this frame; the owner's renewal also beats any higher z request.
func (in *Input) RequestCapture(z geom.GblZ, id string) {
	if !in.captureReq.ok {
		in.captureReq = request{z: z, id: id, ok: true}
		return
	}
	prolonged := in.Captured.Is(in.captureReq.id)
	if !prolonged && (z >= in.captureReq.z || in.Captured.Is(id)) {
		in.captureReq = request{z: z, id: id, ok: true}
	}
}

// Hovered files a hover request when the mouse is over l and reports whether
// id owns the mouse this frame.
func (in *Input) Hovered(id string, l geom.GblLayer) bool {
	inside := l.Contains(in.Mouse)
	if inside {
		in.RequestHover(l.Z, id)
	}
	return inside && in.HasMouse.Is(id)
}

// Held files a capture request while the button is down over l (or anywhere,
// once id holds the capture) and reports whether id owns the mouse.
func (in *Input) Held(id string, l geom.GblLayer) bool {
	capture := in.Pressed && (in.Captured.Is(id) || l.Contains(in.Mouse))
	if capture {
		in.RequestCapture(l.Z, id)
	}
	return capture && in.HasMouse.Is(id)
}

// Clicked is true on the frame the button is released over l by the widget
// that held the capture.
func (in *Input) Clicked(id string, l geom.GblLayer) bool {
	return in.HasMouse.Is(id) && in.JustReleased && in.Captured.Is(id) && l.Contains(in.Mouse)
}

// Handle folds a platform event into the state.
func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
	case EventMouseMove:
		in.Mouse = geom.GP(e.X, e.Y)
	case EventMouseButton:
		if e.Button != MouseLeft {
			return
		}
		in.JustReleased = !e.Down && in.Pressed
		in.Pressed = e.Down
		in.PressedAt = in.Mouse
	case EventScroll:
		in.Scroll = in.Scroll.Add(geom.Pt[float64, geom.Any]{X: e.Xoff, Y: -e.Yoff})
	case EventResize:
		in.ScreenSize = geom.GS(float64(e.W), float64(e.H))
	case EventScale:
		if e.Scale > 0 {
			in.DPToPx = e.Scale
		}
	}
}

func (in *Input) IsKeyDown(k Key) bool { return in.keys[k] }

// FrameInterval is the time between the last two frame starts.
func (in *Input) FrameInterval() time.Duration {
	if in.PrevBeginTime.IsZero() {
		return 0
	}
	return in.BeginTime.Sub(in.PrevBeginTime)
}
