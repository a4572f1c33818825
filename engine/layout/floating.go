package layout

import (
	"github.com/hubastard/canopy/engine/geom"
	"github.com/hubastard/canopy/engine/memory"
	"github.com/hubastard/canopy/engine/paint"
)

const (
	// zStep separates floating children so each has room for its own
	// descendants' z offsets.
	zStep = geom.LclZ(1000)
	// hotspot is how far in from the hit-box edge a press resizes.
	hotspot = 18.0
)

// The hit-box reaches 16 units outside the window.
var resizeInset = geom.LS(-16, -16)

func (l *Layout) floatState(env Env) *memory.FloatState {
	return &env.Memory.Widget(env.ID).Float
}

func (l *Layout) nextZ(env Env) geom.LclZ {
	st := l.floatState(env)
	st.TopZ += zStep
	return st.TopZ
}

func hitbox(w *memory.WindowState) geom.LclLayer {
	return w.Layer.Inset(resizeInset)
}

func (l *Layout) floatChildInfo(env Env, hint Hint, childID string) Info {
	if w, ok := l.floatState(env).Window(childID); ok {
		l.interact(env, childID, w)
		hint = hint.WithReq(w.Layer.R.Size())
		return ComputeChildInfo(l.info, w.Layer.R.TL(), w.Layer.Z, hint)
	}
	return ComputeChildInfo(l.info, l.loc, l.nextZ(env), hint)
}

func (l *Layout) floatPlace(env Env, placed geom.LclLayer, childID string) {
	l.floatState(env).Upsert(childID, placed)
	l.loc.Y = placed.R.Bottom()
}

// interact runs the drag/resize machine for one window. The direction and
// start rect are taken once, on the first held frame, and kept until release.
func (l *Layout) interact(env Env, childID string, w *memory.WindowState) {
	ltf := l.info.Gtf.Inv()
	hb := hitbox(w)
	ghb := l.info.Gtf.Layer(hb)
	in := env.Input

	switch {
	case in.Held(childID, ghb):
		// Held before the capture is ours is the press frame. The frame the
		// capture is granted also sees JustCaptured and must not restart.
		if !in.Captured.Is(childID) {
			l.startDrag(env, w)
		}
		d := ltf.Pt(in.Mouse).Sub(w.MouseStart).AsSz()
		delta, cursor := resizeInfo(d, w.Dir, true)
		w.Layer.R = w.RectStart.Add(delta)
		env.Painter.SetCursor(cursor)
	case in.Hovered(childID, ghb):
		_, cursor := resizeInfo(geom.LclSz{}, resizeDir(hb, ltf.Pt(in.Mouse)), false)
		env.Painter.SetCursor(cursor)
	}
}

func (l *Layout) startDrag(env Env, w *memory.WindowState) {
	start := l.info.Gtf.Inv().Pt(env.Input.PressedAt)
	w.Dir = resizeDir(hitbox(w), start)
	w.MouseStart = start
	w.RectStart = w.Layer.R
	w.Layer.Z = l.nextZ(env)
}

// resizeDir picks what a press at mouse acts on. Corners win; an edge only
// counts when no other edge band matches.
func resizeDir(hb geom.LclLayer, mouse geom.LclPt) memory.ResizeDir {
	left := mouse.X < hb.R.X+hotspot
	top := mouse.Y < hb.R.Y+hotspot
	right := mouse.X > hb.R.Right()-hotspot
	bottom := mouse.Y > hb.R.Bottom()-hotspot

	switch {
	case top && left:
		return memory.TopLeft
	case top && right:
		return memory.TopRight
	case bottom && left:
		return memory.BottomLeft
	case bottom && right:
		return memory.BottomRight
	case left && !top && !right && !bottom:
		return memory.Left
	case top && !left && !right && !bottom:
		return memory.Top
	case right && !left && !top && !bottom:
		return memory.Right
	case bottom && !left && !top && !right:
		return memory.Bottom
	default:
		return memory.Move
	}
}

// resizeInfo turns a mouse delta into a change of x, y, w and h, plus the
// cursor to show.
func resizeInfo(d geom.LclSz, dir memory.ResizeDir, captured bool) (geom.LclRect, paint.Cursor) {
	switch dir {
	case memory.TopLeft:
		return geom.LR(d.W, d.H, -d.W, -d.H), paint.CursorResizeNW
	case memory.TopRight:
		return geom.LR(0, d.H, d.W, -d.H), paint.CursorResizeNE
	case memory.BottomLeft:
		return geom.LR(d.W, 0, -d.W, d.H), paint.CursorResizeSW
	case memory.BottomRight:
		return geom.LR(0, 0, d.W, d.H), paint.CursorResizeSE
	case memory.Left:
		return geom.LR(d.W, 0, -d.W, 0), paint.CursorResizeW
	case memory.Top:
		return geom.LR(0, d.H, 0, -d.H), paint.CursorResizeN
	case memory.Right:
		return geom.LR(0, 0, d.W, 0), paint.CursorResizeE
	case memory.Bottom:
		return geom.LR(0, 0, 0, d.H), paint.CursorResizeS
	default:
		if captured {
			return geom.LR(d.W, d.H, 0, 0), paint.CursorGrabbing
		}
		return geom.LR(d.W, d.H, 0, 0), paint.CursorGrab
	}
}
