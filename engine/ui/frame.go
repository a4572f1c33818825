package ui

import (
	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/errors"
	"github.com/hubastard/canopy/engine/geom"
	"github.com/hubastard/canopy/engine/layout"
	"github.com/hubastard/canopy/engine/memory"
	"github.com/hubastard/canopy/engine/paint"
	"github.com/hubastard/canopy/engine/profiler"
	"github.com/hubastard/canopy/engine/text"
)

// RootID is the id of the top-level floating layout.
const RootID = "top"

// Frame drives one pass over the widget tree. Input is resolved at Begin,
// widgets record paint ops and input requests, and End closes the frame.
type Frame struct {
	Input   *core.Input
	Memory  *memory.Memory
	Painter *paint.Painter
	Text    text.Service
	Style   Style
}

func NewFrame(in *core.Input, mem *memory.Memory, p *paint.Painter, txt text.Service, s Style) *Frame {
	return &Frame{Input: in, Memory: mem, Painter: p, Text: txt, Style: s}
}

// Begin starts a frame and returns the root Ui, a floating layout that
// covers the screen.
func (f *Frame) Begin() *Ui {
	f.Painter.Begin()
	f.Input.Begin()
	f.Text.SetScale(f.Input.DPToPx)

	screen := geom.CoerceSz[geom.Local](f.Input.ScreenSize)
	info := layout.ZeroInfo().WithHint(layout.ExactHint(screen))
	return newUi(f, f.Style, layout.NewFloating(info), RootID)
}

func (f *Frame) End() { f.Input.End() }

// Exit writes retained state to disk.
func (f *Frame) Exit() error { return f.Memory.Exit() }

// Run wraps body in Begin and End. An error or panic in body abandons the
// rest of this frame only; it is reported and returned, and the next frame
// starts clean.
func (f *Frame) Run(body func(*Ui) error) (err error) {
	defer profiler.Start("ui.Frame")()
	u := f.Begin()
	defer f.End()
	defer errors.Recover("ui.Frame", &err)

	if err = body(u); err != nil {
		err = errors.Wrap("ui.Frame", errors.KindFrame, err)
		errors.Report("ui.Frame", err)
	}
	return err
}
