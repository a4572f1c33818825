package memory

import (
	"encoding/json"
	"fmt"

	"github.com/hubastard/canopy/engine/geom"
)

// WidgetMemory is everything retained for one widget id.
type WidgetMemory struct {
	Float FloatState `json:"pos"`
}

// FloatState belongs to a widget that hosts a floating layout.
type FloatState struct {
	Windows map[string]*WindowState `json:"wins"`
	TopZ    geom.LclZ               `json:"top_z"`
}

// Window returns the state of a floating child, if it has been placed before.
func (f *FloatState) Window(id string) (*WindowState, bool) {
	w, ok := f.Windows[id]
	return w, ok
}

// UnmarshalJSON rejects windows stored as null. Layouts dereference every
// known window, so such a file is as malformed as one that fails to parse.
func (f *FloatState) UnmarshalJSON(b []byte) error {
	type plain FloatState
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	for id, w := range v.Windows {
		if w == nil {
			return fmt.Errorf("window %q is null", id)
		}
	}
	*f = FloatState(v)
	return nil
}

// Upsert records the final layer of a floating child.
func (f *FloatState) Upsert(id string, l geom.LclLayer) *WindowState {
	if f.Windows == nil {
		f.Windows = map[string]*WindowState{}
	}
	w, ok := f.Windows[id]
	if !ok {
		w = &WindowState{Dir: Move}
		f.Windows[id] = w
	}
	w.Layer = l
	return w
}

// WindowState is the persisted geometry of one floating child plus the
// in-progress drag or resize, if any.
type WindowState struct {
	Layer      geom.LclLayer `json:"l"`
	Dir        ResizeDir     `json:"dir"`
	MouseStart geom.LclPt    `json:"mouse_st"`
	RectStart  geom.LclRect  `json:"rt_st"`
}

// ResizeDir is the edge or corner a drag acts on. Move drags the whole window.
type ResizeDir uint8

const (
	Move ResizeDir = iota
	Left
	Right
	Top
	Bottom
	TopLeft
	TopRight
	BottomLeft
	BottomRight
)

var dirNames = [...]string{
	Move:        "move",
	Left:        "left",
	Right:       "right",
	Top:         "top",
	Bottom:      "bottom",
	TopLeft:     "top_left",
	TopRight:    "top_right",
	BottomLeft:  "bottom_left",
	BottomRight: "bottom_right",
}

func (d ResizeDir) String() string {
	if int(d) < len(dirNames) {
		return dirNames[d]
	}
	return fmt.Sprintf("ResizeDir(%d)", uint8(d))
}

func (d ResizeDir) MarshalText() ([]byte, error) {
	if int(d) >= len(dirNames) {
		return nil, fmt.Errorf("invalid resize direction %d", uint8(d))
	}
	return []byte(dirNames[d]), nil
}

func (d *ResizeDir) UnmarshalText(b []byte) error {
	for i, n := range dirNames {
		if n == string(b) {
			*d = ResizeDir(i)
			return nil
		}
	}
	return fmt.Errorf("unknown resize direction %q", b)
}
