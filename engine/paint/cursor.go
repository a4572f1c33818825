package paint

// Cursor is the pointer shape a frame asks the platform to show.
type Cursor uint8

const (
	CursorDefault Cursor = iota
	CursorGrab
	CursorGrabbing
	CursorResizeN
	CursorResizeS
	CursorResizeE
	CursorResizeW
	CursorResizeNE
	CursorResizeNW
	CursorResizeSE
	CursorResizeSW
)

func (c Cursor) String() string {
	switch c {
	case CursorGrab:
		return "grab"
	case CursorGrabbing:
		return "grabbing"
	case CursorResizeN:
		return "n-resize"
	case CursorResizeS:
		return "s-resize"
	case CursorResizeE:
		return "e-resize"
	case CursorResizeW:
		return "w-resize"
	case CursorResizeNE:
		return "ne-resize"
	case CursorResizeNW:
		return "nw-resize"
	case CursorResizeSE:
		return "se-resize"
	case CursorResizeSW:
		return "sw-resize"
	default:
		return "default"
	}
}
