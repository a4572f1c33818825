// Package errors carries the engine's structured error type and the hook
// through which frame-level failures are reported.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInit indicates a window, context or renderer setup failure.
	KindInit
	// KindPersist indicates the retained state store could not be read or written.
	KindPersist
	// KindResource indicates an exhausted resource such as the texture atlas.
	KindResource
	// KindRender indicates a rendering error.
	KindRender
	// KindFrame indicates a frame body returned an error.
	KindFrame
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInit:
		return "init"
	case KindPersist:
		return "persist"
	case KindResource:
		return "resource"
	case KindRender:
		return "render"
	case KindFrame:
		return "frame"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error is a structured engine error.
type Error struct {
	// Op is the operation that failed (e.g. "paint.Atlas.Alloc").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error was reported.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an *Error from a message.
func New(op string, kind ErrorKind, msg string) *Error {
	return &Error{Op: op, Kind: kind, Err: stderrors.New(msg)}
}

// Wrap attaches op and kind to err. A nil err stays nil.
func Wrap(op string, kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Kind: kind, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) ErrorKind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is reports whether err carries an *Error of the given kind.
func Is(err error, kind ErrorKind) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Kind == kind
}
