package errors

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
	"time"
)

// Handler receives errors the engine cannot return to a caller.
type Handler interface {
	HandleError(err *Error)
}

// LogHandler writes reported errors to stderr.
type LogHandler struct {
	// Verbose adds a stack trace for panics.
	Verbose bool
}

func (h *LogHandler) HandleError(err *Error) {
	fmt.Fprintf(os.Stderr, "[canopy] %s %v\n", err.Timestamp.Format("15:04:05.000"), err)
	if h.Verbose && err.Kind == KindPanic {
		fmt.Fprintf(os.Stderr, "%s\n", debug.Stack())
	}
}

var (
	handler   Handler = &LogHandler{}
	handlerMu sync.RWMutex
)

// SetHandler configures the global handler. Pass nil to restore LogHandler.
func SetHandler(h Handler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		h = &LogHandler{}
	}
	handler = h
}

// Report sends err to the global handler. Errors that are not *Error are
// wrapped with KindUnknown under op.
func Report(op string, err error) {
	if err == nil {
		return
	}
	e, ok := err.(*Error)
	if !ok {
		e = &Error{Op: op, Kind: KindOf(err), Err: err}
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	handlerMu.RLock()
	h := handler
	handlerMu.RUnlock()
	h.HandleError(e)
}

// Recover is meant to be deferred. A panic is reported under op and turned
// into a KindPanic error stored in *errp.
func Recover(op string, errp *error) {
	if r := recover(); r != nil {
		e := &Error{Op: op, Kind: KindPanic, Err: fmt.Errorf("%v", r), Timestamp: time.Now()}
		Report(op, e)
		if errp != nil {
			*errp = e
		}
	}
}
