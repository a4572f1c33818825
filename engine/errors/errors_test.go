package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

type recordHandler struct{ got []*Error }

func (r *recordHandler) HandleError(err *Error) { r.got = append(r.got, err) }

func TestErrorKindString(t *testing.T) {
	tests := map[ErrorKind]string{
		KindUnknown:  "unknown",
		KindInit:     "init",
		KindPersist:  "persist",
		KindResource: "resource",
		KindRender:   "render",
		KindFrame:    "frame",
		KindPanic:    "panic",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}

func TestErrorFormatAndUnwrap(t *testing.T) {
	base := stderrors.New("atlas full")
	err := fmt.Errorf("draw label: %w", Wrap("paint.Atlas.Alloc", KindResource, base))

	if !Is(err, KindResource) {
		t.Error("Is(err, KindResource) = false")
	}
	if Is(err, KindPersist) {
		t.Error("Is(err, KindPersist) = true")
	}
	if !stderrors.Is(err, base) {
		t.Error("base error lost in chain")
	}
	if want := "paint.Atlas.Alloc [resource]: atlas full"; !strings.Contains(err.Error(), want) {
		t.Errorf("Error() = %q, want it to contain %q", err.Error(), want)
	}
	if Wrap("op", KindInit, nil) != nil {
		t.Error("Wrap(nil) should be nil")
	}
}

func TestReportAndRecover(t *testing.T) {
	rec := &recordHandler{}
	SetHandler(rec)
	defer SetHandler(nil)

	Report("ui.Frame", stderrors.New("boom"))
	if len(rec.got) != 1 || rec.got[0].Op != "ui.Frame" || rec.got[0].Timestamp.IsZero() {
		t.Fatalf("reported = %+v", rec.got)
	}

	var err error
	func() {
		defer Recover("layout.Child", &err)
		panic("bad layout")
	}()
	if KindOf(err) != KindPanic {
		t.Errorf("KindOf(recovered) = %v, want panic", KindOf(err))
	}
	if len(rec.got) != 2 {
		t.Errorf("panic was not reported")
	}
}
