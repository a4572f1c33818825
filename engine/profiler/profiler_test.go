//go:build profile

package profiler

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestRecorderKeepsNewest(t *testing.T) {
	var r recorder
	r.reset(3)
	for i := range 5 {
		r.push(edge{at: int64(i)})
	}
	got := r.snapshot()
	if len(got) != 3 || got[0].at != 2 || got[2].at != 4 {
		t.Errorf("snapshot = %+v, want at 2..4", got)
	}
}

func TestNamesAreInterned(t *testing.T) {
	var ns names
	a, b := ns.id("frame"), ns.id("layout")
	if a == b || ns.id("frame") != a {
		t.Fatalf("ids = %d, %d", a, b)
	}
	if got := ns.all(); len(got) != 2 || got[b] != "layout" {
		t.Errorf("all = %v", got)
	}
}

func TestBalance(t *testing.T) {
	const outer, inner = 0, 1
	tests := map[string]struct {
		edges []edge
		want  string
		end   int64
	}{
		"nested": {
			edges: []edge{{0, outer, true}, {1000, inner, true}, {2000, inner, false}, {3000, outer, false}},
			want:  "OOCC",
			end:   3,
		},
		"mismatched close dropped, rest auto closed": {
			edges: []edge{{0, outer, true}, {1000, inner, true}, {2000, outer, false}, {3000, inner, false}},
			want:  "OOCC",
			end:   3,
		},
		"time never runs backwards": {
			edges: []edge{{5000, outer, true}, {4000, outer, false}},
			want:  "OC",
			end:   0,
		},
		"empty": {},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			evs, end := balance(tt.edges)
			got := ""
			for _, e := range evs {
				got += e.Type
			}
			if got != tt.want || end != tt.end {
				t.Errorf("balance = %q end %d, want %q end %d", got, end, tt.want, tt.end)
			}
		})
	}
}

func TestWriteSpeedscope(t *testing.T) {
	path := filepath.Join(t.TempDir(), DumpName)
	edges := []edge{{0, 0, true}, {1000, 1, true}, {2000, 0, false}, {3000, 1, false}}
	if err := writeSpeedscope(path, edges, []string{"outer", "inner"}); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc ssFile
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatal(err)
	}
	if len(doc.Shared.Frames) != 2 || doc.Shared.Frames[1].Name != "inner" {
		t.Errorf("frames = %+v", doc.Shared.Frames)
	}
	evs := doc.Profiles[0].Events
	if len(evs) != 4 || evs[3].Frame != 0 {
		t.Errorf("events = %+v, want outer auto-closed last", evs)
	}
}

func TestWriteSpeedscopeNoSpans(t *testing.T) {
	path := filepath.Join(t.TempDir(), DumpName)
	if err := writeSpeedscope(path, nil, nil); err == nil {
		t.Fatal("want error for an empty capture")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file written for an empty capture: %v", err)
	}
}
