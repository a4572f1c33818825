package memory

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/hubastard/canopy/engine/errors"
	"github.com/hubastard/canopy/engine/geom"
)

func TestLoadMissingCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vis.json")
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Widgets.Len() != 0 || m.Debug {
		t.Errorf("fresh store not empty: %+v", m)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("store was not written: %v", err)
	}
}

func TestLoadCorruptIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vis.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, errors.KindPersist) {
		t.Fatalf("Load(corrupt) err = %v, want persist error", err)
	}
	b, _ := os.ReadFile(path)
	if string(b) != "{not json" {
		t.Error("corrupt file was overwritten")
	}
}

func TestLoadRejectsNullWindow(t *testing.T) {
	tests := map[string]string{
		"null window": `{"wid": {"##top": {"pos": {"wins": {"##top##a": null}, "top_z": 1000}}}, "debug": false}`,
		"null among":  `{"wid": {"##top": {"pos": {"wins": {"##top##a": {"l": {"r": {"x": 0, "y": 0, "w": 10, "h": 10}, "z": 1000}}, "##top##b": null}}}}}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "vis.json")
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); !errors.Is(err, errors.KindPersist) {
				t.Fatalf("Load err = %v, want persist error", err)
			}
			if b, _ := os.ReadFile(path); string(b) != body {
				t.Error("malformed file was overwritten")
			}
		})
	}
}

func TestNullWidgetEntryIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vis.json")
	if err := os.WriteFile(path, []byte(`{"wid": {"##top": null}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := m.Widget("##top").Float.Window("##top##a"); ok {
		t.Error("empty widget reports a window")
	}
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vis.json")
	m, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	m.Debug = true
	top := m.Widget("top")
	top.Float.TopZ = geom.LZ(3000)
	w := top.Float.Upsert(CombineIDs("top", "Settings"), geom.L(geom.LR(12.5, 40, 300, 200), geom.LZ(2000)))
	w.Dir = BottomRight
	w.MouseStart = geom.LP(7, 8)
	w.RectStart = geom.LR(1, 2, 3, 4)
	m.Widget(CombineIDs("top", "empty"))

	if err := m.Exit(); err != nil {
		t.Fatalf("Exit: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !got.Debug {
		t.Error("Debug flag lost")
	}
	if ids := got.Widgets.IDs(); !slices.Equal(ids, m.Widgets.IDs()) {
		t.Errorf("ids = %v, want %v", ids, m.Widgets.IDs())
	}
	fs := got.Widget("top").Float
	if fs.TopZ != 3000 {
		t.Errorf("TopZ = %d, want 3000", fs.TopZ)
	}
	gw, ok := fs.Window("##top##Settings")
	if !ok {
		t.Fatal("window state lost")
	}
	if *gw != *w {
		t.Errorf("window = %+v, want %+v", *gw, *w)
	}
}

func TestStoreGetIsLazy(t *testing.T) {
	var s Store[WidgetMemory]
	if s.Has("a") {
		t.Fatal("empty store has id")
	}
	a := s.Get("a")
	a.Float.TopZ = 5
	if s.Get("a").Float.TopZ != 5 || s.Len() != 1 {
		t.Error("Get did not return the same entry")
	}
}

func TestCombineIDs(t *testing.T) {
	tests := map[string]struct {
		in   []string
		want string
	}{
		"none":   {nil, ""},
		"one":    {[]string{"top"}, "##top"},
		"nested": {[]string{"##top", "##button##OK"}, "####top####button##OK"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := CombineIDs(tt.in...); got != tt.want {
				t.Errorf("CombineIDs(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestResizeDirText(t *testing.T) {
	for d := Move; d <= BottomRight; d++ {
		b, err := d.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got ResizeDir
		if err := got.UnmarshalText(b); err != nil || got != d {
			t.Errorf("%v round trip = %v, %v", d, got, err)
		}
	}
	var d ResizeDir
	if err := d.UnmarshalText([]byte("diagonal")); err == nil {
		t.Error("unknown direction accepted")
	}
}
