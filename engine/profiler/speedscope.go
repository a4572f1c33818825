//go:build profile

package profiler

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const speedscopeSchema = "https://www.speedscope.app/file-format-schema.json"

type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Name     string      `json:"name,omitempty"`
	Exporter string      `json:"exporter,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // O or C
	At    int64  `json:"at"`   // µs since the first edge
	Frame int    `json:"frame"`
}

// balance turns raw edges into properly nested speedscope events. Closes that
// do not match the innermost open span are dropped, times never run
// backwards, and spans still open at the end are closed at the last time.
func balance(edges []edge) (evs []ssEvent, end int64) {
	if len(edges) == 0 {
		return nil, 0
	}
	base := edges[0].at
	var stack []int
	last := int64(0)
	for _, e := range edges {
		at := max((e.at-base)/1000, last)
		if e.open {
			stack = append(stack, e.name)
			evs = append(evs, ssEvent{Type: "O", At: at, Frame: e.name})
		} else {
			if len(stack) == 0 || stack[len(stack)-1] != e.name {
				continue
			}
			stack = stack[:len(stack)-1]
			evs = append(evs, ssEvent{Type: "C", At: at, Frame: e.name})
		}
		last = at
	}
	for i := len(stack) - 1; i >= 0; i-- {
		evs = append(evs, ssEvent{Type: "C", At: last, Frame: stack[i]})
	}
	return evs, last
}

// writeSpeedscope encodes edges as an evented profile and replaces path
// atomically.
func writeSpeedscope(path string, edges []edge, frameNames []string) error {
	evs, end := balance(edges)
	if len(evs) == 0 {
		return fmt.Errorf("profiler: no spans recorded")
	}
	frames := make([]ssFrame, len(frameNames))
	for i, n := range frameNames {
		frames[i] = ssFrame{Name: n}
	}
	doc := ssFile{
		Schema: speedscopeSchema,
		Shared: ssShared{Frames: frames},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "canopy frames",
			Unit:     "microseconds",
			EndValue: end,
			Events:   evs,
		}},
		Name:     "canopy capture",
		Exporter: "canopy-profiler",
	}

	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("profiler: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		f.Close()
		os.Remove(f.Name())
		return fmt.Errorf("profiler: encode: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return fmt.Errorf("profiler: %w", err)
	}
	return os.Rename(f.Name(), path)
}
