// Package memory is the retained state that survives between frames and
// between runs of the program.
package memory

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/hubastard/canopy/engine/errors"
)

// DefaultPath is where the store lives when the config does not say otherwise.
const DefaultPath = "vis.json"

// Memory is the whole persisted store.
type Memory struct {
	Widgets Store[WidgetMemory] `json:"wid"`
	// Debug turns on the layout overlay.
	Debug bool `json:"debug"`

	path string
}

// Load reads the store at path. A missing file yields an empty store which is
// written out immediately. A file that exists but cannot be read or parsed is
// a fatal KindPersist error; it is never overwritten.
func Load(path string) (*Memory, error) {
	m := &Memory{path: path}
	b, err := os.ReadFile(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		if err := m.Save(); err != nil {
			return nil, err
		}
		log.Printf("memory: created %s", path)
		return m, nil
	}
	if err != nil {
		return nil, errors.Wrap("memory.Load", errors.KindPersist, fmt.Errorf("read %q: %w", path, err))
	}
	if err := json.Unmarshal(b, m); err != nil {
		return nil, errors.Wrap("memory.Load", errors.KindPersist, fmt.Errorf("failed to parse %q: %w", path, err))
	}
	return m, nil
}

// Widget returns the retained state for id, creating it on first use.
func (m *Memory) Widget(id string) *WidgetMemory { return m.Widgets.Get(id) }

func (m *Memory) Path() string { return m.path }

// Save writes the full store through a temporary file and a rename.
func (m *Memory) Save() error {
	tmp := m.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return errors.Wrap("memory.Save", errors.KindPersist, err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return errors.Wrap("memory.Save", errors.KindPersist, err)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap("memory.Save", errors.KindPersist, err)
	}
	if err := os.Rename(tmp, m.path); err != nil {
		return errors.Wrap("memory.Save", errors.KindPersist, err)
	}
	return nil
}

// Exit flushes the store. Call it once at shutdown.
func (m *Memory) Exit() error {
	if err := m.Save(); err != nil {
		return err
	}
	log.Printf("memory: saved %d widgets to %s", m.Widgets.Len(), m.path)
	return nil
}

// CombineIDs joins id parts into a hierarchical id. Each part is prefixed
// with "##", so CombineIDs("top", "ok") is "##top##ok".
func CombineIDs(ids ...string) string {
	var b strings.Builder
	for _, id := range ids {
		b.WriteString("##")
		b.WriteString(id)
	}
	return b.String()
}
