//go:build profile

package profiler

import (
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// Enabled reports whether spans are recorded in this build.
const Enabled = true

// DumpName is the file Dump writes into the temp dir.
const DumpName = "canopy.profile.speedscope.json"

var rec recorder

// Init starts recording and keeps the newest capacity span edges.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 16
	}
	rec.reset(capacity)
}

// Start opens a span and returns the func that closes it. Before Init both
// are no-ops.
func Start(name string) func() {
	if !rec.on.Load() {
		return func() {}
	}
	id := rec.names.id(name)
	t0 := time.Now().UnixNano()
	rec.push(edge{at: t0, name: id, open: true})
	return func() {
		rec.push(edge{at: max(time.Now().UnixNano(), t0), name: id})
	}
}

// Dump writes the recorded spans as a speedscope profile and tries to open
// it. The path is returned even when no viewer is installed.
func Dump() (string, error) {
	path := filepath.Join(os.TempDir(), DumpName)
	if err := writeSpeedscope(path, rec.snapshot(), rec.names.all()); err != nil {
		return "", err
	}
	cmd := exec.Command("speedscope", path)
	cmd.SysProcAttr = hiddenProcAttr()
	if err := cmd.Start(); err != nil {
		log.Printf("profiler: speedscope: %v", err)
	}
	return path, nil
}

// edge is one end of a span.
type edge struct {
	at   int64 // unix ns
	name int
	open bool
}

// recorder is a fixed ring of span edges. push is lock-free; a snapshot taken
// while another goroutine pushes may contain a torn slot, which the encoder
// drops as an unmatched close.
type recorder struct {
	on    atomic.Bool
	n     atomic.Uint64
	ring  []edge
	names names
}

func (r *recorder) reset(capacity int) {
	r.on.Store(false)
	r.ring = make([]edge, capacity)
	r.n.Store(0)
	r.on.Store(true)
}

func (r *recorder) push(e edge) {
	i := r.n.Add(1) - 1
	r.ring[i%uint64(len(r.ring))] = e
}

// snapshot returns the retained edges oldest first.
func (r *recorder) snapshot() []edge {
	n := r.n.Load()
	size := uint64(len(r.ring))
	first := uint64(0)
	if n > size {
		first = n - size
	}
	out := make([]edge, 0, n-first)
	for i := first; i < n; i++ {
		out = append(out, r.ring[i%size])
	}
	return out
}

// names interns span names so edges stay small.
type names struct {
	mu   sync.Mutex
	ids  map[string]int
	list []string
}

func (ns *names) id(name string) int {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	if id, ok := ns.ids[name]; ok {
		return id
	}
	if ns.ids == nil {
		ns.ids = map[string]int{}
	}
	id := len(ns.list)
	ns.ids[name] = id
	ns.list = append(ns.list, name)
	return id
}

func (ns *names) all() []string {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	return append([]string(nil), ns.list...)
}
