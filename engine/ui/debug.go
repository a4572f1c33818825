package ui

import (
	"fmt"

	"github.com/hubastard/canopy/engine/geom"
	"github.com/hubastard/canopy/engine/profiler"
)

// DebugPane shows frame timings and a toggle for the layout overlay.
func (u *Ui) DebugPane() error {
	r, err := u.Button("[debug] show layout")
	if err != nil {
		return err
	}
	if r.Clicked {
		u.f.Memory.Debug = !u.f.Memory.Debug
	}

	in := u.f.Input
	ft := in.FrameTime.Seconds()
	rt := in.FrameInterval().Seconds()
	fps := 0.0
	if rt > 0 {
		fps = 1 / rt
	}
	st := profiler.ReadStats()
	lines := []string{
		fmt.Sprintf("[debug] frame ms: %.2f", ft*1000),
		fmt.Sprintf("[debug] render ms: %.2f", rt*1000),
		fmt.Sprintf("[debug] fps: %.2f", fps),
		fmt.Sprintf("[debug] z-order: %d", u.Info().Gtf.Z(geom.LZ(0))),
		fmt.Sprintf("[debug] heap: %.1f MiB", float64(st.HeapAlloc)/(1<<20)),
		fmt.Sprintf("[debug] goroutines: %d", st.Goroutines),
	}
	for _, s := range lines {
		if _, err := u.Label(s); err != nil {
			return err
		}
	}
	return nil
}
