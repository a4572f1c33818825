//go:build profile && windows

package profiler

import "syscall"

// hiddenProcAttr keeps the viewer from flashing a console window.
func hiddenProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{HideWindow: true}
}
