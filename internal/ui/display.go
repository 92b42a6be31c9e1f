package ui

import (
	"errors"
	"os"
	"runtime"
)

// CheckDisplay reports whether a display server is reachable before any
// window work begins, so a headless launch fails with a readable message
// instead of a toolkit panic.
func CheckDisplay() error {
	if runtime.GOOS != "linux" {
		return nil
	}
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return errors.New("no display found: an X11 or Wayland session is required (set DISPLAY or WAYLAND_DISPLAY)")
	}
	return nil
}
