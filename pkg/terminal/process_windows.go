// ABOUTME: Windows stub for ProcessTerminal resize handling
// ABOUTME: Windows has no SIGWINCH; painters still pick up size changes on each frame

//go:build windows

package terminal

// startResizeListener is a no-op on Windows. Size changes are still
// observed because painters query Size before every frame.
func (t *ProcessTerminal) startResizeListener() {
}
