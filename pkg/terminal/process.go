// ABOUTME: ProcessTerminal implements Terminal over a pair of TTY files using golang.org/x/term
// ABOUTME: Defaults to stdin/stdout; any tty pair works, which is how pty-based tests drive it

package terminal

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ProcessTerminal is a real terminal backed by x/term. The zero source is
// the process's own stdin/stdout.
type ProcessTerminal struct {
	mu         sync.Mutex
	in         *os.File
	out        *os.File
	oldState   *term.State
	resizeOnce sync.Once
	resizeFn   func(width, height int)
}

// NewProcessTerminal returns a terminal bound to os.Stdin and os.Stdout.
func NewProcessTerminal() *ProcessTerminal {
	return NewFileTerminal(os.Stdin, os.Stdout)
}

// NewFileTerminal returns a terminal bound to an arbitrary tty pair, such
// as the slave side of a pty.
func NewFileTerminal(in, out *os.File) *ProcessTerminal {
	return &ProcessTerminal{in: in, out: out}
}

// EnterRawMode switches the input to raw mode, saving the previous state.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.oldState = state
	return nil
}

// ExitRawMode restores the input to its previous state. Safe to call when
// raw mode was never entered.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.oldState); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	t.oldState = nil
	return nil
}

// Size returns the current terminal dimensions.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Write sends bytes to the output file.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing frame: %w", err)
	}
	return n, nil
}

// OnResize registers a callback invoked when the terminal is resized.
// The platform listener starts once; later calls only swap the callback.
func (t *ProcessTerminal) OnResize(fn func(width, height int)) {
	t.mu.Lock()
	t.resizeFn = fn
	t.mu.Unlock()

	t.resizeOnce.Do(t.startResizeListener)
}
