// ABOUTME: Panic recovery helpers that put the terminal back in a usable state
// ABOUTME: Restore the cursor and cooked mode before reporting the panic

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
)

const showCursor = "\x1b[?25h"

// RestoreOnPanic should be deferred at the top of main (or whatever
// goroutine owns the terminal). On panic it shows the cursor, exits raw
// mode, prints the panic value and stack trace to stderr, then exits
// with code 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	restore(t)
	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}

// RecoverGoroutine should be deferred at the top of background goroutines
// that touch the terminal, such as a repaint loop. Unlike RestoreOnPanic
// it does not exit the process, so the owning goroutine can shut down
// cleanly.
func RecoverGoroutine(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	restore(t)
	fmt.Fprintf(os.Stderr, "\ngoroutine panic: %v\n\n%s\n", r, debug.Stack())
}

// restore makes a best-effort attempt to leave the terminal usable.
func restore(t Terminal) {
	_, _ = t.Write([]byte(showCursor))
	_ = t.ExitRawMode()
}
