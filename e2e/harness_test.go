// ABOUTME: PTY harness for end-to-end painter tests
// ABOUTME: Opens a sized pty pair in raw mode and captures everything painted to it

package e2e

import (
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"

	"github.com/mauromedda/termpaint/pkg/terminal"
)

// session is one pty pair with everything painted to the slave side
// captured for assertions. The slave stays in raw mode so output bytes
// arrive untranslated.
type session struct {
	master *os.File
	tty    *os.File
	term   *terminal.ProcessTerminal

	mu  sync.Mutex
	out strings.Builder
}

// startSession opens a pty pair at the given size and begins capturing
// its output.
func startSession(t *testing.T, cols, rows uint16) *session {
	t.Helper()

	master, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	if err := pty.Setsize(tty, &pty.Winsize{Rows: rows, Cols: cols}); err != nil {
		t.Fatalf("setting pty size: %v", err)
	}

	s := &session{
		master: master,
		tty:    tty,
		term:   terminal.NewFileTerminal(tty, tty),
	}
	if err := s.term.EnterRawMode(); err != nil {
		t.Fatalf("entering raw mode: %v", err)
	}
	go s.capture()

	t.Cleanup(func() {
		_ = s.term.ExitRawMode()
		_ = s.tty.Close()
		_ = s.master.Close()
	})
	return s
}

// capture drains the master side into the output buffer.
func (s *session) capture() {
	buf := make([]byte, 4096)
	for {
		n, err := s.master.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.out.Write(buf[:n])
			s.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// output returns everything captured so far.
func (s *session) output() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.out.String()
}

// expectString polls until want shows up in the captured output.
func (s *session) expectString(t *testing.T, want string, timeout time.Duration) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(s.output(), want) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("did not see %q in pty output within %v:\n%q", want, timeout, s.output())
}

// send writes bytes to the master side, the way a user's keystrokes
// would arrive.
func (s *session) send(t *testing.T, data string) {
	t.Helper()

	if _, err := s.master.Write([]byte(data)); err != nil {
		t.Fatalf("writing to pty: %v", err)
	}
}

// resize changes the pty dimensions mid-test.
func (s *session) resize(t *testing.T, cols, rows uint16) {
	t.Helper()

	if err := pty.Setsize(s.tty, &pty.Winsize{Rows: rows, Cols: cols}); err != nil {
		t.Fatalf("resizing pty: %v", err)
	}
}
