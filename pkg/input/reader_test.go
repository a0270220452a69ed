// ABOUTME: Tests for the key reader: sequencing, ESC timeout, split sequences, paste skipping
// ABOUTME: Uses bytes.Reader for scripted input and io.Pipe where timing matters

package input

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/mauromedda/termpaint/pkg/key"
)

func TestReadKeySequence(t *testing.T) {
	t.Parallel()

	rd := NewReader(bytes.NewReader([]byte("ab\r\x1b[B ")))
	defer rd.Close()

	want := []key.Key{
		{Type: key.KeyRune, Rune: 'a'},
		{Type: key.KeyRune, Rune: 'b'},
		{Type: key.KeyEnter},
		{Type: key.KeyDown},
		{Type: key.KeyRune, Rune: ' '},
	}
	for i, w := range want {
		got, err := rd.ReadKey()
		if err != nil {
			t.Fatalf("key %d: ReadKey failed: %v", i, err)
		}
		if got != w {
			t.Errorf("key %d = %+v, want %+v", i, got, w)
		}
	}

	if _, err := rd.ReadKey(); !errors.Is(err, io.EOF) {
		t.Errorf("after drain err = %v, want io.EOF", err)
	}
}

func TestLoneEscapeTimesOut(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	rd := NewReader(pr)
	defer rd.Close()
	defer pw.Close()

	go pw.Write([]byte{0x1b})

	start := time.Now()
	got, err := rd.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey failed: %v", err)
	}
	if got.Type != key.KeyEscape {
		t.Errorf("got %+v, want Escape", got)
	}
	if elapsed := time.Since(start); elapsed < escTimeout {
		t.Errorf("Escape resolved after %v, want at least the %v timeout", elapsed, escTimeout)
	}
}

func TestSplitEscapeSequenceReassembled(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	rd := NewReader(pr)
	defer rd.Close()
	defer pw.Close()

	go func() {
		pw.Write([]byte("\x1b["))
		time.Sleep(10 * time.Millisecond)
		pw.Write([]byte("A"))
	}()

	got, err := rd.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey failed: %v", err)
	}
	if got.Type != key.KeyUp {
		t.Errorf("got %+v, want Up", got)
	}
}

func TestSplitUTF8RuneReassembled(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	rd := NewReader(pr)
	defer rd.Close()
	defer pw.Close()

	go func() {
		pw.Write([]byte{0xe6}) // first byte of 日
		time.Sleep(5 * time.Millisecond)
		pw.Write([]byte{0x97, 0xa5})
	}()

	got, err := rd.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey failed: %v", err)
	}
	if got.Type != key.KeyRune || got.Rune != '日' {
		t.Errorf("got %+v, want rune 日", got)
	}
}

func TestBracketedPasteSkipped(t *testing.T) {
	t.Parallel()

	rd := NewReader(bytes.NewReader([]byte("\x1b[200~pasted content\x1b[201~x")))
	defer rd.Close()

	got, err := rd.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey failed: %v", err)
	}
	if got.Type != key.KeyUnknown {
		t.Errorf("paste should surface as one unknown key, got %+v", got)
	}

	got, err = rd.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey failed: %v", err)
	}
	if got.Type != key.KeyRune || got.Rune != 'x' {
		t.Errorf("key after paste = %+v, want rune x", got)
	}
}

func TestSplitBracketedPasteReassembled(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	rd := NewReader(pr)
	defer rd.Close()
	defer pw.Close()

	go func() {
		pw.Write([]byte("\x1b[200~pasted "))
		time.Sleep(10 * time.Millisecond)
		pw.Write([]byte("content\x1b[201~x"))
	}()

	got, err := rd.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey failed: %v", err)
	}
	if got.Type != key.KeyUnknown {
		t.Errorf("split paste should surface as one unknown key, got %+v", got)
	}

	got, err = rd.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey failed: %v", err)
	}
	if got.Type != key.KeyRune || got.Rune != 'x' {
		t.Errorf("key after paste = %+v, want rune x", got)
	}
}

func TestCloseUnblocksReadKey(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	defer pw.Close()
	rd := NewReader(pr)

	go func() {
		time.Sleep(20 * time.Millisecond)
		rd.Close()
	}()

	if _, err := rd.ReadKey(); !errors.Is(err, ErrClosed) {
		t.Errorf("ReadKey after Close = %v, want ErrClosed", err)
	}

	// Close is idempotent.
	if err := rd.Close(); err != nil {
		t.Errorf("second Close = %v, want nil", err)
	}
}

func TestUnmappedCSISwallowedWhole(t *testing.T) {
	t.Parallel()

	// "\x1b[99~" is not in the tables: the whole sequence collapses to a
	// single unknown key instead of leaking its parameters as runes.
	rd := NewReader(bytes.NewReader([]byte("\x1b[99~x")))
	defer rd.Close()

	got, err := rd.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey failed: %v", err)
	}
	if got.Type != key.KeyUnknown {
		t.Errorf("first key = %+v, want Unknown", got)
	}

	got, err = rd.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey after CSI failed: %v", err)
	}
	if got.Type != key.KeyRune || got.Rune != 'x' {
		t.Errorf("second key = %+v, want rune 'x'", got)
	}
}
