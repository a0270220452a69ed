// ABOUTME: Reader turns a raw byte stream into parsed key events on demand
// ABOUTME: Buffers escape sequences, times out lone ESC, and skips bracketed pastes

package input

import (
	"errors"
	"io"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/mauromedda/termpaint/pkg/key"
)

const (
	readBufSize  = 256
	escTimeout   = 50 * time.Millisecond
	bracketStart = "\x1b[200~"
	bracketEnd   = "\x1b[201~"
)

// ErrClosed is returned by ReadKey once the reader has been closed and
// all buffered input has drained.
var ErrClosed = errors.New("input: reader closed")

// readResult holds the outcome of a single raw Read call.
type readResult struct {
	data []byte
	err  error
}

// Reader parses keyboard input from a raw byte stream. ReadKey blocks
// until one complete key arrives. A background goroutine performs the
// raw reads so escape sequences split across reads and lone-ESC timeouts
// can be resolved against real time.
//
// ReadKey is meant for a single consumer goroutine.
type Reader struct {
	ch   chan readResult
	done chan struct{}
	once sync.Once

	// buf and err belong to the consumer goroutine.
	buf []byte
	err error
}

// NewReader starts reading from r.
func NewReader(r io.Reader) *Reader {
	rd := &Reader{
		ch:   make(chan readResult),
		done: make(chan struct{}),
		buf:  make([]byte, 0, readBufSize),
	}
	go rd.readLoop(r)
	return rd
}

// readLoop performs blocking reads and hands chunks to the consumer.
func (rd *Reader) readLoop(r io.Reader) {
	defer close(rd.ch)
	tmp := make([]byte, readBufSize)
	for {
		n, err := r.Read(tmp)
		if n > 0 {
			data := make([]byte, n)
			copy(data, tmp[:n])
			select {
			case rd.ch <- readResult{data: data}:
			case <-rd.done:
				return
			}
		}
		if err != nil {
			select {
			case rd.ch <- readResult{err: err}:
			case <-rd.done:
			}
			return
		}
	}
}

// Close stops the reader; a blocked ReadKey returns ErrClosed. If the
// underlying Read is blocked it stays blocked until it next returns, at
// which point the goroutine exits.
func (rd *Reader) Close() error {
	rd.once.Do(func() {
		close(rd.done)
	})
	return nil
}

// ReadKey blocks until one key is parsed from the stream. When the
// stream ends, buffered input drains first, then the stream error
// (typically io.EOF) is returned.
func (rd *Reader) ReadKey() (key.Key, error) {
	for {
		consumed, k, wait := rd.tryParse()
		if consumed > 0 {
			rd.buf = rd.buf[consumed:]
			return k, nil
		}

		if rd.err != nil {
			if len(rd.buf) > 0 {
				return rd.flushOne(), nil
			}
			return key.Key{}, rd.err
		}

		if wait {
			if !rd.fill(escTimeout) {
				// Nothing more arrived: a buffered ESC was a real
				// Escape press, not a sequence introducer.
				if len(rd.buf) > 0 && rd.buf[0] == 0x1b {
					rd.buf = rd.buf[1:]
					return key.Key{Type: key.KeyEscape}, nil
				}
			}
			continue
		}

		rd.fill(0)
	}
}

// fill waits for the next chunk and appends it to the buffer. A zero
// timeout blocks until data, stream end, or Close. Returns false only
// when the timeout fired.
func (rd *Reader) fill(timeout time.Duration) bool {
	var timeoutCh <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		timeoutCh = timer.C
	}

	select {
	case res, ok := <-rd.ch:
		if !ok {
			if rd.err == nil {
				rd.err = ErrClosed
			}
			return true
		}
		if res.err != nil {
			rd.err = res.err
			return true
		}
		rd.buf = append(rd.buf, res.data...)
		return true
	case <-rd.done:
		if rd.err == nil {
			rd.err = ErrClosed
		}
		return true
	case <-timeoutCh:
		return false
	}
}

// tryParse attempts to parse one key from the front of the buffer.
// Returns (consumed bytes, parsed key, needs-more-data flag).
func (rd *Reader) tryParse() (int, key.Key, bool) {
	if len(rd.buf) == 0 {
		return 0, key.Key{}, false
	}

	// Bracketed paste: swallow the whole paste as a single unknown
	// key. An incomplete paste waits for its end marker so the CSI
	// fallback cannot eat the start marker and leak the pasted text.
	consumed, wait := rd.pasteState()
	if consumed > 0 {
		return consumed, key.Key{Type: key.KeyUnknown}, false
	}
	if wait {
		return 0, key.Key{}, true
	}

	if rd.buf[0] == 0x1b {
		if len(rd.buf) == 1 {
			return 0, key.Key{}, true
		}
		return rd.parseEscape()
	}

	// Incomplete UTF-8 rune: wait for continuation bytes.
	if !utf8.FullRune(rd.buf) {
		if len(rd.buf) < utf8.UTFMax {
			return 0, key.Key{}, true
		}
		return 1, key.Key{Type: key.KeyUnknown}, false
	}

	r, size := utf8.DecodeRune(rd.buf)
	if r == utf8.RuneError {
		return 1, key.Key{Type: key.KeyUnknown}, false
	}
	return size, key.ParseKey(string(rd.buf[:size])), false
}

// parseEscape resolves an ESC-prefixed buffer of at least two bytes.
func (rd *Reader) parseEscape() (int, key.Key, bool) {
	// A bare CSI or SS3 introducer still needs its final byte; parsing
	// it now would misread a split arrow as Alt+[.
	if len(rd.buf) == 2 && (rd.buf[1] == '[' || rd.buf[1] == 'O') {
		return 0, key.Key{}, true
	}

	// Longest match first, covering sequences up to "\x1b[6~" length.
	maxLen := min(len(rd.buf), 8)
	for end := maxLen; end >= 2; end-- {
		if end == 2 && (rd.buf[1] == '[' || rd.buf[1] == 'O') {
			// The bare introducer never completes a key on its own.
			break
		}
		k := key.ParseKey(string(rd.buf[:end]))
		if k.Type != key.KeyUnknown {
			return end, k, false
		}
	}

	if rd.buf[1] == '[' {
		// Unrecognized CSI: swallow through its final byte as one
		// unknown key so stray parameters never leak as runes.
		for i := 2; i < len(rd.buf); i++ {
			if rd.buf[i] >= 0x40 && rd.buf[i] <= 0x7e {
				return i + 1, key.Key{Type: key.KeyUnknown}, false
			}
		}
		if len(rd.buf) <= 12 {
			return 0, key.Key{}, true
		}
		return len(rd.buf), key.Key{Type: key.KeyUnknown}, false
	}

	// Short SS3 prefix that no table matched yet: wait for the rest.
	if len(rd.buf) <= 3 && rd.buf[1] == 'O' {
		return 0, key.Key{}, true
	}

	// Unknown sequence: consume the ESC, let the rest re-parse.
	return 1, key.Key{Type: key.KeyEscape}, false
}

// pasteState reports a bracketed paste at the front of the buffer:
// the byte length of a complete paste, or wait while one is still
// arriving.
func (rd *Reader) pasteState() (consumed int, wait bool) {
	s := string(rd.buf)
	if len(s) < len(bracketStart) {
		return 0, bracketStart[:len(s)] == s
	}
	if s[:len(bracketStart)] != bracketStart {
		return 0, false
	}
	for i := len(bracketStart); i <= len(s)-len(bracketEnd); i++ {
		if s[i:i+len(bracketEnd)] == bracketEnd {
			return i + len(bracketEnd), false
		}
	}
	// End marker not buffered yet.
	return 0, true
}

// flushOne resolves one key from a buffer that can no longer grow.
func (rd *Reader) flushOne() key.Key {
	consumed, k, wait := rd.tryParse()
	if wait || consumed == 0 {
		if rd.buf[0] == 0x1b {
			rd.buf = rd.buf[1:]
			return key.Key{Type: key.KeyEscape}
		}
		rd.buf = rd.buf[:0]
		return key.Key{Type: key.KeyUnknown}
	}
	rd.buf = rd.buf[consumed:]
	return k
}
