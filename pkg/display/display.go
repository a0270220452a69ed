// ABOUTME: Painter renders an ordered item buffer in place without flicker
// ABOUTME: Homes the cursor, overwrites content, and erases only surplus lines

package display

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/mauromedda/termpaint/internal/log"
	"github.com/mauromedda/termpaint/pkg/terminal"
	"github.com/mauromedda/termpaint/pkg/width"
)

// Renderable is implemented by items that draw themselves with terminal
// styling. Render receives the current terminal width in columns and may
// return multi-line text.
type Renderable interface {
	Render(width int) (string, error)
}

// errorLine replaces the output of an item whose Render fails.
const errorLine = "ERROR OCCURRED"

// Escape sequences the painter emits.
const (
	home        = "\x1b[H"
	clearScreen = "\x1b[2J"
	clearLine   = "\x1b[K"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// cursorUp moves the cursor up n rows.
func cursorUp(n int) string {
	return fmt.Sprintf("\x1b[%dA", n)
}

const (
	defaultRefreshHz = 25.0
	fallbackWidth    = 80
	fallbackHeight   = 24
)

// Painter paints an ordered buffer of items onto a terminal. Every frame
// starts by homing the cursor and overwriting the previous content, so
// the screen is never blanked between frames. Rows left over from a
// taller previous frame are erased individually.
//
// All methods are safe for concurrent use.
type Painter struct {
	mu    sync.Mutex
	term  terminal.Terminal
	items []any

	// lastLines is how many rows the previous frame occupied. The erase
	// pass depends on it, so every paint path must keep it current.
	lastLines int
	cols      int
	rows      int

	hz           float64
	cursorHidden bool

	loop    *loopHandle
	resized chan struct{}

	frame bytes.Buffer
}

// Option configures a Painter.
type Option func(*Painter)

// WithRefreshRate sets the repaint frequency StartLoop uses when called
// with a non-positive rate. Non-positive values here are ignored.
func WithRefreshRate(hz float64) Option {
	return func(p *Painter) {
		if hz > 0 {
			p.hz = hz
		}
	}
}

// WithHiddenCursor hides the cursor for the painter's lifetime. Close
// shows it again.
func WithHiddenCursor() Option {
	return func(p *Painter) {
		p.cursorHidden = true
	}
}

// New clears the terminal and returns a Painter ready to paint frames on
// it. If the terminal size cannot be determined, 80x24 is assumed until a
// later query succeeds.
func New(t terminal.Terminal, opts ...Option) *Painter {
	p := &Painter{
		term:    t,
		hz:      defaultRefreshHz,
		resized: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.cols, p.rows = fallbackWidth, fallbackHeight
	if w, h, err := t.Size(); err == nil {
		p.cols, p.rows = w, h
	}

	init := clearScreen + home
	if p.cursorHidden {
		init += hideCursor
	}
	if _, err := t.Write([]byte(init)); err != nil {
		log.Warn("display: initial clear failed: %v", err)
	}

	t.OnResize(func(w, h int) {
		select {
		case p.resized <- struct{}{}:
		default:
		}
	})

	return p
}

// Append adds one item to the end of the paint buffer. Items can be
// strings, fmt.Stringers, Renderables, or anything fmt.Sprint can format.
func (p *Painter) Append(item any) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.items = append(p.items, item)
}

// Len returns the number of buffered items.
func (p *Painter) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.items)
}

// ClearBuffer empties the paint buffer without touching the screen.
func (p *Painter) ClearBuffer() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.items = p.items[:0]
}

// Clear empties the buffer, wipes the screen, and homes the cursor.
func (p *Painter) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.items = p.items[:0]
	p.lastLines = 0
	if _, err := p.term.Write([]byte(clearScreen + home)); err != nil {
		log.Debug("display: clear write failed: %v", err)
	}
}

// DisplayNow paints the buffer once and empties it. While a refresh loop
// is running this is a no-op; the loop owns the screen.
func (p *Painter) DisplayNow(rich bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.loop != nil {
		return
	}
	p.render(rich)
	p.items = p.items[:0]
}

// RenderOnce paints the buffer once and keeps it, the same way one loop
// iteration does. Callers animating by hand can use it instead of a loop.
func (p *Painter) RenderOnce(rich bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.render(rich)
}

// Close stops any refresh loop and restores the cursor if it was hidden.
// The terminal itself stays open; it belongs to the caller.
func (p *Painter) Close() error {
	p.StopLoop()
	if p.cursorHidden {
		if _, err := p.term.Write([]byte(showCursor)); err != nil {
			return fmt.Errorf("restoring cursor: %w", err)
		}
	}
	return nil
}

// render assembles one frame and writes it in a single call. An empty
// buffer produces no output at all. Callers must hold p.mu.
func (p *Painter) render(rich bool) {
	if len(p.items) == 0 {
		return
	}

	p.frame.Reset()
	p.frame.WriteString(home)

	// A resize invalidates every painted row. Wipe once and restart the
	// row accounting; if the size query fails, keep the cached geometry.
	if w, h, err := p.term.Size(); err == nil && (w != p.cols || h != p.rows) {
		log.Debug("display: resize %dx%d -> %dx%d", p.cols, p.rows, w, h)
		p.cols, p.rows = w, h
		p.frame.WriteString(clearScreen)
		p.lastLines = 0
	}

	// Truncating to the terminal width keeps auto-wrap from adding rows
	// the line accounting cannot see.
	lines := strings.Split(p.renderItems(rich), "\n")
	for i, line := range lines {
		if i > 0 {
			p.frame.WriteByte('\n')
		}
		p.frame.WriteString(width.Truncate(line, p.cols))
	}

	count := len(lines)
	if surplus := p.lastLines - count; surplus > 0 {
		for range surplus {
			p.frame.WriteString("\n" + clearLine)
		}
		p.frame.WriteString(cursorUp(surplus))
	}
	p.lastLines = count

	if _, err := p.term.Write(p.frame.Bytes()); err != nil {
		log.Debug("display: frame write failed: %v", err)
	}
}

// renderItems joins all buffered items with newlines, without a trailing
// newline, so the line count is the newline count plus one.
func (p *Painter) renderItems(rich bool) string {
	var b strings.Builder
	for i, item := range p.items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(p.renderItem(item, rich))
	}
	return b.String()
}

// renderItem resolves one buffered item to text. In rich mode Renderables
// draw themselves; a failed Render is replaced by the error marker so one
// bad item cannot abort the frame.
func (p *Painter) renderItem(item any, rich bool) string {
	if rich {
		if r, ok := item.(Renderable); ok {
			out, err := r.Render(p.cols)
			if err != nil {
				log.Error("display: item render failed: %v", err)
				return errorLine
			}
			return strings.TrimRight(out, "\n")
		}
	}
	switch v := item.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
