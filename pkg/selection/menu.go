// ABOUTME: Menu drives a keyboard-driven selection loop over a fixed option list
// ABOUTME: Frame layout is a strategy: tabular and numbered variants share one loop

package selection

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/termpaint/pkg/display"
	"github.com/mauromedda/termpaint/pkg/key"
	"github.com/mauromedda/termpaint/pkg/rich"
	"github.com/mauromedda/termpaint/pkg/style"
)

// KeySource supplies one key event per call, blocking until input
// arrives. input.Reader satisfies it.
type KeySource interface {
	ReadKey() (key.Key, error)
}

// frameBuilder appends one frame's widgets for its menu variant.
type frameBuilder interface {
	appendFrame(m *Menu, p *display.Painter)
}

// defaultDebounce is the pause after each key read. It soaks up the
// burst a held key's auto-repeat produces between frames.
const defaultDebounce = 50 * time.Millisecond

// Menu runs a keyboard selection over a fixed option list. Construct
// with NewTable or NewNumbered, then call Run. A Menu is single-use
// state for one Run at a time; it is not safe for concurrent use.
type Menu struct {
	title       string
	options     []Option
	index       int
	cancellable bool
	onSelect    func(*Menu)
	debounce    time.Duration
	keymap      *Keymap
	highlight   lipgloss.Style
	normal      lipgloss.Style
	palette     style.Palette
	frame       frameBuilder
}

// MenuOption configures a Menu.
type MenuOption func(*Menu)

// WithStartIndex sets the initially highlighted option. Out-of-range
// values fall back to the first option.
func WithStartIndex(i int) MenuOption {
	return func(m *Menu) {
		m.index = i
	}
}

// WithStyles overrides the highlight and normal row styles.
func WithStyles(highlight, normal lipgloss.Style) MenuOption {
	return func(m *Menu) {
		m.highlight = highlight
		m.normal = normal
	}
}

// WithCancel lets Esc dismiss the menu with no selection.
func WithCancel() MenuOption {
	return func(m *Menu) {
		m.cancellable = true
	}
}

// WithOnSelect registers a callback invoked with the menu after a
// selection is accepted, before Run returns its value.
func WithOnSelect(fn func(*Menu)) MenuOption {
	return func(m *Menu) {
		m.onSelect = fn
	}
}

// WithDebounce sets the pause after each key read. Zero disables it;
// negative values are ignored.
func WithDebounce(d time.Duration) MenuOption {
	return func(m *Menu) {
		if d >= 0 {
			m.debounce = d
		}
	}
}

// WithKeymap replaces the default key bindings.
func WithKeymap(km *Keymap) MenuOption {
	return func(m *Menu) {
		if km != nil {
			m.keymap = km
		}
	}
}

// NewTable returns a menu that paints its options as a bordered table,
// one row per option.
func NewTable(title string, options []Option, opts ...MenuOption) *Menu {
	return newMenu(title, options, tableFrame{}, opts)
}

// NewNumbered returns a menu that paints its options as a numbered
// list.
func NewNumbered(title string, options []Option, opts ...MenuOption) *Menu {
	return newMenu(title, options, numberedFrame{}, opts)
}

func newMenu(title string, options []Option, frame frameBuilder, opts []MenuOption) *Menu {
	pal := style.Current().Palette
	m := &Menu{
		title:     title,
		options:   options,
		highlight: pal.Highlight,
		normal:    pal.Normal,
		palette:   pal,
		debounce:  defaultDebounce,
		keymap:    DefaultKeymap(),
		frame:     frame,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.index < 0 || m.index >= len(m.options) {
		m.index = 0
	}
	return m
}

// Title returns the menu heading.
func (m *Menu) Title() string {
	return m.title
}

// Options returns the option list in display order.
func (m *Menu) Options() []Option {
	return m.options
}

// Index returns the currently highlighted option's position.
func (m *Menu) Index() int {
	return m.index
}

// Selected returns the currently highlighted option, or a zero Option
// when the list is empty.
func (m *Menu) Selected() Option {
	if len(m.options) == 0 {
		return Option{}
	}
	return m.options[m.index]
}

// Run paints the menu on p and blocks on keys until a choice is made.
// It returns the accepted option's value, or nil when the option list
// is empty or the menu is cancelled. The only error source is a failed
// key read.
func (m *Menu) Run(p *display.Painter, keys KeySource) (any, error) {
	if len(m.options) == 0 {
		return nil, nil
	}

	p.Clear()
	for {
		m.paintFrame(p)

		k, err := keys.ReadKey()
		if err != nil {
			return nil, fmt.Errorf("reading key: %w", err)
		}
		if m.debounce > 0 {
			time.Sleep(m.debounce)
		}

		switch m.keymap.actionFor(k) {
		case ActionUp:
			m.index = (m.index - 1 + len(m.options)) % len(m.options)
		case ActionDown:
			m.index = (m.index + 1) % len(m.options)
		case ActionSelect:
			p.Clear()
			if m.onSelect != nil {
				m.onSelect(m)
			}
			return m.options[m.index].value(), nil
		case ActionCancel:
			if m.cancellable {
				p.Clear()
				return nil, nil
			}
		}
	}
}

// paintFrame rebuilds this frame's widgets and paints them once.
func (m *Menu) paintFrame(p *display.Painter) {
	p.ClearBuffer()
	m.frame.appendFrame(m, p)
	p.Append(rich.NewStyled(m.controlsLine(), m.palette.Controls))
	p.DisplayNow(true)
}

// controlsLine lists the active key bindings under the menu. The Esc
// segment only appears when the menu can actually be cancelled.
func (m *Menu) controlsLine() string {
	segments := []string{"[↑/↓] Navigate"}
	if m.cancellable {
		segments = append(segments, "[Esc] Cancel")
	}
	segments = append(segments, "[Space/Enter] Select")
	return strings.Join(segments, " | ")
}
