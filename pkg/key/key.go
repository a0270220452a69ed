// ABOUTME: Defines the Key type and ParseKey for terminal keyboard input parsing
// ABOUTME: Handles printable runes, control characters, and legacy escape sequences

package key

import "unicode/utf8"

// Key represents a parsed keyboard input event.
type Key struct {
	Type KeyType
	Rune rune // For printable characters
	Alt  bool
}

// KeyType enumerates the kinds of key events menus and demos can receive.
type KeyType int

const (
	KeyRune      KeyType = iota // Printable character
	KeyEnter                    // Enter / Return
	KeyTab                      // Tab
	KeyBackspace                // Backspace / DEL (0x7F)
	KeyDelete                   // Delete key
	KeyUp                       // Arrow up
	KeyDown                     // Arrow down
	KeyLeft                     // Arrow left
	KeyRight                    // Arrow right
	KeyHome                     // Home
	KeyEnd                      // End
	KeyPageUp                   // Page Up
	KeyPageDown                 // Page Down
	KeyEscape                   // Escape
	KeyCtrlC                    // Ctrl+C
	KeyCtrlD                    // Ctrl+D
	KeyCtrlN                    // Ctrl+N
	KeyCtrlP                    // Ctrl+P
	KeyUnknown                  // Unrecognized input
)

// ctrlKeys maps control byte values to their Key representations.
var ctrlKeys = map[byte]Key{
	0x03: {Type: KeyCtrlC},
	0x04: {Type: KeyCtrlD},
	0x0e: {Type: KeyCtrlN},
	0x10: {Type: KeyCtrlP},
}

// ParseKey parses raw terminal input data into a Key.
// It handles single runes, control characters, and escape sequences.
func ParseKey(data string) Key {
	if len(data) == 0 {
		return Key{Type: KeyUnknown}
	}

	// Single-byte fast path
	if len(data) == 1 {
		return parseSingleByte(data[0])
	}

	// Escape sequence path
	if data[0] == 0x1b {
		return parseEscapeSequence(data)
	}

	// Multi-byte UTF-8 rune
	r, _ := utf8.DecodeRuneInString(data)
	if r == utf8.RuneError {
		return Key{Type: KeyUnknown}
	}
	return Key{Type: KeyRune, Rune: r}
}

// parseSingleByte handles a single-byte input (ASCII or control character).
func parseSingleByte(b byte) Key {
	switch {
	case b == 0x0d || b == 0x0a:
		return Key{Type: KeyEnter}
	case b == 0x09:
		return Key{Type: KeyTab}
	case b == 0x7f:
		return Key{Type: KeyBackspace}
	case b == 0x1b:
		return Key{Type: KeyEscape}
	case b >= 0x20 && b <= 0x7e:
		return Key{Type: KeyRune, Rune: rune(b)}
	}

	if k, ok := ctrlKeys[b]; ok {
		return k
	}
	return Key{Type: KeyUnknown}
}

// parseEscapeSequence resolves ESC-prefixed data against the legacy tables.
func parseEscapeSequence(data string) Key {
	if k, ok := legacySequences[data]; ok {
		return k
	}

	// Lone ESC
	if len(data) == 1 {
		return Key{Type: KeyEscape}
	}

	// Alt+letter: ESC followed by a single printable byte (0x20..0x7e)
	if len(data) == 2 && data[1] >= 0x20 && data[1] <= 0x7e {
		return Key{Type: KeyRune, Rune: rune(data[1]), Alt: true}
	}

	return Key{Type: KeyUnknown}
}

// keyNames maps non-rune key types to their binding tokens.
var keyNames = map[KeyType]string{
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pageup",
	KeyPageDown:  "pagedown",
	KeyEscape:    "esc",
	KeyCtrlC:     "ctrl+c",
	KeyCtrlD:     "ctrl+d",
	KeyCtrlN:     "ctrl+n",
	KeyCtrlP:     "ctrl+p",
}

// String returns the binding token for the key, the same form key maps use:
// "up", "esc", "space", "ctrl+n", "a", "alt+a". Unrecognized keys return "".
func (k Key) String() string {
	if k.Type == KeyRune {
		return formatRuneKey(k)
	}
	return keyNames[k.Type]
}

// formatRuneKey builds the binding token for printable rune keys.
func formatRuneKey(k Key) string {
	s := string(k.Rune)
	if k.Rune == ' ' {
		s = "space"
	}
	if k.Alt {
		s = "alt+" + s
	}
	return s
}
