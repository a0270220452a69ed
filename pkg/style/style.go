// ABOUTME: Semantic styling for painted screens: Palette, Theme, and a style-token parser
// ABOUTME: Parse turns compact specs like "bold white on blue" into lipgloss styles

package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette maps semantic roles to lipgloss styles. Menus and demos pull
// from the palette instead of hardcoding colors.
type Palette struct {
	// Title styles menu and table headings.
	Title lipgloss.Style
	// Highlight marks the row under the cursor.
	Highlight lipgloss.Style
	// Normal styles unselected rows.
	Normal lipgloss.Style
	// Controls styles the key-help line under menus.
	Controls lipgloss.Style
	// Error styles failure text.
	Error lipgloss.Style
	// Muted styles secondary detail.
	Muted lipgloss.Style
}

// Theme holds a named palette.
type Theme struct {
	Name    string
	Palette Palette
}

// DefaultPalette returns the stock palette: bold headings, a white-on-blue
// highlight bar, and a plain controls line.
func DefaultPalette() Palette {
	return Palette{
		Title:     MustParse("bold"),
		Highlight: MustParse("bold white on blue"),
		Normal:    MustParse("bold"),
		Controls:  lipgloss.NewStyle(),
		Error:     MustParse("bold red"),
		Muted:     MustParse("dim"),
	}
}

// attributes maps style tokens to the lipgloss setters they enable.
var attributes = map[string]func(lipgloss.Style) lipgloss.Style{
	"bold":      func(s lipgloss.Style) lipgloss.Style { return s.Bold(true) },
	"dim":       func(s lipgloss.Style) lipgloss.Style { return s.Faint(true) },
	"faint":     func(s lipgloss.Style) lipgloss.Style { return s.Faint(true) },
	"italic":    func(s lipgloss.Style) lipgloss.Style { return s.Italic(true) },
	"underline": func(s lipgloss.Style) lipgloss.Style { return s.Underline(true) },
	"blink":     func(s lipgloss.Style) lipgloss.Style { return s.Blink(true) },
	"reverse":   func(s lipgloss.Style) lipgloss.Style { return s.Reverse(true) },
	"strike":    func(s lipgloss.Style) lipgloss.Style { return s.Strikethrough(true) },
}

// namedColors maps color names to ANSI palette indexes.
var namedColors = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",

	"bright_black":   "8",
	"bright_red":     "9",
	"bright_green":   "10",
	"bright_yellow":  "11",
	"bright_blue":    "12",
	"bright_magenta": "13",
	"bright_cyan":    "14",
	"bright_white":   "15",
}

// Parse builds a lipgloss style from a space-separated token spec.
// Tokens are attributes (bold, dim, italic, underline, blink, reverse,
// strike) and colors (names, 0-255 indexes, #rrggbb hex). A color after
// "on" sets the background. The empty spec is a no-op style.
func Parse(spec string) (lipgloss.Style, error) {
	st := lipgloss.NewStyle()
	background := false
	for _, tok := range strings.Fields(spec) {
		lower := strings.ToLower(tok)
		if lower == "on" {
			background = true
			continue
		}
		if apply, ok := attributes[lower]; ok {
			st = apply(st)
			continue
		}
		color, err := parseColor(lower)
		if err != nil {
			return lipgloss.Style{}, fmt.Errorf("style: %w in %q", err, spec)
		}
		if background {
			st = st.Background(color)
			background = false
		} else {
			st = st.Foreground(color)
		}
	}
	if background {
		return lipgloss.Style{}, fmt.Errorf("style: missing color after %q in %q", "on", spec)
	}
	return st, nil
}

// MustParse is Parse for known-good literals; it panics on error.
func MustParse(spec string) lipgloss.Style {
	st, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return st
}

// parseColor resolves one color token.
func parseColor(tok string) (lipgloss.Color, error) {
	if idx, ok := namedColors[tok]; ok {
		return lipgloss.Color(idx), nil
	}
	if strings.HasPrefix(tok, "#") {
		if len(tok) != 7 {
			return "", fmt.Errorf("bad hex color %q", tok)
		}
		if _, err := strconv.ParseUint(tok[1:], 16, 32); err != nil {
			return "", fmt.Errorf("bad hex color %q", tok)
		}
		return lipgloss.Color(tok), nil
	}
	if n, err := strconv.Atoi(tok); err == nil && n >= 0 && n <= 255 {
		return lipgloss.Color(tok), nil
	}
	return "", fmt.Errorf("unknown color %q", tok)
}
