// ABOUTME: Built-in themes: default, mono, midnight
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package style

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

var builtins = map[string]*Theme{
	"default": {
		Name:    "default",
		Palette: DefaultPalette(),
	},
	// mono avoids color entirely for terminals and logs that strip it.
	"mono": {
		Name: "mono",
		Palette: Palette{
			Title:     MustParse("bold underline"),
			Highlight: MustParse("reverse"),
			Normal:    lipgloss.NewStyle(),
			Controls:  MustParse("dim"),
			Error:     MustParse("bold reverse"),
			Muted:     MustParse("dim"),
		},
	},
	"midnight": {
		Name: "midnight",
		Palette: Palette{
			Title:     MustParse("bold bright_cyan"),
			Highlight: MustParse("bold bright_white on 17"),
			Normal:    MustParse("bright_blue"),
			Controls:  MustParse("dim bright_black"),
			Error:     MustParse("bold 203"),
			Muted:     MustParse("dim bright_black"),
		},
	},
}

// Builtin returns the named built-in theme, or nil if no such theme exists.
func Builtin(name string) *Theme {
	return builtins[name]
}

// BuiltinNames returns the sorted names of all built-in themes.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
