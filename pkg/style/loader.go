// ABOUTME: JSON theme file loading with per-role style specs
// ABOUTME: Unset palette fields inherit from DefaultPalette to ensure completeness

package style

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// jsonTheme is the on-disk theme format. Palette values are Parse specs,
// for example {"highlight": "bold white on blue"}.
type jsonTheme struct {
	Name    string `json:"name"`
	Palette struct {
		Title     string `json:"title"`
		Highlight string `json:"highlight"`
		Normal    string `json:"normal"`
		Controls  string `json:"controls"`
		Error     string `json:"error"`
		Muted     string `json:"muted"`
	} `json:"palette"`
}

// LoadFile reads a JSON theme file and returns a Theme. Empty palette
// fields keep their DefaultPalette values.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var jt jsonTheme
	if err := json.Unmarshal(data, &jt); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	p := DefaultPalette()
	for _, f := range []struct {
		name string
		spec string
		dst  *lipgloss.Style
	}{
		{"title", jt.Palette.Title, &p.Title},
		{"highlight", jt.Palette.Highlight, &p.Highlight},
		{"normal", jt.Palette.Normal, &p.Normal},
		{"controls", jt.Palette.Controls, &p.Controls},
		{"error", jt.Palette.Error, &p.Error},
		{"muted", jt.Palette.Muted, &p.Muted},
	} {
		if f.spec == "" {
			continue
		}
		st, err := Parse(f.spec)
		if err != nil {
			return nil, fmt.Errorf("theme %s field %s: %w", path, f.name, err)
		}
		*f.dst = st
	}

	return &Theme{Name: jt.Name, Palette: p}, nil
}
