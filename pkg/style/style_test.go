// ABOUTME: Tests for style spec parsing, the global theme, builtins, and the JSON loader
// ABOUTME: Asserts on lipgloss getters so results do not depend on the test terminal

package style

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		spec    string
		check   func(t *testing.T, st lipgloss.Style)
		wantErr bool
	}{
		{
			name: "empty spec is no-op",
			spec: "",
			check: func(t *testing.T, st lipgloss.Style) {
				if st.GetBold() || st.GetFaint() {
					t.Error("empty spec should set nothing")
				}
			},
		},
		{
			name: "bold",
			spec: "bold",
			check: func(t *testing.T, st lipgloss.Style) {
				if !st.GetBold() {
					t.Error("expected bold")
				}
			},
		},
		{
			name: "bold white on blue",
			spec: "bold white on blue",
			check: func(t *testing.T, st lipgloss.Style) {
				if !st.GetBold() {
					t.Error("expected bold")
				}
				if fg := st.GetForeground(); fg != lipgloss.Color("7") {
					t.Errorf("foreground = %v, want color 7", fg)
				}
				if bg := st.GetBackground(); bg != lipgloss.Color("4") {
					t.Errorf("background = %v, want color 4", bg)
				}
			},
		},
		{
			name: "numeric and hex colors",
			spec: "203 on #1a2b3c",
			check: func(t *testing.T, st lipgloss.Style) {
				if fg := st.GetForeground(); fg != lipgloss.Color("203") {
					t.Errorf("foreground = %v, want color 203", fg)
				}
				if bg := st.GetBackground(); bg != lipgloss.Color("#1a2b3c") {
					t.Errorf("background = %v, want #1a2b3c", bg)
				}
			},
		},
		{
			name: "bright color name",
			spec: "bright_white",
			check: func(t *testing.T, st lipgloss.Style) {
				if fg := st.GetForeground(); fg != lipgloss.Color("15") {
					t.Errorf("foreground = %v, want color 15", fg)
				}
			},
		},
		{
			name: "attribute stack",
			spec: "dim italic underline reverse",
			check: func(t *testing.T, st lipgloss.Style) {
				if !st.GetFaint() || !st.GetItalic() || !st.GetUnderline() || !st.GetReverse() {
					t.Error("expected all four attributes set")
				}
			},
		},
		{name: "unknown token", spec: "sparkly", wantErr: true},
		{name: "trailing on", spec: "bold on", wantErr: true},
		{name: "bad hex", spec: "#12345", wantErr: true},
		{name: "out of range index", spec: "300", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			st, err := Parse(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) succeeded, want error", tt.spec)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.spec, err)
			}
			tt.check(t, st)
		})
	}
}

func TestCurrentNeverNil(t *testing.T) {
	if Current() == nil {
		t.Fatal("Current() returned nil")
	}
	saved := Current()
	defer Set(saved)

	Set(nil)
	if Current() == nil {
		t.Fatal("Set(nil) must not clear the theme")
	}

	Set(&Theme{Name: "custom", Palette: DefaultPalette()})
	if Current().Name != "custom" {
		t.Errorf("Current().Name = %q, want custom", Current().Name)
	}
}

func TestBuiltins(t *testing.T) {
	t.Parallel()

	names := BuiltinNames()
	if !slices.Contains(names, "default") || !slices.Contains(names, "mono") {
		t.Errorf("BuiltinNames() = %v, want default and mono included", names)
	}
	if !slices.IsSorted(names) {
		t.Errorf("BuiltinNames() = %v, want sorted", names)
	}

	if th := Builtin("mono"); th == nil {
		t.Error("Builtin(mono) = nil")
	} else if th.Palette.Highlight.GetReverse() != true {
		t.Error("mono highlight should use reverse video")
	}
	if th := Builtin("nope"); th != nil {
		t.Errorf("Builtin(nope) = %v, want nil", th)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "theme.json")
	data := `{
		"name": "custom",
		"palette": {
			"highlight": "reverse",
			"controls": "dim"
		}
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if th.Name != "custom" {
		t.Errorf("Name = %q, want custom", th.Name)
	}
	if !th.Palette.Highlight.GetReverse() {
		t.Error("highlight should be reverse")
	}
	if !th.Palette.Controls.GetFaint() {
		t.Error("controls should be dim")
	}
	// Unset fields inherit defaults.
	if !th.Palette.Title.GetBold() {
		t.Error("title should inherit bold default")
	}
}

func TestLoadFileErrors(t *testing.T) {
	t.Parallel()

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); err == nil {
		t.Error("expected error for invalid JSON")
	}

	badSpec := filepath.Join(dir, "badspec.json")
	if err := os.WriteFile(badSpec, []byte(`{"palette": {"title": "sparkly"}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(badSpec); err == nil {
		t.Error("expected error for unknown style token")
	}
}
