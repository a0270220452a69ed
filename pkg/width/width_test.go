// ABOUTME: Tests for visible width measurement and ANSI stripping
// ABOUTME: Covers ASCII fast path, wide characters, combining marks, and escape sequences

package width

import "testing"

func TestVisible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty", input: "", want: 0},
		{name: "plain ascii", input: "hello", want: 5},
		{name: "ascii with spaces", input: "a b c", want: 5},
		{name: "sgr styled", input: "\x1b[1;34mhello\x1b[0m", want: 5},
		{name: "cjk wide", input: "日本語", want: 6},
		{name: "mixed ascii cjk", input: "go日本", want: 6},
		{name: "emoji", input: "👍", want: 2},
		{name: "combining accent", input: "é", want: 1},
		{name: "osc sequence", input: "\x1b]0;title\x07hi", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Visible(tt.input); got != tt.want {
				t.Errorf("Visible(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripANSI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no escapes", input: "plain text", want: "plain text"},
		{name: "sgr pair", input: "\x1b[31mred\x1b[0m", want: "red"},
		{name: "cursor movement", input: "\x1b[2Aup\x1b[K", want: "up"},
		{name: "osc bel terminated", input: "\x1b]0;window title\x07body", want: "body"},
		{name: "osc st terminated", input: "\x1b]8;;http://x\x1b\\link", want: "link"},
		{name: "charset designation", input: "\x1b(Btext", want: "text"},
		{name: "dcs sequence", input: "\x1bPdata\x1b\\after", want: "after"},
		{name: "lone esc at end", input: "tail\x1b", want: "tail"},
		{name: "only escapes", input: "\x1b[1m\x1b[0m", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{name: "fits unchanged", input: "abc", maxWidth: 5, want: "abc"},
		{name: "exact fit unchanged", input: "abcde", maxWidth: 5, want: "abcde"},
		{name: "plain cut", input: "abcdef", maxWidth: 4, want: "abc…"},
		{name: "zero budget", input: "abc", maxWidth: 0, want: ""},
		{name: "single column budget", input: "abc", maxWidth: 1, want: "…"},
		{name: "styled cut gets reset", input: "\x1b[1mabcdef\x1b[0m", maxWidth: 4, want: "\x1b[1mabc\x1b[0m…"},
		{name: "wide char not split", input: "日本語", maxWidth: 4, want: "日…"},
		{name: "styled fits unchanged", input: "\x1b[1mab\x1b[0m", maxWidth: 4, want: "\x1b[1mab\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Truncate(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}
