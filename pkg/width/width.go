// ABOUTME: Display-width measurement for terminal cells, grapheme-cluster aware
// ABOUTME: ANSI escape sequences count as zero columns; pure ASCII takes a fast path

package width

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Visible returns the number of terminal columns s occupies. ANSI escape
// sequences contribute zero width; East Asian characters and emoji may
// occupy two cells per grapheme cluster.
func Visible(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}
	stripped := StripANSI(s)
	w := 0
	state := -1
	for len(stripped) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(stripped, state)
		w += clusterWidth(cluster)
		stripped = rest
		state = newState
	}
	return w
}

// isPlainASCII reports whether s contains only printable ASCII (0x20-0x7E).
// ESC is 0x1B, so any escape sequence fails this check too.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

// clusterWidth returns the column width of one grapheme cluster, taken from
// its first rune. Combining marks and ZWJ continuations add nothing.
func clusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
