// ABOUTME: ANSI-aware truncation of a single line to a column budget
// ABOUTME: Keeps escape sequences intact and marks cut lines with an ellipsis

package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

const ellipsis = '…'

// Truncate shortens s to at most maxWidth visible columns. Escape sequences
// in the kept prefix are preserved. When the line is cut, the last column
// holds an ellipsis; styled input gets an SGR reset first so the marker is
// never painted in a leaked style.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Visible(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return string(ellipsis)
	}

	var b strings.Builder
	styled := false
	col := 0
	target := maxWidth - 1
	i := 0
	for i < len(s) && col < target {
		if s[i] == '\x1b' {
			end := skipANSISequence(s, i)
			b.WriteString(s[i:end])
			styled = true
			i = end
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		cw := clusterWidth(cluster)
		if col+cw > target {
			break
		}
		b.WriteString(cluster)
		col += cw
		i += len(s[i:]) - len(rest)
	}
	if styled {
		b.WriteString("\x1b[0m")
	}
	b.WriteRune(ellipsis)
	return b.String()
}
