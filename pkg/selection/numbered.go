// ABOUTME: Numbered menu frame: title, then "N. Name - Description" per option
// ABOUTME: The current row wears the highlight style, all others the normal style

package selection

import (
	"fmt"

	"github.com/mauromedda/termpaint/pkg/display"
	"github.com/mauromedda/termpaint/pkg/rich"
)

// numberedFrame paints the options as a flat numbered list.
type numberedFrame struct{}

func (numberedFrame) appendFrame(m *Menu, p *display.Painter) {
	if m.title != "" {
		p.Append(rich.NewStyled(m.title, m.palette.Title))
	}
	for i, o := range m.options {
		line := fmt.Sprintf("%d. %s", i+1, o.Name)
		if o.Description != "" {
			line += " - " + o.Description
		}
		st := m.normal
		if i == m.index {
			st = m.highlight
		}
		p.Append(rich.NewStyled(line, st))
	}
	// Spacer between the list and the controls line.
	p.Append("")
}
