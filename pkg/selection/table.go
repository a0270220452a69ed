// ABOUTME: Tabular menu frame: one bordered table row per option
// ABOUTME: Columns come from the first option's populated fields, labels title-cased

package selection

import (
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mauromedda/termpaint/pkg/display"
	"github.com/mauromedda/termpaint/pkg/rich"
)

// tableFrame paints the options as a bordered table with the current
// row highlighted.
type tableFrame struct{}

func (tableFrame) appendFrame(m *Menu, p *display.Painter) {
	headers, cells := tableColumns(m.options[0])

	tbl := rich.NewTable(headers...)
	if m.title != "" {
		tbl.Title(m.palette.Title.Render(m.title))
	}
	for _, o := range m.options {
		row := make([]string, len(cells))
		for c, cell := range cells {
			row[c] = cell(o)
		}
		tbl.Row(row...)
	}

	cur := m.index
	tbl.StyleFunc(func(row, col int) lipgloss.Style {
		var st lipgloss.Style
		switch {
		case row == rich.HeaderRow:
			st = lipgloss.NewStyle()
		case row == cur:
			st = m.highlight
		default:
			st = m.normal
		}
		return st.Padding(0, 1)
	})

	p.Append(tbl)
}

// tableColumns derives the column set from the first option: a column
// exists only when that option populates the field. Extra fields each
// get their own column, in declaration order.
func tableColumns(first Option) (headers []string, cells []func(Option) string) {
	if first.Name != "" {
		headers = append(headers, "Name")
		cells = append(cells, func(o Option) string { return o.Name })
	}
	if first.Description != "" {
		headers = append(headers, "Description")
		cells = append(cells, func(o Option) string { return o.Description })
	}
	if first.Value != nil {
		headers = append(headers, "Value")
		cells = append(cells, func(o Option) string { return formatValue(o.Value) })
	}
	for i, f := range first.Fields {
		headers = append(headers, columnTitle(f.Label))
		idx := i
		cells = append(cells, func(o Option) string {
			if idx >= len(o.Fields) {
				return ""
			}
			return formatValue(o.Fields[idx].Value)
		})
	}
	return headers, cells
}

// columnTitle capitalizes a field label for its header cell without
// downcasing acronyms.
func columnTitle(label string) string {
	return cases.Title(language.English, cases.NoLower).String(label)
}
