// ABOUTME: Bordered table item built on lipgloss/table with per-cell styling
// ABOUTME: Optional title line is centered over the rendered frame

package rich

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mauromedda/termpaint/pkg/width"
)

// HeaderRow is the row index a StyleFunc receives for the header row.
// Data rows are numbered from zero.
const HeaderRow = table.HeaderRow

// StyleFunc selects the style for each table cell.
type StyleFunc func(row, col int) lipgloss.Style

// Table is a bordered table item. Construct with NewTable, add rows, then
// hand it to a painter.
type Table struct {
	title   string
	headers []string
	rows    [][]string
	styleFn StyleFunc
}

// NewTable returns a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// Title sets a heading line centered above the table. The title may carry
// its own styling.
func (t *Table) Title(title string) *Table {
	t.title = title
	return t
}

// Row appends one data row.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// StyleFunc sets the per-cell style callback.
func (t *Table) StyleFunc(fn StyleFunc) *Table {
	t.styleFn = fn
	return t
}

// Render draws the table with normal borders. A table with neither
// headers nor rows fails.
func (t *Table) Render(int) (string, error) {
	if len(t.headers) == 0 && len(t.rows) == 0 {
		return "", errors.New("rich: table has no content")
	}

	tbl := table.New().Border(lipgloss.NormalBorder())
	if len(t.headers) > 0 {
		tbl = tbl.Headers(t.headers...)
	}
	for _, row := range t.rows {
		tbl = tbl.Row(row...)
	}
	if t.styleFn != nil {
		tbl = tbl.StyleFunc(table.StyleFunc(t.styleFn))
	}

	out := tbl.Render()
	if t.title != "" {
		out = centerOver(t.title, out) + "\n" + out
	}
	return out, nil
}

// centerOver pads title with spaces so it sits centered above body's
// first line.
func centerOver(title, body string) string {
	first := body
	if i := strings.IndexByte(body, '\n'); i >= 0 {
		first = body[:i]
	}
	pad := (width.Visible(first) - width.Visible(title)) / 2
	if pad <= 0 {
		return title
	}
	return strings.Repeat(" ", pad) + title
}
