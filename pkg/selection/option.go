// ABOUTME: Option is one selectable menu entry with an optional value and extra fields
// ABOUTME: A nil Value falls back to the option name when the entry is accepted

package selection

import "fmt"

// Field is one extra labeled value. The tabular frame shows each field
// of the first option as its own column.
type Field struct {
	Label string
	Value any
}

// Option is one selectable menu entry. Options are immutable once
// handed to a menu.
type Option struct {
	Name        string
	Description string
	// Value is what Run returns when this option is accepted. Nil falls
	// back to Name.
	Value any
	// Fields are extra labeled values, shown in order.
	Fields []Field
}

// value returns what Run hands back for this option.
func (o Option) value() any {
	if o.Value == nil {
		return o.Name
	}
	return o.Value
}

// formatValue renders a field or option value for display.
func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
