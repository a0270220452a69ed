// ABOUTME: Styled wraps plain text in a lipgloss style at paint time
// ABOUTME: Plain-mode painting falls back to the unstyled text via String

package rich

import "github.com/charmbracelet/lipgloss"

// Styled is a text item painted through a lipgloss style. In plain mode
// the painter uses String and gets the bare text.
type Styled struct {
	text  string
	style lipgloss.Style
}

// NewStyled returns a Styled item.
func NewStyled(text string, style lipgloss.Style) *Styled {
	return &Styled{text: text, style: style}
}

// Render draws the text in its style.
func (s *Styled) Render(int) (string, error) {
	return s.style.Render(s.text), nil
}

// String returns the unstyled text.
func (s *Styled) String() string {
	return s.text
}
