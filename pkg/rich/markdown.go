// ABOUTME: Markdown item rendered to ANSI through glamour
// ABOUTME: Caches the last render keyed by content hash and width for cheap repaint loops

package rich

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Markdown renders markdown-formatted text for the terminal. Repainting
// at a fixed frequency hits the cache until the content or width changes,
// so a refresh loop does not re-run glamour every frame.
type Markdown struct {
	mu      sync.Mutex
	content string
	key     string
	cached  string
}

// NewMarkdown returns a Markdown item with the given source text.
func NewMarkdown(content string) *Markdown {
	return &Markdown{content: content}
}

// SetContent replaces the markdown source. The next Render re-renders.
func (m *Markdown) SetContent(content string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.content = content
}

// Render converts the markdown to styled terminal text wrapped at the
// given width. Errors propagate to the painter, which substitutes its
// failure marker.
func (m *Markdown) Render(width int) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.content == "" {
		return "", nil
	}
	if width <= 0 {
		width = 80
	}

	key := cacheKey(m.content, width)
	if key == m.key {
		return m.cached, nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(m.content)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	rendered = strings.TrimRight(rendered, "\n ")

	m.key = key
	m.cached = rendered
	return rendered, nil
}

// cacheKey produces a compact key from content hash and width.
func cacheKey(content string, width int) string {
	h := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x:%d", h[:8], width)
}
