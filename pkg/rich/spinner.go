// ABOUTME: Spinner item cycling through braille animation frames
// ABOUTME: Caller advances it with Tick, typically once per repaint

package rich

import "sync"

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner is an animated progress indicator with an optional label.
type Spinner struct {
	mu     sync.Mutex
	frames []string
	frame  int
	label  string
}

// NewSpinner returns a Spinner with the given label.
func NewSpinner(label string) *Spinner {
	return &Spinner{
		frames: spinnerFrames,
		label:  label,
	}
}

// SetLabel updates the spinner label.
func (s *Spinner) SetLabel(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.label = label
}

// Tick advances the spinner to the next frame.
func (s *Spinner) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.frame = (s.frame + 1) % len(s.frames)
}

// Render draws the current frame and label.
func (s *Spinner) Render(int) (string, error) {
	return s.String(), nil
}

// String returns the current frame and label as plain text.
func (s *Spinner) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.label == "" {
		return s.frames[s.frame]
	}
	return s.frames[s.frame] + " " + s.label
}
