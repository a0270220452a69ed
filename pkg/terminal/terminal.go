// ABOUTME: Defines the Terminal interface for raw mode, size queries, and output
// ABOUTME: Abstracts terminal operations so painters can target real or virtual terminals

package terminal

// Terminal abstracts the operations a screen painter and key reader need:
// raw mode, size queries, output writing, and resize notifications.
//
// Write is the flush boundary. Callers assemble a full frame and hand it
// over in one call; implementations must not buffer it further.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	Write(p []byte) (n int, err error)
	OnResize(fn func(width, height int))
}
