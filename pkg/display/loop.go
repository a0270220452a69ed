// ABOUTME: Background refresh loop repainting the buffer at a fixed frequency
// ABOUTME: Start is exclusive, stop is idempotent with a bounded wait

package display

import (
	"errors"
	"sync"
	"time"

	"github.com/mauromedda/termpaint/internal/log"
	"github.com/mauromedda/termpaint/pkg/terminal"
)

// ErrLoopRunning is returned by StartLoop while a previous loop is active.
var ErrLoopRunning = errors.New("display: refresh loop already running")

// stopTimeout bounds how long StopLoop waits for the loop goroutine.
const stopTimeout = time.Second

// loopHandle ties one StartLoop call to its goroutine.
type loopHandle struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// StartLoop begins repainting the buffer in a background goroutine at the
// given frequency; hz <= 0 uses the painter's configured rate. The loop
// paints rich frames and never empties the buffer. Returns ErrLoopRunning
// while a loop is active; after StopLoop a new one can be started.
func (p *Painter) StartLoop(hz float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.loop != nil {
		return ErrLoopRunning
	}
	if hz <= 0 {
		hz = p.hz
	}
	h := &loopHandle{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	p.loop = h
	go p.refreshLoop(hz, h)
	return nil
}

// StopLoop signals the loop to exit and waits up to stopTimeout for it.
// With no loop running it is a no-op; concurrent calls are safe. The
// handle is dropped even if the wait times out, so a fresh StartLoop
// always remains possible.
func (p *Painter) StopLoop() {
	p.mu.Lock()
	h := p.loop
	p.mu.Unlock()
	if h == nil {
		return
	}

	h.once.Do(func() {
		close(h.stop)
	})

	select {
	case <-h.done:
	case <-time.After(stopTimeout):
		log.Warn("display: refresh loop did not stop within %v", stopTimeout)
	}

	p.mu.Lock()
	if p.loop == h {
		p.loop = nil
	}
	p.mu.Unlock()
}

// refreshLoop repaints until stopped, waking early on terminal resizes so
// a resized screen is repaired within one frame.
func (p *Painter) refreshLoop(hz float64, h *loopHandle) {
	defer close(h.done)
	defer terminal.RecoverGoroutine(p.term)

	period := time.Duration(float64(time.Second) / hz)
	log.Debug("display: refresh loop started, period %v", period)

	for {
		select {
		case <-h.stop:
			log.Debug("display: refresh loop stopped")
			return
		default:
		}

		start := time.Now()
		p.RenderOnce(true)

		delay := period - time.Since(start)
		if delay <= 0 {
			continue
		}
		timer := time.NewTimer(delay)
		select {
		case <-h.stop:
			timer.Stop()
			log.Debug("display: refresh loop stopped")
			return
		case <-p.resized:
			timer.Stop()
		case <-timer.C:
		}
	}
}
