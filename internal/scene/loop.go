package scene

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// ErrStopped is returned by Advance once the loop has been stopped.
var ErrStopped = errors.New("scene: loop stopped")

// Loop drives a Renderer frame after frame until stopped.
type Loop struct {
	r       *Renderer
	running atomic.Bool
	frames  atomic.Uint64
	limit   uint64
	start   time.Time
	phase   float64
}

// NewLoop returns a loop that is already running.
func NewLoop(r *Renderer) *Loop {
	l := &Loop{r: r, start: time.Now()}
	l.running.Store(true)
	return l
}

// StopAfter makes the loop stop by itself once n frames have been advanced.
// Zero means no limit.
func (l *Loop) StopAfter(n uint64) { l.limit = n }

// Stop ends the loop. Safe to call from any goroutine, more than once.
func (l *Loop) Stop() { l.running.Store(false) }

// Running reports whether the loop still accepts frames.
func (l *Loop) Running() bool { return l.running.Load() }

// Frames returns how many frames have been advanced.
func (l *Loop) Frames() uint64 { return l.frames.Load() }

// Phase returns the wall-clock phase, in seconds, of the last advance.
func (l *Loop) Phase() float64 { return l.phase }

func (l *Loop) tick(now time.Time) bool {
	if !l.running.Load() {
		return false
	}
	l.phase = now.Sub(l.start).Seconds()
	return true
}

func (l *Loop) count() {
	if n := l.frames.Add(1); l.limit > 0 && n >= l.limit {
		l.running.Store(false)
	}
}

// Advance moves the simulation to now. Hosts that separate update from draw
// call Advance and Paint; Run does both in one frame.
func (l *Loop) Advance(now time.Time) error {
	if !l.tick(now) {
		return ErrStopped
	}
	l.r.Advance(l.phase)
	l.count()
	return nil
}

// Paint draws the last advanced state on c.
func (l *Loop) Paint(c Canvas) {
	l.r.Paint(c, l.phase)
}

// Run renders a frame on c for every tick until the loop is stopped, the
// tick channel closes or ctx is done.
func (l *Loop) Run(ctx context.Context, c Canvas, ticks <-chan time.Time) error {
	for l.running.Load() {
		select {
		case <-ctx.Done():
			l.Stop()
			return ctx.Err()
		case now, ok := <-ticks:
			if !ok {
				l.Stop()
				return nil
			}
			if !l.tick(now) {
				return nil
			}
			l.r.Frame(c, l.phase)
			l.count()
		}
	}
	return nil
}
