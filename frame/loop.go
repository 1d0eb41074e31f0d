// Package frame provides a cooperative frame driver for hosts without a display
// refresh callback of their own (headless rendering, terminals, benchmarks).
package frame

import (
	"context"
	"time"
)

// DefaultInterval matches a 60 Hz display
const DefaultInterval = time.Second / 60

// Loop runs at most one pending frame callback per interval, on the goroutine calling Run.
// Host events are funnelled through Post so the field is never touched concurrently.
type Loop struct {
	interval  time.Duration
	maxFrames uint64

	pending func()
	frames  uint64
	events  chan func()
}

// NewLoop creates a loop firing every interval. An interval of 0 fires frames back to back.
func NewLoop(interval time.Duration) *Loop {
	if interval < 0 {
		interval = 0
	}
	return &Loop{
		interval: interval,
		events:   make(chan func(), 64),
	}
}

// SetMaxFrames makes Run return after n frames; 0 means unbounded
func (l *Loop) SetMaxFrames(n uint64) {
	l.maxFrames = n
}

// RequestFrame schedules fn for the next frame, replacing any pending callback
func (l *Loop) RequestFrame(fn func()) {
	l.pending = fn
}

// CancelFrame drops the pending callback
func (l *Loop) CancelFrame() {
	l.pending = nil
}

// Frames returns how many callbacks have fired
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Post queues fn to run on the loop goroutine between frames. Safe for concurrent use.
func (l *Loop) Post(fn func()) {
	l.events <- fn
}

// Run drives frames until ctx is done or the frame limit is reached.
// With nothing pending it idles, still serving posted events.
func (l *Loop) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if l.interval > 0 {
		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		if l.maxFrames > 0 && l.frames >= l.maxFrames {
			return nil
		}

		if l.interval == 0 && l.pending != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case fn := <-l.events:
				fn()
			default:
				l.fire()
			}
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.events:
			fn()
		case <-tick:
			l.fire()
		}
	}
}

func (l *Loop) fire() {
	fn := l.pending
	if fn == nil {
		return
	}
	l.pending = nil
	l.frames++
	fn()
}
