// Package clipboard copies snippet text to the system clipboard and keeps a
// short-lived acknowledgment flag for the UI.
package clipboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/verte-zerg/sidebyside/internal/logging"
)

// DefaultAckDelay is how long Copied stays true after a successful copy.
const DefaultAckDelay = 2000 * time.Millisecond

// Option customises a Copier.
type Option func(*Copier)

// WithClock replaces the real clock.
func WithClock(clock Clock) Option {
	return func(c *Copier) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithAckDelay sets how long the acknowledgment flag stays raised.
func WithAckDelay(d time.Duration) Option {
	return func(c *Copier) {
		if d > 0 {
			c.delay = d
		}
	}
}

// WithLogger attaches a logger for degraded paths.
func WithLogger(log *logging.Logger) Option {
	return func(c *Copier) {
		c.log = log
	}
}

// Copier owns the acknowledgment flag of one code block.
type Copier struct {
	writer Writer
	clock  Clock
	delay  time.Duration
	log    *logging.Logger

	mu        sync.Mutex
	copied    bool
	pending   Timer
	gen       uint64
	closed    bool
	listeners []func(bool)
}

// New creates a Copier writing through w.
func New(w Writer, opts ...Option) *Copier {
	c := &Copier{
		writer: w,
		clock:  RealClock,
		delay:  DefaultAckDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Copy writes text to the clipboard and raises the flag for the ack delay.
// An unavailable clipboard is a silent no-op. A failed write leaves the flag
// untouched and returns the error.
func (c *Copier) Copy(ctx context.Context, text string) error {
	if c.writer == nil || !c.writer.Available() {
		c.log.Debug("clipboard unavailable, copy skipped")
		return nil
	}
	if err := c.writer.WriteText(ctx, text); err != nil {
		c.log.Debug(fmt.Sprintf("clipboard write failed: %v", err))
		return fmt.Errorf("write clipboard: %w", err)
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	if c.pending != nil {
		c.pending.Stop()
	}
	c.gen++
	gen := c.gen
	c.copied = true
	c.pending = c.clock.AfterFunc(c.delay, func() { c.revert(gen) })
	listeners := append([]func(bool){}, c.listeners...)
	c.mu.Unlock()

	notify(listeners, true)
	return nil
}

// Copied reports whether a copy happened within the last ack delay.
func (c *Copier) Copied() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copied
}

// OnChange registers fn to run whenever the flag is set or cleared.
func (c *Copier) OnChange(fn func(bool)) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.listeners = append(c.listeners, fn)
}

// Close cancels the pending revert and drops listeners. The Copier ignores
// later copies.
func (c *Copier) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	c.closed = true
	c.copied = false
	c.listeners = nil
}

func (c *Copier) revert(gen uint64) {
	c.mu.Lock()
	// A timer that already fired can lose the race with Stop.
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.copied = false
	c.pending = nil
	listeners := append([]func(bool){}, c.listeners...)
	c.mu.Unlock()

	notify(listeners, false)
}

func notify(listeners []func(bool), copied bool) {
	for _, fn := range listeners {
		fn(copied)
	}
}
