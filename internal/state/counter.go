package state

import (
	"fmt"
	"sync"
)

const defaultCounterName = "Angular"

// Counter is an integer with a display name.
type Counter struct {
	mu    sync.RWMutex
	count int
	name  string
	subs  subscribers
}

// NewCounter returns a counter at zero.
func NewCounter() *Counter {
	return &Counter{name: defaultCounterName}
}

// Subscribe registers fn to run after every change.
func (c *Counter) Subscribe(fn func()) (unsubscribe func()) {
	return c.subs.subscribe(fn)
}

// Increment adds one.
func (c *Counter) Increment() { c.update(func(n int) int { return n + 1 }) }

// Decrement subtracts one.
func (c *Counter) Decrement() { c.update(func(n int) int { return n - 1 }) }

// Reset sets the count back to zero.
func (c *Counter) Reset() { c.Set(0) }

// Set replaces the count.
func (c *Counter) Set(n int) { c.update(func(int) int { return n }) }

// SetName changes the name used by Greeting.
func (c *Counter) SetName(name string) {
	c.mu.Lock()
	c.name = name
	c.mu.Unlock()
	c.subs.notify()
}

func (c *Counter) update(fn func(int) int) {
	c.mu.Lock()
	c.count = fn(c.count)
	c.mu.Unlock()
	c.subs.notify()
}

// Count returns the current value.
func (c *Counter) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.count
}

// Name returns the display name.
func (c *Counter) Name() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.name
}

// Double returns twice the count.
func (c *Counter) Double() int {
	return c.Count() * 2
}

// IsEven reports whether the count is even.
func (c *Counter) IsEven() bool {
	return c.Count()%2 == 0
}

// Greeting combines the name with the doubled count.
func (c *Counter) Greeting() string {
	c.mu.RLock()
	name, count := c.name, c.count
	c.mu.RUnlock()
	return fmt.Sprintf("Hello from %s! Count x2 = %d", name, count*2)
}
