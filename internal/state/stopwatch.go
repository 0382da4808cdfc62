package state

import "sync"

// Stopwatch counts whole seconds while running. Something outside the
// store calls Tick once per second; Generation lets that driver drop ticks
// scheduled before the last Start, Stop or Reset.
type Stopwatch struct {
	mu      sync.RWMutex
	seconds int
	running bool
	gen     uint64
	subs    subscribers
}

// NewStopwatch returns a stopped stopwatch at zero.
func NewStopwatch() *Stopwatch {
	return &Stopwatch{}
}

// Subscribe registers fn to run after every change.
func (s *Stopwatch) Subscribe(fn func()) (unsubscribe func()) {
	return s.subs.subscribe(fn)
}

// Start begins counting. It returns the generation ticks must carry.
func (s *Stopwatch) Start() uint64 {
	s.mu.Lock()
	if s.running {
		gen := s.gen
		s.mu.Unlock()
		return gen
	}
	s.running = true
	s.gen++
	gen := s.gen
	s.mu.Unlock()
	s.subs.notify()
	return gen
}

// Stop pauses counting and invalidates outstanding ticks.
func (s *Stopwatch) Stop() {
	s.mu.Lock()
	was := s.running
	s.running = false
	s.gen++
	s.mu.Unlock()
	if was {
		s.subs.notify()
	}
}

// Toggle starts a stopped stopwatch or stops a running one.
func (s *Stopwatch) Toggle() {
	if s.Running() {
		s.Stop()
		return
	}
	s.Start()
}

// Reset stops and zeroes the stopwatch.
func (s *Stopwatch) Reset() {
	s.mu.Lock()
	s.running = false
	s.seconds = 0
	s.gen++
	s.mu.Unlock()
	s.subs.notify()
}

// Tick adds a second when gen is current and the stopwatch runs. It reports
// whether the tick was applied, i.e. whether the driver should schedule the
// next one.
func (s *Stopwatch) Tick(gen uint64) bool {
	s.mu.Lock()
	if !s.running || gen != s.gen {
		s.mu.Unlock()
		return false
	}
	s.seconds++
	s.mu.Unlock()
	s.subs.notify()
	return true
}

// Generation returns the current tick generation.
func (s *Stopwatch) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen
}

// Seconds returns the elapsed seconds.
func (s *Stopwatch) Seconds() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seconds
}

// Running reports whether the stopwatch counts.
func (s *Stopwatch) Running() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}
