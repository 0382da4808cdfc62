package state

import "sync"

// Prime filter bounds.
const (
	PrimeFilterStart = 50
	PrimeFilterStep  = 10
	PrimeFilterLimit = 200
)

// PrimeFilter lists 1..Max, optionally keeping only primes.
type PrimeFilter struct {
	mu         sync.RWMutex
	max        int
	onlyPrimes bool
	subs       subscribers
}

// NewPrimeFilter returns a filter over 1..50 showing every number.
func NewPrimeFilter() *PrimeFilter {
	return &PrimeFilter{max: PrimeFilterStart}
}

// Subscribe registers fn to run after every change.
func (p *PrimeFilter) Subscribe(fn func()) (unsubscribe func()) {
	return p.subs.subscribe(fn)
}

// IncreaseMax raises the bound by PrimeFilterStep up to PrimeFilterLimit.
func (p *PrimeFilter) IncreaseMax() {
	p.mu.Lock()
	p.max = min(p.max+PrimeFilterStep, PrimeFilterLimit)
	p.mu.Unlock()
	p.subs.notify()
}

// TogglePrimes switches between all numbers and primes only.
func (p *PrimeFilter) TogglePrimes() {
	p.mu.Lock()
	p.onlyPrimes = !p.onlyPrimes
	p.mu.Unlock()
	p.subs.notify()
}

// Max returns the upper bound.
func (p *PrimeFilter) Max() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.max
}

// OnlyPrimes reports whether non-primes are hidden.
func (p *PrimeFilter) OnlyPrimes() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.onlyPrimes
}

// Numbers returns the visible numbers in ascending order.
func (p *PrimeFilter) Numbers() []int {
	p.mu.RLock()
	limit, onlyPrimes := p.max, p.onlyPrimes
	p.mu.RUnlock()

	out := make([]int, 0, limit)
	for n := 1; n <= limit; n++ {
		if !onlyPrimes || IsPrime(n) {
			out = append(out, n)
		}
	}
	return out
}

// IsPrime reports whether n is prime.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}
