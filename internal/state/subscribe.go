// Package state holds the small reactive stores behind the live demos.
//
// Each store keeps its state unexported, mutates it only through named
// actions and computes derived values on read. Subscribers run after every
// mutation, outside the store lock.
package state

import "sync"

type subscribers struct {
	mu   sync.Mutex
	next int
	fns  map[int]func()
}

func (s *subscribers) subscribe(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fns == nil {
		s.fns = map[int]func(){}
	}
	id := s.next
	s.next++
	s.fns[id] = fn
	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.fns, id)
			s.mu.Unlock()
		})
	}
}

func (s *subscribers) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.fns))
	for id := 0; id < s.next; id++ {
		if fn, ok := s.fns[id]; ok {
			fns = append(fns, fn)
		}
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
