package state

import (
	"math"
	"strings"
	"sync"
	"time"

	"github.com/verte-zerg/sidebyside/internal/model"
)

// TodoStore is an ordered list of todo items.
type TodoStore struct {
	mu    sync.RWMutex
	items []model.TodoItem
	now   func() time.Time
	subs  subscribers
}

// TodoOption customises a TodoStore.
type TodoOption func(*TodoStore)

// WithNow replaces the clock used to mint item ids.
func WithNow(now func() time.Time) TodoOption {
	return func(s *TodoStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewTodoStore returns a store seeded with the three demo items.
func NewTodoStore(opts ...TodoOption) *TodoStore {
	s := NewEmptyTodoStore(opts...)
	s.items = []model.TodoItem{
		{ID: 1, Text: "Learn Angular Signals", Done: true},
		{ID: 2, Text: "Build a reactive store"},
		{ID: 3, Text: "Compare with Zustand"},
	}
	return s
}

// NewEmptyTodoStore returns a store without items.
func NewEmptyTodoStore(opts ...TodoOption) *TodoStore {
	s := &TodoStore{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers fn to run after every change.
func (s *TodoStore) Subscribe(fn func()) (unsubscribe func()) {
	return s.subs.subscribe(fn)
}

// Add appends a new open item. Blank text is ignored. It reports whether an
// item was added.
func (s *TodoStore) Add(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	s.mu.Lock()
	id := s.now().UnixMilli()
	for _, item := range s.items {
		if item.ID >= id {
			id = item.ID + 1
		}
	}
	s.items = append(s.items, model.TodoItem{ID: id, Text: text})
	s.mu.Unlock()
	s.subs.notify()
	return true
}

// Toggle flips the done flag of id. Unknown ids are ignored.
func (s *TodoStore) Toggle(id int64) {
	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Done = !s.items[i].Done
			found = true
			break
		}
	}
	s.mu.Unlock()
	if found {
		s.subs.notify()
	}
}

// Remove deletes id. Unknown ids are ignored.
func (s *TodoStore) Remove(id int64) {
	s.filter(func(item model.TodoItem) bool { return item.ID != id })
}

// ClearCompleted removes every done item.
func (s *TodoStore) ClearCompleted() {
	s.filter(func(item model.TodoItem) bool { return !item.Done })
}

func (s *TodoStore) filter(keep func(model.TodoItem) bool) {
	s.mu.Lock()
	kept := s.items[:0:0]
	for _, item := range s.items {
		if keep(item) {
			kept = append(kept, item)
		}
	}
	changed := len(kept) != len(s.items)
	s.items = kept
	s.mu.Unlock()
	if changed {
		s.subs.notify()
	}
}

// Items returns a copy of the items in insertion order.
func (s *TodoStore) Items() []model.TodoItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.TodoItem(nil), s.items...)
}

// CompletedCount returns the number of done items.
func (s *TodoStore) CompletedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, item := range s.items {
		if item.Done {
			n++
		}
	}
	return n
}

// TotalCount returns the number of items.
func (s *TodoStore) TotalCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Progress returns the rounded completion percentage, 0 for an empty list.
func (s *TodoStore) Progress() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.items) == 0 {
		return 0
	}
	done := 0
	for _, item := range s.items {
		if item.Done {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(s.items)) * 100))
}
