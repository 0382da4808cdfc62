package clipboard

import (
	"context"
	"sync"
)

// Board holds the copiers of one view, keyed by code block id.
type Board struct {
	writer Writer
	opts   []Option

	mu      sync.Mutex
	copiers map[string]*Copier
}

// NewBoard returns an empty Board whose copiers share w and opts.
func NewBoard(w Writer, opts ...Option) *Board {
	return &Board{
		writer:  w,
		opts:    opts,
		copiers: map[string]*Copier{},
	}
}

// For returns the copier for id, creating it on first use.
func (b *Board) For(id string) *Copier {
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.copiers[id]
	if !ok {
		c = New(b.writer, b.opts...)
		b.copiers[id] = c
	}
	return c
}

// Copy copies text through the copier of id.
func (b *Board) Copy(ctx context.Context, id, text string) error {
	return b.For(id).Copy(ctx, text)
}

// Copied reports the flag of id without creating a copier.
func (b *Board) Copied(id string) bool {
	b.mu.Lock()
	c, ok := b.copiers[id]
	b.mu.Unlock()
	return ok && c.Copied()
}

// Len returns the number of copiers created so far.
func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.copiers)
}

// CloseAll closes every copier and empties the board.
func (b *Board) CloseAll() {
	b.mu.Lock()
	copiers := b.copiers
	b.copiers = map[string]*Copier{}
	b.mu.Unlock()
	for _, c := range copiers {
		c.Close()
	}
}
