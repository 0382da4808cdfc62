package posts

import (
	"context"

	"github.com/verte-zerg/sidebyside/internal/model"
)

// FetchState is the outcome of one request as the UI shows it.
type FetchState[T any] struct {
	Data    T
	Loading bool
	Error   string
}

// Loading is the state while a request is in flight.
func Loading[T any]() FetchState[T] {
	return FetchState[T]{Loading: true}
}

// FetchList lists posts and folds any failure into the state.
func FetchList(ctx context.Context, f Fetcher, limit int) FetchState[[]model.Post] {
	data, err := f.List(ctx, limit)
	if err != nil {
		return FetchState[[]model.Post]{Error: err.Error()}
	}
	return FetchState[[]model.Post]{Data: data}
}

// FetchOne loads a single post and folds any failure into the state.
func FetchOne(ctx context.Context, f Fetcher, id int) FetchState[model.Post] {
	data, err := f.Get(ctx, id)
	if err != nil {
		return FetchState[model.Post]{Error: err.Error()}
	}
	return FetchState[model.Post]{Data: data}
}

// ClampPostID keeps id within MinPostID..MaxPostID.
func ClampPostID(id int) int {
	return max(MinPostID, min(id, MaxPostID))
}
