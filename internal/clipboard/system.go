package clipboard

import (
	"context"

	"github.com/atotto/clipboard"

	"github.com/verte-zerg/sidebyside/internal/platform"
)

// Writer puts text on a clipboard.
type Writer interface {
	Available() bool
	WriteText(ctx context.Context, text string) error
}

var (
	clipboardWriteAll    = clipboard.WriteAll
	clipboardUnsupported = func() bool { return clipboard.Unsupported }
)

// System writes to the operating system clipboard.
type System struct {
	env platform.Env
}

var _ Writer = (*System)(nil)

// NewSystem returns a system clipboard writer gated by env.
func NewSystem(env platform.Env) *System {
	return &System{env: env}
}

// Available reports whether the environment has a usable clipboard.
func (s *System) Available() bool {
	return s != nil && s.env.Clipboard && !clipboardUnsupported()
}

// WriteText writes text, giving up when ctx is done first.
func (s *System) WriteText(ctx context.Context, text string) error {
	write := clipboardWriteAll
	done := make(chan error, 1)
	go func() {
		done <- write(text)
	}()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
