package clipboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/sidebyside/internal/platform"
)

func newTestCopier(w Writer) (*Copier, *fakeClock) {
	clock := &fakeClock{}
	return New(w, WithClock(clock)), clock
}

func TestCopyRaisesFlagThenRevertsAfterAckDelay(t *testing.T) {
	w := &fakeWriter{available: true}
	c, clock := newTestCopier(w)

	require.NoError(t, c.Copy(context.Background(), "const x = 1;"))
	assert.Equal(t, []string{"const x = 1;"}, w.writes)
	assert.True(t, c.Copied())

	clock.Advance(1999 * time.Millisecond)
	assert.True(t, c.Copied())

	clock.Advance(time.Millisecond)
	assert.False(t, c.Copied())
	assert.Zero(t, clock.Active())
}

func TestCopyWritesRawText(t *testing.T) {
	w := &fakeWriter{available: true}
	c, _ := newTestCopier(w)
	raw := `<div class="a">{count() && 'x'}</div>`

	require.NoError(t, c.Copy(context.Background(), raw))
	assert.Equal(t, raw, w.writes[0])
}

func TestSecondCopyRestartsTheTimer(t *testing.T) {
	c, clock := newTestCopier(&fakeWriter{available: true})
	ctx := context.Background()

	require.NoError(t, c.Copy(ctx, "a"))
	clock.Advance(1500 * time.Millisecond)
	require.NoError(t, c.Copy(ctx, "b"))
	assert.Equal(t, 1, clock.Active())

	clock.Advance(600 * time.Millisecond)
	assert.True(t, c.Copied(), "first timer must not clear the flag")

	clock.Advance(1400 * time.Millisecond)
	assert.False(t, c.Copied())
}

func TestCopyUnavailableIsNoOp(t *testing.T) {
	w := &fakeWriter{available: false}
	c, clock := newTestCopier(w)

	require.NoError(t, c.Copy(context.Background(), "x"))
	assert.False(t, c.Copied())
	assert.Empty(t, w.writes)
	assert.Zero(t, clock.Active())
}

func TestCopyNilWriterIsNoOp(t *testing.T) {
	c, _ := newTestCopier(nil)
	require.NoError(t, c.Copy(context.Background(), "x"))
	assert.False(t, c.Copied())
}

func TestCopyWriteFailureLeavesFlag(t *testing.T) {
	w := &fakeWriter{available: true, err: errors.New("permission denied")}
	c, clock := newTestCopier(w)

	err := c.Copy(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
	assert.False(t, c.Copied())
	assert.Zero(t, clock.Active())
}

func TestOnChangeFiresForSetAndClear(t *testing.T) {
	c, clock := newTestCopier(&fakeWriter{available: true})
	var seen []bool
	c.OnChange(func(v bool) { seen = append(seen, v) })

	require.NoError(t, c.Copy(context.Background(), "x"))
	clock.Advance(DefaultAckDelay)
	assert.Equal(t, []bool{true, false}, seen)
}

func TestCloseCancelsPendingRevert(t *testing.T) {
	c, clock := newTestCopier(&fakeWriter{available: true})
	var seen []bool
	c.OnChange(func(v bool) { seen = append(seen, v) })

	require.NoError(t, c.Copy(context.Background(), "x"))
	c.Close()
	assert.Zero(t, clock.Active())
	assert.False(t, c.Copied())

	clock.Advance(DefaultAckDelay)
	require.NoError(t, c.Copy(context.Background(), "y"))
	assert.False(t, c.Copied())
	assert.Equal(t, []bool{true}, seen)
}

func TestWithAckDelay(t *testing.T) {
	clock := &fakeClock{}
	c := New(&fakeWriter{available: true}, WithClock(clock), WithAckDelay(500*time.Millisecond))

	require.NoError(t, c.Copy(context.Background(), "x"))
	clock.Advance(499 * time.Millisecond)
	assert.True(t, c.Copied())
	clock.Advance(time.Millisecond)
	assert.False(t, c.Copied())
}

func TestRealClockReverts(t *testing.T) {
	c := New(&fakeWriter{available: true}, WithAckDelay(10*time.Millisecond))
	require.NoError(t, c.Copy(context.Background(), "x"))
	assert.Eventually(t, func() bool { return !c.Copied() }, time.Second, 5*time.Millisecond)
}

func TestSystemWriterRespectsEnv(t *testing.T) {
	origWrite, origUnsupported := clipboardWriteAll, clipboardUnsupported
	t.Cleanup(func() {
		clipboardWriteAll = origWrite
		clipboardUnsupported = origUnsupported
	})
	var got string
	clipboardWriteAll = func(text string) error {
		got = text
		return nil
	}
	clipboardUnsupported = func() bool { return false }

	assert.False(t, NewSystem(platform.Headless()).Available())
	sys := NewSystem(platform.Interactive())
	require.True(t, sys.Available())
	require.NoError(t, sys.WriteText(context.Background(), "hello"))
	assert.Equal(t, "hello", got)

	clipboardUnsupported = func() bool { return true }
	assert.False(t, sys.Available())
}

func TestSystemWriterHonoursContext(t *testing.T) {
	origWrite := clipboardWriteAll
	t.Cleanup(func() { clipboardWriteAll = origWrite })
	release := make(chan struct{})
	defer close(release)
	clipboardWriteAll = func(string) error {
		<-release
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewSystem(platform.Interactive()).WriteText(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBoardScopesCopiersPerBlock(t *testing.T) {
	clock := &fakeClock{}
	b := NewBoard(&fakeWriter{available: true}, WithClock(clock))
	ctx := context.Background()

	require.NoError(t, b.Copy(ctx, "0/react", "a"))
	assert.True(t, b.Copied("0/react"))
	assert.False(t, b.Copied("0/angular"))
	assert.Equal(t, 1, b.Len())

	b.CloseAll()
	assert.Zero(t, b.Len())
	assert.Zero(t, clock.Active())
	assert.False(t, b.Copied("0/react"))
}
