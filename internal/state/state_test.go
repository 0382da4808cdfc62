package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterActions(t *testing.T) {
	c := NewCounter()
	c.Increment()
	c.Increment()
	assert.Equal(t, 2, c.Count())
	assert.Equal(t, 4, c.Double())
	assert.True(t, c.IsEven())

	c.Decrement()
	assert.Equal(t, 1, c.Count())
	assert.False(t, c.IsEven())

	c.Reset()
	assert.Equal(t, 0, c.Count())

	c.Set(-3)
	assert.Equal(t, -6, c.Double())
	assert.False(t, c.IsEven())
}

func TestCounterGreeting(t *testing.T) {
	c := NewCounter()
	c.Set(3)
	assert.Equal(t, "Hello from Angular! Count x2 = 6", c.Greeting())
	c.SetName("Go")
	assert.Equal(t, "Hello from Go! Count x2 = 6", c.Greeting())
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	c := NewCounter()
	calls := 0
	unsubscribe := c.Subscribe(func() { calls++ })

	c.Increment()
	c.Reset()
	assert.Equal(t, 2, calls)

	unsubscribe()
	unsubscribe()
	c.Increment()
	assert.Equal(t, 2, calls)
}

func TestSubscriberSeesNewState(t *testing.T) {
	c := NewCounter()
	var seen []int
	c.Subscribe(func() { seen = append(seen, c.Count()) })
	c.Increment()
	c.Increment()
	assert.Equal(t, []int{1, 2}, seen)
}

func fixedNow(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func TestTodoSeededItems(t *testing.T) {
	s := NewTodoStore()
	items := s.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "Learn Angular Signals", items[0].Text)
	assert.True(t, items[0].Done)
	assert.Equal(t, 1, s.CompletedCount())
	assert.Equal(t, 33, s.Progress())
}

func TestTodoAddTrimsAndIgnoresBlank(t *testing.T) {
	s := NewEmptyTodoStore(WithNow(fixedNow(1000)))
	assert.False(t, s.Add("   "))
	assert.Zero(t, s.TotalCount())

	assert.True(t, s.Add("  ship it  "))
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "ship it", items[0].Text)
	assert.False(t, items[0].Done)
	assert.Equal(t, int64(1000), items[0].ID)
}

func TestTodoIDsStayUniqueWithinOneMillisecond(t *testing.T) {
	s := NewEmptyTodoStore(WithNow(fixedNow(1000)))
	s.Add("a")
	s.Add("b")
	s.Add("c")
	items := s.Items()
	assert.Equal(t, []int64{1000, 1001, 1002}, []int64{items[0].ID, items[1].ID, items[2].ID})
}

func TestTodoToggleRemoveClear(t *testing.T) {
	s := NewEmptyTodoStore(WithNow(fixedNow(10)))
	s.Add("a")
	s.Add("b")
	s.Toggle(10)
	assert.Equal(t, 1, s.CompletedCount())
	assert.Equal(t, 50, s.Progress())

	s.ClearCompleted()
	assert.Zero(t, s.CompletedCount())
	assert.Equal(t, 1, s.TotalCount())

	s.Remove(11)
	assert.Zero(t, s.TotalCount())
	assert.Zero(t, s.Progress())
}

func TestTodoUnknownIDsDoNotNotify(t *testing.T) {
	s := NewTodoStore()
	calls := 0
	s.Subscribe(func() { calls++ })
	s.Toggle(99)
	s.Remove(99)
	assert.Zero(t, calls)
}

func TestTodoItemsIsACopy(t *testing.T) {
	s := NewTodoStore()
	items := s.Items()
	items[0].Text = "changed"
	assert.Equal(t, "Learn Angular Signals", s.Items()[0].Text)
}

func TestPasswordScores(t *testing.T) {
	cases := []struct {
		in    string
		score int
		label string
		color string
	}{
		{"", 0, "Very Weak", "#ef4444"},
		{"a", 1, "Weak", "#f97316"},
		{"aA", 2, "Fair", "#eab308"},
		{"aA1", 3, "Good", "#84cc16"},
		{"aA1!", 4, "Strong", "#22c55e"},
		{"Aa1!aaaa", 5, "Very Strong", "#10b981"},
		{"aaaaaaaa", 2, "Fair", "#eab308"},
		{"pässwörd", 3, "Good", "#84cc16"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			p := NewPasswordStrength()
			p.Update(tc.in)
			assert.Equal(t, tc.score, p.Score())
			assert.Equal(t, Level{Label: tc.label, Color: tc.color}, p.Level())
		})
	}
}

func TestPasswordChecks(t *testing.T) {
	c := CheckPassword("abc 12")
	assert.Equal(t, Checks{Lower: true, Digit: true, Special: true}, c)
	assert.Equal(t, 3, c.Passed())
}

func TestLevelForClamps(t *testing.T) {
	assert.Equal(t, "Very Weak", LevelFor(-1).Label)
	assert.Equal(t, "Very Strong", LevelFor(9).Label)
}

func TestStopwatchTicksOnlyWhileRunning(t *testing.T) {
	s := NewStopwatch()
	assert.False(t, s.Tick(s.Generation()))

	gen := s.Start()
	assert.True(t, s.Tick(gen))
	assert.True(t, s.Tick(gen))
	assert.Equal(t, 2, s.Seconds())

	s.Stop()
	assert.False(t, s.Tick(gen))
	assert.Equal(t, 2, s.Seconds())

	s.Toggle()
	assert.True(t, s.Running())
	assert.False(t, s.Tick(gen), "ticks from an earlier run are stale")
	assert.True(t, s.Tick(s.Generation()))

	s.Reset()
	assert.False(t, s.Running())
	assert.Zero(t, s.Seconds())
}

func TestStopwatchStartWhileRunningKeepsGeneration(t *testing.T) {
	s := NewStopwatch()
	gen := s.Start()
	assert.Equal(t, gen, s.Start())
}

func TestPrimeFilter(t *testing.T) {
	p := NewPrimeFilter()
	assert.Equal(t, 50, p.Max())
	assert.Len(t, p.Numbers(), 50)

	p.TogglePrimes()
	nums := p.Numbers()
	assert.Equal(t, []int{2, 3, 5, 7, 11}, nums[:5])
	assert.Len(t, nums, 15)

	for i := 0; i < 20; i++ {
		p.IncreaseMax()
	}
	assert.Equal(t, PrimeFilterLimit, p.Max())
	assert.Len(t, p.Numbers(), 46)
}
