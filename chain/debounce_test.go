package chain_test

import (
	"testing"
	"time"

	"github.com/delaneyj/cellchain/cell"
	"github.com/delaneyj/cellchain/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebounceEmitsLastValueOfQuietWindow(t *testing.T) {
	sched := cell.NewManualScheduler()
	src := cell.New(42)
	deb := chain.Debounce(src, 500*time.Millisecond, sched)

	var got []int
	chain.Listen(deb, func(v int, _ *chain.Subscription) { got = append(got, v) })

	// t=100ms..200ms: a burst, each change restarting the window
	sched.Advance(100 * time.Millisecond)
	src.SetValue(43)
	sched.Advance(100 * time.Millisecond)
	src.SetValue(44)

	// t=550ms: one more change, window now runs to 1050ms
	sched.Advance(350 * time.Millisecond)
	src.SetValue(45)
	assert.Empty(t, got)

	sched.Advance(500 * time.Millisecond)
	assert.Equal(t, []int{45}, got)
	assert.Equal(t, 45, deb.Value())

	// t=1100ms: an isolated change fires alone at 1600ms
	sched.Advance(50 * time.Millisecond)
	src.SetValue(46)
	sched.Advance(500 * time.Millisecond)
	assert.Equal(t, []int{45, 46}, got)
}

func TestDebounceKeepsOneOutstandingTimer(t *testing.T) {
	sched := cell.NewManualScheduler()
	src := cell.New(0)
	deb := chain.Debounce(src, 100*time.Millisecond, sched)

	calls := 0
	chain.Listen(deb, func(int, *chain.Subscription) { calls++ })

	src.SetValue(1)
	src.SetValue(2)
	src.SetValue(3)
	sched.Advance(time.Second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 3, deb.Value())
}

func TestDebounceOrphanedTimerIsNoOp(t *testing.T) {
	sched := cell.NewManualScheduler()
	src := cell.New(0)
	deb := chain.Debounce(src, 100*time.Millisecond, sched)

	calls := 0
	sub := chain.Listen(deb, func(int, *chain.Subscription) { calls++ })

	src.SetValue(1)
	sub.Cancel()

	// the timer is still pending but the cell unchained; firing must not
	// touch the stale out value
	require.NotPanics(t, func() { sched.Advance(time.Second) })
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, deb.Value())
}

func TestDebounceDisposeCancelsPendingTimer(t *testing.T) {
	sched := cell.NewManualScheduler()
	src := cell.New(0)
	deb := chain.Debounce(src, 100*time.Millisecond, sched)
	chain.Listen(deb, func(int, *chain.Subscription) {})

	src.SetValue(1)
	deb.Dispose()
	assert.NotPanics(t, func() { sched.Advance(time.Second) })
}

func TestDebounceNilSchedulerPanics(t *testing.T) {
	src := cell.New(0)
	assert.Panics(t, func() { chain.Debounce[int](src, time.Second, nil) })
}
