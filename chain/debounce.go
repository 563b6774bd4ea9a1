package chain

import (
	"time"

	"github.com/delaneyj/cellchain/cell"
)

// DebouncedCell propagates only the last upstream value of each quiet
// window; intermediate values within the window are discarded.
type DebouncedCell[T comparable] struct {
	node[T]
	src         ValueSource[T]
	dur         time.Duration
	sched       cell.Scheduler
	cancelTimer func()
}

// Debounce derives a cell that trails src by the quiet window d. Each
// upstream change cancels the pending window and starts a new one; at most
// one timer is outstanding per cell.
func Debounce[T comparable](src ValueSource[T], d time.Duration, sched cell.Scheduler) *DebouncedCell[T] {
	if sched == nil {
		panic("chain: nil scheduler")
	}
	b := &DebouncedCell[T]{src: src, dur: d, sched: sched}
	b.init(src.Value())
	b.link(src, b.restart)
	return b
}

func (b *DebouncedCell[T]) restart() {
	if b.cancelTimer != nil {
		b.cancelTimer()
	}
	b.cancelTimer = b.sched.ScheduleTimer(b.dur, b.fire)
}

// fire may run after the last listener left; the chained check turns such
// orphaned timers into no-ops.
func (b *DebouncedCell[T]) fire() {
	b.cancelTimer = nil
	if !b.chained {
		return
	}
	b.out.SetValue(b.src.Value())
}

func (b *DebouncedCell[T]) Dispose() {
	if b.cancelTimer != nil {
		b.cancelTimer()
		b.cancelTimer = nil
	}
	b.node.Dispose()
}
