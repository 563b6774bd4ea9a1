package chain

import "github.com/delaneyj/cellchain/cell"

// DeferredCell applies upstream changes on the next scheduler turn instead
// of synchronously, breaking re-entrancy for consumers that must not be
// updated mid-pass (a render pass, typically).
type DeferredCell[T comparable] struct {
	node[T]
	src   ValueSource[T]
	sched cell.Scheduler
}

func Deferred[T comparable](src ValueSource[T], sched cell.Scheduler) *DeferredCell[T] {
	if sched == nil {
		panic("chain: nil scheduler")
	}
	d := &DeferredCell[T]{src: src, sched: sched}
	d.init(src.Value())
	d.link(src, d.schedule)
	return d
}

func (d *DeferredCell[T]) schedule() {
	d.sched.ScheduleTick(d.apply)
}

// apply reads the upstream at fire time, so a burst of changes before the
// turn runs collapses into the latest value.
func (d *DeferredCell[T]) apply() {
	if !d.chained {
		return
	}
	d.out.SetValue(d.src.Value())
}
