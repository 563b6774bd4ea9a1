package cell

// Policy controls when SetValue runs a notification pass.
type Policy uint8

const (
	// NotifyOnChange notifies iff the assigned value differs from the
	// previous one, by value equality.
	NotifyOnChange Policy = iota
	// NotifyAlways notifies on every assignment, equal or not.
	NotifyAlways
	// NotifyManual never auto-notifies; the producer calls Notify itself.
	NotifyManual
)

// Options tunes a cell beyond the defaults of New.
type Options struct {
	Policy Policy
	// Async defers each notification pass to the next scheduler turn
	// instead of walking listeners inline. Requires a Scheduler.
	Async     bool
	Scheduler Scheduler
	// OnError receives panics raised by listener callbacks; siblings of a
	// failing listener still run. Nil means fail fast.
	OnError func(error)
}

// Cell holds a single current value and notifies its listeners when the
// value is assigned, per its policy. The value is readable at all times,
// listeners or not.
type Cell[T comparable] struct {
	Source
	value  T
	policy Policy
	async  bool
	sched  Scheduler
}

// New returns a cell with the default on-change policy.
func New[T comparable](initial T) *Cell[T] {
	return &Cell[T]{value: initial}
}

func NewWithOptions[T comparable](initial T, opts Options) *Cell[T] {
	if opts.Async && opts.Scheduler == nil {
		panic("cell: async notification requires a scheduler")
	}
	c := &Cell[T]{
		value:  initial,
		policy: opts.Policy,
		async:  opts.Async,
		sched:  opts.Scheduler,
	}
	c.onError = opts.OnError
	return c
}

func (c *Cell[T]) Value() T {
	return c.value
}

func (c *Cell[T]) SetValue(v T) {
	if c.disposed {
		panic("cell: SetValue on disposed cell")
	}
	changed := c.value != v
	c.value = v
	switch c.policy {
	case NotifyManual:
		return
	case NotifyOnChange:
		if !changed {
			return
		}
	}
	c.notify()
}

// Notify runs a pass regardless of policy. Manual-mode producers call this
// after one or more silent assignments.
func (c *Cell[T]) Notify() {
	if c.disposed {
		panic("cell: Notify on disposed cell")
	}
	c.notify()
}

func (c *Cell[T]) notify() {
	if c.async {
		c.sched.ScheduleTick(c.notifyNow)
		return
	}
	c.notifyNow()
}
