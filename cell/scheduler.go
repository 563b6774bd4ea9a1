package cell

import "time"

// Scheduler is the capability debounced and deferred cells, and async
// notification, need from the host event loop.
type Scheduler interface {
	// ScheduleTimer runs fn once after d. The returned cancel is safe to
	// call after the timer fired.
	ScheduleTimer(d time.Duration, fn func()) (cancel func())
	// ScheduleTick queues fn for the next turn of the loop.
	ScheduleTick(fn func())
}

// TimerScheduler schedules against the wall clock; callbacks run on timer
// goroutines. Hosts that have a real event loop should adapt that loop
// instead.
type TimerScheduler struct{}

func (TimerScheduler) ScheduleTimer(d time.Duration, fn func()) (cancel func()) {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

func (TimerScheduler) ScheduleTick(fn func()) {
	time.AfterFunc(0, fn)
}

// ManualScheduler is a virtual clock. Nothing fires until Advance or Flush
// is called, which makes debounce windows and deferred applies fully
// deterministic in tests.
type ManualScheduler struct {
	now    time.Duration
	seq    int
	timers []*manualTimer
	ticks  []func()
}

type manualTimer struct {
	due     time.Duration
	seq     int
	fn      func()
	stopped bool
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (m *ManualScheduler) ScheduleTimer(d time.Duration, fn func()) (cancel func()) {
	t := &manualTimer{due: m.now + d, seq: m.seq, fn: fn}
	m.seq++
	m.timers = append(m.timers, t)
	return func() { t.stopped = true }
}

func (m *ManualScheduler) ScheduleTick(fn func()) {
	m.ticks = append(m.ticks, fn)
}

// Now reports the virtual clock.
func (m *ManualScheduler) Now() time.Duration {
	return m.now
}

// Advance moves the clock forward, firing due timers in due order. Timers
// scheduled by a fired callback are honored within the same call when they
// fall inside the window.
func (m *ManualScheduler) Advance(d time.Duration) {
	target := m.now + d
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.now = next.due
		next.stopped = true
		next.fn()
	}
	m.now = target
	m.compact()
}

func (m *ManualScheduler) nextDue(target time.Duration) *manualTimer {
	var best *manualTimer
	for _, t := range m.timers {
		if t.stopped || t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (m *ManualScheduler) compact() {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	m.timers = live
}

// Flush runs queued next-turn callbacks, including ones queued while
// flushing.
func (m *ManualScheduler) Flush() {
	for len(m.ticks) > 0 {
		tick := m.ticks[0]
		m.ticks = m.ticks[1:]
		tick()
	}
}
