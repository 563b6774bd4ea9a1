package cell_test

import (
	"testing"
	"time"

	"github.com/delaneyj/cellchain/cell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualSchedulerFiresInDueOrder(t *testing.T) {
	m := cell.NewManualScheduler()
	var fired []string
	m.ScheduleTimer(300*time.Millisecond, func() { fired = append(fired, "late") })
	m.ScheduleTimer(100*time.Millisecond, func() { fired = append(fired, "early") })

	m.Advance(50 * time.Millisecond)
	assert.Empty(t, fired)

	m.Advance(500 * time.Millisecond)
	assert.Equal(t, []string{"early", "late"}, fired)
	assert.Equal(t, 550*time.Millisecond, m.Now())
}

func TestManualSchedulerCancel(t *testing.T) {
	m := cell.NewManualScheduler()
	fired := false
	cancel := m.ScheduleTimer(100*time.Millisecond, func() { fired = true })
	cancel()
	m.Advance(time.Second)
	assert.False(t, fired)
	assert.NotPanics(t, cancel)
}

func TestManualSchedulerNestedTimers(t *testing.T) {
	m := cell.NewManualScheduler()
	var fired []string
	m.ScheduleTimer(100*time.Millisecond, func() {
		fired = append(fired, "outer")
		m.ScheduleTimer(100*time.Millisecond, func() { fired = append(fired, "inner") })
	})

	// the nested timer is due at 200ms, inside the same window
	m.Advance(time.Second)
	assert.Equal(t, []string{"outer", "inner"}, fired)
}

func TestManualSchedulerFlushRunsQueuedTicks(t *testing.T) {
	m := cell.NewManualScheduler()
	var fired []string
	m.ScheduleTick(func() {
		fired = append(fired, "first")
		m.ScheduleTick(func() { fired = append(fired, "nested") })
	})
	m.ScheduleTick(func() { fired = append(fired, "second") })

	m.Flush()
	assert.Equal(t, []string{"first", "second", "nested"}, fired)

	m.Flush()
	assert.Len(t, fired, 3)
}

func TestTimerSchedulerFiresAndCancels(t *testing.T) {
	var s cell.TimerScheduler

	fired := make(chan struct{})
	s.ScheduleTimer(5*time.Millisecond, func() { close(fired) })
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		require.Fail(t, "timer never fired")
	}

	canceledFired := make(chan struct{})
	cancel := s.ScheduleTimer(50*time.Millisecond, func() { close(canceledFired) })
	cancel()
	select {
	case <-canceledFired:
		require.Fail(t, "canceled timer fired")
	case <-time.After(200 * time.Millisecond):
	}

	ticked := make(chan struct{})
	s.ScheduleTick(func() { close(ticked) })
	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		require.Fail(t, "tick never ran")
	}
}
