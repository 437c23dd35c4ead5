package timers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler() (*Scheduler, *MockClock) {
	clock := NewMockClock(time.Unix(1000, 0))
	return NewScheduler(clock), clock
}

func TestScheduler_RunsOncePerInterval(t *testing.T) {
	s, clock := newTestScheduler()

	runs := 0
	h := s.Every(time.Second, func() { runs++ })
	require.True(t, s.Active(h))

	s.Update()
	assert.Equal(t, 0, runs, "no time elapsed")

	clock.Advance(500 * time.Millisecond)
	s.Update()
	assert.Equal(t, 0, runs)

	clock.Advance(500 * time.Millisecond)
	s.Update()
	assert.Equal(t, 1, runs)

	for i := 0; i < 3; i++ {
		clock.Advance(time.Second)
		s.Update()
	}
	assert.Equal(t, 4, runs)
}

func TestScheduler_IgnoresTickCount(t *testing.T) {
	s, _ := newTestScheduler()

	runs := 0
	s.Every(time.Second, func() { runs++ })

	for i := 0; i < 120; i++ {
		s.Update()
	}
	assert.Equal(t, 0, runs, "updates without elapsed time must not run the task")
}

func TestScheduler_CancelIsImmediate(t *testing.T) {
	s, clock := newTestScheduler()

	runs := 0
	h := s.Every(time.Second, func() { runs++ })

	clock.Advance(time.Second)
	s.Cancel(h)
	s.Update()

	assert.Equal(t, 0, runs)
	assert.False(t, s.Active(h))
	assert.Equal(t, 0, s.Len())

	// Cancelling twice is harmless
	s.Cancel(h)
	s.Cancel(Handle(0))
}

func TestScheduler_CancelFromTask(t *testing.T) {
	s, clock := newTestScheduler()

	var second Handle
	secondRuns := 0
	s.Every(time.Second, func() { s.Cancel(second) })
	second = s.Every(time.Second, func() { secondRuns++ })

	clock.Advance(time.Second)
	s.Update()

	assert.Equal(t, 0, secondRuns)
	assert.Equal(t, 1, s.Len())
}

func TestScheduler_HandlesAreFresh(t *testing.T) {
	s, _ := newTestScheduler()

	a := s.Every(time.Second, func() {})
	s.Cancel(a)
	b := s.Every(time.Second, func() {})

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, Handle(0), b)
}

func TestScheduler_Clear(t *testing.T) {
	s, clock := newTestScheduler()

	runs := 0
	s.Every(time.Second, func() { runs++ })
	s.Every(time.Second, func() { runs++ })
	s.Clear()

	clock.Advance(time.Second)
	s.Update()

	assert.Equal(t, 0, runs)
	assert.Equal(t, 0, s.Len())
}
