package timers

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Handle identifies a scheduled task. The zero Handle never refers to a task.
type Handle uint64

type task struct {
	id        Handle
	wait      *gween.Tween
	last      time.Time
	fn        func()
	cancelled bool
}

// Scheduler runs repeating tasks from the tick pump. Each task waits on its
// own linear timeline of the task interval, fed with elapsed real time.
// Not safe for concurrent use; tasks run inside Update.
type Scheduler struct {
	clock Clock
	next  Handle
	tasks map[Handle]*task
	order []*task
}

func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = RealClock{}
	}
	return &Scheduler{
		clock: clock,
		tasks: make(map[Handle]*task),
	}
}

// Every registers fn to run each time interval elapses. The first run
// happens one interval after registration.
func (s *Scheduler) Every(interval time.Duration, fn func()) Handle {
	s.next++
	t := &task{
		id:   s.next,
		wait: gween.New(0, 1, float32(interval.Seconds()), ease.Linear),
		last: s.clock.Now(),
		fn:   fn,
	}
	s.tasks[t.id] = t
	s.order = append(s.order, t)
	return t.id
}

// Cancel stops a task immediately. Cancelling an unknown or finished handle
// is a no-op.
func (s *Scheduler) Cancel(h Handle) {
	t, ok := s.tasks[h]
	if !ok {
		return
	}
	t.cancelled = true
	delete(s.tasks, h)
}

// Active reports whether h refers to a running task
func (s *Scheduler) Active(h Handle) bool {
	_, ok := s.tasks[h]
	return ok
}

// Len returns the number of running tasks
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// Update advances every task by the real time elapsed since its last update
// and runs those whose interval completed.
func (s *Scheduler) Update() {
	now := s.clock.Now()

	live := s.order[:0]
	for _, t := range s.order {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	s.order = live

	// Tasks may cancel or register tasks while running
	pending := make([]*task, len(s.order))
	copy(pending, s.order)

	for _, t := range pending {
		if t.cancelled {
			continue
		}
		dt := now.Sub(t.last).Seconds()
		t.last = now
		if _, done := t.wait.Update(float32(dt)); done {
			t.wait.Reset()
			t.fn()
		}
	}
}

// Clear cancels every task
func (s *Scheduler) Clear() {
	for _, t := range s.order {
		t.cancelled = true
	}
	s.order = nil
	s.tasks = make(map[Handle]*task)
}
