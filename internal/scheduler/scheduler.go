// Package scheduler runs one-shot deferred callbacks on simulated time.
//
// Time only moves when the owner calls Advance, usually once per game tick,
// so a 7 second delay in a test is a single Advance call rather than a sleep.
package scheduler

import (
	"sort"
	"time"
)

// Task is a handle to a scheduled callback.
type Task struct {
	id       uint64
	due      time.Duration
	fn       func()
	done     bool
	canceled bool
}

// Cancel prevents the task from firing.
// Returns false if the task already fired or was already canceled.
func (t *Task) Cancel() bool {
	if t == nil || t.done || t.canceled {
		return false
	}
	t.canceled = true
	return true
}

// Done reports whether the task has fired.
func (t *Task) Done() bool {
	return t != nil && t.done
}

// Canceled reports whether the task was canceled before firing.
func (t *Task) Canceled() bool {
	return t != nil && t.canceled
}

// Due returns the simulated time at which the task fires.
func (t *Task) Due() time.Duration {
	return t.due
}

// Scheduler holds pending tasks ordered by due time.
// It is not safe for concurrent use; games call it from their tick.
type Scheduler struct {
	now     time.Duration
	nextID  uint64
	pending []*Task
}

// New creates an empty scheduler at simulated time zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the current simulated time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once delay has elapsed.
// A non-positive delay fires on the next Advance.
func (s *Scheduler) After(delay time.Duration, fn func()) *Task {
	if delay < 0 {
		delay = 0
	}
	s.nextID++
	t := &Task{
		id:  s.nextID,
		due: s.now + delay,
		fn:  fn,
	}
	s.pending = append(s.pending, t)
	return t
}

// Advance moves simulated time forward by dt and runs every task that
// became due, earliest first, ties in scheduling order.
// Tasks scheduled by a callback with zero delay wait for the next Advance.
// Returns the number of callbacks that ran.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}

	due := make([]*Task, 0, len(s.pending))
	keep := s.pending[:0]
	for _, t := range s.pending {
		switch {
		case t.canceled:
			// dropped
		case t.due <= s.now:
			due = append(due, t)
		default:
			keep = append(keep, t)
		}
	}
	s.pending = keep

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].id < due[j].id
	})

	ran := 0
	for _, t := range due {
		// an earlier callback may cancel a later one
		if t.canceled {
			continue
		}
		t.done = true
		if t.fn != nil {
			t.fn()
		}
		ran++
	}
	return ran
}

// Pending returns the number of tasks still waiting to fire.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.pending {
		if !t.canceled {
			n++
		}
	}
	return n
}

// CancelAll cancels every pending task.
func (s *Scheduler) CancelAll() {
	for _, t := range s.pending {
		t.Cancel()
	}
	s.pending = s.pending[:0]
}
