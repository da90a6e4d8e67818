// This file is part of Arcadecore.
//
// Arcadecore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Arcadecore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Arcadecore.  If not, see <https://www.gnu.org/licenses/>.

package scheduler

import (
	"container/heap"
)

// Handle identifies a scheduled timer. The zero value is never a valid
// handle.
type Handle uint64

// Callback is the function called when a timer fires.
type Callback func(param int)

// Executor is something that consumes virtual time between timers. Usually a
// CPU core.
//
// Execute is given the maximum amount of time it may consume. It returns the
// time actually consumed, which may be less than the budget (for example, if
// the executor has scheduled a new timer and wants the scheduler to consider
// it). A value of zero or less means the executor had nothing to do and the
// scheduler will advance to the end of the budget.
type Executor interface {
	Execute(budget Time) Time
}

// Scheduler is a virtual time priority queue of callbacks.
type Scheduler struct {
	now    Time
	queue  timerQueue
	timers map[Handle]*timer

	nextHandle Handle
	seq        uint64
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type.
func NewScheduler() *Scheduler {
	return &Scheduler{
		timers: make(map[Handle]*timer),
	}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() Time {
	return s.now
}

// Ticks returns the current virtual time in nanoseconds.
func (s *Scheduler) Ticks() int64 {
	return int64(s.now * 1e9)
}

func (s *Scheduler) add(delay Time, period Time, fn Callback, param int) Handle {
	if delay < 0 {
		delay = 0
	}

	s.nextHandle++
	s.seq++

	t := &timer{
		handle: s.nextHandle,
		fn:     fn,
		param:  param,
		start:  s.now,
		due:    s.now + delay,
		period: period,
		seq:    s.seq,
	}
	heap.Push(&s.queue, t)
	s.timers[t.handle] = t

	return t.handle
}

// Schedule the callback to be called after delay. A delay of zero (or less)
// will cause the callback to be called the next time Run() is called.
func (s *Scheduler) Schedule(delay Time, fn Callback, param int) Handle {
	return s.add(delay, 0, fn, param)
}

// Pulse schedules the callback to be called every period. The first call is
// one period from now. The timer remains active until it is cancelled.
func (s *Scheduler) Pulse(period Time, fn Callback, param int) Handle {
	if period <= 0 {
		panic("scheduler: pulse period must be greater than zero")
	}
	return s.add(period, period, fn, param)
}

// Cancel the timer. Cancelling a timer that has already fired or been
// cancelled is not an error.
func (s *Scheduler) Cancel(h Handle) {
	t, ok := s.timers[h]
	if !ok {
		return
	}
	heap.Remove(&s.queue, t.index)
	delete(s.timers, h)
}

// Pending returns true if the timer is still waiting to fire.
func (s *Scheduler) Pending(h Handle) bool {
	_, ok := s.timers[h]
	return ok
}

// Elapsed returns the time since the timer was set. Returns Never if the
// timer is not pending.
func (s *Scheduler) Elapsed(h Handle) Time {
	t, ok := s.timers[h]
	if !ok {
		return Never
	}
	return s.now - t.start
}

// Remaining returns the time until the timer fires. Returns Never if the
// timer is not pending.
func (s *Scheduler) Remaining(h Handle) Time {
	t, ok := s.timers[h]
	if !ok {
		return Never
	}
	return t.due - s.now
}

// Next returns the due time of the earliest timer. Returns false if there are
// no timers.
func (s *Scheduler) Next() (Time, bool) {
	if len(s.queue) == 0 {
		return 0, false
	}
	return s.queue[0].due, true
}

// fire the earliest timer if it is due at or before the limit.
func (s *Scheduler) fire(limit Time) bool {
	if len(s.queue) == 0 || s.queue[0].due > limit {
		return false
	}

	t := heap.Pop(&s.queue).(*timer)
	s.now = t.due

	if t.period > 0 {
		s.seq++
		t.start = s.now
		t.due = s.now + t.period
		t.seq = s.seq
		heap.Push(&s.queue, t)
	} else {
		delete(s.timers, t.handle)
	}

	t.fn(t.param)

	return true
}

// Run advances virtual time to until, firing timers as they become due. If
// exec is not nil then it consumes the time between timers.
func (s *Scheduler) Run(until Time, exec Executor) {
	for {
		// fire everything that is due now
		for s.fire(s.now) {
		}

		if s.now >= until {
			return
		}

		limit := until
		if next, ok := s.Next(); ok && next < limit {
			limit = next
		}

		if exec != nil {
			budget := limit - s.now
			used := exec.Execute(budget)
			if used <= 0 || used >= budget {
				s.now = limit
			} else {
				s.now += used
			}
		} else {
			s.now = limit
		}
	}
}

// RunFor advances virtual time by d. See Run().
func (s *Scheduler) RunFor(d Time, exec Executor) {
	s.Run(s.now+d, exec)
}
