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

package scheduler_test

import (
	"testing"

	"github.com/jetsetilly/arcadecore/hardware/scheduler"
	"github.com/jetsetilly/arcadecore/test"
)

func TestOrdering(t *testing.T) {
	s := scheduler.NewScheduler()

	var order []int
	record := func(param int) {
		order = append(order, param)
	}

	s.Schedule(scheduler.Msec(20), record, 3)
	s.Schedule(scheduler.Msec(10), record, 1)
	s.Schedule(scheduler.Msec(10), record, 2)
	s.Schedule(scheduler.Msec(30), record, 4)

	s.Run(scheduler.Msec(25), nil)
	test.DemandEquality(t, len(order), 3)
	test.ExpectEquality(t, order[0], 1)
	test.ExpectEquality(t, order[1], 2)
	test.ExpectEquality(t, order[2], 3)
	test.ExpectApproximate(t, float64(s.Now()), 0.025, 1e-9)

	s.Run(scheduler.Msec(30), nil)
	test.DemandEquality(t, len(order), 4)
	test.ExpectEquality(t, order[3], 4)
}

func TestCancel(t *testing.T) {
	s := scheduler.NewScheduler()

	fired := false
	h := s.Schedule(scheduler.Msec(10), func(_ int) {
		fired = true
	}, 0)
	test.ExpectSuccess(t, s.Pending(h))
	test.ExpectApproximate(t, float64(s.Remaining(h)), 0.010, 1e-9)

	s.Run(scheduler.Msec(5), nil)
	test.ExpectApproximate(t, float64(s.Elapsed(h)), 0.005, 1e-9)

	s.Cancel(h)
	test.ExpectFailure(t, s.Pending(h))
	test.ExpectEquality(t, s.Remaining(h), scheduler.Never)

	// cancelling twice is fine
	s.Cancel(h)

	s.Run(scheduler.Msec(20), nil)
	test.ExpectFailure(t, fired)
}

func TestCallbackSchedules(t *testing.T) {
	s := scheduler.NewScheduler()

	var times []scheduler.Time
	var cb scheduler.Callback
	cb = func(n int) {
		times = append(times, s.Now())
		if n > 0 {
			s.Schedule(scheduler.Msec(1), cb, n-1)
		}
	}
	s.Schedule(0, cb, 2)

	s.Run(scheduler.Msec(10), nil)
	test.DemandEquality(t, len(times), 3)
	test.ExpectApproximate(t, float64(times[0]), 0.0, 1e-9)
	test.ExpectApproximate(t, float64(times[1]), 0.001, 1e-9)
	test.ExpectApproximate(t, float64(times[2]), 0.002, 1e-9)
}

func TestPulse(t *testing.T) {
	s := scheduler.NewScheduler()

	count := 0
	h := s.Pulse(scheduler.Msec(10), func(_ int) {
		count++
	}, 0)

	s.Run(scheduler.Msec(35), nil)
	test.ExpectEquality(t, count, 3)
	test.ExpectSuccess(t, s.Pending(h))

	s.Cancel(h)
	s.Run(scheduler.Msec(100), nil)
	test.ExpectEquality(t, count, 3)
}

type executor struct {
	slices []scheduler.Time
	total  scheduler.Time
}

func (e *executor) Execute(budget scheduler.Time) scheduler.Time {
	e.slices = append(e.slices, budget)
	e.total += budget
	return budget
}

func TestExecutor(t *testing.T) {
	s := scheduler.NewScheduler()
	e := &executor{}

	s.Schedule(scheduler.Msec(4), func(_ int) {}, 0)
	s.Run(scheduler.Msec(10), e)

	// executor runs up to the timer and then for the rest of the period
	test.DemandEquality(t, len(e.slices), 2)
	test.ExpectApproximate(t, float64(e.slices[0]), 0.004, 1e-9)
	test.ExpectApproximate(t, float64(e.slices[1]), 0.006, 1e-9)
	test.ExpectApproximate(t, float64(e.total), 0.010, 1e-9)
}
