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

package random

import (
	"math/rand"
	"time"
)

// Clock is the source of the current emulation time. The Ticks() value should
// increase as the emulation advances.
type Clock interface {
	Ticks() int64
}

var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Random is a random number source tied to the emulation clock.
type Random struct {
	clk Clock

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool

	// distinguishes successive calls at the same clock time
	count int64
}

// NewRandom is the preferred method of initialisation for the Random type. A
// nil Clock is allowed, in which case only the call count varies the result.
func NewRandom(clk Clock) *Random {
	return &Random{
		clk: clk,
	}
}

func (rnd *Random) rand() *rand.Rand {
	var t int64
	if rnd.clk != nil {
		t = rnd.clk.Ticks()
	}
	rnd.count++
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(t + rnd.count))
	}
	return rand.New(rand.NewSource(baseSeed + t + rnd.count))
}

// Intn returns a random number in the range [0,n).
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}

// Reset the call counter. Two Random instances reset at the same clock time
// will produce the same sequence.
func (rnd *Random) Reset() {
	rnd.count = 0
}
