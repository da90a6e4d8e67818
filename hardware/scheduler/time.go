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

// Time is virtual time in seconds.
type Time float64

// Never is a time that will never be reached.
const Never Time = -1

// Msec returns the Time equivalent of ms milliseconds.
func Msec(ms float64) Time {
	return Time(ms / 1000.0)
}

// Usec returns the Time equivalent of us microseconds.
func Usec(us float64) Time {
	return Time(us / 1000000.0)
}

// Hz returns the period of the frequency.
func Hz(freq float64) Time {
	return Time(1.0 / freq)
}

// Cycles returns the time taken by n cycles of a clock running at freq Hz.
func Cycles(n int, freq float64) Time {
	return Time(float64(n) / freq)
}
