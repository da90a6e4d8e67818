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

package mixer

import "math"

// FilterRC is a single pole low pass filter modelling the RC network found
// on the output of some sound hardware.
type FilterRC struct {
	r1, r2, r3 float64

	// capacitance in pF. zero disables the filter
	c float64

	// the last output sample. carried between buffers
	memory int64
}

// NewFilterRC is the preferred method of initialisation for the FilterRC
// type. Resistance is in ohms and capacitance is in pF.
func NewFilterRC(r1, r2, r3, c float64) *FilterRC {
	return &FilterRC{r1: r1, r2: r2, r3: r3, c: c}
}

// Enabled returns true if the filter will modify the signal.
func (f *FilterRC) Enabled() bool {
	return f != nil && f.c != 0
}

// k returns the filter coefficient scaled by 0x10000.
func (f *FilterRC) k(sampleRate int) int64 {
	c := f.c * 1e-12
	req := (f.r1 * (f.r2 + f.r3)) / (f.r1 + f.r2 + f.r3)
	return int64(0x10000 * math.Exp(-1/(req*c)/float64(sampleRate)))
}

// Apply the filter to the buffer in place. The sample rate is the rate of the
// data in the buffer.
func (f *FilterRC) Apply(buf []int16, sampleRate int) {
	if !f.Enabled() || len(buf) == 0 || sampleRate <= 0 {
		return
	}

	k := f.k(sampleRate)

	v := int64(buf[0])
	buf[0] = int16(v + (f.memory-v)*k/0x10000)
	for i := 1; i < len(buf); i++ {
		v = int64(buf[i])
		buf[i] = int16(v + (int64(buf[i-1])-v)*k/0x10000)
	}

	f.memory = int64(buf[len(buf)-1])
}
