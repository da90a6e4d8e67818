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

import "fmt"

// fixed point resampling.
const (
	fractionBits = 16
	fractionOne  = 1 << fractionBits
	fractionMask = fractionOne - 1
)

// channel is the state of a single mixer channel.
type channel struct {
	name string

	volume             int
	gain               int
	pan                Pan
	mixingLevel        int
	defaultMixingLevel int

	// resampling state. the step size is recomputed only when the frequency
	// changes
	frequency int
	stepSize  uint32
	frac      uint32

	// input samples to skip at the start of the next streamed buffer
	skip int

	// samples already in the accumulator for the current frame
	samplesAvailable int

	// true once the channel has been used for streamed data
	isStream bool

	// the last value written to the accumulator by a streamed channel. used
	// to fill the remainder of a frame if the stream underruns
	held int32

	// sample playback
	isPlaying bool
	isLooping bool
	is16bit   bool
	data8     []int8
	data16    []int16
	pos       int

	filter *FilterRC
}

func (c *channel) String() string {
	return fmt.Sprintf("%s: vol=%d level=%d (%d) pan=%s gain=%d", c.name, c.volume, c.mixingLevel, c.defaultMixingLevel, c.pan, c.gain)
}

// setFrequency updates the step size if the frequency has changed.
func (c *channel) setFrequency(freq int, sampleRate int) {
	if freq == c.frequency {
		return
	}
	c.frequency = freq
	c.stepSize = uint32(float64(freq) * float64(fractionOne) / float64(sampleRate))
}

func (c *channel) length() int {
	if c.is16bit {
		return len(c.data16)
	}
	return len(c.data8)
}
