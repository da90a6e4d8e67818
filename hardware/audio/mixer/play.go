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

import (
	"github.com/jetsetilly/arcadecore/curated"
	"github.com/jetsetilly/arcadecore/logger"
)

// add a value to the accumulators according to the channel's pan. mono
// output uses only the left accumulator.
func (m *Mixer) add(c *channel, pos int, v int32) {
	if !m.stereo {
		m.left[pos] += v
		return
	}
	switch c.pan {
	case PanCenter:
		m.left[pos] += v
		m.right[pos] += v
	case PanLeft:
		m.left[pos] += v
	case PanRight:
		m.right[pos] += v
	}
}

// PlayStreamedSample16 adds a buffer of 16-bit samples recorded at freq Hz
// to the channel. The data is resampled to the native sample rate and added
// to the accumulators after any data already added this frame.
//
// No more than one sample beyond the end of the current frame is queued.
// Data that would extend further is discarded.
func (m *Mixer) PlayStreamedSample16(ch int, data []int16, freq int) {
	if m.sampleRate == 0 || freq <= 0 {
		return
	}

	c := m.channels[ch]
	c.isStream = true
	c.isPlaying = false
	c.setFrequency(freq, m.sampleRate)

	vol := m.volume(c)
	dst := (m.accumBase + c.samplesAvailable) & accumulatorMask
	frac := c.frac

	limit := min(m.samplesThisFrame+1, AccumulatorSamples)

	// the resampler may step past the end of the previous buffer
	src := c.skip
	n := 0
	for src < len(data) && c.samplesAvailable+n < limit {
		v := (int32(data[src]) * vol) >> 8
		m.add(c, dst, v)
		c.held = v

		dst = (dst + 1) & accumulatorMask
		n++

		frac += c.stepSize
		src += int(frac >> fractionBits)
		frac &= fractionMask
	}

	c.frac = frac
	c.skip = max(src-len(data), 0)
	c.samplesAvailable += n
}

// mixSample adds count samples of the playing waveform to the accumulators.
func (m *Mixer) mixSample(c *channel, count int) {
	vol := m.volume(c)
	dst := (m.accumBase + c.samplesAvailable) & accumulatorMask
	length := c.length()

	for n := 0; n < count; n++ {
		var v int32
		if c.is16bit {
			v = (int32(c.data16[c.pos]) * vol) >> 8
		} else {
			v = int32(c.data8[c.pos]) * vol
		}
		m.add(c, dst, v)
		dst = (dst + 1) & accumulatorMask

		c.frac += c.stepSize
		c.pos += int(c.frac >> fractionBits)
		c.frac &= fractionMask

		if c.pos >= length {
			if !c.isLooping {
				c.isPlaying = false
				return
			}
			c.pos %= length
		}
	}
}

// updateChannel brings a sample channel up to date with the position in the
// current frame.
func (m *Mixer) updateChannel(c *channel, total int) {
	if c.isStream {
		return
	}

	n := total - c.samplesAvailable
	if n <= 0 {
		return
	}

	if c.isPlaying && !m.paused {
		m.mixSample(c, n)
	}

	c.samplesAvailable += n
}

func (m *Mixer) startSample(c *channel, freq int, loop bool) {
	c.isStream = false
	c.setFrequency(freq, m.sampleRate)
	c.pos = 0
	c.frac = 0
	c.isLooping = loop
	c.isPlaying = c.length() > 0 && m.sampleRate > 0 && freq > 0
}

// PlaySample starts playing a waveform of signed 8-bit samples recorded at
// freq Hz. If loop is true the waveform repeats until StopSample() is called.
func (m *Mixer) PlaySample(ch int, data []int8, freq int, loop bool) {
	c := m.channels[ch]
	m.updateChannel(c, m.framePosition())
	c.data8 = data
	c.data16 = nil
	c.is16bit = false
	m.startSample(c, freq, loop)
}

// PlaySample16 starts playing a waveform of signed 16-bit samples recorded at
// freq Hz. If loop is true the waveform repeats until StopSample() is called.
func (m *Mixer) PlaySample16(ch int, data []int16, freq int, loop bool) {
	c := m.channels[ch]
	m.updateChannel(c, m.framePosition())
	c.data8 = nil
	c.data16 = data
	c.is16bit = true
	m.startSample(c, freq, loop)
}

// StopSample stops the waveform playing on the channel.
func (m *Mixer) StopSample(ch int) {
	c := m.channels[ch]
	m.updateChannel(c, m.framePosition())
	c.isPlaying = false
}

// IsSamplePlaying returns true if a waveform is playing on the channel.
func (m *Mixer) IsSamplePlaying(ch int) bool {
	c := m.channels[ch]
	m.updateChannel(c, m.framePosition())
	return c.isPlaying
}

// SetSampleFrequency changes the playback frequency of the waveform on the
// channel.
func (m *Mixer) SetSampleFrequency(ch int, freq int) {
	c := m.channels[ch]
	m.updateChannel(c, m.framePosition())
	if freq > 0 && m.sampleRate > 0 {
		c.setFrequency(freq, m.sampleRate)
	}
}

func clip(v int32) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}

// Update completes the current frame. It should be called once per video
// frame after all streams have been updated.
//
// The accumulated data for the frame is clipped to 16 bits and sent to every
// attached Sink. The accumulator cells are cleared as they are read.
func (m *Mixer) Update() error {
	n := m.samplesThisFrame

	for _, c := range m.channels {
		if c.isStream {
			if c.samplesAvailable < n {
				// a shortfall of one sample is normal when the stream rate
				// doesn't divide evenly into the frame
				if n-c.samplesAvailable > 1 {
					logger.Logf(m.env, "mixer", "%s: stream underrun", c.name)
				}
				dst := (m.accumBase + c.samplesAvailable) & accumulatorMask
				for i := c.samplesAvailable; i < n; i++ {
					m.add(c, dst, c.held)
					dst = (dst + 1) & accumulatorMask
				}
				c.samplesAvailable = n
			}
		} else {
			m.updateChannel(c, n)
		}
	}

	m.buffer = m.buffer[:0]

	idx := m.accumBase
	for i := 0; i < n; i++ {
		l := clip(m.left[idx])
		m.left[idx] = 0
		if m.stereo {
			r := clip(m.right[idx])
			m.right[idx] = 0
			m.buffer = append(m.buffer, l, r)
		} else if m.forceStereo {
			m.buffer = append(m.buffer, l, l)
		} else {
			m.buffer = append(m.buffer, l)
		}
		idx = (idx + 1) & accumulatorMask
	}

	for _, c := range m.channels {
		c.samplesAvailable -= n
		if c.samplesAvailable < 0 {
			c.samplesAvailable = 0
		}
	}

	m.accumBase = idx

	if m.paused {
		clear(m.buffer)
	}

	channels := 1
	if m.stereo || m.forceStereo {
		channels = 2
	}

	for _, s := range m.sinks {
		if err := s.SetAudio(m.buffer, channels); err != nil {
			return curated.Errorf(MixerError, err)
		}
	}

	m.nextFrame()

	return nil
}

// EndMixing should be called when the emulation ends. Every attached Sink is
// concluded.
func (m *Mixer) EndMixing() error {
	var err error
	for _, s := range m.sinks {
		if e := s.EndMixing(); e != nil && err == nil {
			err = curated.Errorf(MixerError, e)
		}
	}
	return err
}
