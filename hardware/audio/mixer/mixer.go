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
	"fmt"
	"strings"

	"github.com/jetsetilly/arcadecore/curated"
	"github.com/jetsetilly/arcadecore/environment"
	"github.com/jetsetilly/arcadecore/logger"
)

// Error patterns.
const (
	TooManyChannels = "mixer: too many channels (maximum is %d)"
	MixerError      = "mixer: %v"
)

// MaxChannels is the maximum number of channels that can be allocated.
const MaxChannels = 16

// the number of entries in each accumulator. must be a power of two.
const (
	AccumulatorSamples = 8192
	accumulatorMask    = AccumulatorSamples - 1
)

// Sink receives the final PCM data once per frame. The data is interleaved if
// the number of channels is two. The slice is reused by the mixer and should
// be copied if it is needed after SetAudio() returns.
type Sink interface {
	SetAudio(samples []int16, channels int) error

	// some sinks may need to conclude and/or dispose of resources gently.
	// for simplicity, the Sink should be considered unusable after
	// EndMixing() has been called
	EndMixing() error
}

// FrameClock reports how far through the current video frame the emulation
// has reached, as a value between zero and one.
type FrameClock interface {
	FramePosition() float64
}

// Mixer is the state of the audio mixer.
type Mixer struct {
	env     *environment.Environment
	machine string

	sampleRate  int
	fps         float64
	stereo      bool
	forceStereo bool

	channels []*channel

	left  [AccumulatorSamples]int32
	right [AccumulatorSamples]int32

	// the position in the accumulators of the first sample of the current
	// frame
	accumBase int

	// number of samples to output for the current frame. the fraction is
	// carried into the next frame
	samplesThisFrame int
	frameFraction    float64

	buffer []int16
	sinks  []Sink

	clock FrameClock

	enabled bool
	paused  bool

	// saved levels no longer match the channel configuration
	configInvalid bool
}

// NewMixer is the preferred method of initialisation for the Mixer type. The
// machine name is used to store user mixing levels.
func NewMixer(env *environment.Environment, machine string, fps float64) *Mixer {
	m := &Mixer{
		env:         env,
		machine:     machine,
		sampleRate:  env.Prefs.SampleRate.Get().(int),
		fps:         fps,
		stereo:      env.Prefs.Stereo.Get().(bool),
		forceStereo: env.Prefs.ForceStereo.Get().(bool),
		enabled:     true,
	}

	m.nextFrame()
	m.buffer = make([]int16, 0, 2*(m.samplesThisFrame+1))

	return m
}

func (m *Mixer) String() string {
	s := strings.Builder{}
	for i, c := range m.channels {
		s.WriteString(fmt.Sprintf("%d %s\n", i, c))
	}
	return s.String()
}

// SampleRate returns the native sample rate of the mixer.
func (m *Mixer) SampleRate() int {
	return m.sampleRate
}

// Stereo returns true if the mixer produces stereo output.
func (m *Mixer) Stereo() bool {
	return m.stereo
}

// SamplesThisFrame returns the number of samples that will be output by the
// next call to Update().
func (m *Mixer) SamplesThisFrame() int {
	return m.samplesThisFrame
}

// NumChannels returns the number of allocated channels.
func (m *Mixer) NumChannels() int {
	return len(m.channels)
}

// AttachSink adds a sink to the list of sinks that receive the output of the
// mixer.
func (m *Mixer) AttachSink(s Sink) {
	m.sinks = append(m.sinks, s)
}

// SetFrameClock sets the source of the in-frame position. Without a
// FrameClock, sample channels are only mixed at the end of the frame.
func (m *Mixer) SetFrameClock(clock FrameClock) {
	m.clock = clock
}

// the number of samples in the current frame up to the current position.
func (m *Mixer) framePosition() int {
	if m.clock == nil {
		return 0
	}
	p := m.clock.FramePosition()
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return m.samplesThisFrame
	}
	return int(float64(m.samplesThisFrame) * p)
}

// nextFrame calculates the number of samples in the next frame.
func (m *Mixer) nextFrame() {
	if m.fps <= 0 || m.sampleRate <= 0 {
		m.samplesThisFrame = 0
		return
	}
	m.frameFraction += float64(m.sampleRate) / m.fps
	m.samplesThisFrame = int(m.frameFraction)
	m.frameFraction -= float64(m.samplesThisFrame)
}

// AllocateChannel creates a new channel. The default level is created with
// the Level() function.
//
// If the user has saved a mixing level for the channel then it is used, as
// long as it was saved with the same default level. If the default level is
// different then all saved levels for the machine are ignored.
//
// Returns a TooManyChannels error if the maximum number of channels has
// been reached.
func (m *Mixer) AllocateChannel(name string, defaultLevel int) (int, error) {
	if len(m.channels) >= MaxChannels {
		return -1, curated.Errorf(TooManyChannels, MaxChannels)
	}

	level, pan, gain := unpackLevel(defaultLevel)

	c := &channel{
		name:               name,
		volume:             100,
		gain:               gain,
		pan:                pan,
		mixingLevel:        level,
		defaultMixingLevel: level,
	}

	if !m.configInvalid && m.env.Prefs.MixerLevels != nil {
		saved, savedDefault, ok, err := m.env.Prefs.MixerLevels.Lookup(m.machine, name)
		if err != nil {
			logger.Log(m.env, "mixer", err)
		} else if ok {
			if savedDefault == c.defaultMixingLevel && saved <= MaxLevel {
				c.mixingLevel = saved
			} else {
				m.configInvalid = true
				m.env.Prefs.MixerLevels.Invalidate(m.machine)
				logger.Logf(m.env, "mixer", "saved mixing levels for %s are out of date", m.machine)
			}
		}
	}

	m.channels = append(m.channels, c)

	return len(m.channels) - 1, nil
}

// AllocateChannels is a convenience function to allocate several channels.
// The names and levels slices must be the same length.
func (m *Mixer) AllocateChannels(names []string, levels []int) (int, error) {
	if len(names) != len(levels) {
		return -1, curated.Errorf(MixerError, "names and levels do not match")
	}
	if len(m.channels)+len(names) > MaxChannels {
		return -1, curated.Errorf(TooManyChannels, MaxChannels)
	}
	first := len(m.channels)
	for i := range names {
		if _, err := m.AllocateChannel(names[i], levels[i]); err != nil {
			return -1, err
		}
	}
	return first, nil
}

// SaveLevels writes the current mixing level of every channel to the user
// preferences.
func (m *Mixer) SaveLevels() error {
	if m.env.Prefs.MixerLevels == nil {
		return nil
	}
	for _, c := range m.channels {
		err := m.env.Prefs.MixerLevels.Store(m.machine, c.name, c.mixingLevel, c.defaultMixingLevel)
		if err != nil {
			return curated.Errorf(MixerError, err)
		}
	}
	if err := m.env.Prefs.MixerLevels.Save(m.machine); err != nil {
		return curated.Errorf(MixerError, err)
	}
	m.configInvalid = false
	return nil
}

// ChannelName returns the name of the channel.
func (m *Mixer) ChannelName(ch int) string {
	return m.channels[ch].name
}

// SetVolume sets the volume of the channel in the range 0 to 100.
func (m *Mixer) SetVolume(ch int, volume int) {
	c := m.channels[ch]
	m.updateChannel(c, m.framePosition())
	c.volume = clamp(volume, 0, 100)
}

// SetMixingLevel sets the mixing level of the channel in the range 0 to 100.
func (m *Mixer) SetMixingLevel(ch int, level int) {
	c := m.channels[ch]
	m.updateChannel(c, m.framePosition())
	c.mixingLevel = clamp(level, 0, MaxLevel)
}

// MixingLevel returns the mixing level of the channel.
func (m *Mixer) MixingLevel(ch int) int {
	return m.channels[ch].mixingLevel
}

// DefaultMixingLevel returns the mixing level the channel was allocated with.
func (m *Mixer) DefaultMixingLevel(ch int) int {
	return m.channels[ch].defaultMixingLevel
}

// SetRCFilter sets the RC filter for the channel. Resistance is in ohms and
// capacitance in pF. A capacitance of zero disables the filter.
func (m *Mixer) SetRCFilter(ch int, r1, r2, r3, c float64) {
	m.channels[ch].filter = NewFilterRC(r1, r2, r3, c)
}

// ApplyRCFilter applies the channel's RC filter to the buffer. The buffer is
// modified in place.
func (m *Mixer) ApplyRCFilter(ch int, buf []int16, sampleRate int) {
	m.channels[ch].filter.Apply(buf, sampleRate)
}

// SoundEnable turns all sound on or off. Channels continue to play while
// sound is disabled but at zero volume.
func (m *Mixer) SoundEnable(enable bool) {
	pos := m.framePosition()
	for _, c := range m.channels {
		m.updateChannel(c, pos)
	}
	m.enabled = enable
}

// Pause the mixer. While paused, Update() outputs silence and sample
// channels do not advance.
func (m *Mixer) Pause(pause bool) {
	m.paused = pause
}

func (m *Mixer) volume(c *channel) int32 {
	if !m.enabled {
		return 0
	}
	return mixingVolume(c.volume, c.mixingLevel, c.gain)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
