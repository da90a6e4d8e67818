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

package streams_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/arcadecore/curated"
	"github.com/jetsetilly/arcadecore/environment"
	"github.com/jetsetilly/arcadecore/hardware/audio/mixer"
	"github.com/jetsetilly/arcadecore/hardware/audio/streams"
	"github.com/jetsetilly/arcadecore/hardware/preferences"
	"github.com/jetsetilly/arcadecore/hardware/scheduler"
	"github.com/jetsetilly/arcadecore/test"
)

const (
	sampleRate = 12000
	fps        = 60.0
)

func newEnv(t *testing.T) *environment.Environment {
	t.Helper()
	return newEnvWithRate(t, sampleRate)
}

func newEnvWithRate(t *testing.T, rate int) *environment.Environment {
	t.Helper()
	dir := t.TempDir()
	p, err := preferences.NewPreferencesWithPath(filepath.Join(dir, "prefs"), filepath.Join(dir, "levels"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.SampleRate.Set(rate))
	env, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)
	return env
}

type frameClock struct {
	pos float64
}

func (fc *frameClock) FramePosition() float64 {
	return fc.pos
}

type capture struct {
	last []int16
}

func (c *capture) SetAudio(samples []int16, channels int) error {
	c.last = append(c.last[:0], samples...)
	return nil
}

func (c *capture) EndMixing() error {
	return nil
}

// counter fills each buffer with an incrementing value and records the
// length of every request.
type counter struct {
	value    int16
	requests []int
}

func (c *counter) fill(param int, buf []int16) {
	c.requests = append(c.requests, len(buf))
	for i := range buf {
		buf[i] = c.value
		c.value++
	}
}

func TestUpdatePosition(t *testing.T) {
	env := newEnv(t)
	mix := mixer.NewMixer(env, "test", fps)
	out := &capture{}
	mix.AttachSink(out)

	fc := &frameClock{}
	st := streams.NewStreams(env, mix, fc, fps)

	gen := &counter{}
	s, err := st.Init("counter", mixer.Level(100, mixer.PanCenter, 0), sampleRate, 0, gen.fill)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, st.NumStreams(), 1)
	test.ExpectEquality(t, st.SampleRate(s), sampleRate)

	// nothing to generate at the start of the frame
	st.Update(s, 0)
	test.ExpectEquality(t, len(gen.requests), 0)

	fc.pos = 0.25
	st.Update(s, 0)
	test.DemandEquality(t, len(gen.requests), 1)
	test.ExpectEquality(t, gen.requests[0], 50)

	// the interval since the last update is too short
	fc.pos = 0.3
	st.Update(s, scheduler.Msec(10))
	test.ExpectEquality(t, len(gen.requests), 1)

	// frame is completed
	st.UpdateFrame()
	test.DemandEquality(t, len(gen.requests), 2)
	test.ExpectEquality(t, gen.requests[1], 150)

	test.DemandSuccess(t, mix.Update())
	test.DemandEquality(t, len(out.last), 200)
	for i, v := range out.last {
		test.ExpectEquality(t, v, int16(i), i)
	}

	// next frame starts from the beginning of the buffer
	fc.pos = 0
	st.UpdateFrame()
	test.DemandEquality(t, len(gen.requests), 3)
	test.ExpectEquality(t, gen.requests[2], 200)
}

func TestNoFrameClock(t *testing.T) {
	env := newEnv(t)
	mix := mixer.NewMixer(env, "test", fps)
	st := streams.NewStreams(env, mix, nil, fps)

	gen := &counter{}
	s, err := st.Init("counter", mixer.Level(100, mixer.PanCenter, 0), sampleRate/2, 0, gen.fill)
	test.DemandSuccess(t, err)

	st.Update(s, 0)
	test.ExpectEquality(t, len(gen.requests), 0)

	st.UpdateFrame()
	test.DemandEquality(t, len(gen.requests), 1)
	test.ExpectEquality(t, gen.requests[0], 100)

	// changing the sample rate resizes the buffer
	st.SetSampleRate(s, sampleRate*2)
	st.UpdateFrame()
	test.DemandEquality(t, len(gen.requests), 2)
	test.ExpectEquality(t, gen.requests[1], 400)
}

func TestMultiChannel(t *testing.T) {
	env := newEnv(t)
	test.DemandSuccess(t, env.Prefs.Stereo.Set(true))
	mix := mixer.NewMixer(env, "test", fps)
	out := &capture{}
	mix.AttachSink(out)
	st := streams.NewStreams(env, mix, nil, fps)

	var params []int
	fill := func(param int, bufs [][]int16) {
		params = append(params, param)
		for i := range bufs[0] {
			bufs[0][i] = 100
			bufs[1][i] = -100
		}
	}

	names := []string{"left", "right"}
	levels := []int{
		mixer.Level(100, mixer.PanLeft, 0),
		mixer.Level(100, mixer.PanRight, 0),
	}
	s, err := st.InitMulti(names, levels, sampleRate, 7, fill)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, st.Channel(s), 0)
	test.ExpectEquality(t, mix.NumChannels(), 2)
	test.ExpectEquality(t, mix.ChannelName(1), "right")

	st.UpdateFrame()
	test.DemandSuccess(t, mix.Update())
	test.DemandEquality(t, len(params), 1)
	test.ExpectEquality(t, params[0], 7)

	test.DemandEquality(t, len(out.last), 400)
	test.ExpectEquality(t, out.last[0], int16(100))
	test.ExpectEquality(t, out.last[1], int16(-100))
}

func TestTooManyStreams(t *testing.T) {
	env := newEnv(t)
	mix := mixer.NewMixer(env, "test", fps)
	st := streams.NewStreams(env, mix, nil, fps)

	fill := func(param int, buf []int16) {}
	for i := 0; i < mixer.MaxChannels; i++ {
		_, err := st.Init("s", mixer.Level(100, mixer.PanCenter, 0), sampleRate, i, fill)
		test.DemandSuccess(t, err)
	}
	_, err := st.Init("s", mixer.Level(100, mixer.PanCenter, 0), sampleRate, 0, fill)
	test.ExpectSuccess(t, curated.Has(err, mixer.TooManyChannels))
	test.ExpectEquality(t, st.NumStreams(), mixer.MaxChannels)
}

// the stream buffer length must follow the mixer's frame length exactly,
// even when the sample rate doesn't divide evenly by the frame rate. if it
// doesn't, samples build up in the mixer and the audio falls further behind
// every frame.
func TestLatency(t *testing.T) {
	const mixRate = 22050

	for _, rate := range []int{mixRate, 8000, 48000} {
		env := newEnvWithRate(t, mixRate)
		mix := mixer.NewMixer(env, "test", fps)
		out := &capture{}
		mix.AttachSink(out)
		st := streams.NewStreams(env, mix, nil, fps)

		var value int16 = 1000
		fill := func(param int, buf []int16) {
			for i := range buf {
				buf[i] = value
			}
		}
		_, err := st.Init("level", mixer.Level(100, mixer.PanCenter, 0), rate, 0, fill)
		test.DemandSuccess(t, err)

		generated := 0
		for frame := 0; frame < 2000; frame++ {
			n := mix.SamplesThisFrame()
			st.UpdateFrame()
			test.DemandSuccess(t, mix.Update())
			if !test.ExpectEquality(t, len(out.last), n, rate, frame) {
				return
			}
			generated += n
		}
		test.ExpectApproximate(t, float64(generated), 2000*mixRate/fps, 1.0)

		// change the level. only a sample carried over from the previous
		// frame can have the old value
		value = 2000
		st.UpdateFrame()
		test.DemandSuccess(t, mix.Update())

		old := 0
		for _, v := range out.last {
			if v == 1000 {
				old++
			} else {
				test.ExpectEquality(t, v, int16(2000), rate)
			}
		}
		if old > 1 {
			t.Errorf("latency of %d samples for stream rate %d", old, rate)
		}
	}
}
