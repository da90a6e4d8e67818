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

package dac_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/arcadecore/curated"
	"github.com/jetsetilly/arcadecore/environment"
	"github.com/jetsetilly/arcadecore/hardware/audio/dac"
	"github.com/jetsetilly/arcadecore/hardware/audio/mixer"
	"github.com/jetsetilly/arcadecore/hardware/audio/streams"
	"github.com/jetsetilly/arcadecore/hardware/preferences"
	"github.com/jetsetilly/arcadecore/test"
)

const (
	sampleRate = 12000
	fps        = 60.0
)

func newEnv(t *testing.T) *environment.Environment {
	t.Helper()
	dir := t.TempDir()
	p, err := preferences.NewPreferencesWithPath(filepath.Join(dir, "prefs"), filepath.Join(dir, "levels"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.SampleRate.Set(sampleRate))
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

func TestConfig(t *testing.T) {
	env := newEnv(t)
	st := streams.NewStreams(env, mixer.NewMixer(env, "test", fps), nil, fps)

	_, err := dac.NewDAC(st, dac.Config{Num: 0})
	test.ExpectSuccess(t, curated.Is(err, dac.DACError))
	_, err = dac.NewDAC(st, dac.Config{Num: dac.MaxDACs + 1, Levels: dac.DefaultLevels(dac.MaxDACs+1, 100)})
	test.ExpectFailure(t, err)
	_, err = dac.NewDAC(st, dac.Config{Num: 2, Levels: dac.DefaultLevels(1, 100)})
	test.ExpectFailure(t, err)
	_, err = dac.NewDAC(st, dac.Config{Num: dac.MaxDACs, Levels: dac.DefaultLevels(dac.MaxDACs, 100)})
	test.ExpectSuccess(t, err)
}

func TestConversion(t *testing.T) {
	env := newEnv(t)
	st := streams.NewStreams(env, mixer.NewMixer(env, "test", fps), nil, fps)
	d, err := dac.NewDAC(st, dac.Config{Num: 1, Levels: dac.DefaultLevels(1, 100)})
	test.DemandSuccess(t, err)

	d.DataW(0, 0x00)
	test.ExpectEquality(t, d.Output(0), int16(0))
	d.DataW(0, 0xff)
	test.ExpectEquality(t, d.Output(0), int16(32767))

	d.SignedDataW(0, 0x00)
	test.ExpectEquality(t, d.Output(0), int16(-32768))
	d.SignedDataW(0, 0xff)
	test.ExpectEquality(t, d.Output(0), int16(32767))
	d.SignedDataW(0, 0x80)
	test.ExpectEquality(t, d.Output(0), int16(128))

	d.Data16W(0, 0xffff)
	test.ExpectEquality(t, d.Output(0), int16(32767))
	d.SignedData16W(0, 0x8000)
	test.ExpectEquality(t, d.Output(0), int16(0))
	d.SignedData16W(0, 0x0000)
	test.ExpectEquality(t, d.Output(0), int16(-32768))

	d.Reset()
	test.ExpectEquality(t, d.Output(0), int16(0))
}

func TestZeroOrderHold(t *testing.T) {
	env := newEnv(t)
	mix := mixer.NewMixer(env, "test", fps)
	out := &capture{}
	mix.AttachSink(out)
	fc := &frameClock{}
	st := streams.NewStreams(env, mix, fc, fps)

	d, err := dac.NewDAC(st, dac.Config{Num: 1, Levels: dac.DefaultLevels(1, 100)})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, d.Start(sampleRate))

	d.DataW(0, 0x80)

	// output changes half way through the frame
	fc.pos = 0.5
	d.DataW(0, 0x00)

	st.UpdateFrame()
	test.DemandSuccess(t, mix.Update())
	test.DemandEquality(t, len(out.last), 200)
	for i := 0; i < 100; i++ {
		test.ExpectEquality(t, out.last[i], int16(0x80*0x101/2), i)
	}
	for i := 100; i < 200; i++ {
		test.ExpectEquality(t, out.last[i], int16(0), i)
	}

	// output is held into the next frame
	fc.pos = 0
	d.DataW(0, 0x40)
	st.UpdateFrame()
	test.DemandSuccess(t, mix.Update())
	for i, v := range out.last {
		test.ExpectEquality(t, v, int16(0x40*0x101/2), i)
	}
}
