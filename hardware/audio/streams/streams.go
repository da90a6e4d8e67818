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

package streams

import (
	"fmt"

	"github.com/jetsetilly/arcadecore/curated"
	"github.com/jetsetilly/arcadecore/environment"
	"github.com/jetsetilly/arcadecore/hardware/audio/mixer"
	"github.com/jetsetilly/arcadecore/hardware/scheduler"
	"github.com/jetsetilly/arcadecore/logger"
)

// StreamError is the error pattern for failures in stream creation.
const StreamError = "streams: %v"

// Callback generates samples for a single channel stream. The buffer should
// be filled completely.
type Callback func(param int, buf []int16)

// MultiCallback generates samples for a stream with more than one channel.
// There is one buffer per channel and they are all the same length.
type MultiCallback func(param int, bufs [][]int16)

type stream struct {
	name string

	// the first mixer channel. a multi-channel stream uses consecutive
	// channels
	channel int

	rate    int
	param   int
	buffers [][]int16

	// number of samples in each buffer that have been generated this frame
	pos int

	// the buffers have been sized for the current frame
	started bool

	// fractional part of the buffer length carried between frames
	fraction float64

	callback MultiCallback
}

func (s *stream) String() string {
	return fmt.Sprintf("%s: rate=%d channels=%d", s.name, s.rate, len(s.buffers))
}

func (s *stream) bufferLen() int {
	if len(s.buffers) == 0 {
		return 0
	}
	return len(s.buffers[0])
}

// resize the buffers for a new frame. the length follows the number of
// samples the mixer will output this frame, scaled to the stream's rate. the
// fraction is carried into the next frame so that the stream never drifts
// from the mixer.
func (s *stream) begin(st *Streams) {
	if s.started {
		return
	}
	s.started = true

	if s.rate > 0 {
		if sr := st.mixer.SampleRate(); sr > 0 {
			s.fraction += float64(st.mixer.SamplesThisFrame()) * float64(s.rate) / float64(sr)
		} else if st.fps > 0 {
			s.fraction += float64(s.rate) / st.fps
		}
	}
	n := int(s.fraction)
	s.fraction -= float64(n)

	for i := range s.buffers {
		if cap(s.buffers[i]) < n {
			s.buffers[i] = make([]int16, n, n+1)
		}
		s.buffers[i] = s.buffers[i][:n]
	}
}

func (s *stream) generate(end int) {
	if end <= s.pos {
		return
	}
	bufs := make([][]int16, len(s.buffers))
	for i := range s.buffers {
		bufs[i] = s.buffers[i][s.pos:end]
	}
	s.callback(s.param, bufs)
	s.pos = end
}

// Streams is the set of all streams for an emulated machine.
type Streams struct {
	env   *environment.Environment
	mixer *mixer.Mixer
	clock mixer.FrameClock
	fps   float64

	streams []*stream
}

// NewStreams is the preferred method of initialisation for the Streams type.
// The clock may be nil.
func NewStreams(env *environment.Environment, mix *mixer.Mixer, clock mixer.FrameClock, fps float64) *Streams {
	return &Streams{
		env:   env,
		mixer: mix,
		clock: clock,
		fps:   fps,
	}
}

// SetFrameClock changes the source of the in-frame position.
func (st *Streams) SetFrameClock(clock mixer.FrameClock) {
	st.clock = clock
}

// NumStreams returns the number of streams that have been created.
func (st *Streams) NumStreams() int {
	return len(st.streams)
}

// Init creates a single channel stream with the given default mixing level
// (see mixer.Level()). The callback is called with the param value whenever
// samples are required.
//
// Returns the stream number.
func (st *Streams) Init(name string, level int, rate int, param int, callback Callback) (int, error) {
	multi := func(param int, bufs [][]int16) {
		callback(param, bufs[0])
	}
	return st.InitMulti([]string{name}, []int{level}, rate, param, multi)
}

// InitMulti creates a stream with one mixer channel for each name.
func (st *Streams) InitMulti(names []string, levels []int, rate int, param int, callback MultiCallback) (int, error) {
	if len(names) == 0 {
		return -1, curated.Errorf(StreamError, "no channels")
	}

	ch, err := st.mixer.AllocateChannels(names, levels)
	if err != nil {
		return -1, curated.Errorf(StreamError, err)
	}

	s := &stream{
		name:     names[0],
		channel:  ch,
		rate:     rate,
		param:    param,
		callback: callback,
		buffers:  make([][]int16, len(names)),
	}

	st.streams = append(st.streams, s)
	logger.Logf(st.env, "streams", "%s", s)

	return len(st.streams) - 1, nil
}

// Channel returns the first mixer channel used by the stream.
func (st *Streams) Channel(stream int) int {
	return st.streams[stream].channel
}

// SampleRate returns the sample rate of the stream.
func (st *Streams) SampleRate(stream int) int {
	return st.streams[stream].rate
}

// SetSampleRate changes the sample rate of the stream. Any samples already
// generated in the current frame are discarded.
func (st *Streams) SetSampleRate(stream int, rate int) {
	s := st.streams[stream]
	if s.rate == rate {
		return
	}
	s.rate = rate
	s.pos = 0
	s.started = false
	s.fraction = 0
}

// Update brings the stream up to date with the current position in the
// frame. Nothing is generated if the number of new samples covers a period
// of time less than or equal to minInterval.
//
// Sound chips should call Update() before any change to their registers that
// will affect their output.
func (st *Streams) Update(stream int, minInterval scheduler.Time) {
	if st.clock == nil {
		return
	}

	s := st.streams[stream]
	if s.rate <= 0 {
		return
	}

	p := st.clock.FramePosition()
	if p <= 0 {
		return
	}
	if p > 1 {
		p = 1
	}

	s.begin(st)
	end := int(float64(s.bufferLen()) * p)
	if scheduler.Time(end-s.pos)/scheduler.Time(s.rate) > minInterval {
		s.generate(end)
	}
}

// UpdateFrame completes the buffers for every stream and passes them to the
// mixer. It should be called once per frame before mixer.Update().
func (st *Streams) UpdateFrame() {
	for _, s := range st.streams {
		s.begin(st)
		s.generate(s.bufferLen())
		for i, buf := range s.buffers {
			ch := s.channel + i
			st.mixer.ApplyRCFilter(ch, buf, s.rate)
			st.mixer.PlayStreamedSample16(ch, buf, s.rate)
		}
		s.pos = 0
		s.started = false
	}
}
