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

// Package reference loads reference recordings of a machine's audio and
// compares them with the output of the emulation. Recordings can be WAV or
// MP3 files.
//
// The comparison is the root mean square of the difference between the two
// sample streams. A small difference is expected if the recording has been
// through a lossy encoder.
package reference

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/arcadecore/curated"
	"github.com/jetsetilly/arcadecore/logger"
)

// ReferenceError is the error pattern for errors from this package.
const ReferenceError = "reference: %v"

// Recording is a decoded reference recording. Samples are interleaved if
// there is more than one channel.
type Recording struct {
	Filename   string
	SampleRate int
	Channels   int
	Samples    []int16
}

func (r Recording) String() string {
	return fmt.Sprintf("%s: %d samples, %d channels @ %dHz", filepath.Base(r.Filename), r.Len(), r.Channels, r.SampleRate)
}

// Len returns the number of samples per channel.
func (r Recording) Len() int {
	if r.Channels == 0 {
		return 0
	}
	return len(r.Samples) / r.Channels
}

// Mono returns the samples of the recording mixed down to a single channel.
func (r Recording) Mono() []int16 {
	if r.Channels <= 1 {
		return r.Samples
	}
	m := make([]int16, r.Len())
	for i := range m {
		var v int
		for c := 0; c < r.Channels; c++ {
			v += int(r.Samples[i*r.Channels+c])
		}
		m[i] = int16(v / r.Channels)
	}
	return m
}

// Load a recording. The type of the recording is decided by the file
// extension.
func Load(filename string) (Recording, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Recording{}, curated.Errorf(ReferenceError, err)
	}
	defer f.Close()

	var r Recording

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		r, err = decodeWAV(f)
	case ".mp3":
		r, err = decodeMP3(f)
	default:
		err = fmt.Errorf("unsupported file type (%s)", filepath.Ext(filename))
	}
	if err != nil {
		return Recording{}, curated.Errorf(ReferenceError, err)
	}

	r.Filename = filename
	logger.Logf(logger.Allow, "reference", "%s", r)

	return r, nil
}

func decodeWAV(f io.ReadSeeker) (Recording, error) {
	dec := wav.NewDecoder(f)
	if dec == nil {
		return Recording{}, fmt.Errorf("wav: error decoding")
	}
	if !dec.IsValidFile() {
		return Recording{}, fmt.Errorf("wav: not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Recording{}, fmt.Errorf("wav: %w", err)
	}

	// samples of other bit depths are scaled to 16 bits
	shift := int(dec.BitDepth) - 16

	r := Recording{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		Samples:    make([]int16, len(buf.Data)),
	}
	for i, v := range buf.Data {
		switch {
		case shift > 0:
			v >>= shift
		case shift < 0:
			// 8 bit wav data is unsigned
			if dec.BitDepth == 8 {
				v -= 128
			}
			v <<= -shift
		}
		r.Samples[i] = int16(v)
	}

	return r, nil
}

func decodeMP3(f io.Reader) (Recording, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return Recording{}, fmt.Errorf("mp3: %w", err)
	}

	// the stream is always formatted as 16bit little endian with two
	// channels, even if the source is single channel
	r := Recording{
		SampleRate: dec.SampleRate(),
		Channels:   2,
	}
	if l := dec.Length(); l > 0 {
		r.Samples = make([]int16, 0, l/2)
	}

	chunk := make([]byte, 4096)
	for {
		n, err := dec.Read(chunk)
		for i := 0; i+1 < n; i += 2 {
			r.Samples = append(r.Samples, int16(uint16(chunk[i])|uint16(chunk[i+1])<<8))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return Recording{}, fmt.Errorf("mp3: %w", err)
		}
	}

	return r, nil
}

// RMS returns the root mean square of the difference between two sample
// streams. Only the length of the shorter stream is compared. Returns zero if
// either stream is empty.
func RMS(a []int16, b []int16) float64 {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum / float64(n))
}

// Compare the recording with samples from the emulation. The samples must be
// at the same rate and with the same number of channels as the recording.
func (r Recording) Compare(samples []int16, sampleRate int, channels int) (float64, error) {
	if sampleRate != r.SampleRate {
		return 0, curated.Errorf(ReferenceError, fmt.Sprintf("sample rate mismatch (%d and %d)", sampleRate, r.SampleRate))
	}
	if channels != r.Channels {
		return 0, curated.Errorf(ReferenceError, fmt.Sprintf("channel mismatch (%d and %d)", channels, r.Channels))
	}
	return RMS(r.Samples, samples), nil
}

// Capture implements the mixer.Sink interface. It keeps every sample from the
// mixer so that they can be compared with a Recording.
type Capture struct {
	Channels int
	Samples  []int16
}

// SetAudio implements the mixer.Sink interface.
func (c *Capture) SetAudio(samples []int16, channels int) error {
	if c.Channels == 0 {
		c.Channels = channels
	} else if c.Channels != channels {
		return curated.Errorf(ReferenceError, "number of channels has changed")
	}
	c.Samples = append(c.Samples, samples...)
	return nil
}

// EndMixing implements the mixer.Sink interface.
func (c *Capture) EndMixing() error {
	return nil
}
