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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// on program end. It is therefore probably only suitable for testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/arcadecore/curated"
	"github.com/jetsetilly/arcadecore/logger"
)

// WavWriterError is the error pattern for errors from this package.
const WavWriterError = "wavwriter: %v"

// WavWriter implements the mixer.Sink interface.
type WavWriter struct {
	filename   string
	sampleRate int

	// the number of channels is set by the first call to SetAudio()
	channels int
	buffer   []int
}

// NewWavWriter is the preferred method of initialisation for the WavWriter
// type.
func NewWavWriter(filename string, sampleRate int) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, curated.Errorf(WavWriterError, "sample rate must be positive")
	}

	aw := &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]int, 0),
	}

	return aw, nil
}

// SetAudio implements the mixer.Sink interface.
func (aw *WavWriter) SetAudio(samples []int16, channels int) error {
	if aw.channels == 0 {
		aw.channels = channels
	} else if aw.channels != channels {
		return curated.Errorf(WavWriterError, "number of channels has changed")
	}

	for _, s := range samples {
		aw.buffer = append(aw.buffer, int(s))
	}

	return nil
}

// Samples returns the number of samples (per channel) buffered so far.
func (aw *WavWriter) Samples() int {
	if aw.channels == 0 {
		return 0
	}
	return len(aw.buffer) / aw.channels
}

// EndMixing implements the mixer.Sink interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf(WavWriterError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(WavWriterError, err)
		}
	}()

	channels := max(aw.channels, 1)

	// 16 bit PCM
	enc := wav.NewEncoder(f, aw.sampleRate, 16, channels, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: channels,
			SampleRate:  aw.sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: 16,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf(WavWriterError, err)
	}

	if err := enc.Close(); err != nil {
		return curated.Errorf(WavWriterError, err)
	}

	return nil
}
