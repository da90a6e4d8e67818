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

// Package otoaudio plays the output of the mixer through the platform's audio
// device. The oto package is used to access the device.
package otoaudio

import (
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/jetsetilly/arcadecore/curated"
	"github.com/jetsetilly/arcadecore/logger"
)

// OtoError is the error pattern for errors from this package.
const OtoError = "otoaudio: %v"

// queue length in seconds. the queue discards the oldest data if the
// emulation runs faster than real time
const queueLength = 0.25

// only one oto context can exist in a process. the sample rate and number of
// channels are fixed by the first call to NewAudio()
var (
	ctx         *oto.Context
	ctxOnce     sync.Once
	ctxErr      error
	ctxRate     int
	ctxChannels int
)

func openContext(sampleRate int, channels int) (*oto.Context, error) {
	ctxOnce.Do(func() {
		var ready chan struct{}
		ctx, ready, ctxErr = oto.NewContext(&oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channels,
			Format:       oto.FormatSignedInt16LE,
			BufferSize:   50 * time.Millisecond,
		})
		if ctxErr != nil {
			return
		}
		<-ready
		ctxRate = sampleRate
		ctxChannels = channels
	})
	if ctxErr != nil {
		return nil, ctxErr
	}
	if sampleRate != ctxRate || channels != ctxChannels {
		return nil, curated.Errorf("device already open at %dHz with %d channels", ctxRate, ctxChannels)
	}
	return ctx, nil
}

// Audio implements the mixer.Sink interface.
type Audio struct {
	player   *oto.Player
	queue    *Queue
	channels int

	// reused for the conversion of samples to bytes
	bytes []byte
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio(sampleRate int, stereo bool) (*Audio, error) {
	channels := 1
	if stereo {
		channels = 2
	}

	c, err := openContext(sampleRate, channels)
	if err != nil {
		return nil, curated.Errorf(OtoError, err)
	}

	aud := &Audio{
		queue:    NewQueue(int(float64(sampleRate*channels*2) * queueLength)),
		channels: channels,
	}

	aud.player = c.NewPlayer(aud.queue)
	aud.player.Play()

	logger.Logf(logger.Allow, "otoaudio", "playing at %dHz with %d channels", sampleRate, channels)

	return aud, nil
}

// SetAudio implements the mixer.Sink interface.
func (aud *Audio) SetAudio(samples []int16, channels int) error {
	if channels != aud.channels {
		return curated.Errorf(OtoError, "unexpected number of channels")
	}

	aud.bytes = Encode(aud.bytes[:0], samples)
	_, err := aud.queue.Write(aud.bytes)
	return err
}

// EndMixing implements the mixer.Sink interface.
func (aud *Audio) EndMixing() error {
	_ = aud.queue.Close()
	if err := aud.player.Close(); err != nil {
		return curated.Errorf(OtoError, err)
	}
	return nil
}

// Encode appends the samples to the byte slice as little endian values.
func Encode(b []byte, samples []int16) []byte {
	for _, s := range samples {
		b = append(b, byte(s), byte(uint16(s)>>8))
	}
	return b
}
