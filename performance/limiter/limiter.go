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

// Package limiter restricts the frame rate of the emulation to the frame
// rate of the machine. Useful when the audio is being played through the
// audio device.
//
//	lim := limiter.NewFPSLimiter(60)
//	defer lim.Stop()
//	for {
//		lim.Wait()
//		runFrame()
//	}
package limiter

import (
	"time"
)

// FpsLimiter ticks at the requested frame rate.
type FpsLimiter struct {
	framesPerSecond float64
	ticker          *time.Ticker
}

// NewFPSLimiter is the preferred method of initialisation for the FpsLimiter
// type.
func NewFPSLimiter(framesPerSecond float64) *FpsLimiter {
	lim := &FpsLimiter{}
	lim.ticker = time.NewTicker(period(framesPerSecond))
	lim.framesPerSecond = framesPerSecond
	return lim
}

func period(framesPerSecond float64) time.Duration {
	if framesPerSecond <= 0 {
		framesPerSecond = 1
	}
	return time.Duration(float64(time.Second) / framesPerSecond)
}

// SetLimit changes the frame rate.
func (lim *FpsLimiter) SetLimit(framesPerSecond float64) {
	lim.framesPerSecond = framesPerSecond
	lim.ticker.Reset(period(framesPerSecond))
}

// Limit returns the current frame rate.
func (lim *FpsLimiter) Limit() float64 {
	return lim.framesPerSecond
}

// Wait until the next frame is due.
func (lim *FpsLimiter) Wait() {
	<-lim.ticker.C
}

// HasWaited returns true if a frame is due. It does not block.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}

// Stop the limiter. It should not be used after it has been stopped.
func (lim *FpsLimiter) Stop() {
	lim.ticker.Stop()
}
