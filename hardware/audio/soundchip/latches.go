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

package soundchip

import (
	"github.com/jetsetilly/arcadecore/environment"
	"github.com/jetsetilly/arcadecore/hardware/memory/bus"
	"github.com/jetsetilly/arcadecore/logger"
)

// NumLatches is the number of sound latches.
const NumLatches = 4

// Latches are the registers through which a main CPU passes commands to a
// sound CPU. A write is deferred through the scheduler so that it takes
// effect at the next timer boundary, which gives a waiting sound CPU the
// chance to run first.
type Latches struct {
	env *environment.Environment

	latch [NumLatches]uint8
	read  [NumLatches]bool

	// the value a latch takes when it is cleared
	clearedValue uint8
}

// NewLatches is the preferred method of initialisation for the Latches type.
func NewLatches(env *environment.Environment) *Latches {
	l := &Latches{env: env}
	l.Reset()
	return l
}

// Reset all latches to the cleared value.
func (l *Latches) Reset() {
	for i := range l.latch {
		l.latch[i] = l.clearedValue
		l.read[i] = true
	}
}

// SetClearedValue changes the value of a latch after Clear() is called.
func (l *Latches) SetClearedValue(v uint8) {
	l.clearedValue = v
}

// Write data to the latch. The new value is visible after the scheduler next
// runs.
func (l *Latches) Write(n int, data uint8) {
	l.env.Scheduler.Schedule(0, func(param int) {
		l.set(n, uint8(param))
	}, int(data))
}

func (l *Latches) set(n int, data uint8) {
	if !l.read[n] && l.latch[n] != data {
		logger.Logf(l.env, "soundlatch", "latch %d: %#02x overwritten with %#02x before being read", n, l.latch[n], data)
	}
	l.latch[n] = data
	l.read[n] = false
}

// Read the current value of the latch.
func (l *Latches) Read(n int) uint8 {
	l.read[n] = true
	return l.latch[n]
}

// Peek returns the current value of the latch without marking it as read.
func (l *Latches) Peek(n int) uint8 {
	return l.latch[n]
}

// Clear sets the latch to the cleared value immediately.
func (l *Latches) Clear(n int) {
	l.latch[n] = l.clearedValue
}

// ReadHandler returns a bus.ReadHandler for the latch.
func (l *Latches) ReadHandler(n int) bus.ReadHandler {
	return func(_ uint16) uint8 {
		return l.Read(n)
	}
}

// WriteHandler returns a bus.WriteHandler for the latch.
func (l *Latches) WriteHandler(n int) bus.WriteHandler {
	return func(_ uint16, data uint8) {
		l.Write(n, data)
	}
}
