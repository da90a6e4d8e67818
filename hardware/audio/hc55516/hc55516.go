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

// Package hc55516 emulates the HC55516 CVSD speech decoder. Each rising edge
// of the bit clock moves an integrator up or down by an adaptive step. The
// step grows when the last three bits are all the same (slope overload) and
// decays otherwise.
package hc55516

import (
	"fmt"
	"math"

	"github.com/jetsetilly/arcadecore/curated"
	"github.com/jetsetilly/arcadecore/hardware/audio/streams"
)

// MaxChips is the maximum number of HC55516 chips in an interface.
const MaxChips = 4

// HC55516Error is the error pattern for configuration errors.
const HC55516Error = "hc55516: %v"

// analogue model constants.
const (
	integratorLeakTC = 0.001
	filterDecayTC    = 0.004
	filterChargeTC   = 0.004
	FilterMin        = 0.0416
	FilterMax        = 1.0954
	sampleGain       = 10000.0
)

// the leak, decay and charge factors are calculated for a 16kHz bit clock.
var (
	charge = math.Pow(math.Exp(-1), 1.0/(filterChargeTC*16000.0))
	decay  = math.Pow(math.Exp(-1), 1.0/(filterDecayTC*16000.0))
	leak   = math.Pow(math.Exp(-1), 1.0/(integratorLeakTC*16000.0))
)

// Config describes the HC55516 chips in a machine.
type Config struct {
	Num    int
	Levels []int
}

type chip struct {
	stream int

	lastClock uint8
	databit   uint8
	shiftreg  uint8

	currValue int16
	nextValue int16

	// samples generated since the last clock edge
	updateCount int

	filter     float64
	integrator float64
}

func (c *chip) reset() {
	c.lastClock = 0
	c.databit = 0
	c.shiftreg = 0
	c.currValue = 0
	c.nextValue = 0
	c.updateCount = 0
	c.filter = FilterMin
	c.integrator = 0
}

// HC55516 is the state of all the chips in the interface.
type HC55516 struct {
	st  *streams.Streams
	cfg Config

	sampleRate int
	started    bool

	chips []chip
}

// NewHC55516 is the preferred method of initialisation for the HC55516 type.
func NewHC55516(st *streams.Streams, cfg Config) (*HC55516, error) {
	if cfg.Num < 1 || cfg.Num > MaxChips {
		return nil, curated.Errorf(HC55516Error, fmt.Sprintf("number of chips must be between 1 and %d", MaxChips))
	}
	if len(cfg.Levels) != cfg.Num {
		return nil, curated.Errorf(HC55516Error, "a level is required for every chip")
	}

	h := &HC55516{
		st:    st,
		cfg:   cfg,
		chips: make([]chip, cfg.Num),
	}
	h.Reset()

	return h, nil
}

// Start allocates a stream for each chip at the native sample rate.
func (h *HC55516) Start(sampleRate int) error {
	h.sampleRate = sampleRate
	for i := range h.chips {
		name := fmt.Sprintf("HC55516 #%d", i)
		s, err := h.st.Init(name, h.cfg.Levels[i], sampleRate, i, h.update)
		if err != nil {
			return curated.Errorf(HC55516Error, err)
		}
		h.chips[i].stream = s
	}
	h.started = true
	return nil
}

// Stop the chips.
func (h *HC55516) Stop() {
	h.started = false
}

// Update is part of the soundchip.Chip interface. Output is driven entirely
// by the bit clock.
func (h *HC55516) Update() {
}

// Reset all chips.
func (h *HC55516) Reset() {
	for i := range h.chips {
		h.chips[i].reset()
	}
}

// Step returns the current adaptive step size of the chip.
func (h *HC55516) Step(num int) float64 {
	return h.chips[num].filter
}

// Value returns the most recently decoded sample.
func (h *HC55516) Value(num int) int16 {
	return h.chips[num].nextValue
}

func (h *HC55516) update(num int, buf []int16) {
	if len(buf) == 0 {
		return
	}

	c := &h.chips[num]

	// no clock for a thirty-second of a second is silence
	c.updateCount += len(buf)
	if h.sampleRate > 0 && c.updateCount > h.sampleRate/32 {
		c.updateCount = h.sampleRate
		c.nextValue = 0
	}

	data := int32(c.currValue)
	slope := (int32(c.nextValue) - data) / int32(len(buf))
	c.currValue = c.nextValue

	for i := range buf {
		buf[i] = int16(data)
		data += slope
	}
}

// ClockW sets the state of the bit clock. The data bit is shifted in on the
// rising edge.
func (h *HC55516) ClockW(num int, state uint8) {
	c := &h.chips[num]

	clock := state & 0x01
	edge := clock ^ c.lastClock
	c.lastClock = clock

	if edge == 0 || clock == 0 {
		return
	}

	// samples up to now are interpolated towards the previous value
	if h.started {
		h.st.Update(c.stream, 0)
	}

	c.updateCount = 0

	integrator := c.integrator
	if c.databit != 0 {
		c.shiftreg = ((c.shiftreg << 1) | 1) & 0x07
		integrator += c.filter
	} else {
		c.shiftreg = (c.shiftreg << 1) & 0x07
		integrator -= c.filter
	}

	integrator *= leak

	if c.shiftreg == 0 || c.shiftreg == 0x07 {
		c.filter = FilterMax - ((FilterMax - c.filter) * charge)
		if c.filter > FilterMax {
			c.filter = FilterMax
		}
	} else {
		c.filter *= decay
		if c.filter < FilterMin {
			c.filter = FilterMin
		}
	}

	c.integrator = integrator

	// soft knee compression into sixteen bits
	temp := integrator * sampleGain
	c.nextValue = int16(temp / (math.Abs(temp)/32768.0 + 1.0))
}

// DigitW sets the data bit that will be shifted in on the next rising edge
// of the clock.
func (h *HC55516) DigitW(num int, data uint8) {
	h.chips[num].databit = data & 0x01
}

// ClockClearW sets the clock low.
func (h *HC55516) ClockClearW(num int) {
	h.ClockW(num, 0)
}

// ClockSetW sets the clock high.
func (h *HC55516) ClockSetW(num int) {
	h.ClockW(num, 1)
}

// DigitClockClearW sets the data bit and sets the clock low in one write.
func (h *HC55516) DigitClockClearW(num int, data uint8) {
	h.DigitW(num, data)
	h.ClockW(num, 0)
}
