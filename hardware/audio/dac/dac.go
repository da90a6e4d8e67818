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

// Package dac emulates simple digital to analogue converters. The output of
// each DAC is held at the last value written until the next write.
package dac

import (
	"fmt"

	"github.com/jetsetilly/arcadecore/curated"
	"github.com/jetsetilly/arcadecore/hardware/audio/mixer"
	"github.com/jetsetilly/arcadecore/hardware/audio/streams"
)

// MaxDACs is the maximum number of DACs in a single DAC interface.
const MaxDACs = 8

// DACError is the error pattern for DAC configuration errors.
const DACError = "dac: %v"

// Config describes the DACs in a machine.
type Config struct {
	Num int

	// default mixing levels for each DAC. see mixer.Level()
	Levels []int
}

// lookup tables for eight bit data.
var unsignedTable [256]int16
var signedTable [256]int16

func init() {
	for i := 0; i < 256; i++ {
		unsignedTable[i] = int16(i * 0x101 / 2)
		signedTable[i] = int16(i*0x101 - 0x8000)
	}
}

// DAC is the state of all DACs in the interface.
type DAC struct {
	st  *streams.Streams
	cfg Config

	stream [MaxDACs]int
	output [MaxDACs]int16

	started bool
}

// NewDAC is the preferred method of initialisation for the DAC type. The
// DACs will produce no sound until Start() has been called.
func NewDAC(st *streams.Streams, cfg Config) (*DAC, error) {
	if cfg.Num < 1 || cfg.Num > MaxDACs {
		return nil, curated.Errorf(DACError, fmt.Sprintf("number of DACs must be between 1 and %d", MaxDACs))
	}
	if len(cfg.Levels) != cfg.Num {
		return nil, curated.Errorf(DACError, "a level is required for every DAC")
	}
	return &DAC{st: st, cfg: cfg}, nil
}

// Start allocates a stream for each DAC. The stream runs at the native
// sample rate of the mixer.
func (dac *DAC) Start(sampleRate int) error {
	for i := 0; i < dac.cfg.Num; i++ {
		name := fmt.Sprintf("DAC #%d", i)
		s, err := dac.st.Init(name, dac.cfg.Levels[i], sampleRate, i, dac.update)
		if err != nil {
			return curated.Errorf(DACError, err)
		}
		dac.stream[i] = s
	}
	dac.started = true
	dac.Reset()
	return nil
}

// Stop the DACs. The streams remain allocated in the mixer.
func (dac *DAC) Stop() {
	dac.started = false
}

// Update is part of the soundchip.Chip interface. DACs need no per-frame
// processing.
func (dac *DAC) Update() {
}

// Reset all DAC outputs to zero.
func (dac *DAC) Reset() {
	for i := range dac.output {
		dac.output[i] = 0
	}
}

// Output returns the current output level of the DAC.
func (dac *DAC) Output(num int) int16 {
	return dac.output[num]
}

func (dac *DAC) update(num int, buf []int16) {
	out := dac.output[num]
	for i := range buf {
		buf[i] = out
	}
}

func (dac *DAC) set(num int, out int16) {
	if dac.output[num] == out {
		return
	}
	if dac.started {
		// samples up to now use the previous output
		dac.st.Update(dac.stream[num], 0)
	}
	dac.output[num] = out
}

// DataW writes unsigned eight bit data to the DAC. Zero is the lowest
// output level.
func (dac *DAC) DataW(num int, data uint8) {
	dac.set(num, unsignedTable[data])
}

// SignedDataW writes eight bit data to the DAC where 0x80 is the zero level.
func (dac *DAC) SignedDataW(num int, data uint8) {
	dac.set(num, signedTable[data])
}

// Data16W writes unsigned sixteen bit data to the DAC.
func (dac *DAC) Data16W(num int, data uint16) {
	dac.set(num, int16(data>>1))
}

// SignedData16W writes sixteen bit data to the DAC where 0x8000 is the zero
// level.
func (dac *DAC) SignedData16W(num int, data uint16) {
	dac.set(num, int16(int32(data)-0x8000))
}

// DefaultLevels returns a slice of n levels, all at the given level and
// centered.
func DefaultLevels(n int, level int) []int {
	l := make([]int, n)
	for i := range l {
		l[i] = mixer.Level(level, mixer.PanCenter, 0)
	}
	return l
}
