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

// Package sn76496 connects the SN76496 programmable sound generator to the
// stream system. Sound generation is provided by the go-chip-sn76489 package.
package sn76496

import (
	"fmt"

	"github.com/jetsetilly/arcadecore/curated"
	"github.com/jetsetilly/arcadecore/hardware/audio/streams"
	sn76489 "github.com/user-none/go-chip-sn76489"
)

// MaxChips is the maximum number of chips in an interface.
const MaxChips = 4

// SN76496Error is the error pattern for configuration errors.
const SN76496Error = "sn76496: %v"

// each of the four generators contributes up to this amount to the output.
const gain = 8191.0

// Config describes the SN76496 chips in a machine.
type Config struct {
	Num    int
	Clock  []int
	Levels []int
}

type chip struct {
	psg    *sn76489.SN76489
	clock  int
	stream int

	// fraction of a clock carried between stream updates
	residue float64

	// the last sample generated. used if the chip produces fewer samples
	// than requested
	held int16
}

// SN76496 is the state of all the chips in the interface.
type SN76496 struct {
	st    *streams.Streams
	cfg   Config
	chips []chip

	started bool
}

// NewSN76496 is the preferred method of initialisation for the SN76496 type.
func NewSN76496(st *streams.Streams, cfg Config) (*SN76496, error) {
	if cfg.Num < 1 || cfg.Num > MaxChips {
		return nil, curated.Errorf(SN76496Error, fmt.Sprintf("number of chips must be between 1 and %d", MaxChips))
	}
	if len(cfg.Levels) != cfg.Num || len(cfg.Clock) != cfg.Num {
		return nil, curated.Errorf(SN76496Error, "a clock and level is required for every chip")
	}
	for _, c := range cfg.Clock {
		if c <= 0 {
			return nil, curated.Errorf(SN76496Error, fmt.Sprintf("invalid clock (%d)", c))
		}
	}
	return &SN76496{
		st:    st,
		cfg:   cfg,
		chips: make([]chip, cfg.Num),
	}, nil
}

// Start creates the sound generators and allocates a stream for each one.
func (sn *SN76496) Start(sampleRate int) error {
	if sampleRate <= 0 {
		return curated.Errorf(SN76496Error, "sample rate must be positive")
	}

	for i := range sn.chips {
		c := &sn.chips[i]
		c.clock = sn.cfg.Clock[i]

		// the internal buffer is never allowed to hold more than one stream
		// update. a second of samples is plenty
		c.psg = sn76489.New(c.clock, sampleRate, sampleRate, sn76489.TI)
		c.psg.SetGain(gain)

		name := fmt.Sprintf("SN76496 #%d", i)
		s, err := sn.st.Init(name, sn.cfg.Levels[i], sampleRate, i, sn.update)
		if err != nil {
			return curated.Errorf(SN76496Error, err)
		}
		c.stream = s
	}

	sn.started = true
	sn.Reset()

	return nil
}

// Stop the chips.
func (sn *SN76496) Stop() {
	sn.started = false
}

// Update is part of the soundchip.Chip interface. Generation happens as the
// stream requests samples.
func (sn *SN76496) Update() {
}

// Reset all chips. All generators are silenced.
func (sn *SN76496) Reset() {
	for i := range sn.chips {
		c := &sn.chips[i]
		if c.psg == nil {
			continue
		}
		c.psg.Reset()
		c.psg.ResetBuffer()
		c.residue = 0
		c.held = 0

		// volume registers to fifteen (off)
		for _, v := range []uint8{0x9f, 0xbf, 0xdf, 0xff} {
			c.psg.Write(v)
		}
	}
}

// Write a command byte to the chip.
func (sn *SN76496) Write(num int, data uint8) {
	c := &sn.chips[num]
	if !sn.started {
		return
	}
	sn.st.Update(c.stream, 0)
	c.psg.Write(data)
}

func (sn *SN76496) update(num int, buf []int16) {
	c := &sn.chips[num]
	if c.psg == nil {
		clear(buf)
		return
	}

	clocks := float64(len(buf))*c.psg.ClocksPerSample() + c.residue
	n := int(clocks)
	c.residue = clocks - float64(n)

	c.psg.Run(n)
	samples, count := c.psg.GetBuffer()

	i := 0
	for ; i < count && i < len(buf); i++ {
		v := samples[i]
		if v > 32767 {
			v = 32767
		} else if v < -32768 {
			v = -32768
		}
		buf[i] = int16(v)
	}
	if i > 0 {
		c.held = buf[i-1]
	}
	for ; i < len(buf); i++ {
		buf[i] = c.held
	}

	c.psg.ResetBuffer()
}
