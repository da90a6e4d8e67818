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

// Package soundchip selects the emulation for each sound chip in a machine.
// Every chip emulation implements the Chip interface so that the machine can
// start, stop, update and reset them without knowing what they are.
package soundchip

import (
	"fmt"

	"github.com/jetsetilly/arcadecore/curated"
	"github.com/jetsetilly/arcadecore/hardware/audio/dac"
	"github.com/jetsetilly/arcadecore/hardware/audio/hc55516"
	"github.com/jetsetilly/arcadecore/hardware/audio/sn76496"
	"github.com/jetsetilly/arcadecore/hardware/audio/streams"
)

// UnknownKind is returned by New() if the Kind is not recognised.
const UnknownKind = "soundchip: unknown kind (%d)"

// Kind identifies the sound chip emulation.
type Kind int

// List of valid Kind values.
const (
	DAC Kind = iota
	HC55516
	SN76496
)

func (k Kind) String() string {
	switch k {
	case DAC:
		return "DAC"
	case HC55516:
		return "HC55516"
	case SN76496:
		return "SN76496"
	}
	return fmt.Sprintf("kind (%d)", int(k))
}

// Chip is the capability interface shared by all sound chip emulations.
type Chip interface {
	// allocate streams and prepare for output at the sample rate
	Start(sampleRate int) error
	Stop()

	// called once per frame before the streams are completed
	Update()

	Reset()
}

// Interface describes one sound chip interface in a machine. Some fields are
// meaningless for some kinds of chip.
type Interface struct {
	Kind Kind

	// number of chips of this kind
	Num int

	// clock frequency of each chip
	Clock []int

	// default mixing level of each chip. see mixer.Level()
	Levels []int
}

// New creates the Chip described by the Interface. The chip has not been
// started.
func New(st *streams.Streams, intf Interface) (Chip, error) {
	var chip Chip
	var err error

	switch intf.Kind {
	case DAC:
		chip, err = dac.NewDAC(st, dac.Config{
			Num:    intf.Num,
			Levels: intf.Levels,
		})
	case HC55516:
		chip, err = hc55516.NewHC55516(st, hc55516.Config{
			Num:    intf.Num,
			Levels: intf.Levels,
		})
	case SN76496:
		chip, err = sn76496.NewSN76496(st, sn76496.Config{
			Num:    intf.Num,
			Clock:  intf.Clock,
			Levels: intf.Levels,
		})
	default:
		return nil, curated.Errorf(UnknownKind, int(intf.Kind))
	}

	if err != nil {
		return nil, err
	}

	return chip, nil
}
