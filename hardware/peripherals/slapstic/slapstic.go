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

package slapstic

import (
	"fmt"

	"github.com/jetsetilly/arcadecore/curated"
	"github.com/jetsetilly/arcadecore/environment"
	"github.com/jetsetilly/arcadecore/logger"
)

// UnsupportedChip is returned by NewSlapstic() for chip numbers outside the
// supported range.
const UnsupportedChip = "slapstic: unsupported chip (%d)"

// State of the slapstic state machine.
type State int

// List of valid State values.
const (
	Enabled State = iota
	Disabled
	Ignore
	Special
)

func (s State) String() string {
	switch s {
	case Enabled:
		return "enabled"
	case Disabled:
		return "disabled"
	case Ignore:
		return "ignore"
	case Special:
		return "special"
	}
	return fmt.Sprintf("invalid state (%d)", int(s))
}

// no bank is pending.
const noBank = -1

// Slapstic is the state of a single slapstic chip.
type Slapstic struct {
	env    *environment.Environment
	chip   int
	params Params

	state State

	current int
	next    int
	extra   int
}

// NewSlapstic is the preferred method of initialisation for the Slapstic type.
//
// Returns an UnsupportedChip error if the chip number is not recognised. The
// caller should treat this as a configuration error.
func NewSlapstic(env *environment.Environment, chip int) (*Slapstic, error) {
	p, ok := Lookup(chip)
	if !ok {
		return nil, curated.Errorf(UnsupportedChip, chip)
	}
	s := NewCustomSlapstic(env, p)
	s.chip = chip
	return s, nil
}

// NewCustomSlapstic creates a slapstic with explicit parameters. Useful for
// boards with slapstic variants that aren't in the chip table.
func NewCustomSlapstic(env *environment.Environment, p Params) *Slapstic {
	s := &Slapstic{
		env:    env,
		params: p,
	}
	s.Reset()
	return s
}

func (s *Slapstic) String() string {
	return fmt.Sprintf("%d: %s bank=%d", s.chip, s.state, s.current)
}

// Chip returns the chip number. Returns zero for custom chips.
func (s *Slapstic) Chip() int {
	return s.chip
}

// Reset the chip to its power-on state.
func (s *Slapstic) Reset() {
	s.state = Enabled
	s.current = s.params.BankStart
	s.next = noBank
	s.extra = noBank
}

// Bank returns the currently selected bank.
func (s *Slapstic) Bank() int {
	return s.current
}

// State returns the current state of the state machine.
func (s *Slapstic) State() State {
	return s.state
}

// selectBank arms the next bank, which takes effect on the following access.
// a pending secondary bank overrides the requested bank.
func (s *Slapstic) selectBank(bank int) {
	s.state = Disabled
	if s.extra != noBank {
		s.next = s.extra
	} else {
		s.next = bank
	}
	s.extra = noBank
}

// Tweak must be called for every access to the slapstic window. The offset is
// the word offset into the window. Bits above the window are ignored. Returns
// the bank to use for the access.
func (s *Slapstic) Tweak(offset uint16) int {
	offset &= WindowSize/2 - 1

	// a bank selected by the previous access takes effect now
	if s.next != noBank {
		s.current = s.next
		s.next = noBank
	}

	p := &s.params

	switch s.state {
	case Enabled:
		if p.Disable.match(offset) {
			s.state = Disabled
			if s.extra != noBank {
				s.next = s.extra
			}
			s.extra = noBank
		} else if p.Ignore.match(offset) {
			s.state = Ignore
		} else if offset == p.Bank[0] {
			s.selectBank(0)
		} else if offset == p.Bank[1] {
			s.selectBank(1)
		} else if offset == p.Bank[2] {
			s.selectBank(2)
		} else if offset == p.Bank[3] {
			s.selectBank(3)
		} else if offset == p.Reset {
			s.next = noBank
			s.extra = noBank
		} else if offset == p.SEnable {
			s.state = Special
		}

	case Disabled:
		if offset == p.Reset {
			s.state = Enabled
		}

	case Ignore:
		if offset == p.SEnable {
			s.state = Special
		} else {
			s.state = Enabled
		}

	case Special:
		s.state = Enabled
		if offset == p.SBank[0] {
			s.extra = 0
		} else if offset == p.SBank[1] {
			s.extra = 1
		} else if offset == p.SBank[2] {
			s.extra = 2
		} else if offset == p.SBank[3] {
			s.extra = 3
		} else if offset == p.Reset {
			s.extra = noBank
		}

	default:
		logger.Logf(logger.Allow, "slapstic", "%d: %s at offset %#04x", s.chip, s.state, offset)
		panic(fmt.Sprintf("slapstic: %s", s.state))
	}

	return s.current
}
