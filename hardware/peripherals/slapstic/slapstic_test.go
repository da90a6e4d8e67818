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

package slapstic_test

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/arcadecore/curated"
	"github.com/jetsetilly/arcadecore/environment"
	"github.com/jetsetilly/arcadecore/hardware/memory/bus"
	"github.com/jetsetilly/arcadecore/hardware/peripherals/slapstic"
	"github.com/jetsetilly/arcadecore/hardware/preferences"
	"github.com/jetsetilly/arcadecore/test"
)

func newEnv(t *testing.T) *environment.Environment {
	t.Helper()
	dir := t.TempDir()
	p, err := preferences.NewPreferencesWithPath(filepath.Join(dir, "prefs"), filepath.Join(dir, "levels"))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)
	return env
}

// parameters with every transition defined. used to test the state machine
// independently of the chip table
var custom = slapstic.Params{
	BankStart: 3,
	Reset:     0x0000,
	Bank:      [4]uint16{0x0010, 0x0020, 0x0030, 0x0040},
	Disable:   slapstic.MaskValue{Mask: 0x3ff0, Value: 0x1000},
	Ignore:    slapstic.MaskValue{Mask: 0x3ff0, Value: 0x2000},
	SEnable:   0x3000,
	SBank:     [4]uint16{0x3010, 0x3020, 0x3030, 0x3040},
}

func TestMarbleMadness(t *testing.T) {
	s, err := slapstic.NewSlapstic(newEnv(t), 103)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Bank(), 3)

	s.Tweak(0x0000)
	test.ExpectEquality(t, s.Bank(), 3)

	// bank zero selected but not yet in effect
	test.ExpectEquality(t, s.Tweak(0x0040), 3)
	test.ExpectEquality(t, s.Bank(), 3)

	// takes effect on the following access
	test.ExpectEquality(t, s.Tweak(0x1234), 0)
	test.ExpectEquality(t, s.Bank(), 0)
}

func TestUnsupportedChip(t *testing.T) {
	env := newEnv(t)

	_, err := slapstic.NewSlapstic(env, 100)
	test.ExpectSuccess(t, curated.Is(err, slapstic.UnsupportedChip))
	_, err = slapstic.NewSlapstic(env, 119)
	test.ExpectSuccess(t, curated.Is(err, slapstic.UnsupportedChip))

	for c := slapstic.FirstChip; c <= slapstic.LastChip; c++ {
		_, err = slapstic.NewSlapstic(env, c)
		test.ExpectSuccess(t, err, c)
	}
}

func TestUnknownAddresses(t *testing.T) {
	env := newEnv(t)

	for _, c := range []int{102, 103, 109, 110, 116, 117} {
		p, ok := slapstic.Lookup(c)
		test.DemandSuccess(t, ok)

		s, err := slapstic.NewSlapstic(env, c)
		test.DemandSuccess(t, err)
		test.DemandEquality(t, s.State(), slapstic.Enabled, c)

		for _, offset := range []uint16{slapstic.Unknown, 0x7fff, 0x3fff} {
			test.ExpectEquality(t, s.Tweak(offset), p.BankStart, c, offset)
			test.ExpectEquality(t, s.State(), slapstic.Enabled, c, offset)
		}
		test.ExpectEquality(t, s.Tweak(0x0001), p.BankStart, c)
		test.ExpectEquality(t, s.Bank(), p.BankStart, c)
	}

	// a mask covering every bit still doesn't match an unknown value
	q := custom
	q.Disable = slapstic.MaskValue{Mask: slapstic.Unknown, Value: slapstic.Unknown}
	s := slapstic.NewCustomSlapstic(env, q)
	s.Tweak(slapstic.Unknown)
	test.ExpectEquality(t, s.State(), slapstic.Enabled)
}

func TestBankLatency(t *testing.T) {
	env := newEnv(t)
	rnd := rand.New(rand.NewSource(1))

	for _, c := range []int{101, 103, 104, 105, 106, 107, 108, 111, 112, 113, 114, 115, 118} {
		p, ok := slapstic.Lookup(c)
		test.DemandSuccess(t, ok)

		s, err := slapstic.NewSlapstic(env, c)
		test.DemandSuccess(t, err)

		for i := 0; i < 100; i++ {
			// get the chip into the enabled state with no pending secondary
			// bank by reading the reset address twice
			s.Tweak(p.Reset)
			s.Tweak(p.Reset)
			test.DemandEquality(t, s.State(), slapstic.Enabled, c)

			bank := rnd.Intn(4)
			before := s.Bank()
			test.ExpectEquality(t, s.Tweak(p.Bank[bank]), before, c)
			test.ExpectEquality(t, s.Bank(), before, c)

			// any access will now see the new bank
			test.ExpectEquality(t, s.Tweak(uint16(rnd.Intn(0x4000))), bank, c)
		}
	}
}

func TestDisabled(t *testing.T) {
	s := slapstic.NewCustomSlapstic(newEnv(t), custom)

	s.Tweak(0x0020)
	test.ExpectEquality(t, s.State(), slapstic.Disabled)
	test.ExpectEquality(t, s.Tweak(0x0555), 1)

	// bank selects are ignored while disabled
	s.Tweak(0x0030)
	test.ExpectEquality(t, s.Tweak(0x0555), 1)

	// only reset enables the chip again
	s.Tweak(0x0000)
	test.ExpectEquality(t, s.State(), slapstic.Enabled)
	s.Tweak(0x0030)
	test.ExpectEquality(t, s.Tweak(0x0555), 2)

	// disable mask
	s.Tweak(0x0000)
	s.Tweak(0x1004)
	test.ExpectEquality(t, s.State(), slapstic.Disabled)
}

func TestIgnore(t *testing.T) {
	s := slapstic.NewCustomSlapstic(newEnv(t), custom)

	s.Tweak(0x2001)
	test.ExpectEquality(t, s.State(), slapstic.Ignore)

	// the access following the ignore is ignored, even if it is a bank
	// select
	s.Tweak(0x0010)
	test.ExpectEquality(t, s.State(), slapstic.Enabled)
	test.ExpectEquality(t, s.Tweak(0x0555), 3)

	// secondary enable following an ignore
	s.Tweak(0x2001)
	s.Tweak(0x3000)
	test.ExpectEquality(t, s.State(), slapstic.Special)
}

func TestSpecial(t *testing.T) {
	s := slapstic.NewCustomSlapstic(newEnv(t), custom)

	// secondary bank overrides the next bank select
	s.Tweak(0x3000)
	test.ExpectEquality(t, s.State(), slapstic.Special)
	s.Tweak(0x3020)
	test.ExpectEquality(t, s.State(), slapstic.Enabled)
	s.Tweak(0x0010)
	test.ExpectEquality(t, s.Tweak(0x0555), 1)

	// secondary bank is applied by the disable mask
	s.Tweak(0x0000)
	s.Tweak(0x3000)
	s.Tweak(0x3040)
	s.Tweak(0x1000)
	test.ExpectEquality(t, s.Tweak(0x0555), 3)

	// reset clears the secondary bank
	s.Tweak(0x0000)
	s.Tweak(0x3000)
	s.Tweak(0x3010)
	s.Tweak(0x0000)
	s.Tweak(0x0030)
	test.ExpectEquality(t, s.Tweak(0x0555), 2)

	// anything else returns to enabled without a secondary bank
	s.Tweak(0x0000)
	s.Tweak(0x3000)
	s.Tweak(0x0555)
	test.ExpectEquality(t, s.State(), slapstic.Enabled)
	s.Tweak(0x0010)
	test.ExpectEquality(t, s.Tweak(0x0555), 0)
}

func TestHandler(t *testing.T) {
	env := newEnv(t)

	s, err := slapstic.NewSlapstic(env, 103)
	test.DemandSuccess(t, err)

	rom := make([]uint8, 4*slapstic.BankSize)
	for b := 0; b < 4; b++ {
		for i := 0; i < slapstic.BankSize; i++ {
			rom[b*slapstic.BankSize+i] = uint8(b)
		}
	}

	_, err = slapstic.NewHandler(s, rom[:100])
	test.ExpectSuccess(t, curated.Is(err, slapstic.ROMSizeError))

	h, err := slapstic.NewHandler(s, rom)
	test.DemandSuccess(t, err)

	m := bus.NewMap(env)
	test.DemandSuccess(t, h.Install(m, 0x8000))

	test.ExpectEquality(t, m.Read(0x8000), uint8(3))

	// byte offset 0x80 is word offset 0x40, the bank zero select for chip 103
	test.ExpectEquality(t, m.Read(0x8080), uint8(3))
	test.ExpectEquality(t, m.Read(0x8000), uint8(0))

	// peeking does not tweak the chip
	v, err := m.Peek(0x80a0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0))
	test.ExpectEquality(t, s.State(), slapstic.Enabled)
	test.ExpectEquality(t, m.Read(0x8002), uint8(0))
	test.ExpectEquality(t, m.Read(0x8004), uint8(0))
}
