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

package bus

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/arcadecore/curated"
	"github.com/jetsetilly/arcadecore/environment"
	"github.com/jetsetilly/arcadecore/logger"
)

// Range is a single entry in the address map.
type Range struct {
	Name string

	Start uint16
	End   uint16

	// address bits that are ignored when matching the range
	Mirror uint16

	// handlers for normal access. a nil handler means the range does not
	// respond to that direction of access
	Read  ReadHandler
	Write WriteHandler

	// handlers for debugging access. if Peek is nil then the range cannot be
	// inspected by the debugger, which is correct for ranges where a read has
	// side effects
	Peek ReadHandler
	Poke func(offset uint16, data uint8) error
}

func (r Range) String() string {
	if r.Mirror != 0 {
		return fmt.Sprintf("%#04x-%#04x (mirror %#04x) %s", r.Start, r.End, r.Mirror, r.Name)
	}
	return fmt.Sprintf("%#04x-%#04x %s", r.Start, r.End, r.Name)
}

// match returns the offset of the address in the range.
func (r *Range) match(address uint16) (uint16, bool) {
	a := address &^ r.Mirror
	if a < r.Start || a > r.End {
		return 0, false
	}
	return a - r.Start, true
}

// Map routes bus access to the handlers of the installed ranges. It
// implements the CPUBus and DebuggerBus interfaces.
type Map struct {
	env    *environment.Environment
	ranges []Range

	// the last value on the data bus. returned for reads of unmapped addresses
	lastData uint8

	// addresses that have already produced an AddressError log entry
	logged map[uint16]bool
}

// NewMap is the preferred method of initialisation for the Map type.
func NewMap(env *environment.Environment) *Map {
	return &Map{
		env:    env,
		logged: make(map[uint16]bool),
	}
}

func (m *Map) String() string {
	s := strings.Builder{}
	for _, r := range m.ranges {
		s.WriteString(r.String())
		s.WriteString("\n")
	}
	return s.String()
}

// Install adds a range to the map. Ranges installed earlier take precedence.
func (m *Map) Install(r Range) error {
	if r.Start > r.End || r.Start&r.Mirror != 0 {
		return curated.Errorf(RangeError, r.Start, r.End)
	}
	m.ranges = append(m.ranges, r)
	return nil
}

// InstallRAM is a convenience function that installs a RAM area with both
// normal and debug access.
func (m *Map) InstallRAM(name string, start uint16, end uint16, ram *RAM) error {
	return m.Install(Range{
		Name:  name,
		Start: start,
		End:   end,
		Read:  ram.Read,
		Write: ram.Write,
		Peek:  ram.Read,
		Poke:  ram.Poke,
	})
}

// InstallROM is a convenience function that installs a ROM area. Writes to
// the area are silently ignored.
func (m *Map) InstallROM(name string, start uint16, end uint16, rom *ROM) error {
	return m.Install(Range{
		Name:  name,
		Start: start,
		End:   end,
		Read:  rom.Read,
		Write: NopWrite,
		Peek:  rom.Read,
		Poke:  rom.Poke,
	})
}

func (m *Map) find(address uint16) (*Range, uint16) {
	for i := range m.ranges {
		if o, ok := m.ranges[i].match(address); ok {
			return &m.ranges[i], o
		}
	}
	return nil, 0
}

func (m *Map) addressError(address uint16) {
	if m.logged[address] {
		return
	}
	m.logged[address] = true
	logger.Log(m.env, "bus", curated.Errorf(AddressError, address))
}

func (m *Map) openBus() uint8 {
	if m.env != nil && m.env.Prefs.RandomPins.Get().(bool) {
		return uint8(m.env.Random.Intn(0x100))
	}
	return m.lastData
}

// Read implements the CPUBus interface.
func (m *Map) Read(address uint16) uint8 {
	r, o := m.find(address)
	if r == nil || r.Read == nil {
		m.addressError(address)
		return m.openBus()
	}
	m.lastData = r.Read(o)
	return m.lastData
}

// Write implements the CPUBus interface.
func (m *Map) Write(address uint16, data uint8) {
	m.lastData = data
	r, o := m.find(address)
	if r == nil || r.Write == nil {
		m.addressError(address)
		return
	}
	r.Write(o, data)
}

// Peek implements the DebuggerBus interface.
func (m *Map) Peek(address uint16) (uint8, error) {
	r, o := m.find(address)
	if r == nil {
		return 0, curated.Errorf(AddressError, address)
	}
	if r.Peek == nil {
		return 0, curated.Errorf(NoDebugAccess, address)
	}
	return r.Peek(o), nil
}

// Poke implements the DebuggerBus interface.
func (m *Map) Poke(address uint16, value uint8) error {
	r, o := m.find(address)
	if r == nil {
		return curated.Errorf(AddressError, address)
	}
	if r.Poke == nil {
		return curated.Errorf(NoDebugAccess, address)
	}
	return r.Poke(o, value)
}
