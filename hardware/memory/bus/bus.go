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

// Error patterns.
const (
	AddressError  = "inaccessible address (%#04x)"
	RangeError    = "invalid range (%#04x to %#04x)"
	NoDebugAccess = "no debug access at address (%#04x)"
)

// CPUBus defines the operations for the memory system when accessed from the
// CPU.
type CPUBus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// DebuggerBus defines the meta-operations for the memory system. These
// operations are outside the normal operation of the machine and do not
// trigger the side-effects of a normal access.
type DebuggerBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}

// ReadHandler is called for reads in a range. The offset is relative to the
// start of the range.
type ReadHandler func(offset uint16) uint8

// WriteHandler is called for writes in a range. The offset is relative to the
// start of the range.
type WriteHandler func(offset uint16, data uint8)

// NopWrite is a WriteHandler that ignores the write. Useful for ROM areas
// that should not log an AddressError when written to.
func NopWrite(_ uint16, _ uint8) {}
