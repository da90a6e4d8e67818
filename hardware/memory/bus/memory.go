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

// RAM is a simple read/write memory area.
type RAM struct {
	data []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM(size int) *RAM {
	return &RAM{data: make([]uint8, size)}
}

// Read implements the ReadHandler signature.
func (r *RAM) Read(offset uint16) uint8 {
	return r.data[int(offset)%len(r.data)]
}

// Write implements the WriteHandler signature.
func (r *RAM) Write(offset uint16, data uint8) {
	r.data[int(offset)%len(r.data)] = data
}

// Poke implements the debugging write. Never fails.
func (r *RAM) Poke(offset uint16, data uint8) error {
	r.Write(offset, data)
	return nil
}

// Data returns the underlying memory.
func (r *RAM) Data() []uint8 {
	return r.data
}

// ROM is a read only memory area.
type ROM struct {
	data []uint8
}

// NewROM is the preferred method of initialisation for the ROM type. The data
// is copied.
func NewROM(data []uint8) *ROM {
	r := &ROM{data: make([]uint8, len(data))}
	copy(r.data, data)
	return r
}

// Read implements the ReadHandler signature. Reading beyond the end of the
// data returns 0xff, as if the address lines were floating high.
func (r *ROM) Read(offset uint16) uint8 {
	if int(offset) >= len(r.data) {
		return 0xff
	}
	return r.data[offset]
}

// Poke allows the debugger to patch the ROM.
func (r *ROM) Poke(offset uint16, data uint8) error {
	if int(offset) >= len(r.data) {
		return nil
	}
	r.data[offset] = data
	return nil
}
