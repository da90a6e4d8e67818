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
	"github.com/jetsetilly/arcadecore/curated"
	"github.com/jetsetilly/arcadecore/hardware/memory/bus"
)

// Size of the slapstic window and of each bank.
const (
	WindowSize = 0x8000
	BankSize   = 0x2000
)

// ROMSizeError is returned by NewHandler() if the ROM data is the wrong size.
const ROMSizeError = "slapstic: rom must be %d bytes (%d)"

// Handler connects a slapstic to the ROM it protects. The window is 32K bytes
// of address space that shows one of four 8K banks. The slapstic is tweaked
// for every access, whether read or write.
type Handler struct {
	chip *Slapstic
	rom  []uint8
}

// NewHandler is the preferred method of initialisation for the Handler type.
func NewHandler(chip *Slapstic, rom []uint8) (*Handler, error) {
	if len(rom) != 4*BankSize {
		return nil, curated.Errorf(ROMSizeError, 4*BankSize, len(rom))
	}
	h := &Handler{
		chip: chip,
		rom:  make([]uint8, len(rom)),
	}
	copy(h.rom, rom)
	return h, nil
}

// Read implements the bus.ReadHandler signature.
func (h *Handler) Read(offset uint16) uint8 {
	bank := h.chip.Tweak(offset / 2)
	return h.rom[bank*BankSize+int(offset&(BankSize-1))]
}

// Write implements the bus.WriteHandler signature. The data is ignored.
func (h *Handler) Write(offset uint16, _ uint8) {
	h.chip.Tweak(offset / 2)
}

// Peek returns the data in the current bank without tweaking the chip.
func (h *Handler) Peek(offset uint16) uint8 {
	return h.rom[h.chip.Bank()*BankSize+int(offset&(BankSize-1))]
}

// Install the handler in the bus map at the base address.
func (h *Handler) Install(m *bus.Map, base uint16) error {
	return m.Install(bus.Range{
		Name:  "slapstic",
		Start: base,
		End:   base + WindowSize - 1,
		Read:  h.Read,
		Write: h.Write,
		Peek:  h.Peek,
	})
}
