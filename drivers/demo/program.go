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

package demo

// Memory map.
const (
	romStart    = 0x0000
	romEnd      = 0x1fff
	vramStart   = 0x4000
	cramStart   = 0x4400
	spriteStart = 0x4800
	latchAddr   = 0x5000
	ramStart    = 0x6000
	ramEnd      = 0x67ff
	slapBase    = 0x8000
)

// I/O ports. ports are mirrored through the upper byte of the address.
const (
	portPSG       = 0x00
	portDAC       = 0x01
	portCVSDDigit = 0x02
	portTicket    = 0x03
	portCVSDClock = 0x04
	portIRQAck    = 0x07
)

// the address of the frame counter in RAM.
const counterAddr = ramStart

// irqVector is the address of the IM 1 interrupt handler.
const irqVector = 0x0038

var mainProgram = []uint8{
	0xf3,             // DI
	0x31, 0x00, 0x68, // LD SP,6800h
	0xed, 0x56, // IM 1
	0x3e, 0x8e, // LD A,8Eh ; tone 0, low bits
	0xd3, portPSG, // OUT (PSG),A
	0x3e, 0x0f, // LD A,0Fh ; tone 0, high bits
	0xd3, portPSG, // OUT (PSG),A
	0x3e, 0x94, // LD A,94h ; tone 0 attenuation
	0xd3, portPSG, // OUT (PSG),A
	0xfb,       // EI
	0x76,       // HALT
	0x18, 0xfd, // JR -3
}

var irqHandler = []uint8{
	0xf5,             // PUSH AF
	0x3a, 0x00, 0x60, // LD A,(counter)
	0x3c,             // INC A
	0x32, 0x00, 0x60, // LD (counter),A
	0xd3, portDAC, // OUT (DAC),A
	0xd3, portTicket, // OUT (TICKET),A
	0xd3, portCVSDDigit, // OUT (CVSD digit),A
	0xd3, portCVSDClock, // OUT (CVSD clock),A
	0x32, 0x81, 0x48, // LD (sprite 0 x),A
	0x32, 0x00, 0x40, // LD (tile 0),A
	0x32, 0x00, 0x50, // LD (latch),A
	0x3a, 0x00, 0x80, // LD A,(slapstic window)
	0xd3, portIRQAck, // OUT (IRQ ack),A
	0xf1, // POP AF
	0xfb, // EI
	0xc9, // RET
}

// programROM returns the contents of the program ROM.
func programROM() []uint8 {
	rom := make([]uint8, romEnd-romStart+1)
	copy(rom, mainProgram)
	copy(rom[irqVector:], irqHandler)
	return rom
}
