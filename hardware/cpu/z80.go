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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/arcadecore/environment"
	"github.com/jetsetilly/arcadecore/hardware/memory/bus"
	"github.com/jetsetilly/arcadecore/hardware/scheduler"
	"github.com/jetsetilly/arcadecore/logger"
	"github.com/user-none/go-chip-z80"
)

// z80Bus adapts the memory and I/O maps to the bus interface expected by the
// Z80 core.
type z80Bus struct {
	mem bus.CPUBus
	io  bus.CPUBus
}

func (b *z80Bus) Fetch(addr uint16) uint8 {
	return b.mem.Read(addr)
}

func (b *z80Bus) Read(addr uint16) uint8 {
	return b.mem.Read(addr)
}

func (b *z80Bus) Write(addr uint16, data uint8) {
	b.mem.Write(addr, data)
}

func (b *z80Bus) In(port uint16) uint8 {
	if b.io == nil {
		return 0xff
	}
	return b.io.Read(port)
}

func (b *z80Bus) Out(port uint16, data uint8) {
	if b.io == nil {
		return
	}
	b.io.Write(port, data)
}

// Z80 is a Zilog Z80 running at a fixed clock.
type Z80 struct {
	env   *environment.Environment
	core  *z80.CPU
	clock float64

	// cycles executed beyond the end of the last budget
	overrun float64

	cycles uint64

	irq    bool
	vector uint8
}

// NewZ80 is the preferred method of initialisation for the Z80 type. The I/O
// bus can be nil, in which case port reads return 0xff. Port addresses are
// sixteen bits with the upper byte taken from the address bus, so an I/O
// map will usually mirror its ranges with 0xff00.
func NewZ80(env *environment.Environment, clock float64, mem bus.CPUBus, io bus.CPUBus) *Z80 {
	c := &Z80{
		env:   env,
		clock: clock,
	}
	c.core = z80.New(&z80Bus{mem: mem, io: io})
	logger.Logf(env, "cpu", "z80 at %.0fHz", clock)
	return c
}

func (c *Z80) String() string {
	r := c.core.Registers()
	return fmt.Sprintf("PC=%#04x AF=%#04x cycles=%d", r.PC, r.AF, c.cycles)
}

// Clock returns the frequency of the CPU in Hz.
func (c *Z80) Clock() float64 {
	return c.clock
}

// Cycles returns the number of cycles executed since the last reset.
func (c *Z80) Cycles() uint64 {
	return c.cycles
}

// PC returns the value of the program counter.
func (c *Z80) PC() uint16 {
	return c.core.Registers().PC
}

// Halted returns true if the CPU is waiting for an interrupt after a HALT
// instruction.
func (c *Z80) Halted() bool {
	return c.core.Halted()
}

// Reset the CPU. The interrupt line is released.
func (c *Z80) Reset() {
	c.core.Reset()
	c.overrun = 0
	c.cycles = 0
	c.irq = false
	c.core.INT(false, 0)
}

// SetIRQ sets the state of the maskable interrupt line. The vector is the
// value placed on the data bus when the interrupt is acknowledged.
func (c *Z80) SetIRQ(asserted bool, vector uint8) {
	c.irq = asserted
	c.vector = vector
	c.core.INT(asserted, vector)
}

// IRQ returns the state of the interrupt line.
func (c *Z80) IRQ() bool {
	return c.irq
}

// Execute implements the scheduler.Executor interface. The whole budget is
// always consumed.
func (c *Z80) Execute(budget scheduler.Time) scheduler.Time {
	// the small tolerance stops rounding errors in the budget from running
	// an extra instruction
	avail := float64(budget)*c.clock - c.overrun - 1e-6

	n := 0.0
	for n < avail {
		n += float64(c.core.Step())
	}

	c.overrun = max(n-avail-1e-6, 0)
	c.cycles += uint64(n)

	return budget
}
