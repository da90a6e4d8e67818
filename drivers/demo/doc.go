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

// Package demo is a small arcade machine used to exercise the emulation
// core. It has a Z80 running a short program from ROM, a vertical monitor, a
// scrolling tilemap, Namco style sprites, three kinds of sound chip, a sound
// latch, a ticket dispenser and a slapstic protected ROM window.
//
// The program sets up a tone on the SN76496 and then waits for the VBLANK
// interrupt. Every interrupt increments a counter which is written to the
// DAC, the HC55516, the ticket dispenser, the sound latch, the first tile of
// the tilemap and the x position of the first sprite. The interrupt is
// acknowledged by a write to an I/O port.
//
// The graphics ROMs are generated when the driver is created.
package demo
