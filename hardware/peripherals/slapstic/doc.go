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

// Package slapstic emulates the Atari slapstic, a bank switching chip used
// to protect the program ROMs of several Atari arcade boards.
//
// The slapstic watches every access to its address window. Particular
// sequences of addresses cause the chip to select one of four 8K banks. A
// bank switch takes effect on the access following the one that selected
// it. Tweak() must therefore be called for every access, read or write, and
// the bank it returns is the bank for that access.
//
// Chips 101 to 118 are supported. The Handler type connects a chip to a
// 32K ROM window on the memory bus.
package slapstic
