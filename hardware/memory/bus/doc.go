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

// Package bus implements the memory bus of the emulated machine. A Map routes
// CPU reads and writes to handler functions registered for address ranges.
//
// Ranges are checked in the order they were installed and the first matching
// range handles the access. The offset passed to a handler is the address
// relative to the start of the range, after the mirror bits have been
// removed. For example, a range for 0x1000 to 0x10ff with a Mirror of 0x0100
// will pass an offset of 0x10 for both 0x1010 and 0x1110.
//
// Addresses with no matching range (or a range with no handler for the
// direction of the access) are not errors. A read returns the last value seen
// on the data bus, or a random value if the RandomPins preference is set. A
// write is dropped. In both cases an AddressError is logged the first time the
// address is accessed.
package bus
