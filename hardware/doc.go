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

// Package hardware is the base package for the arcade emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Machine type is the root of the emulation and contains references to
// all the sub-systems: the memory and I/O maps, the CPU, the audio mixer and
// its streams, the sound chips, the palette, the screen and the graphics
// object manager. The game specific parts of a machine are supplied by a
// Driver.
//
// The emulation is run one video frame at a time with RunFrame(). The CPU
// and any timers run for the duration of the frame, after which the screen
// is refreshed by the driver and the audio for the frame is mixed.
package hardware
