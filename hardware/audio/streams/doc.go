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

// Package streams sits between the sound chips and the mixer. A stream owns
// one buffer per mixer channel, sized for one video frame at the stream's
// sample rate. Sound chips call Update() when a register write is about to
// change their output, so that the samples up to the current position in the
// frame are generated with the old state. UpdateFrame() completes every
// buffer at the end of the frame and hands the data to the mixer.
//
// The position in the frame is supplied by a mixer.FrameClock. Without a
// FrameClock, Update() does nothing and all generation happens in
// UpdateFrame().
package streams
