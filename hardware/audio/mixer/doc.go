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

// Package mixer combines the output of every sound channel of the emulated
// machine into a single PCM buffer once per video frame.
//
// Channels are allocated at start up with AllocateChannel(). There are two
// kinds of channel. Streamed channels are fed a buffer of 16-bit samples with
// PlayStreamedSample16(), usually by the streams package. Sample channels are
// given a complete waveform with PlaySample() or PlaySample16() and the mixer
// consumes it a frame at a time, optionally looping.
//
// All channels are resampled to the native sample rate with a 16.16 fixed
// point step. The resampler does not interpolate: each output sample repeats
// the most recent source sample. Resampled data is added to a pair of 32-bit
// accumulators, one for each side of the stereo field. The accumulators are
// wide enough for many channels to be summed before the result is clipped to
// 16 bits by Update().
//
// Update() must be called once per video frame. It drains exactly the
// number of samples for the frame from the accumulators, clears the drained
// cells and passes the PCM data to the attached Sink instances.
package mixer
