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

// Package scheduler implements the virtual time service for the emulated
// machine. Callbacks are scheduled at a delay from the current virtual time
// and are called synchronously by Run() when virtual time reaches them.
//
// Timers with the same due time are fired in the order they were scheduled.
// A callback may schedule or cancel other timers, including itself.
//
// Between timers, the optional Executor is given the time remaining until
// the next timer is due. This is how a CPU core is interleaved with timed
// events.
package scheduler
