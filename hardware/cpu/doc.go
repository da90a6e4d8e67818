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

// Package cpu connects CPU cores to the virtual time scheduler. A core is
// driven by the scheduler through the scheduler.Executor interface, consuming
// the time between timers in whole instructions. Any time overrun by the last
// instruction is carried into the next call to Execute().
//
// Memory and I/O access by the core are routed through bus.CPUBus
// implementations, normally a bus.Map.
package cpu
