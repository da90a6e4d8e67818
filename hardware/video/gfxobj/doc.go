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

// Package gfxobj is a manager for lists of drawable objects. An object is
// usually a sprite but can also stand in for something else, such as a
// tilemap, through its special handler. Objects are drawn in an order
// decided by their priority so that sprites and playfields can be
// interleaved.
//
// Lists are created with Manager.Create() and are owned by the Manager. The
// owner of the Manager is the machine, there is no global list of lists.
//
// Every frame the driver changes objects and marks them dirty, calls
// Manager.Update() to recalculate the visibility and draw order and then
// Manager.Draw() to draw the objects.
package gfxobj
