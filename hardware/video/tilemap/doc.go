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

// Package tilemap implements a grid of graphics elements that is drawn into a
// private bitmap. Only the cells that have been marked dirty are redrawn when
// the tilemap is updated, the private bitmap is then copied to the screen
// with scrolling.
//
// Cells are marked dirty by the video RAM write handlers of a driver. The
// contents of a cell are retrieved from the driver through the GetInfo
// callback, which is only called for dirty cells.
package tilemap
