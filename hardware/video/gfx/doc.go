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

// Package gfx is the low level graphics layer. It provides the Bitmap type,
// decoding of graphics ROM data into Elements and the drawing functions used
// by the tilemap, sprite and object packages.
//
// All drawing coordinates are in game space. The Orientation of the
// destination Bitmap is applied as each pixel is written, so drivers never
// need to know how the monitor was mounted in the cabinet.
//
// Missing graphics data is never an error. Reading outside of an Element or
// Bitmap returns pen zero and writes outside of a Bitmap are ignored.
package gfx
