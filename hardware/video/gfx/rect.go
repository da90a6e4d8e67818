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

package gfx

import "fmt"

// Rect is a rectangle with inclusive bounds.
type Rect struct {
	MinX, MaxX int
	MinY, MaxY int
}

// NewRect is a convenience function to create a Rect from a position and
// size.
func NewRect(x, y, width, height int) Rect {
	return Rect{MinX: x, MaxX: x + width - 1, MinY: y, MaxY: y + height - 1}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.MinX, r.MinY, r.MaxX, r.MaxY)
}

// Width of the rectangle.
func (r Rect) Width() int {
	return r.MaxX - r.MinX + 1
}

// Height of the rectangle.
func (r Rect) Height() int {
	return r.MaxY - r.MinY + 1
}

// Empty is true if the rectangle has no area.
func (r Rect) Empty() bool {
	return r.MaxX < r.MinX || r.MaxY < r.MinY
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Intersect returns the area common to both rectangles. The result may be
// empty.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		MinX: max(r.MinX, o.MinX),
		MaxX: min(r.MaxX, o.MaxX),
		MinY: max(r.MinY, o.MinY),
		MaxY: min(r.MaxY, o.MaxY),
	}
}

// Overlaps is true if the two rectangles share any area.
func (r Rect) Overlaps(o Rect) bool {
	return !r.Intersect(o).Empty()
}
