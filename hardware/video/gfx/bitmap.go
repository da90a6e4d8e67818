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

// Orientation describes how the monitor is mounted. Transformations are
// applied in the order SwapXY, FlipX, FlipY.
type Orientation uint8

// List of Orientation bits and common combinations.
const (
	SwapXY Orientation = 1 << iota
	FlipX
	FlipY

	Rot0   Orientation = 0
	Rot90              = SwapXY | FlipX
	Rot180             = FlipX | FlipY
	Rot270             = SwapXY | FlipY
)

func (o Orientation) String() string {
	switch o {
	case Rot0:
		return "rot0"
	case Rot90:
		return "rot90"
	case Rot180:
		return "rot180"
	case Rot270:
		return "rot270"
	}
	return fmt.Sprintf("orientation (%03b)", uint8(o))
}

// Bitmap is a two dimensional grid of pens. The dimensions and coordinates of
// the Bitmap methods are in game space. The underlying storage is in screen
// space, which differs if the orientation includes SwapXY.
type Bitmap struct {
	orientation Orientation

	// game space dimensions
	width  int
	height int

	// screen space dimensions
	pitch int
	rows  int

	pix []uint16
}

// NewBitmap is the preferred method of initialisation for the Bitmap type.
// The width and height are in game space.
func NewBitmap(width, height int, orientation Orientation) *Bitmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	bm := &Bitmap{
		orientation: orientation,
		width:       width,
		height:      height,
		pitch:       width,
		rows:        height,
	}
	if orientation&SwapXY == SwapXY {
		bm.pitch, bm.rows = height, width
	}
	bm.pix = make([]uint16, width*height)

	return bm
}

func (bm *Bitmap) String() string {
	return fmt.Sprintf("%dx%d %s", bm.width, bm.height, bm.orientation)
}

// Width in game space.
func (bm *Bitmap) Width() int {
	return bm.width
}

// Height in game space.
func (bm *Bitmap) Height() int {
	return bm.height
}

// Bounds of the bitmap in game space.
func (bm *Bitmap) Bounds() Rect {
	return Rect{MinX: 0, MaxX: bm.width - 1, MinY: 0, MaxY: bm.height - 1}
}

// Orientation of the bitmap.
func (bm *Bitmap) Orientation() Orientation {
	return bm.orientation
}

// screen converts game space coordinates to an index into the pix array.
func (bm *Bitmap) screen(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= bm.width || y >= bm.height {
		return 0, false
	}
	if bm.orientation&SwapXY == SwapXY {
		x, y = y, x
	}
	if bm.orientation&FlipX == FlipX {
		x = bm.pitch - 1 - x
	}
	if bm.orientation&FlipY == FlipY {
		y = bm.rows - 1 - y
	}
	return y*bm.pitch + x, true
}

// Pix returns the pen at the game space coordinates. Coordinates outside the
// bitmap return pen zero.
func (bm *Bitmap) Pix(x, y int) uint16 {
	if i, ok := bm.screen(x, y); ok {
		return bm.pix[i]
	}
	return 0
}

// SetPix sets the pen at the game space coordinates. Coordinates outside the
// bitmap are ignored.
func (bm *Bitmap) SetPix(x, y int, pen uint16) {
	if i, ok := bm.screen(x, y); ok {
		bm.pix[i] = pen
	}
}

// Clear sets every pixel to the pen.
func (bm *Bitmap) Clear(pen uint16) {
	for i := range bm.pix {
		bm.pix[i] = pen
	}
}

// ScreenSize returns the dimensions of the bitmap as seen on the monitor.
func (bm *Bitmap) ScreenSize() (int, int) {
	return bm.pitch, bm.rows
}

// ScreenRow returns a row of pixels as seen on the monitor. The slice should
// not be modified.
func (bm *Bitmap) ScreenRow(y int) []uint16 {
	if y < 0 || y >= bm.rows {
		return nil
	}
	return bm.pix[y*bm.pitch : (y+1)*bm.pitch]
}
