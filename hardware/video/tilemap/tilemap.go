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

package tilemap

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/jetsetilly/arcadecore/hardware/video/gfx"
)

// TileInfo describes the contents of a single cell.
type TileInfo struct {
	Code  int
	Color int
	FlipX bool
	FlipY bool
}

// GetInfo returns the contents of the cell at col and row.
type GetInfo func(col, row int) TileInfo

// Tilemap is a grid of cells drawn with the same graphics element.
type Tilemap struct {
	elem    *gfx.Element
	cols    int
	rows    int
	getInfo GetInfo

	dirty  *bitset.BitSet
	bitmap *gfx.Bitmap
}

// NewTilemap is the preferred method of initialisation for the Tilemap type.
// Every cell starts dirty.
func NewTilemap(elem *gfx.Element, cols, rows int, getInfo GetInfo) *Tilemap {
	cols = max(cols, 0)
	rows = max(rows, 0)

	tm := &Tilemap{
		elem:    elem,
		cols:    cols,
		rows:    rows,
		getInfo: getInfo,
		dirty:   bitset.New(uint(cols * rows)),
	}

	w, h := 0, 0
	if elem != nil {
		w, h = cols*elem.Width, rows*elem.Height
	}
	tm.bitmap = gfx.NewBitmap(w, h, gfx.Rot0)
	tm.MarkAllDirty()

	return tm
}

func (tm *Tilemap) String() string {
	return fmt.Sprintf("%dx%d cells (%d dirty)", tm.cols, tm.rows, tm.dirty.Count())
}

// Cols returns the number of columns in the tilemap.
func (tm *Tilemap) Cols() int {
	return tm.cols
}

// Rows returns the number of rows in the tilemap.
func (tm *Tilemap) Rows() int {
	return tm.rows
}

// Bitmap returns the private bitmap. It is only up to date after a call to
// Update().
func (tm *Tilemap) Bitmap() *gfx.Bitmap {
	return tm.bitmap
}

func (tm *Tilemap) index(col, row int) (uint, bool) {
	if col < 0 || row < 0 || col >= tm.cols || row >= tm.rows {
		return 0, false
	}
	return uint(row*tm.cols + col), true
}

// MarkDirty marks a single cell for redrawing. Cells outside the tilemap are
// ignored.
func (tm *Tilemap) MarkDirty(col, row int) {
	if i, ok := tm.index(col, row); ok {
		tm.dirty.Set(i)
	}
}

// MarkIndexDirty marks a cell by its index in row major order. Convenient for
// video RAM write handlers where the offset maps directly to a cell.
func (tm *Tilemap) MarkIndexDirty(idx int) {
	if idx >= 0 && idx < tm.cols*tm.rows {
		tm.dirty.Set(uint(idx))
	}
}

// MarkAllDirty marks every cell for redrawing. Usually called when the
// palette has changed.
func (tm *Tilemap) MarkAllDirty() {
	for i := 0; i < tm.cols*tm.rows; i++ {
		tm.dirty.Set(uint(i))
	}
}

// Dirty returns true if the cell will be redrawn by the next Update().
func (tm *Tilemap) Dirty(col, row int) bool {
	if i, ok := tm.index(col, row); ok {
		return tm.dirty.Test(i)
	}
	return false
}

// Update redraws the dirty cells into the private bitmap and returns the
// number of cells that were redrawn.
func (tm *Tilemap) Update() int {
	if tm.elem == nil || tm.getInfo == nil {
		tm.dirty.ClearAll()
		return 0
	}

	n := 0
	for i, ok := tm.dirty.NextSet(0); ok; i, ok = tm.dirty.NextSet(i + 1) {
		col := int(i) % tm.cols
		row := int(i) / tm.cols
		info := tm.getInfo(col, row)
		gfx.DrawGfx(tm.bitmap, tm.elem, info.Code, info.Color, info.FlipX, info.FlipY,
			col*tm.elem.Width, row*tm.elem.Height, nil, gfx.Opaque, 0)
		n++
	}
	tm.dirty.ClearAll()

	return n
}

// Draw updates the tilemap and copies it to the destination bitmap. The
// scroll slices are as described for gfx.CopyScrollBitmap().
//
// The private bitmap holds palette pens so the transparent value for
// TransparentPen is a palette pen and not a pen index.
func (tm *Tilemap) Draw(dst *gfx.Bitmap, rowscroll []int, colscroll []int, clip *gfx.Rect, trans gfx.Transparency, transparent int) {
	tm.Update()
	gfx.CopyScrollBitmap(dst, tm.bitmap, rowscroll, colscroll, clip, trans, transparent)
}

// DrawPriority is the same as Draw() but the priority value is ORed into the
// priority bitmap for every pixel that is drawn. Sprites drawn afterwards with
// gfx.PDrawGfx() can then be placed behind the tilemap.
func (tm *Tilemap) DrawPriority(dst *gfx.Bitmap, pri *gfx.PriorityBitmap, rowscroll []int, colscroll []int, clip *gfx.Rect, trans gfx.Transparency, transparent int, priority uint8) {
	tm.Update()
	gfx.PCopyScrollBitmap(dst, pri, tm.bitmap, rowscroll, colscroll, clip, trans, transparent, priority)
}

// DrawScrolled is a convenience function for an XY scrolling tilemap.
func (tm *Tilemap) DrawScrolled(dst *gfx.Bitmap, scrollx, scrolly int, clip *gfx.Rect, trans gfx.Transparency, transparent int) {
	tm.Draw(dst, []int{scrollx}, []int{scrolly}, clip, trans, transparent)
}
