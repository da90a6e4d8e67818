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

// SpritePriority is written to the priority bitmap for every pixel of an
// element drawn with PDrawGfx(). Elements drawn later in the same frame can
// not draw over it.
const SpritePriority = 31

// PriorityBitmap records the priority of the layers that have been drawn at
// each pixel of the screen. It should be the same size and orientation as the
// screen and cleared at the start of every frame.
//
// Tilemap layers OR their priority value into the bitmap with
// PCopyScrollBitmap(). Sprites drawn with PDrawGfx() are hidden at any pixel
// where bit n of the sprite's priority mask is set and the value in the
// priority bitmap is n.
type PriorityBitmap struct {
	bm *Bitmap
}

// NewPriorityBitmap is the preferred method of initialisation for the
// PriorityBitmap type.
func NewPriorityBitmap(width, height int, orientation Orientation) *PriorityBitmap {
	return &PriorityBitmap{
		bm: NewBitmap(width, height, orientation),
	}
}

// Clear every pixel to priority zero.
func (p *PriorityBitmap) Clear() {
	p.bm.Clear(0)
}

// Priority returns the value at the game space coordinates.
func (p *PriorityBitmap) Priority(x, y int) uint8 {
	return uint8(p.bm.Pix(x, y))
}

func (p *PriorityBitmap) or(x, y int, priority uint8) {
	p.bm.SetPix(x, y, p.bm.Pix(x, y)|uint16(priority))
}

// draw the pen unless it is hidden by the mask. the pixel is claimed whether
// it was drawn or not
func (p *PriorityBitmap) blit(dst *Bitmap, x, y int, pen uint16, mask uint32) {
	mask |= 1 << SpritePriority
	if (uint32(1)<<(p.Priority(x, y)&31))&mask == 0 {
		dst.SetPix(x, y, pen)
	}
	p.bm.SetPix(x, y, SpritePriority)
}

// PDrawGfx is the same as DrawGfx() but the element is hidden by the layers
// recorded in the priority bitmap according to the mask.
func PDrawGfx(dst *Bitmap, pri *PriorityBitmap, e *Element, code, color int, flipx, flipy bool, sx, sy int, clip *Rect, trans Transparency, transparent int, mask uint32) {
	if pri == nil {
		DrawGfx(dst, e, code, color, flipx, flipy, sx, sy, clip, trans, transparent)
		return
	}
	drawGfx(dst, pri, mask, e, code, color, flipx, flipy, sx, sy, clip, trans, transparent)
}

// PDrawGfxZoom is the same as DrawGfxZoom() but with a priority mask. See
// PDrawGfx().
func PDrawGfxZoom(dst *Bitmap, pri *PriorityBitmap, e *Element, code, color int, flipx, flipy bool, sx, sy int, clip *Rect, trans Transparency, transparent int, zoomx, zoomy int, mask uint32) {
	if pri == nil {
		DrawGfxZoom(dst, e, code, color, flipx, flipy, sx, sy, clip, trans, transparent, zoomx, zoomy)
		return
	}
	drawGfxZoom(dst, pri, mask, e, code, color, flipx, flipy, sx, sy, clip, trans, transparent, zoomx, zoomy)
}
