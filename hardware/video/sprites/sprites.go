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

// Package sprites draws hardware sprite tables. A sprite is a rectangle of
// one or more tiles taken from a graphics element. The tiles of a large
// sprite are placed so that flipping the sprite flips the whole rectangle
// and not only the individual tiles.
package sprites

import (
	"fmt"

	"github.com/jetsetilly/arcadecore/hardware/video/gfx"
)

// Size of a sprite in tiles.
type Size struct {
	W int
	H int
}

// Sprite is a single decoded entry in a sprite table.
type Sprite struct {
	// code of the top left tile
	Code  int
	Color int

	// top left position in game space
	X int
	Y int

	// size in tiles. a zero size is treated as a single tile
	Size Size

	FlipX bool
	FlipY bool

	// layers in the priority bitmap that the sprite is hidden behind. only
	// used by PDraw()
	PriorityMask uint32
}

func (s Sprite) String() string {
	return fmt.Sprintf("%#04x (%d,%d) %dx%d", s.Code, s.X, s.Y, s.Size.W, s.Size.H)
}

// Layout describes how the tiles of a multi-tile sprite are arranged in the
// graphics element and how the screen wraps.
type Layout struct {
	// code offset between adjacent tiles in a row and between rows
	ColStride int
	RowStride int

	// size classes selected by the size bits of the sprite table
	Sizes []Size

	// positions at or beyond these values reappear at the opposite edge. a
	// value of zero means no wrapping
	WrapX int
	WrapY int
}

// SizeClass returns the size for the size bits. Out of range values are a
// single tile.
func (l Layout) SizeClass(bits int) Size {
	if bits < 0 || bits >= len(l.Sizes) {
		return Size{W: 1, H: 1}
	}
	return l.Sizes[bits]
}

// SignExtend treats the low bits of v as a signed number.
func SignExtend(v int, bits int) int {
	m := 1 << (bits - 1)
	v &= (1 << bits) - 1
	return (v ^ m) - m
}

// Draw the sprites to the destination bitmap in slice order. Later sprites
// appear in front of earlier sprites.
func (l Layout) Draw(dst *gfx.Bitmap, e *gfx.Element, sprites []Sprite, clip *gfx.Rect, trans gfx.Transparency, transparent int) {
	if e == nil {
		return
	}
	for _, s := range sprites {
		l.draw(dst, e, s, clip, trans, transparent)
	}
}

// PDraw is the same as Draw() but each sprite is hidden behind the layers
// selected by its PriorityMask. Sprites claim the pixels of the priority
// bitmap as they are drawn so sprites earlier in the slice appear in front.
func (l Layout) PDraw(dst *gfx.Bitmap, pri *gfx.PriorityBitmap, e *gfx.Element, sprites []Sprite, clip *gfx.Rect, trans gfx.Transparency, transparent int) {
	if e == nil {
		return
	}
	for _, s := range sprites {
		l.Tiles(s, e.Width, e.Height, func(code, x, y int) {
			gfx.PDrawGfx(dst, pri, e, code, s.Color, s.FlipX, s.FlipY, x, y, clip, trans, transparent, s.PriorityMask)
		})
	}
}

// tile positions that are drawn for a coordinate, taking screen wrapping into
// account.
func wrapped(v int, size int, wrap int) []int {
	if wrap <= 0 {
		return []int{v}
	}
	v %= wrap
	if v < 0 {
		v += wrap
	}
	if v+size > wrap {
		return []int{v, v - wrap}
	}
	return []int{v}
}

// Tiles calls fn with the code and top left position of every tile in the
// sprite. A tile that straddles a wrapping edge is reported once for each
// edge.
func (l Layout) Tiles(s Sprite, tileW, tileH int, fn func(code, x, y int)) {
	w := max(s.Size.W, 1)
	h := max(s.Size.H, 1)

	colStride := l.ColStride
	if colStride == 0 {
		colStride = 1
	}
	rowStride := l.RowStride
	if rowStride == 0 {
		rowStride = w
	}

	for row := 0; row < h; row++ {
		ty := row
		if s.FlipY {
			ty = h - 1 - row
		}
		for col := 0; col < w; col++ {
			tx := col
			if s.FlipX {
				tx = w - 1 - col
			}
			code := s.Code + col*colStride + row*rowStride
			for _, x := range wrapped(s.X+tx*tileW, tileW, l.WrapX) {
				for _, y := range wrapped(s.Y+ty*tileH, tileH, l.WrapY) {
					fn(code, x, y)
				}
			}
		}
	}
}

func (l Layout) draw(dst *gfx.Bitmap, e *gfx.Element, s Sprite, clip *gfx.Rect, trans gfx.Transparency, transparent int) {
	l.Tiles(s, e.Width, e.Height, func(code, x, y int) {
		gfx.DrawGfx(dst, e, code, s.Color, s.FlipX, s.FlipY, x, y, clip, trans, transparent)
	})
}
