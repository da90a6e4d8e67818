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

package demo

import (
	"github.com/jetsetilly/arcadecore/hardware/video/gfx"
)

func offsets(n int, step int) []int {
	o := make([]int, n)
	for i := range o {
		o[i] = i * step
	}
	return o
}

// 8x8 characters with two bit planes stored one after the other.
var charLayout = gfx.Layout{
	Width:         8,
	Height:        8,
	Total:         256,
	Planes:        2,
	PlaneOffset:   []int{0, 64},
	XOffset:       offsets(8, 1),
	YOffset:       offsets(8, 8),
	CharIncrement: 128,
}

// 16x16 sprites with two bit planes stored one after the other.
var spriteLayout = gfx.Layout{
	Width:         16,
	Height:        16,
	Total:         64,
	Planes:        2,
	PlaneOffset:   []int{0, 256},
	XOffset:       offsets(16, 1),
	YOffset:       offsets(16, 16),
	CharIncrement: 512,
}

// encode is the inverse of gfx.Decode(). It is used to build graphics ROMs
// from a pixel function.
func encode(l gfx.Layout, pixel func(code, x, y int) uint8) []uint8 {
	rom := make([]uint8, (l.Total*l.CharIncrement+7)/8)
	for n := 0; n < l.Total; n++ {
		for y := 0; y < l.Height; y++ {
			for x := 0; x < l.Width; x++ {
				p := pixel(n, x, y)
				for plane := 0; plane < l.Planes; plane++ {
					if p&(1<<(l.Planes-1-plane)) == 0 {
						continue
					}
					bit := n*l.CharIncrement + l.PlaneOffset[plane] + l.YOffset[y] + l.XOffset[x]
					rom[bit/8] |= 0x80 >> (bit % 8)
				}
			}
		}
	}
	return rom
}

// characters are diagonal stripes whose spacing depends on the code.
func charPixel(code, x, y int) uint8 {
	return uint8(((x + y*(code&0x07)) >> (code >> 6)) & 0x03)
}

// sprites are rings. the ring colour depends on the code.
func spritePixel(code, x, y int) uint8 {
	dx := 2*x - 15
	dy := 2*y - 15
	d := dx*dx + dy*dy
	switch {
	case d < 64:
		return 0
	case d < 144:
		return uint8(1 + code%3)
	case d < 225:
		return 3
	}
	return 0
}

func decodeGraphics() (*gfx.Element, *gfx.Element, error) {
	chars, err := gfx.Decode(encode(charLayout, charPixel), charLayout)
	if err != nil {
		return nil, nil, err
	}
	chars.ColorBase = 0
	chars.TotalColors = 8

	spr, err := gfx.Decode(encode(spriteLayout, spritePixel), spriteLayout)
	if err != nil {
		return nil, nil, err
	}
	spr.ColorBase = 32
	spr.TotalColors = 8

	return chars, spr, nil
}
