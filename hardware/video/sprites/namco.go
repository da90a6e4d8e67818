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

package sprites

// NamcoLayout is the layout of the sprites used by Super Pac-Man and related
// Namco hardware. Sprites are 16x16 and may be doubled in either direction.
var NamcoLayout = Layout{
	ColStride: 1,
	RowStride: 2,
	Sizes: []Size{
		{W: 1, H: 1},
		{W: 2, H: 1},
		{W: 1, H: 2},
		{W: 2, H: 2},
	},
}

// DecodeNamco decodes the three banks of sprite RAM used by Super Pac-Man
// style hardware. Each sprite uses two bytes in each bank:
//
//	bank 1: code, color
//	bank 2: y, x
//	bank 3: flags (flipx, flipy, size), x msb and enable
//
// Disabled sprites are not included in the result.
func DecodeNamco(ram1, ram2, ram3 []uint8) []Sprite {
	n := min(len(ram1), len(ram2), len(ram3)) / 2

	spr := make([]Sprite, 0, n)

	for i := 0; i < n; i++ {
		offs := i * 2

		if ram3[offs+1]&0x02 != 0 {
			continue
		}

		size := NamcoLayout.SizeClass(int(ram3[offs]&0x0c) >> 2)

		s := Sprite{
			Code:  int(ram1[offs]),
			Color: int(ram1[offs+1]),
			X:     int(ram2[offs+1]) - 40 + 0x100*int(ram3[offs+1]&0x01),
			Y:     28*8 - int(ram2[offs]),
			Size:  size,
			FlipX: ram3[offs]&0x01 != 0,
			FlipY: ram3[offs]&0x02 != 0,
		}

		// multi-tile sprites start on an aligned code. the y position is of
		// the bottom row
		s.Code &^= (size.W - 1) | (size.H-1)*2
		s.Y -= 16 * (size.H - 1)

		spr = append(spr, s)
	}

	return spr
}
