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

package palette_test

import (
	"image/color"
	"testing"

	"github.com/jetsetilly/arcadecore/hardware/video/palette"
	"github.com/jetsetilly/arcadecore/test"
)

func TestRecalc(t *testing.T) {
	p := palette.NewPalette(16)
	test.ExpectEquality(t, p.Len(), 16)

	// a new palette always needs a full refresh
	test.ExpectSuccess(t, p.Recalc())
	test.ExpectFailure(t, p.Recalc())

	p.ChangeColor(3, 0x10, 0x20, 0x30)
	test.ExpectSuccess(t, p.Recalc())
	test.ExpectEquality(t, p.RGB(3), color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff})

	// same colour again is not a change
	p.ChangeColor(3, 0x10, 0x20, 0x30)
	test.ExpectFailure(t, p.Recalc())

	// out of range
	p.ChangeColor(16, 0xff, 0xff, 0xff)
	test.ExpectFailure(t, p.Recalc())
	test.ExpectEquality(t, p.RGB(-1), color.RGBA{A: 0xff})
}

func TestAttributes(t *testing.T) {
	p := palette.NewPalette(4)
	p.SetAttribute(2, palette.CollisionBit)
	test.ExpectEquality(t, p.Attribute(2), uint8(palette.CollisionBit))
	test.ExpectEquality(t, p.Attribute(1), uint8(0))
	test.ExpectEquality(t, p.Attribute(100), uint8(0))
}

func TestUsedPens(t *testing.T) {
	p := palette.NewPalette(8)
	p.MarkUsed(6, 4)
	test.ExpectSuccess(t, p.Used(6))
	test.ExpectSuccess(t, p.Used(7))
	test.ExpectFailure(t, p.Used(5))
	p.ClearUsed()
	test.ExpectFailure(t, p.Used(6))

	test.ExpectEquality(t, len(p.Color()), 8)
}
