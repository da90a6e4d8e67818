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

package sprites_test

import (
	"testing"

	"github.com/jetsetilly/arcadecore/hardware/video/gfx"
	"github.com/jetsetilly/arcadecore/hardware/video/sprites"
	"github.com/jetsetilly/arcadecore/test"
)

// eight 1x1 tiles where the pixel value is the code plus one
func tiles(t *testing.T) *gfx.Element {
	t.Helper()
	e, err := gfx.NewElement(1, 1, 4, []uint8{1, 2, 3, 4, 5, 6, 7, 8})
	test.DemandSuccess(t, err)
	return e
}

func TestSignExtend(t *testing.T) {
	test.ExpectEquality(t, sprites.SignExtend(0x1ff, 9), -1)
	test.ExpectEquality(t, sprites.SignExtend(0x0ff, 9), 255)
	test.ExpectEquality(t, sprites.SignExtend(0x100, 9), -256)
}

func TestMultiTile(t *testing.T) {
	e := tiles(t)
	l := sprites.Layout{ColStride: 1, RowStride: 2}
	dst := gfx.NewBitmap(4, 4, gfx.Rot0)

	s := sprites.Sprite{Code: 0, X: 1, Y: 1, Size: sprites.Size{W: 2, H: 2}}
	l.Draw(dst, e, []sprites.Sprite{s}, nil, gfx.TransparentPen, 0)
	test.ExpectEquality(t, dst.Pix(1, 1), uint16(1))
	test.ExpectEquality(t, dst.Pix(2, 1), uint16(2))
	test.ExpectEquality(t, dst.Pix(1, 2), uint16(3))
	test.ExpectEquality(t, dst.Pix(2, 2), uint16(4))
	test.ExpectEquality(t, dst.Pix(0, 0), uint16(0))

	// flipping swaps the tiles as well as the pixels
	s.FlipX = true
	l.Draw(dst, e, []sprites.Sprite{s}, nil, gfx.TransparentPen, 0)
	test.ExpectEquality(t, dst.Pix(1, 1), uint16(2))
	test.ExpectEquality(t, dst.Pix(2, 1), uint16(1))

	s.FlipX = false
	s.FlipY = true
	l.Draw(dst, e, []sprites.Sprite{s}, nil, gfx.TransparentPen, 0)
	test.ExpectEquality(t, dst.Pix(1, 1), uint16(3))
	test.ExpectEquality(t, dst.Pix(1, 2), uint16(1))
}

func TestWrap(t *testing.T) {
	e := tiles(t)
	l := sprites.Layout{WrapX: 4}
	dst := gfx.NewBitmap(4, 1, gfx.Rot0)

	s := sprites.Sprite{Code: 4, X: 3, Size: sprites.Size{W: 2, H: 1}}
	l.Draw(dst, e, []sprites.Sprite{s}, nil, gfx.Opaque, 0)
	test.ExpectEquality(t, dst.Pix(3, 0), uint16(5))
	test.ExpectEquality(t, dst.Pix(0, 0), uint16(6))

	// negative positions wrap to the right edge
	dst.Clear(0)
	s.X = -1
	l.Draw(dst, e, []sprites.Sprite{s}, nil, gfx.Opaque, 0)
	test.ExpectEquality(t, dst.Pix(3, 0), uint16(5))
	test.ExpectEquality(t, dst.Pix(0, 0), uint16(6))
}

func TestDecodeNamco(t *testing.T) {
	ram1 := []uint8{0x13, 0x03, 0x20, 0x01}
	ram2 := []uint8{100, 60, 10, 10}
	ram3 := []uint8{0x0c | 0x01, 0x00, 0x00, 0x02}

	spr := sprites.DecodeNamco(ram1, ram2, ram3)
	test.DemandEquality(t, len(spr), 1)

	s := spr[0]
	test.ExpectEquality(t, s.Code, 0x10)
	test.ExpectEquality(t, s.Color, 3)
	test.ExpectEquality(t, s.X, 20)
	test.ExpectEquality(t, s.Y, 224-100-16)
	test.ExpectEquality(t, s.Size, sprites.Size{W: 2, H: 2})
	test.ExpectSuccess(t, s.FlipX)
	test.ExpectFailure(t, s.FlipY)

	// x msb
	ram3[1] = 0x01
	spr = sprites.DecodeNamco(ram1, ram2, ram3)
	test.ExpectEquality(t, spr[0].X, 276)

	// horizontal doubling only clears the lowest bit of the code
	ram3[0] = 0x04
	spr = sprites.DecodeNamco(ram1, ram2, ram3)
	test.ExpectEquality(t, spr[0].Code, 0x12)
	test.ExpectEquality(t, spr[0].Y, 124)
}

func TestPriorityMask(t *testing.T) {
	e := tiles(t)
	l := sprites.Layout{}
	dst := gfx.NewBitmap(2, 1, gfx.Rot0)
	pri := gfx.NewPriorityBitmap(2, 1, gfx.Rot0)

	// a high priority layer covers the right hand pixel
	layer := gfx.NewBitmap(2, 1, gfx.Rot0)
	layer.SetPix(1, 0, 15)
	gfx.PCopyScrollBitmap(dst, pri, layer, nil, nil, nil, gfx.TransparentPen, 0, 1)

	spr := []sprites.Sprite{
		{Code: 2, X: 0, Size: sprites.Size{W: 2, H: 1}, PriorityMask: 1 << 1},
	}
	l.PDraw(dst, pri, e, spr, nil, gfx.TransparentPen, 0)
	test.ExpectEquality(t, dst.Pix(0, 0), uint16(3))
	test.ExpectEquality(t, dst.Pix(1, 0), uint16(15))

	// the same sprite in front of the layer
	pri.Clear()
	gfx.PCopyScrollBitmap(dst, pri, layer, nil, nil, nil, gfx.TransparentPen, 0, 1)
	spr[0].PriorityMask = 0
	l.PDraw(dst, pri, e, spr, nil, gfx.TransparentPen, 0)
	test.ExpectEquality(t, dst.Pix(1, 0), uint16(4))
}
