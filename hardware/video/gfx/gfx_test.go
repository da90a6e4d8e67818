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

package gfx_test

import (
	"testing"

	"github.com/jetsetilly/arcadecore/hardware/video/gfx"
	"github.com/jetsetilly/arcadecore/test"
)

func TestRect(t *testing.T) {
	r := gfx.NewRect(2, 3, 4, 5)
	test.ExpectEquality(t, r, gfx.Rect{MinX: 2, MaxX: 5, MinY: 3, MaxY: 7})
	test.ExpectEquality(t, r.Width(), 4)
	test.ExpectEquality(t, r.Height(), 5)
	test.ExpectSuccess(t, r.Contains(5, 7))
	test.ExpectFailure(t, r.Contains(6, 7))

	o := gfx.NewRect(0, 0, 3, 4)
	test.ExpectEquality(t, r.Intersect(o), gfx.Rect{MinX: 2, MaxX: 2, MinY: 3, MaxY: 3})
	test.ExpectSuccess(t, r.Overlaps(o))
	test.ExpectFailure(t, r.Overlaps(gfx.NewRect(10, 10, 1, 1)))
	test.ExpectSuccess(t, gfx.NewRect(0, 0, 0, 0).Empty())
}

func TestOrientation(t *testing.T) {
	bm := gfx.NewBitmap(4, 3, gfx.Rot0)
	bm.SetPix(1, 2, 7)
	test.ExpectEquality(t, bm.ScreenRow(2)[1], uint16(7))
	test.ExpectEquality(t, bm.Pix(1, 2), uint16(7))

	bm = gfx.NewBitmap(4, 3, gfx.SwapXY)
	w, h := bm.ScreenSize()
	test.ExpectEquality(t, w, 3)
	test.ExpectEquality(t, h, 4)
	bm.SetPix(1, 2, 7)
	test.ExpectEquality(t, bm.ScreenRow(1)[2], uint16(7))

	bm = gfx.NewBitmap(4, 3, gfx.Rot90)
	bm.SetPix(1, 2, 7)
	test.ExpectEquality(t, bm.ScreenRow(1)[0], uint16(7))
	test.ExpectEquality(t, bm.Pix(1, 2), uint16(7))

	bm = gfx.NewBitmap(4, 3, gfx.Rot180)
	bm.SetPix(0, 0, 9)
	test.ExpectEquality(t, bm.ScreenRow(2)[3], uint16(9))

	// bounds checking
	bm.SetPix(10, 10, 1)
	bm.SetPix(-1, 0, 1)
	test.ExpectEquality(t, bm.Pix(-1, 0), uint16(0))
	test.ExpectEquality(t, len(bm.ScreenRow(3)), 0)

	test.ExpectEquality(t, gfx.Rot270.String(), "rot270")
}

func linearOffsets(n int, step int) []int {
	o := make([]int, n)
	for i := range o {
		o[i] = i * step
	}
	return o
}

func TestDecode(t *testing.T) {
	l := gfx.Layout{
		Width:         8,
		Height:        1,
		Total:         2,
		Planes:        2,
		PlaneOffset:   []int{0, 8},
		XOffset:       linearOffsets(8, 1),
		YOffset:       []int{0},
		CharIncrement: 16,
	}

	// the second element has no data in the ROM
	e, err := gfx.Decode([]uint8{0xff, 0x0f}, l)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, e.Granularity, 4)

	for x := 0; x < 4; x++ {
		test.ExpectEquality(t, e.Pixel(0, x, 0), uint8(2), x)
	}
	for x := 4; x < 8; x++ {
		test.ExpectEquality(t, e.Pixel(0, x, 0), uint8(3), x)
	}
	test.ExpectEquality(t, e.Pixel(1, 0, 0), uint8(0))
	test.ExpectEquality(t, e.Pixel(0, 8, 0), uint8(0))

	usage, ok := e.PenUsage(0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, usage, uint32(0x0c))
	usage, _ = e.PenUsage(1)
	test.ExpectEquality(t, usage, uint32(0x01))

	// invalid layouts
	l.Planes = 3
	_, err = gfx.Decode(nil, l)
	test.ExpectFailure(t, err)
	l.Planes = 2
	l.XOffset = l.XOffset[:4]
	_, err = gfx.Decode(nil, l)
	test.ExpectFailure(t, err)
}

// two 2x2 elements. element 0 has a transparent pixel in the top left.
func testElement(t *testing.T) *gfx.Element {
	t.Helper()
	e, err := gfx.NewElement(2, 2, 2, []uint8{
		0, 1,
		2, 3,
		0, 0,
		0, 0,
	})
	test.DemandSuccess(t, err)
	e.ColorBase = 16
	e.TotalColors = 4
	return e
}

func TestDrawGfx(t *testing.T) {
	e := testElement(t)
	bm := gfx.NewBitmap(4, 4, gfx.Rot0)
	bm.Clear(99)

	// color 1 is pens 20 to 23
	gfx.DrawGfx(bm, e, 0, 1, false, false, 1, 1, nil, gfx.TransparentPen, 0)
	test.ExpectEquality(t, bm.Pix(1, 1), uint16(99))
	test.ExpectEquality(t, bm.Pix(2, 1), uint16(21))
	test.ExpectEquality(t, bm.Pix(1, 2), uint16(22))
	test.ExpectEquality(t, bm.Pix(2, 2), uint16(23))

	// opaque and flipped in both directions
	gfx.DrawGfx(bm, e, 0, 0, true, true, 0, 0, nil, gfx.Opaque, 0)
	test.ExpectEquality(t, bm.Pix(0, 0), uint16(19))
	test.ExpectEquality(t, bm.Pix(1, 0), uint16(18))
	test.ExpectEquality(t, bm.Pix(0, 1), uint16(17))
	test.ExpectEquality(t, bm.Pix(1, 1), uint16(16))

	// clipped to a single pixel
	bm.Clear(99)
	clip := gfx.NewRect(3, 3, 1, 1)
	gfx.DrawGfx(bm, e, 0, 0, false, false, 2, 2, &clip, gfx.Opaque, 0)
	test.ExpectEquality(t, bm.Pix(2, 2), uint16(99))
	test.ExpectEquality(t, bm.Pix(3, 3), uint16(19))

	// a fully transparent element draws nothing
	bm.Clear(99)
	gfx.DrawGfx(bm, e, 1, 0, false, false, 0, 0, nil, gfx.TransparentPen, 0)
	test.ExpectEquality(t, bm.Pix(0, 0), uint16(99))

	// transparency by pen mask
	gfx.DrawGfx(bm, e, 0, 0, false, false, 0, 0, nil, gfx.TransparentPens, 0x03)
	test.ExpectEquality(t, bm.Pix(1, 0), uint16(99))
	test.ExpectEquality(t, bm.Pix(0, 1), uint16(18))

	// transparency by resolved palette pen
	bm.Clear(99)
	gfx.DrawGfx(bm, e, 0, 0, false, false, 0, 0, nil, gfx.TransparentColor, 19)
	test.ExpectEquality(t, bm.Pix(1, 1), uint16(99))
	test.ExpectEquality(t, bm.Pix(0, 0), uint16(16))

	// colour table
	e.ColorTable = []uint16{100, 101, 102, 103}
	e.TotalColors = 1
	gfx.DrawGfx(bm, e, 0, 0, false, false, 0, 0, nil, gfx.Opaque, 0)
	test.ExpectEquality(t, bm.Pix(1, 1), uint16(103))

	// nil elements are ignored
	gfx.DrawGfx(bm, nil, 0, 0, false, false, 0, 0, nil, gfx.Opaque, 0)
}

func TestDrawGfxOrientation(t *testing.T) {
	e := testElement(t)
	bm := gfx.NewBitmap(4, 4, gfx.Rot90)
	gfx.DrawGfx(bm, e, 0, 0, false, false, 0, 0, nil, gfx.Opaque, 0)

	// game space is unchanged by the orientation
	test.ExpectEquality(t, bm.Pix(1, 0), uint16(17))
	test.ExpectEquality(t, bm.Pix(0, 1), uint16(18))

	// but the screen is rotated
	test.ExpectEquality(t, bm.ScreenRow(0)[3], uint16(16))
	test.ExpectEquality(t, bm.ScreenRow(1)[3], uint16(17))
	test.ExpectEquality(t, bm.ScreenRow(0)[2], uint16(18))
}

func patternBitmap() *gfx.Bitmap {
	src := gfx.NewBitmap(4, 4, gfx.Rot0)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetPix(x, y, uint16(y*4+x))
		}
	}
	return src
}

func TestCopyBitmap(t *testing.T) {
	src := patternBitmap()
	dst := gfx.NewBitmap(4, 4, gfx.Rot0)

	gfx.CopyBitmap(dst, src, true, false, 0, 0, nil, gfx.Opaque, 0)
	test.ExpectEquality(t, dst.Pix(0, 0), uint16(3))
	test.ExpectEquality(t, dst.Pix(3, 1), uint16(4))

	// pen zero is transparent
	dst.Clear(99)
	gfx.CopyBitmap(dst, src, false, false, 1, 1, nil, gfx.TransparentPen, 0)
	test.ExpectEquality(t, dst.Pix(1, 1), uint16(99))
	test.ExpectEquality(t, dst.Pix(2, 1), uint16(1))
	test.ExpectEquality(t, dst.Pix(0, 0), uint16(99))
}

func TestCopyScrollBitmap(t *testing.T) {
	src := patternBitmap()
	dst := gfx.NewBitmap(4, 4, gfx.Rot0)

	// XY scrolling
	gfx.CopyScrollBitmap(dst, src, []int{1}, []int{-1}, nil, gfx.Opaque, 0)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			sx := (x + 3) % 4
			sy := (y + 1) % 4
			test.ExpectEquality(t, dst.Pix(x, y), uint16(sy*4+sx), x, y)
		}
	}

	// row scrolling. the bottom half is scrolled by two
	gfx.CopyScrollBitmap(dst, src, []int{0, 2}, nil, nil, gfx.Opaque, 0)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			sx := x
			if y >= 2 {
				sx = (x + 2) % 4
			}
			test.ExpectEquality(t, dst.Pix(x, y), uint16(y*4+sx), x, y)
		}
	}

	// column scrolling. the right half is scrolled by one
	gfx.CopyScrollBitmap(dst, src, nil, []int{0, 0, 1, 1}, nil, gfx.Opaque, 0)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			sy := y
			if x >= 2 {
				sy = (y + 3) % 4
			}
			test.ExpectEquality(t, dst.Pix(x, y), uint16(sy*4+x), x, y)
		}
	}

	// no scrolling is a plain copy
	dst.Clear(0)
	gfx.CopyScrollBitmap(dst, src, nil, nil, nil, gfx.Opaque, 0)
	test.ExpectEquality(t, dst.Pix(3, 3), uint16(15))
}

func TestFill(t *testing.T) {
	bm := gfx.NewBitmap(4, 4, gfx.Rot270)
	clip := gfx.NewRect(1, 1, 2, 2)
	gfx.Fill(bm, 5, &clip)
	test.ExpectEquality(t, bm.Pix(0, 0), uint16(0))
	test.ExpectEquality(t, bm.Pix(1, 1), uint16(5))
	test.ExpectEquality(t, bm.Pix(2, 2), uint16(5))
	test.ExpectEquality(t, bm.Pix(3, 2), uint16(0))

	gfx.Fill(bm, 6, nil)
	test.ExpectEquality(t, bm.Pix(3, 3), uint16(6))
}

func TestZoom(t *testing.T) {
	test.ExpectEquality(t, gfx.ZoomedSize(8, gfx.ZoomUnity), 8)
	test.ExpectEquality(t, gfx.ZoomedSize(8, 0x100), 16)
	test.ExpectEquality(t, gfx.ZoomedSize(8, 0xc0), 12)
	test.ExpectEquality(t, gfx.ZoomedSize(8, 0x40), 4)
	test.ExpectEquality(t, gfx.ZoomedSize(8, 0x20), 2)
	test.ExpectEquality(t, gfx.ZoomedSize(8, 0), 0)

	e := testElement(t)

	// magnified to twice the size
	bm := gfx.NewBitmap(8, 8, gfx.Rot0)
	gfx.DrawGfxZoom(bm, e, 0, 0, false, false, 0, 0, nil, gfx.Opaque, 0, 0x100, 0x100)
	expected := [][]uint16{
		{16, 16, 17, 17},
		{16, 16, 17, 17},
		{18, 18, 19, 19},
		{18, 18, 19, 19},
	}
	for y := range expected {
		for x := range expected[y] {
			test.ExpectEquality(t, bm.Pix(x, y), expected[y][x], x, y)
		}
	}

	// minified to half size in x only. the first column is always used
	bm.Clear(0)
	gfx.DrawGfxZoom(bm, e, 0, 0, false, false, 0, 0, nil, gfx.Opaque, 0, 0x40, gfx.ZoomUnity)
	test.ExpectEquality(t, bm.Pix(0, 0), uint16(16))
	test.ExpectEquality(t, bm.Pix(0, 1), uint16(18))
	test.ExpectEquality(t, bm.Pix(1, 0), uint16(0))

	// flipped minification uses the last column
	gfx.DrawGfxZoom(bm, e, 0, 0, true, false, 0, 0, nil, gfx.Opaque, 0, 0x40, gfx.ZoomUnity)
	test.ExpectEquality(t, bm.Pix(0, 0), uint16(17))

	// unity zoom is a normal draw
	bm.Clear(0)
	gfx.DrawGfxZoom(bm, e, 0, 0, false, false, 0, 0, nil, gfx.TransparentPen, 0, gfx.ZoomUnity, gfx.ZoomUnity)
	test.ExpectEquality(t, bm.Pix(0, 0), uint16(0))
	test.ExpectEquality(t, bm.Pix(1, 1), uint16(19))
}

func TestPriority(t *testing.T) {
	dst := gfx.NewBitmap(4, 1, gfx.Rot0)
	pri := gfx.NewPriorityBitmap(4, 1, gfx.Rot0)

	// a layer with transparent pixels at either end
	layer := gfx.NewBitmap(4, 1, gfx.Rot0)
	layer.SetPix(1, 0, 5)
	layer.SetPix(2, 0, 5)
	gfx.PCopyScrollBitmap(dst, pri, layer, nil, nil, nil, gfx.TransparentPen, 0, 2)
	test.ExpectEquality(t, pri.Priority(0, 0), uint8(0))
	test.ExpectEquality(t, pri.Priority(1, 0), uint8(2))
	test.ExpectEquality(t, pri.Priority(2, 0), uint8(2))

	// a sprite masked by priority two is hidden behind the opaque part of
	// the layer
	e, err := gfx.NewElement(4, 1, 1, []uint8{1, 1, 1, 1})
	test.DemandSuccess(t, err)
	e.TotalColors = 2
	gfx.PDrawGfx(dst, pri, e, 0, 0, false, false, 0, 0, nil, gfx.TransparentPen, 0, 1<<2)
	test.ExpectEquality(t, dst.Pix(0, 0), uint16(1))
	test.ExpectEquality(t, dst.Pix(1, 0), uint16(5))
	test.ExpectEquality(t, dst.Pix(2, 0), uint16(5))
	test.ExpectEquality(t, dst.Pix(3, 0), uint16(1))

	// every pixel of the sprite has been claimed, whether it was drawn or
	// not. a second sprite can not draw over the first
	for x := 0; x < 4; x++ {
		test.ExpectEquality(t, pri.Priority(x, 0), uint8(gfx.SpritePriority), x)
	}
	gfx.PDrawGfx(dst, pri, e, 0, 1, false, false, 0, 0, nil, gfx.TransparentPen, 0, 0)
	test.ExpectEquality(t, dst.Pix(0, 0), uint16(1))
	test.ExpectEquality(t, dst.Pix(1, 0), uint16(5))

	// a sprite with an empty mask is in front of the layer
	pri.Clear()
	gfx.PCopyScrollBitmap(dst, pri, layer, nil, nil, nil, gfx.TransparentPen, 0, 2)
	gfx.PDrawGfx(dst, pri, e, 0, 1, false, false, 0, 0, nil, gfx.TransparentPen, 0, 0)
	for x := 0; x < 4; x++ {
		test.ExpectEquality(t, dst.Pix(x, 0), uint16(3), x)
	}

	// zoomed sprites follow the same rule
	pri.Clear()
	gfx.PCopyScrollBitmap(dst, pri, layer, nil, nil, nil, gfx.TransparentPen, 0, 2)
	gfx.PDrawGfxZoom(dst, pri, e, 0, 0, false, false, 0, 0, nil, gfx.TransparentPen, 0, gfx.ZoomUnity/2, gfx.ZoomUnity, 1<<2)
	test.ExpectEquality(t, dst.Pix(0, 0), uint16(1))
	test.ExpectEquality(t, dst.Pix(1, 0), uint16(5))
	test.ExpectEquality(t, dst.Pix(2, 0), uint16(3))
}
