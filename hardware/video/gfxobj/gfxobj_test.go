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

package gfxobj_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/arcadecore/curated"
	"github.com/jetsetilly/arcadecore/environment"
	"github.com/jetsetilly/arcadecore/hardware/preferences"
	"github.com/jetsetilly/arcadecore/hardware/video/gfx"
	"github.com/jetsetilly/arcadecore/hardware/video/gfxobj"
	"github.com/jetsetilly/arcadecore/hardware/video/palette"
	"github.com/jetsetilly/arcadecore/test"
)

func newEnv(t *testing.T) *environment.Environment {
	t.Helper()
	dir := t.TempDir()
	p, err := preferences.NewPreferencesWithPath(filepath.Join(dir, "prefs"), filepath.Join(dir, "levels"))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)
	return env
}

// four 1x1 elements where the pixel is the code plus one
func tiles(t *testing.T) *gfx.Element {
	t.Helper()
	e, err := gfx.NewElement(1, 1, 3, []uint8{1, 2, 3, 4})
	test.DemandSuccess(t, err)
	return e
}

func equalOrder(t *testing.T, order []int, expected ...int) {
	t.Helper()
	if !test.ExpectEquality(t, len(order), len(expected)) {
		return
	}
	for i := range order {
		test.ExpectEquality(t, order[i], expected[i], i)
	}
}

func TestCreate(t *testing.T) {
	m := gfxobj.NewManager(newEnv(t), gfx.NewRect(0, 0, 8, 8))

	_, err := m.Create(0, 1, nil)
	test.ExpectSuccess(t, curated.Is(err, gfxobj.ListError))
	_, err = m.Create(1, 0, nil)
	test.ExpectFailure(t, err)

	def := &gfxobj.Object{Code: 3, Priority: 1}
	l, err := m.Create(4, 2, def)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, l.Len(), 4)
	test.ExpectEquality(t, l.Object(3).Code, 3)
	test.ExpectSuccess(t, l.Object(3).Dirty)
	test.ExpectSuccess(t, l.Object(4) == nil)
	test.ExpectEquality(t, m.Lists(), 1)

	m.Close()
	test.ExpectEquality(t, m.Lists(), 0)
}

func TestSortOrder(t *testing.T) {
	m := gfxobj.NewManager(newEnv(t), gfx.NewRect(0, 0, 8, 8))
	l, err := m.Create(3, 3, &gfxobj.Object{Gfx: tiles(t)})
	test.DemandSuccess(t, err)

	for i, p := range []int{2, 0, 1} {
		l.Object(i).Priority = p
	}

	m.Update()
	equalOrder(t, l.DrawOrder(), 1, 2, 0)

	l.SetSort(gfxobj.DoSort | gfxobj.SortPriorityBack)
	m.Update()
	equalOrder(t, l.DrawOrder(), 0, 2, 1)

	// objects with the same priority
	for i := 0; i < 3; i++ {
		l.Object(i).Priority = 0
	}
	l.SetSort(gfxobj.SortDefault)
	m.Update()
	equalOrder(t, l.DrawOrder(), 0, 1, 2)

	l.SetSort(gfxobj.DoSort | gfxobj.SortObjectBack)
	m.Update()
	equalOrder(t, l.DrawOrder(), 2, 1, 0)

	// priorities outside the range of the list are clamped
	l.Object(0).Priority = 10
	l.SetSort(gfxobj.SortDefault)
	m.Update()
	equalOrder(t, l.DrawOrder(), 1, 2, 0)
}

func TestOffscreen(t *testing.T) {
	m := gfxobj.NewManager(newEnv(t), gfx.NewRect(0, 0, 8, 8))
	l, err := m.Create(2, 1, &gfxobj.Object{Gfx: tiles(t)})
	test.DemandSuccess(t, err)

	l.Object(1).Sx = 8
	m.Update()
	test.ExpectEquality(t, l.Object(0).Visibility(), gfxobj.Visible)
	test.ExpectEquality(t, l.Object(1).Visibility(), gfxobj.Hidden)
	equalOrder(t, l.DrawOrder(), 0)

	// changes are not noticed until the object is dirty
	l.Object(1).Sx = 7
	m.Update()
	equalOrder(t, l.DrawOrder(), 0)

	l.Object(1).Dirty = true
	m.Update()
	equalOrder(t, l.DrawOrder(), 0, 1)

	// objects without graphics are never drawn
	l.Object(0).Gfx = nil
	m.MarkAllDirty()
	m.Update()
	equalOrder(t, l.DrawOrder(), 1)
}

func TestDrawPosition(t *testing.T) {
	m := gfxobj.NewManager(newEnv(t), gfx.NewRect(0, 0, 32, 32))

	e, err := gfx.NewElement(4, 4, 1, make([]uint8, 16))
	test.DemandSuccess(t, err)

	l, err := m.Create(1, 1, &gfxobj.Object{Gfx: e, Sx: 10, Sy: 10, Width: 2, Height: 2})
	test.DemandSuccess(t, err)

	m.Update()
	x, y := l.Object(0).DrawPosition()
	test.ExpectEquality(t, x, 10)
	test.ExpectEquality(t, y, 10)
	test.ExpectEquality(t, l.Object(0).Clip(), gfx.NewRect(10, 10, 2, 2))

	// the visible area is measured from the right edge when flipped
	l.Object(0).FlipX = true
	l.Object(0).Top = 1
	l.Object(0).Dirty = true
	m.Update()
	x, y = l.Object(0).DrawPosition()
	test.ExpectEquality(t, x, 8)
	test.ExpectEquality(t, y, 9)
}

// a sub-area of a flipped and zoomed element. the offset of the sub-area
// within the element is measured before zooming
func TestDrawPositionZoomed(t *testing.T) {
	m := gfxobj.NewManager(newEnv(t), gfx.NewRect(0, 0, 64, 4))

	// 16x1 element with the left half lit
	data := make([]uint8, 16)
	for i := 0; i < 8; i++ {
		data[i] = 1
	}
	e, err := gfx.NewElement(16, 1, 1, data)
	test.DemandSuccess(t, err)

	l, err := m.Create(1, 1, &gfxobj.Object{
		Gfx:   e,
		Sx:    20,
		Width: 8,
		FlipX: true,
		Zoom:  gfx.ZoomUnity * 2,
	})
	test.DemandSuccess(t, err)

	m.Update()
	x, y := l.Object(0).DrawPosition()
	test.ExpectEquality(t, x, 4)
	test.ExpectEquality(t, y, 0)
	test.ExpectEquality(t, l.Object(0).Clip(), gfx.NewRect(20, 0, 16, 2))

	dst := gfx.NewBitmap(64, 4, gfx.Rot0)
	m.Draw(dst)

	lit := 0
	for x := 0; x < 64; x++ {
		if dst.Pix(x, 0) == 1 {
			lit++
			test.ExpectSuccess(t, x >= 20 && x < 36, x)
		}
	}
	test.ExpectEquality(t, lit, 16)
}

func TestDraw(t *testing.T) {
	m := gfxobj.NewManager(newEnv(t), gfx.NewRect(0, 0, 4, 4))
	pal := palette.NewPalette(16)
	m.SetPalette(pal)

	e := tiles(t)
	e.TotalColors = 2
	l, err := m.Create(2, 2, &gfxobj.Object{Gfx: e})
	test.DemandSuccess(t, err)

	l.Object(0).Code = 1
	l.Object(0).Priority = 1
	l.Object(1).Code = 2
	l.Object(1).Color = 1

	dst := gfx.NewBitmap(4, 4, gfx.Rot0)
	m.Update()
	m.Draw(dst)

	// object zero has the higher priority so is in front
	test.ExpectEquality(t, dst.Pix(0, 0), uint16(2))
	test.ExpectSuccess(t, pal.Used(0))
	test.ExpectSuccess(t, pal.Used(8))

	// special handler draws instead of the normal blit
	var special int
	l.Object(0).SpecialHandler = func(dst *gfx.Bitmap, obj *gfxobj.Object) bool {
		special++
		gfx.Fill(dst, 15, nil)
		return true
	}
	l.Object(0).Dirty = true
	m.Update()
	m.Draw(dst)
	test.ExpectEquality(t, special, 1)
	test.ExpectEquality(t, l.Object(0).Visibility(), gfxobj.Special)
	test.ExpectEquality(t, dst.Pix(3, 3), uint16(15))
}

func TestUnsorted(t *testing.T) {
	m := gfxobj.NewManager(newEnv(t), gfx.NewRect(0, 0, 4, 4))
	l, err := m.Create(3, 1, &gfxobj.Object{Gfx: tiles(t)})
	test.DemandSuccess(t, err)

	l.SetSort(0)
	l.SetFirst(l.Object(2))
	l.Object(2).SetNext(l.Object(0))

	m.Update()
	equalOrder(t, l.DrawOrder(), 2, 0)
}
