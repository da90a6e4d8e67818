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

package gfxobj

import (
	"fmt"

	"github.com/jetsetilly/arcadecore/hardware/video/gfx"
)

// Visibility of an object after it has been updated.
type Visibility int

// List of valid Visibility values.
const (
	Hidden Visibility = iota
	Visible
	Special
)

func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Visible:
		return "visible"
	case Special:
		return "special"
	}
	return "unknown visibility"
}

// SpecialHandler draws an object in place of the normal blit. It returns
// true if the object has been drawn. If it returns false the object is drawn
// normally.
type SpecialHandler func(dst *gfx.Bitmap, obj *Object) bool

// Object is a single drawable item.
type Object struct {
	Gfx   *gfx.Element
	Code  int
	Color int
	FlipX bool
	FlipY bool

	// screen position of the drawn area
	Sx int
	Sy int

	// the area of the element to draw. a zero Width or Height means the
	// whole element
	Left   int
	Top    int
	Width  int
	Height int

	// zero or gfx.ZoomUnity for no zoom
	Zoom int

	// objects with a higher priority are drawn in front. in the range zero
	// to the maximum priority of the list
	Priority int

	Transparency     gfx.Transparency
	TransparentColor int

	SpecialHandler SpecialHandler

	// the object will be recalculated by the next Update()
	Dirty bool

	// calculated by Update()
	visibility Visibility
	drawX      int
	drawY      int
	clip       gfx.Rect

	// next object in the draw order
	next *Object
}

func (obj *Object) String() string {
	return fmt.Sprintf("code=%#04x (%d,%d) pri=%d %s", obj.Code, obj.Sx, obj.Sy, obj.Priority, obj.visibility)
}

// Visibility as calculated by the last Update() of the object.
func (obj *Object) Visibility() Visibility {
	return obj.visibility
}

// DrawPosition is the position of the top left of the element such that the
// visible area appears at Sx, Sy. Calculated by Update().
func (obj *Object) DrawPosition() (int, int) {
	return obj.drawX, obj.drawY
}

// Clip is the screen area of the object. Calculated by Update().
func (obj *Object) Clip() gfx.Rect {
	return obj.clip
}

// Next returns the object drawn after this one.
func (obj *Object) Next() *Object {
	return obj.next
}

// SetNext sets the object to be drawn after this one. Only useful for lists
// that are not sorted.
func (obj *Object) SetNext(next *Object) {
	obj.next = next
}

func (obj *Object) zoom() int {
	if obj.Zoom == 0 {
		return gfx.ZoomUnity
	}
	return obj.Zoom
}

// update the calculated fields of the object.
func (obj *Object) update(visibleArea gfx.Rect) {
	obj.Dirty = false

	if obj.SpecialHandler != nil {
		obj.visibility = Special
		obj.clip = visibleArea
		obj.drawX = obj.Sx
		obj.drawY = obj.Sy
		return
	}

	obj.visibility = Hidden

	if obj.Gfx == nil {
		return
	}

	width := obj.Width
	if width == 0 {
		width = obj.Gfx.Width
	}
	height := obj.Height
	if height == 0 {
		height = obj.Gfx.Height
	}

	z := obj.zoom()
	zwidth := width
	zheight := height
	if z != gfx.ZoomUnity {
		zwidth = gfx.ZoomedSize(width, z)
		zheight = gfx.ZoomedSize(height, z)
	}

	area := gfx.NewRect(obj.Sx, obj.Sy, zwidth, zheight).Intersect(visibleArea)
	if area.Empty() {
		return
	}

	obj.visibility = Visible
	obj.clip = area

	// position of the element so that the area between left and left+width
	// appears at sx. when flipped the area is measured from the other edge.
	// the offset is measured in element pixels and zoomed afterwards
	left := obj.Left
	if obj.FlipX {
		left = obj.Gfx.Width - (obj.Left + width)
	}
	top := obj.Top
	if obj.FlipY {
		top = obj.Gfx.Height - (obj.Top + height)
	}
	if z != gfx.ZoomUnity {
		left = gfx.ZoomedSize(left, z)
		top = gfx.ZoomedSize(top, z)
	}
	obj.drawX = obj.Sx - left
	obj.drawY = obj.Sy - top
}

func (obj *Object) draw(dst *gfx.Bitmap) {
	switch obj.visibility {
	case Special:
		if obj.SpecialHandler(dst, obj) {
			return
		}
		if obj.Gfx == nil {
			return
		}
	case Visible:
	default:
		return
	}

	z := obj.zoom()
	if z == gfx.ZoomUnity {
		gfx.DrawGfx(dst, obj.Gfx, obj.Code, obj.Color, obj.FlipX, obj.FlipY, obj.drawX, obj.drawY,
			&obj.clip, obj.Transparency, obj.TransparentColor)
	} else {
		gfx.DrawGfxZoom(dst, obj.Gfx, obj.Code, obj.Color, obj.FlipX, obj.FlipY, obj.drawX, obj.drawY,
			&obj.clip, obj.Transparency, obj.TransparentColor, z, z)
	}
}
