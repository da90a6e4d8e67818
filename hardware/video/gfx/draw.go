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

// Transparency selects which pixels of a source are not drawn.
type Transparency int

// List of valid Transparency values.
const (
	// every pixel is drawn
	Opaque Transparency = iota

	// pixels with the pen index given as the transparent value are not drawn
	TransparentPen

	// pixels that resolve to the palette pen given as the transparent value
	// are not drawn
	TransparentColor

	// the transparent value is a bit mask of pen indexes that are not drawn
	TransparentPens
)

func (t Transparency) String() string {
	switch t {
	case Opaque:
		return "opaque"
	case TransparentPen:
		return "pen"
	case TransparentColor:
		return "color"
	case TransparentPens:
		return "pens"
	}
	return "unknown transparency"
}

// mask of pen indexes that are transparent. only meaningful for
// TransparentPen and TransparentPens.
func transparencyMask(trans Transparency, transparent int) uint32 {
	switch trans {
	case TransparentPen:
		if transparent >= 0 && transparent < 32 {
			return 1 << transparent
		}
	case TransparentPens:
		return uint32(transparent)
	}
	return 0
}

func clipArea(dst *Bitmap, clip *Rect) Rect {
	b := dst.Bounds()
	if clip != nil {
		b = b.Intersect(*clip)
	}
	return b
}

// visible returns true if the pixel is drawn. pixel is the raw value from the
// source and pen is the resolved palette pen.
func visible(trans Transparency, transparent int, mask uint32, pixel int, pen uint16) bool {
	switch trans {
	case TransparentPen:
		return pixel != transparent
	case TransparentColor:
		return int(pen) != transparent
	case TransparentPens:
		return pixel >= 32 || mask&(1<<pixel) == 0
	}
	return true
}

// DrawGfx draws a single element to the destination bitmap at the game space
// coordinates. The clip rectangle may be nil, in which case the whole bitmap
// is available.
func DrawGfx(dst *Bitmap, e *Element, code, color int, flipx, flipy bool, sx, sy int, clip *Rect, trans Transparency, transparent int) {
	drawGfx(dst, nil, 0, e, code, color, flipx, flipy, sx, sy, clip, trans, transparent)
}

func drawGfx(dst *Bitmap, pri *PriorityBitmap, primask uint32, e *Element, code, color int, flipx, flipy bool, sx, sy int, clip *Rect, trans Transparency, transparent int) {
	if e == nil || e.Total == 0 {
		return
	}

	mask := transparencyMask(trans, transparent)

	// skip elements that are entirely transparent and draw elements that
	// are entirely opaque without checking every pixel
	if trans == TransparentPen || trans == TransparentPens {
		if usage, ok := e.PenUsage(code); ok {
			if usage&^mask == 0 {
				return
			}
			if usage&mask == 0 {
				trans = Opaque
			}
		}
	}

	area := NewRect(sx, sy, e.Width, e.Height).Intersect(clipArea(dst, clip))
	if area.Empty() {
		return
	}

	for y := area.MinY; y <= area.MaxY; y++ {
		ey := y - sy
		if flipy {
			ey = e.Height - 1 - ey
		}
		for x := area.MinX; x <= area.MaxX; x++ {
			ex := x - sx
			if flipx {
				ex = e.Width - 1 - ex
			}
			p := e.Pixel(code, ex, ey)
			pen := e.Pen(color, p)
			if visible(trans, transparent, mask, int(p), pen) {
				if pri == nil {
					dst.SetPix(x, y, pen)
				} else {
					pri.blit(dst, x, y, pen, primask)
				}
			}
		}
	}
}

// CopyBitmap copies the source bitmap to the destination at the game space
// coordinates. Pens are copied without any colour mapping so
// TransparentColor behaves the same as TransparentPen.
func CopyBitmap(dst *Bitmap, src *Bitmap, flipx, flipy bool, sx, sy int, clip *Rect, trans Transparency, transparent int) {
	copyBitmap(dst, nil, 0, src, flipx, flipy, sx, sy, clip, trans, transparent)
}

// the priority is ORed into the priority bitmap for every pixel copied.
func copyBitmap(dst *Bitmap, pri *PriorityBitmap, priority uint8, src *Bitmap, flipx, flipy bool, sx, sy int, clip *Rect, trans Transparency, transparent int) {
	area := NewRect(sx, sy, src.Width(), src.Height()).Intersect(clipArea(dst, clip))
	if area.Empty() {
		return
	}

	mask := transparencyMask(trans, transparent)

	for y := area.MinY; y <= area.MaxY; y++ {
		ey := y - sy
		if flipy {
			ey = src.Height() - 1 - ey
		}
		for x := area.MinX; x <= area.MaxX; x++ {
			ex := x - sx
			if flipx {
				ex = src.Width() - 1 - ex
			}
			pen := src.Pix(ex, ey)
			if visible(trans, transparent, mask, int(pen), pen) {
				dst.SetPix(x, y, pen)
				if pri != nil {
					pri.or(x, y, priority)
				}
			}
		}
	}
}

// wrap a scroll value into the range 0 to size-1.
func wrapScroll(scroll int, size int) int {
	if size <= 0 {
		return 0
	}
	if scroll < 0 {
		return size - (-scroll)%size
	}
	return scroll % size
}

// CopyScrollBitmap copies the source bitmap to the destination with
// scrolling. The source wraps around in both directions.
//
// The rowscroll slice has an entry for each band of rows in the source, and
// colscroll an entry for each band of columns. A single entry in each gives
// an XY scrolling playfield. Rows and columns can be combined only if one of
// them has a single entry.
func CopyScrollBitmap(dst *Bitmap, src *Bitmap, rowscroll []int, colscroll []int, clip *Rect, trans Transparency, transparent int) {
	copyScrollBitmap(dst, nil, 0, src, rowscroll, colscroll, clip, trans, transparent)
}

// PCopyScrollBitmap is the same as CopyScrollBitmap() but also ORs the
// priority value into the priority bitmap for every pixel that is copied.
func PCopyScrollBitmap(dst *Bitmap, pri *PriorityBitmap, src *Bitmap, rowscroll []int, colscroll []int, clip *Rect, trans Transparency, transparent int, priority uint8) {
	copyScrollBitmap(dst, pri, priority, src, rowscroll, colscroll, clip, trans, transparent)
}

func copyScrollBitmap(dst *Bitmap, pri *PriorityBitmap, priority uint8, src *Bitmap, rowscroll []int, colscroll []int, clip *Rect, trans Transparency, transparent int) {
	rows := len(rowscroll)
	cols := len(colscroll)

	c := clipArea(dst, clip)

	if rows == 0 && cols == 0 {
		copyBitmap(dst, pri, priority, src, false, false, 0, 0, &c, trans, transparent)
		return
	}

	srcwidth := src.Width()
	srcheight := src.Height()
	destwidth := dst.Width()
	destheight := dst.Height()

	// count consecutive entries scrolled by the same amount
	consecutive := func(scroll []int, i int) int {
		n := 1
		for i+n < len(scroll) && scroll[i+n] == scroll[i] {
			n++
		}
		return n
	}

	switch {
	case rows == 0:
		colwidth := srcwidth / cols
		for col := 0; col < cols; {
			cons := consecutive(colscroll, col)
			scroll := wrapScroll(colscroll[col], srcheight)

			my := c
			my.MinX = max(col*colwidth, c.MinX)
			my.MaxX = min((col+cons)*colwidth-1, c.MaxX)

			copyBitmap(dst, pri, priority, src, false, false, 0, scroll, &my, trans, transparent)
			copyBitmap(dst, pri, priority, src, false, false, 0, scroll-srcheight, &my, trans, transparent)

			col += cons
		}

	case cols == 0:
		rowheight := srcheight / rows
		for row := 0; row < rows; {
			cons := consecutive(rowscroll, row)
			scroll := wrapScroll(rowscroll[row], srcwidth)

			my := c
			my.MinY = max(row*rowheight, c.MinY)
			my.MaxY = min((row+cons)*rowheight-1, c.MaxY)

			copyBitmap(dst, pri, priority, src, false, false, scroll, 0, &my, trans, transparent)
			copyBitmap(dst, pri, priority, src, false, false, scroll-srcwidth, 0, &my, trans, transparent)

			row += cons
		}

	case rows == 1 && cols == 1:
		scrollx := wrapScroll(rowscroll[0], srcwidth)
		scrolly := wrapScroll(colscroll[0], srcheight)
		if srcwidth <= 0 || srcheight <= 0 {
			return
		}
		for sx := scrollx - srcwidth; sx < destwidth; sx += srcwidth {
			for sy := scrolly - srcheight; sy < destheight; sy += srcheight {
				copyBitmap(dst, pri, priority, src, false, false, sx, sy, &c, trans, transparent)
			}
		}

	case rows == 1:
		scrollx := wrapScroll(rowscroll[0], srcwidth)
		colwidth := srcwidth / cols
		for col := 0; col < cols; {
			cons := consecutive(colscroll, col)
			scroll := wrapScroll(colscroll[col], srcheight)

			for _, ox := range []int{scrollx, scrollx - srcwidth} {
				my := c
				my.MinX = max(col*colwidth+ox, c.MinX)
				my.MaxX = min((col+cons)*colwidth-1+ox, c.MaxX)
				copyBitmap(dst, pri, priority, src, false, false, ox, scroll, &my, trans, transparent)
				copyBitmap(dst, pri, priority, src, false, false, ox, scroll-srcheight, &my, trans, transparent)
			}

			col += cons
		}

	case cols == 1:
		scrolly := wrapScroll(colscroll[0], srcheight)
		rowheight := srcheight / rows
		for row := 0; row < rows; {
			cons := consecutive(rowscroll, row)
			scroll := wrapScroll(rowscroll[row], srcwidth)

			for _, oy := range []int{scrolly, scrolly - srcheight} {
				my := c
				my.MinY = max(row*rowheight+oy, c.MinY)
				my.MaxY = min((row+cons)*rowheight-1+oy, c.MaxY)
				copyBitmap(dst, pri, priority, src, false, false, scroll, oy, &my, trans, transparent)
				copyBitmap(dst, pri, priority, src, false, false, scroll-srcwidth, oy, &my, trans, transparent)
			}

			row += cons
		}
	}
}

// Fill the clip rectangle with the pen. A nil clip fills the whole bitmap.
func Fill(dst *Bitmap, pen uint16, clip *Rect) {
	area := clipArea(dst, clip)
	for y := area.MinY; y <= area.MaxY; y++ {
		for x := area.MinX; x <= area.MaxX; x++ {
			dst.SetPix(x, y, pen)
		}
	}
}
