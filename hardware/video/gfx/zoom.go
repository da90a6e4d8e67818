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

// ZoomUnity is the zoom value for no scaling. Zoom values are fixed point with
// seven bits of fraction.
const ZoomUnity = 0x80

// zoomUp returns the source index for each destination pixel when
// magnifying. Source pixels are repeated as the error term overflows.
func zoomUp(n int, zoom int) []int {
	idx := make([]int, 0, n*zoom/ZoomUnity+1)
	err := 0
	for i := 0; i < n; i++ {
		err += zoom
		for err >= ZoomUnity {
			idx = append(idx, i)
			err -= ZoomUnity
		}
	}
	return idx
}

// zoomDown returns the source index for each destination pixel when
// minifying. The error term counts down and source pixels are skipped until
// it underflows. The first source pixel is always drawn.
func zoomDown(n int, zoom int) []int {
	idx := make([]int, 0, n*zoom/ZoomUnity+1)
	err := 0
	for i := 0; i < n; i++ {
		err -= zoom
		if err < 0 {
			idx = append(idx, i)
			err += ZoomUnity
		}
	}
	return idx
}

func zoomAxis(n int, zoom int, flip bool) []int {
	var idx []int
	if zoom >= ZoomUnity {
		idx = zoomUp(n, zoom)
	} else {
		idx = zoomDown(n, zoom)
	}
	if flip {
		for i := range idx {
			idx[i] = n - 1 - idx[i]
		}
	}
	return idx
}

// ZoomedSize returns the size in pixels of n source pixels at the zoom.
func ZoomedSize(n int, zoom int) int {
	if zoom <= 0 {
		return 0
	}
	return len(zoomAxis(n, zoom, false))
}

// DrawGfxZoom draws an element scaled independently in each axis. Zoom values
// are fixed point with seven bits of fraction (see ZoomUnity). Scaling is
// nearest neighbour. Magnification and minification use different error
// accumulation so the pixel pattern matches the hardware in both cases.
func DrawGfxZoom(dst *Bitmap, e *Element, code, color int, flipx, flipy bool, sx, sy int, clip *Rect, trans Transparency, transparent int, zoomx, zoomy int) {
	drawGfxZoom(dst, nil, 0, e, code, color, flipx, flipy, sx, sy, clip, trans, transparent, zoomx, zoomy)
}

func drawGfxZoom(dst *Bitmap, pri *PriorityBitmap, primask uint32, e *Element, code, color int, flipx, flipy bool, sx, sy int, clip *Rect, trans Transparency, transparent int, zoomx, zoomy int) {
	if e == nil || e.Total == 0 || zoomx <= 0 || zoomy <= 0 {
		return
	}

	if zoomx == ZoomUnity && zoomy == ZoomUnity {
		drawGfx(dst, pri, primask, e, code, color, flipx, flipy, sx, sy, clip, trans, transparent)
		return
	}

	xs := zoomAxis(e.Width, zoomx, flipx)
	ys := zoomAxis(e.Height, zoomy, flipy)

	area := NewRect(sx, sy, len(xs), len(ys)).Intersect(clipArea(dst, clip))
	if area.Empty() {
		return
	}

	mask := transparencyMask(trans, transparent)

	for y := area.MinY; y <= area.MaxY; y++ {
		ey := ys[y-sy]
		for x := area.MinX; x <= area.MaxX; x++ {
			ex := xs[x-sx]
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
