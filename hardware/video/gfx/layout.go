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

import (
	"fmt"

	"github.com/jetsetilly/arcadecore/curated"
)

// LayoutError is the error pattern for invalid Layouts.
const LayoutError = "gfx: layout: %v"

// Layout describes how the graphics in a ROM are arranged. All offsets are in
// bits.
type Layout struct {
	Width  int
	Height int

	// number of elements
	Total int

	// number of bits per pixel
	Planes int

	// offset of each plane, most significant plane first
	PlaneOffset []int

	// offset of each pixel in a line and each line in an element
	XOffset []int
	YOffset []int

	// distance between one element and the next
	CharIncrement int
}

func (l Layout) validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return curated.Errorf(LayoutError, fmt.Sprintf("invalid size %dx%d", l.Width, l.Height))
	}
	if l.Planes < 1 || l.Planes > 8 {
		return curated.Errorf(LayoutError, fmt.Sprintf("invalid number of planes (%d)", l.Planes))
	}
	if len(l.PlaneOffset) != l.Planes {
		return curated.Errorf(LayoutError, "plane offsets do not match number of planes")
	}
	if len(l.XOffset) < l.Width || len(l.YOffset) < l.Height {
		return curated.Errorf(LayoutError, "not enough x or y offsets")
	}
	if l.Total < 0 {
		return curated.Errorf(LayoutError, "negative total")
	}
	return nil
}

// Element is a set of decoded graphics of the same size. Each pixel is a pen
// index relative to the colour of the element when it is drawn.
type Element struct {
	Width  int
	Height int
	Total  int

	// number of pens per colour
	Granularity int

	// number of colours available to the element
	TotalColors int

	// the first pen of colour zero. ignored if there is a ColorTable
	ColorBase int

	// optional mapping from (color*Granularity + pixel) to a palette pen
	ColorTable []uint16

	data     []uint8
	penUsage []uint32
}

func readBit(src []uint8, bit int) bool {
	if bit < 0 || bit/8 >= len(src) {
		return false
	}
	return (src[bit/8]>>(7-bit%8))&0x01 == 0x01
}

// Decode the graphics in src according to the Layout. The number of colours
// defaults to one.
func Decode(src []uint8, l Layout) (*Element, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}

	e := &Element{
		Width:       l.Width,
		Height:      l.Height,
		Total:       l.Total,
		Granularity: 1 << l.Planes,
		TotalColors: 1,
		data:        make([]uint8, l.Total*l.Width*l.Height),
	}

	// pen usage is a 32 bit mask
	if e.Granularity <= 32 {
		e.penUsage = make([]uint32, l.Total)
	}

	for n := 0; n < l.Total; n++ {
		offs := n * l.CharIncrement
		dp := e.data[n*l.Width*l.Height:]
		for y := 0; y < l.Height; y++ {
			for x := 0; x < l.Width; x++ {
				var p uint8
				for plane := 0; plane < l.Planes; plane++ {
					if readBit(src, offs+l.PlaneOffset[plane]+l.YOffset[y]+l.XOffset[x]) {
						p |= 1 << (l.Planes - 1 - plane)
					}
				}
				dp[y*l.Width+x] = p
				if e.penUsage != nil {
					e.penUsage[n] |= 1 << p
				}
			}
		}
	}

	return e, nil
}

// NewElement creates an Element from already decoded pixel data. There must
// be width*height bytes for each element.
func NewElement(width, height int, planes int, data []uint8) (*Element, error) {
	if width <= 0 || height <= 0 || planes < 1 || planes > 8 {
		return nil, curated.Errorf(LayoutError, "invalid element")
	}
	sz := width * height
	if len(data)%sz != 0 {
		return nil, curated.Errorf(LayoutError, "data is not a whole number of elements")
	}

	e := &Element{
		Width:       width,
		Height:      height,
		Total:       len(data) / sz,
		Granularity: 1 << planes,
		TotalColors: 1,
		data:        data,
	}

	if e.Granularity <= 32 {
		e.penUsage = make([]uint32, e.Total)
		for n := 0; n < e.Total; n++ {
			for _, p := range data[n*sz : (n+1)*sz] {
				e.penUsage[n] |= 1 << (p & 0x1f)
			}
		}
	}

	return e, nil
}

// Pixel returns the pen index at the element coordinates. Coordinates outside
// the element return zero.
func (e *Element) Pixel(code, x, y int) uint8 {
	if e.Total == 0 || x < 0 || y < 0 || x >= e.Width || y >= e.Height {
		return 0
	}
	code %= e.Total
	if code < 0 {
		code += e.Total
	}
	return e.data[(code*e.Height+y)*e.Width+x]
}

// PenUsage returns a mask of the pens used by the element. Bit n is set if pen
// n is used. The second value is false if pen usage is not available.
func (e *Element) PenUsage(code int) (uint32, bool) {
	if e.penUsage == nil || e.Total == 0 {
		return 0, false
	}
	code %= e.Total
	if code < 0 {
		code += e.Total
	}
	return e.penUsage[code], true
}

// Pen returns the palette pen for a pixel value drawn with the color.
func (e *Element) Pen(color int, pixel uint8) uint16 {
	if e.TotalColors > 0 {
		color %= e.TotalColors
		if color < 0 {
			color += e.TotalColors
		}
	}
	i := color*e.Granularity + int(pixel)
	if e.ColorTable != nil {
		if i < 0 || i >= len(e.ColorTable) {
			return 0
		}
		return e.ColorTable[i]
	}
	return uint16(e.ColorBase + i)
}
