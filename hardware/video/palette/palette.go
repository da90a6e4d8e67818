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

// Package palette implements the colour palette of an emulated machine. Pens
// are indexes into the palette. Each entry also has a byte of attribute bits,
// which some hardware uses to mark colours that take part in collision
// detection.
package palette

import (
	"fmt"
	"image/color"
)

// CollisionBit is the attribute bit conventionally used to mark a colour that
// triggers sprite collision.
const CollisionBit = 0x80

// Palette is the set of colours available to the machine.
type Palette struct {
	entries []color.RGBA
	attr    []uint8
	used    []bool

	// colours have changed since the last call to Recalc()
	changed bool
}

// NewPalette is the preferred method of initialisation for the Palette type.
// All entries are black.
func NewPalette(size int) *Palette {
	p := &Palette{
		entries: make([]color.RGBA, size),
		attr:    make([]uint8, size),
		used:    make([]bool, size),
		changed: true,
	}
	for i := range p.entries {
		p.entries[i].A = 0xff
	}
	return p
}

func (p *Palette) String() string {
	return fmt.Sprintf("palette: %d entries", len(p.entries))
}

// Len returns the number of entries in the palette.
func (p *Palette) Len() int {
	return len(p.entries)
}

// ChangeColor sets the colour of the entry. Out of range entries are ignored.
func (p *Palette) ChangeColor(i int, r, g, b uint8) {
	if i < 0 || i >= len(p.entries) {
		return
	}
	c := color.RGBA{R: r, G: g, B: b, A: 0xff}
	if p.entries[i] != c {
		p.entries[i] = c
		p.changed = true
	}
}

// Recalc should be called once per frame before rendering. It returns true if
// any colour has changed since the last call, in which case everything drawn
// with the old colours should be redrawn.
func (p *Palette) Recalc() bool {
	c := p.changed
	p.changed = false
	return c
}

// RGB returns the colour of the entry. Out of range entries are black.
func (p *Palette) RGB(i int) color.RGBA {
	if i < 0 || i >= len(p.entries) {
		return color.RGBA{A: 0xff}
	}
	return p.entries[i]
}

// SetAttribute sets the attribute bits of the entry.
func (p *Palette) SetAttribute(i int, attr uint8) {
	if i < 0 || i >= len(p.attr) {
		return
	}
	p.attr[i] = attr
}

// Attribute returns the attribute bits of the entry.
func (p *Palette) Attribute(i int) uint8 {
	if i < 0 || i >= len(p.attr) {
		return 0
	}
	return p.attr[i]
}

// MarkUsed records that the pens from start to start+n-1 are in use this
// frame.
func (p *Palette) MarkUsed(start int, n int) {
	for i := start; i < start+n; i++ {
		if i >= 0 && i < len(p.used) {
			p.used[i] = true
		}
	}
}

// Used returns true if the pen has been marked as used since the last call to
// ClearUsed().
func (p *Palette) Used(i int) bool {
	if i < 0 || i >= len(p.used) {
		return false
	}
	return p.used[i]
}

// ClearUsed forgets all pen usage.
func (p *Palette) ClearUsed() {
	clear(p.used)
}

// Color implements the color.Palette style lookup for image conversion.
func (p *Palette) Color() color.Palette {
	cp := make(color.Palette, len(p.entries))
	for i, c := range p.entries {
		cp[i] = c
	}
	return cp
}
