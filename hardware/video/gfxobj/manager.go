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

	"github.com/jetsetilly/arcadecore/curated"
	"github.com/jetsetilly/arcadecore/environment"
	"github.com/jetsetilly/arcadecore/hardware/video/gfx"
	"github.com/jetsetilly/arcadecore/hardware/video/palette"
	"github.com/jetsetilly/arcadecore/logger"
)

// ListError is returned by Create() for invalid list parameters.
const ListError = "gfxobj: %v"

// Manager owns every object list created for a machine.
type Manager struct {
	env *environment.Environment

	visibleArea gfx.Rect

	// if not nil, the colours of visible objects are marked as used
	palette *palette.Palette

	lists []*List
}

// NewManager is the preferred method of initialisation for the Manager type.
func NewManager(env *environment.Environment, visibleArea gfx.Rect) *Manager {
	return &Manager{
		env:         env,
		visibleArea: visibleArea,
	}
}

func (m *Manager) String() string {
	return fmt.Sprintf("%d lists in %s", len(m.lists), m.visibleArea)
}

// SetPalette sets the palette used for colour usage tracking.
func (m *Manager) SetPalette(pal *palette.Palette) {
	m.palette = pal
}

// SetVisibleArea changes the visible area. Every object is marked dirty.
func (m *Manager) SetVisibleArea(r gfx.Rect) {
	m.visibleArea = r
	m.MarkAllDirty()
}

// Lists returns the number of lists owned by the manager.
func (m *Manager) Lists() int {
	return len(m.lists)
}

// Create a new list of nums objects with priorities from zero to
// maxPriority-1. Every object is a copy of def, which may be nil. Objects
// start dirty.
func (m *Manager) Create(nums int, maxPriority int, def *Object) (*List, error) {
	if nums <= 0 {
		return nil, curated.Errorf(ListError, fmt.Sprintf("invalid number of objects (%d)", nums))
	}
	if maxPriority <= 0 {
		return nil, curated.Errorf(ListError, fmt.Sprintf("invalid maximum priority (%d)", maxPriority))
	}

	l := &List{
		objects:     make([]Object, nums),
		maxPriority: maxPriority,
		sort:        SortDefault,
	}

	for i := range l.objects {
		if def != nil {
			l.objects[i] = *def
			l.objects[i].next = nil
		}
		l.objects[i].Dirty = true
	}

	m.lists = append(m.lists, l)
	logger.Logf(m.env, "gfxobj", "created list: %s", l)

	return l, nil
}

// Close forgets every list created by the manager.
func (m *Manager) Close() {
	if len(m.lists) > 0 {
		logger.Logf(m.env, "gfxobj", "closing %d lists", len(m.lists))
	}
	m.lists = m.lists[:0]
}

// MarkAllDirty marks every object in every list as dirty.
func (m *Manager) MarkAllDirty() {
	for _, l := range m.lists {
		for i := range l.objects {
			l.objects[i].Dirty = true
		}
	}
}

// Update recalculates the dirty objects and sorts the lists that require it.
func (m *Manager) Update() {
	for _, l := range m.lists {
		for i := range l.objects {
			obj := &l.objects[i]
			if obj.Dirty {
				obj.update(m.visibleArea)
			}
			if m.palette != nil && obj.visibility == Visible {
				m.markColors(obj)
			}
		}
		if l.sort&DoSort == DoSort {
			l.sortObjects()
		}
	}
}

func (m *Manager) markColors(obj *Object) {
	e := obj.Gfx
	if e.ColorTable != nil {
		return
	}
	color := obj.Color
	if e.TotalColors > 0 {
		color %= e.TotalColors
	}
	m.palette.MarkUsed(e.ColorBase+color*e.Granularity, e.Granularity)
}

// Draw every list in the order they were created.
func (m *Manager) Draw(dst *gfx.Bitmap) {
	for _, l := range m.lists {
		for obj := l.first; obj != nil; obj = obj.next {
			obj.draw(dst)
		}
	}
}
