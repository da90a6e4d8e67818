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
	"strings"
)

// SortType controls how Update() orders the objects in a list.
type SortType int

// List of SortType flags. Without DoSort the draw order is maintained by the
// driver with List.SetFirst() and Object.SetNext().
//
// By default objects are drawn in increasing priority and, within a
// priority, in increasing index. So the object drawn in front is the last
// object with the highest priority.
const (
	DoSort SortType = 1 << iota

	// within a priority the objects with the lowest index are drawn in front
	SortObjectBack

	// objects with the lowest priority are drawn in front
	SortPriorityBack

	SortDefault = DoSort
)

func (s SortType) String() string {
	if s&DoSort == 0 {
		return "unsorted"
	}
	b := strings.Builder{}
	b.WriteString("sorted")
	if s&SortObjectBack == SortObjectBack {
		b.WriteString(" object-back")
	}
	if s&SortPriorityBack == SortPriorityBack {
		b.WriteString(" priority-back")
	}
	return b.String()
}

// List is a fixed size collection of objects.
type List struct {
	objects     []Object
	maxPriority int
	sort        SortType

	// first object in the draw order
	first *Object
}

func (l *List) String() string {
	return fmt.Sprintf("%d objects, %d priorities, %s", len(l.objects), l.maxPriority, l.sort)
}

// Len returns the number of objects in the list.
func (l *List) Len() int {
	return len(l.objects)
}

// Object returns the object at index i. Returns nil if the index is out of
// range.
func (l *List) Object(i int) *Object {
	if i < 0 || i >= len(l.objects) {
		return nil
	}
	return &l.objects[i]
}

// SetSort changes how the list is ordered by the next Update().
func (l *List) SetSort(sort SortType) {
	l.sort = sort
}

// First returns the first object in the draw order.
func (l *List) First() *Object {
	return l.first
}

// SetFirst sets the first object in the draw order. Only useful for lists
// that are not sorted.
func (l *List) SetFirst(obj *Object) {
	l.first = obj
}

// DrawOrder returns the indexes of the objects in the order they will be
// drawn. Hidden objects are not included.
func (l *List) DrawOrder() []int {
	var order []int
	for obj := l.first; obj != nil; obj = obj.next {
		if obj.visibility != Hidden {
			order = append(order, l.index(obj))
		}
	}
	return order
}

func (l *List) index(obj *Object) int {
	for i := range l.objects {
		if &l.objects[i] == obj {
			return i
		}
	}
	return -1
}

func (l *List) priority(obj *Object) int {
	return min(max(obj.Priority, 0), l.maxPriority-1)
}

// build the draw order from priority buckets.
func (l *List) sortObjects() {
	buckets := make([][]*Object, l.maxPriority)

	for i := range l.objects {
		idx := i
		if l.sort&SortObjectBack == SortObjectBack {
			idx = len(l.objects) - 1 - i
		}
		obj := &l.objects[idx]
		if obj.visibility == Hidden {
			continue
		}
		p := l.priority(obj)
		buckets[p] = append(buckets[p], obj)
	}

	var last *Object
	l.first = nil

	for i := range buckets {
		p := i
		if l.sort&SortPriorityBack == SortPriorityBack {
			p = len(buckets) - 1 - i
		}
		for _, obj := range buckets[p] {
			if last == nil {
				l.first = obj
			} else {
				last.next = obj
			}
			last = obj
		}
	}

	if last != nil {
		last.next = nil
	}
}
