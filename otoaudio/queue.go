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

package otoaudio

import (
	"io"
	"sync"
)

// Queue is a fixed size ring buffer of bytes. It is written to by the
// emulation and read by the audio player, which runs in its own goroutine.
//
// When the queue is full, the oldest data is discarded. When the queue is
// empty, Read() returns silence so that the player never stalls.
type Queue struct {
	crit sync.Mutex
	data []byte
	head int
	size int

	closed bool
}

// NewQueue is the preferred method of initialisation for the Queue type.
func NewQueue(capacity int) *Queue {
	return &Queue{
		data: make([]byte, max(capacity, 1)),
	}
}

// Buffered returns the number of bytes waiting to be read.
func (q *Queue) Buffered() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return q.size
}

// Write implements the io.Writer interface.
func (q *Queue) Write(p []byte) (int, error) {
	q.crit.Lock()
	defer q.crit.Unlock()

	n := len(p)

	// only the newest data will fit
	if len(p) > len(q.data) {
		p = p[len(p)-len(q.data):]
	}

	// discard the oldest data to make room
	if over := q.size + len(p) - len(q.data); over > 0 {
		q.head = (q.head + over) % len(q.data)
		q.size -= over
	}

	tail := (q.head + q.size) % len(q.data)
	c := copy(q.data[tail:], p)
	copy(q.data, p[c:])
	q.size += len(p)

	return n, nil
}

// Read implements the io.Reader interface.
func (q *Queue) Read(p []byte) (int, error) {
	q.crit.Lock()
	defer q.crit.Unlock()

	n := min(len(p), q.size)
	c := copy(p[:n], q.data[q.head:min(q.head+n, len(q.data))])
	copy(p[c:n], q.data)
	q.head = (q.head + n) % len(q.data)
	q.size -= n

	// silence for the remainder
	if !q.closed {
		clear(p[n:])
		return len(p), nil
	}

	if n == 0 {
		return 0, io.EOF
	}

	return n, nil
}

// Close the queue. Subsequent reads return only the remaining data, followed
// by io.EOF.
func (q *Queue) Close() error {
	q.crit.Lock()
	defer q.crit.Unlock()
	q.closed = true
	return nil
}
