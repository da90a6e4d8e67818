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

package otoaudio_test

import (
	"io"
	"testing"

	"github.com/jetsetilly/arcadecore/otoaudio"
	"github.com/jetsetilly/arcadecore/test"
)

func TestEncode(t *testing.T) {
	b := otoaudio.Encode(nil, []int16{1, -1, 0x1234})
	test.ExpectEquality(t, len(b), 6)
	test.ExpectEquality(t, b[0], byte(0x01))
	test.ExpectEquality(t, b[1], byte(0x00))
	test.ExpectEquality(t, b[2], byte(0xff))
	test.ExpectEquality(t, b[3], byte(0xff))
	test.ExpectEquality(t, b[4], byte(0x34))
	test.ExpectEquality(t, b[5], byte(0x12))
}

func TestQueue(t *testing.T) {
	q := otoaudio.NewQueue(8)

	n, err := q.Write([]byte{1, 2, 3, 4, 5})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 5)
	test.ExpectEquality(t, q.Buffered(), 5)

	// reads are padded with silence
	p := make([]byte, 4)
	n, err = q.Read(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 4)
	test.ExpectEquality(t, string(p), string([]byte{1, 2, 3, 4}))

	// wraps around the end of the buffer
	_, _ = q.Write([]byte{6, 7, 8, 9, 10, 11})
	test.ExpectEquality(t, q.Buffered(), 7)

	p = make([]byte, 10)
	n, _ = q.Read(p)
	test.ExpectEquality(t, n, 10)
	test.ExpectEquality(t, string(p), string([]byte{5, 6, 7, 8, 9, 10, 11, 0, 0, 0}))
	test.ExpectEquality(t, q.Buffered(), 0)
}

func TestQueueOverflow(t *testing.T) {
	q := otoaudio.NewQueue(4)

	// the oldest data is lost
	_, _ = q.Write([]byte{1, 2, 3})
	_, _ = q.Write([]byte{4, 5, 6})
	test.ExpectEquality(t, q.Buffered(), 4)

	// more than the capacity in one write
	_, _ = q.Write([]byte{7, 8, 9, 10, 11, 12})
	test.ExpectEquality(t, q.Buffered(), 4)

	test.ExpectSuccess(t, q.Close())

	p := make([]byte, 6)
	n, err := q.Read(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 4)
	test.ExpectEquality(t, string(p[:n]), string([]byte{9, 10, 11, 12}))

	n, err = q.Read(p)
	test.ExpectEquality(t, n, 0)
	test.ExpectEquality(t, err, io.EOF)
}
