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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/arcadecore/test"
	"github.com/jetsetilly/arcadecore/wavwriter"
)

func TestWavWriter(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.wav")

	_, err := wavwriter.NewWavWriter(fn, 0)
	test.ExpectFailure(t, err)

	aw, err := wavwriter.NewWavWriter(fn, 22050)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, aw.SetAudio([]int16{0, 100, -100, 32767}, 1))
	test.ExpectSuccess(t, aw.SetAudio([]int16{-32768, 5}, 1))
	test.ExpectFailure(t, aw.SetAudio([]int16{1, 1}, 2))
	test.ExpectEquality(t, aw.Samples(), 6)
	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())
	test.ExpectEquality(t, int(dec.SampleRate), 22050)
	test.ExpectEquality(t, int(dec.NumChans), 1)
	test.ExpectEquality(t, int(dec.BitDepth), 16)

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(buf.Data), 6)
	for i, v := range []int{0, 100, -100, 32767, -32768, 5} {
		test.ExpectEquality(t, buf.Data[i], v)
	}
}
