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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/arcadecore/performance/limiter"
	"github.com/jetsetilly/arcadecore/test"
)

func TestLimiter(t *testing.T) {
	lim := limiter.NewFPSLimiter(200)
	defer lim.Stop()
	test.ExpectEquality(t, lim.Limit(), 200.0)

	start := time.Now()
	for range 4 {
		lim.Wait()
	}

	// four frames at 200fps is 20ms
	test.ExpectSuccess(t, time.Since(start) >= 15*time.Millisecond)

	lim.SetLimit(1000)
	test.ExpectEquality(t, lim.Limit(), 1000.0)
	lim.Wait()
}
