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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/arcadecore/govern"
	"github.com/jetsetilly/arcadecore/hardware"
)

// Check runs the machine as fast as possible for the duration, after a short
// lead time, and reports the frame rate achieved.
func Check(output io.Writer, profile Profile, m *hardware.Machine, leadTime time.Duration, duration time.Duration) error {
	// signals false when the lead time has elapsed and true when the
	// measurement period has ended
	timerChan := make(chan bool, 2)
	time.AfterFunc(leadTime, func() {
		timerChan <- false
		time.AfterFunc(duration, func() {
			timerChan <- true
		})
	})

	startFrame := m.Frame()

	runner := func() error {
		return m.Run(func(frame int) (govern.State, error) {
			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, nil
				}
				startFrame = frame
			default:
			}
			return govern.Running, nil
		})
	}

	if err := RunProfiler(profile, "performance", runner); err != nil {
		return err
	}

	numFrames := m.Frame() - startFrame
	fps, accuracy := CalcFPS(m.Cfg.FPS, numFrames, duration.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, duration.Seconds(), accuracy)

	return nil
}
