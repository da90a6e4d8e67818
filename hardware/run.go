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

package hardware

import (
	"github.com/jetsetilly/arcadecore/curated"
	"github.com/jetsetilly/arcadecore/govern"
	"github.com/jetsetilly/arcadecore/hardware/scheduler"
)

// Frame returns the number of frames completed.
func (m *Machine) Frame() int {
	return m.frame
}

// FramePeriod returns the duration of a single video frame.
func (m *Machine) FramePeriod() scheduler.Time {
	return scheduler.Hz(m.Cfg.FPS)
}

// FramePosition implements the mixer.FrameClock interface.
func (m *Machine) FramePosition() float64 {
	p := float64((m.Env.Scheduler.Now() - m.frameStart) / m.FramePeriod())
	return min(max(p, 0), 1)
}

// VideoRefresh asks the driver to draw the screen. A full refresh is forced
// after a reset and when the palette has changed.
func (m *Machine) VideoRefresh(full bool) {
	if m.fullRefresh {
		full = true
		m.fullRefresh = false
	}
	if m.Palette != nil && m.Palette.Recalc() {
		full = true
	}
	if full {
		m.Objects.MarkAllDirty()
	}
	m.driver.VideoRefresh(m, full)
}

// AudioUpdate completes the audio for the current frame. The sound chips are
// updated, the streams are completed and the mixer output is sent to the
// attached sinks.
func (m *Machine) AudioUpdate() error {
	for _, chip := range m.Chips {
		chip.Update()
	}
	m.Streams.UpdateFrame()
	return m.Mixer.Update()
}

// RunFrame runs the machine for one video frame. The executor consumes the
// time between timers and will normally be the CPU. It can be nil.
func (m *Machine) RunFrame(exec scheduler.Executor) error {
	m.frameStart = m.Env.Scheduler.Now()
	m.Env.Scheduler.Run(m.frameStart+m.FramePeriod(), exec)

	m.VideoRefresh(false)

	for _, s := range m.frameSinks {
		if err := s.SetFrame(m.frame, m.Screen, m.Palette); err != nil {
			return curated.Errorf(MachineError, err)
		}
	}

	if err := m.AudioUpdate(); err != nil {
		return err
	}

	m.frame++

	if vb, ok := m.driver.(VBlanker); ok {
		vb.VBlank(m)
	}

	return nil
}

// Run the machine with the CPU until continueCheck returns the Ending state.
// The continueCheck function is called at the end of every frame.
func (m *Machine) Run(continueCheck func(frame int) (govern.State, error)) error {
	return m.RunForFrameCount(-1, continueCheck)
}

// RunForFrameCount runs the machine for the specified number of frames. A
// negative number of frames runs until continueCheck returns the Ending
// state.
func (m *Machine) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(_ int) (govern.State, error) { return govern.Running, nil }
	}

	var exec scheduler.Executor
	if m.CPU != nil {
		exec = m.CPU
	}

	targetFrame := m.frame + numFrames

	state := govern.Running
	for (numFrames < 0 || m.frame < targetFrame) && state != govern.Ending {
		switch state {
		case govern.Running:
			if err := m.RunFrame(exec); err != nil {
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf(MachineError, "unsupported emulation state ("+state.String()+")")
		}

		var err error
		state, err = continueCheck(m.frame)
		if err != nil {
			return err
		}
	}

	return nil
}
