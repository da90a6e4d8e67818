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
	"fmt"

	"github.com/jetsetilly/arcadecore/curated"
	"github.com/jetsetilly/arcadecore/environment"
	"github.com/jetsetilly/arcadecore/hardware/audio/mixer"
	"github.com/jetsetilly/arcadecore/hardware/audio/soundchip"
	"github.com/jetsetilly/arcadecore/hardware/audio/streams"
	"github.com/jetsetilly/arcadecore/hardware/cpu"
	"github.com/jetsetilly/arcadecore/hardware/memory/bus"
	"github.com/jetsetilly/arcadecore/hardware/scheduler"
	"github.com/jetsetilly/arcadecore/hardware/video/gfx"
	"github.com/jetsetilly/arcadecore/hardware/video/gfxobj"
	"github.com/jetsetilly/arcadecore/hardware/video/palette"
	"github.com/jetsetilly/arcadecore/logger"
)

// MachineError is the error pattern for invalid machine configurations.
const MachineError = "machine: %v"

// Config describes the hardware of a machine.
type Config struct {
	Name string

	// frames per second of the video hardware
	FPS float64

	// size of the screen in game space
	Width  int
	Height int

	// the area of the screen that is visible. if empty then the whole
	// screen is visible
	VisibleArea gfx.Rect

	// how the monitor is mounted in the cabinet
	Orientation gfx.Orientation

	// number of palette entries. zero means no palette
	PaletteSize int

	// clock of the Z80 in Hz. zero means the machine has no CPU
	CPUClock float64

	SoundChips []soundchip.Interface
}

// Driver supplies the game specific parts of a machine.
type Driver interface {
	// Init is called once by NewMachine(), after the hardware has been
	// created. The driver should install its memory and I/O handlers.
	Init(m *Machine) error

	// VideoRefresh draws the screen. If full is true then the driver should
	// redraw everything and not rely on dirty tracking.
	VideoRefresh(m *Machine, full bool)
}

// VBlanker is implemented by drivers that need to be told when the vertical
// blank starts. Usually to raise an interrupt.
type VBlanker interface {
	VBlank(m *Machine)
}

// FrameSink receives the screen once per frame.
type FrameSink interface {
	SetFrame(frame int, scr *gfx.Bitmap, pal *palette.Palette) error
}

// Machine is the main container for the emulated components of an arcade
// machine.
type Machine struct {
	Env *environment.Environment
	Cfg Config

	Mem *bus.Map
	IO  *bus.Map

	// nil if Config.CPUClock is zero
	CPU *cpu.Z80

	Mixer   *mixer.Mixer
	Streams *streams.Streams
	Chips   []soundchip.Chip
	Latches *soundchip.Latches

	// nil if Config.PaletteSize is zero
	Palette *palette.Palette

	Screen  *gfx.Bitmap
	Objects *gfxobj.Manager

	// same size as the screen. drivers that use it should clear it at the
	// start of VideoRefresh()
	Priority *gfx.PriorityBitmap

	driver     Driver
	frameSinks []FrameSink

	frame      int
	frameStart scheduler.Time

	audioEnabled bool
	fullRefresh  bool
}

// NewMachine is the preferred method of initialisation for the Machine type.
//
// A failure to create or start the sound chips is not an error. Instead, the
// audio of the machine is disabled and the error is logged.
func NewMachine(env *environment.Environment, cfg Config, driver Driver) (*Machine, error) {
	if cfg.FPS <= 0 {
		return nil, curated.Errorf(MachineError, fmt.Sprintf("invalid frame rate (%v)", cfg.FPS))
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, curated.Errorf(MachineError, fmt.Sprintf("invalid screen size (%dx%d)", cfg.Width, cfg.Height))
	}
	if driver == nil {
		return nil, curated.Errorf(MachineError, "no driver")
	}

	m := &Machine{
		Env:          env,
		Cfg:          cfg,
		driver:       driver,
		audioEnabled: true,
	}

	if cfg.VisibleArea.Empty() {
		m.Cfg.VisibleArea = gfx.NewRect(0, 0, cfg.Width, cfg.Height)
	}

	m.Mem = bus.NewMap(env)
	m.IO = bus.NewMap(env)
	if cfg.CPUClock > 0 {
		m.CPU = cpu.NewZ80(env, cfg.CPUClock, m.Mem, m.IO)
	}

	m.Mixer = mixer.NewMixer(env, cfg.Name, cfg.FPS)
	m.Mixer.SetFrameClock(m)
	m.Streams = streams.NewStreams(env, m.Mixer, m, cfg.FPS)
	m.Latches = soundchip.NewLatches(env)

	if cfg.PaletteSize > 0 {
		m.Palette = palette.NewPalette(cfg.PaletteSize)
	}

	m.Screen = gfx.NewBitmap(cfg.Width, cfg.Height, cfg.Orientation)
	m.Priority = gfx.NewPriorityBitmap(cfg.Width, cfg.Height, cfg.Orientation)
	m.Objects = gfxobj.NewManager(env, m.Cfg.VisibleArea)
	if m.Palette != nil {
		m.Objects.SetPalette(m.Palette)
	}

	for _, intf := range cfg.SoundChips {
		chip, err := soundchip.New(m.Streams, intf)
		if err != nil {
			m.disableAudio(err)
			break
		}
		m.Chips = append(m.Chips, chip)
	}

	if err := driver.Init(m); err != nil {
		return nil, curated.Errorf(MachineError, err)
	}

	if m.audioEnabled {
		for _, chip := range m.Chips {
			if err := chip.Start(m.Mixer.SampleRate()); err != nil {
				m.disableAudio(err)
				break
			}
		}
	}

	m.Reset()

	logger.Logf(env, "machine", "%s", m)

	return m, nil
}

func (m *Machine) String() string {
	return fmt.Sprintf("%s: %dx%d %s @ %.2ffps", m.Cfg.Name, m.Cfg.Width, m.Cfg.Height, m.Cfg.Orientation, m.Cfg.FPS)
}

func (m *Machine) disableAudio(err error) {
	logger.Log(m.Env, "machine", err)
	logger.Logf(m.Env, "machine", "audio disabled for %s", m.Cfg.Name)
	for _, chip := range m.Chips {
		chip.Stop()
	}
	m.Chips = m.Chips[:0]
	m.Mixer.SoundEnable(false)
	m.audioEnabled = false
}

// AudioEnabled returns false if the sound hardware could not be started.
func (m *Machine) AudioEnabled() bool {
	return m.audioEnabled
}

// AttachAudioSink adds a sink for the mixed audio.
func (m *Machine) AttachAudioSink(s mixer.Sink) {
	m.Mixer.AttachSink(s)
}

// AttachFrameSink adds a sink for the screen.
func (m *Machine) AttachFrameSink(s FrameSink) {
	m.frameSinks = append(m.frameSinks, s)
}

// Reset the machine. Memory contents are not changed.
func (m *Machine) Reset() {
	if m.CPU != nil {
		m.CPU.Reset()
	}
	for _, chip := range m.Chips {
		chip.Reset()
	}
	m.Latches.Reset()
	m.Objects.MarkAllDirty()
	m.fullRefresh = true
}

// Close ends the emulation. Audio sinks are concluded.
func (m *Machine) Close() error {
	for _, chip := range m.Chips {
		chip.Stop()
	}
	m.Objects.Close()
	return m.Mixer.EndMixing()
}
