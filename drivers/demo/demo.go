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

package demo

import (
	"fmt"

	"github.com/jetsetilly/arcadecore/curated"
	"github.com/jetsetilly/arcadecore/environment"
	"github.com/jetsetilly/arcadecore/hardware"
	"github.com/jetsetilly/arcadecore/hardware/audio/dac"
	"github.com/jetsetilly/arcadecore/hardware/audio/hc55516"
	"github.com/jetsetilly/arcadecore/hardware/audio/mixer"
	"github.com/jetsetilly/arcadecore/hardware/audio/sn76496"
	"github.com/jetsetilly/arcadecore/hardware/audio/soundchip"
	"github.com/jetsetilly/arcadecore/hardware/memory/bus"
	"github.com/jetsetilly/arcadecore/hardware/peripherals/slapstic"
	"github.com/jetsetilly/arcadecore/hardware/peripherals/ticket"
	"github.com/jetsetilly/arcadecore/hardware/video/collision"
	"github.com/jetsetilly/arcadecore/hardware/video/gfx"
	"github.com/jetsetilly/arcadecore/hardware/video/gfxobj"
	"github.com/jetsetilly/arcadecore/hardware/video/palette"
	"github.com/jetsetilly/arcadecore/hardware/video/sprites"
	"github.com/jetsetilly/arcadecore/hardware/video/tilemap"
)

// Name of the machine.
const Name = "demo"

// size of the tilemap in cells.
const (
	tileCols = 32
	tileRows = 28
)

// the value written to the priority bitmap by the tilemap. sprites have a
// priority mask of zero so they are drawn in front.
const bgPriority = 1

// the beam. the collision detector works out when to signal a collision from
// these.
const (
	totalLines = 264
	lineClocks = 384
)

// each sprite RAM bank holds two bytes for each of 64 sprites.
const spriteBankSize = 0x80

// the slapstic chip protecting the ROM window.
const slapsticChip = 101

// Config returns the hardware configuration of the demo machine.
func Config() hardware.Config {
	return hardware.Config{
		Name:        Name,
		FPS:         60,
		Width:       tileCols * 8,
		Height:      tileRows * 8,
		Orientation: gfx.Rot90,
		PaletteSize: 64,
		CPUClock:    3072000,
		SoundChips: []soundchip.Interface{
			{
				Kind:   soundchip.SN76496,
				Num:    1,
				Clock:  []int{3579545},
				Levels: []int{mixer.Level(50, mixer.PanCenter, 0)},
			},
			{
				Kind:   soundchip.DAC,
				Num:    1,
				Levels: dac.DefaultLevels(1, 50),
			},
			{
				Kind:   soundchip.HC55516,
				Num:    1,
				Levels: []int{mixer.Level(80, mixer.PanCenter, 0)},
			},
		},
	}
}

// Demo implements the hardware.Driver and hardware.VBlanker interfaces.
type Demo struct {
	vram   *bus.RAM
	cram   *bus.RAM
	sprram [3]*bus.RAM
	ram    *bus.RAM

	slap   *slapstic.Slapstic
	ticket *ticket.Dispenser

	// any of the sound chips may be nil if the audio of the machine has
	// been disabled
	psg  *sn76496.SN76496
	dac  *dac.DAC
	cvsd *hc55516.HC55516

	chars *gfx.Element
	spr   *gfx.Element
	bg    *tilemap.Tilemap
	layer *gfxobj.List
	pri   *gfx.PriorityBitmap

	// sprites are drawn again over the tilemap, one chunk at a time, to find
	// collisions. the result is never displayed
	coll       *collision.Renderer
	collisions int

	lastLatch uint8
}

// NewMachine creates a demo machine ready to run.
func NewMachine(env *environment.Environment) (*hardware.Machine, *Demo, error) {
	d := &Demo{}
	m, err := hardware.NewMachine(env, Config(), d)
	if err != nil {
		return nil, nil, err
	}
	return m, d, nil
}

func (d *Demo) String() string {
	return fmt.Sprintf("counter=%d tickets=%d collisions=%d slapstic=%s", d.Counter(), d.Tickets(), d.collisions, d.slap)
}

// Init implements the hardware.Driver interface.
func (d *Demo) Init(m *hardware.Machine) error {
	for _, c := range m.Chips {
		switch c := c.(type) {
		case *sn76496.SN76496:
			d.psg = c
		case *dac.DAC:
			d.dac = c
		case *hc55516.HC55516:
			d.cvsd = c
		}
	}

	var err error

	d.chars, d.spr, err = decodeGraphics()
	if err != nil {
		return curated.Errorf("demo: %v", err)
	}

	d.initPalette(m)

	d.bg = tilemap.NewTilemap(d.chars, tileCols, tileRows, d.tileInfo)
	d.pri = m.Priority

	scanline := m.FramePeriod() / totalLines
	tmb := d.bg.Bitmap()
	d.coll = collision.NewRenderer(m.Env, collision.Config{
		Timing: collision.Timing{
			ScanlineTime: scanline,
			PixelTime:    scanline / lineClocks,
		},
		Layout:     sprites.NamcoLayout,
		Element:    d.spr,
		Palette:    m.Palette,
		Screen:     gfx.NewBitmap(tmb.Width(), tmb.Height(), gfx.Rot0),
		Background: tmb,
	}, func(_, _ int) {
		d.collisions++
	})

	if err := d.installMemory(m); err != nil {
		return curated.Errorf("demo: %v", err)
	}
	if err := d.installIO(m); err != nil {
		return curated.Errorf("demo: %v", err)
	}

	d.layer, err = m.Objects.Create(2, 2, nil)
	if err != nil {
		return curated.Errorf("demo: %v", err)
	}
	bg := d.layer.Object(0)
	bg.Priority = 0
	bg.SpecialHandler = d.drawTilemap
	fg := d.layer.Object(1)
	fg.Priority = 1
	fg.SpecialHandler = d.drawSprites

	return nil
}

// the first 32 pens are for the tilemap and the second 32 pens are for the
// sprites. both are the same ramp of colours.
func (d *Demo) initPalette(m *hardware.Machine) {
	if m.Palette == nil {
		return
	}
	for i := 0; i < m.Palette.Len(); i++ {
		c := i & 0x1f
		r := uint8((c & 0x03) * 0x55)
		g := uint8(((c >> 2) & 0x03) * 0x55)
		b := uint8(((c >> 4) & 0x01) * 0xff)
		m.Palette.ChangeColor(i, r, g, b)

		// a sprite of colour 1 over a tile of colour 2 combines to colour 3
		// of the sprite pens
		if i&0x3c == 0x2c {
			m.Palette.SetAttribute(i, palette.CollisionBit)
		}
	}
}

func (d *Demo) installMemory(m *hardware.Machine) error {
	if err := m.Mem.InstallROM("program", romStart, romEnd, bus.NewROM(programROM())); err != nil {
		return err
	}

	d.vram = bus.NewRAM(tileCols * tileRows)
	d.cram = bus.NewRAM(tileCols * tileRows)
	for _, r := range []struct {
		name  string
		start uint16
		ram   *bus.RAM
	}{
		{name: "video", start: vramStart, ram: d.vram},
		{name: "color", start: cramStart, ram: d.cram},
	} {
		ram := r.ram
		err := m.Mem.Install(bus.Range{
			Name:  r.name,
			Start: r.start,
			End:   r.start + uint16(len(ram.Data())) - 1,
			Read:  ram.Read,
			Write: func(offset uint16, data uint8) {
				ram.Write(offset, data)
				d.bg.MarkIndexDirty(int(offset))
			},
			Peek: ram.Read,
			Poke: func(offset uint16, data uint8) error {
				d.bg.MarkIndexDirty(int(offset))
				return ram.Poke(offset, data)
			},
		})
		if err != nil {
			return err
		}
	}

	for i := range d.sprram {
		d.sprram[i] = bus.NewRAM(spriteBankSize)
		start := uint16(spriteStart + i*spriteBankSize)
		if err := m.Mem.InstallRAM(fmt.Sprintf("sprite %d", i+1), start, start+spriteBankSize-1, d.sprram[i]); err != nil {
			return err
		}
	}

	// every sprite except the first is disabled
	flags := d.sprram[2].Data()
	for offs := 2; offs < spriteBankSize; offs += 2 {
		flags[offs+1] = 0x02
	}
	d.sprram[0].Data()[0] = 0x05
	d.sprram[0].Data()[1] = 0x01
	d.sprram[1].Data()[0] = 100

	err := m.Mem.Install(bus.Range{
		Name:  "sound latch",
		Start: latchAddr,
		End:   latchAddr,
		Write: m.Latches.WriteHandler(0),
	})
	if err != nil {
		return err
	}

	d.ram = bus.NewRAM(ramEnd - ramStart + 1)
	if err := m.Mem.InstallRAM("work", ramStart, ramEnd, d.ram); err != nil {
		return err
	}

	d.slap, err = slapstic.NewSlapstic(m.Env, slapsticChip)
	if err != nil {
		return err
	}
	h, err := slapstic.NewHandler(d.slap, slapsticROM())
	if err != nil {
		return err
	}
	return h.Install(m.Mem, slapBase)
}

// each bank of the slapstic ROM is filled with the bank number.
func slapsticROM() []uint8 {
	rom := make([]uint8, slapstic.WindowSize/slapstic.BankSize*slapstic.BankSize)
	for i := range rom {
		rom[i] = uint8(i / slapstic.BankSize)
	}
	return rom
}

func (d *Demo) installIO(m *hardware.Machine) error {
	d.ticket = ticket.NewDispenser(m.Env, ticket.Config{
		TimeMsec:         50,
		MotorActiveHigh:  true,
		StatusActiveHigh: true,
	})

	port := func(name string, p uint16, read bus.ReadHandler, write bus.WriteHandler) bus.Range {
		return bus.Range{
			Name:   name,
			Start:  p,
			End:    p,
			Mirror: 0xff00,
			Read:   read,
			Write:  write,
		}
	}

	ports := []bus.Range{
		port("psg", portPSG, nil, func(_ uint16, data uint8) {
			if d.psg != nil {
				d.psg.Write(0, data)
			}
		}),
		port("dac", portDAC, nil, func(_ uint16, data uint8) {
			if d.dac != nil {
				d.dac.DataW(0, data)
			}
		}),
		port("cvsd digit", portCVSDDigit, nil, func(_ uint16, data uint8) {
			if d.cvsd != nil {
				d.cvsd.DigitClockClearW(0, data)
			}
		}),
		port("ticket", portTicket, d.ticket.Read, d.ticket.Write),
		port("cvsd clock", portCVSDClock, nil, func(_ uint16, _ uint8) {
			if d.cvsd != nil {
				d.cvsd.ClockSetW(0)
			}
		}),
		port("irq ack", portIRQAck, nil, func(_ uint16, _ uint8) {
			m.CPU.SetIRQ(false, 0)
		}),
	}

	for _, p := range ports {
		if err := m.IO.Install(p); err != nil {
			return err
		}
	}

	return nil
}

func (d *Demo) tileInfo(col, row int) tilemap.TileInfo {
	i := row*tileCols + col
	attr := d.cram.Data()[i]
	return tilemap.TileInfo{
		Code:  int(d.vram.Data()[i]),
		Color: int(attr & 0x07),
		FlipX: attr&0x40 != 0,
		FlipY: attr&0x80 != 0,
	}
}

func (d *Demo) drawTilemap(dst *gfx.Bitmap, obj *gfxobj.Object) bool {
	clip := obj.Clip()
	d.pri.Clear()
	d.bg.DrawPriority(dst, d.pri, []int{0}, []int{0}, &clip, gfx.Opaque, 0, bgPriority)
	return true
}

func (d *Demo) drawSprites(dst *gfx.Bitmap, obj *gfxobj.Object) bool {
	clip := obj.Clip()
	spr := sprites.DecodeNamco(d.sprram[0].Data(), d.sprram[1].Data(), d.sprram[2].Data())
	sprites.NamcoLayout.PDraw(dst, d.pri, d.spr, spr, &clip, gfx.TransparentPen, 0)
	return true
}

// VideoRefresh implements the hardware.Driver interface.
func (d *Demo) VideoRefresh(m *hardware.Machine, full bool) {
	if full {
		d.bg.MarkAllDirty()
	}
	m.Objects.Update()
	m.Objects.Draw(m.Screen)
}

// VBlank implements the hardware.VBlanker interface. The CPU interrupt is
// raised, the sprites are latched for collision detection in the next frame
// and the sound latch is checked for a new value. A new value changes the
// tone of the second PSG generator.
func (d *Demo) VBlank(m *hardware.Machine) {
	m.CPU.SetIRQ(true, 0xff)

	d.coll.BeginFrame(sprites.DecodeNamco(d.sprram[0].Data(), d.sprram[1].Data(), d.sprram[2].Data()))

	v := m.Latches.Read(0)
	if v == d.lastLatch {
		return
	}
	d.lastLatch = v

	if d.psg != nil {
		d.psg.Write(0, 0xa0|(v&0x0f))
		d.psg.Write(0, (v>>4)&0x3f)
		d.psg.Write(0, 0xb4)
	}
}

// Counter returns the number of interrupts handled by the program, modulo
// 256.
func (d *Demo) Counter() uint8 {
	return d.ram.Data()[counterAddr-ramStart]
}

// Tickets returns the number of tickets dispensed.
func (d *Demo) Tickets() int {
	return d.ticket.Dispensed()
}

// Collisions returns the number of collisions between a sprite and the
// tilemap signalled since the machine was created.
func (d *Demo) Collisions() int {
	return d.collisions
}

// Tile returns the code of the tile at the column and row.
func (d *Demo) Tile(col, row int) uint8 {
	return d.vram.Data()[row*tileCols+col]
}

// Slapstic returns the slapstic chip protecting the ROM window.
func (d *Demo) Slapstic() *slapstic.Slapstic {
	return d.slap
}
