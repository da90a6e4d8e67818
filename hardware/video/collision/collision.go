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

// Package collision implements a sprite renderer that detects collisions in
// the way of hardware that signals them through the palette.
//
// The screen is rendered in chunks of ChunkLines scanlines as the beam
// reaches them. When a non-transparent sprite pixel is combined with the
// background pen underneath it and the resulting palette entry has the
// collision attribute, an interrupt is scheduled for the moment the beam
// reaches that pixel. Interrupts are delivered in beam order and are
// cancelled by Reset(), which drivers call on VBLANK.
package collision

import (
	"fmt"

	"github.com/jetsetilly/arcadecore/environment"
	"github.com/jetsetilly/arcadecore/hardware/scheduler"
	"github.com/jetsetilly/arcadecore/hardware/video/gfx"
	"github.com/jetsetilly/arcadecore/hardware/video/palette"
	"github.com/jetsetilly/arcadecore/hardware/video/sprites"
	"github.com/jetsetilly/arcadecore/logger"
)

// ChunkLines is the number of scanlines rendered at once.
const ChunkLines = 8

// MaxPerFrame is the maximum number of collision interrupts scheduled in a
// single frame.
const MaxPerFrame = 128

// Timing of the beam. The time of pixel (x, y) relative to the start of the
// frame is y*ScanlineTime + (x+PixelOffset)*PixelTime.
type Timing struct {
	ScanlineTime scheduler.Time
	PixelTime    scheduler.Time
	PixelOffset  int
}

// Beam returns the time of the pixel relative to the start of the frame.
func (t Timing) Beam(x, y int) scheduler.Time {
	return t.ScanlineTime*scheduler.Time(y) + t.PixelTime*scheduler.Time(x+t.PixelOffset)
}

// Config for the Renderer.
type Config struct {
	Timing  Timing
	Layout  sprites.Layout
	Element *gfx.Element
	Palette *palette.Palette

	// the screen and the playfield that sprites are drawn over. both must be
	// the same size
	Screen     *gfx.Bitmap
	Background *gfx.Bitmap
}

// Renderer draws sprites over the background one chunk at a time.
type Renderer struct {
	env *environment.Environment
	cfg Config

	// called when the beam reaches a colliding pixel
	interrupt func(x, y int)

	frameStart scheduler.Time
	sprites    []sprites.Sprite

	chunks     []scheduler.Handle
	collisions []scheduler.Handle
	count      int
}

// NewRenderer is the preferred method of initialisation for the Renderer
// type.
func NewRenderer(env *environment.Environment, cfg Config, interrupt func(x, y int)) *Renderer {
	return &Renderer{
		env:       env,
		cfg:       cfg,
		interrupt: interrupt,
	}
}

func (r *Renderer) String() string {
	return fmt.Sprintf("%d sprites, %d collisions", len(r.sprites), r.count)
}

// Collisions returns the number of collisions scheduled in the current frame.
func (r *Renderer) Collisions() int {
	return r.count
}

// Reset cancels any pending chunks and collision interrupts.
func (r *Renderer) Reset() {
	for _, h := range r.chunks {
		r.env.Scheduler.Cancel(h)
	}
	for _, h := range r.collisions {
		r.env.Scheduler.Cancel(h)
	}
	r.chunks = r.chunks[:0]
	r.collisions = r.collisions[:0]
	r.count = 0
}

// BeginFrame latches the sprite table and schedules the rendering of each
// chunk. The frame starts at the current virtual time.
func (r *Renderer) BeginFrame(spr []sprites.Sprite) {
	r.Reset()

	r.frameStart = r.env.Scheduler.Now()
	r.sprites = append(r.sprites[:0], spr...)

	if r.cfg.Screen == nil {
		return
	}

	for y := 0; y < r.cfg.Screen.Height(); y += ChunkLines {
		delay := r.cfg.Timing.ScanlineTime * scheduler.Time(y)
		r.chunks = append(r.chunks, r.env.Scheduler.Schedule(delay, r.RenderChunk, y))
	}
}

// RenderChunk draws the background and sprites for the scanlines starting at
// first. Normally called by the timers set up by BeginFrame().
func (r *Renderer) RenderChunk(first int) {
	scr := r.cfg.Screen
	if scr == nil {
		return
	}

	chunk := gfx.Rect{MinX: 0, MaxX: scr.Width() - 1, MinY: first, MaxY: first + ChunkLines - 1}
	chunk = chunk.Intersect(scr.Bounds())
	if chunk.Empty() {
		return
	}

	if r.cfg.Background != nil {
		gfx.CopyBitmap(scr, r.cfg.Background, false, false, 0, 0, &chunk, gfx.Opaque, 0)
	}

	e := r.cfg.Element
	if e == nil {
		return
	}

	for _, s := range r.sprites {
		r.cfg.Layout.Tiles(s, e.Width, e.Height, func(code, sx, sy int) {
			r.drawTile(chunk, s, code, sx, sy)
		})
	}
}

func (r *Renderer) drawTile(chunk gfx.Rect, s sprites.Sprite, code, sx, sy int) {
	e := r.cfg.Element

	area := gfx.NewRect(sx, sy, e.Width, e.Height).Intersect(chunk)
	if area.Empty() {
		return
	}

	for y := area.MinY; y <= area.MaxY; y++ {
		ey := y - sy
		if s.FlipY {
			ey = e.Height - 1 - ey
		}
		for x := area.MinX; x <= area.MaxX; x++ {
			ex := x - sx
			if s.FlipX {
				ex = e.Width - 1 - ex
			}

			p := e.Pixel(code, ex, ey)
			if p == 0 {
				continue
			}

			pen := e.Pen(s.Color, p)
			if r.cfg.Palette != nil && r.cfg.Background != nil {
				combined := int(pen | r.cfg.Background.Pix(x, y))
				if r.cfg.Palette.Attribute(combined)&palette.CollisionBit == palette.CollisionBit {
					r.collide(x, y)
				}
			}

			r.cfg.Screen.SetPix(x, y, pen)
		}
	}
}

func (r *Renderer) collide(x, y int) {
	if r.count >= MaxPerFrame {
		return
	}
	r.count++
	if r.count == MaxPerFrame {
		logger.Logf(r.env, "collision", "limit of %d collisions reached", MaxPerFrame)
	}

	delay := r.frameStart + r.cfg.Timing.Beam(x, y) - r.env.Scheduler.Now()
	r.collisions = append(r.collisions, r.env.Scheduler.Schedule(delay, r.fire, y<<16|x))
}

func (r *Renderer) fire(param int) {
	if r.interrupt != nil {
		r.interrupt(param&0xffff, param>>16)
	}
}
