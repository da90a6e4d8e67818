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

package collision_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/arcadecore/environment"
	"github.com/jetsetilly/arcadecore/hardware/preferences"
	"github.com/jetsetilly/arcadecore/hardware/scheduler"
	"github.com/jetsetilly/arcadecore/hardware/video/collision"
	"github.com/jetsetilly/arcadecore/hardware/video/gfx"
	"github.com/jetsetilly/arcadecore/hardware/video/palette"
	"github.com/jetsetilly/arcadecore/hardware/video/sprites"
	"github.com/jetsetilly/arcadecore/test"
)

func newEnv(t *testing.T) *environment.Environment {
	t.Helper()
	dir := t.TempDir()
	p, err := preferences.NewPreferencesWithPath(filepath.Join(dir, "prefs"), filepath.Join(dir, "levels"))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)
	return env
}

var timing = collision.Timing{
	ScanlineTime: scheduler.Usec(64),
	PixelTime:    scheduler.Usec(0.1),
	PixelOffset:  2,
}

type hit struct {
	x, y int
	at   scheduler.Time
}

func setup(t *testing.T) (*environment.Environment, *collision.Renderer, collision.Config, *[]hit) {
	t.Helper()
	env := newEnv(t)

	// a solid 2x2 sprite using pen 1
	e, err := gfx.NewElement(2, 2, 1, []uint8{1, 1, 1, 1})
	test.DemandSuccess(t, err)

	pal := palette.NewPalette(256)
	pal.SetAttribute(0x11, palette.CollisionBit)

	cfg := collision.Config{
		Timing:     timing,
		Element:    e,
		Palette:    pal,
		Screen:     gfx.NewBitmap(8, 16, gfx.Rot0),
		Background: gfx.NewBitmap(8, 16, gfx.Rot0),
	}
	cfg.Background.SetPix(5, 11, 0x10)
	cfg.Background.SetPix(0, 0, 0x20)

	hits := &[]hit{}
	r := collision.NewRenderer(env, cfg, func(x, y int) {
		*hits = append(*hits, hit{x: x, y: y, at: env.Scheduler.Now()})
	})

	return env, r, cfg, hits
}

func TestCollisionTiming(t *testing.T) {
	env, r, cfg, hits := setup(t)

	r.BeginFrame([]sprites.Sprite{{X: 4, Y: 10}})
	env.Scheduler.Run(timing.ScanlineTime*16, nil)

	test.DemandEquality(t, len(*hits), 1)
	h := (*hits)[0]
	test.ExpectEquality(t, h.x, 5)
	test.ExpectEquality(t, h.y, 11)
	test.ExpectApproximate(t, h.at, timing.Beam(5, 11), 1e-12)
	test.ExpectEquality(t, r.Collisions(), 1)

	// sprite is drawn over the background
	test.ExpectEquality(t, cfg.Screen.Pix(4, 10), uint16(1))
	test.ExpectEquality(t, cfg.Screen.Pix(5, 11), uint16(1))
	test.ExpectEquality(t, cfg.Screen.Pix(0, 0), uint16(0x20))
}

func TestCollisionReset(t *testing.T) {
	env, r, _, hits := setup(t)

	r.BeginFrame([]sprites.Sprite{{X: 4, Y: 10}})

	// the second chunk has been rendered but the beam has not reached the
	// colliding pixel
	env.Scheduler.Run(timing.ScanlineTime*9, nil)
	test.ExpectEquality(t, r.Collisions(), 1)
	test.ExpectEquality(t, len(*hits), 0)

	r.Reset()
	env.Scheduler.Run(timing.ScanlineTime*16, nil)
	test.ExpectEquality(t, len(*hits), 0)
}

func TestNoCollision(t *testing.T) {
	env, r, _, hits := setup(t)

	r.BeginFrame([]sprites.Sprite{{X: 0, Y: 2}})
	env.Scheduler.Run(timing.ScanlineTime*16, nil)
	test.ExpectEquality(t, len(*hits), 0)
}
