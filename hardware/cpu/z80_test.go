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

package cpu_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/arcadecore/environment"
	"github.com/jetsetilly/arcadecore/hardware/cpu"
	"github.com/jetsetilly/arcadecore/hardware/memory/bus"
	"github.com/jetsetilly/arcadecore/hardware/preferences"
	"github.com/jetsetilly/arcadecore/hardware/scheduler"
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

func TestZ80Program(t *testing.T) {
	env := newEnv(t)

	ram := bus.NewRAM(0x1000)
	mem := bus.NewMap(env)
	test.DemandSuccess(t, mem.InstallRAM("ram", 0x0000, 0x0fff, ram))

	var out []uint8
	io := bus.NewMap(env)
	test.DemandSuccess(t, io.Install(bus.Range{
		Name:   "latch",
		Start:  0x0010,
		End:    0x0010,
		Mirror: 0xff00,
		Write: func(_ uint16, data uint8) {
			out = append(out, data)
		},
	}))

	// LD A,0x42 ; OUT (0x10),A ; HALT
	copy(ram.Data(), []uint8{0x3e, 0x42, 0xd3, 0x10, 0x76})

	z := cpu.NewZ80(env, 4000000, mem, io)
	test.ExpectFailure(t, z.Halted())

	env.Scheduler.RunFor(scheduler.Usec(100), z)

	test.DemandEquality(t, len(out), 1)
	test.ExpectEquality(t, out[0], uint8(0x42))
	test.ExpectSuccess(t, z.Halted())

	// 100 microseconds at 4MHz is 400 cycles. a halted Z80 burns four
	// cycles at a time so there may be an overrun of up to three cycles
	test.ExpectApproximate(t, int(z.Cycles()), 400, 3)

	z.Reset()
	test.ExpectEquality(t, z.PC(), uint16(0))
	test.ExpectEquality(t, z.Cycles(), uint64(0))
}

func TestZ80TimerInterleave(t *testing.T) {
	env := newEnv(t)

	ram := bus.NewRAM(0x1000)
	mem := bus.NewMap(env)
	test.DemandSuccess(t, mem.InstallRAM("ram", 0x0000, 0x0fff, ram))

	// endless NOPs
	z := cpu.NewZ80(env, 1000000, mem, nil)

	// the CPU runs up to the timer before it fires
	var at uint64
	env.Scheduler.Schedule(scheduler.Usec(40), func(_ int) {
		at = z.Cycles()
	}, 0)

	env.Scheduler.RunFor(scheduler.Usec(100), z)
	test.ExpectApproximate(t, int(at), 40, 4)
	test.ExpectApproximate(t, int(z.Cycles()), 100, 4)
}
