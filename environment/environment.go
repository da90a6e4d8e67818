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

// Package environment is the context shared by every subsystem of a single
// emulated machine. Nothing in the hardware packages keeps process wide
// emulation state. Instead, an Environment is created by the machine and
// passed to each constructor.
package environment

import (
	"github.com/jetsetilly/arcadecore/hardware/preferences"
	"github.com/jetsetilly/arcadecore/hardware/scheduler"
	"github.com/jetsetilly/arcadecore/random"
)

// Label is used to name the environment.
type Label string

// MainEmulation is the label used for the main emulation. Only the main
// emulation is allowed to make log entries.
const MainEmulation = Label("")

// Environment is used to provide context for an emulation. Particularly
// useful when running more than one emulation in parallel.
type Environment struct {
	Label Label

	// the virtual time service for the machine
	Scheduler *scheduler.Scheduler

	// any randomisation required by the emulation should be retrieved through
	// this structure
	Random *random.Random

	// the emulation preferences
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
//
// The prefs argument can be nil, in which case preferences are loaded from
// the default preferences file.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label:     label,
		Scheduler: scheduler.NewScheduler(),
	}
	env.Random = random.NewRandom(env.Scheduler)

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// Normalise ensures the environment is in a known default state. Useful for
// regression testing where the initial state must be the same for every run.
func (env *Environment) Normalise() {
	env.Random.ZeroSeed = true
	env.Random.Reset()
	env.Prefs.SetDefaults()
}

// IsMainEmulation returns true if the environment is for the main emulation.
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// IsEmulation returns true if the environment has the specified label.
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}

// AllowLogging implements the logger.Permission interface. A nil Environment
// allows logging.
func (env *Environment) AllowLogging() bool {
	return env == nil || env.IsMainEmulation()
}
