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

// Package preferences holds the preference values used by the emulated
// hardware: open-bus behaviour, the audio output format and the per-channel
// mixing level overrides.
package preferences

import (
	"fmt"

	"github.com/jetsetilly/arcadecore/curated"
	"github.com/jetsetilly/arcadecore/prefs"
	"github.com/jetsetilly/arcadecore/resources"
)

// DefaultPrefsFile is the name of the preferences file in the resources
// directory.
const DefaultPrefsFile = "preferences"

// MixerLevelsFile is the name of the file storing the user mixing levels.
const MixerLevelsFile = "mixerlevels"

// sample rate limits accepted by the SampleRate preference.
const (
	MinSampleRate = 8000
	MaxSampleRate = 96000
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// unmapped bus reads return the last value on the data bus. if RandomPins
	// is true then a random value is returned instead
	RandomPins prefs.Bool

	// native sample rate of the mixer in Hz
	SampleRate prefs.Int

	// mixer produces interleaved stereo output
	Stereo prefs.Bool

	// mono output is duplicated to both channels of the sink
	ForceStereo prefs.Bool

	// user overrides of channel mixing levels
	MixerLevels *MixerLevels
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Preferences are stored in the resources directory.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	lvl, err := resources.JoinPath(MixerLevelsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesWithPath(pth, lvl)
}

// NewPreferencesWithPath creates a Preferences instance using the specified
// files rather than the files in the resources directory.
func NewPreferencesWithPath(pth string, levelsPth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.SampleRate.SetHookPre(func(v prefs.Value) error {
		r := v.(int)
		if r < MinSampleRate || r > MaxSampleRate {
			return fmt.Errorf("sample rate must be between %d and %d", MinSampleRate, MaxSampleRate)
		}
		return nil
	})

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.randpins", &p.RandomPins)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("sound.samplerate", &p.SampleRate)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("sound.stereo", &p.Stereo)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("sound.forcestereo", &p.ForceStereo)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	p.MixerLevels = newMixerLevels(levelsPth)

	return p, nil
}

// SetDefaults reverts all hardware preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.RandomPins.Set(false)
	p.SampleRate.Set(22050)
	p.Stereo.Set(false)
	p.ForceStereo.Set(false)
}

// Load current hardware preference from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
