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

package preferences

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/arcadecore/curated"
	"github.com/jetsetilly/arcadecore/prefs"
)

// MixerLevels stores user mixing levels for mixer channels. Each entry is
// keyed by machine label and channel name and records the default level that
// was in force when the override was made. The mixer uses the default to
// detect when a saved override no longer belongs to the current channel
// configuration.
type MixerLevels struct {
	path string

	// entries are created on demand. each entry is backed by its own
	// prefs.Disk so that saving one machine's levels preserves all other
	// entries in the file
	entries map[string]*levelEntry

	// machines for which saved levels must be ignored
	invalid map[string]bool
}

type levelEntry struct {
	dsk   *prefs.Disk
	value prefs.String
}

func newMixerLevels(path string) *MixerLevels {
	return &MixerLevels{
		path:    path,
		entries: make(map[string]*levelEntry),
		invalid: make(map[string]bool),
	}
}

func levelKey(machine string, channel string) string {
	k := fmt.Sprintf("mixer.%s.%s", machine, channel)
	return strings.ReplaceAll(k, "::", "_")
}

// entry returns the level entry for the key, loading it from disk if it has
// not been seen before.
func (lv *MixerLevels) entry(key string) (*levelEntry, error) {
	if e, ok := lv.entries[key]; ok {
		return e, nil
	}

	e := &levelEntry{}

	var err error
	e.dsk, err = prefs.NewDisk(lv.path)
	if err != nil {
		return nil, err
	}
	err = e.dsk.Add(key, &e.value)
	if err != nil {
		return nil, err
	}
	err = e.dsk.Load(false)
	if err != nil {
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	lv.entries[key] = e
	return e, nil
}

// Lookup returns the saved level for the channel along with the default level
// that was in force when the level was saved. The ok value is false if there
// is no saved level or if the machine's saved levels have been invalidated.
func (lv *MixerLevels) Lookup(machine string, channel string) (level int, defaultLevel int, ok bool, err error) {
	if lv.invalid[machine] {
		return 0, 0, false, nil
	}

	e, err := lv.entry(levelKey(machine, channel))
	if err != nil {
		return 0, 0, false, err
	}

	s := e.value.String()
	if s == "" {
		return 0, 0, false, nil
	}

	_, err = fmt.Sscanf(s, "%d,%d", &level, &defaultLevel)
	if err != nil {
		return 0, 0, false, fmt.Errorf("mixer levels: %s: %w", s, err)
	}

	return level, defaultLevel, true, nil
}

// Store a level for the channel. The level is not written to disk until
// Save() is called.
func (lv *MixerLevels) Store(machine string, channel string, level int, defaultLevel int) error {
	e, err := lv.entry(levelKey(machine, channel))
	if err != nil {
		return err
	}
	return e.value.Set(fmt.Sprintf("%d,%d", level, defaultLevel))
}

// Invalidate all saved levels for the machine. Future calls to Lookup() for
// the machine will fail until the next call to Save().
func (lv *MixerLevels) Invalidate(machine string) {
	lv.invalid[machine] = true
}

// Save all stored levels for the machine.
func (lv *MixerLevels) Save(machine string) error {
	prefix := levelKey(machine, "")
	for k, e := range lv.entries {
		if !strings.HasPrefix(k, prefix) || e.value.String() == "" {
			continue
		}
		if err := e.dsk.Save(); err != nil {
			return err
		}
	}
	delete(lv.invalid, machine)
	return nil
}
