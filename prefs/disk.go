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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/arcadecore/curated"
)

// Sentinal error returned by Disk.Load() if the preferences file cannot be
// found. Callers will usually want to ignore this error.
const NoPrefsFile = "prefs: file does not exist (%s)"

// WarningBoilerPlate is written as the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// separator between key and value in the preferences file.
const keySep = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		entries: make(map[string]pref),
	}
	return dsk, nil
}

func (dsk *Disk) String() string {
	keys := dsk.sortedKeys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) sortedKeys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add a preference value to the disk. The key must be unique for the Disk
// instance and must not contain the key separator. If the key has been given
// a value on the command line (see PushCommandLineStack()) then the value is
// set immediately.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("prefs: key cannot be empty")
	}
	if strings.Contains(key, strings.TrimSpace(keySep)) {
		return fmt.Errorf("prefs: key cannot contain %q", strings.TrimSpace(keySep))
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key already added (%s)", key)
	}

	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}

	return nil
}

// Reset all preference values to their zero value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.sortedKeys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}
	return nil
}

// readFile returns the key/value pairs found in the preferences file. a
// missing file is not an error but the returned boolean will be false.
func readFile(path string) (map[string]string, bool, error) {
	entries := make(map[string]string)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return entries, false, nil
		}
		return nil, false, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line must be the boilerplate warning. an empty file is also
	// acceptable
	if !scanner.Scan() {
		return entries, true, nil
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, true, fmt.Errorf("prefs: not a valid prefs file (%s)", path)
	}

	for scanner.Scan() {
		spt := strings.SplitN(scanner.Text(), keySep, 2)
		if len(spt) != 2 {
			continue
		}
		entries[spt[0]] = spt[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, true, fmt.Errorf("prefs: %w", err)
	}

	return entries, true, nil
}

// Save current preference values to disk. Entries in the existing file that
// this Disk instance doesn't know about are preserved.
func (dsk *Disk) Save() error {
	entries, _, err := readFile(dsk.path)
	if err != nil {
		return err
	}

	for k, v := range dsk.entries {
		entries[k] = v.String()
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, keySep, entries[k])
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("prefs: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. If the limit argument is true then
// values that have been overridden on the command line are not touched.
//
// If the preferences file does not exist then a NoPrefsFile error is
// returned.
func (dsk *Disk) Load(limit bool) error {
	entries, exists, err := readFile(dsk.path)
	if err != nil {
		return err
	}
	if !exists {
		return curated.Errorf(NoPrefsFile, dsk.path)
	}

	for k, v := range entries {
		p, ok := dsk.entries[k]
		if !ok {
			continue
		}
		if limit && commandLineOverride(k) {
			continue
		}
		if err := p.Set(v); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}

	return nil
}
