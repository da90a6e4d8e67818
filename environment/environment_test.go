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

package environment_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/arcadecore/environment"
	"github.com/jetsetilly/arcadecore/hardware/preferences"
	"github.com/jetsetilly/arcadecore/logger"
	"github.com/jetsetilly/arcadecore/test"
)

func TestLoggingPermission(t *testing.T) {
	dir := t.TempDir()
	p, err := preferences.NewPreferencesWithPath(filepath.Join(dir, "prefs"), filepath.Join(dir, "levels"))
	test.DemandSuccess(t, err)

	main, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)
	other, err := environment.NewEnvironment("regress", p)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, main.IsMainEmulation())
	test.ExpectSuccess(t, other.IsEmulation("regress"))

	log := logger.NewLogger(10)
	log.Log(main, "env", "main")
	log.Log(other, "env", "other")

	w := &strings.Builder{}
	log.Write(w)
	test.ExpectEquality(t, w.String(), "env: main\n")
}
