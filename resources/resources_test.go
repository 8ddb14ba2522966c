// This file is part of PadTest.
//
// PadTest is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PadTest is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with PadTest.  If not, see <https://www.gnu.org/licenses/>.

package resources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/padtest/resources"
	"github.com/jetsetilly/padtest/test"
)

func TestSearch(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer func() {
		_ = os.Chdir(wd)
	}()

	dir := t.TempDir()
	test.DemandSuccess(t, os.Chdir(dir))

	// file that doesn't exist anywhere comes back unchanged
	test.ExpectEquality(t, resources.Search("missing.bmp"), "missing.bmp")

	// file in the working directory is preferred
	err = os.WriteFile(filepath.Join(dir, "button.bmp"), []byte{0}, 0644)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, resources.Search("button.bmp"), "button.bmp")
}
