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

// Package resources locates the data files the program needs at runtime: the
// background and glyph bitmaps and the optional controller mapping database.
package resources

import (
	"os"
	"path/filepath"
)

// Search returns the path to use for the named data file. The current working
// directory takes precedence, matching the behaviour of running the program
// from a source checkout. Failing that the directory containing the
// executable is tried.
//
// If the file can be found in neither location the unadorned name is returned
// and the caller's open will fail with a sensible message.
func Search(name string) string {
	if _, err := os.Stat(name); err == nil {
		return name
	}

	if exe, err := os.Executable(); err == nil {
		p := filepath.Join(filepath.Dir(exe), name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return name
}
