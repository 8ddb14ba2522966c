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

// Package pad is the core of the controller visualizer. It decides which
// glyphs appear on screen for a given controller state, derives the rumble
// intensities from the trigger axes, and keeps the at-most-one-open rule for
// hot-plugged devices.
//
// The package never touches SDL directly. Controller state arrives through
// the Controller interface and glyphs leave through the Renderer interface.
// The gui/sdlpad package provides the SDL implementations of both.
package pad
