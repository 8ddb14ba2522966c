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

package pad

// DeadZone is the symmetric threshold band around zero within which an axis
// is treated as neutral. the glyph decision is re-evaluated afresh every
// frame with no hysteresis so an axis hovering at the boundary will flicker
const DeadZone = 8000

// RumbleDuration is the length of the rumble command in milliseconds. a fresh
// command is issued every frame so the duration only matters when the program
// stalls or exits
const RumbleDuration = 250

// Glyph identifies which of the two glyph textures a Blit request refers to
type Glyph int

// list of valid Glyph values
const (
	GlyphButton Glyph = iota
	GlyphAxis
)

// Renderer is where Compose() sends its glyphs. implementations blit a
// GlyphSize x GlyphSize image with its top-left corner at (x, y), rotated
// clockwise by angle degrees around its centre
type Renderer interface {
	Blit(g Glyph, x int32, y int32, angle float64)
}

// AxisAngle returns the angle the axis glyph should be drawn at for the given
// axis reading. the second return value is false if the reading is inside
// the dead zone and no glyph should be drawn at all
func AxisAngle(a Axis, value int16) (float64, bool) {
	if value < -DeadZone {
		return AxisPositions[a].Angle, true
	}
	if value > DeadZone {
		return AxisPositions[a].Angle + 180.0, true
	}
	return 0, false
}

// Compose draws the glyphs for the current controller state. the background
// is the renderer's responsibility and is assumed to be in place already
func Compose(c Controller, r Renderer) {
	for b := Button(0); b < NumButtons; b++ {
		if c.Button(b) {
			r.Blit(GlyphButton, ButtonPositions[b].X, ButtonPositions[b].Y, 0)
		}
	}

	for a := Axis(0); a < NumAxes; a++ {
		if angle, ok := AxisAngle(a, c.Axis(a)); ok {
			r.Blit(GlyphAxis, AxisPositions[a].X, AxisPositions[a].Y, angle)
		}
	}
}

// Rumble returns the low and high frequency motor intensities for the current
// trigger state. intensity is twice the raw axis reading. the multiplication
// is done in int16 space so a fully depressed trigger wraps to 65534 rather
// than saturating
func Rumble(c Controller) (uint16, uint16) {
	return uint16(c.Axis(AxisTriggerLeft) * 2), uint16(c.Axis(AxisTriggerRight) * 2)
}
