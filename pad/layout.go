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

// dimensions of the background image. the window's logical size must match
// or the glyph positions will drift from the artwork
const (
	Width  = 512
	Height = 320
)

// GlyphSize is the width and height of the button and axis glyphs
const GlyphSize = 50

// Position is the top-left screen coordinate for a button glyph
type Position struct {
	X int32
	Y int32
}

// AxisPosition is the top-left screen coordinate for an axis glyph and the
// angle the glyph is rotated by when the axis is deflected in the negative
// direction. positive deflection adds 180 degrees
type AxisPosition struct {
	X     int32
	Y     int32
	Angle float64
}

// ButtonPositions maps every Button to the position of its glyph on the
// background artwork. the array length guarantees the table covers the
// button enumeration exactly
var ButtonPositions = [NumButtons]Position{
	ButtonA:             {X: 387, Y: 167},
	ButtonB:             {X: 431, Y: 132},
	ButtonX:             {X: 342, Y: 132},
	ButtonY:             {X: 389, Y: 101},
	ButtonBack:          {X: 174, Y: 132},
	ButtonGuide:         {X: 233, Y: 132},
	ButtonStart:         {X: 289, Y: 132},
	ButtonLeftStick:     {X: 75, Y: 154},
	ButtonRightStick:    {X: 305, Y: 230},
	ButtonLeftShoulder:  {X: 77, Y: 40},
	ButtonRightShoulder: {X: 396, Y: 36},
	ButtonDpadUp:        {X: 154, Y: 188},
	ButtonDpadDown:      {X: 154, Y: 249},
	ButtonDpadLeft:      {X: 116, Y: 217},
	ButtonDpadRight:     {X: 186, Y: 217},
}

// AxisPositions maps every Axis to the position and base angle of its glyph.
// the trigger glyphs sit partly above the top edge of the window
var AxisPositions = [NumAxes]AxisPosition{
	AxisLeftX:        {X: 74, Y: 153, Angle: 270.0},
	AxisLeftY:        {X: 74, Y: 153, Angle: 0.0},
	AxisRightX:       {X: 306, Y: 231, Angle: 270.0},
	AxisRightY:       {X: 306, Y: 231, Angle: 0.0},
	AxisTriggerLeft:  {X: 91, Y: -20, Angle: 0.0},
	AxisTriggerRight: {X: 375, Y: -20, Angle: 0.0},
}
