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

// Button identifies one of the standardised gamepad buttons. The numbering
// mirrors the SDL game controller button enumeration and must not be
// reordered
type Button int

// list of valid Button values
const (
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonBack
	ButtonGuide
	ButtonStart
	ButtonLeftStick
	ButtonRightStick
	ButtonLeftShoulder
	ButtonRightShoulder
	ButtonDpadUp
	ButtonDpadDown
	ButtonDpadLeft
	ButtonDpadRight
	NumButtons
)

func (b Button) String() string {
	switch b {
	case ButtonA:
		return "a"
	case ButtonB:
		return "b"
	case ButtonX:
		return "x"
	case ButtonY:
		return "y"
	case ButtonBack:
		return "back"
	case ButtonGuide:
		return "guide"
	case ButtonStart:
		return "start"
	case ButtonLeftStick:
		return "leftstick"
	case ButtonRightStick:
		return "rightstick"
	case ButtonLeftShoulder:
		return "leftshoulder"
	case ButtonRightShoulder:
		return "rightshoulder"
	case ButtonDpadUp:
		return "dpup"
	case ButtonDpadDown:
		return "dpdown"
	case ButtonDpadLeft:
		return "dpleft"
	case ButtonDpadRight:
		return "dpright"
	}
	return "unknown"
}

// Axis identifies one of the standardised gamepad axes. As with the Button
// type the numbering mirrors the SDL enumeration
type Axis int

// list of valid Axis values
const (
	AxisLeftX Axis = iota
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisTriggerLeft
	AxisTriggerRight
	NumAxes
)

func (a Axis) String() string {
	switch a {
	case AxisLeftX:
		return "leftx"
	case AxisLeftY:
		return "lefty"
	case AxisRightX:
		return "rightx"
	case AxisRightY:
		return "righty"
	case AxisTriggerLeft:
		return "lefttrigger"
	case AxisTriggerRight:
		return "righttrigger"
	}
	return "unknown"
}

// Controller is the current state of an open device. Implementations poll the
// device afresh on every call, there is no caching in the pad package
type Controller interface {
	// Button returns true if the identified button is currently pressed
	Button(b Button) bool

	// Axis returns the signed 16-bit reading of the identified axis
	Axis(a Axis) int16
}
