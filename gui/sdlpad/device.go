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

package sdlpad

import (
	"github.com/jetsetilly/padtest/curated"
	"github.com/jetsetilly/padtest/pad"

	"github.com/veandco/go-sdl2/sdl"
)

// device wraps the SDL game controller handle. it implements the pad.Device
// interface
//
// the pad package numbers buttons and axes identically to the SDL
// enumerations so the identifiers convert directly
type device struct {
	ctrl *sdl.GameController
}

// Button implements the pad.Controller interface
func (d *device) Button(b pad.Button) bool {
	return d.ctrl.Button(sdl.GameControllerButton(b)) == sdl.PRESSED
}

// Axis implements the pad.Controller interface
func (d *device) Axis(a pad.Axis) int16 {
	return d.ctrl.Axis(sdl.GameControllerAxis(a))
}

// Name implements the pad.Device interface
func (d *device) Name() string {
	return d.ctrl.Name()
}

// InstanceID implements the pad.Device interface
func (d *device) InstanceID() int32 {
	return int32(d.ctrl.Joystick().InstanceID())
}

// Rumble implements the pad.Device interface
func (d *device) Rumble(lowFreq uint16, highFreq uint16, durationMs uint32) error {
	return d.ctrl.Rumble(lowFreq, highFreq, durationMs)
}

// Close implements the pad.Device interface
func (d *device) Close() {
	d.ctrl.Close()
}

// opener implements the pad.Opener interface with the SDL game controller
// open function
type opener struct{}

func (o opener) Open(index int) (pad.Device, error) {
	ctrl := sdl.GameControllerOpen(index)
	if ctrl == nil {
		return nil, curated.Errorf(ControllerError, sdl.GetError())
	}
	return &device{ctrl: ctrl}, nil
}
