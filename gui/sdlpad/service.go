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
	"fmt"

	"github.com/jetsetilly/padtest/logger"
	"github.com/jetsetilly/padtest/pad"

	"github.com/veandco/go-sdl2/sdl"
)

// Service runs one frame of the visualizer loop: draw the background, drain
// pending events, overlay the glyphs for the current controller state, push
// the rumble command and present the frame.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPad) Service() {
	// blank screen, set up for drawing this frame
	scr.renderer.SetDrawColor(255, 255, 255, 255)
	scr.renderer.Clear()
	scr.renderer.Copy(scr.background, nil, nil)

	// loop until there are no more events to retrieve. servicing just one
	// event per frame is not enough, queued events would take one frame or
	// longer to resolve
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.ControllerDeviceEvent:
			scr.serviceDeviceEvent(ev)

		case *sdl.ControllerAxisEvent:
			logger.Logf(logger.Allow, "sdl", "axis %s changed to %d",
				sdl.GameControllerGetStringForAxis(sdl.GameControllerAxis(ev.Axis)), ev.Value)

		case *sdl.ControllerButtonEvent:
			state := "released"
			if ev.State == sdl.PRESSED {
				state = "pressed"
			}
			logger.Logf(logger.Allow, "sdl", "button %s %s",
				sdl.GameControllerGetStringForButton(sdl.GameControllerButton(ev.Button)), state)

		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
				scr.done = true
			}

		// close window
		case *sdl.QuitEvent:
			scr.done = true
		}
	}

	if d := scr.binding.Device(); d != nil {
		pad.Compose(d, scr)

		// a fresh rumble command is pushed every frame a controller is
		// open, even when both intensities are zero
		lo, hi := pad.Rumble(d)
		if err := d.Rumble(lo, hi, pad.RumbleDuration); err != nil {
			logger.Log(logger.Allow, "sdlpad", err)
		}
	}

	scr.renderer.Present()
}

// serviceDeviceEvent handles controller hot-plugging. for added events the
// Which field is a device index, for removed events it is an instance id
func (scr *SdlPad) serviceDeviceEvent(ev *sdl.ControllerDeviceEvent) {
	switch ev.Type {
	case sdl.CONTROLLERDEVICEADDED:
		logger.Logf(logger.Allow, "sdl", "controller device %d added", ev.Which)
		d, err := scr.binding.Connect(int(ev.Which))
		if err != nil {
			logger.Logf(logger.Allow, "sdl", "couldn't open controller: %v", err)
		} else if d != nil {
			scr.setTitle(d.Name())
		}

	case sdl.CONTROLLERDEVICEREMOVED:
		logger.Logf(logger.Allow, "sdl", "controller device %d removed", ev.Which)
		if d := scr.binding.Disconnect(int32(ev.Which)); d != nil {
			scr.setTitle(d.Name())
		}
	}
}

func (scr *SdlPad) setTitle(name string) {
	scr.window.SetTitle(fmt.Sprintf("%s: %s", windowTitle, name))
}

// Done returns true once the user has asked for the program to end, either
// with the ESC key or by closing the window. the frame in progress when the
// request arrived is always completed
func (scr *SdlPad) Done() bool {
	return scr.done
}

// Blit implements the pad.Renderer interface
func (scr *SdlPad) Blit(g pad.Glyph, x int32, y int32, angle float64) {
	var texture *sdl.Texture

	switch g {
	case pad.GlyphButton:
		texture = scr.buttonGlyph
	case pad.GlyphAxis:
		texture = scr.axisGlyph
	default:
		return
	}

	dst := sdl.Rect{X: x, Y: y, W: pad.GlyphSize, H: pad.GlyphSize}
	_ = scr.renderer.CopyEx(texture, nil, &dst, angle, nil, sdl.FLIP_NONE)
}
