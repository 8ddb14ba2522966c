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
	"runtime"

	"github.com/jetsetilly/padtest/curated"
	"github.com/jetsetilly/padtest/logger"
	"github.com/jetsetilly/padtest/pad"
	"github.com/jetsetilly/padtest/resources"

	"github.com/veandco/go-sdl2/sdl"
)

// error patterns returned during initialisation. main() uses these to decide
// the exit status for startup failures
const (
	InitError    = "sdlpad: init: %v"
	VideoError   = "sdlpad: video: %v"
	TextureError = "sdlpad: texture: %v"
)

// ControllerError is the pattern for a failed controller open. unlike the
// initialisation errors this is a steady-state failure and is only ever
// logged
const ControllerError = "sdlpad: controller: %v"

const windowTitle = "Game Controller Test"

// additional controller mappings are read from this file at startup
const mappingsFile = "gamecontrollerdb.txt"

const initFlags = sdl.INIT_VIDEO | sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER

// SdlPad is the SDL implementation of the controller visualizer. one
// instance owns the window, the renderer, the three required textures and
// the controller binding
type SdlPad struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	background  *sdl.Texture
	buttonGlyph *sdl.Texture
	axisGlyph   *sdl.Texture

	binding *pad.Binding

	// loop-termination flag. set by ESC or by a window-close signal
	done bool
}

// NewSdlPad is the preferred method of initialisation for the SdlPad type.
//
// Any error returned matches one of the initialisation error patterns. the
// failure is unrecoverable and the program should exit
func NewSdlPad(dumpMappings bool) (*SdlPad, error) {
	// SDL event handling is only reliable on the main OS thread. the lock is
	// never released
	runtime.LockOSThread()

	err := sdl.Init(initFlags)
	if err != nil {
		return nil, curated.Errorf(InitError, err)
	}

	// additional mappings extend the coverage of the built-in controller
	// database. absence of the file is not an error
	if sdl.GameControllerAddMappingsFromFile(resources.Search(mappingsFile)) == -1 {
		logger.Logf(logger.Allow, "sdl", "no additional mappings loaded from %s", mappingsFile)
	}

	if dumpMappings {
		listMappings()
	}

	listDevices()

	scr := &SdlPad{
		binding: pad.NewBinding(opener{}),
	}

	scr.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED),
		pad.Width, pad.Height, 0)
	if err != nil {
		sdl.QuitSubSystem(initFlags)
		return nil, curated.Errorf(VideoError, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, 0)
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf(VideoError, err)
	}

	// show a blank frame while the textures load
	scr.renderer.SetDrawColor(0, 0, 0, 255)
	scr.renderer.Clear()
	scr.renderer.Present()

	// scale for platforms that don't give us the window size we asked for.
	// the glyph position tables assume the dimensions of the background
	// artwork
	err = scr.renderer.SetLogicalSize(pad.Width, pad.Height)
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf(VideoError, err)
	}

	scr.background, err = loadTexture(scr.renderer, resources.Search("controllermap.bmp"), false)
	if err != nil {
		scr.Destroy()
		return nil, err
	}

	scr.buttonGlyph, err = loadTexture(scr.renderer, resources.Search("button.bmp"), true)
	if err != nil {
		scr.Destroy()
		return nil, err
	}

	scr.axisGlyph, err = loadTexture(scr.renderer, resources.Search("axis.bmp"), true)
	if err != nil {
		scr.Destroy()
		return nil, err
	}

	// the glyphs are drawn in green
	scr.buttonGlyph.SetColorMod(10, 255, 21)
	scr.axisGlyph.SetColorMod(10, 255, 21)

	return scr, nil
}

// Destroy releases all resources and shuts down the SDL subsystems that were
// initialised by NewSdlPad()
func (scr *SdlPad) Destroy() {
	scr.binding.Close()

	if scr.axisGlyph != nil {
		scr.axisGlyph.Destroy()
		scr.axisGlyph = nil
	}
	if scr.buttonGlyph != nil {
		scr.buttonGlyph.Destroy()
		scr.buttonGlyph = nil
	}
	if scr.background != nil {
		scr.background.Destroy()
		scr.background = nil
	}
	if scr.renderer != nil {
		scr.renderer.Destroy()
		scr.renderer = nil
	}
	if scr.window != nil {
		scr.window.Destroy()
		scr.window = nil
	}

	sdl.QuitSubSystem(initFlags)
}

// deviceDescription returns a human readable description of the controller
// at the numbered device index
func deviceDescription(index int) string {
	switch sdl.GameControllerTypeForIndex(index) {
	case sdl.CONTROLLER_TYPE_XBOX360:
		return "XBox 360 Controller"
	case sdl.CONTROLLER_TYPE_XBOXONE:
		return "XBox One Controller"
	case sdl.CONTROLLER_TYPE_PS3:
		return "PS3 Controller"
	case sdl.CONTROLLER_TYPE_PS4:
		return "PS4 Controller"
	case sdl.CONTROLLER_TYPE_NINTENDO_SWITCH_PRO:
		return "Nintendo Switch Pro Controller"
	case sdl.CONTROLLER_TYPE_VIRTUAL:
		return "Virtual Game Controller"
	}
	return "Game Controller"
}

// listDevices logs every attached joystick, noting which of them SDL
// recognises as game controllers
func listDevices() {
	numControllers := 0

	for i := 0; i < sdl.NumJoysticks(); i++ {
		var name string
		var description string

		if sdl.IsGameController(i) {
			numControllers++
			name = sdl.GameControllerNameForIndex(i)
			description = deviceDescription(i)
		} else {
			name = sdl.JoystickNameForIndex(i)
			description = "Joystick"
		}
		if name == "" {
			name = "Unknown"
		}

		guid := sdl.JoystickGetGUIDString(sdl.JoystickGetDeviceGUID(i))

		logger.Logf(logger.Allow, "sdl", "%s %d: %s (guid %s, VID 0x%04x, PID 0x%04x, player index = %d)",
			description, i, name, guid,
			sdl.JoystickGetDeviceVendor(i), sdl.JoystickGetDeviceProduct(i),
			sdl.JoystickGetDevicePlayerIndex(i))
	}

	logger.Logf(logger.Allow, "sdl", "%d game controller(s) attached (%d joystick(s))",
		numControllers, sdl.NumJoysticks())
}

// listMappings logs every mapping known to the controller database
func listMappings() {
	logger.Log(logger.Allow, "sdl", "supported mappings:")
	for i := 0; i < sdl.GameControllerNumMappings(); i++ {
		if m := sdl.GameControllerMappingForIndex(i); m != "" {
			logger.Log(logger.Allow, "sdl", m)
		}
	}
}
