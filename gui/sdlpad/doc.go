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

// Package sdlpad is the SDL front-end for the controller visualizer. It owns
// the window, the renderer, the three textures and the binding to the open
// controller.
//
// The Service() function runs one frame of the visualizer loop and MUST ONLY
// be called from the main thread, as part of a larger loop or from an
// external scheduler callback. There is no behavioural difference between
// the two.
package sdlpad
