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

	"github.com/veandco/go-sdl2/sdl"
)

// loadTexture creates a texture from the named BMP file. if transparent is
// true and the image is palettised, the palette entry of the pixel at (0,0)
// becomes the transparent colour
func loadTexture(renderer *sdl.Renderer, path string, transparent bool) (*sdl.Texture, error) {
	surface, err := sdl.LoadBMP(path)
	if err != nil {
		return nil, curated.Errorf(TextureError, err)
	}
	defer surface.Free()

	if transparent && surface.Format.BytesPerPixel == 1 {
		if err := surface.SetColorKey(true, uint32(surface.Pixels()[0])); err != nil {
			return nil, curated.Errorf(TextureError, err)
		}
	}

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, curated.Errorf(TextureError, err)
	}

	return texture, nil
}
