// This file is part of softgfx.
//
// softgfx is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// softgfx is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with softgfx.  If not, see <https://www.gnu.org/licenses/>.

package headless

import (
	"github.com/jetsetilly/softgfx/curated"
)

// Texture is the headless implementation of display.Texture.
type Texture struct {
	drv *Driver

	width  int
	height int
	words  []uint32

	// static textures are alpha blended when copied and cannot be updated
	blend  bool
	static bool

	updates   int
	destroyed bool
}

// Update implements the display.Texture interface.
func (tex *Texture) Update(words []uint32, pitch int) error {
	if err := tex.drv.fail(FailUpload); err != nil {
		return err
	}
	if tex.destroyed {
		return curated.Errorf(DestroyedError, "texture")
	}
	if tex.static {
		return curated.Errorf(TextureError, "static texture cannot be updated")
	}

	stride := pitch / 4
	if stride < tex.width || len(words) < stride*(tex.height-1)+tex.width {
		return curated.Errorf(TextureError, "pixel data does not match texture size")
	}

	for y := 0; y < tex.height; y++ {
		copy(tex.words[y*tex.width:(y+1)*tex.width], words[y*stride:y*stride+tex.width])
	}
	tex.updates++

	return nil
}

// Updates returns the number of successful calls to Update().
func (tex *Texture) Updates() int {
	return tex.updates
}

// Destroy implements the display.Texture interface.
func (tex *Texture) Destroy() error {
	if tex.destroyed {
		return curated.Errorf(DestroyedError, "texture")
	}
	tex.destroyed = true
	tex.drv.live--
	return nil
}
