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

package sdldisplay

import (
	"fmt"

	"github.com/jetsetilly/softgfx/curated"
	"github.com/jetsetilly/softgfx/display"
	"github.com/veandco/go-sdl2/sdl"
)

// Sentinel errors.
const (
	TextureError = "sdl: texture: %v"
)

type renderer struct {
	renderer *sdl.Renderer
	name     string
}

func (rnd *renderer) Name() string {
	return rnd.name
}

func (rnd *renderer) CreateStreamingTexture(width, height int) (display.Texture, error) {
	t, err := rnd.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ARGB8888), int(sdl.TEXTUREACCESS_STREAMING), int32(width), int32(height))
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	return &texture{texture: t, width: width, height: height}, nil
}

func (rnd *renderer) CreateStaticTexture(rgba []byte, width, height int) (display.Texture, error) {
	if len(rgba) != width*height*4 {
		return nil, curated.Errorf(TextureError, "rgba data does not match texture size")
	}

	// ABGR8888 is R, G, B, A in memory on little endian machines
	t, err := rnd.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), int(sdl.TEXTUREACCESS_STATIC), int32(width), int32(height))
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	err = t.Update(nil, rgba, width*4)
	if err != nil {
		_ = t.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	err = t.SetBlendMode(sdl.BlendMode(sdl.BLENDMODE_BLEND))
	if err != nil {
		_ = t.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	return &texture{texture: t, width: width, height: height, static: true}, nil
}

func (rnd *renderer) Copy(t display.Texture, dst *display.Rect) error {
	tex, ok := t.(*texture)
	if !ok {
		return curated.Errorf(TextureError, "not an sdl texture")
	}

	var r *sdl.Rect
	if dst != nil {
		r = &sdl.Rect{X: int32(dst.X), Y: int32(dst.Y), W: int32(dst.W), H: int32(dst.H)}
	}

	err := rnd.renderer.Copy(tex.texture, nil, r)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

func (rnd *renderer) Present() error {
	rnd.renderer.Present()
	return nil
}

func (rnd *renderer) Destroy() error {
	err := rnd.renderer.Destroy()
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

type texture struct {
	texture *sdl.Texture
	width   int
	height  int
	static  bool
}

func (tex *texture) Update(words []uint32, pitch int) error {
	if tex.static {
		return curated.Errorf(TextureError, "static texture cannot be updated")
	}
	if len(words) < (pitch/4)*(tex.height-1)+tex.width {
		return curated.Errorf(TextureError, "pixel data does not match texture size")
	}
	// pitch of UpdateRGBA() is in pixels not bytes
	err := tex.texture.UpdateRGBA(nil, words, pitch/4)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

func (tex *texture) Destroy() error {
	err := tex.texture.Destroy()
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}
