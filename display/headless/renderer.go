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
	"github.com/jetsetilly/softgfx/display"
)

// Renderer is the headless implementation of display.Renderer. The render
// target is the same size as the window was when the renderer was created.
type Renderer struct {
	win *Window

	// render target. packed ARGB8888 words
	target []uint32
	width  int
	height int

	// copy of target made on the most recent call to Present()
	frame     []uint32
	presented int

	destroyed bool
}

// Name implements the display.Renderer interface.
func (rnd *Renderer) Name() string {
	return "headless"
}

// CreateStreamingTexture implements the display.Renderer interface.
func (rnd *Renderer) CreateStreamingTexture(width, height int) (display.Texture, error) {
	if err := rnd.win.drv.fail(FailTexture); err != nil {
		return nil, err
	}
	rnd.win.drv.live++
	return &Texture{
		drv:    rnd.win.drv,
		width:  width,
		height: height,
		words:  make([]uint32, width*height),
	}, nil
}

// CreateStaticTexture implements the display.Renderer interface.
func (rnd *Renderer) CreateStaticTexture(rgba []byte, width, height int) (display.Texture, error) {
	if err := rnd.win.drv.fail(FailSprite); err != nil {
		return nil, err
	}
	if len(rgba) != width*height*4 {
		return nil, curated.Errorf(TextureError, "rgba data does not match texture size")
	}

	tex := &Texture{
		drv:    rnd.win.drv,
		width:  width,
		height: height,
		words:  make([]uint32, width*height),
		blend:  true,
		static: true,
	}

	// convert RGBA bytes to ARGB words
	for i := range tex.words {
		p := rgba[i*4 : i*4+4]
		tex.words[i] = uint32(p[2]) | uint32(p[1])<<8 | uint32(p[0])<<16 | uint32(p[3])<<24
	}

	rnd.win.drv.live++
	return tex, nil
}

// Copy implements the display.Renderer interface. The texture is scaled to
// the destination rectangle using nearest neighbour sampling. Static textures
// are alpha blended with the render target.
func (rnd *Renderer) Copy(t display.Texture, dst *display.Rect) error {
	tex, ok := t.(*Texture)
	if !ok {
		return curated.Errorf(TextureError, "not a headless texture")
	}
	if tex.destroyed {
		return curated.Errorf(DestroyedError, "texture")
	}

	tw, th := rnd.width, rnd.height

	d := display.Rect{W: tw, H: th}
	if dst != nil {
		d = *dst
	}
	if d.W <= 0 || d.H <= 0 {
		return nil
	}

	for y := 0; y < d.H; y++ {
		ty := d.Y + y
		if ty < 0 || ty >= th {
			continue
		}
		sy := y * tex.height / d.H
		for x := 0; x < d.W; x++ {
			tx := d.X + x
			if tx < 0 || tx >= tw {
				continue
			}
			sx := x * tex.width / d.W
			s := tex.words[sy*tex.width+sx]
			i := ty*tw + tx
			if tex.blend {
				rnd.target[i] = blend(s, rnd.target[i])
			} else {
				rnd.target[i] = s
			}
		}
	}

	return nil
}

// blend source word over destination word using the alpha channel of the
// source
func blend(src, dst uint32) uint32 {
	a := src >> 24
	switch a {
	case 0:
		return dst
	case 255:
		return src | 0xff000000
	}

	inv := 255 - a
	var out uint32
	for shift := 0; shift < 24; shift += 8 {
		s := (src >> shift) & 0xff
		d := (dst >> shift) & 0xff
		v := s*a + d*inv
		out |= ((v + 1 + (v >> 8)) >> 8) << shift
	}
	return out | (dst & 0xff000000)
}

// TargetSize returns the size of the render target.
func (rnd *Renderer) TargetSize() (int, int) {
	return rnd.width, rnd.height
}

// Present implements the display.Renderer interface.
func (rnd *Renderer) Present() error {
	if err := rnd.win.drv.fail(FailPresent); err != nil {
		return err
	}
	if rnd.frame == nil {
		rnd.frame = make([]uint32, len(rnd.target))
	}
	copy(rnd.frame, rnd.target)
	rnd.presented++
	return nil
}

// Destroy implements the display.Renderer interface.
func (rnd *Renderer) Destroy() error {
	if rnd.destroyed {
		return curated.Errorf(DestroyedError, "renderer")
	}
	rnd.destroyed = true
	rnd.win.drv.live--
	return nil
}

// Frame returns a copy of the render target as it was on the most recent call
// to Present(). Returns nil if Present() has never been called.
func (rnd *Renderer) Frame() []uint32 {
	if rnd.frame == nil {
		return nil
	}
	f := make([]uint32, len(rnd.frame))
	copy(f, rnd.frame)
	return f
}

// Presented returns the number of times Present() has been called.
func (rnd *Renderer) Presented() int {
	return rnd.presented
}
