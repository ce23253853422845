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

package gfx

import (
	"github.com/jetsetilly/softgfx/bitmap"
	"github.com/jetsetilly/softgfx/curated"
	"github.com/jetsetilly/softgfx/display"
	"github.com/jetsetilly/softgfx/logger"
)

// Sentinel errors.
const (
	SpriteError          = "gfx: sprite: %v"
	SpriteSizeError      = "gfx: sprite: pixel data (%d bytes) does not match size (%dx%d)"
	SpriteDestroyedError = "gfx: sprite has been destroyed"
)

// Sprite is a decoded image resident in the renderer of a Context. Sprites are
// destroyed independently of the context but any sprite that is still alive
// when the context is destroyed is destroyed along with it.
type Sprite struct {
	ctx    *Context
	tex    display.Texture
	width  int
	height int
}

// LoadSprite decodes the image file at path and creates a sprite from it.
func (ctx *Context) LoadSprite(path string) (*Sprite, error) {
	if ctx.destroyed {
		return nil, curated.Errorf(DestroyedError)
	}

	bm, err := bitmap.Load(path)
	if err != nil {
		return nil, curated.Errorf(SpriteError, err)
	}

	return ctx.CreateSpriteFromMemory(bm.Pix, bm.Width, bm.Height)
}

// LoadSpriteScaled is the same as LoadSprite() but the image is scaled to
// width and height before the sprite is created.
func (ctx *Context) LoadSpriteScaled(path string, width, height int) (*Sprite, error) {
	if ctx.destroyed {
		return nil, curated.Errorf(DestroyedError)
	}

	bm, err := bitmap.Load(path)
	if err != nil {
		return nil, curated.Errorf(SpriteError, err)
	}

	bm, err = bm.Scale(width, height)
	if err != nil {
		return nil, curated.Errorf(SpriteError, err)
	}

	return ctx.CreateSpriteFromMemory(bm.Pix, bm.Width, bm.Height)
}

// CreateSpriteFromMemory creates a sprite from RGBA pixel data, four bytes per
// pixel in R, G, B, A order. The sprite is alpha blended when rendered.
func (ctx *Context) CreateSpriteFromMemory(rgba []byte, width, height int) (*Sprite, error) {
	if ctx.destroyed {
		return nil, curated.Errorf(DestroyedError)
	}

	if width <= 0 || height <= 0 || len(rgba) != width*height*4 {
		return nil, curated.Errorf(SpriteSizeError, len(rgba), width, height)
	}

	tex, err := ctx.renderer.CreateStaticTexture(rgba, width, height)
	if err != nil {
		return nil, curated.Errorf(SpriteError, err)
	}

	s := &Sprite{
		ctx:    ctx,
		tex:    tex,
		width:  width,
		height: height,
	}
	ctx.sprites[s] = true

	logger.Logf(logger.Allow, "gfx", "sprite created (%dx%d)", width, height)

	return s, nil
}

// RenderSprite draws the sprite at x, y scaled to w, h. The sprite is drawn
// over whatever is in the render target, normally the pixel buffer uploaded
// by the most recent call to CopyPixels().
func (ctx *Context) RenderSprite(s *Sprite, x, y, w, h int) error {
	if ctx.destroyed {
		return curated.Errorf(DestroyedError)
	}
	if s == nil || s.tex == nil {
		return curated.Errorf(SpriteDestroyedError)
	}
	if s.ctx != ctx {
		return curated.Errorf(SpriteError, "sprite belongs to a different context")
	}

	err := ctx.renderer.Copy(s.tex, &display.Rect{X: x, Y: y, W: w, H: h})
	if err != nil {
		return curated.Errorf(SpriteError, err)
	}

	return nil
}

// Size returns the size of the sprite in pixels.
func (s *Sprite) Size() (int, int) {
	return s.width, s.height
}

// Destroy releases the resources used by the sprite. Calling Destroy() more
// than once returns an error.
func (s *Sprite) Destroy() error {
	if s.tex == nil {
		return curated.Errorf(SpriteDestroyedError)
	}

	delete(s.ctx.sprites, s)

	err := s.tex.Destroy()
	s.tex = nil
	if err != nil {
		return curated.Errorf(SpriteError, err)
	}

	return nil
}
