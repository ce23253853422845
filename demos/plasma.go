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

package demos

import (
	"github.com/jetsetilly/softgfx/display"
	"github.com/jetsetilly/softgfx/gfx"
	"github.com/jetsetilly/softgfx/plasma"
)

// default size and speed of the sprite drawn over the plasma
const (
	SpriteSize  = 128
	SpriteSpeed = 4
)

// Plasma draws the plasma effect. If a sprite has been attached it is drawn
// over the plasma and can be moved with the cursor keys.
type Plasma struct {
	pl *plasma.Plasma

	sprite *gfx.Sprite
	x, y   int
	size   int
	speed  int
}

// NewPlasma is the preferred method of initialisation for the Plasma type.
func NewPlasma(delay int) *Plasma {
	return &Plasma{
		pl:    plasma.New(delay),
		x:     50,
		y:     50,
		size:  SpriteSize,
		speed: SpriteSpeed,
	}
}

// AttachSprite sets the sprite to draw over the plasma. The scene does not
// take ownership of the sprite.
func (p *Plasma) AttachSprite(s *gfx.Sprite) {
	p.sprite = s
}

// SpritePosition returns the current position of the sprite.
func (p *Plasma) SpritePosition() (int, int) {
	return p.x, p.y
}

// Input implements the Scene interface.
func (p *Plasma) Input(key display.Keycode) {
	if p.sprite == nil {
		return
	}

	switch key {
	case display.KeyUp:
		p.y -= p.speed
	case display.KeyDown:
		p.y += p.speed
	case display.KeyLeft:
		p.x -= p.speed
	case display.KeyRight:
		p.x += p.speed
	}
}

// Frame implements the Scene interface.
func (p *Plasma) Frame(ctx *gfx.Context) error {
	p.pl.Render(ctx)

	err := ctx.CopyPixels()
	if err != nil {
		return err
	}

	if p.sprite != nil {
		err = ctx.RenderSprite(p.sprite, p.x, p.y, p.size, p.size)
		if err != nil {
			return err
		}
	}

	return ctx.Present()
}
