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
	"github.com/jetsetilly/softgfx/pixels"
)

// colours of the cross drawn by the Mouse scene
var (
	crossCentre = pixels.Pixel{B: 255, G: 255}
	crossArm    = pixels.Pixel{B: 200, G: 200}
)

// Mouse draws a small cross at the mouse position while the left button is
// held down. The right button clears the buffer.
type Mouse struct{}

// NewMouse is the preferred method of initialisation for the Mouse type.
func NewMouse() *Mouse {
	return &Mouse{}
}

// Input implements the Scene interface.
func (m *Mouse) Input(_ display.Keycode) {
}

// Render the effect of the current mouse state to the pixel buffer without
// presenting it.
func (m *Mouse) Render(ctx *gfx.Context) {
	ms := ctx.ScaledMouse()

	if ms.Pressed(display.ButtonLeft) {
		ctx.PutPixel(ms.X, ms.Y, crossCentre)
		ctx.PutPixel(ms.X-1, ms.Y, crossArm)
		ctx.PutPixel(ms.X+1, ms.Y, crossArm)
		ctx.PutPixel(ms.X, ms.Y-1, crossArm)
		ctx.PutPixel(ms.X, ms.Y+1, crossArm)
	} else if ms.Pressed(display.ButtonRight) {
		ctx.Clear(pixels.Black)
	}
}

// Frame implements the Scene interface.
func (m *Mouse) Frame(ctx *gfx.Context) error {
	m.Render(ctx)
	return ctx.Update()
}
