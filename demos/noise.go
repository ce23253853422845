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
	"github.com/jetsetilly/softgfx/random"
)

// Noise draws white noise. Every frame the buffer is cleared and a tenth of
// the pixels are set to a random shade of grey.
type Noise struct {
	rnd *random.Random
}

// NewNoise is the preferred method of initialisation for the Noise type.
func NewNoise(rnd *random.Random) *Noise {
	if rnd == nil {
		rnd = random.NewRandom()
	}
	return &Noise{rnd: rnd}
}

// Input implements the Scene interface.
func (n *Noise) Input(_ display.Keycode) {
}

// Render the noise to the pixel buffer without presenting it.
func (n *Noise) Render(ctx *gfx.Context) {
	ctx.Clear(pixels.Black)

	w := ctx.Width()
	h := ctx.Height()
	for i := 0; i < w*h/10; i++ {
		x := n.rnd.Intn(w)
		y := n.rnd.Intn(h)
		ctx.PutPixel(x, y, pixels.Grey(n.rnd.Uint8()))
	}
}

// Frame implements the Scene interface.
func (n *Noise) Frame(ctx *gfx.Context) error {
	n.Render(ctx)
	return ctx.Update()
}
