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

// Package plasma draws an animated plasma effect using integer arithmetic and
// a fixed sine table.
//
// The plasma is computed at half the resolution of the target. Each computed
// cell is drawn as a 2x2 block of pixels.
package plasma

import (
	"github.com/jetsetilly/softgfx/pixels"
)

// DefaultDelay is the number of frames between each change of phase.
const DefaultDelay = 15

// sine is one cycle of a sine wave, scaled to the range 0 to 255
var sine = [256]int{
	127, 130, 133, 136, 139, 143, 146, 149, 152, 155, 158, 161, 164, 167, 170, 173,
	176, 179, 182, 184, 187, 190, 193, 195, 198, 200, 203, 205, 208, 210, 213, 215,
	217, 219, 221, 224, 226, 228, 229, 231, 233, 235, 236, 238, 239, 241, 242, 244,
	245, 246, 247, 248, 249, 250, 251, 251, 252, 253, 253, 254, 254, 254, 254, 254,
	255, 254, 254, 254, 254, 254, 253, 253, 252, 251, 251, 250, 249, 248, 247, 246,
	245, 244, 242, 241, 239, 238, 236, 235, 233, 231, 229, 228, 226, 224, 221, 219,
	217, 215, 213, 210, 208, 205, 203, 200, 198, 195, 193, 190, 187, 184, 182, 179,
	176, 173, 170, 167, 164, 161, 158, 155, 152, 149, 146, 143, 139, 136, 133, 130,
	127, 124, 121, 118, 115, 111, 108, 105, 102, 99, 96, 93, 90, 87, 84, 81,
	78, 75, 72, 70, 67, 64, 61, 59, 56, 54, 51, 49, 46, 44, 41, 39,
	37, 35, 33, 30, 28, 26, 25, 23, 21, 19, 18, 16, 15, 13, 12, 10,
	9, 8, 7, 6, 5, 4, 3, 3, 2, 1, 1, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 1, 1, 2, 3, 3, 4, 5, 6, 7, 8,
	9, 10, 12, 13, 15, 16, 18, 19, 21, 23, 25, 26, 28, 30, 33, 35,
	37, 39, 41, 44, 46, 49, 51, 54, 56, 59, 61, 64, 67, 70, 72, 75,
	78, 81, 84, 87, 90, 93, 96, 99, 102, 105, 108, 111, 115, 118, 121, 124,
}

// the cosine of n is the sine of n plus a quarter cycle
func cosine(n int) int {
	return sine[(n+64)&255]
}

// Target is the surface the plasma is drawn to. The gfx.Context and
// pixels.Buffer types both satisfy this interface.
type Target interface {
	Width() int
	Height() int
	PutPixel(x, y int, px pixels.Pixel)
}

// Plasma is the state of the plasma effect.
type Plasma struct {
	palette [256]pixels.Pixel

	// number of frames between each change of phase
	delay int

	// number of frames drawn
	frames int

	// phase counters
	u int
	v int
}

// New is the preferred method of initialisation for the Plasma type. The delay
// is the number of frames between each change of phase. A delay of less than
// one is treated as one.
func New(delay int) *Plasma {
	if delay < 1 {
		delay = 1
	}

	pl := &Plasma{
		delay: delay,
	}

	for i := range pl.palette {
		j := cosine(i) >> 2
		k := sine[i] >> 2
		pl.palette[i] = pixels.RGB(uint8(j*4), uint8(k*4), 30*4)
	}

	return pl
}

// Palette returns a copy of the colour palette used by the plasma.
func (pl *Plasma) Palette() [256]pixels.Pixel {
	return pl.palette
}

// Phase returns the current values of the phase counters.
func (pl *Plasma) Phase() (u, v int) {
	return pl.u, pl.v
}

// Frames returns the number of frames drawn.
func (pl *Plasma) Frames() int {
	return pl.frames
}

// Index returns the palette index of the cell at i, j for the current phase.
func (pl *Plasma) Index(i, j int) int {
	w := cosine(pl.v&255) >> 2
	return pl.index(i, j, w)
}

func (pl *Plasma) index(i, j, w int) int {
	c1 := sine[(pl.u-w+j)&255]
	c2 := cosine((pl.v + j) & 255)
	t1 := i + c1 - sine[pl.u&255]
	t2 := j + c2
	c := sine[t1&255] - cosine(t2&255) - cosine(t1&255)
	return (c & 254) + 1
}

// Render draws one frame of the plasma to the target and advances the
// animation.
func (pl *Plasma) Render(dst Target) {
	w := cosine(pl.v&255) >> 2

	for j := 0; j < dst.Height()/2; j++ {
		for i := 0; i < dst.Width()/2; i++ {
			px := pl.palette[pl.index(i, j, w)]
			dst.PutPixel(i*2, j*2, px)
			dst.PutPixel(i*2+1, j*2, px)
			dst.PutPixel(i*2, j*2+1, px)
			dst.PutPixel(i*2+1, j*2+1, px)
		}
	}

	pl.frames++
	if pl.frames%pl.delay == 0 {
		pl.u--
		pl.v++
	}
}
