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

package pixels

import "fmt"

// Pixel is a single colour value. The A channel is unused when the pixel is
// presented.
type Pixel struct {
	B uint8
	G uint8
	R uint8
	A uint8
}

// RGB returns a pixel with the red, green and blue channels set.
func RGB(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b}
}

// Grey returns a pixel with all three colour channels set to intensity.
func Grey(intensity uint8) Pixel {
	return Pixel{R: intensity, G: intensity, B: intensity}
}

// Word packs the pixel into a 32-bit ARGB8888 value.
func (px Pixel) Word() uint32 {
	return uint32(px.B) | uint32(px.G)<<8 | uint32(px.R)<<16 | uint32(px.A)<<24
}

// FromWord unpacks an ARGB8888 value. It is the inverse of Word().
func FromWord(w uint32) Pixel {
	return Pixel{
		B: uint8(w),
		G: uint8(w >> 8),
		R: uint8(w >> 16),
		A: uint8(w >> 24),
	}
}

// SameColour compares the colour channels of two pixels, ignoring alpha.
func (px Pixel) SameColour(o Pixel) bool {
	return px.R == o.R && px.G == o.G && px.B == o.B
}

func (px Pixel) String() string {
	return fmt.Sprintf("#%02x%02x%02x", px.R, px.G, px.B)
}

// A selection of commonly used colours.
var (
	Black  = RGB(0, 0, 0)
	White  = RGB(255, 255, 255)
	Red    = RGB(255, 0, 0)
	Green  = RGB(0, 255, 0)
	Blue   = RGB(0, 0, 255)
	Yellow = RGB(255, 255, 0)
)
