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

package pixels_test

import (
	"testing"

	"github.com/jetsetilly/softgfx/pixels"
	"github.com/jetsetilly/softgfx/test"
)

func TestWordLayout(t *testing.T) {
	test.ExpectEquality(t, pixels.Black.Word(), 0x00000000)
	test.ExpectEquality(t, pixels.Red.Word(), 0x00ff0000)
	test.ExpectEquality(t, pixels.Green.Word(), 0x0000ff00)
	test.ExpectEquality(t, pixels.Blue.Word(), 0x000000ff)
	test.ExpectEquality(t, pixels.White.Word(), 0x00ffffff)
	test.ExpectEquality(t, pixels.Yellow.Word(), 0x00ffff00)

	px := pixels.Pixel{B: 0x11, G: 0x22, R: 0x33, A: 0x44}
	test.ExpectEquality(t, px.Word(), 0x44332211)
}

func TestWordDecode(t *testing.T) {
	for _, w := range []uint32{0, 0xffffffff, 0x00ff0000, 0x12345678, 0x80402010} {
		test.ExpectEquality(t, pixels.FromWord(w).Word(), w)
	}

	px := pixels.FromWord(0x00c08040)
	test.ExpectEquality(t, px.R, 0xc0)
	test.ExpectEquality(t, px.G, 0x80)
	test.ExpectEquality(t, px.B, 0x40)
	test.ExpectEquality(t, px.A, 0x00)
}

func TestGrey(t *testing.T) {
	px := pixels.Grey(100)
	test.ExpectEquality(t, px, pixels.RGB(100, 100, 100))
	test.ExpectEquality(t, px.Word(), 0x00646464)
}

func TestSameColour(t *testing.T) {
	a := pixels.RGB(10, 20, 30)
	b := a
	b.A = 255
	test.ExpectSuccess(t, a.SameColour(b))
	test.ExpectInequality(t, a, b)
	test.ExpectFailure(t, a.SameColour(pixels.RGB(10, 20, 31)))
}

func TestString(t *testing.T) {
	test.ExpectEquality(t, pixels.RGB(255, 128, 1).String(), "#ff8001")
}
