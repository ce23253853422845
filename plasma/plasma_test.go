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

package plasma_test

import (
	"testing"

	"github.com/jetsetilly/softgfx/pixels"
	"github.com/jetsetilly/softgfx/plasma"
	"github.com/jetsetilly/softgfx/test"
)

func TestPaletteDeterministic(t *testing.T) {
	a := plasma.New(plasma.DefaultDelay).Palette()
	b := plasma.New(plasma.DefaultDelay).Palette()
	for i := range a {
		test.ExpectEquality(t, a[i], b[i], i)
	}

	// spot check some entries. entry 0 uses cosine(0) = 255 and sine(0) = 127
	test.ExpectEquality(t, a[0], pixels.RGB(252, 124, 120))

	// entry 64 uses cosine(64) = 127 and sine(64) = 255
	test.ExpectEquality(t, a[64], pixels.RGB(124, 252, 120))

	// entry 192 uses cosine(192) = 127 and sine(192) = 0
	test.ExpectEquality(t, a[192], pixels.RGB(124, 0, 120))
}

func TestPaletteChannelsAreMultiplesOfFour(t *testing.T) {
	p := plasma.New(plasma.DefaultDelay).Palette()
	for i, px := range p {
		test.ExpectEquality(t, px.R%4, 0, i)
		test.ExpectEquality(t, px.G%4, 0, i)
		test.ExpectEquality(t, px.B, 120, i)
	}
}

func TestIndexRange(t *testing.T) {
	pl := plasma.New(plasma.DefaultDelay)
	for j := 0; j < 100; j++ {
		for i := 0; i < 100; i++ {
			idx := pl.Index(i, j)
			if idx < 1 || idx > 255 || idx%2 == 0 {
				t.Fatalf("index out of range or even: %d at %d, %d", idx, i, j)
			}
		}
	}
}

func TestRenderBlocks(t *testing.T) {
	buf, err := pixels.NewBuffer(64, 32)
	test.DemandSuccess(t, err)

	pl := plasma.New(plasma.DefaultDelay)
	palette := pl.Palette()

	// the index must be calculated before Render() advances the animation
	expected := make([]pixels.Pixel, 0, 32*16)
	for j := 0; j < 16; j++ {
		for i := 0; i < 32; i++ {
			expected = append(expected, palette[pl.Index(i, j)])
		}
	}

	pl.Render(buf)

	for j := 0; j < 16; j++ {
		for i := 0; i < 32; i++ {
			e := expected[j*32+i]
			for _, d := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
				px, ok := buf.Pixel(i*2+d[0], j*2+d[1])
				test.ExpectSuccess(t, ok)
				if !test.ExpectEquality(t, px, e, i, j, d) {
					return
				}
			}
		}
	}
}

func TestOddTargetSize(t *testing.T) {
	buf, err := pixels.NewBuffer(5, 3)
	test.DemandSuccess(t, err)
	buf.Clear(pixels.Red)

	plasma.New(1).Render(buf)

	// the last column and the last row are not drawn to
	for y := 0; y < 3; y++ {
		px, _ := buf.Pixel(4, y)
		test.ExpectEquality(t, px, pixels.Red, y)
	}
	for x := 0; x < 5; x++ {
		px, _ := buf.Pixel(x, 2)
		test.ExpectEquality(t, px, pixels.Red, x)
	}
}

func TestPhaseAdvance(t *testing.T) {
	buf, err := pixels.NewBuffer(4, 4)
	test.DemandSuccess(t, err)

	pl := plasma.New(plasma.DefaultDelay)
	for range plasma.DefaultDelay - 1 {
		pl.Render(buf)
	}
	u, v := pl.Phase()
	test.ExpectEquality(t, u, 0)
	test.ExpectEquality(t, v, 0)

	pl.Render(buf)
	u, v = pl.Phase()
	test.ExpectEquality(t, u, -1)
	test.ExpectEquality(t, v, 1)
	test.ExpectEquality(t, pl.Frames(), plasma.DefaultDelay)

	for range plasma.DefaultDelay * 3 {
		pl.Render(buf)
	}
	u, v = pl.Phase()
	test.ExpectEquality(t, u, -4)
	test.ExpectEquality(t, v, 4)
}

func TestSameFrameSameImage(t *testing.T) {
	a, _ := pixels.NewBuffer(40, 40)
	b, _ := pixels.NewBuffer(40, 40)

	pa := plasma.New(3)
	pb := plasma.New(3)
	for range 10 {
		pa.Render(a)
		pb.Render(b)
	}

	sa := a.Snapshot()
	sb := b.Snapshot()
	for i := range sa {
		test.ExpectEquality(t, sa[i], sb[i], i)
	}
}

func TestInvalidDelay(t *testing.T) {
	buf, _ := pixels.NewBuffer(2, 2)
	pl := plasma.New(0)
	pl.Render(buf)
	u, v := pl.Phase()
	test.ExpectEquality(t, u, -1)
	test.ExpectEquality(t, v, 1)
}
