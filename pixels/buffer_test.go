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

	"github.com/jetsetilly/softgfx/curated"
	"github.com/jetsetilly/softgfx/pixels"
	"github.com/jetsetilly/softgfx/test"
)

func TestBufferSize(t *testing.T) {
	buf, err := pixels.NewBuffer(800, 600)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, buf.Len(), 480000)
	test.ExpectEquality(t, len(buf.Words()), 480000)
	test.ExpectEquality(t, buf.Stride(), 800)
	test.ExpectEquality(t, buf.Pitch(), 3200)
}

func TestBufferDimensions(t *testing.T) {
	_, err := pixels.NewBuffer(0, 100)
	test.ExpectSuccess(t, curated.Is(err, pixels.DimensionError))
	_, err = pixels.NewBuffer(100, -1)
	test.ExpectSuccess(t, curated.Is(err, pixels.DimensionError))
	_, err = pixels.NewBufferWithStride(100, 100, 99)
	test.ExpectSuccess(t, curated.Is(err, pixels.StrideError))
}

func TestPutPixel(t *testing.T) {
	buf, err := pixels.NewBuffer(100, 100)
	test.DemandSuccess(t, err)

	buf.Clear(pixels.Black)
	buf.PutPixel(50, 50, pixels.Red)

	px, ok := buf.Pixel(50, 50)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, px, pixels.Red)

	px, ok = buf.Pixel(0, 0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, px, pixels.Black)

	// every in-bounds coordinate reads back what was written
	for y := 0; y < buf.Height(); y += 7 {
		for x := 0; x < buf.Width(); x += 3 {
			c := pixels.RGB(uint8(x), uint8(y), uint8(x+y))
			buf.PutPixel(x, y, c)
			px, _ := buf.Pixel(x, y)
			test.ExpectEquality(t, px, c, x, y)
		}
	}
}

func TestPutPixelOutOfBounds(t *testing.T) {
	buf, err := pixels.NewBuffer(10, 10)
	test.DemandSuccess(t, err)
	buf.Clear(pixels.Blue)
	before := buf.Snapshot()

	for _, c := range [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 10}, {10, 10}, {-100, 1000}} {
		buf.PutPixel(c[0], c[1], pixels.Red)
		_, ok := buf.Pixel(c[0], c[1])
		test.ExpectFailure(t, ok, c)
	}

	after := buf.Snapshot()
	test.DemandEquality(t, len(after), len(before))
	for i := range before {
		test.ExpectEquality(t, after[i], before[i], i)
	}
}

func TestClear(t *testing.T) {
	buf, err := pixels.NewBuffer(64, 48)
	test.DemandSuccess(t, err)

	c := pixels.RGB(1, 2, 3)
	buf.Clear(c)
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			px, _ := buf.Pixel(x, y)
			if !test.ExpectEquality(t, px, c, x, y) {
				return
			}
		}
	}
}

func TestStride(t *testing.T) {
	buf, err := pixels.NewBufferWithStride(10, 4, 16)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(buf.Words()), 64)
	test.ExpectEquality(t, buf.Len(), 40)
	test.ExpectEquality(t, buf.Pitch(), 64)

	buf.Clear(pixels.White)

	// padding words are not touched by Clear()
	w := buf.Words()
	for y := 0; y < 4; y++ {
		for x := 10; x < 16; x++ {
			test.ExpectEquality(t, w[y*16+x], 0, x, y)
		}
	}

	// indexing uses the stride
	buf.PutPixel(3, 2, pixels.Green)
	test.ExpectEquality(t, w[2*16+3], pixels.Green.Word())

	s := buf.Snapshot()
	test.DemandEquality(t, len(s), 40)
	test.ExpectEquality(t, s[2*10+3], pixels.Green.Word())
	test.ExpectEquality(t, s[39], pixels.White.Word())
}
