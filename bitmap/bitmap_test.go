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

package bitmap_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/softgfx/bitmap"
	"github.com/jetsetilly/softgfx/curated"
	"github.com/jetsetilly/softgfx/test"
	"golang.org/x/image/bmp"
)

// testImage is a 3x2 image with a distinct colour in every pixel
func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(1, 0, color.NRGBA{G: 255, A: 255})
	img.Set(2, 0, color.NRGBA{B: 255, A: 255})
	img.Set(0, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	img.Set(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(2, 1, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	return img
}

// R, G, B, A of the pixel at x, y. zero outside of the bitmap
func at(bm *bitmap.Bitmap, x, y int) [4]uint8 {
	if x < 0 || y < 0 || x >= bm.Width || y >= bm.Height {
		return [4]uint8{}
	}
	i := (y*bm.Width + x) * 4
	return [4]uint8(bm.Pix[i : i+4])
}

func checkTestImage(t *testing.T, bm *bitmap.Bitmap) {
	t.Helper()
	test.DemandEquality(t, bm.Width, 3)
	test.DemandEquality(t, bm.Height, 2)
	test.DemandEquality(t, len(bm.Pix), 24)

	test.ExpectEquality(t, at(bm, 0, 0), [4]uint8{255, 0, 0, 255})
	test.ExpectEquality(t, at(bm, 2, 0), [4]uint8{0, 0, 255, 255})
	test.ExpectEquality(t, at(bm, 0, 1), [4]uint8{10, 20, 30, 255})
	test.ExpectEquality(t, at(bm, 3, 3), [4]uint8{0, 0, 0, 0})
}

func TestDecodePNG(t *testing.T) {
	var buf bytes.Buffer
	test.DemandSuccess(t, png.Encode(&buf, testImage()))

	bm, format, err := bitmap.Decode(&buf)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, format, "png")
	checkTestImage(t, bm)
}

func TestDecodeBMP(t *testing.T) {
	var buf bytes.Buffer
	test.DemandSuccess(t, bmp.Encode(&buf, testImage()))

	bm, format, err := bitmap.Decode(&buf)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, format, "bmp")
	checkTestImage(t, bm)
}

func TestDecodeCorrupt(t *testing.T) {
	_, _, err := bitmap.Decode(bytes.NewReader([]byte("not an image")))
	test.ExpectSuccess(t, curated.Is(err, bitmap.DecodeError))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "sprite.png")

	var buf bytes.Buffer
	test.DemandSuccess(t, png.Encode(&buf, testImage()))
	test.DemandSuccess(t, os.WriteFile(fn, buf.Bytes(), 0o644))

	bm, err := bitmap.Load(fn)
	test.DemandSuccess(t, err)
	checkTestImage(t, bm)
}

func TestLoadMissing(t *testing.T) {
	_, err := bitmap.Load(filepath.Join(t.TempDir(), "missing.png"))
	test.ExpectSuccess(t, curated.Is(err, bitmap.LoadError))
	test.ExpectSuccess(t, errors.Is(err, fs.ErrNotExist))
}

func TestFromImageOffset(t *testing.T) {
	// sub-image with a non-zero origin
	img := testImage().SubImage(image.Rect(1, 1, 3, 2))
	bm, err := bitmap.FromImage(img)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, bm.Width, 2)
	test.ExpectEquality(t, bm.Height, 1)
	test.ExpectEquality(t, at(bm, 1, 0), [4]uint8{1, 2, 3, 255})

	_, err = bitmap.FromImage(image.NewNRGBA(image.Rectangle{}))
	test.ExpectSuccess(t, curated.Is(err, bitmap.EmptyError))
}

func TestScale(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	bm, err := bitmap.FromImage(img)
	test.DemandSuccess(t, err)

	s, err := bm.Scale(8, 4)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Width, 8)
	test.ExpectEquality(t, s.Height, 4)
	test.ExpectEquality(t, len(s.Pix), 8*4*4)

	// a flat colour scales to the same flat colour
	test.ExpectEquality(t, at(s, 5, 2), [4]uint8{200, 100, 50, 255})

	_, err = bm.Scale(0, 4)
	test.ExpectFailure(t, err)
}
