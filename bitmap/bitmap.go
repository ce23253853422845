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

package bitmap

import (
	"image"
	"io"
	"os"

	"github.com/jetsetilly/softgfx/curated"
	"github.com/jetsetilly/softgfx/logger"
	"golang.org/x/image/draw"

	// image formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Sentinel errors.
const (
	LoadError   = "bitmap: %s: %v"
	DecodeError = "bitmap: %v"
	EmptyError  = "bitmap: image has no pixels"
)

// Bitmap is a decoded image. Pixel data is in R, G, B, A byte order, not
// premultiplied by alpha, with no padding between rows.
type Bitmap struct {
	Width  int
	Height int
	Pix    []byte
}

// Load decodes the image file at path.
func Load(path string) (*Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf(LoadError, path, err)
	}
	defer f.Close()

	bm, format, err := Decode(f)
	if err != nil {
		return nil, curated.Errorf(LoadError, path, err)
	}

	logger.Logf(logger.Allow, "bitmap", "%s: %s image (%dx%d)", path, format, bm.Width, bm.Height)

	return bm, nil
}

// Decode an image from the io.Reader. The name of the image format is returned
// along with the bitmap.
func Decode(r io.Reader) (*Bitmap, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", curated.Errorf(DecodeError, err)
	}

	bm, err := FromImage(img)
	if err != nil {
		return nil, "", err
	}

	return bm, format, nil
}

// FromImage converts any image.Image to a Bitmap.
func FromImage(img image.Image) (*Bitmap, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, curated.Errorf(EmptyError)
	}

	// images that are already NRGBA with no row padding can be used directly
	if n, ok := img.(*image.NRGBA); ok && n.Stride == b.Dx()*4 && n.Rect.Min == (image.Point{}) {
		return &Bitmap{
			Width:  b.Dx(),
			Height: b.Dy(),
			Pix:    n.Pix[:b.Dx()*b.Dy()*4],
		}, nil
	}

	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)

	return &Bitmap{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    dst.Pix,
	}, nil
}

// Scale returns a new bitmap of the specified size. The approximate bilinear
// interpolator from golang.org/x/image/draw is used.
func (bm *Bitmap) Scale(width, height int) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, curated.Errorf(EmptyError)
	}

	src := &image.NRGBA{
		Pix:    bm.Pix,
		Stride: bm.Width * 4,
		Rect:   image.Rect(0, 0, bm.Width, bm.Height),
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return &Bitmap{
		Width:  width,
		Height: height,
		Pix:    dst.Pix,
	}, nil
}
