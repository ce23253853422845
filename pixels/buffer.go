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

import (
	"github.com/jetsetilly/softgfx/curated"
)

// Sentinel errors.
const (
	DimensionError = "pixels: invalid dimensions (%dx%d)"
	StrideError    = "pixels: stride (%d) is less than width (%d)"
)

// BytesPerPixel is the number of bytes occupied by each word in the buffer.
const BytesPerPixel = 4

// Buffer is an array of packed pixel values. The size of the buffer is fixed
// on creation.
type Buffer struct {
	width  int
	height int
	stride int
	words  []uint32
}

// NewBuffer is the preferred method of initialisation for the Buffer type. The
// stride of the buffer will be the same as the width.
func NewBuffer(width, height int) (*Buffer, error) {
	return NewBufferWithStride(width, height, width)
}

// NewBufferWithStride creates a buffer with rows that are padded to stride
// words. Padding words are never written to by the Buffer functions.
func NewBufferWithStride(width, height, stride int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, curated.Errorf(DimensionError, width, height)
	}
	if stride < width {
		return nil, curated.Errorf(StrideError, stride, width)
	}
	return &Buffer{
		width:  width,
		height: height,
		stride: stride,
		words:  make([]uint32, stride*height),
	}, nil
}

// Width of the buffer in pixels.
func (buf *Buffer) Width() int {
	return buf.width
}

// Height of the buffer in pixels.
func (buf *Buffer) Height() int {
	return buf.height
}

// Stride is the number of words in each row of the buffer.
func (buf *Buffer) Stride() int {
	return buf.stride
}

// Pitch is the number of bytes in each row of the buffer.
func (buf *Buffer) Pitch() int {
	return buf.stride * BytesPerPixel
}

// Len is the number of addressable pixels in the buffer. Padding is not
// counted.
func (buf *Buffer) Len() int {
	return buf.width * buf.height
}

// Words returns the underlying storage of the buffer, including padding. The
// slice should not be retained by the caller beyond the current frame.
func (buf *Buffer) Words() []uint32 {
	return buf.words
}

// Clear sets every addressable pixel to the specified colour.
func (buf *Buffer) Clear(px Pixel) {
	w := px.Word()

	// fast path for unpadded buffers
	if buf.stride == buf.width {
		for i := range buf.words {
			buf.words[i] = w
		}
		return
	}

	for y := 0; y < buf.height; y++ {
		row := buf.words[y*buf.stride : y*buf.stride+buf.width]
		for i := range row {
			row[i] = w
		}
	}
}

// PutPixel sets the pixel at x, y. Coordinates outside of the buffer are
// silently ignored.
func (buf *Buffer) PutPixel(x, y int, px Pixel) {
	if x < 0 || y < 0 || x >= buf.width || y >= buf.height {
		return
	}
	buf.words[y*buf.stride+x] = px.Word()
}

// Pixel returns the pixel at x, y. The second return value is false if the
// coordinates are outside of the buffer.
func (buf *Buffer) Pixel(x, y int) (Pixel, bool) {
	if x < 0 || y < 0 || x >= buf.width || y >= buf.height {
		return Pixel{}, false
	}
	return FromWord(buf.words[y*buf.stride+x]), true
}

// Snapshot returns a copy of the addressable pixels in row-major order with no
// padding.
func (buf *Buffer) Snapshot() []uint32 {
	s := make([]uint32, 0, buf.Len())
	for y := 0; y < buf.height; y++ {
		s = append(s, buf.words[y*buf.stride:y*buf.stride+buf.width]...)
	}
	return s
}
