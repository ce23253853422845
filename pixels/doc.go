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

// Package pixels defines the pixel format and the pixel buffer written to by
// softgfx programs.
//
// A Pixel has four eight-bit channels. The alpha channel is carried but is
// not used when a buffer is presented. Pixels are stored in a Buffer as packed
// 32-bit words in ARGB8888 order, ie. blue in the least significant byte.
// Conversion between the Pixel type and the packed word is done with
// arithmetic in the Word() and FromWord() functions, so the layout does not
// depend on the byte order of the host.
//
// A Buffer is a flat slice of words, row-major. The stride (the number of
// words in a row) may be larger than the width of the buffer. Coordinates
// are converted to an index with:
//
//	index = y * stride + x
//
// Writes outside of the width and height of the buffer are ignored.
package pixels
