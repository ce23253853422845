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

// Package bitmap decodes image files into RGBA bitmaps suitable for creating
// sprites.
//
// Decoding is done by the image decoders registered with the standard image
// package. This package registers the PNG, JPEG and GIF decoders from the
// standard library and the BMP, TIFF and WebP decoders from golang.org/x/image.
package bitmap
