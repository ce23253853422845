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

// Package gfx is a small software rendering helper. A graphics Context owns a
// window, a renderer, a streaming transfer texture and a pixel buffer.
// Programs write to the pixel buffer and then present it in two steps:
//
//	ctx.CopyPixels() // upload the buffer and copy it to the render target
//	ctx.Present()    // show the render target
//
// Sprites can be drawn between the two steps, over the uploaded buffer. The
// Update() function performs both steps for programs that have no need for
// sprites.
//
// Input is polled one event per call with KeyPressed(). The mouse is read
// immediately with MouseState() or ScaledMouse().
//
// A Context is created with a display.Driver. The sdldisplay package provides
// the SDL2 driver and the headless package provides a driver with no display.
//
// A Context is not safe for concurrent use. All calls should be made from the
// goroutine that created it.
package gfx
