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

package gfx

import (
	"github.com/jetsetilly/softgfx/display"
)

// KeyPressed removes at most one event from the event queue. If the event is
// a key press then the key is returned. Otherwise display.KeyNone is returned.
// KeyPressed never blocks.
func (ctx *Context) KeyPressed() display.Keycode {
	key, _ := ctx.PollKey()
	return key
}

// PollKey is the same as KeyPressed() but also reports whether the event
// removed from the queue was a request to close the window.
func (ctx *Context) PollKey() (display.Keycode, bool) {
	if ctx.destroyed {
		return display.KeyNone, false
	}

	switch ev := ctx.drv.PollEvent().(type) {
	case display.KeyEvent:
		if ev.Down {
			return ev.Key, false
		}
	case display.QuitEvent:
		return display.KeyNone, true
	}

	return display.KeyNone, false
}

// MouseState returns the immediate state of the mouse. The position is in
// window coordinates.
func (ctx *Context) MouseState() display.MouseState {
	if ctx.destroyed {
		return display.MouseState{}
	}
	return ctx.drv.MouseState()
}

// ScaledMouse returns the state of the mouse with the position scaled from
// window coordinates to pixel buffer coordinates. The two differ when the
// window has been resized.
func (ctx *Context) ScaledMouse() display.MouseState {
	ms := ctx.MouseState()
	if ctx.destroyed {
		return ms
	}

	w, h := ctx.window.Size()
	if w > 0 && w != ctx.pixels.Width() {
		ms.X = ms.X * ctx.pixels.Width() / w
	}
	if h > 0 && h != ctx.pixels.Height() {
		ms.Y = ms.Y * ctx.pixels.Height() / h
	}

	return ms
}

// RenderDrivers lists the rendering backends available to the driver used by
// the context.
func (ctx *Context) RenderDrivers() ([]string, error) {
	return ctx.drv.RenderDrivers()
}
