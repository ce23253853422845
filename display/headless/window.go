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

package headless

import (
	"github.com/jetsetilly/softgfx/curated"
	"github.com/jetsetilly/softgfx/display"
)

// Window is the headless implementation of display.Window.
type Window struct {
	drv *Driver

	Title string

	width  int
	height int

	cursor      bool
	cursorShape display.Cursor

	renderer  *Renderer
	destroyed bool
}

// CreateRenderer implements the display.Window interface.
func (win *Window) CreateRenderer() (display.Renderer, error) {
	if err := win.drv.fail(FailRenderer); err != nil {
		return nil, err
	}
	win.renderer = &Renderer{
		win:    win,
		target: make([]uint32, win.width*win.height),
		width:  win.width,
		height: win.height,
	}
	win.drv.live++
	return win.renderer, nil
}

// Size implements the display.Window interface.
func (win *Window) Size() (int, int) {
	return win.width, win.height
}

// Resize changes the size of the window, as if the user had resized it. The
// render target is not affected.
func (win *Window) Resize(width, height int) {
	win.width = width
	win.height = height
}

// ShowCursor implements the display.Window interface.
func (win *Window) ShowCursor(show bool) error {
	win.cursor = show
	return nil
}

// CursorVisible returns the value set by the most recent call to
// ShowCursor().
func (win *Window) CursorVisible() bool {
	return win.cursor
}

// SetCursor implements the display.Window interface.
func (win *Window) SetCursor(cursor display.Cursor) error {
	win.cursorShape = cursor
	return nil
}

// Cursor returns the value set by the most recent call to SetCursor().
func (win *Window) Cursor() display.Cursor {
	return win.cursorShape
}

// Destroy implements the display.Window interface.
func (win *Window) Destroy() error {
	if win.destroyed {
		return curated.Errorf(DestroyedError, "window")
	}
	win.destroyed = true
	win.drv.live--
	return nil
}

// Renderer returns the most recently created renderer. It will be nil if no
// renderer has been created.
func (win *Window) Renderer() *Renderer {
	return win.renderer
}
