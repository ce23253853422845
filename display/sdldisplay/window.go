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

package sdldisplay

import (
	"fmt"

	"github.com/jetsetilly/softgfx/display"
	"github.com/jetsetilly/softgfx/logger"
	"github.com/veandco/go-sdl2/sdl"
)

type window struct {
	window *sdl.Window

	// the system cursor most recently set with SetCursor()
	cursor *sdl.Cursor
}

func (win *window) CreateRenderer() (display.Renderer, error) {
	r, err := sdl.CreateRenderer(win.window, -1, 0)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	rnd := &renderer{renderer: r}

	info, err := r.GetInfo()
	if err == nil {
		rnd.name = info.Name
		logger.Logf(logger.Allow, "sdl", "renderer: %s", rnd.name)
	}

	return rnd, nil
}

func (win *window) Size() (int, int) {
	w, h := win.window.GetSize()
	return int(w), int(h)
}

func (win *window) ShowCursor(show bool) error {
	toggle := sdl.DISABLE
	if show {
		toggle = sdl.ENABLE
	}
	_, err := sdl.ShowCursor(toggle)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

func (win *window) SetCursor(cursor display.Cursor) error {
	var id sdl.SystemCursor
	switch cursor {
	case display.CursorCrosshair:
		id = sdl.SYSTEM_CURSOR_CROSSHAIR
	default:
		id = sdl.SYSTEM_CURSOR_ARROW
	}

	c := sdl.CreateSystemCursor(id)
	if c == nil {
		return fmt.Errorf("sdl: %w", sdl.GetError())
	}
	sdl.SetCursor(c)

	// the previous cursor is no longer in use
	if win.cursor != nil {
		sdl.FreeCursor(win.cursor)
	}
	win.cursor = c

	return nil
}

func (win *window) Destroy() error {
	if win.cursor != nil {
		sdl.FreeCursor(win.cursor)
		win.cursor = nil
	}
	err := win.window.Destroy()
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}
