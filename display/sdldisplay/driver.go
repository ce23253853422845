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
	"runtime"

	"github.com/jetsetilly/softgfx/display"
	"github.com/jetsetilly/softgfx/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Driver is the SDL2 implementation of the display.Driver interface.
type Driver struct {
	initialised bool
}

// NewDriver is the preferred method of initialisation for the Driver type.
func NewDriver() *Driver {
	return &Driver{}
}

// Init implements the display.Driver interface.
func (drv *Driver) Init() error {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	// keep the default behaviour of the interrupt signal
	sdl.SetHint(sdl.HINT_NO_SIGNAL_HANDLERS, "1")

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	drv.initialised = true

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	return nil
}

// Quit implements the display.Driver interface.
func (drv *Driver) Quit() {
	if !drv.initialised {
		return
	}
	drv.initialised = false
	sdl.Quit()
}

// Name implements the display.Driver interface.
func (drv *Driver) Name() string {
	return "SDL2"
}

// CreateWindow implements the display.Driver interface.
func (drv *Driver) CreateWindow(title string, width, height int) (display.Window, error) {
	w, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	return &window{window: w}, nil
}

// PollEvent implements the display.Driver interface.
func (drv *Driver) PollEvent() display.Event {
	ev := sdl.PollEvent()
	if ev == nil {
		return nil
	}

	switch ev := ev.(type) {
	case *sdl.KeyboardEvent:
		return display.KeyEvent{
			Key:  display.Keycode(ev.Keysym.Sym),
			Down: ev.Type == sdl.KEYDOWN,
		}
	case *sdl.QuitEvent:
		return display.QuitEvent{}
	}

	return display.OtherEvent{Description: fmt.Sprintf("%T", ev)}
}

// MouseState implements the display.Driver interface.
func (drv *Driver) MouseState() display.MouseState {
	// SDL button masks are the same as the display package masks
	x, y, state := sdl.GetMouseState()
	return display.MouseState{
		X:       int(x),
		Y:       int(y),
		Buttons: uint32(state),
	}
}

// RenderDrivers implements the display.Driver interface.
func (drv *Driver) RenderDrivers() ([]string, error) {
	n, err := sdl.GetNumRenderDrivers()
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		var info sdl.RendererInfo
		_, err := sdl.GetRenderDriverInfo(i, &info)
		if err != nil {
			return nil, fmt.Errorf("sdl: %w", err)
		}
		names = append(names, info.Name)
	}

	return names, nil
}
