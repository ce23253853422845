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
	"github.com/jetsetilly/softgfx/logger"
)

// Sentinel errors.
const (
	NotInitialised = "headless: driver not initialised"
	InjectedError  = "headless: injected failure (%s)"
	DestroyedError = "headless: %s already destroyed"
	TextureError   = "headless: %v"
)

// Stage identifies a point at which resource creation can fail.
type Stage int

// List of valid Stage values.
const (
	NoFailure Stage = iota
	FailInit
	FailWindow
	FailRenderer
	FailTexture
	FailSprite
	FailUpload
	FailPresent
)

func (s Stage) String() string {
	switch s {
	case NoFailure:
		return "none"
	case FailInit:
		return "init"
	case FailWindow:
		return "window"
	case FailRenderer:
		return "renderer"
	case FailTexture:
		return "texture"
	case FailSprite:
		return "sprite"
	case FailUpload:
		return "upload"
	case FailPresent:
		return "present"
	}
	return "unknown"
}

// Driver is the headless implementation of display.Driver.
type Driver struct {
	// the stage at which resource creation should fail
	Fail Stage

	initialised bool

	// the number of resources (including the driver itself) that have been
	// created but not destroyed
	live int

	events []display.Event
	mouse  display.MouseState

	// the most recently created window
	window *Window
}

// NewDriver is the preferred method of initialisation for the Driver type.
func NewDriver() *Driver {
	return &Driver{}
}

func (drv *Driver) fail(s Stage) error {
	if drv.Fail == s {
		return curated.Errorf(InjectedError, s)
	}
	return nil
}

// Init implements the display.Driver interface.
func (drv *Driver) Init() error {
	if err := drv.fail(FailInit); err != nil {
		return err
	}
	drv.initialised = true
	drv.live++
	logger.Log(logger.Allow, "headless", "driver initialised")
	return nil
}

// Quit implements the display.Driver interface.
func (drv *Driver) Quit() {
	if !drv.initialised {
		return
	}
	drv.initialised = false
	drv.live--
}

// Name implements the display.Driver interface.
func (drv *Driver) Name() string {
	return "headless"
}

// CreateWindow implements the display.Driver interface.
func (drv *Driver) CreateWindow(title string, width, height int) (display.Window, error) {
	if !drv.initialised {
		return nil, curated.Errorf(NotInitialised)
	}
	if err := drv.fail(FailWindow); err != nil {
		return nil, err
	}
	drv.window = &Window{
		drv:    drv,
		Title:  title,
		width:  width,
		height: height,
		cursor: true,
	}
	drv.live++
	return drv.window, nil
}

// PollEvent implements the display.Driver interface.
func (drv *Driver) PollEvent() display.Event {
	if len(drv.events) == 0 {
		return nil
	}
	ev := drv.events[0]
	drv.events = drv.events[1:]
	return ev
}

// MouseState implements the display.Driver interface.
func (drv *Driver) MouseState() display.MouseState {
	return drv.mouse
}

// RenderDrivers implements the display.Driver interface.
func (drv *Driver) RenderDrivers() ([]string, error) {
	return []string{"headless"}, nil
}

// PushEvent adds an event to the end of the event queue.
func (drv *Driver) PushEvent(ev display.Event) {
	drv.events = append(drv.events, ev)
}

// PushKey adds a key down event followed by a key up event for the key.
func (drv *Driver) PushKey(key display.Keycode) {
	drv.PushEvent(display.KeyEvent{Key: key, Down: true})
	drv.PushEvent(display.KeyEvent{Key: key, Down: false})
}

// Pending returns the number of events in the queue.
func (drv *Driver) Pending() int {
	return len(drv.events)
}

// SetMouse sets the value returned by MouseState().
func (drv *Driver) SetMouse(x, y int, buttons uint32) {
	drv.mouse = display.MouseState{X: x, Y: y, Buttons: buttons}
}

// Live returns the number of resources that have been created but not yet
// destroyed. The initialised driver itself counts as one resource.
func (drv *Driver) Live() int {
	return drv.live
}

// Window returns the most recently created window. It will be nil if no
// window has been created.
func (drv *Driver) Window() *Window {
	return drv.window
}
