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

package display

import "fmt"

// Keycode identifies a key on the keyboard. Values are the same as SDL2
// keycodes.
type Keycode int32

// KeyNone is returned when no key has been pressed.
const KeyNone Keycode = 0

// List of keycodes used by softgfx.
const (
	KeyBackspace Keycode = 8
	KeyTab       Keycode = 9
	KeyReturn    Keycode = 13
	KeyEscape    Keycode = 27
	KeySpace     Keycode = 32
	KeyRight     Keycode = 0x4000004f
	KeyLeft      Keycode = 0x40000050
	KeyDown      Keycode = 0x40000051
	KeyUp        Keycode = 0x40000052
)

func (k Keycode) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyBackspace:
		return "backspace"
	case KeyTab:
		return "tab"
	case KeyReturn:
		return "return"
	case KeyEscape:
		return "escape"
	case KeySpace:
		return "space"
	case KeyRight:
		return "right"
	case KeyLeft:
		return "left"
	case KeyDown:
		return "down"
	case KeyUp:
		return "up"
	}
	if k > 32 && k < 127 {
		return string(rune(k))
	}
	return fmt.Sprintf("key %#x", int32(k))
}

// Mouse button masks. The values are the same as the SDL2 button masks.
const (
	ButtonLeft   uint32 = 1 << 0
	ButtonMiddle uint32 = 1 << 1
	ButtonRight  uint32 = 1 << 2
)

// MouseState is the immediate state of the mouse.
type MouseState struct {
	X, Y    int
	Buttons uint32
}

// Pressed returns true if the button specified by mask is down.
func (ms MouseState) Pressed(mask uint32) bool {
	return ms.Buttons&mask == mask
}

// Event is an input event returned by Driver.PollEvent().
type Event interface {
	isEvent()
}

// KeyEvent is sent when a key is pressed or released.
type KeyEvent struct {
	Key  Keycode
	Down bool
}

func (KeyEvent) isEvent() {}

// QuitEvent is sent when the window has been closed by the user.
type QuitEvent struct{}

func (QuitEvent) isEvent() {}

// OtherEvent is any event that softgfx has no specific handling for.
type OtherEvent struct {
	Description string
}

func (OtherEvent) isEvent() {}
