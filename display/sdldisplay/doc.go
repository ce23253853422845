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

// Package sdldisplay implements the display interfaces with SDL2, via the
// go-sdl2 bindings.
//
// SDL requires that most of its functions are called from the thread that
// initialised it. The Init() function locks the calling goroutine to its
// thread and never unlocks it. All functions in this package should be
// called from that goroutine.
//
// SDL installs its own handler for the interrupt signal, turning it into a
// quit event. This package asks SDL not to do that so that the program can
// always be stopped with Ctrl-C.
package sdldisplay
