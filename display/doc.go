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

// Package display defines the boundary between softgfx and the multimedia
// library that owns windows, renderers, textures and input events.
//
// The interfaces are deliberately close to the shape of the SDL2 API. The
// sdldisplay package implements them with SDL2 and the headless package
// implements them in memory, which is useful for testing and for running
// without a display.
//
// Resources are created in order: a Driver is initialised, a Window is
// created by the Driver, a Renderer is created for the Window and Textures
// are created by the Renderer. Each resource must be destroyed before the
// resource that created it.
package display
