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

// Package demos contains the demonstration programs for the gfx package. Each
// demo is a Scene, which is driven by the Run() function.
//
// The loop in Run() polls for a single key press, passes it to the scene and
// then asks the scene to draw and present a frame. The loop ends when the
// Escape key is pressed or when the window is closed.
package demos
