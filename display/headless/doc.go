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

// Package headless implements the display interfaces in memory. Nothing is
// shown on a screen. Instead, every call to Present() captures the contents
// of the render target, which can be inspected with the Frame() function.
//
// Input events are scripted with PushEvent() and PushKey(). The mouse state
// is set with SetMouse().
//
// Failures can be injected at any stage of resource creation with the Fail
// field of the Driver. This is useful for testing that partially created
// resources are released correctly. The Live() function reports how many
// resources have been created but not yet destroyed.
package headless
