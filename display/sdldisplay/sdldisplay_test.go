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

package sdldisplay_test

import (
	"testing"

	"github.com/jetsetilly/softgfx/display"
	"github.com/jetsetilly/softgfx/display/sdldisplay"
	"github.com/jetsetilly/softgfx/test"
)

// the driver is not initialised. building this test is enough to check that
// the package compiles against the SDL bindings
func TestImplementation(t *testing.T) {
	drv := sdldisplay.NewDriver()
	test.DemandImplements[display.Driver](t, drv)
	test.ExpectEquality(t, drv.Name(), "SDL2")
}
