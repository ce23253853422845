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

package demos

import (
	"fmt"
	"io"

	"github.com/jetsetilly/softgfx/display"
)

// ListDrivers writes the names of the rendering backends available to the
// driver.
func ListDrivers(output io.Writer, drv display.Driver) error {
	names, err := drv.RenderDrivers()
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s drivers count: %d\n", drv.Name(), len(names))
	for i, n := range names {
		fmt.Fprintf(output, "Driver %d: %s\n", i, n)
	}

	return nil
}
