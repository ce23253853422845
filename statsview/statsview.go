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

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/jetsetilly/softgfx/logger"
)

// Address of the stats server.
const Address = "localhost:12600"

const path = "/debug/statsview"

// URL returns the address of the statistics page.
func URL() string {
	return fmt.Sprintf("http://%s%s", Address, path)
}

// Launch the stats server in a new goroutine. The address of the statistics
// page is written to output.
func Launch(output io.Writer) {
	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr := statsview.New()

	go func() {
		logger.Logf(logger.Allow, "statsview", "listening on %s", Address)
		mgr.Start()
	}()

	fmt.Fprintf(output, "stats server available at %s\n", URL())
}
