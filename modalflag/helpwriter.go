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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the usage text produced by the flag package so that it
// can be amended before being shown.
type helpWriter struct {
	buf strings.Builder
}

// Write implements the io.Writer interface.
func (hw *helpWriter) Write(p []byte) (int, error) {
	return hw.buf.Write(p)
}

func (hw *helpWriter) help(output io.Writer, path string, subModes []string, additional string) {
	lines := strings.Split(hw.buf.String(), "\n")

	// the flag package always produces a "Usage:" line. if that is the only
	// thing produced then there are no flags
	noFlags := len(lines) <= 2 && strings.TrimSpace(lines[len(lines)-1]) == ""

	if noFlags && len(subModes) == 0 && additional == "" {
		if path == "" {
			fmt.Fprintln(output, "No help available")
		} else {
			fmt.Fprintf(output, "No help available for %s\n", path)
		}
		return
	}

	if path == "" {
		fmt.Fprintln(output, lines[0])
	} else {
		fmt.Fprintf(output, "%s for %s mode\n", lines[0], path)
	}

	if !noFlags {
		fmt.Fprint(output, strings.Join(lines[1:], "\n"))
	}

	if len(subModes) > 0 {
		if !noFlags {
			fmt.Fprintln(output)
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
	}

	if additional != "" {
		fmt.Fprintf(output, "\n%s\n", additional)
	}
}
