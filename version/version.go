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

// Package version reports the version of the program, as best it can, from the
// build information embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is used when referring to the program, for example in the
// default window title.
const ApplicationName = "softgfx"

// number is set by the linker for numbered releases
var number string

var (
	version  string
	revision string
)

// Version returns the version string, the revision string and whether this
// is a numbered release.
//
// The version string is "unreleased" when built from a VCS checkout without a
// version number and "local" when there is no VCS information at all, for
// example when using "go run". A revision with uncommitted changes is suffixed
// with "+dirty".
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns the application name and version in a single line.
func String() string {
	if number != "" {
		return fmt.Sprintf("%s %s", ApplicationName, version)
	}
	return fmt.Sprintf("%s (%s, %s)", ApplicationName, version, revision)
}

func init() {
	version, revision = fromBuildInfo(debug.ReadBuildInfo())
}

func fromBuildInfo(info *debug.BuildInfo, ok bool) (string, string) {
	var vcs bool
	var rev string
	var modified bool

	if ok && info != nil {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				rev = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if rev == "" {
		rev = "no revision information"
	} else if modified {
		rev = fmt.Sprintf("%s+dirty", rev)
	}

	switch {
	case number != "":
		return number, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}
