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

package paths

import (
	"os"
	"path/filepath"
)

// name of the resource directory when found in the current working directory.
// the name without the leading dot is used in the user's config directory
const baseResourcePath = ".softgfx"

// ResourcePath returns the path of the resource in the resource directory.
func ResourcePath(resource ...string) string {
	p := make([]string, 0, len(resource)+1)
	p = append(p, basePath())
	p = append(p, resource...)
	return filepath.Join(p...)
}

// the existence of the resource itself is not checked
func basePath() string {
	if fi, err := os.Stat(baseResourcePath); err == nil && fi.IsDir() {
		return baseResourcePath
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}
	return filepath.Join(cnf, baseResourcePath[1:])
}

// FirstExisting returns the first of the candidate paths that names an
// existing file. Returns false if none of the candidates exist.
func FirstExisting(candidates ...string) (string, bool) {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if fi, err := os.Stat(c); err == nil && !fi.IsDir() {
			return c, true
		}
	}
	return "", false
}
