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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/softgfx/paths"
	"github.com/jetsetilly/softgfx/test"
)

func TestLocalResourcePath(t *testing.T) {
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".softgfx", 0700))

	test.ExpectEquality(t, paths.ResourcePath("foo/bar", "baz"), filepath.Join(".softgfx", "foo", "bar", "baz"))
	test.ExpectEquality(t, paths.ResourcePath("foo/bar", ""), filepath.Join(".softgfx", "foo", "bar"))
	test.ExpectEquality(t, paths.ResourcePath("", "baz"), filepath.Join(".softgfx", "baz"))
	test.ExpectEquality(t, paths.ResourcePath(), ".softgfx")
}

func TestUserResourcePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Chdir(t.TempDir())

	pth := paths.ResourcePath("tux.png")
	test.ExpectSuccess(t, strings.HasSuffix(pth, filepath.Join("softgfx", "tux.png")), pth)
	test.ExpectFailure(t, strings.HasPrefix(pth, ".softgfx"), pth)
}

func TestFirstExisting(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	test.DemandSuccess(t, os.WriteFile(b, []byte("b"), 0600))

	pth, ok := paths.FirstExisting("", a, dir, b)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, pth, b)

	_, ok = paths.FirstExisting(a)
	test.ExpectFailure(t, ok)
}
