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

// Package paths prepares paths to softgfx resources.
//
// The ResourcePath() function prepends the supplied resource with the
// resource directory. If a directory named ".softgfx" exists in the current
// working directory then that directory is used. Otherwise the "softgfx"
// directory in the user's config directory is used, as defined by
// os.UserConfigDir(). On a Linux system the path for a sprite might be:
//
//	/home/user/.config/softgfx/tux_jedi.png
//
// Neither function creates any directories.
package paths
