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

// Package modalflag wraps the flag package from the standard library and adds
// the idea of program modes. Each mode has its own set of flags and can itself
// have sub-modes.
//
// Arguments are given to the Modes type with NewArgs() and are then parsed
// one layer at a time. The first layer usually does nothing more than select
// the mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("NOISE", "PLASMA")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
// After which the flags for the selected mode are added and the next layer is
// parsed:
//
//	md.NewMode()
//	width := md.AddInt("width", 640, "width of window")
//
//	switch md.Mode() {
//	case "NOISE":
//		...
//	}
//
// The first sub-mode in the list is the default. If the next argument does
// not name a sub-mode, or if the next argument is a flag that the current
// layer does not understand, the default sub-mode is selected and the argument
// is left for the next layer. Sub-mode names are not case sensitive.
//
// Help is printed to the Output writer whenever the -help flag is seen. The
// help text lists the flags and sub-modes of the layer being parsed.
package modalflag
