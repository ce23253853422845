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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is kept with the error
// and is used to identify it later. Packages in softgfx declare their
// patterns as exported constants. For example:
//
//	const SpriteError = "sprite: %v"
//
//	e := curated.Errorf(SpriteError, "file not found")
//
//	if curated.Is(e, SpriteError) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("demo: %v", e)
//
//	if curated.Has(f, SpriteError) {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). Put another way, it returns true if the error is 'curated'
// and false if the error is 'uncurated'.
//
// The Error() function ensures that the error chain does not contain
// duplicate adjacent parts. So wrapping a "gfx: %v" error in another
// "gfx: %v" error will print only one "gfx: " prefix.
//
// Curated errors also implement Unwrap() so that errors from other packages,
// wrapped as values, can be found with errors.Is() and errors.As() from the
// standard library.
package curated
