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

package curated

import (
	"fmt"
	"strings"
)

type curated struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error. Note that unlike fmt.Errorf() the %w
// verb should not be used. Wrapped errors should use %v.
func Errorf(pattern string, values ...any) error {
	// note that we're not actually formatting the error here, despite the
	// function name. we instead only store the arguments. formatting takes
	// place in the Error() function
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error returns the normalised error message.
func (er curated) Error() string {
	s := fmt.Sprintf(er.pattern, er.values...)

	// de-duplicate adjacent error message parts
	p := strings.Split(s, ": ")
	d := make([]string, 0, len(p))
	for i := range p {
		if i > 0 && p[i] == p[i-1] {
			continue
		}
		d = append(d, p[i])
	}

	return strings.Join(d, ": ")
}

// Unwrap returns the wrapped errors among the values used to create the
// curated error.
func (er curated) Unwrap() []error {
	var w []error
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			w = append(w, e)
		}
	}
	return w
}

// IsAny checks if error is being curated by this package.
func IsAny(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(curated)
	return ok
}

// Is checks if error has the specified pattern. Wrapped errors are not
// considered.
func Is(err error, pattern string) bool {
	if err == nil {
		return false
	}
	if er, ok := err.(curated); ok {
		return er.pattern == pattern
	}
	return false
}

// Has checks if the pattern is used anywhere in the error chain.
func Has(err error, pattern string) bool {
	if !IsAny(err) {
		return false
	}

	if Is(err, pattern) {
		return true
	}

	for _, v := range err.(curated).values {
		if e, ok := v.(error); ok {
			if Has(e, pattern) {
				return true
			}
		}
	}

	return false
}
