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

package gfx

// releaser is a list of release functions called in reverse order of
// registration. Resources are registered as soon as they are acquired so
// that a failure later in a creation sequence releases everything acquired
// before it.
type releaser struct {
	fns []func() error
}

func (rel *releaser) push(fn func() error) {
	rel.fns = append(rel.fns, fn)
}

// release calls every registered function, most recent first. All functions
// are called even if one of them fails. The first error is returned.
func (rel *releaser) release() error {
	var first error
	for i := len(rel.fns) - 1; i >= 0; i-- {
		if err := rel.fns[i](); err != nil && first == nil {
			first = err
		}
	}
	rel.fns = rel.fns[:0]
	return first
}
