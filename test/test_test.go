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

package test_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/softgfx/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, true, true)
	test.ExpectEquality(t, true, !false)
	test.ExpectEquality(t, uint32(0xff00ff), 0xff00ff)
}

func TestExpectInequality(t *testing.T) {
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectInequality(t, true, false)
}

func TestExpectApproximate(t *testing.T) {
	test.ExpectApproximate(t, 10, 11, 0.1)
	test.ExpectApproximate(t, 0.95, 1.0, 0.1)
}

func TestWriter(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, w.Compare(""), true)
	test.ExpectEquality(t, len(w.Lines()), 0)

	fmt.Fprintln(w, "line one")
	fmt.Fprintln(w, "line two")
	test.ExpectEquality(t, w.Compare("line one\nline two\n"), true)

	l := w.Lines()
	test.DemandEquality(t, len(l), 2)
	test.ExpectEquality(t, l[1], "line two")

	w.Clear()
	test.ExpectEquality(t, w.String(), "")
}
