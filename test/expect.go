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

package test

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

// id builds a prefix string from optional tags.
func id(tags ...any) string {
	if len(tags) == 0 {
		return ""
	}
	s := make([]string, len(tags))
	for i, t := range tags {
		s[i] = fmt.Sprintf("%v", t)
	}
	return fmt.Sprintf("%s: ", strings.Join(s, ", "))
}

// expect returns true if v represents a success value.
func expect(t *testing.T, v any, tags ...any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		return v
	case error:
		return v == nil
	case nil:
		return true
	default:
		t.Fatalf("%sunsupported type (%T) for expectation testing", id(tags...), v)
	}

	return false
}

// ExpectSuccess tests that v is a success value: true, a nil error or nil.
func ExpectSuccess(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	if !expect(t, v, tags...) {
		if err, ok := v.(error); ok {
			t.Errorf("%sexpected success (error: %v)", id(tags...), err)
		} else {
			t.Errorf("%sexpected success (%T)", id(tags...), v)
		}
		return false
	}
	return true
}

// ExpectFailure tests that v is a failure value: false or a non-nil error.
func ExpectFailure(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	if expect(t, v, tags...) {
		t.Errorf("%sexpected failure (%T)", id(tags...), v)
		return false
	}
	return true
}

// ExpectEquality is used to test equality between one value and another.
func ExpectEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) bool {
	t.Helper()
	if v != expectedValue {
		t.Errorf("%sequality test of type %T failed: '%v' does not equal '%v'", id(tags...), v, v, expectedValue)
		return false
	}
	return true
}

// ExpectInequality is the inverse of ExpectEquality.
func ExpectInequality[T comparable](t *testing.T, v T, notExpectedValue T, tags ...any) bool {
	t.Helper()
	if v == notExpectedValue {
		t.Errorf("%sinequality test of type %T failed: '%v' does equal '%v'", id(tags...), v, v, notExpectedValue)
		return false
	}
	return true
}

// ExpectApproximate tests that v is within tolerance of expectedValue. The
// tolerance is a fraction of the expected value.
func ExpectApproximate[T ~int | ~int32 | ~int64 | ~float32 | ~float64](t *testing.T, v T, expectedValue T, tolerance float64, tags ...any) bool {
	t.Helper()
	d := math.Abs(float64(expectedValue) * tolerance)
	if math.Abs(float64(v)-float64(expectedValue)) > d {
		t.Errorf("%sapproximation test of type %T failed: '%v' is not within %.2f of '%v'", id(tags...), v, v, tolerance, expectedValue)
		return false
	}
	return true
}
