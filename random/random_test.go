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

package random_test

import (
	"testing"

	"github.com/jetsetilly/softgfx/random"
	"github.com/jetsetilly/softgfx/test"
)

func TestZeroSeed(t *testing.T) {
	a := random.NewRandom()
	b := random.NewRandom()
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
		test.ExpectEquality(t, a.Uint8(), b.Uint8())
	}
}

func TestReset(t *testing.T) {
	a := random.NewRandom()
	a.ZeroSeed = true

	first := make([]int, 10)
	for i := range first {
		first[i] = a.Intn(1000)
	}

	a.Reset()
	for i := range first {
		test.ExpectEquality(t, a.Intn(1000), first[i], i)
	}
}

func TestRange(t *testing.T) {
	a := random.NewRandom()
	for range 1000 {
		v := a.Intn(7)
		if v < 0 || v >= 7 {
			t.Fatalf("random number out of range: %d", v)
		}
	}
}
