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

package random

import (
	"math/rand/v2"
	"time"
)

var baseSeed uint64

func init() {
	baseSeed = uint64(time.Now().UnixNano())
}

// Random is a source of random numbers.
type Random struct {
	// use zero seed rather than the random base seed. this is only really
	// useful for instances where random numbers must be predictable
	ZeroSeed bool

	rnd *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{}
}

func (rnd *Random) rand() *rand.Rand {
	if rnd.rnd == nil {
		if rnd.ZeroSeed {
			rnd.rnd = rand.New(rand.NewPCG(0, 0))
		} else {
			rnd.rnd = rand.New(rand.NewPCG(baseSeed, baseSeed>>32))
		}
	}
	return rnd.rnd
}

// Reset the sequence of numbers. The value of ZeroSeed is re-evaluated.
func (rnd *Random) Reset() {
	rnd.rnd = nil
}

// Intn returns a random number in the range 0 to n-1. It panics if n <= 0.
func (rnd *Random) Intn(n int) int {
	return rnd.rand().IntN(n)
}

// Uint8 returns a random eight-bit value.
func (rnd *Random) Uint8() uint8 {
	return uint8(rnd.rand().Uint32())
}
