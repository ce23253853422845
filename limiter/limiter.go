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

// Package limiter paces a loop to a fixed number of iterations per second.
package limiter

import (
	"time"

	"github.com/jetsetilly/softgfx/curated"
)

// Sentinel errors.
const (
	RateError = "limiter: invalid rate (%d)"
)

// Limiter is used to pace a loop. Each call to Wait() blocks until the next
// tick of the limiter.
type Limiter struct {
	rate   int
	period time.Duration
	ticker *time.Ticker
}

// NewLimiter creates a limiter for the specified number of iterations per
// second.
func NewLimiter(rate int) (*Limiter, error) {
	if rate <= 0 {
		return nil, curated.Errorf(RateError, rate)
	}
	period := time.Second / time.Duration(rate)
	if period <= 0 {
		return nil, curated.Errorf(RateError, rate)
	}
	return &Limiter{
		rate:   rate,
		period: period,
		ticker: time.NewTicker(period),
	}, nil
}

// Wait until the next tick. If a tick has been missed then Wait returns
// immediately.
func (lim *Limiter) Wait() {
	<-lim.ticker.C
}

// Rate returns the number of ticks per second.
func (lim *Limiter) Rate() int {
	return lim.rate
}

// Period returns the duration between ticks.
func (lim *Limiter) Period() time.Duration {
	return lim.period
}

// Stop the limiter. Wait() should not be called after Stop().
func (lim *Limiter) Stop() {
	lim.ticker.Stop()
}
