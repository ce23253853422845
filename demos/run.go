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

package demos

import (
	"time"

	"github.com/jetsetilly/softgfx/curated"
	"github.com/jetsetilly/softgfx/display"
	"github.com/jetsetilly/softgfx/gfx"
	"github.com/jetsetilly/softgfx/logger"
)

// Sentinel errors.
const (
	FrameError = "demo: frame %d: %v"
)

// Scene is a single demo program.
type Scene interface {
	// Input is called once per frame with the key pressed since the previous
	// frame. The key will be display.KeyNone if no key was pressed.
	Input(key display.Keycode)

	// Frame draws and presents a single frame.
	Frame(ctx *gfx.Context) error
}

// Pacer is used to slow the loop in Run(). The limiter package satisfies this
// interface.
type Pacer interface {
	Wait()
}

// Options for the Run() function.
type Options struct {
	// pace the loop. can be nil
	Pacer Pacer

	// stop after this many frames. zero means no limit
	MaxFrames int
}

// Run the scene until the Escape key is pressed or the window is closed. The
// number of frames drawn is returned along with any error from the scene.
func Run(ctx *gfx.Context, scene Scene, opts Options) (int, error) {
	var frames int
	start := time.Now()

	defer func() {
		elapsed := time.Since(start)
		if elapsed > 0 && frames > 0 {
			logger.Logf(logger.Allow, "demo", "%d frames in %.2fs (%.1f fps)", frames, elapsed.Seconds(), float64(frames)/elapsed.Seconds())
		}
	}()

	for opts.MaxFrames <= 0 || frames < opts.MaxFrames {
		key, quit := ctx.PollKey()
		if quit {
			logger.Log(logger.Allow, "demo", "window closed")
			return frames, nil
		}
		if key == display.KeyEscape {
			return frames, nil
		}

		scene.Input(key)

		err := scene.Frame(ctx)
		if err != nil {
			return frames, curated.Errorf(FrameError, frames, err)
		}
		frames++

		if opts.Pacer != nil {
			opts.Pacer.Wait()
		}
	}

	return frames, nil
}
