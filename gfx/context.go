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

import (
	"os"
	"os/signal"

	"github.com/jetsetilly/softgfx/curated"
	"github.com/jetsetilly/softgfx/display"
	"github.com/jetsetilly/softgfx/logger"
	"github.com/jetsetilly/softgfx/pixels"
)

// Sentinel errors.
const (
	InitError      = "gfx: %s: %v"
	PresentError   = "gfx: present: %v"
	DestroyError   = "gfx: destroy: %v"
	DestroyedError = "gfx: context has been destroyed"
	DimensionError = "gfx: invalid dimensions (%dx%d)"
)

// Context is the window, renderer, transfer texture and pixel buffer for a
// single window.
type Context struct {
	drv      display.Driver
	window   display.Window
	renderer display.Renderer

	// the texture that the pixel buffer is uploaded to
	transfer display.Texture

	pixels *pixels.Buffer

	// sprites created by this context that have not been destroyed
	sprites map[*Sprite]bool

	// release functions for everything above, in order of acquisition
	rel releaser

	destroyed bool
}

// Create a new graphics context. The window will be the same size as the
// pixel buffer but may be resized by the user. On failure any resources
// acquired before the failure are released.
func Create(drv display.Driver, title string, width, height int) (*Context, error) {
	if width <= 0 || height <= 0 {
		return nil, curated.Errorf(DimensionError, width, height)
	}

	// restore default interrupt behaviour so that the program can always be
	// stopped with Ctrl-C
	signal.Reset(os.Interrupt)

	ctx := &Context{
		drv:     drv,
		sprites: make(map[*Sprite]bool),
	}

	err := ctx.acquire(title, width, height)
	if err != nil {
		if rerr := ctx.rel.release(); rerr != nil {
			logger.Logf(logger.Allow, "gfx", "release after failed creation: %v", rerr)
		}
		return nil, err
	}

	err = ctx.window.ShowCursor(false)
	if err != nil {
		logger.Logf(logger.Allow, "gfx", "hiding cursor: %v", err)
	}

	ctx.pixels.Clear(pixels.Black)

	logger.Logf(logger.Allow, "gfx", "%s context created (%dx%d) with %s renderer", drv.Name(), width, height, ctx.renderer.Name())

	return ctx, nil
}

// acquire each resource in turn, registering its release as soon as it is
// acquired
func (ctx *Context) acquire(title string, width, height int) error {
	var err error

	err = ctx.drv.Init()
	if err != nil {
		return curated.Errorf(InitError, "driver", err)
	}
	ctx.rel.push(func() error {
		ctx.drv.Quit()
		return nil
	})

	ctx.window, err = ctx.drv.CreateWindow(title, width, height)
	if err != nil {
		return curated.Errorf(InitError, "window", err)
	}
	ctx.rel.push(func() error {
		// show the cursor again in case it was hidden
		_ = ctx.window.ShowCursor(true)
		return ctx.window.Destroy()
	})

	ctx.renderer, err = ctx.window.CreateRenderer()
	if err != nil {
		return curated.Errorf(InitError, "renderer", err)
	}
	ctx.rel.push(ctx.renderer.Destroy)

	ctx.transfer, err = ctx.renderer.CreateStreamingTexture(width, height)
	if err != nil {
		return curated.Errorf(InitError, "texture", err)
	}
	ctx.rel.push(ctx.transfer.Destroy)

	ctx.pixels, err = pixels.NewBuffer(width, height)
	if err != nil {
		return curated.Errorf(InitError, "pixel buffer", err)
	}
	ctx.rel.push(func() error {
		ctx.pixels = nil
		return nil
	})

	return nil
}

// Destroy releases all resources used by the context, including any sprites
// that have not been destroyed. The context should not be used after it has
// been destroyed. Calling Destroy() more than once returns an error.
func (ctx *Context) Destroy() error {
	if ctx.destroyed {
		return curated.Errorf(DestroyedError)
	}
	ctx.destroyed = true

	var first error
	for s := range ctx.sprites {
		if err := s.Destroy(); err != nil && first == nil {
			first = err
		}
	}

	if err := ctx.rel.release(); err != nil && first == nil {
		first = err
	}

	if first != nil {
		return curated.Errorf(DestroyError, first)
	}

	logger.Log(logger.Allow, "gfx", "context destroyed")

	return nil
}

// Width of the pixel buffer.
func (ctx *Context) Width() int {
	if ctx.destroyed {
		return 0
	}
	return ctx.pixels.Width()
}

// Height of the pixel buffer.
func (ctx *Context) Height() int {
	if ctx.destroyed {
		return 0
	}
	return ctx.pixels.Height()
}

// Stride of the pixel buffer in pixels.
func (ctx *Context) Stride() int {
	if ctx.destroyed {
		return 0
	}
	return ctx.pixels.Stride()
}

// Buffer returns the pixel buffer owned by the context. It is nil if the
// context has been destroyed.
func (ctx *Context) Buffer() *pixels.Buffer {
	if ctx.destroyed {
		return nil
	}
	return ctx.pixels
}

// Clear the pixel buffer with the specified colour.
func (ctx *Context) Clear(px pixels.Pixel) {
	if ctx.destroyed {
		return
	}
	ctx.pixels.Clear(px)
}

// PutPixel sets the pixel at x, y in the pixel buffer. Coordinates outside of
// the buffer are silently ignored.
func (ctx *Context) PutPixel(x, y int, px pixels.Pixel) {
	if ctx.destroyed {
		return
	}
	ctx.pixels.PutPixel(x, y, px)
}

// Pixel returns the pixel at x, y in the pixel buffer. The second return value
// is false if the coordinates are outside of the buffer.
func (ctx *Context) Pixel(x, y int) (pixels.Pixel, bool) {
	if ctx.destroyed {
		return pixels.Pixel{}, false
	}
	return ctx.pixels.Pixel(x, y)
}

// CopyPixels uploads the pixel buffer to the transfer texture and copies the
// texture to the render target. Nothing is shown until Present() is called.
func (ctx *Context) CopyPixels() error {
	if ctx.destroyed {
		return curated.Errorf(DestroyedError)
	}

	err := ctx.transfer.Update(ctx.pixels.Words(), ctx.pixels.Pitch())
	if err != nil {
		return curated.Errorf(PresentError, err)
	}

	err = ctx.renderer.Copy(ctx.transfer, nil)
	if err != nil {
		return curated.Errorf(PresentError, err)
	}

	return nil
}

// Present shows the render target on screen. Calling Present() more than once
// without an intervening call to CopyPixels() shows the same frame.
func (ctx *Context) Present() error {
	if ctx.destroyed {
		return curated.Errorf(DestroyedError)
	}

	err := ctx.renderer.Present()
	if err != nil {
		return curated.Errorf(PresentError, err)
	}

	return nil
}

// Update is a convenience function that calls CopyPixels() and Present().
func (ctx *Context) Update() error {
	err := ctx.CopyPixels()
	if err != nil {
		return err
	}
	return ctx.Present()
}

// WindowSize returns the current size of the window. This may differ from the
// size of the pixel buffer if the window has been resized.
func (ctx *Context) WindowSize() (int, int) {
	if ctx.destroyed {
		return 0, 0
	}
	return ctx.window.Size()
}

// ShowCursor shows or hides the mouse cursor. The cursor is hidden when the
// context is created.
func (ctx *Context) ShowCursor(show bool) error {
	if ctx.destroyed {
		return curated.Errorf(DestroyedError)
	}
	return ctx.window.ShowCursor(show)
}

// SetCrosshairCursor shows the mouse cursor as a crosshair.
func (ctx *Context) SetCrosshairCursor() error {
	if ctx.destroyed {
		return curated.Errorf(DestroyedError)
	}
	err := ctx.window.SetCursor(display.CursorCrosshair)
	if err != nil {
		return err
	}
	return ctx.window.ShowCursor(true)
}
