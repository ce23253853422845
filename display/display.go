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

package display

// Driver is the entry point to the multimedia library.
type Driver interface {
	// Init must be called before any other function. Quit should be called
	// once all other resources have been destroyed.
	Init() error
	Quit()

	// the name of the driver, for logging purposes
	Name() string

	CreateWindow(title string, width, height int) (Window, error)

	// PollEvent returns the next pending event or nil if there are no
	// events pending. It never blocks.
	PollEvent() Event

	// MouseState returns the immediate state of the mouse. The position is
	// in window coordinates.
	MouseState() MouseState

	// RenderDrivers lists the names of the rendering backends available to
	// the Renderer.
	RenderDrivers() ([]string, error)
}

// Window is a single window on the display.
type Window interface {
	CreateRenderer() (Renderer, error)
	Size() (width, height int)
	ShowCursor(show bool) error
	SetCursor(cursor Cursor) error
	Destroy() error
}

// Renderer draws textures to a Window.
type Renderer interface {
	// the name of the rendering backend in use
	Name() string

	// CreateStreamingTexture creates a texture suitable for frequent updates
	// with packed ARGB8888 pixel data.
	CreateStreamingTexture(width, height int) (Texture, error)

	// CreateStaticTexture creates a texture from RGBA data, four bytes per
	// pixel in R, G, B, A order. The texture is alpha blended when copied.
	CreateStaticTexture(rgba []byte, width, height int) (Texture, error)

	// Copy the texture to the render target. A nil destination rectangle
	// means the entire target.
	Copy(tex Texture, dst *Rect) error

	// Present shows the contents of the render target.
	Present() error

	Destroy() error
}

// Texture is an image resident in a form ready to be copied by a Renderer.
type Texture interface {
	// Update the texture with packed ARGB8888 words. Pitch is measured in
	// bytes.
	Update(words []uint32, pitch int) error
	Destroy() error
}

// Rect is a destination rectangle for Renderer.Copy().
type Rect struct {
	X, Y int
	W, H int
}

// Cursor is a system mouse cursor shape.
type Cursor int

// List of valid Cursor values.
const (
	CursorArrow Cursor = iota
	CursorCrosshair
)
