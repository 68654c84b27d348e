// Package render draws triangle meshes as wireframes into packed 32-bit
// pixel buffers in software.
package render

import (
	"errors"
	"fmt"
	"image"
)

// ErrOutOfBounds is returned when a write would land outside the canvas.
var ErrOutOfBounds = errors.New("pixel out of bounds")

// Canvas is a row-major buffer of packed pixels (see Color.Pack).
// Pixels has exactly Stride*Height entries.
type Canvas struct {
	Stride int // pixels per row
	Height int
	Pixels []uint32
}

// NewCanvas allocates a cleared canvas.
func NewCanvas(stride, height int) *Canvas {
	stride, height = max(stride, 0), max(height, 0)
	return &Canvas{
		Stride: stride,
		Height: height,
		Pixels: make([]uint32, stride*height),
	}
}

// WrapCanvas borrows an existing pixel buffer, such as a presentation
// surface, without copying it. len(pixels) must be a multiple of stride.
func WrapCanvas(pixels []uint32, stride int) (*Canvas, error) {
	if stride <= 0 {
		return nil, fmt.Errorf("wrap canvas: stride %d must be positive", stride)
	}
	if len(pixels)%stride != 0 {
		return nil, fmt.Errorf("wrap canvas: %d pixels is not a multiple of stride %d", len(pixels), stride)
	}
	return &Canvas{Stride: stride, Height: len(pixels) / stride, Pixels: pixels}, nil
}

// Resize changes the canvas dimensions. The contents are always cleared so
// no stale pixels from a previous size survive.
func (c *Canvas) Resize(stride, height int) {
	stride, height = max(stride, 0), max(height, 0)
	n := stride * height
	if cap(c.Pixels) >= n {
		c.Pixels = c.Pixels[:n]
		clear(c.Pixels)
	} else {
		c.Pixels = make([]uint32, n)
	}
	c.Stride, c.Height = stride, height
}

// Clear fills the canvas with a solid color.
func (c *Canvas) Clear(col Color) {
	n := len(c.Pixels)
	if n == 0 {
		return
	}
	// Copy-doubling fill.
	c.Pixels[0] = col.Pack()
	for i := 1; i < n; i *= 2 {
		copy(c.Pixels[i:], c.Pixels[:i])
	}
}

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.Stride, c.Height)
}

// index maps (x, y) to a Pixels index, failing for anything outside the canvas.
func (c *Canvas) index(x, y int) (int, error) {
	if x < 0 || x >= c.Stride || y < 0 || y >= c.Height {
		return 0, fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfBounds, x, y, c.Stride, c.Height)
	}
	i := y*c.Stride + x
	if i >= len(c.Pixels) {
		return 0, fmt.Errorf("%w: index %d past buffer length %d", ErrOutOfBounds, i, len(c.Pixels))
	}
	return i, nil
}

// Set writes one pixel.
func (c *Canvas) Set(x, y int, col Color) error {
	i, err := c.index(x, y)
	if err != nil {
		return err
	}
	c.Pixels[i] = col.Pack()
	return nil
}

// At returns the color at (x, y) and whether (x, y) is inside the canvas.
func (c *Canvas) At(x, y int) (Color, bool) {
	i, err := c.index(x, y)
	if err != nil {
		return Color{}, false
	}
	return Unpack(c.Pixels[i]), true
}

// ToImage converts the canvas to a standard Go image.RGBA.
func (c *Canvas) ToImage() *image.RGBA {
	return c.CopyToImage(nil)
}

// CopyToImage writes the canvas into dst as opaque RGBA, reusing dst when it
// has the canvas bounds and allocating a new image otherwise.
func (c *Canvas) CopyToImage(dst *image.RGBA) *image.RGBA {
	if dst == nil || dst.Bounds() != c.Bounds() {
		dst = image.NewRGBA(c.Bounds())
	}
	for y := range c.Height {
		row := c.Pixels[y*c.Stride : (y+1)*c.Stride]
		off := y * dst.Stride
		for x, p := range row {
			dst.Pix[off+x*4] = uint8(p >> 16)
			dst.Pix[off+x*4+1] = uint8(p >> 8)
			dst.Pix[off+x*4+2] = uint8(p)
			dst.Pix[off+x*4+3] = 0xFF
		}
	}
	return dst
}
