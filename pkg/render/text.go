package render

import (
	"image/color"
	"math"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// CaptionLineHeight is the line advance of the caption font in logical pixels.
const CaptionLineHeight = 6

// canvasDisplay exposes a Canvas to tinyfont in logical pixels; each one
// covers a scale x scale block of the canvas.
type canvasDisplay struct {
	c     *Canvas
	scale int
}

var _ drivers.Displayer = canvasDisplay{}

func (d canvasDisplay) Size() (x, y int16) {
	return int16(min(d.c.Stride/d.scale, math.MaxInt16)), int16(min(d.c.Height/d.scale, math.MaxInt16))
}

// SetPixel clips glyph pixels that fall outside the canvas.
func (d canvasDisplay) SetPixel(x, y int16, c color.RGBA) {
	col := FromRGBA(c)
	x0, y0 := int(x)*d.scale, int(y)*d.scale
	for dy := range d.scale {
		for dx := range d.scale {
			_ = d.c.Set(x0+dx, y0+dy, col)
		}
	}
}

func (d canvasDisplay) Display() error { return nil }

// DrawText writes a single line of text with its baseline at y.
func (c *Canvas) DrawText(x, y int, text string, col Color) {
	c.DrawTextScaled(x, y, 1, text, col)
}

// DrawTextScaled writes text in logical coordinates: the origin and every
// glyph pixel are multiplied by scale, matching lines drawn at that scale.
// A scale below 1 is treated as 1.
func (c *Canvas) DrawTextScaled(x, y, scale int, text string, col Color) {
	scale = max(scale, 1)
	tinyfont.WriteLine(canvasDisplay{c, scale}, &tinyfont.TomThumb, int16(x), int16(y), text, col.ToRGBA())
}
