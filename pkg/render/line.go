package render

import (
	"fmt"
	"image"
)

// walkLine calls plot for every pixel of the Bresenham approximation of the
// segment (x0, y0)-(x1, y1), stopping at the first error.
//
// The walk always runs along the dominant axis from its lower end, so
// swapping the endpoints visits the same pixels. Exactly
// max(|x1-x0|, |y1-y0|)+1 pixels are visited.
func walkLine(x0, y0, x1, y1 int, plot func(x, y int) error) error {
	// u is the dominant axis, v the minor one.
	steep := abs(x0-x1) < abs(y0-y1)
	u0, v0, u1, v1 := x0, y0, x1, y1
	if steep {
		u0, v0, u1, v1 = y0, x0, y1, x1
	}
	if u0 > u1 {
		u0, v0, u1, v1 = u1, v1, u0, v0
	}

	du := u1 - u0
	dv := v1 - v0
	vstep := 1
	if dv < 0 {
		vstep = -1
	}
	derr := 2 * abs(dv)

	acc := 0
	v := v0
	for u := u0; u <= u1; u++ {
		var err error
		if steep {
			err = plot(v, u)
		} else {
			err = plot(u, v)
		}
		if err != nil {
			return err
		}

		acc += derr
		if acc > du {
			v += vstep
			acc -= 2 * du
		}
	}
	return nil
}

// LinePoints returns the pixels DrawLine would plot for scale 1, in walk order.
func LinePoints(x0, y0, x1, y1 int) []image.Point {
	pts := make([]image.Point, 0, max(abs(x1-x0), abs(y1-y0))+1)
	_ = walkLine(x0, y0, x1, y1, func(x, y int) error {
		pts = append(pts, image.Pt(x, y))
		return nil
	})
	return pts
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's
// algorithm. The endpoints are multiplied by scale first, so the coordinates
// are logical and the line lands at device resolution.
//
// The first pixel that falls outside the canvas aborts the line with
// ErrOutOfBounds; pixels already plotted stay written.
func (c *Canvas) DrawLine(x0, y0, x1, y1, scale int, col Color) error {
	if scale < 1 {
		return fmt.Errorf("%w: scale %d must be at least 1", ErrViewport, scale)
	}
	p := col.Pack()
	return walkLine(x0*scale, y0*scale, x1*scale, y1*scale, func(x, y int) error {
		i, err := c.index(x, y)
		if err != nil {
			return err
		}
		c.Pixels[i] = p
		return nil
	})
}

// Segment is a colored line between two logical points.
type Segment struct {
	From, To image.Point
	Color    Color
}

// DrawLines draws segments in order, stopping at the first failure.
func DrawLines(c *Canvas, scale int, segments []Segment) error {
	for i, s := range segments {
		if err := c.DrawLine(s.From.X, s.From.Y, s.To.X, s.To.Y, scale, s.Color); err != nil {
			return fmt.Errorf("segment %d: %w", i, err)
		}
	}
	return nil
}

// TestPattern returns the three-line pattern used to eyeball the line
// rasterizer: a shallow white line, a steep red line, and the shallow line
// redrawn red from the opposite end. The red redraw must fully cover the
// white one.
func TestPattern() []Segment {
	return []Segment{
		{From: image.Pt(13, 20), To: image.Pt(80, 40), Color: ColorWhite},
		{From: image.Pt(20, 13), To: image.Pt(40, 80), Color: ColorRed},
		{From: image.Pt(80, 40), To: image.Pt(13, 20), Color: ColorRed},
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
