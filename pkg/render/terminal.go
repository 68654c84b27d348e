package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw maps the canvas onto terminal cells inside area. Each cell shows two
// canvas rows with the upper half block: fg is the top pixel, bg the bottom
// one. The canvas should be twice as tall as area.
func (c *Canvas) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= c.Stride {
				break
			}
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: c.cellColor(x, topY),
					Bg: c.cellColor(x, botY),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// cellColor returns nil (terminal default) for pixels outside the canvas.
func (c *Canvas) cellColor(x, y int) color.Color {
	col, ok := c.At(x, y)
	if !ok {
		return nil
	}
	return col.ToRGBA()
}
