package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an opaque 8-bit-per-channel color.
type Color struct {
	R, G, B uint8
}

// Colors for convenience
var (
	ColorBlack = Color{0, 0, 0}
	ColorWhite = Color{255, 255, 255}
	ColorRed   = Color{255, 0, 0}
	ColorGreen = Color{0, 255, 0}
	ColorBlue  = Color{0, 0, 255}
	ColorMint  = Color{0, 255, 128}
)

// RGB creates a color from channel values.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b}
}

// Pack returns the framebuffer representation: blue | green<<8 | red<<16.
func (c Color) Pack() uint32 {
	return uint32(c.B) | uint32(c.G)<<8 | uint32(c.R)<<16
}

// Unpack decodes a packed framebuffer pixel. The top byte is ignored.
func Unpack(p uint32) Color {
	return Color{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p)}
}

// ToRGBA converts to an opaque color.RGBA.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 255}
}

// FromRGBA drops the alpha channel of c.
func FromRGBA(c color.RGBA) Color {
	return Color{c.R, c.G, c.B}
}

// String formats the color as "r,g,b", the form ParseColor accepts.
func (c Color) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// ParseColor parses "r,g,b" with each channel in 0-255.
func ParseColor(s string) (Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("color %q: want r,g,b", s)
	}
	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return Color{}, fmt.Errorf("color %q: channel %d: %w", s, i, err)
		}
		ch[i] = uint8(v)
	}
	return Color{ch[0], ch[1], ch[2]}, nil
}
