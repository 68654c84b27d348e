package render

import "testing"

func TestDrawText(t *testing.T) {
	c := NewCanvas(64, 16)
	c.DrawText(1, CaptionLineHeight, "cube 12", ColorMint)

	lit := 0
	for _, p := range c.Pixels {
		switch p {
		case 0:
		case ColorMint.Pack():
			lit++
		default:
			t.Fatalf("unexpected pixel value %#x", p)
		}
	}
	if lit == 0 {
		t.Error("caption drew nothing")
	}
}

func TestDrawTextClips(t *testing.T) {
	c := NewCanvas(8, 4)
	// Mostly off the canvas on every side; must not panic.
	c.DrawText(-3, 2, "WWWWWWWW", ColorWhite)
	c.DrawText(6, 40, "x", ColorWhite)
	if len(c.Pixels) != 32 {
		t.Fatalf("buffer resized to %d", len(c.Pixels))
	}
}

func countColor(c *Canvas, col Color) int {
	n := 0
	for _, p := range c.Pixels {
		if p == col.Pack() {
			n++
		}
	}
	return n
}

func TestDrawTextScaled(t *testing.T) {
	small := NewCanvas(64, 16)
	small.DrawText(1, CaptionLineHeight, "tri 3", ColorWhite)

	big := NewCanvas(128, 32)
	big.DrawTextScaled(1, CaptionLineHeight, 2, "tri 3", ColorWhite)

	if n, m := countColor(small, ColorWhite), countColor(big, ColorWhite); n == 0 || m != 4*n {
		t.Errorf("scale 2 lit %d pixels, want 4 x %d", m, n)
	}
	for y := range small.Height {
		for x := range small.Stride {
			got, _ := small.At(x, y)
			for _, d := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
				if b, _ := big.At(2*x+d[0], 2*y+d[1]); b != got {
					t.Fatalf("block (%d,%d) does not match logical pixel", x, y)
				}
			}
		}
	}
}
