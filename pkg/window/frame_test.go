package window

import (
	"context"
	"math"
	"testing"

	"github.com/bstahlhood/tinyrenderer/pkg/math3d"
	"github.com/bstahlhood/tinyrenderer/pkg/render"
)

type triangle struct{}

func (triangle) VertexCount() int   { return 3 }
func (triangle) TriangleCount() int { return 1 }
func (triangle) GetFace(int) [3]int { return [3]int{0, 1, 2} }
func (triangle) GetVertex(i int) math3d.Vec3 {
	return [...]math3d.Vec3{math3d.V3(-1, -1, 0), math3d.V3(1, -1, 0), math3d.V3(0, 1, 0)}[i]
}

func TestDeviceScale(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{1, 1},
		{1.5, 1},
		{2, 2},
		{3.25, 3},
		{0, 1},
		{-2, 1},
		{math.NaN(), 1},
	}
	for _, tc := range tests {
		if got := deviceScale(tc.in); got != tc.want {
			t.Errorf("deviceScale(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFrameRender(t *testing.T) {
	f := newFrame(render.Scene{Mesh: triangle{}, Color: render.ColorWhite, Background: render.ColorBlue})

	img, err := f.render(context.Background(), render.Viewport{Width: 40, Height: 30, Scale: 2})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if img.Bounds().Dx() != 80 || img.Bounds().Dy() != 60 {
		t.Fatalf("image %v, want 80x60 device pixels", img.Bounds())
	}
	// Apex of the triangle at device resolution.
	if c, _ := f.canvas.At(40, 0); c != render.ColorWhite {
		t.Errorf("apex = %v, want white", c)
	}
	if c, _ := f.canvas.At(40, 30); c != render.ColorBlue {
		t.Errorf("interior = %v, want background", c)
	}
}

func TestFrameResizeClears(t *testing.T) {
	f := newFrame(render.Scene{Mesh: triangle{}, Color: render.ColorWhite})
	if _, err := f.render(context.Background(), render.Viewport{Width: 50, Height: 50, Scale: 1}); err != nil {
		t.Fatal(err)
	}

	img, err := f.render(context.Background(), render.Viewport{Width: 20, Height: 10, Scale: 1})
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 10 {
		t.Fatalf("image %v after resize", img.Bounds())
	}
	// Index 25 held the apex of the 50x50 pass; in the 20x10 layout it is
	// (5, 1), outside the new triangle.
	if c, _ := f.canvas.At(5, 1); c != render.ColorBlack {
		t.Errorf("stale pixel %v after resize", c)
	}
}

func TestFrameTestPattern(t *testing.T) {
	f := newFrame(render.Scene{})
	if _, err := f.render(context.Background(), render.Viewport{Width: 100, Height: 100, Scale: 1}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if c, _ := f.canvas.At(13, 20); c != render.ColorRed {
		t.Errorf("pattern start = %v, want red", c)
	}

	// The pattern does not fit a tiny window.
	if _, err := f.render(context.Background(), render.Viewport{Width: 50, Height: 50, Scale: 1}); err == nil {
		t.Error("expected out of bounds error")
	}
}

func TestFrameCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := newFrame(render.Scene{Mesh: triangle{}})
	if _, err := f.render(ctx, render.Viewport{Width: 10, Height: 10, Scale: 1}); err == nil {
		t.Error("cancelled pass returned nil")
	}
}
