// Package window presents wireframes in a desktop window.
package window

import (
	"context"
	"image"
	"math"

	"github.com/bstahlhood/tinyrenderer/pkg/render"
)

// Options configures the window presenter.
type Options struct {
	Title  string
	Width  int // initial logical window size
	Height int
	FPS    int

	Scene render.Scene
}

// deviceScale converts a monitor scale factor to the integer pixel scale
// used by the rasterizer. Fractional factors round down; the result is at
// least 1.
func deviceScale(factor float64) int {
	if math.IsNaN(factor) || factor < 1 {
		return 1
	}
	return int(factor)
}

// frame owns the canvas and the RGBA image handed to ebiten.
type frame struct {
	scene  render.Scene
	canvas *render.Canvas
	img    *image.RGBA
}

func newFrame(scene render.Scene) *frame {
	return &frame{scene: scene, canvas: render.NewCanvas(0, 0)}
}

// render resizes the canvas to the viewport's device size, redraws the
// scene and converts the result. The returned image is reused across calls.
func (f *frame) render(ctx context.Context, vp render.Viewport) (*image.RGBA, error) {
	w, h := vp.DeviceSize()
	if f.canvas.Stride != w || f.canvas.Height != h {
		f.canvas.Resize(w, h)
	}
	err := f.scene.Draw(ctx, f.canvas, vp)
	f.img = f.canvas.CopyToImage(f.img)
	return f.img, err
}
