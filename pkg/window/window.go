//go:build cgo

package window

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/bstahlhood/tinyrenderer/pkg/render"
)

// Run opens a resizable window and redraws the wireframe every frame until
// the window is closed, Escape or Q is pressed, or ctx is cancelled.
// It blocks until then.
func Run(ctx context.Context, opts Options) error {
	if opts.Width < 1 || opts.Height < 1 {
		return errors.New("window: size must be positive")
	}

	g := &game{ctx: ctx, frame: newFrame(opts.Scene)}
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.FPS > 0 {
		ebiten.SetTPS(opts.FPS)
	}
	return ebiten.RunGame(g)
}

type game struct {
	ctx    context.Context
	frame  *frame
	vp     render.Viewport
	failed bool
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

// Draw is the redraw trigger: every frame clears the canvas and runs a
// full wireframe pass at device resolution.
func (g *game) Draw(screen *ebiten.Image) {
	img, err := g.frame.render(g.ctx, g.vp)
	if err != nil && !g.failed {
		// Logged once; the pass is retried every frame.
		render.Logger().Warn("frame failed", "err", err, "width", g.vp.Width, "height", g.vp.Height)
	}
	g.failed = err != nil
	screen.WritePixels(img.Pix)
}

// Layout renders at device resolution: the logical window size times the
// integer monitor scale.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1
	if m := ebiten.Monitor(); m != nil {
		scale = deviceScale(m.DeviceScaleFactor())
	}
	g.vp = render.Viewport{
		Width:  max(outsideWidth, 1),
		Height: max(outsideHeight, 1),
		Scale:  scale,
	}
	return g.vp.DeviceSize()
}
