package main

import (
	"context"
	"fmt"
	"image"
	"math/rand/v2"
	"time"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/bstahlhood/tinyrenderer/pkg/config"
	"github.com/bstahlhood/tinyrenderer/pkg/models"
	"github.com/bstahlhood/tinyrenderer/pkg/render"
)

// terminalViewport maps a cols x rows terminal to a canvas with two pixel
// rows per cell.
func terminalViewport(cols, rows int) render.Viewport {
	return render.Viewport{Width: max(cols, 1), Height: max(rows*2, 1), Scale: 1}
}

// runTerminal spins the mesh in the terminal until Esc, Ctrl+C or ctx is done.
// mesh must be fitted with NormalizeRadius so no rotation reaches the
// viewport border. A nil mesh shows the static line test pattern.
func runTerminal(ctx context.Context, cfg config.Config, mesh *models.Mesh, sc render.Scene) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	vp := terminalViewport(width, height)
	canvas := render.NewCanvas(vp.DeviceSize())

	spin := newSpinner(mesh, cfg.FPS)
	spin.kick(0.02, 0.05, 0)
	const torqueStrength = 3.0

	events := term.Events()
	targetDuration := time.Second / time.Duration(cfg.FPS)
	lastFrame := time.Now()
	failed := false

	for {
		// Drain pending input before drawing.
	drain:
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-events:
				if !ok {
					return nil
				}
				switch ev := ev.(type) {
				case uv.WindowSizeEvent:
					width, height = ev.Width, ev.Height
					term.Erase()
					term.Resize(width, height)
					vp = terminalViewport(width, height)
					canvas.Resize(vp.DeviceSize())
					render.Logger().Debug("terminal resized", "cols", width, "rows", height)

				case uv.KeyPressEvent:
					switch {
					case ev.MatchString("escape", "ctrl+c"):
						return nil
					case ev.MatchString("r"):
						spin.reset()
					case ev.MatchString("w", "up"):
						spin.hold(axisPitch, -torqueStrength)
					case ev.MatchString("s", "down"):
						spin.hold(axisPitch, torqueStrength)
					case ev.MatchString("a", "left"):
						spin.hold(axisYaw, -torqueStrength)
					case ev.MatchString("d", "right"):
						spin.hold(axisYaw, torqueStrength)
					case ev.MatchString("q"):
						spin.hold(axisRoll, -torqueStrength)
					case ev.MatchString("e"):
						spin.hold(axisRoll, torqueStrength)
					case ev.MatchString("space"):
						spin.kick(
							(rand.Float64()-0.5)*1.5,
							(rand.Float64()-0.5)*1.5,
							(rand.Float64()-0.5)*1.5,
						)
					}
				}
			default:
				break drain
			}
		}

		now := time.Now()
		dt := min(now.Sub(lastFrame).Seconds(), 0.1)
		lastFrame = now

		spin.step(dt)
		if m := spin.frame(); m != nil {
			sc.Mesh = m
		}
		err := sc.Draw(ctx, canvas, vp)
		if err != nil && !failed {
			render.Logger().Warn("frame failed", "err", err, "cols", width, "rows", height)
		}
		failed = err != nil

		canvas.Draw(term, uv.Rectangle(image.Rect(0, 0, width, height)))
		if err := term.Display(); err != nil {
			return fmt.Errorf("display: %w", err)
		}

		if elapsed := time.Since(now); elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
