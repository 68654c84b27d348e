package render

import (
	"context"
	"fmt"
)

// Scene is what a presenter redraws on every pass.
type Scene struct {
	Mesh       MeshRenderer // nil draws the line test pattern
	Caption    string
	Color      Color
	Background Color
}

// Draw clears canvas to the background and runs one pass through vp.
func (s Scene) Draw(ctx context.Context, canvas *Canvas, vp Viewport) error {
	canvas.Clear(s.Background)

	if s.Mesh == nil {
		if err := DrawLines(canvas, vp.Scale, TestPattern()); err != nil {
			return fmt.Errorf("test pattern: %w", err)
		}
	} else {
		wf, err := NewWireframe(canvas, vp, s.Color)
		if err != nil {
			return err
		}
		if err := wf.DrawMesh(ctx, s.Mesh); err != nil {
			return err
		}
	}

	if s.Caption != "" {
		canvas.DrawTextScaled(1, CaptionLineHeight, vp.Scale, s.Caption, s.Color)
	}
	return nil
}
