package main

import (
	"context"
	"fmt"
	"image"

	"github.com/bstahlhood/tinyrenderer/pkg/config"
	"github.com/bstahlhood/tinyrenderer/pkg/render"
)

// caption labels a mesh with its name and triangle count.
func caption(name string, mesh render.MeshRenderer) string {
	if mesh == nil {
		return "line test"
	}
	return fmt.Sprintf("%s %d tris", name, mesh.TriangleCount())
}

// renderImage runs a single headless pass at the configured viewport.
func renderImage(ctx context.Context, cfg config.Config, sc render.Scene) (image.Image, error) {
	vp := cfg.Viewport()
	canvas := render.NewCanvas(vp.DeviceSize())
	if err := sc.Draw(ctx, canvas, vp); err != nil {
		return nil, err
	}

	if cfg.Downsample && vp.Scale > 1 {
		return canvas.Downsample(vp.Scale), nil
	}
	return canvas.ToImage(), nil
}
