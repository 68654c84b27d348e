package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/bstahlhood/tinyrenderer/pkg/math3d"
)

var (
	// ErrViewport is returned for a viewport that does not fit its canvas.
	ErrViewport = errors.New("invalid viewport")
	// ErrMalformedMesh is returned for face data that does not describe triangles.
	ErrMalformedMesh = errors.New("malformed mesh")
)

// MeshRenderer is the read-only view of a mesh the wireframe pass needs.
// It lets render draw meshes without importing the models package.
type MeshRenderer interface {
	VertexCount() int
	TriangleCount() int
	GetVertex(i int) math3d.Vec3
	GetFace(i int) [3]int
}

// Viewport describes one draw pass: the logical size model space is mapped
// onto and the integer device pixel scale applied at write time.
type Viewport struct {
	Width  int
	Height int
	Scale  int
}

// DeviceSize returns the viewport size in device pixels.
func (v Viewport) DeviceSize() (width, height int) {
	return v.Width * v.Scale, v.Height * v.Scale
}

// Fits reports an error unless the viewport is non-empty and its device
// size fits inside a stride x height buffer.
func (v Viewport) Fits(stride, height int) error {
	if v.Width < 1 || v.Height < 1 {
		return fmt.Errorf("%w: logical size %dx%d", ErrViewport, v.Width, v.Height)
	}
	if v.Scale < 1 {
		return fmt.Errorf("%w: scale %d must be at least 1", ErrViewport, v.Scale)
	}
	if w, h := v.DeviceSize(); w > stride || h > height {
		return fmt.Errorf("%w: device size %dx%d exceeds buffer %dx%d", ErrViewport, w, h, stride, height)
	}
	return nil
}

// Wireframe projects triangles into a canvas and outlines them.
type Wireframe struct {
	canvas *Canvas
	vp     Viewport
	color  Color
}

// NewWireframe creates a wireframe pass drawing in color.
func NewWireframe(canvas *Canvas, vp Viewport, color Color) (*Wireframe, error) {
	if canvas == nil {
		return nil, fmt.Errorf("%w: nil canvas", ErrViewport)
	}
	if err := vp.Fits(canvas.Stride, canvas.Height); err != nil {
		return nil, err
	}
	return &Wireframe{canvas: canvas, vp: vp, color: color}, nil
}

// Viewport returns the pass viewport.
func (w *Wireframe) Viewport() Viewport {
	return w.vp
}

// Project maps a model-space vertex to logical screen coordinates.
//
// x in [-1, 1] maps to [0, Width]; y in [-1, 1] maps to [Height, 0] since
// model space is Y-up. Both results are clamped into [0, dimension-1] and z
// is ignored.
func (w *Wireframe) Project(v math3d.Vec3) image.Point {
	halfW := float64(w.vp.Width) / 2
	halfH := float64(w.vp.Height) / 2
	x := (v.X + 1) * halfW
	y := v.Y*-halfH + halfH
	return image.Pt(clampCoord(x, w.vp.Width), clampCoord(y, w.vp.Height))
}

// clampCoord truncates f into [0, dim-1]. NaN maps to 0.
func clampCoord(f float64, dim int) int {
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	if hi := float64(dim - 1); f >= hi {
		return dim - 1
	}
	return int(f)
}

// DrawTriangle outlines one triangle: a->b, b->c, then c->a.
func (w *Wireframe) DrawTriangle(a, b, c math3d.Vec3) error {
	p0, p1, p2 := w.Project(a), w.Project(b), w.Project(c)
	edges := [3][2]image.Point{{p0, p1}, {p1, p2}, {p2, p0}}
	for _, e := range edges {
		if err := w.canvas.DrawLine(e[0].X, e[0].Y, e[1].X, e[1].Y, w.vp.Scale, w.color); err != nil {
			return err
		}
	}
	return nil
}

// DrawMesh outlines every triangle of mesh in face order. ctx is checked
// between triangles; a cancelled pass returns the context error and leaves
// the triangles drawn so far in the canvas.
func (w *Wireframe) DrawMesh(ctx context.Context, mesh MeshRenderer) error {
	nv := mesh.VertexCount()
	nt := mesh.TriangleCount()
	for i := range nt {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("triangle %d: %w", i, err)
		}

		face := mesh.GetFace(i)
		for _, idx := range face {
			if idx < 0 || idx >= nv {
				return fmt.Errorf("%w: face %d references vertex %d of %d", ErrMalformedMesh, i, idx, nv)
			}
		}

		err := w.DrawTriangle(mesh.GetVertex(face[0]), mesh.GetVertex(face[1]), mesh.GetVertex(face[2]))
		if err != nil {
			Logger().Warn("wireframe pass aborted", "triangle", i, "err", err)
			return fmt.Errorf("triangle %d: %w", i, err)
		}
	}

	Logger().Debug("wireframe pass",
		"triangles", nt,
		"width", w.vp.Width,
		"height", w.vp.Height,
		"scale", w.vp.Scale,
	)
	return nil
}

// DrawIndexed outlines triangles given as a flat index list, three indices
// per face, into positions.
func (w *Wireframe) DrawIndexed(ctx context.Context, positions []math3d.Vec3, indices []int) error {
	if len(indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices is not a multiple of 3", ErrMalformedMesh, len(indices))
	}
	return w.DrawMesh(ctx, indexedMesh{positions: positions, indices: indices})
}

// indexedMesh adapts flat arrays to MeshRenderer.
type indexedMesh struct {
	positions []math3d.Vec3
	indices   []int
}

func (m indexedMesh) VertexCount() int            { return len(m.positions) }
func (m indexedMesh) TriangleCount() int          { return len(m.indices) / 3 }
func (m indexedMesh) GetVertex(i int) math3d.Vec3 { return m.positions[i] }
func (m indexedMesh) GetFace(i int) [3]int {
	return [3]int{m.indices[3*i], m.indices[3*i+1], m.indices[3*i+2]}
}
