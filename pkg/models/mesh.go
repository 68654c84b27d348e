// Package models provides triangle mesh loading and representation.
package models

import (
	"errors"
	"fmt"

	"github.com/bstahlhood/tinyrenderer/pkg/math3d"
)

// ErrMalformed is returned for mesh data that cannot form a triangle list.
var ErrMalformed = errors.New("malformed mesh")

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Name     string
	Vertices []math3d.Vec3
	Faces    []Face

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// Face is a triangle given as three indices into Mesh.Vertices.
type Face struct {
	V [3]int
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// NewIndexedMesh builds a mesh from a flat position array (x, y, z triples)
// and a flat index array (one triple per face).
func NewIndexedMesh(name string, positions []float64, indices []int) (*Mesh, error) {
	if len(positions)%3 != 0 {
		return nil, fmt.Errorf("%w: %d position components is not a multiple of 3", ErrMalformed, len(positions))
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("%w: %d indices is not a multiple of 3", ErrMalformed, len(indices))
	}

	m := NewMesh(name)
	m.Vertices = make([]math3d.Vec3, 0, len(positions)/3)
	for i := 0; i < len(positions); i += 3 {
		m.Vertices = append(m.Vertices, math3d.V3(positions[i], positions[i+1], positions[i+2]))
	}
	m.Faces = make([]Face, 0, len(indices)/3)
	for i := 0; i < len(indices); i += 3 {
		m.Faces = append(m.Faces, Face{V: [3]int{indices[i], indices[i+1], indices[i+2]}})
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	m.CalculateBounds()
	return m, nil
}

// Validate checks that every face references an existing vertex.
func (m *Mesh) Validate() error {
	n := len(m.Vertices)
	for i, f := range m.Faces {
		for _, idx := range f.V {
			if idx < 0 || idx >= n {
				return fmt.Errorf("%w: face %d references vertex %d of %d", ErrMalformed, i, idx, n)
			}
		}
	}
	return nil
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		m.BoundsMin, m.BoundsMax = math3d.Vec3{}, math3d.Vec3{}
		return
	}

	m.BoundsMin = m.Vertices[0]
	m.BoundsMax = m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v)
		m.BoundsMax = m.BoundsMax.Max(v)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// Normalize centers the mesh on the origin and scales it uniformly so its
// largest extent spans [-1, 1]. A mesh with zero extent is only centered.
func (m *Mesh) Normalize() {
	m.CalculateBounds()
	transform := math3d.Translate(m.Center().Scale(-1))
	if maxDim := m.Size().MaxComponent(); maxDim > 0 {
		transform = math3d.ScaleUniform(2 / maxDim).Mul(transform)
	}
	m.Transform(transform)
}

// NormalizeRadius centers the mesh on its bounding box and scales it so the
// farthest vertex lies on the unit sphere. Unlike Normalize, the result stays
// inside [-1, 1] on every axis under any rotation about the origin.
func (m *Mesh) NormalizeRadius() {
	m.CalculateBounds()
	center := m.Center()
	transform := math3d.Translate(center.Scale(-1))

	radius := 0.0
	for _, v := range m.Vertices {
		radius = max(radius, v.Sub(center).Length())
	}
	if radius > 0 {
		transform = math3d.ScaleUniform(1 / radius).Mul(transform)
	}
	m.Transform(transform)
}

// Transform applies a transformation matrix to all vertices.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Vertices {
		m.Vertices[i] = mat.MulVec3(m.Vertices[i])
	}
	m.CalculateBounds()
}

// Transformed returns a copy of the mesh with mat applied, leaving m intact.
// Faces are shared with the original.
func (m *Mesh) Transformed(mat math3d.Mat4) *Mesh {
	out := &Mesh{
		Name:     m.Name,
		Vertices: make([]math3d.Vec3, len(m.Vertices)),
		Faces:    m.Faces,
	}
	for i, v := range m.Vertices {
		out.Vertices[i] = mat.MulVec3(v)
	}
	out.CalculateBounds()
	return out
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// GetVertex returns the position of vertex i.
// Implements render.MeshRenderer.
func (m *Mesh) GetVertex(i int) math3d.Vec3 {
	return m.Vertices[i]
}

// GetFace returns the vertex indices for face i.
// Implements render.MeshRenderer.
func (m *Mesh) GetFace(i int) [3]int {
	return m.Faces[i].V
}
