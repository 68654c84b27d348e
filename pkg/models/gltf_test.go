package models

import (
	"path/filepath"
	"testing"

	"github.com/bstahlhood/tinyrenderer/pkg/math3d"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// triangleDocument builds a document with one indexed triangle.
func triangleDocument() *gltf.Document {
	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, [][3]float32{{-1, -1, 0}, {1, -1, 0}, {0, 1, 0}})
	idx := modeler.WriteIndices(doc, []uint16{0, 1, 2})
	doc.Meshes = []*gltf.Mesh{{
		Name: "tri",
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(idx),
			Attributes: map[string]int{gltf.POSITION: pos},
		}},
	}}
	return doc
}

func TestMeshFromDocument(t *testing.T) {
	mesh, err := MeshFromDocument(triangleDocument(), "tri")
	if err != nil {
		t.Fatalf("MeshFromDocument: %v", err)
	}
	if mesh.VertexCount() != 3 || mesh.TriangleCount() != 1 {
		t.Fatalf("got %d vertices, %d triangles; want 3, 1", mesh.VertexCount(), mesh.TriangleCount())
	}
	if got := mesh.GetFace(0); got != [3]int{0, 1, 2} {
		t.Errorf("GetFace(0) = %v", got)
	}
	if got := mesh.GetVertex(2); got != math3d.V3(0, 1, 0) {
		t.Errorf("GetVertex(2) = %v", got)
	}
}

func TestLoadGLBRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.glb")
	if err := gltf.SaveBinary(triangleDocument(), path); err != nil {
		t.Fatalf("SaveBinary: %v", err)
	}

	mesh, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if mesh.TriangleCount() != 1 {
		t.Errorf("TriangleCount = %d, want 1", mesh.TriangleCount())
	}
	if mesh.BoundsMin != math3d.V3(-1, -1, 0) || mesh.BoundsMax != math3d.V3(1, 1, 0) {
		t.Errorf("bounds = %v..%v", mesh.BoundsMin, mesh.BoundsMax)
	}
}

func TestLoadGLBInvalidPath(t *testing.T) {
	_, err := LoadGLB("/nonexistent/path.glb")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestMeshFromDocumentSkipsNonTriangles(t *testing.T) {
	doc := triangleDocument()
	lines := *doc.Meshes[0].Primitives[0]
	lines.Mode = gltf.PrimitiveLines
	doc.Meshes[0].Primitives = append(doc.Meshes[0].Primitives, &lines)

	mesh, err := MeshFromDocument(doc, "mixed")
	if err != nil {
		t.Fatalf("MeshFromDocument: %v", err)
	}
	if mesh.TriangleCount() != 1 || mesh.VertexCount() != 3 {
		t.Errorf("got %d triangles, %d vertices; line primitive should be skipped",
			mesh.TriangleCount(), mesh.VertexCount())
	}
}
