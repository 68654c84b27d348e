package models

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bstahlhood/tinyrenderer/pkg/math3d"
)

const quadOBJ = `# unit quad
o quad
v -1 -1 0
v  1 -1 0
v  1  1 0
v -1  1 0 1.0
vt 0 0
vn 0 0 1
f 1/1/1 2/1/1 3/1/1 4/1/1
`

func TestParseOBJFan(t *testing.T) {
	mesh, err := ParseOBJ(strings.NewReader(quadOBJ), "quad")
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if mesh.VertexCount() != 4 {
		t.Fatalf("VertexCount = %d, want 4", mesh.VertexCount())
	}
	want := []Face{{V: [3]int{0, 1, 2}}, {V: [3]int{0, 2, 3}}}
	if len(mesh.Faces) != len(want) {
		t.Fatalf("got %d faces, want %d", len(mesh.Faces), len(want))
	}
	for i := range want {
		if mesh.Faces[i] != want[i] {
			t.Errorf("face %d = %v, want %v", i, mesh.Faces[i], want[i])
		}
	}
	if mesh.BoundsMax != math3d.V3(1, 1, 0) {
		t.Errorf("BoundsMax = %v", mesh.BoundsMax)
	}
}

func TestParseOBJFaceForms(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
f 1/1 2/2 3/3
f 1//1 2//1 3//1
f -3 -2 -1
`
	mesh, err := ParseOBJ(strings.NewReader(src), "forms")
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if mesh.TriangleCount() != 4 {
		t.Fatalf("TriangleCount = %d, want 4", mesh.TriangleCount())
	}
	for i, f := range mesh.Faces {
		if f.V != [3]int{0, 1, 2} {
			t.Errorf("face %d = %v, want [0 1 2]", i, f.V)
		}
	}
}

func TestParseOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"short vertex", "v 1 2\n"},
		{"bad coordinate", "v 1 x 2\n"},
		{"two corner face", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n"},
		{"index past end", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n"},
		{"relative past start", "v 0 0 0\nf -1 -2 -3\n"},
		{"non numeric index", "v 0 0 0\nf a b c\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseOBJ(strings.NewReader(tc.src), tc.name)
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("err = %v, want ErrMalformed", err)
			}
		})
	}
}

func TestLoadOBJFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.obj")
	if err := os.WriteFile(path, []byte(quadOBJ), 0o644); err != nil {
		t.Fatal(err)
	}

	mesh, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if mesh.Name != "quad.obj" {
		t.Errorf("Name = %q, want quad.obj", mesh.Name)
	}
	if mesh.TriangleCount() != 2 {
		t.Errorf("TriangleCount = %d, want 2", mesh.TriangleCount())
	}
}

func TestLoadUnsupported(t *testing.T) {
	_, err := Load("model.stl")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadOBJInvalidPath(t *testing.T) {
	if _, err := LoadOBJ("/nonexistent/path.obj"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}
