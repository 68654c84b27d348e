package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bstahlhood/tinyrenderer/pkg/math3d"
)

// LoadOBJ loads a Wavefront OBJ file.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	mesh, err := ParseOBJ(f, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return mesh, nil
}

// ParseOBJ reads vertex positions ("v") and faces ("f") from OBJ text.
// Face corners may use the v, v/vt, v//vn and v/vt/vn forms; negative
// indices count back from the last vertex read. Polygons with more than
// three corners are split into a triangle fan. Other statements are ignored.
func ParseOBJ(r io.Reader, name string) (*Mesh, error) {
	mesh := NewMesh(name)
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, lineNo, err)
			}
			mesh.Vertices = append(mesh.Vertices, v)
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: line %d: face needs at least 3 vertices, got %d", ErrMalformed, lineNo, len(fields)-1)
			}
			corners := make([]int, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				idx, err := parseFaceIndex(tok, len(mesh.Vertices))
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, lineNo, err)
				}
				corners = append(corners, idx)
			}
			for i := 1; i+1 < len(corners); i++ {
				mesh.Faces = append(mesh.Faces, Face{V: [3]int{corners[0], corners[i], corners[i+1]}})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}

	if err := mesh.Validate(); err != nil {
		return nil, err
	}
	mesh.CalculateBounds()
	return mesh, nil
}

func parseVertex(args []string) (math3d.Vec3, error) {
	if len(args) < 3 {
		return math3d.Vec3{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(args))
	}
	var c [3]float64
	for i := range 3 {
		f, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("vertex coordinate %q: %w", args[i], err)
		}
		c[i] = f
	}
	return math3d.V3(c[0], c[1], c[2]), nil
}

// parseFaceIndex converts one face corner to a zero-based vertex index.
func parseFaceIndex(tok string, vertexCount int) (int, error) {
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		tok = tok[:i]
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("face index %q: %w", tok, err)
	}
	switch {
	case n > 0:
		return n - 1, nil
	case n < 0:
		idx := vertexCount + n
		if idx < 0 {
			return 0, fmt.Errorf("relative face index %d with only %d vertices", n, vertexCount)
		}
		return idx, nil
	default:
		return 0, fmt.Errorf("face index 0 is not valid")
	}
}
