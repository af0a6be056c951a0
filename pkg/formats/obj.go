// Wavefront OBJ parser for static meshes.
package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// OBJ format errors.
var (
	ErrEmptyOBJ       = errors.New("OBJ contains no faces")
	ErrInvalidOBJFace = errors.New("invalid OBJ face")
	ErrInvalidOBJData = errors.New("invalid OBJ vertex data")
)

// objRef is one face corner: 0-based position, texcoord and normal indices.
// -1 marks an absent texcoord or normal.
type objRef struct {
	v, vt, vn int
}

// ParseOBJ parses Wavefront OBJ data into a single indexed mesh.
// Polygons are fan-triangulated and identical v/vt/vn corners share a vertex.
// Texture V coordinates are flipped so that row 0 of the image is V=0.
// Material libraries, groups and smoothing directives are ignored.
func ParseOBJ(data []byte) (*MeshData, error) {
	var (
		positions [][3]float32
		uvs       [][2]float32
		normals   [][3]float32
		faces     [][3]objRef
		name      string
	)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			p, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			positions = append(positions, [3]float32{p[0], p[1], p[2]})

		case "vt":
			p, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			uvs = append(uvs, [2]float32{p[0], p[1]})

		case "vn":
			p, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			normals = append(normals, [3]float32{p[0], p[1], p[2]})

		case "o":
			if name == "" && len(fields) > 1 {
				name = fields[1]
			}

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: %w: %d vertices", lineNo, ErrInvalidOBJFace, len(fields)-1)
			}
			refs := make([]objRef, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				ref, err := parseFaceRef(tok, len(positions), len(uvs), len(normals))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				refs = append(refs, ref)
			}
			for i := 1; i+1 < len(refs); i++ {
				faces = append(faces, [3]objRef{refs[0], refs[i], refs[i+1]})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning OBJ: %w", err)
	}
	if len(faces) == 0 {
		return nil, ErrEmptyOBJ
	}

	return buildOBJMesh(name, faces, positions, uvs, normals), nil
}

func buildOBJMesh(name string, faces [][3]objRef, positions [][3]float32, uvs [][2]float32, normals [][3]float32) *MeshData {
	m := &MeshData{Name: name, BaseColour: white}
	hasUVs := len(uvs) > 0
	hasNormals := len(normals) > 0

	seen := make(map[objRef]uint32)
	for _, face := range faces {
		for _, ref := range face {
			if idx, ok := seen[ref]; ok {
				m.Indices = append(m.Indices, idx)
				continue
			}
			idx := uint32(len(m.Positions))
			seen[ref] = idx
			m.Indices = append(m.Indices, idx)
			m.Positions = append(m.Positions, positions[ref.v])

			if hasUVs {
				var uv [2]float32
				if ref.vt >= 0 {
					uv = [2]float32{uvs[ref.vt][0], 1 - uvs[ref.vt][1]}
				}
				m.TexCoords = append(m.TexCoords, uv)
			}
			if hasNormals {
				var n [3]float32
				if ref.vn >= 0 {
					n = normals[ref.vn]
				}
				m.Normals = append(m.Normals, n)
			}
		}
	}
	return m
}

// parseFaceRef parses "v", "v/vt", "v//vn" or "v/vt/vn". Negative indices
// are relative to the end of the lists read so far.
func parseFaceRef(tok string, nv, nvt, nvn int) (objRef, error) {
	parts := strings.Split(tok, "/")
	if len(parts) > 3 {
		return objRef{}, fmt.Errorf("%w: %q", ErrInvalidOBJFace, tok)
	}
	ref := objRef{v: -1, vt: -1, vn: -1}

	var err error
	if ref.v, err = resolveIndex(parts[0], nv, false); err != nil {
		return objRef{}, fmt.Errorf("%w: position in %q: %v", ErrInvalidOBJFace, tok, err)
	}
	if len(parts) > 1 {
		if ref.vt, err = resolveIndex(parts[1], nvt, true); err != nil {
			return objRef{}, fmt.Errorf("%w: texcoord in %q: %v", ErrInvalidOBJFace, tok, err)
		}
	}
	if len(parts) > 2 {
		if ref.vn, err = resolveIndex(parts[2], nvn, true); err != nil {
			return objRef{}, fmt.Errorf("%w: normal in %q: %v", ErrInvalidOBJFace, tok, err)
		}
	}
	return ref, nil
}

func resolveIndex(s string, count int, optional bool) (int, error) {
	if s == "" {
		if optional {
			return -1, nil
		}
		return 0, errors.New("missing index")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case n > 0 && n <= count:
		return n - 1, nil
	case n < 0 && -n <= count:
		return count + n, nil
	default:
		return 0, fmt.Errorf("index %d out of range [1,%d]", n, count)
	}
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("%w: want %d components, got %d", ErrInvalidOBJData, n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidOBJData, err)
		}
		out[i] = float32(f)
	}
	return out, nil
}
