// Package assets loads mesh and image files from disk into the flat data the
// renderer uploads: interleaved vertex floats, triangle indices, RGBA pixels.
package assets

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/hschendel/stl"

	"github.com/meshview/meshview/engine/core"
)

// BoundingBox is the axis-aligned extent of a mesh.
type BoundingBox struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

func (b BoundingBox) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b BoundingBox) Delta() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

const floatsPerVertex = 6 // position + normal

// Mesh is an indexed triangle mesh ready for upload: 3+3 interleaved
// position/normal floats per vertex plus a triangle index list.
type Mesh struct {
	ID       uuid.UUID
	Path     string
	Vertices []float32
	Indices  []uint32
	BBox     BoundingBox
}

// VertexCount is the number of unique vertices in the interleaved stream.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / floatsPerVertex
}

// LoadSTL parses a binary or ASCII STL file and folds its triangle soup into
// an indexed mesh, deduplicating identical (position, normal) pairs.
func LoadSTL(path string) (*Mesh, error) {
	solid, err := stl.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading stl %s: %w", path, err)
	}
	if len(solid.Triangles) == 0 {
		return nil, fmt.Errorf("stl %s contains no triangles", path)
	}

	mesh := indexTriangles(solid)
	mesh.ID = uuid.New()
	mesh.Path = path

	core.LogDebug("loaded %s: %d triangles, %d unique vertices (id=%s)",
		path, len(solid.Triangles), mesh.VertexCount(), mesh.ID)

	return mesh, nil
}

type vertexKey [floatsPerVertex]float32

func indexTriangles(solid *stl.Solid) *Mesh {
	measure := solid.Measure()
	mesh := &Mesh{
		BBox: BoundingBox{
			Min: mgl32.Vec3(measure.Min),
			Max: mgl32.Vec3(measure.Max),
		},
	}

	seen := make(map[vertexKey]uint32)
	for _, triangle := range solid.Triangles {
		for _, vertex := range triangle.Vertices {
			key := vertexKey{
				vertex[0], vertex[1], vertex[2],
				triangle.Normal[0], triangle.Normal[1], triangle.Normal[2],
			}
			index, ok := seen[key]
			if !ok {
				index = uint32(len(mesh.Vertices) / floatsPerVertex)
				seen[key] = index
				mesh.Vertices = append(mesh.Vertices, key[:]...)
			}
			mesh.Indices = append(mesh.Indices, index)
		}
	}

	return mesh
}
