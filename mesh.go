package glcube

import (
	"errors"
	"fmt"
	"math"

	"github.com/solarlune/glcube/gfx"
)

// ErrTooManyVertices is returned for meshes that can't be addressed by a 16-bit index buffer.
var ErrTooManyVertices = errors.New("glcube: mesh has more vertices than 16-bit indices can address")

// Mesh is CPU-side geometry: flat attribute arrays plus 16-bit triangle indices. Colors and TexCoords are optional,
// but when present must describe the same number of vertices as Positions.
type Mesh struct {
	Name      string
	Positions []float32 // 3 per vertex
	Colors    []float32 // 3 per vertex
	TexCoords []float32 // 2 per vertex
	Indices   []uint16
}

// VertexCount returns the number of vertices in the Mesh.
func (mesh *Mesh) VertexCount() int {
	return len(mesh.Positions) / 3
}

// TriangleCount returns the number of indexed triangles in the Mesh.
func (mesh *Mesh) TriangleCount() int {
	return len(mesh.Indices) / 3
}

// Validate checks that attribute arrays agree on the vertex count and that every index refers to an existing vertex.
func (mesh *Mesh) Validate() error {

	if len(mesh.Positions)%3 != 0 {
		return fmt.Errorf("glcube: mesh %q: %d position floats isn't a multiple of 3", mesh.Name, len(mesh.Positions))
	}

	count := mesh.VertexCount()

	if count > math.MaxUint16+1 {
		return fmt.Errorf("%w: mesh %q has %d", ErrTooManyVertices, mesh.Name, count)
	}

	if mesh.Colors != nil && len(mesh.Colors) != count*3 {
		return fmt.Errorf("glcube: mesh %q: %d color floats for %d vertices", mesh.Name, len(mesh.Colors), count)
	}

	if mesh.TexCoords != nil && len(mesh.TexCoords) != count*2 {
		return fmt.Errorf("glcube: mesh %q: %d texture coordinate floats for %d vertices", mesh.Name, len(mesh.TexCoords), count)
	}

	if len(mesh.Indices)%3 != 0 {
		return fmt.Errorf("glcube: mesh %q: %d indices don't form whole triangles", mesh.Name, len(mesh.Indices))
	}

	for _, i := range mesh.Indices {
		if int(i) >= count {
			return fmt.Errorf("glcube: mesh %q: index %d out of range of %d vertices", mesh.Name, i, count)
		}
	}

	return nil

}

// Primitive is a Mesh uploaded to the GPU. Buffers that the Mesh had no data for are gfx.NoBuffer. A Primitive is
// immutable once created and can be shared by any number of Models.
type Primitive struct {
	Name         string
	Vertices     gfx.Buffer
	Colors       gfx.Buffer
	TexCoords    gfx.Buffer
	Elements     gfx.Buffer
	ElementCount int
	VertexCount  int
}

// Upload validates the Mesh and copies it into static GPU buffers.
func (mesh *Mesh) Upload(ctx gfx.Context) (*Primitive, error) {

	if err := mesh.Validate(); err != nil {
		return nil, err
	}

	prim := &Primitive{
		Name:         mesh.Name,
		ElementCount: len(mesh.Indices),
		VertexCount:  mesh.VertexCount(),
	}

	prim.Vertices = uploadBuffer(ctx, gfx.ARRAY_BUFFER, gfx.F32Bytes(mesh.Positions...))

	if len(mesh.Colors) > 0 {
		prim.Colors = uploadBuffer(ctx, gfx.ARRAY_BUFFER, gfx.F32Bytes(mesh.Colors...))
	}

	if len(mesh.TexCoords) > 0 {
		prim.TexCoords = uploadBuffer(ctx, gfx.ARRAY_BUFFER, gfx.F32Bytes(mesh.TexCoords...))
	}

	if len(mesh.Indices) > 0 {
		prim.Elements = uploadBuffer(ctx, gfx.ELEMENT_ARRAY_BUFFER, gfx.U16Bytes(mesh.Indices...))
	}

	return prim, nil

}

func uploadBuffer(ctx gfx.Context, target gfx.Enum, data []byte) gfx.Buffer {
	b := ctx.CreateBuffer()
	ctx.BindBuffer(target, b)
	ctx.BufferData(target, data, gfx.STATIC_DRAW)
	ctx.BindBuffer(target, gfx.NoBuffer)
	return b
}

// Release deletes the Primitive's buffers.
func (prim *Primitive) Release(ctx gfx.Context) {
	for _, b := range []gfx.Buffer{prim.Vertices, prim.Colors, prim.TexCoords, prim.Elements} {
		if b != gfx.NoBuffer {
			ctx.DeleteBuffer(b)
		}
	}
	*prim = Primitive{Name: prim.Name}
}

// NewCube uploads the unit cube returned by NewCubeMesh. The result always has 36 elements (12 triangles).
func NewCube(ctx gfx.Context) (*Primitive, error) {
	return NewCubeMesh().Upload(ctx)
}

// NewTriangle uploads the single clip-space triangle returned by NewTriangleMesh.
func NewTriangle(ctx gfx.Context) (*Primitive, error) {
	return NewTriangleMesh().Upload(ctx)
}

// NewTriangleMesh returns a single triangle in clip space, drawn without any transforms by FlatShader.
func NewTriangleMesh() *Mesh {
	return &Mesh{
		Name: "Triangle",
		Positions: []float32{
			-0.5, -0.5, 1.0,
			0.0, 0.5, 1.0,
			0.5, -0.5, 1.0,
		},
		Indices: []uint16{0, 1, 2},
	}
}

// NewCubeMesh returns a cube spanning -1 to 1 on each axis. Each face has its own four vertices so that colors and
// texture coordinates don't bleed across edges: 24 vertices and 36 indices in total.
func NewCubeMesh() *Mesh {
	return &Mesh{
		Name:      "Cube",
		Positions: append([]float32(nil), cubePositions[:]...),
		Colors:    append([]float32(nil), cubeColors[:]...),
		TexCoords: append([]float32(nil), cubeTexCoords[:]...),
		Indices:   append([]uint16(nil), cubeIndices[:]...),
	}
}

var cubePositions = [...]float32{
	// Front
	-1, -1, 1,
	1, -1, 1,
	1, 1, 1,
	-1, 1, 1,

	// Back
	-1, -1, -1,
	-1, 1, -1,
	1, 1, -1,
	1, -1, -1,

	// Top
	-1, 1, -1,
	-1, 1, 1,
	1, 1, 1,
	1, 1, -1,

	// Bottom
	-1, -1, -1,
	1, -1, -1,
	1, -1, 1,
	-1, -1, 1,

	// Right
	1, -1, -1,
	1, 1, -1,
	1, 1, 1,
	1, -1, 1,

	// Left
	-1, -1, -1,
	-1, -1, 1,
	-1, 1, 1,
	-1, 1, -1,
}

var cubeColors = [...]float32{
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // Front: white
	1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, // Back: red
	0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, // Top: green
	0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, // Bottom: blue
	1, 1, 0, 1, 1, 0, 1, 1, 0, 1, 1, 0, // Right: yellow
	1, 0, 1, 1, 0, 1, 1, 0, 1, 1, 0, 1, // Left: purple
}

var cubeTexCoords = [...]float32{
	0, 0, 1, 0, 1, 1, 0, 1, // Front
	1, 0, 1, 1, 0, 1, 0, 0, // Back
	0, 1, 0, 0, 1, 0, 1, 1, // Top
	1, 1, 0, 1, 0, 0, 1, 0, // Bottom
	1, 0, 1, 1, 0, 1, 0, 0, // Right
	0, 0, 1, 0, 1, 1, 0, 1, // Left
}

var cubeIndices = [...]uint16{
	0, 1, 2, 0, 2, 3, // Front
	4, 5, 6, 4, 6, 7, // Back
	8, 9, 10, 8, 10, 11, // Top
	12, 13, 14, 12, 14, 15, // Bottom
	16, 17, 18, 16, 18, 19, // Right
	20, 21, 22, 20, 22, 23, // Left
}
