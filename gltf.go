package glcube

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ErrNoMesh is returned when a glTF document doesn't contain a mesh primitive to load.
var ErrNoMesh = errors.New("glcube: glTF document has no mesh primitives")

// ErrUnsupportedPrimitive is returned for glTF primitives that aren't triangle lists.
var ErrUnsupportedPrimitive = errors.New("glcube: glTF primitive isn't a triangle list")

// LoadGLTFFile loads the first mesh of a .gltf or .glb file from the filepath given. Buffers referenced by relative
// URIs are resolved against the file's directory.
func LoadGLTFFile(path string) (*Mesh, error) {

	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	doc, err := gltf.Open(path)

	if err != nil {
		return nil, fmt.Errorf("glcube: opening glTF %s: %w", path, err)
	}

	return meshFromDocument(doc)

}

// LoadGLTFData loads the first mesh of a .gltf or .glb file from the byte data given.
func LoadGLTFData(data []byte) (*Mesh, error) {
	return LoadGLTF(bytes.NewReader(data))
}

// LoadGLTF decodes a self-contained glTF document (GLB, or JSON with data URI buffers) and converts the first
// primitive of its first mesh into a Mesh.
func LoadGLTF(r io.Reader) (*Mesh, error) {

	decoder := gltf.NewDecoder(r)

	doc := gltf.NewDocument()

	if err := decoder.Decode(doc); err != nil {
		return nil, fmt.Errorf("glcube: decoding glTF: %w", err)
	}

	return meshFromDocument(doc)

}

// meshFromDocument reads positions (required), TEXCOORD_0 and COLOR_0 (when present) and the indices of the first
// primitive. Texture V coordinates are flipped, since glTF puts the origin at the top-left of the image.
func meshFromDocument(doc *gltf.Document) (*Mesh, error) {

	if len(doc.Meshes) == 0 || len(doc.Meshes[0].Primitives) == 0 {
		return nil, ErrNoMesh
	}

	gltfMesh := doc.Meshes[0]
	prim := gltfMesh.Primitives[0]

	if prim.Mode != gltf.PrimitiveTriangles {
		return nil, fmt.Errorf("%w: glTF mesh %q uses %s", ErrUnsupportedPrimitive, gltfMesh.Name, prim.Mode)
	}

	mesh := &Mesh{Name: gltfMesh.Name}

	posIndex, exists := prim.Attributes[gltf.POSITION]
	if !exists {
		return nil, fmt.Errorf("glcube: glTF mesh %q has no POSITION attribute", gltfMesh.Name)
	}

	posAccessor, err := accessor(doc, posIndex, gltf.POSITION)
	if err != nil {
		return nil, err
	}

	positions, err := modeler.ReadPosition(doc, posAccessor, nil)
	if err != nil {
		return nil, fmt.Errorf("glcube: reading glTF positions: %w", err)
	}

	if len(positions) > math.MaxUint16+1 {
		return nil, fmt.Errorf("%w: glTF mesh %q has %d", ErrTooManyVertices, gltfMesh.Name, len(positions))
	}

	mesh.Positions = make([]float32, 0, len(positions)*3)
	for _, p := range positions {
		mesh.Positions = append(mesh.Positions, p[0], p[1], p[2])
	}

	if texCoordIndex, texCoordExists := prim.Attributes[gltf.TEXCOORD_0]; texCoordExists {

		texCoordAccessor, err := accessor(doc, texCoordIndex, gltf.TEXCOORD_0)
		if err != nil {
			return nil, err
		}

		texCoords, err := modeler.ReadTextureCoord(doc, texCoordAccessor, nil)

		if err != nil {
			return nil, fmt.Errorf("glcube: reading glTF texture coordinates: %w", err)
		}

		mesh.TexCoords = make([]float32, 0, len(texCoords)*2)
		for _, uv := range texCoords {
			mesh.TexCoords = append(mesh.TexCoords, uv[0], 1-uv[1])
		}

	}

	if colorIndex, colorExists := prim.Attributes[gltf.COLOR_0]; colorExists {

		colorAccessor, err := accessor(doc, colorIndex, gltf.COLOR_0)
		if err != nil {
			return nil, err
		}

		colors, err := modeler.ReadColor64(doc, colorAccessor, nil)

		if err != nil {
			return nil, fmt.Errorf("glcube: reading glTF vertex colors: %w", err)
		}

		mesh.Colors = make([]float32, 0, len(colors)*3)
		for _, c := range colors {
			mesh.Colors = append(mesh.Colors, float32(c[0])/math.MaxUint16, float32(c[1])/math.MaxUint16, float32(c[2])/math.MaxUint16)
		}

	}

	if prim.Indices != nil {

		indexAccessor, err := accessor(doc, *prim.Indices, "indices")
		if err != nil {
			return nil, err
		}

		indices, err := modeler.ReadIndices(doc, indexAccessor, nil)

		if err != nil {
			return nil, fmt.Errorf("glcube: reading glTF indices: %w", err)
		}

		mesh.Indices = make([]uint16, len(indices))
		for i, j := range indices {
			if j > math.MaxUint16 {
				return nil, fmt.Errorf("%w: glTF mesh %q uses index %d", ErrTooManyVertices, gltfMesh.Name, j)
			}
			mesh.Indices[i] = uint16(j)
		}

	} else {

		// Non-indexed primitives draw their vertices in order.
		mesh.Indices = make([]uint16, len(positions))
		for i := range mesh.Indices {
			mesh.Indices[i] = uint16(i)
		}

	}

	if err := mesh.Validate(); err != nil {
		return nil, err
	}

	return mesh, nil

}

// accessor returns the accessor a primitive refers to as the given attribute.
func accessor(doc *gltf.Document, index int, attribute string) (*gltf.Accessor, error) {
	if index < 0 || index >= len(doc.Accessors) || doc.Accessors[index] == nil {
		return nil, fmt.Errorf("glcube: glTF %s refers to accessor %d of %d", attribute, index, len(doc.Accessors))
	}
	return doc.Accessors[index], nil
}
