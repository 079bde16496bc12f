package glcube_test

import (
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solarlune/glcube"
	"github.com/solarlune/glcube/gfx"
	"github.com/solarlune/glcube/gfx/gfxtest"
)

// gltfDocument builds a glTF JSON document holding one mesh primitive, with its buffer embedded as a data URI.
// texCoords and indices are left out of the primitive when empty.
func gltfDocument(tb testing.TB, positions, texCoords []float32, indices []uint16) []byte {

	tb.Helper()

	buffer := gfx.F32Bytes(positions...)
	vertexCount := len(positions) / 3

	attributes := map[string]int{"POSITION": 0}
	views := []any{
		map[string]any{"buffer": 0, "byteOffset": 0, "byteLength": len(buffer), "target": 34962},
	}

	lo, hi := []float32{positions[0], positions[1], positions[2]}, []float32{positions[0], positions[1], positions[2]}
	for i := 0; i < len(positions); i += 3 {
		for c := 0; c < 3; c++ {
			lo[c], hi[c] = min(lo[c], positions[i+c]), max(hi[c], positions[i+c])
		}
	}

	accessors := []any{
		map[string]any{"bufferView": 0, "componentType": 5126, "count": vertexCount, "type": "VEC3", "min": lo, "max": hi},
	}

	primitive := map[string]any{"attributes": attributes}

	if len(texCoords) > 0 {
		uv := gfx.F32Bytes(texCoords...)
		views = append(views, map[string]any{"buffer": 0, "byteOffset": len(buffer), "byteLength": len(uv), "target": 34962})
		accessors = append(accessors, map[string]any{"bufferView": len(views) - 1, "componentType": 5126, "count": vertexCount, "type": "VEC2"})
		attributes["TEXCOORD_0"] = len(accessors) - 1
		buffer = append(buffer, uv...)
	}

	if len(indices) > 0 {
		idx := gfx.U16Bytes(indices...)
		views = append(views, map[string]any{"buffer": 0, "byteOffset": len(buffer), "byteLength": len(idx), "target": 34963})
		accessors = append(accessors, map[string]any{"bufferView": len(views) - 1, "componentType": 5123, "count": len(indices), "type": "SCALAR"})
		primitive["indices"] = len(accessors) - 1
		buffer = append(buffer, idx...)
		for len(buffer)%4 != 0 {
			buffer = append(buffer, 0)
		}
	}

	doc := map[string]any{
		"asset":  map[string]any{"version": "2.0"},
		"scene":  0,
		"scenes": []any{map[string]any{"nodes": []int{0}}},
		"nodes":  []any{map[string]any{"mesh": 0}},
		"meshes": []any{map[string]any{
			"name":       "Quad",
			"primitives": []any{primitive},
		}},
		"buffers": []any{map[string]any{
			"byteLength": len(buffer),
			"uri":        "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(buffer),
		}},
		"bufferViews": views,
		"accessors":   accessors,
	}

	data, err := json.Marshal(doc)
	require.NoError(tb, err)
	return data

}

// patchPrimitive decodes a document made by gltfDocument, lets patch change it and its primitive, and encodes it again.
func patchPrimitive(tb testing.TB, data []byte, patch func(doc, primitive map[string]any)) []byte {

	tb.Helper()

	var doc map[string]any
	require.NoError(tb, json.Unmarshal(data, &doc))

	primitive := doc["meshes"].([]any)[0].(map[string]any)["primitives"].([]any)[0].(map[string]any)
	patch(doc, primitive)

	data, err := json.Marshal(doc)
	require.NoError(tb, err)
	return data

}

var (
	quadPositions = []float32{
		-1, -1, 0,
		1, -1, 0,
		1, 1, 0,
		-1, 1, 0,
	}
	quadTexCoords = []float32{
		0, 1,
		1, 1,
		1, 0,
		0, 0,
	}
	quadIndices = []uint16{0, 1, 2, 0, 2, 3}
)

func TestLoadGLTFData(t *testing.T) {

	mesh, err := glcube.LoadGLTFData(gltfDocument(t, quadPositions, quadTexCoords, quadIndices))
	require.NoError(t, err)

	assert.Equal(t, "Quad", mesh.Name)
	assert.Equal(t, quadPositions, mesh.Positions)
	assert.Equal(t, quadIndices, mesh.Indices)
	assert.Nil(t, mesh.Colors)
	assert.Equal(t, 4, mesh.VertexCount())
	assert.Equal(t, 2, mesh.TriangleCount())

	// V is flipped so that the bottom-left of the image is at V = 0.
	assert.Equal(t, []float32{0, 0, 1, 0, 1, 1, 0, 1}, mesh.TexCoords)

	rec := gfxtest.NewRecorder()
	prim, err := mesh.Upload(rec)
	require.NoError(t, err)
	assert.Equal(t, 6, prim.ElementCount)
	assert.NotEqual(t, gfx.NoBuffer, prim.TexCoords)
	assert.Equal(t, gfx.NoBuffer, prim.Colors)

}

func TestLoadGLTFNonIndexed(t *testing.T) {

	mesh, err := glcube.LoadGLTFData(gltfDocument(t, quadPositions[:9], nil, nil))
	require.NoError(t, err)

	assert.Equal(t, []uint16{0, 1, 2}, mesh.Indices)
	assert.Nil(t, mesh.TexCoords)

}

func TestLoadGLTFErrors(t *testing.T) {

	_, err := glcube.LoadGLTFData([]byte(`{"asset": {"version": "2.0"}}`))
	assert.ErrorIs(t, err, glcube.ErrNoMesh)

	_, err = glcube.LoadGLTFData([]byte("not a gltf file"))
	assert.Error(t, err)

	// An index past the end of the vertex data fails validation.
	_, err = glcube.LoadGLTFData(gltfDocument(t, quadPositions, nil, []uint16{0, 1, 4}))
	assert.ErrorContains(t, err, "out of range")

}

func TestLoadGLTFMissingAccessor(t *testing.T) {

	for name, patch := range map[string]func(primitive map[string]any){
		"position": func(primitive map[string]any) { primitive["attributes"].(map[string]any)["POSITION"] = 7 },
		"texcoord": func(primitive map[string]any) { primitive["attributes"].(map[string]any)["TEXCOORD_0"] = 7 },
		"color":    func(primitive map[string]any) { primitive["attributes"].(map[string]any)["COLOR_0"] = 7 },
		"indices":  func(primitive map[string]any) { primitive["indices"] = 7 },
		"negative": func(primitive map[string]any) { primitive["indices"] = -1 },
	} {
		t.Run(name, func(t *testing.T) {
			data := patchPrimitive(t, gltfDocument(t, quadPositions, nil, quadIndices), func(_, primitive map[string]any) {
				patch(primitive)
			})
			var err error
			require.NotPanics(t, func() { _, err = glcube.LoadGLTFData(data) })
			assert.ErrorContains(t, err, "refers to accessor")
		})
	}

}

func TestLoadGLTFWideIndices(t *testing.T) {

	// Read as 32-bit values, the 16-bit pairs {0,0}, {1,0}, {1,1} are the indices 0, 1 and 65537.
	data := patchPrimitive(t, gltfDocument(t, quadPositions[:9], nil, []uint16{0, 0, 1, 0, 1, 1}), func(doc, primitive map[string]any) {
		indices := doc["accessors"].([]any)[int(primitive["indices"].(float64))].(map[string]any)
		indices["componentType"] = 5125
		indices["count"] = 3
	})

	_, err := glcube.LoadGLTFData(data)
	assert.ErrorIs(t, err, glcube.ErrTooManyVertices)

}

func TestLoadGLTFPrimitiveMode(t *testing.T) {

	// 1 is LINES.
	data := patchPrimitive(t, gltfDocument(t, quadPositions, nil, quadIndices), func(_, primitive map[string]any) {
		primitive["mode"] = 1
	})

	_, err := glcube.LoadGLTFData(data)
	assert.ErrorIs(t, err, glcube.ErrUnsupportedPrimitive)

	// An explicit TRIANGLES mode loads like the default.
	data = patchPrimitive(t, gltfDocument(t, quadPositions, nil, quadIndices), func(_, primitive map[string]any) {
		primitive["mode"] = 4
	})

	mesh, err := glcube.LoadGLTFData(data)
	require.NoError(t, err)
	assert.Equal(t, 2, mesh.TriangleCount())

}

func TestLoadGLTFFile(t *testing.T) {

	path := filepath.Join(t.TempDir(), "quad.gltf")
	require.NoError(t, os.WriteFile(path, gltfDocument(t, quadPositions, quadTexCoords, quadIndices), 0o644))

	mesh, err := glcube.LoadGLTFFile(path)
	require.NoError(t, err)
	assert.Equal(t, quadIndices, mesh.Indices)

	_, err = glcube.LoadGLTFFile(filepath.Join(t.TempDir(), "missing.glb"))
	assert.ErrorIs(t, err, os.ErrNotExist)

}

func BenchmarkLoadGLTFData(b *testing.B) {
	b.StopTimer()
	cube := glcube.NewCubeMesh()
	data := gltfDocument(b, cube.Positions, cube.TexCoords, cube.Indices)
	b.StartTimer()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		if _, err := glcube.LoadGLTFData(data); err != nil {
			b.Fatal(err)
		}
	}
}
