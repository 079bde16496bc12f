package demo

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solarlune/glcube"
	"github.com/solarlune/glcube/colors"
	"github.com/solarlune/glcube/gfx"
	"github.com/solarlune/glcube/gfx/gfxtest"
)

func newGame(t *testing.T, scene Scene) (*Game, *gfxtest.Recorder) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Scene = scene
	rec := gfxtest.NewRecorder()
	game, err := New(context.Background(), rec, cfg, nil)
	require.NoError(t, err)
	return game, rec
}

func TestScenesRender(t *testing.T) {

	for scene, models := range map[Scene]int{
		SceneTriangle:     1,
		SceneColorCube:    1,
		SceneTexturedCube: 2,
		SceneUniformBlock: 2,
	} {

		t.Run(string(scene), func(t *testing.T) {

			game, rec := newGame(t, scene)
			require.Len(t, game.Models, models)

			require.NoError(t, game.Update(time.Second/60, glcube.NewKeyState()))
			require.NoError(t, game.Render())

			assert.Empty(t, rec.Errors)
			assert.Len(t, rec.Draws, models)
			assert.True(t, rec.Enabled[gfx.DEPTH_TEST])
			assert.Equal(t, gfx.LEQUAL, rec.DepthFunction)
			assert.Equal(t, colors.CornflowerBlue().Values(), rec.ClearColorValue)

			for _, draw := range rec.Draws {
				assert.True(t, draw.Indexed)
				assert.Equal(t, game.Program.Handle(), draw.Program)
			}

		})

	}

}

func TestColorCubeDrawsAllFaces(t *testing.T) {

	game, rec := newGame(t, SceneColorCube)
	require.NoError(t, game.Render())

	require.Len(t, rec.Draws, 1)
	assert.Equal(t, 36, rec.Draws[0].Count)

	color := rec.Draws[0].Attribs[glcube.AttribSlotColor]
	assert.True(t, color.Enabled)
	assert.Equal(t, 3, color.Size)

}

func TestTexturedCubeUsesCheckerboard(t *testing.T) {

	game, rec := newGame(t, SceneTexturedCube)
	require.NoError(t, game.Render())

	require.Len(t, rec.Draws, 2)
	texture := rec.Draws[0].Texture
	require.NotZero(t, texture)
	assert.Equal(t, texture, rec.Draws[1].Texture)

	state := rec.TextureState(texture)
	assert.Equal(t, 64, state.Width)
	assert.Equal(t, int(gfx.NEAREST), state.Params[gfx.TEXTURE_MAG_FILTER])

}

func TestUniformBlockSceneWritesBuffer(t *testing.T) {

	game, rec := newGame(t, SceneUniformBlock)
	require.NoError(t, game.Render())

	assert.Equal(t, glcube.UniformBlock, game.Program.Mode())
	assert.Zero(t, rec.Count("UniformMatrix4fv"))
	// Projection and view once, then one model matrix per cube.
	assert.Equal(t, 4, rec.Count("BufferSubData"))

	buffer := rec.BaseBinding(glcube.UniformBlockBinding)
	require.NotZero(t, buffer)

	// The last matrix written to the model slot belongs to the last cube drawn.
	contents := gfx.BytesF32(rec.BufferContents(buffer))
	require.Len(t, contents, 48)
	last := game.Models[len(game.Models)-1].ModelMatrix()
	assert.Equal(t, last[:], contents[32:48])

}

func TestUpdate(t *testing.T) {

	game, _ := newGame(t, SceneTexturedCube)

	spinner, bobber := game.Models[0], game.Models[1]
	startRotation := spinner.Rotation()
	startCamera := game.Camera.Position()

	keys := glcube.NewKeyState()
	keys.Press(glcube.KeyArrowRight)
	keys.Press(glcube.KeyArrowUp)

	require.NoError(t, game.Update(500*time.Millisecond, keys))

	assert.NotEqual(t, startRotation, spinner.Rotation())
	assert.InDelta(t, startCamera.X()+2, game.Camera.Position().X(), 1e-5)
	assert.InDelta(t, startCamera.Z()-2, game.Camera.Position().Z(), 1e-5)

	// The bobbing cube only moves up and down, within half the bob height of where it started.
	p := bobber.Position()
	assert.Equal(t, float32(1.75), p.X())
	assert.InDelta(t, 0, p.Y(), float64(game.cfg.BobHeight/2)+1e-5)
	assert.Equal(t, mgl32.QuatIdent(), bobber.Rotation())

	assert.Equal(t, 500*time.Millisecond, game.Elapsed())
	assert.Equal(t, uint64(1), game.Updates())

}

func TestBobbingKeepsGoing(t *testing.T) {

	game, _ := newGame(t, SceneTexturedCube)
	keys := glcube.NewKeyState()

	lowest, highest := float32(0), float32(0)

	// Several full cycles, to make sure the sequence yoyos and loops instead of stopping.
	for i := 0; i < 600; i++ {
		require.NoError(t, game.Update(time.Second/60, keys))
		y := game.Models[1].Position().Y()
		lowest, highest = min(lowest, y), max(highest, y)
	}

	half := game.cfg.BobHeight / 2
	assert.InDelta(t, -half, lowest, 0.05)
	assert.InDelta(t, half, highest, 0.05)

	last := game.Models[1].Position().Y()
	require.NoError(t, game.Update(time.Second/10, keys))
	assert.NotEqual(t, last, game.Models[1].Position().Y())

}

func TestEscapeQuits(t *testing.T) {

	game, _ := newGame(t, SceneColorCube)

	keys := glcube.NewKeyState()
	keys.Press(glcube.KeyEscape)

	assert.ErrorIs(t, game.Update(time.Second/60, keys), glcube.ErrQuit)

}

func TestRelease(t *testing.T) {

	game, rec := newGame(t, SceneUniformBlock)
	game.Release()
	game.Release()

	shaders, programs, buffers, textures := rec.LiveObjects()
	assert.Zero(t, shaders)
	assert.Zero(t, programs)
	assert.Zero(t, buffers)
	assert.Zero(t, textures)

	assert.Error(t, game.Render())

}

func TestNewFailsCleanly(t *testing.T) {

	t.Run("invalid config", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.FPS = 0
		_, err := New(context.Background(), gfxtest.NewRecorder(), cfg, nil)
		assert.Error(t, err)
	})

	t.Run("shader error", func(t *testing.T) {
		rec := gfxtest.NewRecorder()
		rec.LinkError = "error: out of registers"
		_, err := New(context.Background(), rec, DefaultConfig(), nil)

		var shaderErr *glcube.ShaderError
		require.ErrorAs(t, err, &shaderErr)
		assert.Equal(t, "link", shaderErr.Stage)

		shaders, programs, _, _ := rec.LiveObjects()
		assert.Zero(t, shaders)
		assert.Zero(t, programs)
	})

	t.Run("missing texture", func(t *testing.T) {
		rec := gfxtest.NewRecorder()
		cfg := DefaultConfig()
		cfg.Texture = filepath.Join(t.TempDir(), "missing.png")
		_, err := New(context.Background(), rec, cfg, nil)
		assert.ErrorIs(t, err, os.ErrNotExist)

		shaders, programs, buffers, textures := rec.LiveObjects()
		assert.Zero(t, shaders+programs+buffers+textures)
	})

}

func TestModelFromGLTF(t *testing.T) {

	path := filepath.Join(t.TempDir(), "triangle.gltf")
	require.NoError(t, os.WriteFile(path, triangleGLTF(t), 0o644))

	cfg := DefaultConfig()
	cfg.Scene = SceneColorCube
	cfg.Model = path

	rec := gfxtest.NewRecorder()
	game, err := New(context.Background(), rec, cfg, nil)
	require.NoError(t, err)

	require.NoError(t, game.Render())
	require.Len(t, rec.Draws, 1)
	assert.Equal(t, 3, rec.Draws[0].Count)

	// The glTF mesh has no vertex colors, so the color attribute is switched off.
	assert.False(t, rec.Draws[0].Attribs[glcube.AttribSlotColor].Enabled)

}

// triangleGLTF builds a minimal glTF document holding one indexed triangle in an embedded buffer.
func triangleGLTF(t *testing.T) []byte {

	t.Helper()

	buffer := append(gfx.F32Bytes(0, 0, 0, 1, 0, 0, 0, 1, 0), gfx.U16Bytes(0, 1, 2)...)
	buffer = append(buffer, 0, 0) // pad to a multiple of 4

	doc := map[string]any{
		"asset":  map[string]any{"version": "2.0"},
		"scene":  0,
		"scenes": []any{map[string]any{"nodes": []int{0}}},
		"nodes":  []any{map[string]any{"mesh": 0}},
		"meshes": []any{map[string]any{
			"name": "Triangle",
			"primitives": []any{map[string]any{
				"attributes": map[string]int{"POSITION": 0},
				"indices":    1,
			}},
		}},
		"buffers": []any{map[string]any{
			"byteLength": len(buffer),
			"uri":        "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(buffer),
		}},
		"bufferViews": []any{
			map[string]any{"buffer": 0, "byteOffset": 0, "byteLength": 36, "target": 34962},
			map[string]any{"buffer": 0, "byteOffset": 36, "byteLength": 6, "target": 34963},
		},
		"accessors": []any{
			map[string]any{"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3", "min": []float32{0, 0, 0}, "max": []float32{1, 1, 0}},
			map[string]any{"bufferView": 1, "componentType": 5123, "count": 3, "type": "SCALAR"},
		},
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return data

}
