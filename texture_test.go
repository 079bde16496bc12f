package glcube_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/solarlune/glcube"
	"github.com/solarlune/glcube/colors"
	"github.com/solarlune/glcube/gfx"
	"github.com/solarlune/glcube/gfx/gfxtest"
)

func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestNewTexturePowerOfTwo(t *testing.T) {

	rec := gfxtest.NewRecorder()

	tex, err := glcube.NewTexture(rec, solidImage(4, 8, color.RGBA{255, 0, 0, 255}), nil)
	require.NoError(t, err)

	state := rec.TextureState(tex)
	require.NotNil(t, state)
	assert.Equal(t, 4, state.Width)
	assert.Equal(t, 8, state.Height)
	assert.Equal(t, gfx.RGBA, state.Format)
	assert.True(t, state.Mipmapped)
	assert.Equal(t, int(gfx.REPEAT), state.Params[gfx.TEXTURE_WRAP_S])
	assert.Equal(t, int(gfx.REPEAT), state.Params[gfx.TEXTURE_WRAP_T])
	assert.Equal(t, int(gfx.LINEAR_MIPMAP_LINEAR), state.Params[gfx.TEXTURE_MIN_FILTER])
	assert.Equal(t, int(gfx.LINEAR), state.Params[gfx.TEXTURE_MAG_FILTER])
	assert.Equal(t, []byte{255, 0, 0, 255}, state.Pix[:4])
	assert.Empty(t, rec.Errors)

}

func TestNewTextureNonPowerOfTwo(t *testing.T) {

	rec := gfxtest.NewRecorder()

	tex, err := glcube.NewTexture(rec, solidImage(3, 5, color.White), nil)
	require.NoError(t, err)

	state := rec.TextureState(tex)
	assert.False(t, state.Mipmapped)
	assert.Equal(t, int(gfx.CLAMP_TO_EDGE), state.Params[gfx.TEXTURE_WRAP_S])
	assert.Equal(t, int(gfx.CLAMP_TO_EDGE), state.Params[gfx.TEXTURE_WRAP_T])
	assert.Equal(t, int(gfx.LINEAR), state.Params[gfx.TEXTURE_MIN_FILTER])
	assert.Len(t, state.Pix, 3*5*4)

}

func TestNewTextureOptions(t *testing.T) {

	rec := gfxtest.NewRecorder()

	// Sub-images have a non-zero origin and a wider stride; they must be repacked.
	big := solidImage(64, 32, color.White)
	sub := big.SubImage(image.Rect(8, 8, 40, 24))

	tex, err := glcube.NewTexture(rec, sub, &glcube.TextureOptions{MaxSize: 16, Nearest: true})
	require.NoError(t, err)

	state := rec.TextureState(tex)
	assert.Equal(t, 16, state.Width)
	assert.Equal(t, 8, state.Height)
	assert.Equal(t, int(gfx.NEAREST), state.Params[gfx.TEXTURE_MIN_FILTER])
	assert.Equal(t, int(gfx.NEAREST), state.Params[gfx.TEXTURE_MAG_FILTER])

}

func TestNewTextureEmpty(t *testing.T) {
	rec := gfxtest.NewRecorder()
	_, err := glcube.NewTexture(rec, image.NewRGBA(image.Rectangle{}), nil)
	assert.ErrorIs(t, err, glcube.ErrEmptyImage)
	assert.Zero(t, rec.Count("CreateTexture"))
}

func TestLoadTextureBMP(t *testing.T) {

	buf := &bytes.Buffer{}
	require.NoError(t, bmp.Encode(buf, solidImage(2, 2, color.RGBA{0, 0, 255, 255})))

	rec := gfxtest.NewRecorder()
	tex, err := glcube.LoadTexture(rec, buf, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 255, 255}, rec.TextureState(tex).Pix[:4])

}

func TestLoadTextureFile(t *testing.T) {

	path := filepath.Join(t.TempDir(), "cubetexture.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, solidImage(16, 16, color.RGBA{0, 255, 0, 255})))
	require.NoError(t, f.Close())

	rec := gfxtest.NewRecorder()

	tex, err := glcube.LoadTextureFile(context.Background(), rec, path, nil)
	require.NoError(t, err)
	assert.Equal(t, 16, rec.TextureState(tex).Width)

	t.Run("missing", func(t *testing.T) {
		_, err := glcube.LoadTextureFile(context.Background(), rec, filepath.Join(t.TempDir(), "nope.png"), nil)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("cancelled", func(t *testing.T) {
		c, cancel := context.WithCancel(context.Background())
		cancel()
		before := rec.Count("CreateTexture")
		_, err := glcube.LoadTextureFile(c, rec, path, nil)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, before, rec.Count("CreateTexture"))
	})

	t.Run("garbage", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.png")
		require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0o644))
		_, err := glcube.LoadTextureFile(context.Background(), rec, bad, nil)
		assert.ErrorIs(t, err, image.ErrFormat)
	})

}

func TestCheckerboard(t *testing.T) {

	img := glcube.Checkerboard(8, 2, colors.White(), colors.Black())

	assert.Equal(t, image.Rect(0, 0, 8, 8), img.Bounds())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(4, 0))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(0, 4))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(7, 7))

}
