package glcube

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/solarlune/glcube/gfx"
)

// ErrEmptyImage is returned when asked to upload an image with no pixels.
var ErrEmptyImage = errors.New("glcube: image is empty")

// TextureOptions alters how images are uploaded. A nil *TextureOptions uses the defaults.
type TextureOptions struct {
	// MaxSize, if above 0, downscales images whose width or height exceeds it, keeping the aspect ratio.
	MaxSize int
	// Nearest uses nearest-neighbor filtering instead of linear filtering, for pixel art.
	Nearest bool
}

// DecodeImage decodes a PNG, JPEG, GIF, BMP, TIFF or WebP image.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("glcube: decoding image: %w", err)
	}
	return img, nil
}

func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeImage(f)
}

// LoadTexture decodes an image from r and uploads it with NewTexture.
func LoadTexture(ctx gfx.Context, r io.Reader, opts *TextureOptions) (gfx.Texture, error) {
	img, err := DecodeImage(r)
	if err != nil {
		return 0, err
	}
	return NewTexture(ctx, img, opts)
}

// LoadTextureFile decodes the image file at path on a separate goroutine and blocks until it's done or c is cancelled.
// The upload itself happens on the calling goroutine, which must own the GL context.
func LoadTextureFile(c context.Context, ctx gfx.Context, path string, opts *TextureOptions) (gfx.Texture, error) {

	if err := c.Err(); err != nil {
		return 0, fmt.Errorf("glcube: loading texture %s: %w", path, err)
	}

	type result struct {
		img image.Image
		err error
	}

	done := make(chan result, 1)

	go func() {
		img, err := decodeImageFile(path)
		done <- result{img, err}
	}()

	select {
	case <-c.Done():
		return 0, fmt.Errorf("glcube: loading texture %s: %w", path, c.Err())
	case res := <-done:
		if res.err != nil {
			return 0, fmt.Errorf("glcube: loading texture %s: %w", path, res.err)
		}
		return NewTexture(ctx, res.img, opts)
	}

}

// NewTexture uploads img as an RGBA 2D texture. Images with power-of-two sides get mipmaps and repeat wrapping;
// other sizes use clamp-to-edge wrapping without mipmaps, which every GL version supports for them.
func NewTexture(ctx gfx.Context, img image.Image, opts *TextureOptions) (gfx.Texture, error) {

	if opts == nil {
		opts = &TextureOptions{}
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return 0, ErrEmptyImage
	}

	rgba := toRGBA(img, opts.MaxSize)
	w, h := rgba.Rect.Dx(), rgba.Rect.Dy()

	texture := ctx.CreateTexture()
	ctx.BindTexture(gfx.TEXTURE_2D, texture)
	ctx.TexImage2D(gfx.TEXTURE_2D, 0, w, h, gfx.RGBA, gfx.UNSIGNED_BYTE, rgba.Pix)

	magFilter, minFilter := gfx.LINEAR, gfx.LINEAR
	if opts.Nearest {
		magFilter, minFilter = gfx.NEAREST, gfx.NEAREST
	}

	if isPowerOf2(w) && isPowerOf2(h) {
		ctx.GenerateMipmap(gfx.TEXTURE_2D)
		if !opts.Nearest {
			minFilter = gfx.LINEAR_MIPMAP_LINEAR
		}
		ctx.TexParameteri(gfx.TEXTURE_2D, gfx.TEXTURE_WRAP_S, int(gfx.REPEAT))
		ctx.TexParameteri(gfx.TEXTURE_2D, gfx.TEXTURE_WRAP_T, int(gfx.REPEAT))
	} else {
		ctx.TexParameteri(gfx.TEXTURE_2D, gfx.TEXTURE_WRAP_S, int(gfx.CLAMP_TO_EDGE))
		ctx.TexParameteri(gfx.TEXTURE_2D, gfx.TEXTURE_WRAP_T, int(gfx.CLAMP_TO_EDGE))
	}

	ctx.TexParameteri(gfx.TEXTURE_2D, gfx.TEXTURE_MIN_FILTER, int(minFilter))
	ctx.TexParameteri(gfx.TEXTURE_2D, gfx.TEXTURE_MAG_FILTER, int(magFilter))

	ctx.BindTexture(gfx.TEXTURE_2D, 0)

	return texture, nil

}

// toRGBA returns a tightly packed, zero-origin RGBA copy of img, scaled down to fit maxSize if needed.
func toRGBA(img image.Image, maxSize int) *image.RGBA {

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if maxSize > 0 && (w > maxSize || h > maxSize) {
		if w >= h {
			w, h = maxSize, max(1, h*maxSize/w)
		} else {
			w, h = max(1, w*maxSize/h), maxSize
		}
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
		return dst
	}

	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*w {
		return rgba
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst

}

func isPowerOf2(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// Checkerboard generates a size x size image of cells x cells alternating squares, used as a stand-in texture when
// no image file is configured.
func Checkerboard(size, cells int, a, b Color) *image.RGBA {

	img := image.NewRGBA(image.Rect(0, 0, size, size))

	if cells <= 0 {
		cells = 1
	}

	cell := max(1, size/cells)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.Set(x, y, c)
		}
	}

	return img

}
