package glcube

import (
	"fmt"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewColorClamps(t *testing.T) {
	c := NewColor(-1, 2, 0.5, 5)
	assert.Equal(t, Color{0, 1, 0.5, 1}, c)
	assert.Equal(t, [4]float32{0, 1, 0.5, 1}, c.Values())
}

func TestColorSetClamps(t *testing.T) {
	var c Color
	c.Set(0.25, -3, 7, -0.1)
	assert.Equal(t, Color{0.25, 0, 1, 0}, c)

	c.SetRGB(0.5, 0.5, 0.5)
	assert.Equal(t, float32(1), c.A)

	c.AddRGB(0.75)
	assert.Equal(t, Color{1, 1, 1, 1}, c)
}

func TestColorNaNClampsToZero(t *testing.T) {
	nan := float32(math.NaN())
	assert.Equal(t, Color{0, 0, 0, 0}, NewColor(nan, nan, nan, nan))
}

func TestColorCSSString(t *testing.T) {
	assert.Equal(t, "rgba(1,0,0.5,1)", NewColor(1, 0, 0.5, 1).CSSString())
	assert.Equal(t, "rgba(0.39,0.58,0.92,1)", NewColor(0.39, 0.58, 0.92, 1).CSSString())

	c := NewColor(0.25, 1, 0, 0.5)
	assert.Equal(t, c.CSSString(), c.String())
	assert.Equal(t, "rgba(0.25,1,0,0.5)", fmt.Sprint(c))
}

func TestColorImplementsImageColor(t *testing.T) {
	var c color.Color = NewColor(1, 0, 0, 1)
	r, g, b, a := c.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)

	rgba := color.RGBAModel.Convert(NewColor(0, 1, 0, 0.5)).(color.RGBA)
	assert.Equal(t, uint8(128), rgba.G)
	assert.Equal(t, uint8(128), rgba.A)
}

func TestColorToSRGB(t *testing.T) {
	c := NewColor(0, 0.5, 1, 0.3).ToSRGB()
	assert.Equal(t, float32(0), c.R)
	assert.InDelta(t, 0.7354, c.G, 1e-3)
	assert.InDelta(t, 1, c.B, 1e-5)
	assert.Equal(t, float32(0.3), c.A)
}
