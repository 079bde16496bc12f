package glcube

import (
	"math"
	"strconv"

	"github.com/solarlune/glcube/math32"
)

// A Color represents a color, containing R, G, B, and A components, each ranging from 0 to 1.
// Colors are plain values; the constructor and setters clamp every channel into that range.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color with the provided R, G, B, and A components, each clamped to the 0 to 1 range.
func NewColor(r, g, b, a float32) Color {
	return Color{
		R: math32.Clamp01(r),
		G: math32.Clamp01(g),
		B: math32.Clamp01(b),
		A: math32.Clamp01(a),
	}
}

// NewColorRGB returns an opaque Color.
func NewColorRGB(r, g, b float32) Color {
	return NewColor(r, g, b, 1)
}

// Clone returns a copy of the Color.
func (color Color) Clone() Color {
	return color
}

// Set sets all four channels of the Color, clamping them.
func (color *Color) Set(r, g, b, a float32) {
	*color = NewColor(r, g, b, a)
}

// SetRGB sets the color channels and makes the Color fully opaque.
func (color *Color) SetRGB(r, g, b float32) {
	color.Set(r, g, b, 1)
}

// AddRGB adds the value provided to the R, G, and B channels; the result stays clamped.
func (color *Color) AddRGB(value float32) {
	color.Set(color.R+value, color.G+value, color.B+value, color.A)
}

// Values returns the channels as an (R, G, B, A) tuple.
func (color Color) Values() [4]float32 {
	return [4]float32{color.R, color.G, color.B, color.A}
}

// CSSString formats the Color as a CSS rgba() expression using the raw 0-1 channel values, i.e. "rgba(1,0,0.5,1)".
func (color Color) CSSString() string {
	return "rgba(" + formatChannel(color.R) + "," + formatChannel(color.G) + "," + formatChannel(color.B) + "," + formatChannel(color.A) + ")"
}

// String implements fmt.Stringer; it's the same as CSSString.
func (color Color) String() string {
	return color.CSSString()
}

// RGBA implements image/color.Color, returning alpha-premultiplied 16-bit channels.
func (color Color) RGBA() (r, g, b, a uint32) {
	a = uint32(color.A*0xffff + 0.5)
	r = uint32(color.R*color.A*0xffff + 0.5)
	g = uint32(color.G*color.A*0xffff + 0.5)
	b = uint32(color.B*color.A*0xffff + 0.5)
	return
}

// ToSRGB returns the Color converted from linear space to sRGB.
func (color Color) ToSRGB() Color {
	return NewColor(toSRGB(color.R), toSRGB(color.G), toSRGB(color.B), color.A)
}

func toSRGB(c float32) float32 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return float32(1.055*math.Pow(float64(c), 1/2.4) - 0.055)
}

func formatChannel(c float32) string {
	return strconv.FormatFloat(float64(c), 'f', -1, 32)
}
