package colors

// package colors contains functions to quickly and easily generate glcube.Color instances by name (i.e. "White()", "Blue()", "CornflowerBlue()", etc).
// Every call returns a fresh value, so callers are free to modify what they get.

import (
	"strings"

	"github.com/solarlune/glcube"
)

// Transparent generates a glcube.Color instance of the provided name.
func Transparent() glcube.Color {
	return glcube.NewColor(0, 0, 0, 0)
}

// White generates a glcube.Color instance of the provided name.
func White() glcube.Color {
	return glcube.NewColor(1, 1, 1, 1)
}

// Black generates a glcube.Color instance of the provided name.
func Black() glcube.Color {
	return glcube.NewColor(0, 0, 0, 1)
}

// Gray generates a glcube.Color instance of the provided name.
func Gray() glcube.Color {
	return glcube.NewColor(0.5, 0.5, 0.5, 1)
}

// DarkGray generates a glcube.Color instance of the provided name.
func DarkGray() glcube.Color {
	return glcube.NewColor(0.2, 0.2, 0.2, 1)
}

// Red generates a glcube.Color instance of the provided name.
func Red() glcube.Color {
	return glcube.NewColor(1, 0, 0, 1)
}

// Orange generates a glcube.Color instance of the provided name.
func Orange() glcube.Color {
	return glcube.NewColor(1, 0.5, 0, 1)
}

// Yellow generates a glcube.Color instance of the provided name.
func Yellow() glcube.Color {
	return glcube.NewColor(1, 1, 0, 1)
}

// Green generates a glcube.Color instance of the provided name.
func Green() glcube.Color {
	return glcube.NewColor(0, 1, 0, 1)
}

// Blue generates a glcube.Color instance of the provided name.
func Blue() glcube.Color {
	return glcube.NewColor(0, 0, 1, 1)
}

// CornflowerBlue generates a glcube.Color instance of the provided name. This is the default clear color of the demos.
func CornflowerBlue() glcube.Color {
	return glcube.NewColor(0.39, 0.58, 0.92, 1)
}

// SkyBlue generates a glcube.Color instance of the provided name.
func SkyBlue() glcube.Color {
	return glcube.NewColor(0, 0.5, 1, 1)
}

// Purple generates a glcube.Color instance of the provided name.
func Purple() glcube.Color {
	return glcube.NewColor(1, 0, 1, 1)
}

// ByName returns the named color ("red", "cornflowerBlue", ...) and whether the name is known. Names are matched
// without regard to case.
func ByName(name string) (glcube.Color, bool) {
	if fn, ok := named[strings.ToLower(name)]; ok {
		return fn(), true
	}
	return glcube.Color{}, false
}

var named = map[string]func() glcube.Color{
	"transparent":    Transparent,
	"white":          White,
	"black":          Black,
	"gray":           Gray,
	"darkgray":       DarkGray,
	"red":            Red,
	"orange":         Orange,
	"yellow":         Yellow,
	"green":          Green,
	"blue":           Blue,
	"cornflowerblue": CornflowerBlue,
	"skyblue":        SkyBlue,
	"purple":         Purple,
}
