// Package demo builds the example scenes: a flat triangle, a vertex-colored cube, textured cubes fed by individual
// matrix uniforms, and textured cubes fed by a uniform block. The examples directory wraps each one in a window.
package demo

import (
	"slices"

	"github.com/solarlune/glcube"
)

// Scene names one of the demo scenes.
type Scene string

const (
	// SceneTriangle draws one white triangle straight in clip space.
	SceneTriangle Scene = "triangle"
	// SceneColorCube draws a spinning cube with a different color on each face.
	SceneColorCube Scene = "colorcube"
	// SceneTexturedCube draws a spinning textured cube next to a bobbing one.
	SceneTexturedCube Scene = "texturedcube"
	// SceneUniformBlock is SceneTexturedCube with the matrices uploaded through a uniform buffer.
	SceneUniformBlock Scene = "uniformblock"
)

var scenes = []Scene{SceneTriangle, SceneColorCube, SceneTexturedCube, SceneUniformBlock}

// Scenes returns every scene, in the order they build on each other.
func Scenes() []Scene {
	return slices.Clone(scenes)
}

func sceneNames() []string {
	names := make([]string, len(scenes))
	for i, s := range scenes {
		names[i] = string(s)
	}
	return names
}

// Valid returns whether the Scene is one of the known scenes.
func (s Scene) Valid() bool {
	return slices.Contains(scenes, s)
}

// Textured returns whether the Scene samples a texture.
func (s Scene) Textured() bool {
	return s == SceneTexturedCube || s == SceneUniformBlock
}

// Shader returns the shader pair the Scene draws with.
func (s Scene) Shader(d glcube.Dialect, mode glcube.UniformMode) glcube.ShaderSource {
	switch s {
	case SceneTriangle:
		return glcube.FlatShader(d)
	case SceneColorCube:
		return glcube.ColorShader(d)
	}
	if s == SceneUniformBlock || mode == glcube.UniformBlock {
		return glcube.BlockShader()
	}
	return glcube.TextureShader(d)
}
