package glcube

import (
	"fmt"
	"strings"
)

// Dialect selects which flavor of GLSL the built-in shaders are written in.
type Dialect int

const (
	// DialectGLSL100 is the GLSL ES 1.00 dialect of WebGL1 / GLES2 contexts (attribute / varying / gl_FragColor).
	DialectGLSL100 Dialect = iota
	// DialectGLSL330 is desktop GLSL 3.30 core (in / out, with layout-qualified attribute locations).
	DialectGLSL330
)

func (d Dialect) String() string {
	switch d {
	case DialectGLSL100:
		return "glsl100"
	case DialectGLSL330:
		return "glsl330"
	}
	return fmt.Sprintf("Dialect(%d)", int(d))
}

// ParseDialect parses the names returned by Dialect.String.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "glsl100", "100", "webgl1", "gles2":
		return DialectGLSL100, nil
	case "glsl330", "330", "core":
		return DialectGLSL330, nil
	}
	return 0, fmt.Errorf("unknown shader dialect %q", name)
}

// Fixed attribute slots shared by every built-in shader of the GLSL 3.30 dialect.
const (
	AttribSlotPosition = 0
	AttribSlotTexCoord = 1
	AttribSlotColor    = 1
)

// Names used by the built-in shaders. Programs resolve these once, after linking.
const (
	AttribPosition = "aPosition"
	AttribTexCoord = "aTextureCoord"
	AttribColor    = "aColor"

	UniformProjection = "uMatProj"
	UniformView       = "uMatView"
	UniformModel      = "uMatModel"
	UniformSampler    = "uSampler"
	UniformTint       = "uTint"

	// UniformBlockMVP is the uniform block used by BlockShader. Its members are named by the Block* constants.
	UniformBlockMVP = "MVP"
	BlockProjection = "proj"
	BlockView       = "view"
	BlockModel      = "model"

	// UniformBlockBinding is the uniform-buffer binding point the MVP block is attached to.
	UniformBlockBinding = 0
)

// ShaderSource is a vertex and fragment shader pair.
type ShaderSource struct {
	Name     string
	Vertex   string
	Fragment string
}

// FlatShader draws positions in clip space in plain white; it's the first triangle of the progression.
func FlatShader(d Dialect) ShaderSource {
	if d == DialectGLSL330 {
		return ShaderSource{
			Name: "flat",
			Vertex: `#version 330 core
layout(location = 0) in vec3 aPosition;

void main() {
    gl_Position = vec4(aPosition, 1.0);
}`,
			Fragment: `#version 330 core
out vec4 fragColor;

void main() {
    fragColor = vec4(1.0, 1.0, 1.0, 1.0);
}`,
		}
	}
	return ShaderSource{
		Name: "flat",
		Vertex: `#version 100
attribute vec3 aPosition;

void main() {
    gl_Position = vec4(aPosition, 1.0);
}`,
		Fragment: `#version 100
precision mediump float;

void main() {
    gl_FragColor = vec4(1.0, 1.0, 1.0, 1.0);
}`,
	}
}

// ColorShader transforms positions by the projection, view and model matrices and interpolates a per-vertex color.
func ColorShader(d Dialect) ShaderSource {
	if d == DialectGLSL330 {
		return ShaderSource{
			Name: "color",
			Vertex: `#version 330 core
layout(location = 0) in vec3 aPosition;
layout(location = 1) in vec3 aColor;

out vec3 vColor;

uniform mat4 uMatProj;
uniform mat4 uMatView;
uniform mat4 uMatModel;

void main() {
    gl_Position = uMatProj * uMatView * uMatModel * vec4(aPosition, 1.0);
    vColor = aColor;
}`,
			Fragment: `#version 330 core
in vec3 vColor;

out vec4 fragColor;

uniform vec4 uTint;

void main() {
    fragColor = vec4(vColor, 1.0) * uTint;
}`,
		}
	}
	return ShaderSource{
		Name: "color",
		Vertex: `#version 100
attribute vec3 aPosition;
attribute vec3 aColor;

varying lowp vec3 vColor;

uniform mat4 uMatProj;
uniform mat4 uMatView;
uniform mat4 uMatModel;

void main() {
    gl_Position = uMatProj * uMatView * uMatModel * vec4(aPosition, 1.0);
    vColor = aColor;
}`,
		Fragment: `#version 100
precision mediump float;

varying lowp vec3 vColor;

uniform vec4 uTint;

void main() {
    gl_FragColor = vec4(vColor, 1.0) * uTint;
}`,
	}
}

// TextureShader transforms positions like ColorShader and samples a 2D texture bound to unit 0.
func TextureShader(d Dialect) ShaderSource {
	if d == DialectGLSL330 {
		return ShaderSource{
			Name: "texture",
			Vertex: `#version 330 core
layout(location = 0) in vec3 aPosition;
layout(location = 1) in vec2 aTextureCoord;

out vec2 vTextureCoord;

uniform mat4 uMatProj;
uniform mat4 uMatView;
uniform mat4 uMatModel;

void main() {
    gl_Position = uMatProj * uMatView * uMatModel * vec4(aPosition, 1.0);
    vTextureCoord = aTextureCoord;
}`,
			Fragment: `#version 330 core
in vec2 vTextureCoord;

out vec4 fragColor;

uniform sampler2D uSampler;
uniform vec4 uTint;

void main() {
    fragColor = texture(uSampler, vTextureCoord) * uTint;
}`,
		}
	}
	return ShaderSource{
		Name: "texture",
		Vertex: `#version 100
attribute vec3 aPosition;
attribute vec2 aTextureCoord;

varying highp vec2 vTextureCoord;

uniform mat4 uMatProj;
uniform mat4 uMatView;
uniform mat4 uMatModel;

void main() {
    mat4 mvp = uMatProj * uMatView * uMatModel;

    gl_Position = mvp * vec4(aPosition, 1.0);
    vTextureCoord = aTextureCoord;
}`,
		Fragment: `#version 100
precision mediump float;

varying highp vec2 vTextureCoord;

uniform sampler2D uSampler;
uniform vec4 uTint;

void main() {
    gl_FragColor = texture2D(uSampler, vTextureCoord) * uTint;
}`,
	}
}

// BlockShader is TextureShader with the three matrices fed from the "MVP" uniform block (std140, binding point 0)
// instead of individual uniforms. Uniform blocks need GLSL 3.30, so there's no GLSL 1.00 variant.
func BlockShader() ShaderSource {
	return ShaderSource{
		Name: "block",
		Vertex: `#version 330 core
layout(location = 0) in vec3 aPosition;
layout(location = 1) in vec2 aTextureCoord;

layout(std140) uniform MVP {
    mat4 proj;
    mat4 view;
    mat4 model;
};

out vec2 vTextureCoord;

void main() {
    gl_Position = proj * view * model * vec4(aPosition, 1.0);
    vTextureCoord = aTextureCoord;
}`,
		Fragment: `#version 330 core
in vec2 vTextureCoord;

out vec4 fragColor;

uniform sampler2D uSampler;
uniform vec4 uTint;

void main() {
    fragColor = texture(uSampler, vTextureCoord) * uTint;
}`,
	}
}

// MinifyShader strips comments, indentation and blank lines from GLSL source. Preprocessor directives
// stay on lines of their own (they're line-terminated), everything else is joined with single newlines.
func MinifyShader(src string) string {

	var out []string

	for _, line := range strings.Split(src, "\n") {

		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}

		line = strings.Join(strings.Fields(line), " ")

		if line == "" {
			continue
		}

		out = append(out, line)

	}

	return strings.Join(out, "\n")

}
