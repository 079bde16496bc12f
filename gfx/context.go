// Package gfx describes the slice of the OpenGL (WebGL2-class) API that glcube renders through.
// Backends implement Context; glcore talks to a real driver, while gfxtest records calls for tests.
package gfx

// Object handles. Zero is never a valid object name, like in GL.
type (
	Buffer  uint32
	Shader  uint32
	Program uint32
	Texture uint32
)

// NoBuffer is passed to attribute setters to disable the attribute array instead of binding a buffer.
const NoBuffer Buffer = 0

// Attrib is a vertex attribute slot. A negative value means the attribute isn't active in the program.
type Attrib int32

// Valid reports whether the attribute was found in the linked program.
func (a Attrib) Valid() bool { return a >= 0 }

// Uniform is a uniform location. A negative value means the uniform isn't active in the program;
// uploading to an invalid location is a no-op, mirroring GL's handling of location -1.
type Uniform int32

// Valid reports whether the uniform was found in the linked program.
func (u Uniform) Valid() bool { return u >= 0 }

// Context is the graphics API used by the renderer. Calls must all happen on the goroutine that owns the
// underlying GL context.
type Context interface {
	CreateShader(kind Enum) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	GetShaderi(s Shader, pname Enum) int
	GetShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	DetachShader(p Program, s Shader)
	LinkProgram(p Program)
	GetProgrami(p Program, pname Enum) int
	GetProgramInfoLog(p Program) string
	UseProgram(p Program)
	DeleteProgram(p Program)

	GetAttribLocation(p Program, name string) Attrib
	GetUniformLocation(p Program, name string) Uniform

	// GetUniformBlockIndex returns INVALID_INDEX when the block isn't active.
	GetUniformBlockIndex(p Program, name string) uint32
	UniformBlockBinding(p Program, block, binding uint32)
	GetActiveUniformBlocki(p Program, block uint32, pname Enum) int
	// GetUniformIndices returns INVALID_INDEX for every name that isn't active.
	GetUniformIndices(p Program, names []string) []uint32
	GetActiveUniformsi(p Program, indices []uint32, pname Enum) []int32

	CreateBuffer() Buffer
	BindBuffer(target Enum, b Buffer)
	BufferData(target Enum, data []byte, usage Enum)
	BufferInit(target Enum, size int, usage Enum)
	BufferSubData(target Enum, offset int, data []byte)
	BindBufferBase(target Enum, index uint32, b Buffer)
	DeleteBuffer(b Buffer)

	VertexAttribPointer(a Attrib, size int, ty Enum, normalized bool, stride, offset int)
	EnableVertexAttribArray(a Attrib)
	DisableVertexAttribArray(a Attrib)

	UniformMatrix4fv(u Uniform, m []float32)
	Uniform1i(u Uniform, v int)
	Uniform4f(u Uniform, v0, v1, v2, v3 float32)

	CreateTexture() Texture
	ActiveTexture(unit Enum)
	BindTexture(target Enum, t Texture)
	TexImage2D(target Enum, level, width, height int, format, ty Enum, pix []byte)
	TexParameteri(target, pname Enum, param int)
	GenerateMipmap(target Enum)
	DeleteTexture(t Texture)

	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	Enable(capability Enum)
	DepthFunc(fn Enum)
	Viewport(x, y, width, height int)

	DrawArrays(mode Enum, first, count int)
	DrawElements(mode Enum, count int, ty Enum, offset int)
}
