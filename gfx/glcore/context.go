// Package glcore implements gfx.Context on top of an OpenGL 3.3 core profile context through go-gl.
package glcore

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/solarlune/glcube/gfx"
)

// Context forwards gfx calls to the current OpenGL context. It must only be used from the goroutine
// (locked OS thread) that made the context current.
type Context struct {
	vao uint32
}

var _ gfx.Context = (*Context)(nil)

// New loads the GL function pointers for the current context and binds a single vertex array object, so attribute
// state behaves like it does on a WebGL1 / GLES2 context where there's always an implicit VAO.
func New() (*Context, error) {

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("glcore: loading OpenGL functions: %w", err)
	}

	ctx := &Context{}
	gl.GenVertexArrays(1, &ctx.vao)
	gl.BindVertexArray(ctx.vao)

	return ctx, nil

}

// Version returns the GL_VERSION string reported by the driver.
func (ctx *Context) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Release deletes the default vertex array object.
func (ctx *Context) Release() {
	gl.BindVertexArray(0)
	gl.DeleteVertexArrays(1, &ctx.vao)
	ctx.vao = 0
}

func (ctx *Context) CreateShader(kind gfx.Enum) gfx.Shader {
	return gfx.Shader(gl.CreateShader(uint32(kind)))
}

func (ctx *Context) ShaderSource(s gfx.Shader, src string) {
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(uint32(s), 1, csrc, nil)
}

func (ctx *Context) CompileShader(s gfx.Shader) { gl.CompileShader(uint32(s)) }

func (ctx *Context) GetShaderi(s gfx.Shader, pname gfx.Enum) int {
	var v int32
	gl.GetShaderiv(uint32(s), uint32(pname), &v)
	return int(v)
}

func (ctx *Context) GetShaderInfoLog(s gfx.Shader) string {
	var n int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &n)
	if n <= 1 {
		return ""
	}
	log := make([]byte, n)
	gl.GetShaderInfoLog(uint32(s), n, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (ctx *Context) DeleteShader(s gfx.Shader) { gl.DeleteShader(uint32(s)) }

func (ctx *Context) CreateProgram() gfx.Program { return gfx.Program(gl.CreateProgram()) }

func (ctx *Context) AttachShader(p gfx.Program, s gfx.Shader) { gl.AttachShader(uint32(p), uint32(s)) }

func (ctx *Context) DetachShader(p gfx.Program, s gfx.Shader) { gl.DetachShader(uint32(p), uint32(s)) }

func (ctx *Context) LinkProgram(p gfx.Program) { gl.LinkProgram(uint32(p)) }

func (ctx *Context) GetProgrami(p gfx.Program, pname gfx.Enum) int {
	var v int32
	gl.GetProgramiv(uint32(p), uint32(pname), &v)
	return int(v)
}

func (ctx *Context) GetProgramInfoLog(p gfx.Program) string {
	var n int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &n)
	if n <= 1 {
		return ""
	}
	log := make([]byte, n)
	gl.GetProgramInfoLog(uint32(p), n, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (ctx *Context) UseProgram(p gfx.Program) { gl.UseProgram(uint32(p)) }

func (ctx *Context) DeleteProgram(p gfx.Program) { gl.DeleteProgram(uint32(p)) }

func (ctx *Context) GetAttribLocation(p gfx.Program, name string) gfx.Attrib {
	return gfx.Attrib(gl.GetAttribLocation(uint32(p), gl.Str(name+"\x00")))
}

func (ctx *Context) GetUniformLocation(p gfx.Program, name string) gfx.Uniform {
	return gfx.Uniform(gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00")))
}

func (ctx *Context) GetUniformBlockIndex(p gfx.Program, name string) uint32 {
	return gl.GetUniformBlockIndex(uint32(p), gl.Str(name+"\x00"))
}

func (ctx *Context) UniformBlockBinding(p gfx.Program, block, binding uint32) {
	gl.UniformBlockBinding(uint32(p), block, binding)
}

func (ctx *Context) GetActiveUniformBlocki(p gfx.Program, block uint32, pname gfx.Enum) int {
	var v int32
	gl.GetActiveUniformBlockiv(uint32(p), block, uint32(pname), &v)
	return int(v)
}

func (ctx *Context) GetUniformIndices(p gfx.Program, names []string) []uint32 {
	if len(names) == 0 {
		return nil
	}
	terminated := make([]string, len(names))
	for i, n := range names {
		terminated[i] = n + "\x00"
	}
	cnames, free := gl.Strs(terminated...)
	defer free()
	indices := make([]uint32, len(names))
	gl.GetUniformIndices(uint32(p), int32(len(names)), cnames, &indices[0])
	return indices
}

func (ctx *Context) GetActiveUniformsi(p gfx.Program, indices []uint32, pname gfx.Enum) []int32 {
	if len(indices) == 0 {
		return nil
	}
	params := make([]int32, len(indices))
	gl.GetActiveUniformsiv(uint32(p), int32(len(indices)), &indices[0], uint32(pname), &params[0])
	return params
}

func (ctx *Context) CreateBuffer() gfx.Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return gfx.Buffer(b)
}

func (ctx *Context) BindBuffer(target gfx.Enum, b gfx.Buffer) { gl.BindBuffer(uint32(target), uint32(b)) }

func (ctx *Context) BufferData(target gfx.Enum, data []byte, usage gfx.Enum) {
	if len(data) == 0 {
		gl.BufferData(uint32(target), 0, nil, uint32(usage))
		return
	}
	gl.BufferData(uint32(target), len(data), gl.Ptr(data), uint32(usage))
}

func (ctx *Context) BufferInit(target gfx.Enum, size int, usage gfx.Enum) {
	gl.BufferData(uint32(target), size, nil, uint32(usage))
}

func (ctx *Context) BufferSubData(target gfx.Enum, offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	gl.BufferSubData(uint32(target), offset, len(data), gl.Ptr(data))
}

func (ctx *Context) BindBufferBase(target gfx.Enum, index uint32, b gfx.Buffer) {
	gl.BindBufferBase(uint32(target), index, uint32(b))
}

func (ctx *Context) DeleteBuffer(b gfx.Buffer) {
	v := uint32(b)
	gl.DeleteBuffers(1, &v)
}

func (ctx *Context) VertexAttribPointer(a gfx.Attrib, size int, ty gfx.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointerWithOffset(uint32(a), int32(size), uint32(ty), normalized, int32(stride), uintptr(offset))
}

func (ctx *Context) EnableVertexAttribArray(a gfx.Attrib) { gl.EnableVertexAttribArray(uint32(a)) }

func (ctx *Context) DisableVertexAttribArray(a gfx.Attrib) { gl.DisableVertexAttribArray(uint32(a)) }

func (ctx *Context) UniformMatrix4fv(u gfx.Uniform, m []float32) {
	if len(m) < 16 {
		return
	}
	gl.UniformMatrix4fv(int32(u), int32(len(m)/16), false, &m[0])
}

func (ctx *Context) Uniform1i(u gfx.Uniform, v int) { gl.Uniform1i(int32(u), int32(v)) }

func (ctx *Context) Uniform4f(u gfx.Uniform, v0, v1, v2, v3 float32) {
	gl.Uniform4f(int32(u), v0, v1, v2, v3)
}

func (ctx *Context) CreateTexture() gfx.Texture {
	var t uint32
	gl.GenTextures(1, &t)
	return gfx.Texture(t)
}

func (ctx *Context) ActiveTexture(unit gfx.Enum) { gl.ActiveTexture(uint32(unit)) }

func (ctx *Context) BindTexture(target gfx.Enum, t gfx.Texture) { gl.BindTexture(uint32(target), uint32(t)) }

func (ctx *Context) TexImage2D(target gfx.Enum, level, width, height int, format, ty gfx.Enum, pix []byte) {
	var ptr unsafe.Pointer
	if len(pix) > 0 {
		ptr = gl.Ptr(pix)
	}
	gl.TexImage2D(uint32(target), int32(level), int32(format), int32(width), int32(height), 0, uint32(format), uint32(ty), ptr)
}

func (ctx *Context) TexParameteri(target, pname gfx.Enum, param int) {
	gl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (ctx *Context) GenerateMipmap(target gfx.Enum) { gl.GenerateMipmap(uint32(target)) }

func (ctx *Context) DeleteTexture(t gfx.Texture) {
	v := uint32(t)
	gl.DeleteTextures(1, &v)
}

func (ctx *Context) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (ctx *Context) Clear(mask gfx.Enum) { gl.Clear(uint32(mask)) }

func (ctx *Context) Enable(capability gfx.Enum) { gl.Enable(uint32(capability)) }

func (ctx *Context) DepthFunc(fn gfx.Enum) { gl.DepthFunc(uint32(fn)) }

func (ctx *Context) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (ctx *Context) DrawArrays(mode gfx.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (ctx *Context) DrawElements(mode gfx.Enum, count int, ty gfx.Enum, offset int) {
	gl.DrawElementsWithOffset(uint32(mode), int32(count), uint32(ty), uintptr(offset))
}
