package glcube

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/solarlune/glcube/gfx"
)

// UniformMode selects how a Program uploads its projection, view and model matrices.
type UniformMode int

const (
	// UniformCalls uploads each matrix with its own UniformMatrix4fv call.
	UniformCalls UniformMode = iota
	// UniformBlock writes each matrix into a uniform buffer backing the shader's "MVP" uniform block.
	UniformBlock
)

func (m UniformMode) String() string {
	switch m {
	case UniformCalls:
		return "calls"
	case UniformBlock:
		return "block"
	}
	return fmt.Sprintf("UniformMode(%d)", int(m))
}

// ParseUniformMode parses the names returned by UniformMode.String.
func ParseUniformMode(name string) (UniformMode, error) {
	switch name {
	case "calls", "uniforms":
		return UniformCalls, nil
	case "block", "ubo":
		return UniformBlock, nil
	}
	return 0, fmt.Errorf("unknown uniform mode %q", name)
}

// ErrNoUniformBlock is returned when a Program is created in UniformBlock mode from shaders that don't declare
// an active "MVP" block with proj, view and model members.
var ErrNoUniformBlock = errors.New("glcube: shader has no usable MVP uniform block")

// ShaderError reports a shader compile or program link failure, along with every info log the driver produced.
type ShaderError struct {
	Program     string // name of the ShaderSource
	Stage       string // "vertex", "fragment" or "link"
	Log         string // program info log, for link failures
	VertexLog   string
	FragmentLog string
}

func (err *ShaderError) Error() string {
	switch err.Stage {
	case "link":
		return fmt.Sprintf("glcube: linking shader program %q failed: %s", err.Program, firstLine(err.Log))
	case "vertex":
		return fmt.Sprintf("glcube: compiling vertex shader of %q failed: %s", err.Program, firstLine(err.VertexLog))
	}
	return fmt.Sprintf("glcube: compiling %s shader of %q failed: %s", err.Stage, err.Program, firstLine(err.FragmentLog))
}

// ProgramOptions configures NewProgram. The zero value (or nil) uploads matrices with individual uniform calls.
type ProgramOptions struct {
	Uniforms UniformMode
	// Minify runs both shader stages through MinifyShader before compiling.
	Minify bool
	// Logger receives compile / link diagnostics. slog.Default() is used if it's nil.
	Logger *slog.Logger
}

type uniformBlock struct {
	buffer  gfx.Buffer
	size    int
	offsets [3]int // proj, view, model
}

// Program is a linked vertex + fragment shader pair along with the attribute and uniform locations it uses.
// A Program is created once at startup and shared by reference with everything that renders through it.
type Program struct {
	ctx    gfx.Context
	handle gfx.Program
	name   string
	mode   UniformMode
	logger *slog.Logger

	aPosition gfx.Attrib
	aTexCoord gfx.Attrib
	aColor    gfx.Attrib

	uProj    gfx.Uniform
	uView    gfx.Uniform
	uModel   gfx.Uniform
	uSampler gfx.Uniform
	uTint    gfx.Uniform

	block *uniformBlock

	locations map[string]gfx.Uniform
}

// NewProgram compiles and links the provided shader pair and resolves the locations of the built-in attribute and
// uniform names. Both stages are always compiled and checked; on failure every GL object created so far is deleted,
// the info logs are logged, and a *ShaderError is returned.
func NewProgram(ctx gfx.Context, src ShaderSource, opts *ProgramOptions) (*Program, error) {

	if opts == nil {
		opts = &ProgramOptions{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("program", src.Name)

	vertexSrc, fragmentSrc := src.Vertex, src.Fragment
	if opts.Minify {
		vertexSrc, fragmentSrc = MinifyShader(vertexSrc), MinifyShader(fragmentSrc)
	}

	vs, vsOK := compileShader(ctx, gfx.VERTEX_SHADER, vertexSrc)
	fs, fsOK := compileShader(ctx, gfx.FRAGMENT_SHADER, fragmentSrc)

	if !vsOK || !fsOK {
		err := &ShaderError{
			Program:     src.Name,
			Stage:       "vertex",
			VertexLog:   ctx.GetShaderInfoLog(vs),
			FragmentLog: ctx.GetShaderInfoLog(fs),
		}
		if vsOK {
			err.Stage = "fragment"
		}
		logger.Error("error compiling shader", "stage", err.Stage, "vertexLog", err.VertexLog, "fragmentLog", err.FragmentLog)
		ctx.DeleteShader(vs)
		ctx.DeleteShader(fs)
		return nil, err
	}

	handle := ctx.CreateProgram()
	ctx.AttachShader(handle, vs)
	ctx.AttachShader(handle, fs)
	ctx.LinkProgram(handle)

	if ctx.GetProgrami(handle, gfx.LINK_STATUS) == gfx.FALSE {
		err := &ShaderError{
			Program:     src.Name,
			Stage:       "link",
			Log:         ctx.GetProgramInfoLog(handle),
			VertexLog:   ctx.GetShaderInfoLog(vs),
			FragmentLog: ctx.GetShaderInfoLog(fs),
		}
		logger.Error("error linking shader program", "log", err.Log, "vertexLog", err.VertexLog, "fragmentLog", err.FragmentLog)
		ctx.DeleteProgram(handle)
		ctx.DeleteShader(vs)
		ctx.DeleteShader(fs)
		return nil, err
	}

	ctx.DetachShader(handle, vs)
	ctx.DetachShader(handle, fs)
	ctx.DeleteShader(vs)
	ctx.DeleteShader(fs)

	program := &Program{
		ctx:       ctx,
		handle:    handle,
		name:      src.Name,
		mode:      opts.Uniforms,
		logger:    logger,
		locations: map[string]gfx.Uniform{},
	}

	program.aPosition = ctx.GetAttribLocation(handle, AttribPosition)
	program.aTexCoord = ctx.GetAttribLocation(handle, AttribTexCoord)
	program.aColor = ctx.GetAttribLocation(handle, AttribColor)

	program.uProj = program.lookup(UniformProjection)
	program.uView = program.lookup(UniformView)
	program.uModel = program.lookup(UniformModel)
	program.uSampler = program.lookup(UniformSampler)
	program.uTint = program.lookup(UniformTint)

	if opts.Uniforms == UniformBlock {
		if err := program.initBlock(); err != nil {
			logger.Error("error setting up uniform block", "error", err)
			ctx.DeleteProgram(handle)
			return nil, err
		}
	}

	logger.Debug("shader program linked", "handle", handle, "uniforms", opts.Uniforms.String())

	return program, nil

}

func compileShader(ctx gfx.Context, kind gfx.Enum, src string) (gfx.Shader, bool) {
	s := ctx.CreateShader(kind)
	ctx.ShaderSource(s, src)
	ctx.CompileShader(s)
	return s, ctx.GetShaderi(s, gfx.COMPILE_STATUS) != gfx.FALSE
}

func (program *Program) initBlock() error {

	ctx := program.ctx

	index := ctx.GetUniformBlockIndex(program.handle, UniformBlockMVP)
	if index == gfx.INVALID_INDEX {
		return ErrNoUniformBlock
	}

	ctx.UniformBlockBinding(program.handle, index, UniformBlockBinding)

	size := ctx.GetActiveUniformBlocki(program.handle, index, gfx.UNIFORM_BLOCK_DATA_SIZE)

	indices := ctx.GetUniformIndices(program.handle, []string{BlockProjection, BlockView, BlockModel})
	if len(indices) != 3 {
		return ErrNoUniformBlock
	}
	for i, idx := range indices {
		if idx == gfx.INVALID_INDEX {
			return fmt.Errorf("%w: member %q missing", ErrNoUniformBlock, []string{BlockProjection, BlockView, BlockModel}[i])
		}
	}

	block := &uniformBlock{size: size}
	for i, offset := range ctx.GetActiveUniformsi(program.handle, indices, gfx.UNIFORM_OFFSET) {
		if offset < 0 || int(offset)+64 > size {
			return fmt.Errorf("%w: member offset %d outside block of %d bytes", ErrNoUniformBlock, offset, size)
		}
		block.offsets[i] = int(offset)
	}

	block.buffer = ctx.CreateBuffer()
	ctx.BindBuffer(gfx.UNIFORM_BUFFER, block.buffer)
	ctx.BufferInit(gfx.UNIFORM_BUFFER, size, gfx.DYNAMIC_DRAW)
	ctx.BindBufferBase(gfx.UNIFORM_BUFFER, UniformBlockBinding, block.buffer)

	program.block = block

	return nil

}

// Handle returns the underlying GL program object.
func (program *Program) Handle() gfx.Program { return program.handle }

// Name returns the name of the ShaderSource the Program was built from.
func (program *Program) Name() string { return program.name }

// Mode returns how the Program uploads its matrices.
func (program *Program) Mode() UniformMode { return program.mode }

// Use makes the Program the active one. In UniformBlock mode it also re-attaches the Program's uniform buffer to the block's
// binding point, in case another Program claimed it in the meantime.
func (program *Program) Use() {
	program.ctx.UseProgram(program.handle)
	if program.block != nil {
		program.ctx.BindBufferBase(gfx.UNIFORM_BUFFER, UniformBlockBinding, program.block.buffer)
	}
}

func (program *Program) lookup(name string) gfx.Uniform {
	if loc, ok := program.locations[name]; ok {
		return loc
	}
	loc := program.ctx.GetUniformLocation(program.handle, name)
	program.locations[name] = loc
	return loc
}

// UniformLocation returns the location of the named uniform and whether it's active in the program. Names that don't
// exist (or that the driver optimized away) aren't an error; they simply yield an invalid location.
func (program *Program) UniformLocation(name string) (gfx.Uniform, bool) {
	loc := program.lookup(name)
	return loc, loc.Valid()
}

// AttribLocation returns the slot of the named vertex attribute, which is invalid if the program doesn't use it.
func (program *Program) AttribLocation(name string) gfx.Attrib {
	return program.ctx.GetAttribLocation(program.handle, name)
}

func (program *Program) setAttribute(a gfx.Attrib, buffer gfx.Buffer, size int) {
	if !a.Valid() {
		return
	}
	if buffer == gfx.NoBuffer {
		program.ctx.DisableVertexAttribArray(a)
		return
	}
	program.ctx.BindBuffer(gfx.ARRAY_BUFFER, buffer)
	program.ctx.VertexAttribPointer(a, size, gfx.FLOAT, false, 0, 0)
	program.ctx.EnableVertexAttribArray(a)
}

// SetVertexData binds a buffer of vec3 positions to the position attribute, or disables the attribute when buffer is gfx.NoBuffer.
func (program *Program) SetVertexData(buffer gfx.Buffer) {
	program.setAttribute(program.aPosition, buffer, 3)
}

// SetTextureCoordinates binds a buffer of vec2 texture coordinates, or disables the attribute when buffer is gfx.NoBuffer.
func (program *Program) SetTextureCoordinates(buffer gfx.Buffer) {
	program.setAttribute(program.aTexCoord, buffer, 2)
}

// SetColors binds a buffer of vec3 vertex colors, or disables the attribute when buffer is gfx.NoBuffer.
func (program *Program) SetColors(buffer gfx.Buffer) {
	program.setAttribute(program.aColor, buffer, 3)
}

func (program *Program) setMatrix(u gfx.Uniform, member int, m mgl32.Mat4) {
	if program.block != nil {
		program.ctx.BindBuffer(gfx.UNIFORM_BUFFER, program.block.buffer)
		program.ctx.BufferSubData(gfx.UNIFORM_BUFFER, program.block.offsets[member], gfx.F32Bytes(m[:]...))
		return
	}
	if u.Valid() {
		program.ctx.UniformMatrix4fv(u, m[:])
	}
}

// SetProjectionMatrix uploads the projection matrix.
func (program *Program) SetProjectionMatrix(m mgl32.Mat4) { program.setMatrix(program.uProj, 0, m) }

// SetViewMatrix uploads the view matrix.
func (program *Program) SetViewMatrix(m mgl32.Mat4) { program.setMatrix(program.uView, 1, m) }

// SetModelMatrix uploads the model matrix.
func (program *Program) SetModelMatrix(m mgl32.Mat4) { program.setMatrix(program.uModel, 2, m) }

// SetTexture binds a 2D texture to texture unit 0 and points the sampler uniform at it.
func (program *Program) SetTexture(texture gfx.Texture) {
	program.ctx.ActiveTexture(gfx.TEXTURE0)
	program.ctx.BindTexture(gfx.TEXTURE_2D, texture)
	if program.uSampler.Valid() {
		program.ctx.Uniform1i(program.uSampler, 0)
	}
}

// SetTint uploads the color that the fragment shader multiplies its output by.
func (program *Program) SetTint(c Color) {
	if program.uTint.Valid() {
		program.ctx.Uniform4f(program.uTint, c.R, c.G, c.B, c.A)
	}
}

// DrawIndexed draws count unsigned-short indices from the element buffer as triangles.
func (program *Program) DrawIndexed(elements gfx.Buffer, count int) {
	program.ctx.BindBuffer(gfx.ELEMENT_ARRAY_BUFFER, elements)
	program.ctx.DrawElements(gfx.TRIANGLES, count, gfx.UNSIGNED_SHORT, 0)
	program.ctx.BindBuffer(gfx.ELEMENT_ARRAY_BUFFER, gfx.NoBuffer)
}

// DrawArrays draws count vertices, starting at first, as triangles.
func (program *Program) DrawArrays(first, count int) {
	program.ctx.DrawArrays(gfx.TRIANGLES, first, count)
}

// Release deletes the GL program and its uniform buffer. The Program must not be used afterwards.
func (program *Program) Release() {
	if program.block != nil {
		program.ctx.DeleteBuffer(program.block.buffer)
		program.block = nil
	}
	program.ctx.DeleteProgram(program.handle)
	program.handle = 0
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	if s == "" {
		return "(no info log)"
	}
	return s
}
