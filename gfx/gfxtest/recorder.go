// Package gfxtest provides an in-memory gfx.Context for tests. It keeps enough GL state (object lifetimes,
// bindings, buffer contents, uniform values and draw calls) to check what a renderer asked the GPU to do,
// and it can be told to fail shader compilation or program linking.
package gfxtest

import (
	"fmt"
	"strings"

	"github.com/solarlune/glcube/gfx"
)

// AttribState is the vertex attribute configuration captured at draw time.
type AttribState struct {
	Buffer  gfx.Buffer
	Size    int
	Type    gfx.Enum
	Enabled bool
}

// Draw is one recorded DrawArrays or DrawElements call.
type Draw struct {
	Mode     gfx.Enum
	First    int
	Count    int
	Type     gfx.Enum // zero for DrawArrays
	Offset   int
	Indexed  bool
	Program  gfx.Program
	Elements gfx.Buffer
	Texture  gfx.Texture // bound to TEXTURE0
	Attribs  map[gfx.Attrib]AttribState
}

type shaderObject struct {
	kind     gfx.Enum
	source   string
	compiled bool
	log      string
	deleted  bool
}

type programObject struct {
	shaders  []gfx.Shader
	linked   bool
	log      string
	deleted  bool
	layout   *layout
	values   map[gfx.Uniform][]float32
	bindings map[uint32]uint32 // block index -> binding point
}

type bufferObject struct {
	data    []byte
	deleted bool
}

// TextureObject is the recorded state of a texture.
type TextureObject struct {
	Width, Height int
	Format        gfx.Enum
	Pix           []byte
	Params        map[gfx.Enum]int
	Mipmapped     bool
	deleted       bool
}

// Recorder implements gfx.Context without a GPU. The zero value isn't usable; create one with NewRecorder.
type Recorder struct {
	// CompileErrors maps a shader kind (VERTEX_SHADER / FRAGMENT_SHADER) to the info log a failed compile
	// should report. Shaders of a kind listed here never compile.
	CompileErrors map[gfx.Enum]string
	// LinkError, when set, makes every LinkProgram call fail with this info log.
	LinkError string

	Calls  []string
	Draws  []Draw
	Errors []string // misuse that a real driver would report through glGetError

	ClearColorValue [4]float32
	Enabled         map[gfx.Enum]bool
	DepthFunction   gfx.Enum
	ViewportRect    [4]int
	CurrentProgram  gfx.Program
	ActiveUnit      gfx.Enum

	nextName      uint32
	shaders       map[gfx.Shader]*shaderObject
	programs      map[gfx.Program]*programObject
	buffers       map[gfx.Buffer]*bufferObject
	textures      map[gfx.Texture]*TextureObject
	bound         map[gfx.Enum]gfx.Buffer
	baseBindings  map[uint32]gfx.Buffer
	attribs       map[gfx.Attrib]AttribState
	unitTextures  map[gfx.Enum]gfx.Texture
	boundTextures map[gfx.Enum]gfx.Texture // by target, for the active unit
}

var _ gfx.Context = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		CompileErrors: map[gfx.Enum]string{},
		Enabled:       map[gfx.Enum]bool{},
		ActiveUnit:    gfx.TEXTURE0,
		shaders:       map[gfx.Shader]*shaderObject{},
		programs:      map[gfx.Program]*programObject{},
		buffers:       map[gfx.Buffer]*bufferObject{},
		textures:      map[gfx.Texture]*TextureObject{},
		bound:         map[gfx.Enum]gfx.Buffer{},
		baseBindings:  map[uint32]gfx.Buffer{},
		attribs:       map[gfx.Attrib]AttribState{},
		unitTextures:  map[gfx.Enum]gfx.Texture{},
		boundTextures: map[gfx.Enum]gfx.Texture{},
	}
}

func (r *Recorder) record(name string, args ...any) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	r.Calls = append(r.Calls, name+"("+strings.Join(parts, ", ")+")")
}

func (r *Recorder) fail(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Recorder) name() uint32 {
	r.nextName++
	return r.nextName
}

// Count returns how many recorded calls were made to the named Context method.
func (r *Recorder) Count(method string) int {
	n := 0
	for _, c := range r.Calls {
		if strings.HasPrefix(c, method+"(") {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls, draws and errors while keeping all object state.
func (r *Recorder) Reset() {
	r.Calls = nil
	r.Draws = nil
	r.Errors = nil
}

// LiveObjects returns the number of shaders, programs, buffers and textures that were created and not yet deleted.
func (r *Recorder) LiveObjects() (shaders, programs, buffers, textures int) {
	for _, s := range r.shaders {
		if !s.deleted {
			shaders++
		}
	}
	for _, p := range r.programs {
		if !p.deleted {
			programs++
		}
	}
	for _, b := range r.buffers {
		if !b.deleted {
			buffers++
		}
	}
	for _, t := range r.textures {
		if !t.deleted {
			textures++
		}
	}
	return
}

// BufferContents returns the bytes stored in b, or nil if b was never created.
func (r *Recorder) BufferContents(b gfx.Buffer) []byte {
	if obj, ok := r.buffers[b]; ok {
		return obj.data
	}
	return nil
}

// BufferDeleted reports whether b was created and later deleted.
func (r *Recorder) BufferDeleted(b gfx.Buffer) bool {
	obj, ok := r.buffers[b]
	return ok && obj.deleted
}

// BaseBinding returns the buffer bound to an indexed binding point (BindBufferBase).
func (r *Recorder) BaseBinding(index uint32) gfx.Buffer { return r.baseBindings[index] }

// Attrib returns the current state of a vertex attribute slot.
func (r *Recorder) Attrib(a gfx.Attrib) AttribState { return r.attribs[a] }

// TextureState returns the recorded state of t, or nil if t was never created.
func (r *Recorder) TextureState(t gfx.Texture) *TextureObject { return r.textures[t] }

// BoundTexture returns the texture bound to TEXTURE_2D on the given unit.
func (r *Recorder) BoundTexture(unit gfx.Enum) gfx.Texture { return r.unitTextures[unit] }

// ProgramLinked reports whether p exists, is linked and hasn't been deleted.
func (r *Recorder) ProgramLinked(p gfx.Program) bool {
	obj, ok := r.programs[p]
	return ok && obj.linked && !obj.deleted
}

// UniformValue returns the last value uploaded to the named uniform of program p, or nil.
func (r *Recorder) UniformValue(p gfx.Program, name string) []float32 {
	obj, ok := r.programs[p]
	if !ok || obj.layout == nil {
		return nil
	}
	loc, ok := obj.layout.uniformLocations[name]
	if !ok {
		return nil
	}
	return obj.values[gfx.Uniform(loc)]
}

// BlockBinding returns the binding point assigned to a uniform block of program p.
func (r *Recorder) BlockBinding(p gfx.Program, block uint32) (uint32, bool) {
	obj, ok := r.programs[p]
	if !ok {
		return 0, false
	}
	binding, ok := obj.bindings[block]
	return binding, ok
}

func (r *Recorder) CreateShader(kind gfx.Enum) gfx.Shader {
	s := gfx.Shader(r.name())
	r.shaders[s] = &shaderObject{kind: kind}
	r.record("CreateShader", kind)
	return s
}

func (r *Recorder) ShaderSource(s gfx.Shader, src string) {
	r.record("ShaderSource", s)
	if obj, ok := r.shaders[s]; ok && !obj.deleted {
		obj.source = src
		return
	}
	r.fail("ShaderSource: invalid shader %d", s)
}

func (r *Recorder) CompileShader(s gfx.Shader) {
	r.record("CompileShader", s)
	obj, ok := r.shaders[s]
	if !ok || obj.deleted {
		r.fail("CompileShader: invalid shader %d", s)
		return
	}
	if log, failed := r.CompileErrors[obj.kind]; failed {
		obj.compiled = false
		obj.log = log
		return
	}
	if strings.TrimSpace(obj.source) == "" {
		obj.compiled = false
		obj.log = "ERROR: 0:1: '' : syntax error: empty shader source"
		return
	}
	obj.compiled = true
	obj.log = ""
}

func (r *Recorder) GetShaderi(s gfx.Shader, pname gfx.Enum) int {
	obj, ok := r.shaders[s]
	if !ok {
		r.fail("GetShaderi: invalid shader %d", s)
		return 0
	}
	switch pname {
	case gfx.COMPILE_STATUS:
		if obj.compiled {
			return gfx.TRUE
		}
		return gfx.FALSE
	case gfx.INFO_LOG_LENGTH:
		if obj.log == "" {
			return 0
		}
		return len(obj.log) + 1
	}
	r.fail("GetShaderi: unsupported pname %#x", uint32(pname))
	return 0
}

func (r *Recorder) GetShaderInfoLog(s gfx.Shader) string {
	if obj, ok := r.shaders[s]; ok {
		return obj.log
	}
	return ""
}

func (r *Recorder) DeleteShader(s gfx.Shader) {
	r.record("DeleteShader", s)
	if obj, ok := r.shaders[s]; ok {
		obj.deleted = true
	}
}

func (r *Recorder) CreateProgram() gfx.Program {
	p := gfx.Program(r.name())
	r.programs[p] = &programObject{
		values:   map[gfx.Uniform][]float32{},
		bindings: map[uint32]uint32{},
	}
	r.record("CreateProgram")
	return p
}

func (r *Recorder) program(method string, p gfx.Program) *programObject {
	obj, ok := r.programs[p]
	if !ok || obj.deleted {
		r.fail("%s: invalid program %d", method, p)
		return nil
	}
	return obj
}

func (r *Recorder) AttachShader(p gfx.Program, s gfx.Shader) {
	r.record("AttachShader", p, s)
	if obj := r.program("AttachShader", p); obj != nil {
		obj.shaders = append(obj.shaders, s)
	}
}

func (r *Recorder) DetachShader(p gfx.Program, s gfx.Shader) {
	r.record("DetachShader", p, s)
	obj := r.program("DetachShader", p)
	if obj == nil {
		return
	}
	for i, attached := range obj.shaders {
		if attached == s {
			obj.shaders = append(obj.shaders[:i], obj.shaders[i+1:]...)
			return
		}
	}
	r.fail("DetachShader: shader %d not attached to program %d", s, p)
}

func (r *Recorder) LinkProgram(p gfx.Program) {
	r.record("LinkProgram", p)
	obj := r.program("LinkProgram", p)
	if obj == nil {
		return
	}

	obj.linked = false
	obj.layout = nil

	if r.LinkError != "" {
		obj.log = r.LinkError
		return
	}

	var vertex, fragment *shaderObject
	for _, s := range obj.shaders {
		so := r.shaders[s]
		if so == nil || !so.compiled {
			obj.log = fmt.Sprintf("error: shader %d is not compiled", s)
			return
		}
		switch so.kind {
		case gfx.VERTEX_SHADER:
			vertex = so
		case gfx.FRAGMENT_SHADER:
			fragment = so
		}
	}
	if vertex == nil || fragment == nil {
		obj.log = "error: program needs both a vertex and a fragment shader"
		return
	}

	obj.layout = parseLayout(vertex.source, fragment.source)
	obj.linked = true
	obj.log = ""
}

func (r *Recorder) GetProgrami(p gfx.Program, pname gfx.Enum) int {
	obj, ok := r.programs[p]
	if !ok {
		r.fail("GetProgrami: invalid program %d", p)
		return 0
	}
	switch pname {
	case gfx.LINK_STATUS:
		if obj.linked {
			return gfx.TRUE
		}
		return gfx.FALSE
	case gfx.INFO_LOG_LENGTH:
		if obj.log == "" {
			return 0
		}
		return len(obj.log) + 1
	}
	r.fail("GetProgrami: unsupported pname %#x", uint32(pname))
	return 0
}

func (r *Recorder) GetProgramInfoLog(p gfx.Program) string {
	if obj, ok := r.programs[p]; ok {
		return obj.log
	}
	return ""
}

func (r *Recorder) UseProgram(p gfx.Program) {
	r.record("UseProgram", p)
	if p != 0 {
		if obj := r.program("UseProgram", p); obj == nil || !obj.linked {
			r.fail("UseProgram: program %d isn't linked", p)
			return
		}
	}
	r.CurrentProgram = p
}

func (r *Recorder) DeleteProgram(p gfx.Program) {
	r.record("DeleteProgram", p)
	if obj, ok := r.programs[p]; ok {
		obj.deleted = true
	}
	if r.CurrentProgram == p {
		r.CurrentProgram = 0
	}
}

func (r *Recorder) linkedLayout(method string, p gfx.Program) *layout {
	obj := r.program(method, p)
	if obj == nil {
		return nil
	}
	if !obj.linked {
		r.fail("%s: program %d isn't linked", method, p)
		return nil
	}
	return obj.layout
}

func (r *Recorder) GetAttribLocation(p gfx.Program, name string) gfx.Attrib {
	l := r.linkedLayout("GetAttribLocation", p)
	if l == nil {
		return -1
	}
	if loc, ok := l.attribLocations[name]; ok {
		return gfx.Attrib(loc)
	}
	return -1
}

func (r *Recorder) GetUniformLocation(p gfx.Program, name string) gfx.Uniform {
	l := r.linkedLayout("GetUniformLocation", p)
	if l == nil {
		return -1
	}
	if loc, ok := l.uniformLocations[name]; ok {
		return gfx.Uniform(loc)
	}
	return -1
}

func (r *Recorder) GetUniformBlockIndex(p gfx.Program, name string) uint32 {
	l := r.linkedLayout("GetUniformBlockIndex", p)
	if l == nil {
		return gfx.INVALID_INDEX
	}
	for i, b := range l.blocks {
		if b.name == name {
			return uint32(i)
		}
	}
	return gfx.INVALID_INDEX
}

func (r *Recorder) UniformBlockBinding(p gfx.Program, block, binding uint32) {
	r.record("UniformBlockBinding", p, block, binding)
	l := r.linkedLayout("UniformBlockBinding", p)
	if l == nil {
		return
	}
	if int(block) >= len(l.blocks) {
		r.fail("UniformBlockBinding: invalid block index %d", block)
		return
	}
	r.programs[p].bindings[block] = binding
}

func (r *Recorder) GetActiveUniformBlocki(p gfx.Program, block uint32, pname gfx.Enum) int {
	l := r.linkedLayout("GetActiveUniformBlocki", p)
	if l == nil {
		return 0
	}
	if int(block) >= len(l.blocks) {
		r.fail("GetActiveUniformBlocki: invalid block index %d", block)
		return 0
	}
	if pname == gfx.UNIFORM_BLOCK_DATA_SIZE {
		return l.blocks[block].size
	}
	r.fail("GetActiveUniformBlocki: unsupported pname %#x", uint32(pname))
	return 0
}

func (r *Recorder) GetUniformIndices(p gfx.Program, names []string) []uint32 {
	l := r.linkedLayout("GetUniformIndices", p)
	out := make([]uint32, len(names))
	for i, n := range names {
		out[i] = gfx.INVALID_INDEX
		if l == nil {
			continue
		}
		for j, u := range l.uniforms {
			if u.name == n {
				out[i] = uint32(j)
				break
			}
		}
	}
	return out
}

func (r *Recorder) GetActiveUniformsi(p gfx.Program, indices []uint32, pname gfx.Enum) []int32 {
	l := r.linkedLayout("GetActiveUniformsi", p)
	out := make([]int32, len(indices))
	if l == nil {
		return out
	}
	if pname != gfx.UNIFORM_OFFSET {
		r.fail("GetActiveUniformsi: unsupported pname %#x", uint32(pname))
		return out
	}
	for i, idx := range indices {
		if int(idx) >= len(l.uniforms) {
			r.fail("GetActiveUniformsi: invalid uniform index %d", idx)
			continue
		}
		out[i] = int32(l.uniforms[idx].offset)
	}
	return out
}

func (r *Recorder) CreateBuffer() gfx.Buffer {
	b := gfx.Buffer(r.name())
	r.buffers[b] = &bufferObject{}
	r.record("CreateBuffer")
	return b
}

func (r *Recorder) BindBuffer(target gfx.Enum, b gfx.Buffer) {
	r.record("BindBuffer", target, b)
	if b != 0 {
		if obj, ok := r.buffers[b]; !ok || obj.deleted {
			r.fail("BindBuffer: invalid buffer %d", b)
			return
		}
	}
	r.bound[target] = b
}

func (r *Recorder) boundBuffer(method string, target gfx.Enum) *bufferObject {
	b := r.bound[target]
	if b == 0 {
		r.fail("%s: no buffer bound to %#x", method, uint32(target))
		return nil
	}
	return r.buffers[b]
}

func (r *Recorder) BufferData(target gfx.Enum, data []byte, usage gfx.Enum) {
	r.record("BufferData", target, len(data), usage)
	if obj := r.boundBuffer("BufferData", target); obj != nil {
		obj.data = append([]byte(nil), data...)
	}
}

func (r *Recorder) BufferInit(target gfx.Enum, size int, usage gfx.Enum) {
	r.record("BufferInit", target, size, usage)
	if obj := r.boundBuffer("BufferInit", target); obj != nil {
		obj.data = make([]byte, size)
	}
}

func (r *Recorder) BufferSubData(target gfx.Enum, offset int, data []byte) {
	r.record("BufferSubData", target, offset, len(data))
	obj := r.boundBuffer("BufferSubData", target)
	if obj == nil {
		return
	}
	if offset < 0 || offset+len(data) > len(obj.data) {
		r.fail("BufferSubData: range [%d, %d) outside buffer of %d bytes", offset, offset+len(data), len(obj.data))
		return
	}
	copy(obj.data[offset:], data)
}

func (r *Recorder) BindBufferBase(target gfx.Enum, index uint32, b gfx.Buffer) {
	r.record("BindBufferBase", target, index, b)
	r.bound[target] = b
	r.baseBindings[index] = b
}

func (r *Recorder) DeleteBuffer(b gfx.Buffer) {
	r.record("DeleteBuffer", b)
	if obj, ok := r.buffers[b]; ok {
		obj.deleted = true
	}
	for target, bound := range r.bound {
		if bound == b {
			r.bound[target] = 0
		}
	}
}

func (r *Recorder) VertexAttribPointer(a gfx.Attrib, size int, ty gfx.Enum, normalized bool, stride, offset int) {
	r.record("VertexAttribPointer", a, size, ty, normalized, stride, offset)
	if !a.Valid() {
		r.fail("VertexAttribPointer: invalid attribute %d", a)
		return
	}
	st := r.attribs[a]
	st.Buffer = r.bound[gfx.ARRAY_BUFFER]
	st.Size = size
	st.Type = ty
	r.attribs[a] = st
}

func (r *Recorder) EnableVertexAttribArray(a gfx.Attrib) {
	r.record("EnableVertexAttribArray", a)
	if !a.Valid() {
		r.fail("EnableVertexAttribArray: invalid attribute %d", a)
		return
	}
	st := r.attribs[a]
	st.Enabled = true
	r.attribs[a] = st
}

func (r *Recorder) DisableVertexAttribArray(a gfx.Attrib) {
	r.record("DisableVertexAttribArray", a)
	if !a.Valid() {
		r.fail("DisableVertexAttribArray: invalid attribute %d", a)
		return
	}
	st := r.attribs[a]
	st.Enabled = false
	r.attribs[a] = st
}

func (r *Recorder) setUniform(method string, u gfx.Uniform, values []float32) {
	r.record(method, u)
	if !u.Valid() {
		return
	}
	if r.CurrentProgram == 0 {
		r.fail("%s: no program in use", method)
		return
	}
	r.programs[r.CurrentProgram].values[u] = values
}

func (r *Recorder) UniformMatrix4fv(u gfx.Uniform, m []float32) {
	r.setUniform("UniformMatrix4fv", u, append([]float32(nil), m...))
}

func (r *Recorder) Uniform1i(u gfx.Uniform, v int) {
	r.setUniform("Uniform1i", u, []float32{float32(v)})
}

func (r *Recorder) Uniform4f(u gfx.Uniform, v0, v1, v2, v3 float32) {
	r.setUniform("Uniform4f", u, []float32{v0, v1, v2, v3})
}

func (r *Recorder) CreateTexture() gfx.Texture {
	t := gfx.Texture(r.name())
	r.textures[t] = &TextureObject{Params: map[gfx.Enum]int{}}
	r.record("CreateTexture")
	return t
}

func (r *Recorder) ActiveTexture(unit gfx.Enum) {
	r.record("ActiveTexture", unit)
	r.ActiveUnit = unit
}

func (r *Recorder) BindTexture(target gfx.Enum, t gfx.Texture) {
	r.record("BindTexture", target, t)
	if t != 0 {
		if obj, ok := r.textures[t]; !ok || obj.deleted {
			r.fail("BindTexture: invalid texture %d", t)
			return
		}
	}
	r.boundTextures[target] = t
	if target == gfx.TEXTURE_2D {
		r.unitTextures[r.ActiveUnit] = t
	}
}

func (r *Recorder) boundTexture(method string, target gfx.Enum) *TextureObject {
	t := r.unitTextures[r.ActiveUnit]
	if target != gfx.TEXTURE_2D || t == 0 {
		r.fail("%s: no texture bound", method)
		return nil
	}
	return r.textures[t]
}

func (r *Recorder) TexImage2D(target gfx.Enum, level, width, height int, format, ty gfx.Enum, pix []byte) {
	r.record("TexImage2D", target, level, width, height, format, ty)
	obj := r.boundTexture("TexImage2D", target)
	if obj == nil {
		return
	}
	if len(pix) != 0 && len(pix) < width*height*4 {
		r.fail("TexImage2D: %d bytes is too small for %dx%d", len(pix), width, height)
		return
	}
	if level == 0 {
		obj.Width, obj.Height, obj.Format = width, height, format
		obj.Pix = append([]byte(nil), pix...)
	}
}

func (r *Recorder) TexParameteri(target, pname gfx.Enum, param int) {
	r.record("TexParameteri", target, pname, param)
	if obj := r.boundTexture("TexParameteri", target); obj != nil {
		obj.Params[pname] = param
	}
}

func (r *Recorder) GenerateMipmap(target gfx.Enum) {
	r.record("GenerateMipmap", target)
	if obj := r.boundTexture("GenerateMipmap", target); obj != nil {
		obj.Mipmapped = true
	}
}

func (r *Recorder) DeleteTexture(t gfx.Texture) {
	r.record("DeleteTexture", t)
	if obj, ok := r.textures[t]; ok {
		obj.deleted = true
	}
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", red, green, blue, alpha)
	r.ClearColorValue = [4]float32{red, green, blue, alpha}
}

func (r *Recorder) Clear(mask gfx.Enum) { r.record("Clear", mask) }

func (r *Recorder) Enable(capability gfx.Enum) {
	r.record("Enable", capability)
	r.Enabled[capability] = true
}

func (r *Recorder) DepthFunc(fn gfx.Enum) {
	r.record("DepthFunc", fn)
	r.DepthFunction = fn
}

func (r *Recorder) Viewport(x, y, width, height int) {
	r.record("Viewport", x, y, width, height)
	r.ViewportRect = [4]int{x, y, width, height}
}

func (r *Recorder) snapshot() map[gfx.Attrib]AttribState {
	attribs := make(map[gfx.Attrib]AttribState, len(r.attribs))
	for a, st := range r.attribs {
		attribs[a] = st
	}
	return attribs
}

func (r *Recorder) DrawArrays(mode gfx.Enum, first, count int) {
	r.record("DrawArrays", mode, first, count)
	if r.CurrentProgram == 0 {
		r.fail("DrawArrays: no program in use")
		return
	}
	r.Draws = append(r.Draws, Draw{
		Mode:    mode,
		First:   first,
		Count:   count,
		Program: r.CurrentProgram,
		Texture: r.unitTextures[gfx.TEXTURE0],
		Attribs: r.snapshot(),
	})
}

func (r *Recorder) DrawElements(mode gfx.Enum, count int, ty gfx.Enum, offset int) {
	r.record("DrawElements", mode, count, ty, offset)
	if r.CurrentProgram == 0 {
		r.fail("DrawElements: no program in use")
		return
	}
	elements := r.bound[gfx.ELEMENT_ARRAY_BUFFER]
	if elements == 0 {
		r.fail("DrawElements: no element array buffer bound")
		return
	}
	r.Draws = append(r.Draws, Draw{
		Mode:     mode,
		Count:    count,
		Type:     ty,
		Offset:   offset,
		Indexed:  true,
		Program:  r.CurrentProgram,
		Elements: elements,
		Texture:  r.unitTextures[gfx.TEXTURE0],
		Attribs:  r.snapshot(),
	})
}
