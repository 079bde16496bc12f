package glcube

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/solarlune/glcube/gfx"
)

// Model represents a singular visual instantiation of a Primitive. A Primitive contains the vertex buffers (what to draw);
// a Model references the Primitive to draw it with a specific Position, Rotation, and Scale (where and how to draw).
// Any number of Models can share one Primitive.
type Model struct {
	Name    string
	Mesh    *Primitive
	Texture gfx.Texture // Bound to texture unit 0 when rendering; 0 leaves the unit empty.
	Tint    Color       // The overall color of the Model; multiplied into every fragment.
	Visible bool

	position mgl32.Vec3
	rotation mgl32.Quat
	scale    mgl32.Vec3

	// generation is bumped by every transform change; the cached matrix is valid while builtGeneration matches it.
	generation      uint64
	builtGeneration uint64
	cachedMatrix    mgl32.Mat4
	rebuilds        int
}

// NewModel creates a new Model of the Primitive and name provided, at the origin, unrotated and unscaled.
func NewModel(mesh *Primitive, name string) *Model {
	return &Model{
		Name:     name,
		Mesh:     mesh,
		Tint:     NewColor(1, 1, 1, 1),
		Visible:  true,
		rotation: mgl32.QuatIdent(),
		scale:    mgl32.Vec3{1, 1, 1},
		// Start out of date so the first ModelMatrix call builds the matrix.
		generation: 1,
	}
}

// Clone creates a copy of the Model that shares its Primitive and Texture.
func (model *Model) Clone() *Model {
	newModel := NewModel(model.Mesh, model.Name)
	newModel.Texture = model.Texture
	newModel.Tint = model.Tint.Clone()
	newModel.Visible = model.Visible
	newModel.position = model.position
	newModel.rotation = model.rotation
	newModel.scale = model.scale
	return newModel
}

func (model *Model) touch() {
	model.generation++
}

// Position returns the Model's position.
func (model *Model) Position() mgl32.Vec3 {
	return model.position
}

// SetPosition sets the Model's position.
func (model *Model) SetPosition(x, y, z float32) {
	model.SetPositionVec(mgl32.Vec3{x, y, z})
}

// SetPositionVec sets the Model's position using the vector provided.
func (model *Model) SetPositionVec(position mgl32.Vec3) {
	if model.position == position {
		return
	}
	model.position = position
	model.touch()
}

// Move moves the Model by the x, y, and z values provided.
func (model *Model) Move(x, y, z float32) {
	if x == 0 && y == 0 && z == 0 {
		return
	}
	model.position = model.position.Add(mgl32.Vec3{x, y, z})
	model.touch()
}

// Rotation returns the Model's orientation.
func (model *Model) Rotation() mgl32.Quat {
	return model.rotation
}

// SetRotation sets the Model's orientation. The quaternion is normalized before it's stored.
func (model *Model) SetRotation(rotation mgl32.Quat) {
	model.rotation = rotation.Normalize()
	model.touch()
}

// Rotate rotates the Model around the given axis (in its local orientation) by the angle provided in radians.
// A zero axis or angle does nothing.
func (model *Model) Rotate(x, y, z, angle float32) {
	axis := mgl32.Vec3{x, y, z}
	if angle == 0 || axis.Len() == 0 {
		return
	}
	model.rotation = model.rotation.Mul(mgl32.QuatRotate(angle, axis.Normalize())).Normalize()
	model.touch()
}

// Scale returns the Model's scale.
func (model *Model) Scale() mgl32.Vec3 {
	return model.scale
}

// SetScale sets the Model's scale on each axis.
func (model *Model) SetScale(w, h, d float32) {
	scale := mgl32.Vec3{w, h, d}
	if model.scale == scale {
		return
	}
	model.scale = scale
	model.touch()
}

// ModelMatrix returns the Model's transform (translation * rotation * scale). The matrix is only rebuilt when the
// transform has changed since the last call; otherwise the same cached matrix is returned. The returned pointer
// stays valid for the life of the Model, but callers mustn't modify the matrix through it.
func (model *Model) ModelMatrix() *mgl32.Mat4 {

	if model.builtGeneration == model.generation {
		return &model.cachedMatrix
	}

	// T * R * S
	transform := mgl32.Translate3D(model.position[0], model.position[1], model.position[2])
	transform = transform.Mul4(model.rotation.Mat4())
	transform = transform.Mul4(mgl32.Scale3D(model.scale[0], model.scale[1], model.scale[2]))

	model.cachedMatrix = transform
	model.builtGeneration = model.generation
	model.rebuilds++

	return &model.cachedMatrix

}

// Render draws the Model through the Program given, which must already be in use (see Program.Use). It uploads the
// model matrix, binds the Primitive's vertex, texture coordinate and color buffers (disabling the attributes it has no
// data for), binds the Texture and Tint, and then issues one indexed draw of every element. Invisible Models and
// Models without a Primitive draw nothing.
func (model *Model) Render(program *Program) {

	if !model.Visible || model.Mesh == nil || model.Mesh.ElementCount == 0 {
		return
	}

	program.SetModelMatrix(*model.ModelMatrix())

	program.SetVertexData(model.Mesh.Vertices)
	program.SetTextureCoordinates(model.Mesh.TexCoords)
	program.SetColors(model.Mesh.Colors)

	program.SetTexture(model.Texture)
	program.SetTint(model.Tint)

	program.DrawIndexed(model.Mesh.Elements, model.Mesh.ElementCount)

}
