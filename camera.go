package glcube

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/solarlune/glcube/math32"
)

// Camera represents a camera (where you look from). It produces the projection and view matrices that a Program
// combines with each Model's matrix.
type Camera struct {
	width, height int

	near, far   float32 // The near and far clipping plane. Near defaults to 0.1, Far to 100.
	perspective bool    // If the Camera has a perspective projection. If not, it's orthographic.
	fieldOfView float32 // Vertical field of view in degrees for a perspective projection camera
	orthoScale  float32 // Scale of the view for an orthographic projection camera in units horizontally

	position mgl32.Vec3
	target   mgl32.Vec3
	up       mgl32.Vec3

	projectionGeneration uint64
	projectionBuilt      uint64
	cachedProjection     mgl32.Mat4

	viewGeneration uint64
	viewBuilt      uint64
	cachedView     mgl32.Mat4
}

// NewCamera creates a new perspective Camera with a viewport of the width and height provided, 45 degrees of vertical
// field of view, sitting at (0, 0, 6) and looking at the origin.
func NewCamera(w, h int) *Camera {

	camera := &Camera{
		near:        0.1,
		far:         100,
		perspective: true,
		fieldOfView: 45,
		orthoScale:  20,
		position:    mgl32.Vec3{0, 0, 6},
		up:          mgl32.Vec3{0, 1, 0},

		projectionGeneration: 1,
		viewGeneration:       1,
	}

	camera.Resize(w, h)

	return camera

}

// Resize resizes the Camera's viewport, which changes the aspect ratio of its projection. Sizes below 1 are raised to 1.
func (camera *Camera) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	if camera.width == w && camera.height == h {
		return
	}
	camera.width, camera.height = w, h
	camera.projectionGeneration++
}

// Size returns the width and height of the Camera's viewport.
func (camera *Camera) Size() (w, h int) {
	return camera.width, camera.height
}

// AspectRatio returns the viewport's width divided by its height.
func (camera *Camera) AspectRatio() float32 {
	return float32(camera.width) / float32(camera.height)
}

// Projection returns the Camera's projection matrix, rebuilding it only if a projection setting changed.
func (camera *Camera) Projection() mgl32.Mat4 {

	if camera.projectionBuilt == camera.projectionGeneration {
		return camera.cachedProjection
	}

	if camera.perspective {
		camera.cachedProjection = mgl32.Perspective(math32.ToRadians(camera.fieldOfView), camera.AspectRatio(), camera.near, camera.far)
	} else {
		w := camera.orthoScale / 2
		h := w / camera.AspectRatio()
		camera.cachedProjection = mgl32.Ortho(-w, w, -h, h, camera.near, camera.far)
	}

	camera.projectionBuilt = camera.projectionGeneration

	return camera.cachedProjection

}

// ViewMatrix returns the Camera's view (look-at) matrix, rebuilding it only if the Camera moved.
func (camera *Camera) ViewMatrix() mgl32.Mat4 {

	if camera.viewBuilt == camera.viewGeneration {
		return camera.cachedView
	}

	camera.cachedView = mgl32.LookAtV(camera.position, camera.target, camera.up)
	camera.viewBuilt = camera.viewGeneration

	return camera.cachedView

}

// Apply uploads the Camera's projection and view matrices to the Program, which must be in use.
func (camera *Camera) Apply(program *Program) {
	program.SetProjectionMatrix(camera.Projection())
	program.SetViewMatrix(camera.ViewMatrix())
}

// SetPerspective sets the Camera's projection to be a perspective (true) or orthographic (false) projection.
func (camera *Camera) SetPerspective(perspective bool) {
	if camera.perspective == perspective {
		return
	}
	camera.perspective = perspective
	camera.projectionGeneration++
}

// Perspective returns whether the Camera has a perspective projection.
func (camera *Camera) Perspective() bool {
	return camera.perspective
}

// SetFieldOfView sets the vertical field of view in degrees for a perspective projection Camera.
func (camera *Camera) SetFieldOfView(fovY float32) {
	if camera.fieldOfView == fovY {
		return
	}
	camera.fieldOfView = fovY
	camera.projectionGeneration++
}

// FieldOfView returns the vertical field of view in degrees.
func (camera *Camera) FieldOfView() float32 {
	return camera.fieldOfView
}

// SetOrthoScale sets the horizontal extent, in world units, that an orthographic Camera sees.
func (camera *Camera) SetOrthoScale(scale float32) {
	if camera.orthoScale == scale {
		return
	}
	camera.orthoScale = scale
	camera.projectionGeneration++
}

// OrthoScale returns the horizontal extent of an orthographic Camera.
func (camera *Camera) OrthoScale() float32 {
	return camera.orthoScale
}

// Near returns the near clipping plane.
func (camera *Camera) Near() float32 {
	return camera.near
}

// SetNear sets the near clipping plane.
func (camera *Camera) SetNear(near float32) {
	if camera.near == near {
		return
	}
	camera.near = near
	camera.projectionGeneration++
}

// Far returns the far clipping plane.
func (camera *Camera) Far() float32 {
	return camera.far
}

// SetFar sets the far clipping plane.
func (camera *Camera) SetFar(far float32) {
	if camera.far == far {
		return
	}
	camera.far = far
	camera.projectionGeneration++
}

// Position returns where the Camera is.
func (camera *Camera) Position() mgl32.Vec3 {
	return camera.position
}

// SetPosition moves the Camera to the position given; it keeps looking at its target.
func (camera *Camera) SetPosition(x, y, z float32) {
	camera.position = mgl32.Vec3{x, y, z}
	camera.viewGeneration++
}

// Target returns the point the Camera looks at.
func (camera *Camera) Target() mgl32.Vec3 {
	return camera.target
}

// LookAt points the Camera at the target position given.
func (camera *Camera) LookAt(x, y, z float32) {
	camera.target = mgl32.Vec3{x, y, z}
	camera.viewGeneration++
}

// Move moves both the Camera and its target by the x, y, and z values provided, so the view direction is kept.
func (camera *Camera) Move(x, y, z float32) {
	if x == 0 && y == 0 && z == 0 {
		return
	}
	delta := mgl32.Vec3{x, y, z}
	camera.position = camera.position.Add(delta)
	camera.target = camera.target.Add(delta)
	camera.viewGeneration++
}

// WorldToClip transforms a world-space position into clip space. The W component is not divided out.
func (camera *Camera) WorldToClip(vert mgl32.Vec3) mgl32.Vec4 {
	return camera.Projection().Mul4(camera.ViewMatrix()).Mul4x1(vert.Vec4(1))
}
