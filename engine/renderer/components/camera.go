// Package components holds the camera math the viewer feeds into its draw
// uniforms. Cameras are plain state machines over mgl32; they never touch the
// graphics context.
package components

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/meshview/meshview/engine/assets"
	"github.com/meshview/meshview/engine/math"
)

// OrbitCamera spins the model matrix in place. The view is derived per frame
// from the mesh bounding box: the eye sits at twice the box extent looking at
// its center, so any mesh fills a comparable portion of the frame.
type OrbitCamera struct {
	model mgl32.Mat4
	speed float32 // radians per key step
}

func NewOrbitCamera(model mgl32.Mat4) *OrbitCamera {
	return &OrbitCamera{
		model: model,
		speed: math.DegToRad(float32(1.0)),
	}
}

func (c *OrbitCamera) Left() {
	c.model = c.model.Mul4(mgl32.HomogRotate3DY(-c.speed))
}

func (c *OrbitCamera) Right() {
	c.model = c.model.Mul4(mgl32.HomogRotate3DY(c.speed))
}

func (c *OrbitCamera) Up() {
	c.model = c.model.Mul4(mgl32.HomogRotate3DX(-c.speed))
}

func (c *OrbitCamera) Down() {
	c.model = c.model.Mul4(mgl32.HomogRotate3DX(c.speed))
}

// MoveMouse rotates by half the cursor delta, in degrees, around both axes.
func (c *OrbitCamera) MoveMouse(xOffset, yOffset float32) {
	c.model = c.model.Mul4(mgl32.HomogRotate3DY(math.DegToRad(xOffset) / 2))
	c.model = c.model.Mul4(mgl32.HomogRotate3DX(-math.DegToRad(yOffset) / 2))
}

func (c *OrbitCamera) Model() mgl32.Mat4 {
	return c.model
}

// Eye is the camera position for the given mesh, twice the box extent away.
// The light sits at the same spot.
func (c *OrbitCamera) Eye(bbox assets.BoundingBox) mgl32.Vec3 {
	return bbox.Delta().Mul(2.0)
}

func (c *OrbitCamera) View(bbox assets.BoundingBox) mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(bbox), bbox.Center(), mgl32.Vec3{0, 1, 0})
}

// FlightCamera contributes the projection: its field of view narrows as the
// user scrolls in.
type FlightCamera struct {
	fov float32 // degrees
}

func NewFlightCamera() *FlightCamera {
	return &FlightCamera{fov: 45.0}
}

// Scroll zooms by narrowing the field of view, clamped to [1, 45] degrees.
func (c *FlightCamera) Scroll(yOffset float32) {
	c.fov = math.Clamp(c.fov-yOffset, 1.0, 45.0)
}

// Fov is the vertical field of view in radians.
func (c *FlightCamera) Fov() float32 {
	return math.DegToRad(c.fov)
}

func (c *FlightCamera) Projection(width, height float32) mgl32.Mat4 {
	return mgl32.Perspective(c.Fov(), width/height, 1.0, 1000.0)
}
