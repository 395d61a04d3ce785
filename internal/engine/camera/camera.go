// Package camera provides the auto-rotating sky camera.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Up is the world up axis. The scene is Z-up: the celestial north pole is +Z.
var Up = mgl32.Vec3{0, 0, 1}

// OrbitCamera circles the origin at a fixed distance and looks at it.
type OrbitCamera struct {
	Distance float32
	Pitch    float32 // elevation above the equatorial plane, radians
	Yaw      float32 // radians, increases with time

	// Speed is the rotation rate in degrees per second.
	Speed float32

	FOV       float32 // vertical field of view, degrees
	Near, Far float32
}

// NewOrbitCamera creates a camera that sits between the globe and the
// celestial sphere of the given radius.
func NewOrbitCamera(skyRadius, speed float32) *OrbitCamera {
	return &OrbitCamera{
		Distance: skyRadius * 0.3,
		Pitch:    mgl32.DegToRad(20),
		Speed:    speed,
		FOV:      60,
		Near:     0.1,
		Far:      skyRadius * 4,
	}
}

// Update advances the rotation by dt seconds.
func (c *OrbitCamera) Update(dt float32) {
	c.Yaw += mgl32.DegToRad(c.Speed) * dt
	c.Yaw = float32(gomath.Mod(float64(c.Yaw), 2*gomath.Pi))
	if c.Yaw < 0 {
		c.Yaw += 2 * gomath.Pi
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	return mgl32.SphericalToCartesian(c.Distance, gomath.Pi/2-c.Pitch, c.Yaw)
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), mgl32.Vec3{}, Up)
}

// ProjectionMatrix returns the perspective projection for the given aspect ratio.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *OrbitCamera) ViewProjection(aspect float32) mgl32.Mat4 {
	return c.ProjectionMatrix(aspect).Mul4(c.ViewMatrix())
}
