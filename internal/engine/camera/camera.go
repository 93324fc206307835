// Package camera provides the orbiting free-look camera for the simulator.
package camera

import (
	gomath "math"

	"github.com/Faultbox/orrery/pkg/math"
)

// Default pose: absolute eye position looking at the origin.
var (
	defaultEye   = math.Vec3{X: 30, Y: 20, Z: 30}
	defaultFocus = math.Vec3{}
	worldUp      = math.Vec3{X: 0, Y: 1, Z: 0}
)

// Movement tuning.
const (
	MoveSpeed           = 0.5
	RotationSensitivity = 2.0
	ZoomSpeed           = 1.0

	MinDistance = 10.0
	MaxDistance = 500.0

	// Pitch is kept strictly inside (-PitchLimit, PitchLimit) to avoid
	// the gimbal singularity at the poles.
	PitchLimit = 89.0
)

// Camera orbits around a focus point. Its primary state is the focus plus
// spherical coordinates (distance, yaw, pitch in degrees); the eye position
// is always derived as focus + distance * direction(yaw, pitch).
type Camera struct {
	Focus math.Vec3

	Distance float32
	Yaw      float32 // degrees around world up
	Pitch    float32 // degrees above the horizon, in (-89, 89)
}

// New creates a camera at the default pose.
func New() *Camera {
	c := &Camera{}
	c.Reset()
	return c
}

// Reset restores the default pose and re-derives the spherical state from
// the absolute eye position. Calling it repeatedly yields identical state.
func (c *Camera) Reset() {
	c.Focus = defaultFocus

	offset := defaultEye.Sub(defaultFocus)
	c.Distance = offset.Length()
	c.Yaw = math.Degrees(float32(gomath.Atan2(float64(offset.X), float64(offset.Z))))
	c.Pitch = math.Degrees(float32(gomath.Asin(float64(offset.Y / c.Distance))))
}

// direction returns the unit vector from focus toward the eye.
func (c *Camera) direction() math.Vec3 {
	yaw := float64(math.Radians(c.Yaw))
	pitch := float64(math.Radians(c.Pitch))

	return math.Vec3{
		X: float32(gomath.Cos(pitch) * gomath.Sin(yaw)),
		Y: float32(gomath.Sin(pitch)),
		Z: float32(gomath.Cos(pitch) * gomath.Cos(yaw)),
	}
}

// Eye returns the camera position in world space.
func (c *Camera) Eye() math.Vec3 {
	return c.Focus.Add(c.direction().Scale(c.Distance))
}

// ViewTransform returns the look-at parameters for the current state.
func (c *Camera) ViewTransform() (eye, focus, up math.Vec3) {
	return c.Eye(), c.Focus, worldUp
}

// ViewMatrix returns the view matrix for the current state.
func (c *Camera) ViewMatrix() math.Mat4 {
	eye, focus, up := c.ViewTransform()
	return math.LookAt(eye, focus, up)
}

// RotateYaw rotates the camera horizontally around the focus.
// Yaw is wrapped into [0, 360) so it stays bounded over long sessions.
func (c *Camera) RotateYaw(deltaDegrees float32) {
	c.Yaw = math.Wrap360(c.Yaw + deltaDegrees*RotationSensitivity)
}

// RotatePitch rotates the camera vertically around the focus. Rotations
// that would leave (-89, 89) are dropped entirely rather than clamped, so
// the camera never rests exactly at the pole.
func (c *Camera) RotatePitch(deltaDegrees float32) {
	candidate := c.Pitch + deltaDegrees*RotationSensitivity
	if candidate > -PitchLimit && candidate < PitchLimit {
		c.Pitch = candidate
	}
}

// Dolly moves focus and eye together along the view direction.
func (c *Camera) Dolly(forward bool) {
	dir := c.Focus.Sub(c.Eye()).Normalize()
	if !forward {
		dir = dir.Scale(-1)
	}
	c.Focus = c.Focus.Add(dir.Scale(MoveSpeed))
}

// Truck moves focus and eye together perpendicular to the view direction.
func (c *Camera) Truck(right bool) {
	dir := c.Focus.Sub(c.Eye())
	r := dir.Cross(worldUp).Normalize()
	if !right {
		r = r.Scale(-1)
	}
	c.Focus = c.Focus.Add(r.Scale(MoveSpeed))
}

// Elevate moves focus and eye together along world up.
func (c *Camera) Elevate(up bool) {
	dir := worldUp
	if !up {
		dir = dir.Scale(-1)
	}
	c.Focus = c.Focus.Add(dir.Scale(MoveSpeed))
}

// Zoom adjusts the orbit distance, clamped to [10, 500]. The focus does
// not move, so zooming never translates the orbit pivot.
func (c *Camera) Zoom(in bool) {
	if in {
		c.Distance -= ZoomSpeed
	} else {
		c.Distance += ZoomSpeed
	}
	if c.Distance < MinDistance {
		c.Distance = MinDistance
	}
	if c.Distance > MaxDistance {
		c.Distance = MaxDistance
	}
}
