// Package solar holds the simulation state of the solar system: orbiting
// bodies, the pause/orbit-visibility state machine, and the background
// starfield. It is pure math with no rendering dependencies.
package solar

import (
	"fmt"
	gomath "math"
	"math/rand"

	"github.com/Faultbox/orrery/pkg/math"
)

// DefaultFallbackColor is used for bodies whose texture failed to load.
var DefaultFallbackColor = [3]float32{0.8, 0.8, 0.8}

// Body is a celestial body on a fixed circular orbit in the XZ plane,
// spinning about world up. Angular speeds are in degrees per simulation
// tick; their sign encodes direction.
type Body struct {
	Name string

	// Static parameters, immutable after construction.
	Radius      float32
	OrbitRadius float32
	OrbitSpeed  float32
	SpinSpeed   float32
	Surface     string // texture name, resolved by the asset provider
	Fallback    [3]float32

	// Kinematic state, always wrapped into [0, 360).
	orbitAngle float32
	spinAngle  float32
}

// NewBody creates a body with both angles at independent random start
// positions. The randomness is deliberately unseeded: body placement
// varies between runs, unlike the starfield.
func NewBody(name string, radius, orbitRadius, orbitSpeed, spinSpeed float32, surface string, fallback [3]float32) (*Body, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("body %s: radius must be positive, got %v", name, radius)
	}
	if orbitRadius <= 0 {
		return nil, fmt.Errorf("body %s: orbit radius must be positive, got %v", name, orbitRadius)
	}

	return &Body{
		Name:        name,
		Radius:      radius,
		OrbitRadius: orbitRadius,
		OrbitSpeed:  orbitSpeed,
		SpinSpeed:   spinSpeed,
		Surface:     surface,
		Fallback:    fallback,
		orbitAngle:  rand.Float32() * 360,
		spinAngle:   rand.Float32() * 360,
	}, nil
}

// Tick advances orbit and spin angles by dt simulation time units.
func (b *Body) Tick(dt float32) {
	b.orbitAngle = math.Wrap360(b.orbitAngle + b.OrbitSpeed*dt)
	b.spinAngle = math.Wrap360(b.spinAngle + b.SpinSpeed*dt)
}

// OrbitAngle returns the current orbit angle in [0, 360).
func (b *Body) OrbitAngle() float32 {
	return b.orbitAngle
}

// SpinAngle returns the current spin angle in [0, 360).
func (b *Body) SpinAngle() float32 {
	return b.spinAngle
}

// Position returns the current world position on the orbit circle.
func (b *Body) Position() math.Vec3 {
	angle := float64(math.Radians(b.orbitAngle))
	return math.Vec3{
		X: b.OrbitRadius * float32(gomath.Cos(angle)),
		Y: 0,
		Z: b.OrbitRadius * float32(gomath.Sin(angle)),
	}
}

// WorldTransform returns the body's translation and its intrinsic spin in
// degrees about world up. The spin applies after the translation, so the
// body rotates in place instead of precessing.
func (b *Body) WorldTransform() (translation math.Vec3, spinDegrees float32) {
	return b.Position(), b.spinAngle
}

// ModelMatrix composes translation, spin, and radius scale into the model
// transform for a unit sphere.
func (b *Body) ModelMatrix() math.Mat4 {
	pos := b.Position()
	return math.Translate(pos.X, pos.Y, pos.Z).
		Mul(math.RotateY(math.Radians(b.spinAngle))).
		Mul(math.Scale(b.Radius, b.Radius, b.Radius))
}

// OrbitPath returns segments points evenly spaced around the orbit circle,
// independent of the body's current angle. The loop is open: the first and
// last points are adjacent, not coincident.
func (b *Body) OrbitPath(segments int) []math.Vec3 {
	points := make([]math.Vec3, segments)
	for i := 0; i < segments; i++ {
		angle := 2 * gomath.Pi * float64(i) / float64(segments)
		points[i] = math.Vec3{
			X: b.OrbitRadius * float32(gomath.Cos(angle)),
			Y: 0,
			Z: b.OrbitRadius * float32(gomath.Sin(angle)),
		}
	}
	return points
}
