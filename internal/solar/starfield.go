package solar

import (
	gomath "math"
	"math/rand"

	"github.com/Faultbox/orrery/pkg/math"
)

// Starfield defaults.
const (
	DefaultStarCount    = 500
	DefaultStarDistance = 300.0
	DefaultStarSeed     = 42
)

// Starfield generates count star positions on a sphere of the given
// radius. The generator is explicitly seeded so the starfield is identical
// on every run, in contrast to the unseeded body start angles.
func Starfield(count int, radius float32, seed int64) []math.Vec3 {
	rng := rand.New(rand.NewSource(seed))

	points := make([]math.Vec3, count)
	for i := range points {
		theta := rng.Float64() * 2 * gomath.Pi
		phi := rng.Float64() * gomath.Pi

		points[i] = math.Vec3{
			X: radius * float32(gomath.Sin(phi)*gomath.Cos(theta)),
			Y: radius * float32(gomath.Sin(phi)*gomath.Sin(theta)),
			Z: radius * float32(gomath.Cos(phi)),
		}
	}
	return points
}
