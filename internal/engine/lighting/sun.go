// Package lighting provides lighting parameters for 3D rendering.
package lighting

// Light is a point light source.
type Light struct {
	Position [3]float32
	Ambient  [3]float32
	Diffuse  [3]float32
}

// GlobalAmbient is the scene-wide ambient term applied on top of the
// per-light ambient contribution.
var GlobalAmbient = [3]float32{0.2, 0.2, 0.25}

// Sun returns the light parameters for the central star: a point light at
// the origin with a slightly warm diffuse tone.
func Sun() Light {
	return Light{
		Position: [3]float32{0, 0, 0},
		Ambient:  [3]float32{0.3, 0.3, 0.3},
		Diffuse:  [3]float32{0.9, 0.9, 0.8},
	}
}
