package solar

// Sun appearance at the origin.
const SunRadius = 2.0

// SunColor is the emissive color of the central star.
var SunColor = [3]float32{1.0, 1.0, 0.3}

// BodyDef is one row of the static planet table.
type BodyDef struct {
	Name        string
	Radius      float32
	OrbitRadius float32
	OrbitSpeed  float32
	SpinSpeed   float32
	Surface     string
}

// Planets returns the static planet table: name, body radius, orbit
// radius, orbit speed, spin speed (degrees per tick, negative = retrograde),
// and the texture name.
func Planets() []BodyDef {
	return []BodyDef{
		{"Mercury", 0.38, 8.0, 4.0, 3.0, "mercury"},
		{"Venus", 0.95, 12.0, 1.5, -1.0, "venus"},
		{"Earth", 1.0, 16.0, 1.0, 2.0, "earth"},
		{"Mars", 0.53, 21.0, 0.8, 1.9, "mars"},
		{"Jupiter", 2.5, 30.0, 0.3, 2.4, "jupiter"},
		{"Saturn", 2.0, 40.0, 0.15, 2.3, "saturn"},
	}
}

// System owns the orbiting bodies and the simulation state machine:
// Running/Paused plus the orthogonal orbit-path visibility toggle.
type System struct {
	Bodies []*Body

	paused     bool
	showOrbits bool
}

// NewSystem creates the system from the planet table. Initial state is
// running with orbit paths visible.
func NewSystem() (*System, error) {
	s := &System{
		showOrbits: true,
	}

	for _, def := range Planets() {
		body, err := NewBody(def.Name, def.Radius, def.OrbitRadius, def.OrbitSpeed, def.SpinSpeed, def.Surface, DefaultFallbackColor)
		if err != nil {
			return nil, err
		}
		s.Bodies = append(s.Bodies, body)
	}

	return s, nil
}

// Advance ticks every body by dt. While paused this is a no-op, so body
// angles stay frozen.
func (s *System) Advance(dt float32) {
	if s.paused {
		return
	}
	for _, b := range s.Bodies {
		b.Tick(dt)
	}
}

// TogglePause flips between Running and Paused and reports the new state.
func (s *System) TogglePause() bool {
	s.paused = !s.paused
	return s.paused
}

// Paused reports whether the simulation is paused.
func (s *System) Paused() bool {
	return s.paused
}

// ToggleOrbits flips orbit path visibility and reports the new state.
func (s *System) ToggleOrbits() bool {
	s.showOrbits = !s.showOrbits
	return s.showOrbits
}

// OrbitsVisible reports whether orbit paths should be drawn.
func (s *System) OrbitsVisible() bool {
	return s.showOrbits
}
