package solar

import "testing"

func TestNewSystemDefaults(t *testing.T) {
	s, err := NewSystem()
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}

	if s.Paused() {
		t.Error("system should start running")
	}
	if !s.OrbitsVisible() {
		t.Error("orbit paths should start visible")
	}
	if len(s.Bodies) != 6 {
		t.Errorf("got %d bodies, want 6", len(s.Bodies))
	}

	names := map[string]bool{}
	for _, b := range s.Bodies {
		names[b.Name] = true
	}
	for _, want := range []string{"Mercury", "Venus", "Earth", "Mars", "Jupiter", "Saturn"} {
		if !names[want] {
			t.Errorf("missing body %s", want)
		}
	}
}

func TestAdvanceMovesBodies(t *testing.T) {
	s, err := NewSystem()
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}

	before := make([]float32, len(s.Bodies))
	for i, b := range s.Bodies {
		before[i] = b.OrbitAngle()
	}

	s.Advance(1.0)

	for i, b := range s.Bodies {
		if b.OrbitAngle() == before[i] {
			t.Errorf("body %s did not move", b.Name)
		}
	}
}

func TestAdvanceWhilePausedIsNoOp(t *testing.T) {
	s, err := NewSystem()
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}

	if !s.TogglePause() {
		t.Fatal("TogglePause should report paused")
	}

	type angles struct{ orbit, spin float32 }
	before := make([]angles, len(s.Bodies))
	for i, b := range s.Bodies {
		before[i] = angles{b.OrbitAngle(), b.SpinAngle()}
	}

	s.Advance(1.0)
	s.Advance(1.0)

	for i, b := range s.Bodies {
		if b.OrbitAngle() != before[i].orbit || b.SpinAngle() != before[i].spin {
			t.Errorf("body %s moved while paused", b.Name)
		}
	}

	if s.TogglePause() {
		t.Error("second TogglePause should report running")
	}
	s.Advance(1.0)
	moved := false
	for i, b := range s.Bodies {
		if b.OrbitAngle() != before[i].orbit {
			moved = true
		}
	}
	if !moved {
		t.Error("bodies should move again after unpausing")
	}
}

func TestToggleOrbits(t *testing.T) {
	s, err := NewSystem()
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}

	if s.ToggleOrbits() {
		t.Error("first toggle should hide orbits")
	}
	if s.OrbitsVisible() {
		t.Error("orbits should be hidden")
	}
	if !s.ToggleOrbits() {
		t.Error("second toggle should show orbits")
	}
}

func TestPlanetTableIsStable(t *testing.T) {
	a := Planets()
	b := Planets()
	if len(a) != len(b) {
		t.Fatal("planet table length changed between calls")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("planet table row %d changed between calls", i)
		}
	}

	// Spot-check the table against the known orbital layout
	if a[0].Name != "Mercury" || a[0].OrbitSpeed != 4.0 {
		t.Errorf("unexpected first row: %+v", a[0])
	}
	if a[1].SpinSpeed >= 0 {
		t.Error("Venus should spin retrograde")
	}
}
