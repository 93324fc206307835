package solar

import (
	gomath "math"
	"testing"
)

func TestStarfieldCountAndRadius(t *testing.T) {
	points := Starfield(DefaultStarCount, DefaultStarDistance, DefaultStarSeed)
	if len(points) != DefaultStarCount {
		t.Fatalf("got %d stars, want %d", len(points), DefaultStarCount)
	}
	for i, p := range points {
		if gomath.Abs(float64(p.Length()-DefaultStarDistance)) > 1e-2 {
			t.Errorf("star %d at distance %v, want %v", i, p.Length(), DefaultStarDistance)
		}
	}
}

func TestStarfieldDeterministic(t *testing.T) {
	a := Starfield(100, 300, 42)
	b := Starfield(100, 300, 42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("starfield differs at index %d with the same seed", i)
		}
	}
}

func TestStarfieldSeedChangesLayout(t *testing.T) {
	a := Starfield(100, 300, 42)
	b := Starfield(100, 300, 43)
	same := 0
	for i := range a {
		if a[i] == b[i] {
			same++
		}
	}
	if same == len(a) {
		t.Error("different seeds produced identical starfields")
	}
}
