package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/orrery/pkg/math"
)

func vecAlmostEqual(a, b math.Vec3, eps float32) bool {
	return a.Distance(b) <= eps
}

func TestNewMatchesDefaultEye(t *testing.T) {
	c := New()
	if !vecAlmostEqual(c.Eye(), math.Vec3{X: 30, Y: 20, Z: 30}, 1e-3) {
		t.Errorf("default eye = %v, want (30, 20, 30)", c.Eye())
	}
	if c.Focus != (math.Vec3{}) {
		t.Errorf("default focus = %v, want origin", c.Focus)
	}
}

func TestResetIdempotent(t *testing.T) {
	c := New()
	c.RotateYaw(33)
	c.RotatePitch(-12)
	c.Zoom(true)
	c.Dolly(true)

	c.Reset()
	first := *c
	c.Reset()
	if *c != first {
		t.Errorf("second Reset changed state: %+v vs %+v", *c, first)
	}
}

func TestEyeInvariant(t *testing.T) {
	c := New()
	ops := []func(){
		func() { c.RotateYaw(17) },
		func() { c.RotatePitch(5) },
		func() { c.Zoom(false) },
		func() { c.Dolly(true) },
		func() { c.Truck(false) },
		func() { c.Elevate(true) },
	}
	for i, op := range ops {
		op()
		want := c.Focus.Add(sphericalDir(c.Yaw, c.Pitch).Scale(c.Distance))
		if !vecAlmostEqual(c.Eye(), want, 1e-3) {
			t.Errorf("after op %d eye = %v, want focus + distance*dir = %v", i, c.Eye(), want)
		}
	}
}

func sphericalDir(yawDeg, pitchDeg float32) math.Vec3 {
	yaw := float64(math.Radians(yawDeg))
	pitch := float64(math.Radians(pitchDeg))
	return math.Vec3{
		X: float32(gomath.Cos(pitch) * gomath.Sin(yaw)),
		Y: float32(gomath.Sin(pitch)),
		Z: float32(gomath.Cos(pitch) * gomath.Cos(yaw)),
	}
}

func TestPitchNeverLeavesOpenInterval(t *testing.T) {
	c := New()
	for i := 0; i < 200; i++ {
		c.RotatePitch(10)
	}
	if c.Pitch <= -PitchLimit || c.Pitch >= PitchLimit {
		t.Errorf("pitch %v escaped (-89, 89)", c.Pitch)
	}
	for i := 0; i < 400; i++ {
		c.RotatePitch(-10)
	}
	if c.Pitch <= -PitchLimit || c.Pitch >= PitchLimit {
		t.Errorf("pitch %v escaped (-89, 89)", c.Pitch)
	}
}

func TestPitchRotationDroppedNotClamped(t *testing.T) {
	c := New()
	c.Pitch = 85
	c.RotatePitch(10) // candidate 105, outside the band
	if c.Pitch != 85 {
		t.Errorf("out-of-band rotation should be dropped, pitch = %v", c.Pitch)
	}
}

func TestZoomClamped(t *testing.T) {
	c := New()
	for i := 0; i < 1000; i++ {
		c.Zoom(true)
	}
	if c.Distance != MinDistance {
		t.Errorf("distance = %v, want clamp at %v", c.Distance, MinDistance)
	}
	for i := 0; i < 1000; i++ {
		c.Zoom(false)
	}
	if c.Distance != MaxDistance {
		t.Errorf("distance = %v, want clamp at %v", c.Distance, MaxDistance)
	}
}

func TestZoomDoesNotMoveFocus(t *testing.T) {
	c := New()
	focus := c.Focus
	c.Zoom(true)
	c.Zoom(false)
	if c.Focus != focus {
		t.Errorf("zoom moved focus from %v to %v", focus, c.Focus)
	}
}

func TestYawRoundTrip(t *testing.T) {
	c := New()
	before := c.Yaw
	c.RotateYaw(10)
	c.RotateYaw(-10)
	if diff := float32(gomath.Abs(float64(c.Yaw - before))); diff > 1e-4 {
		t.Errorf("yaw drifted by %v after +10/-10", diff)
	}
}

func TestDollyMovesFocusAndEyeTogether(t *testing.T) {
	c := New()
	focusBefore := c.Focus
	eyeBefore := c.Eye()
	c.Dolly(true)
	focusDelta := c.Focus.Sub(focusBefore)
	eyeDelta := c.Eye().Sub(eyeBefore)
	if !vecAlmostEqual(focusDelta, eyeDelta, 1e-4) {
		t.Errorf("dolly moved focus by %v but eye by %v", focusDelta, eyeDelta)
	}
	if d := focusDelta.Length(); gomath.Abs(float64(d-MoveSpeed)) > 1e-4 {
		t.Errorf("dolly step length = %v, want %v", d, MoveSpeed)
	}
}

func TestElevateFollowsWorldUp(t *testing.T) {
	c := New()
	before := c.Focus
	c.Elevate(true)
	want := before.Add(math.Vec3{Y: MoveSpeed})
	if !vecAlmostEqual(c.Focus, want, 1e-5) {
		t.Errorf("elevate focus = %v, want %v", c.Focus, want)
	}
}

func TestViewMatrixLooksAtFocus(t *testing.T) {
	c := New()
	c.RotateYaw(25)
	c.RotatePitch(-8)
	view := c.ViewMatrix()
	got := view.TransformVec3(c.Focus)
	// Focus maps onto the negative Z axis at the orbit distance.
	if gomath.Abs(float64(got.X)) > 1e-3 || gomath.Abs(float64(got.Y)) > 1e-3 {
		t.Errorf("focus in view space = %v, want on -Z axis", got)
	}
	if gomath.Abs(float64(got.Z+c.Distance)) > 1e-2 {
		t.Errorf("focus view depth = %v, want %v", got.Z, -c.Distance)
	}
}
