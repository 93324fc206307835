// Package scene provides retained-state renderers for the solar system:
// lit spheres, orbit line loops, and the background starfield. The
// simulator feeds it transforms and geometry; all GL state lives here.
package scene

import (
	"fmt"

	"github.com/Faultbox/orrery/internal/engine/lighting"
	"github.com/Faultbox/orrery/pkg/math"
)

// SurfaceKind discriminates the two body appearances.
type SurfaceKind int

const (
	// SurfaceFlat renders with a solid color.
	SurfaceFlat SurfaceKind = iota
	// SurfaceTextured renders with a bound texture.
	SurfaceTextured
)

// Surface describes how a body is shaded: either a texture handle or a
// flat fallback color, resolved once at load time.
type Surface struct {
	Kind    SurfaceKind
	Texture uint32
	Color   [3]float32
}

// Textured returns a textured surface.
func Textured(tex uint32) Surface {
	return Surface{Kind: SurfaceTextured, Texture: tex}
}

// Flat returns a flat-colored surface.
func Flat(color [3]float32) Surface {
	return Surface{Kind: SurfaceFlat, Color: color}
}

// Scene owns the renderers and lighting for one solar system view.
type Scene struct {
	spheres *sphereRenderer
	orbits  *orbitRenderer
	stars   *starfieldRenderer

	light lighting.Light
}

// New creates a scene. Requires a current OpenGL context.
func New() (*Scene, error) {
	s := &Scene{
		light: lighting.Sun(),
	}

	var err error
	if s.spheres, err = newSphereRenderer(); err != nil {
		return nil, fmt.Errorf("sphere renderer: %w", err)
	}
	if s.orbits, err = newOrbitRenderer(); err != nil {
		s.spheres.destroy()
		return nil, fmt.Errorf("orbit renderer: %w", err)
	}
	if s.stars, err = newStarfieldRenderer(); err != nil {
		s.spheres.destroy()
		s.orbits.destroy()
		return nil, fmt.Errorf("starfield renderer: %w", err)
	}

	return s, nil
}

// SetStarfield uploads the background star positions.
func (s *Scene) SetStarfield(points []math.Vec3) {
	s.stars.setPoints(points)
}

// AddOrbitPath uploads one closed orbit loop.
func (s *Scene) AddOrbitPath(points []math.Vec3) {
	s.orbits.addLoop(points)
}

// DrawStarfield draws the background stars, unlit.
func (s *Scene) DrawStarfield(viewProj math.Mat4) {
	s.stars.draw(viewProj)
}

// DrawBody draws one lit sphere with the given model transform and surface.
func (s *Scene) DrawBody(viewProj, model math.Mat4, surf Surface) {
	s.spheres.draw(viewProj, model, surf, false, s.light)
}

// DrawSun draws an emissive sphere that ignores lighting.
func (s *Scene) DrawSun(viewProj, model math.Mat4, color [3]float32) {
	s.spheres.draw(viewProj, model, Flat(color), true, s.light)
}

// DrawOrbits draws all registered orbit loops as translucent lines.
func (s *Scene) DrawOrbits(viewProj math.Mat4) {
	s.orbits.draw(viewProj)
}

// Destroy releases all GL resources.
func (s *Scene) Destroy() {
	if s.spheres != nil {
		s.spheres.destroy()
	}
	if s.orbits != nil {
		s.orbits.destroy()
	}
	if s.stars != nil {
		s.stars.destroy()
	}
}
