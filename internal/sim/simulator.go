// Package sim implements the main simulation loop and state management.
package sim

import (
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/engine/input"
	"github.com/Faultbox/orrery/internal/engine/renderer"
	"github.com/Faultbox/orrery/internal/engine/scene"
	"github.com/Faultbox/orrery/internal/engine/texture"
	"github.com/Faultbox/orrery/internal/engine/window"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/internal/solar"
	"github.com/Faultbox/orrery/pkg/math"
)

// KeyRotationStep is the per-frame rotation input for held keys, in the
// camera's sensitivity units.
const KeyRotationStep = 1.0

// Simulator is the main application instance. It owns the window, the
// scene renderers, the camera, and the solar system state.
type Simulator struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.Camera
	system   *solar.System
	scene    *scene.Scene

	// Per-body appearance, resolved once at load time.
	surfaces map[string]scene.Surface
}

// New creates a simulator instance.
func New(cfg *config.Config) (*Simulator, error) {
	logger.Info("initializing simulator",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	s := &Simulator{
		cfg:      cfg,
		surfaces: make(map[string]scene.Surface),
	}

	// Create window (this also creates the OpenGL context)
	var err error
	s.window, err = window.New(window.Config{
		Title:      "Orrery",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	s.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		s.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	s.scene, err = scene.New()
	if err != nil {
		s.window.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	s.input = input.New()
	s.camera = camera.New()

	s.system, err = solar.NewSystem()
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to create solar system: %w", err)
	}

	s.loadAssets()

	s.scene.SetStarfield(solar.Starfield(
		cfg.Simulation.StarCount,
		cfg.Simulation.StarDistance,
		cfg.Simulation.StarSeed,
	))
	for _, body := range s.system.Bodies {
		s.scene.AddOrbitPath(body.OrbitPath(cfg.Simulation.OrbitSegments))
	}

	logger.Info("controls",
		zap.String("rotate", "W/A/S/D"),
		zap.String("elevate", "Q/E"),
		zap.String("zoom", "+/- or mouse wheel"),
		zap.String("free look", "right mouse drag"),
		zap.String("reset camera", "R"),
		zap.String("pause", "P"),
		zap.String("orbits", "O"),
		zap.String("quit", "ESC"),
	)

	logger.Info("simulator initialized successfully")
	return s, nil
}

// loadAssets generates the procedural textures and resolves each body's
// surface. Asset failures are not fatal: a body whose texture cannot be
// generated or loaded falls back to its flat color.
func (s *Simulator) loadAssets() {
	dir := s.cfg.Simulation.TextureDir
	if err := texture.GenerateAll(dir, s.cfg.Simulation.TextureSize); err != nil {
		logger.Warn("texture generation failed, using flat colors", zap.Error(err))
	}

	for _, body := range s.system.Bodies {
		path := filepath.Join(dir, body.Surface+".png")
		tex, err := s.renderer.LoadTexture(path)
		if err != nil {
			logger.Warn("texture load failed, using flat color",
				zap.String("body", body.Name),
				zap.Error(err),
			)
			s.surfaces[body.Name] = scene.Flat(body.Fallback)
			continue
		}
		s.surfaces[body.Name] = scene.Textured(tex)
	}
}

// Run starts the main loop. It returns when the user quits.
func (s *Simulator) Run() error {
	s.running = true

	var frameInterval time.Duration
	if !s.cfg.Graphics.VSync && s.cfg.Graphics.FPSLimit > 0 {
		frameInterval = time.Second / time.Duration(s.cfg.Graphics.FPSLimit)
	}

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting simulation loop")

	for s.running {
		frameStart := time.Now()

		// 1. Process input
		snap := s.input.Poll()
		s.handleInput(snap)

		// 2. Advance the simulation by one fixed step
		s.system.Advance(s.cfg.Simulation.TimeScale)

		// 3. Render
		s.render()

		// 4. Present
		s.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameInterval > 0 {
			if elapsed := time.Since(frameStart); elapsed < frameInterval {
				time.Sleep(frameInterval - elapsed)
			}
		}
	}

	logger.Info("simulation loop finished")
	return nil
}

// handleInput applies one frame's input snapshot to the camera and the
// simulation state machine.
func (s *Simulator) handleInput(snap input.Snapshot) {
	if snap.Quit {
		s.running = false
		return
	}

	if snap.Resized {
		s.renderer.Resize(snap.Width, snap.Height)
	}

	if snap.ResetCamera {
		s.camera.Reset()
		logger.Debug("camera reset")
	}
	if snap.TogglePause {
		paused := s.system.TogglePause()
		logger.Info("pause toggled", zap.Bool("paused", paused))
	}
	if snap.ToggleOrbits {
		visible := s.system.ToggleOrbits()
		logger.Info("orbit paths toggled", zap.Bool("visible", visible))
	}

	if snap.RotateLeft {
		s.camera.RotateYaw(KeyRotationStep)
	}
	if snap.RotateRight {
		s.camera.RotateYaw(-KeyRotationStep)
	}
	if snap.RotateUp {
		s.camera.RotatePitch(KeyRotationStep)
	}
	if snap.RotateDown {
		s.camera.RotatePitch(-KeyRotationStep)
	}
	if snap.ElevateUp {
		s.camera.Elevate(true)
	}
	if snap.ElevateDown {
		s.camera.Elevate(false)
	}

	if snap.ZoomIn || snap.WheelUp {
		s.camera.Zoom(true)
	}
	if snap.ZoomOut || snap.WheelDown {
		s.camera.Zoom(false)
	}

	if snap.LookYaw != 0 {
		s.camera.RotateYaw(snap.LookYaw)
	}
	if snap.LookPitch != 0 {
		s.camera.RotatePitch(snap.LookPitch)
	}
}

// render draws the current frame: stars first, then the sun, the planets,
// and finally the translucent orbit lines.
func (s *Simulator) render() {
	s.renderer.Begin()

	viewProj := s.renderer.Projection().Mul(s.camera.ViewMatrix())

	s.scene.DrawStarfield(viewProj)

	sunModel := math.Scale(solar.SunRadius, solar.SunRadius, solar.SunRadius)
	s.scene.DrawSun(viewProj, sunModel, solar.SunColor)

	for _, body := range s.system.Bodies {
		s.scene.DrawBody(viewProj, body.ModelMatrix(), s.surfaces[body.Name])
	}

	if s.system.OrbitsVisible() {
		s.scene.DrawOrbits(viewProj)
	}
}

// Close cleans up simulator resources.
func (s *Simulator) Close() {
	logger.Info("closing simulator")

	if s.scene != nil {
		s.scene.Destroy()
	}
	if s.window != nil {
		s.window.Close()
	}
}
