package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1400 {
		t.Errorf("expected width 1400, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Graphics.FPSLimit != 60 {
		t.Errorf("expected fps limit 60, got %d", cfg.Graphics.FPSLimit)
	}

	if cfg.Simulation.TextureDir != "textures" {
		t.Errorf("expected texture dir 'textures', got %s", cfg.Simulation.TextureDir)
	}
	if cfg.Simulation.TextureSize != 256 {
		t.Errorf("expected texture size 256, got %d", cfg.Simulation.TextureSize)
	}
	if cfg.Simulation.TimeScale != 1.0 {
		t.Errorf("expected time scale 1.0, got %f", cfg.Simulation.TimeScale)
	}
	if cfg.Simulation.StarCount != 500 {
		t.Errorf("expected 500 stars, got %d", cfg.Simulation.StarCount)
	}
	if cfg.Simulation.StarSeed != 42 {
		t.Errorf("expected star seed 42, got %d", cfg.Simulation.StarSeed)
	}
	if cfg.Simulation.OrbitSegments != 128 {
		t.Errorf("expected 128 orbit segments, got %d", cfg.Simulation.OrbitSegments)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "config.yaml")

	yamlData := `
graphics:
  width: 1920
  height: 1080
  vsync: false
simulation:
  star_count: 1000
  time_scale: 2.5
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yamlData), 0644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync overridden to false")
	}
	if cfg.Simulation.StarCount != 1000 {
		t.Errorf("expected star count 1000, got %d", cfg.Simulation.StarCount)
	}
	if cfg.Simulation.TimeScale != 2.5 {
		t.Errorf("expected time scale 2.5, got %f", cfg.Simulation.TimeScale)
	}
	// Values absent from the file keep defaults
	if cfg.Simulation.TextureSize != 256 {
		t.Errorf("expected texture size default 256, got %d", cfg.Simulation.TextureSize)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Graphics.Width = 800
	cfg.Simulation.StarSeed = 7

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile after save: %v", err)
	}

	if loaded.Graphics.Width != 800 {
		t.Errorf("expected width 800 after round trip, got %d", loaded.Graphics.Width)
	}
	if loaded.Simulation.StarSeed != 7 {
		t.Errorf("expected star seed 7 after round trip, got %d", loaded.Simulation.StarSeed)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/config.yaml"); err == nil {
		t.Error("expected error loading missing file")
	}
}
