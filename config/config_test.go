package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.FrameInterval() != time.Second/60 {
		t.Errorf("Expected 60fps frame interval, got %v", cfg.FrameInterval())
	}
	if cfg.CountDuration() != 900*time.Millisecond {
		t.Errorf("Expected 900ms count duration, got %v", cfg.CountDuration())
	}
	if cfg.CarouselInterval() != 5200*time.Millisecond {
		t.Errorf("Expected 5200ms carousel interval, got %v", cfg.CarouselInterval())
	}
	if cfg.Particles.Count != 28 {
		t.Errorf("Expected 28 particles, got %d", cfg.Particles.Count)
	}
	if cfg.ReducedMotion != nil {
		t.Error("ReducedMotion should be unset by default")
	}
}

func TestParseOverrides(t *testing.T) {
	cfg, err := Parse(`
reduced_motion = true
frame_rate = 30
sound = true

[counter]
duration_ms = 1200
targets = [10, 20]

[carousel]
interval_ms = 3000

[particles]
count = 40
`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.ReducedMotion == nil || !*cfg.ReducedMotion {
		t.Error("Expected reduced_motion = true")
	}
	if cfg.FrameRate != 30 || !cfg.Sound {
		t.Errorf("Unexpected top-level values: %+v", cfg)
	}
	if cfg.Counter.DurationMs != 1200 || len(cfg.Counter.Targets) != 2 || cfg.Counter.Targets[1] != 20 {
		t.Errorf("Unexpected counter config: %+v", cfg.Counter)
	}
	if cfg.Carousel.IntervalMs != 3000 || cfg.Particles.Count != 40 {
		t.Errorf("Unexpected carousel/particles config: %+v %+v", cfg.Carousel, cfg.Particles)
	}
}

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Parse("sound = true\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Counter.DurationMs != 900 || cfg.Carousel.IntervalMs != 5200 {
		t.Errorf("Missing keys should keep defaults, got %+v", cfg)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	if _, err := Parse("frame_rat = 30\n"); err == nil {
		t.Error("Expected error for unknown key")
	}
}

func TestParseRejectsInvalidTOML(t *testing.T) {
	if _, err := Parse("frame_rate = = 3"); err == nil {
		t.Error("Expected parse error")
	}
}

func TestNormalizeClamps(t *testing.T) {
	cfg, err := Parse(`
frame_rate = 0
[counter]
duration_ms = -5
targets = [-3, 7]
[carousel]
interval_ms = 0
[particles]
count = -1
`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.FrameRate != 1 {
		t.Errorf("frame rate = %d, want 1", cfg.FrameRate)
	}
	if cfg.Counter.DurationMs != 1 || cfg.Counter.Targets[0] != 0 || cfg.Counter.Targets[1] != 7 {
		t.Errorf("counter = %+v", cfg.Counter)
	}
	if cfg.Carousel.IntervalMs != 1 || cfg.Particles.Count != 0 {
		t.Errorf("carousel/particles = %+v %+v", cfg.Carousel, cfg.Particles)
	}

	cfg.FrameRate = 10000
	cfg.Normalize()
	if cfg.FrameRate != 240 {
		t.Errorf("frame rate = %d, want 240", cfg.FrameRate)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Missing file should not error: %v", err)
	}
	if cfg.FrameRate != 60 {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neonops.toml")
	if err := os.WriteFile(path, []byte("debug = true\n[particles]\ncount = 12\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Debug || cfg.Particles.Count != 12 {
		t.Errorf("Unexpected config: %+v", cfg)
	}
}

func TestLoadBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[[["), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatal("Expected error for malformed file")
	}
	if cfg.FrameRate != 60 {
		t.Errorf("Expected defaults alongside the error, got %+v", cfg)
	}
}
