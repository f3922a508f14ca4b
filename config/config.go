// Package config loads the TOML settings file
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultPath is read when no -config flag is given
const DefaultPath = "neonops.toml"

// Limits applied by Normalize
const (
	minFrameRate = 1
	maxFrameRate = 240
)

// Config is the full settings file
type Config struct {
	// ReducedMotion overrides the environment preference when set
	ReducedMotion *bool `toml:"reduced_motion"`
	FrameRate     int   `toml:"frame_rate"`
	Sound         bool  `toml:"sound"`
	Debug         bool  `toml:"debug"`

	Counter   CounterConfig   `toml:"counter"`
	Carousel  CarouselConfig  `toml:"carousel"`
	Particles ParticlesConfig `toml:"particles"`
}

// CounterConfig drives the hero KPI count-up
type CounterConfig struct {
	DurationMs int       `toml:"duration_ms"`
	Targets    []float64 `toml:"targets"`
}

// CarouselConfig drives testimonial rotation
type CarouselConfig struct {
	IntervalMs int `toml:"interval_ms"`
}

// ParticlesConfig sizes the hero particle field
type ParticlesConfig struct {
	Count int `toml:"count"`
}

// Default returns the settings the page ships with
func Default() Config {
	return Config{
		FrameRate: 60,
		Counter: CounterConfig{
			DurationMs: 900,
			Targets:    []float64{99, 42, 128},
		},
		Carousel: CarouselConfig{
			IntervalMs: 5200,
		},
		Particles: ParticlesConfig{
			Count: 28,
		},
	}
}

// Load reads path over the defaults, a missing file is not an error
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err = Parse(string(data))
	if err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults and normalizes the result
func Parse(text string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Default(), err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Default(), fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	cfg.Normalize()
	return cfg, nil
}

// Normalize clamps every field to a safe range
func (c *Config) Normalize() {
	if c.FrameRate < minFrameRate {
		c.FrameRate = minFrameRate
	}
	if c.FrameRate > maxFrameRate {
		c.FrameRate = maxFrameRate
	}
	if c.Counter.DurationMs < 1 {
		c.Counter.DurationMs = 1
	}
	for i, v := range c.Counter.Targets {
		if v < 0 {
			c.Counter.Targets[i] = 0
		}
	}
	if c.Carousel.IntervalMs < 1 {
		c.Carousel.IntervalMs = 1
	}
	if c.Particles.Count < 0 {
		c.Particles.Count = 0
	}
}

// FrameInterval is the display tick period
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

// CountDuration is the count-up duration
func (c Config) CountDuration() time.Duration {
	return time.Duration(c.Counter.DurationMs) * time.Millisecond
}

// CarouselInterval is the testimonial rotation period
func (c Config) CarouselInterval() time.Duration {
	return time.Duration(c.Carousel.IntervalMs) * time.Millisecond
}
