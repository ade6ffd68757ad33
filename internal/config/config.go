// Package config loads the YAML configuration file and applies defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full application configuration.
type Config struct {
	Observer ObserverConfig `yaml:"observer"`
	Tracking TrackingConfig `yaml:"tracking"`
	Haptic   HapticConfig   `yaml:"haptic"`
	Sim      SimConfig      `yaml:"sim"`

	CalibrationPath string `yaml:"calibration_path"`
	LogLevel        string `yaml:"log_level"`
}

// ObserverConfig fixes the session's observer location.
type ObserverConfig struct {
	LatDeg float64 `yaml:"lat_deg"`
	LonDeg float64 `yaml:"lon_deg"`
	Name   string  `yaml:"name"`

	// Set marks that the location was configured explicitly, as opposed
	// to the zero value meaning "unset, fall back".
	Set bool `yaml:"set"`
}

// TrackingConfig tunes the fusion and alignment pipeline.
type TrackingConfig struct {
	RefreshInterval   time.Duration `yaml:"refresh_interval"`
	SmoothingFactor   float64       `yaml:"smoothing_factor"`
	AlignToleranceDeg float64       `yaml:"align_tolerance_deg"`
	FineToleranceDeg  float64       `yaml:"fine_tolerance_deg"`

	// Convention selects the raw-orientation mapping: "zrotation" or
	// "compass". Sensor frames differ per platform, so this must be
	// switchable without a code change.
	Convention string `yaml:"convention"`
}

// HapticConfig controls the lock pulse output.
type HapticConfig struct {
	Enable  bool `yaml:"enable"`
	GPIOPin int  `yaml:"gpio_pin"`
}

// SimConfig controls the simulated orientation source.
type SimConfig struct {
	Enable          bool          `yaml:"enable"`
	StartHeadingDeg float64       `yaml:"start_heading_deg"`
	StartPitchDeg   float64       `yaml:"start_pitch_deg"`
	HeadingRateDeg  float64       `yaml:"heading_rate_deg"`
	PitchRateDeg    float64       `yaml:"pitch_rate_deg"`
	JitterDeg       float64       `yaml:"jitter_deg"`
	Interval        time.Duration `yaml:"interval"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Tracking: TrackingConfig{
			RefreshInterval:   10 * time.Second,
			SmoothingFactor:   0.8,
			AlignToleranceDeg: 6,
			FineToleranceDeg:  2,
			Convention:        "zrotation",
		},
		Haptic: HapticConfig{
			GPIOPin: 18,
		},
		CalibrationPath: "skypoint-calibration.yaml",
		LogLevel:        "info",
	}
}

// Load reads the configuration file at path, layering it over defaults.
// A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Tracking.SmoothingFactor <= 0 || c.Tracking.SmoothingFactor >= 1 {
		return fmt.Errorf("tracking.smoothing_factor %v outside (0, 1)", c.Tracking.SmoothingFactor)
	}
	if c.Tracking.AlignToleranceDeg <= 0 {
		return errors.New("tracking.align_tolerance_deg must be positive")
	}
	if c.Tracking.FineToleranceDeg <= 0 || c.Tracking.FineToleranceDeg > c.Tracking.AlignToleranceDeg {
		return errors.New("tracking.fine_tolerance_deg must be in (0, align_tolerance_deg]")
	}
	if c.Tracking.RefreshInterval < time.Second {
		return fmt.Errorf("tracking.refresh_interval %v too short", c.Tracking.RefreshInterval)
	}
	if c.Observer.LatDeg < -90 || c.Observer.LatDeg > 90 {
		return fmt.Errorf("observer.lat_deg %v outside [-90, 90]", c.Observer.LatDeg)
	}
	if c.Observer.LonDeg < -180 || c.Observer.LonDeg > 180 {
		return fmt.Errorf("observer.lon_deg %v outside [-180, 180]", c.Observer.LonDeg)
	}
	return nil
}
