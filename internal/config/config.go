package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ivlev/autozoom/internal/easing"
)

// Documented ranges for the user-tunable zoom settings. Values outside
// these bounds come from UI sliders, so they are clamped, never rejected.
const (
	MinZoomLevel = 1.0
	MaxZoomLevel = 6.0

	MinDuration = 0.6
	MaxDuration = 3.0

	MinSmoothing = 0.1
	MaxSmoothing = 0.5

	MinCursorScale = 1.0
	MaxCursorScale = 3.0
)

// Settings is the auto-zoom policy snapshot. It is passed by value into
// the generator; nothing in the engine holds a mutable reference to it.
type Settings struct {
	Enabled         bool         `yaml:"enabled"`
	ZoomLevel       float64      `yaml:"zoom_level"`
	Duration        float64      `yaml:"duration"`
	Easing          easing.Curve `yaml:"easing"`
	FollowCursor    bool         `yaml:"follow_cursor"`
	CursorSmoothing float64      `yaml:"cursor_smoothing"`
	CursorScale     float64      `yaml:"cursor_scale"`
}

// DefaultSettings returns the product defaults.
func DefaultSettings() Settings {
	return Settings{
		Enabled:         true,
		ZoomLevel:       2.0,
		Duration:        1.2,
		Easing:          easing.Default,
		FollowCursor:    false,
		CursorSmoothing: 0.3,
		CursorScale:     1.5,
	}
}

// Clamp returns a copy with every field pulled into its documented
// range and an unknown easing curve replaced by the default.
func (s Settings) Clamp() Settings {
	s.ZoomLevel = clamp(s.ZoomLevel, MinZoomLevel, MaxZoomLevel)
	s.Duration = clamp(s.Duration, MinDuration, MaxDuration)
	s.CursorSmoothing = clamp(s.CursorSmoothing, MinSmoothing, MaxSmoothing)
	s.CursorScale = clamp(s.CursorScale, MinCursorScale, MaxCursorScale)
	if !s.Easing.Valid() {
		s.Easing = easing.Default
	}
	return s
}

// Config is the CLI project configuration. Unlike Settings these fields
// are programmer contracts, so out-of-range values fail validation.
type Config struct {
	Input   string   `yaml:"input"`
	PlanOut string   `yaml:"plan_out"`
	FPS     int      `yaml:"fps" validate:"required,gte=1,lte=240"`
	Workers int      `yaml:"workers" validate:"gte=0"`
	Zoom    Settings `yaml:"zoom"`
}

func Default() *Config {
	return &Config{
		FPS:  30,
		Zoom: DefaultSettings(),
	}
}

// Load reads a YAML config file, validates the fixed fields and clamps
// the tunable ones.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	c.Zoom = c.Zoom.Clamp()
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
