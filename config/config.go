// Package config loads runtime settings from a TOML file, an optional .env
// file and NEON_GLOBE_* environment variables, in that order of precedence
// from lowest to highest.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/neon-globe/arc"
	"github.com/lixenwraith/neon-globe/scene"
)

// Config is the full runtime configuration
type Config struct {
	FPS  int   `toml:"fps" validate:"gte=1,lte=240"`
	Seed int64 `toml:"seed"` // 0 seeds from the clock
	HUD  bool  `toml:"hud"`

	Arcs   ArcConfig    `toml:"arcs"`
	Globe  GlobeConfig  `toml:"globe"`
	Camera CameraConfig `toml:"camera"`
	Audio  AudioConfig  `toml:"audio"`
	Log    LogConfig    `toml:"log"`
}

type ArcConfig struct {
	Count        int     `toml:"count" validate:"gte=1,lte=64"`
	Radius       float64 `toml:"radius" validate:"gt=0"`
	StartOpacity float64 `toml:"start_opacity" validate:"gt=0,lte=1"`
	FadeRate     float64 `toml:"fade_rate" validate:"lt=0"`
	Divisions    int     `toml:"divisions" validate:"gte=1,lte=1000"`
	Bulge        float64 `toml:"bulge" validate:"gt=0"`
	Color        string  `toml:"color" validate:"rgbhex"`
}

type GlobeConfig struct {
	Radius       float64 `toml:"radius" validate:"gt=0"`
	Color        string  `toml:"color" validate:"rgbhex"`
	Glow         string  `toml:"glow" validate:"rgbhex"`
	GlowStrength float64 `toml:"glow_strength" validate:"gte=0,lte=2"`
	Opacity      float64 `toml:"opacity" validate:"gte=0,lte=1"`
	WireSegments int     `toml:"wire_segments" validate:"gte=3,lte=128"`
	WireOpacity  float64 `toml:"wire_opacity" validate:"gte=0,lte=1"`
	Logo         string  `toml:"logo" validate:"max=40"`
	SpinRate     float64 `toml:"spin_rate"` // radians per frame
}

type CameraConfig struct {
	Distance float64 `toml:"distance" validate:"gt=0"`
	FOV      float64 `toml:"fov" validate:"gt=0,lt=180"`
}

type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	Volume     float64 `toml:"volume" validate:"gte=0,lte=1"`
	Frequency  float64 `toml:"frequency" validate:"gt=0,lte=20000"`
	DurationMs int     `toml:"duration_ms" validate:"gte=10,lte=2000"`
	SampleRate int     `toml:"sample_rate" validate:"gte=8000,lte=192000"`
}

type LogConfig struct {
	Path        string `toml:"path" validate:"required"`
	Debug       bool   `toml:"debug"`
	Development bool   `toml:"development"`
}

// Default returns the stock look: three cyan arcs fading over 100 frames around a radius 2 globe
func Default() *Config {
	return &Config{
		FPS: 60,
		HUD: true,
		Arcs: ArcConfig{
			Count:        arc.DefaultCount,
			Radius:       arc.DefaultRadius,
			StartOpacity: arc.DefaultStartOpacity,
			FadeRate:     arc.DefaultFadeRate,
			Divisions:    arc.DefaultDivisions,
			Bulge:        arc.DefaultBulge,
			Color:        "#00ffcc",
		},
		Globe: GlobeConfig{
			Radius:       2,
			Color:        "#0b2a4a",
			Glow:         "#00ffcc",
			GlowStrength: 0.5,
			Opacity:      0.8,
			WireSegments: 32,
			WireOpacity:  0.2,
			Logo:         "BROTEQ",
			SpinRate:     0.002,
		},
		Camera: CameraConfig{
			Distance: 5,
			FOV:      75,
		},
		Audio: AudioConfig{
			Enabled:    false,
			Volume:     0.3,
			Frequency:  880,
			DurationMs: 120,
			SampleRate: 44100,
		},
		Log: LogConfig{
			Path: "neon-globe.log",
		},
	}
}

// Load builds a Config from defaults, the TOML file at path (skipped when empty) and the environment
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := Decode(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode overlays TOML data onto cfg, unknown keys are rejected
func Decode(data []byte, cfg *Config) error {
	d := toml.NewDecoder(bytes.NewReader(data))
	d.DisallowUnknownFields()
	return d.Decode(cfg)
}

// LoadDotEnv reads KEY=VALUE pairs into the process environment without overriding existing variables
// A missing file is not an error
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

var validate = newValidator()

// newValidator adds rgbhex, which accepts exactly what scene.ParseHex accepts
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("rgbhex", func(fl validator.FieldLevel) bool {
		_, err := scene.ParseHex(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks field ranges and color syntax
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// FramePeriod is the ticker interval for the configured FPS
func (c *Config) FramePeriod() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// ArcOptions translates arc settings for arc.New
func (c *Config) ArcOptions() ([]arc.Option, error) {
	color, err := scene.ParseHex(c.Arcs.Color)
	if err != nil {
		return nil, fmt.Errorf("arcs.color: %w", err)
	}
	return []arc.Option{
		arc.WithCount(c.Arcs.Count),
		arc.WithRadius(c.Arcs.Radius),
		arc.WithStartOpacity(c.Arcs.StartOpacity),
		arc.WithFadeRate(c.Arcs.FadeRate),
		arc.WithDivisions(c.Arcs.Divisions),
		arc.WithBulge(c.Arcs.Bulge),
		arc.WithColor(color),
	}, nil
}

// GlobeStyle translates globe settings for scene.NewGlobe
func (c *Config) GlobeStyle() (scene.GlobeStyle, error) {
	style := scene.DefaultGlobeStyle()

	body, err := scene.ParseHex(c.Globe.Color)
	if err != nil {
		return style, fmt.Errorf("globe.color: %w", err)
	}
	glow, err := scene.ParseHex(c.Globe.Glow)
	if err != nil {
		return style, fmt.Errorf("globe.glow: %w", err)
	}

	style.Radius = c.Globe.Radius
	style.Color = body
	style.Emissive = glow
	style.EmissiveIntensity = c.Globe.GlowStrength
	style.Opacity = c.Globe.Opacity
	// Grid hovers just above the body
	style.WireRadius = c.Globe.Radius * 1.005
	style.WireSegments = c.Globe.WireSegments
	style.WireColor = glow
	style.WireOpacity = c.Globe.WireOpacity
	style.Logo = c.Globe.Logo
	style.LogoPos.Y = c.Globe.Radius * 1.5
	return style, nil
}
