package arc

import (
	"fmt"

	"github.com/lixenwraith/neon-globe/scene"
)

// Defaults of the arc effect
const (
	DefaultCount        = 3
	DefaultRadius       = 2.0
	DefaultStartOpacity = 0.4
	DefaultFadeRate     = -0.004
	DefaultDivisions    = 50 // 51 sampled points
	DefaultBulge        = 1.5
)

const fadeEpsilon = 1e-9

var DefaultColor = scene.RGBNeonCyan

type settings struct {
	count        int
	radius       float64
	startOpacity float64
	fadeRate     float64
	divisions    int
	bulge        float64
	color        scene.RGB
	sampler      Sampler
	onRespawn    func(old, fresh *Connection)
}

func defaultSettings() settings {
	return settings{
		count:        DefaultCount,
		radius:       DefaultRadius,
		startOpacity: DefaultStartOpacity,
		fadeRate:     DefaultFadeRate,
		divisions:    DefaultDivisions,
		bulge:        DefaultBulge,
		color:        DefaultColor,
		sampler:      BezierSampler,
	}
}

func (s *settings) validate() error {
	switch {
	case s.count < 1:
		return fmt.Errorf("arc count must be positive, got %d", s.count)
	case s.radius <= 0:
		return fmt.Errorf("arc radius must be positive, got %v", s.radius)
	case s.startOpacity <= 0 || s.startOpacity > 1:
		return fmt.Errorf("arc start opacity must be in (0,1], got %v", s.startOpacity)
	case s.fadeRate >= 0:
		return fmt.Errorf("arc fade rate must be negative, got %v", s.fadeRate)
	case s.divisions < 1:
		return fmt.Errorf("arc divisions must be positive, got %d", s.divisions)
	case s.sampler == nil:
		return fmt.Errorf("arc sampler is nil")
	}
	return nil
}

// Option tunes an Animator
type Option func(*settings)

func WithCount(n int) Option {
	return func(s *settings) { s.count = n }
}

func WithRadius(r float64) Option {
	return func(s *settings) { s.radius = r }
}

func WithStartOpacity(o float64) Option {
	return func(s *settings) { s.startOpacity = o }
}

// WithFadeRate sets the per-tick opacity increment, must be negative
func WithFadeRate(rate float64) Option {
	return func(s *settings) { s.fadeRate = rate }
}

// WithDivisions sets curve subdivisions; the polyline has divisions+1 points
func WithDivisions(n int) Option {
	return func(s *settings) { s.divisions = n }
}

// WithBulge scales the chord midpoint outward to form the control point
func WithBulge(b float64) Option {
	return func(s *settings) { s.bulge = b }
}

func WithColor(c scene.RGB) Option {
	return func(s *settings) { s.color = c }
}

func WithSampler(sm Sampler) Option {
	return func(s *settings) { s.sampler = sm }
}

// WithRespawnHook is called after a faded connection has been replaced
func WithRespawnHook(fn func(old, fresh *Connection)) Option {
	return func(s *settings) { s.onRespawn = fn }
}
