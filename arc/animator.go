// Package arc generates the random surface-to-surface arcs around the globe
// and runs their fade and respawn cycle, one step per rendered frame.
package arc

import (
	"errors"

	"github.com/google/uuid"

	"github.com/lixenwraith/neon-globe/scene"
	"github.com/lixenwraith/neon-globe/vmath"
)

// Stats counts lifecycle events since construction
type Stats struct {
	Live      int
	Generated uint64
	Respawned uint64
	Ticks     uint64
}

// Animator owns the live connections
// Not safe for concurrent use; the render loop is the only caller
type Animator struct {
	cfg   settings
	scene Scene
	rng   Rand

	conns []*Connection
	stats Stats
}

// New builds an Animator without any live connections, call Populate to spawn the initial set
func New(sc Scene, rng Rand, opts ...Option) (*Animator, error) {
	if sc == nil {
		return nil, errors.New("arc: scene is nil")
	}
	if rng == nil {
		return nil, errors.New("arc: random source is nil")
	}

	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Animator{
		cfg:   cfg,
		scene: sc,
		rng:   rng,
		conns: make([]*Connection, 0, cfg.count),
	}, nil
}

// Populate tops the live set up to the configured count
func (a *Animator) Populate() {
	for len(a.conns) < a.cfg.count {
		a.conns = append(a.conns, a.Generate())
	}
}

// Generate creates a connection between two uniform random surface points and adds its line to the scene
// The caller owns the returned connection; Populate and Tick keep it in the live set
func (a *Animator) Generate() *Connection {
	// Variate order: phi1, theta1, phi2, theta2
	start := vmath.UniformSpherePoint(a.cfg.radius, a.rng.Float64(), a.rng.Float64())
	end := vmath.UniformSpherePoint(a.cfg.radius, a.rng.Float64(), a.rng.Float64())

	curve := vmath.BulgedArc(start, end, a.cfg.bulge)
	points := a.cfg.sampler.Sample(curve, a.cfg.divisions)

	c := &Connection{
		ID:       uuid.New(),
		Curve:    curve,
		Points:   points,
		Opacity:  a.cfg.startOpacity,
		FadeRate: a.cfg.fadeRate,
		line:     scene.NewLine(points, a.cfg.color, a.cfg.startOpacity),
	}
	a.scene.Add(c.line)
	a.stats.Generated++
	return c
}

// Tick fades every live connection by one step and replaces the ones that reached zero in place
func (a *Animator) Tick() {
	a.stats.Ticks++
	for i, c := range a.conns {
		c.step()
		if !c.Faded() {
			continue
		}
		a.scene.Remove(c.line)
		fresh := a.Generate()
		a.conns[i] = fresh
		a.stats.Respawned++
		if a.cfg.onRespawn != nil {
			a.cfg.onRespawn(c, fresh)
		}
	}
}

// Reset drops every live connection and spawns a new set
func (a *Animator) Reset() {
	for _, c := range a.conns {
		a.scene.Remove(c.line)
	}
	a.conns = a.conns[:0]
	a.Populate()
}

// Connections returns a copy of the live set
func (a *Animator) Connections() []*Connection {
	out := make([]*Connection, len(a.conns))
	copy(out, a.conns)
	return out
}

func (a *Animator) Stats() Stats {
	s := a.stats
	s.Live = len(a.conns)
	return s
}
