package arc

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/neon-globe/scene"
	"github.com/lixenwraith/neon-globe/vmath"
)

// Connection is one fading arc between two random points on the globe
type Connection struct {
	ID       uuid.UUID
	Curve    vmath.QuadBezier3
	Points   []vmath.Vec3F
	Opacity  float64
	FadeRate float64

	line *scene.Line
}

// Line returns the drawable registered for this connection
func (c *Connection) Line() *scene.Line {
	return c.line
}

// Faded reports whether opacity has reached zero
// Opacity within fadeEpsilon of zero counts, since 0.4 - 100×0.004 is not exactly 0 in float64
func (c *Connection) Faded() bool {
	return c.Opacity <= fadeEpsilon
}

// step applies one tick of fade and pushes opacity to the material
func (c *Connection) step() {
	c.Opacity += c.FadeRate
	if c.Faded() {
		c.Opacity = 0
	}
	c.line.SetOpacity(c.Opacity)
}
