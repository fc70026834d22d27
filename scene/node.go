package scene

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/neon-globe/vmath"
)

// Node is anything the graph can hold
type Node interface {
	ID() uuid.UUID
}

type base struct {
	id uuid.UUID
}

func newBase() base {
	return base{id: uuid.New()}
}

func (b *base) ID() uuid.UUID {
	return b.id
}

// Sphere is the shaded globe body
type Sphere struct {
	base
	Radius            float64
	Color             RGB
	Emissive          RGB
	EmissiveIntensity float64
	Opacity           float64
}

// NewSphere creates a sphere with an opaque base color and no glow
func NewSphere(radius float64, color RGB) *Sphere {
	return &Sphere{
		base:    newBase(),
		Radius:  radius,
		Color:   color,
		Opacity: 1,
	}
}

// Wireframe is a latitude/longitude grid drawn over a sphere
type Wireframe struct {
	base
	Radius         float64
	WidthSegments  int // meridians
	HeightSegments int // bands between poles
	Color          RGB
	Opacity        float64
	Rotation       float64 // radians around Y
}

func NewWireframe(radius float64, widthSegments, heightSegments int, color RGB, opacity float64) *Wireframe {
	return &Wireframe{
		base:           newBase(),
		Radius:         radius,
		WidthSegments:  widthSegments,
		HeightSegments: heightSegments,
		Color:          color,
		Opacity:        opacity,
	}
}

// Sprite is camera-facing text anchored at a world position
type Sprite struct {
	base
	Text     string
	Position vmath.Vec3F
	Color    RGB
}

func NewSprite(text string, pos vmath.Vec3F, color RGB) *Sprite {
	return &Sprite{
		base:     newBase(),
		Text:     text,
		Position: pos,
		Color:    color,
	}
}

// Line is a polyline with a transparent basic material
type Line struct {
	base
	Points  []vmath.Vec3F
	Color   RGB
	opacity float64
}

// NewLine takes ownership of points
func NewLine(points []vmath.Vec3F, color RGB, opacity float64) *Line {
	l := &Line{
		base:   newBase(),
		Points: points,
		Color:  color,
	}
	l.SetOpacity(opacity)
	return l
}

// SetOpacity clamps to [0,1]
func (l *Line) SetOpacity(o float64) {
	switch {
	case o < 0:
		o = 0
	case o > 1:
		o = 1
	}
	l.opacity = o
}

func (l *Line) Opacity() float64 {
	return l.opacity
}
