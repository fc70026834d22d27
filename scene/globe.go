package scene

import (
	"math"

	"github.com/lixenwraith/neon-globe/vmath"
)

// GlobeStyle describes the static part of the scene
type GlobeStyle struct {
	Radius            float64
	Color             RGB
	Emissive          RGB
	EmissiveIntensity float64
	Opacity           float64

	WireRadius   float64
	WireSegments int
	WireColor    RGB
	WireOpacity  float64

	Logo      string
	LogoPos   vmath.Vec3F
	LogoColor RGB
}

// DefaultGlobeStyle matches the neon globe look: translucent body, cyan glow and grid, logo above the north pole
func DefaultGlobeStyle() GlobeStyle {
	return GlobeStyle{
		Radius:            2,
		Color:             RGBOcean,
		Emissive:          RGBNeonCyan,
		EmissiveIntensity: 0.5,
		Opacity:           0.8,

		WireRadius:   2.01,
		WireSegments: 32,
		WireColor:    RGBNeonCyan,
		WireOpacity:  0.2,

		Logo:      "BROTEQ",
		LogoPos:   vmath.Vec3F{X: 0, Y: 3, Z: 0},
		LogoColor: RGBWhite,
	}
}

// Globe groups the body, grid and logo so they can be added and spun together
type Globe struct {
	Body *Sphere
	Grid *Wireframe
	Logo *Sprite
}

func NewGlobe(style GlobeStyle) *Globe {
	body := NewSphere(style.Radius, style.Color)
	body.Emissive = style.Emissive
	body.EmissiveIntensity = style.EmissiveIntensity
	body.Opacity = style.Opacity

	gl := &Globe{
		Body: body,
		Grid: NewWireframe(style.WireRadius, style.WireSegments, style.WireSegments, style.WireColor, style.WireOpacity),
	}
	if style.Logo != "" {
		gl.Logo = NewSprite(style.Logo, style.LogoPos, style.LogoColor)
	}
	return gl
}

// AddTo registers all parts, body first so the grid and logo draw over it
func (gl *Globe) AddTo(g *Graph) {
	g.Add(gl.Body)
	g.Add(gl.Grid)
	if gl.Logo != nil {
		g.Add(gl.Logo)
	}
}

// Spin advances the Y rotation of the grid, the body is uniformly shaded so only the grid shows the turn
func (gl *Globe) Spin(delta float64) {
	gl.Grid.Rotation = math.Mod(gl.Grid.Rotation+delta, 2*math.Pi)
}
