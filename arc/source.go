package arc

import (
	"math/rand"

	"github.com/lixenwraith/neon-globe/scene"
	"github.com/lixenwraith/neon-globe/vmath"
)

// Scene receives the arc drawables
type Scene interface {
	Add(n scene.Node)
	Remove(n scene.Node)
}

// Sampler turns a curve into a polyline of divisions+1 points
type Sampler interface {
	Sample(curve vmath.QuadBezier3, divisions int) []vmath.Vec3F
}

// SamplerFunc adapts a function to Sampler
type SamplerFunc func(curve vmath.QuadBezier3, divisions int) []vmath.Vec3F

func (f SamplerFunc) Sample(curve vmath.QuadBezier3, divisions int) []vmath.Vec3F {
	return f(curve, divisions)
}

// BezierSampler evaluates the curve at evenly spaced parameters
var BezierSampler Sampler = SamplerFunc(func(curve vmath.QuadBezier3, divisions int) []vmath.Vec3F {
	return curve.Points(divisions)
})

// Rand yields uniform variates in [0,1)
// *rand.Rand satisfies it
type Rand interface {
	Float64() float64
}

// NewSeededRand returns a deterministic source
func NewSeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
