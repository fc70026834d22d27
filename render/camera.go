package render

import (
	"math"

	"github.com/lixenwraith/neon-globe/vmath"
)

// Terminal cells are roughly twice as tall as wide
const CellAspect = 2.0

// Camera is a perspective camera on +Z looking at the origin with Y up
// Depth values are distances along the view axis, Distance - p.Z
type Camera struct {
	Distance float64
	Near     float64

	tanHalf float64
	width   int
	height  int
}

// NewCamera creates a camera at (0,0,distance) with a vertical field of view in degrees
func NewCamera(distance, fovDeg float64) *Camera {
	c := &Camera{
		Distance: distance,
		Near:     0.1,
	}
	c.SetFOV(fovDeg)
	return c
}

func (c *Camera) SetFOV(fovDeg float64) {
	c.tanHalf = math.Tan(fovDeg * math.Pi / 360)
}

// SetViewport sets the cell grid the camera projects onto
func (c *Camera) SetViewport(width, height int) {
	c.width = width
	c.height = height
}

// aspect is the visual width/height ratio of the viewport
func (c *Camera) aspect() float64 {
	if c.height == 0 {
		return 1
	}
	return float64(c.width) / (float64(c.height) * CellAspect)
}

// Project maps a world point to continuous cell coordinates
// ok is false for points at or behind the near plane
func (c *Camera) Project(p vmath.Vec3F) (sx, sy, depth float64, ok bool) {
	depth = c.Distance - p.Z
	if depth < c.Near || c.width == 0 || c.height == 0 {
		return 0, 0, depth, false
	}
	ndcX := p.X / (depth * c.tanHalf * c.aspect())
	ndcY := p.Y / (depth * c.tanHalf)
	sx = (ndcX + 1) / 2 * float64(c.width)
	sy = (1 - ndcY) / 2 * float64(c.height)
	return sx, sy, depth, true
}

// Ray returns the eye position and an unnormalized direction through cell coordinates (sx, sy)
// dir.Z is -1, so the ray parameter t of a hit equals its depth
func (c *Camera) Ray(sx, sy float64) (origin, dir vmath.Vec3F) {
	ndcX := sx/float64(c.width)*2 - 1
	ndcY := 1 - sy/float64(c.height)*2
	origin = vmath.Vec3F{X: 0, Y: 0, Z: c.Distance}
	dir = vmath.Vec3F{
		X: ndcX * c.tanHalf * c.aspect(),
		Y: ndcY * c.tanHalf,
		Z: -1,
	}
	return origin, dir
}

// intersectSphere returns the nearest positive ray parameter hitting a sphere centered at the origin
func intersectSphere(origin, dir vmath.Vec3F, radius float64) (float64, bool) {
	a := vmath.V3FDot(dir, dir)
	b := 2 * vmath.V3FDot(origin, dir)
	cc := vmath.V3FDot(origin, origin) - radius*radius
	disc := b*b - 4*a*cc
	if disc < 0 {
		return 0, false
	}
	t := (-b - math.Sqrt(disc)) / (2 * a)
	if t <= 0 {
		return 0, false
	}
	return t, true
}
