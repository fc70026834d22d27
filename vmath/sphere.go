package vmath

import (
	"math"
)

// Spherical converts polar angle theta (from +Z) and azimuth phi to Cartesian
func Spherical(radius, theta, phi float64) Vec3F {
	sinT, cosT := math.Sincos(theta)
	sinP, cosP := math.Sincos(phi)
	return Vec3F{
		X: radius * sinT * cosP,
		Y: radius * sinT * sinP,
		Z: radius * cosT,
	}
}

// UniformSpherePoint maps two uniform variates in [0,1) to a point uniformly distributed over the sphere's area
// phi = 2π·u1, theta = acos(2·u2 - 1); acos of a uniform cosine avoids clustering at the poles
func UniformSpherePoint(radius, u1, u2 float64) Vec3F {
	phi := u1 * 2 * math.Pi
	theta := math.Acos(clampUnit(2*u2 - 1))
	return Spherical(radius, theta, phi)
}

func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
