package vmath

// QuadBezier3 is a quadratic Bezier curve in 3D
type QuadBezier3 struct {
	Start   Vec3F
	Control Vec3F
	End     Vec3F
}

// Point evaluates the curve at t in [0,1]
// B(t) = (1-t)²·P0 + 2(1-t)t·P1 + t²·P2
func (q QuadBezier3) Point(t float64) Vec3F {
	u := 1 - t
	a := u * u
	b := 2 * u * t
	c := t * t
	return Vec3F{
		X: a*q.Start.X + b*q.Control.X + c*q.End.X,
		Y: a*q.Start.Y + b*q.Control.Y + c*q.End.Y,
		Z: a*q.Start.Z + b*q.Control.Z + c*q.End.Z,
	}
}

// Points samples the curve at divisions+1 evenly spaced parameters, endpoints included
// divisions < 1 is treated as 1
func (q QuadBezier3) Points(divisions int) []Vec3F {
	if divisions < 1 {
		divisions = 1
	}
	pts := make([]Vec3F, divisions+1)
	step := 1.0 / float64(divisions)
	for i := 0; i < divisions; i++ {
		pts[i] = q.Point(float64(i) * step)
	}
	// Exact endpoint, no accumulated step error
	pts[divisions] = q.End
	return pts
}

// BulgedArc builds a curve whose control point is the chord midpoint pushed outward by bulge
func BulgedArc(start, end Vec3F, bulge float64) QuadBezier3 {
	return QuadBezier3{
		Start:   start,
		Control: V3FScale(V3FLerp(start, end, 0.5), bulge),
		End:     end,
	}
}
