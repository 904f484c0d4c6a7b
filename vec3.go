package gravix2

import "math"

// Vec3 is a 3-vector in Cartesian coordinates.
type Vec3 struct {
	X, Y, Z float64
}

// add returns a+b.
func (a Vec3) add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// sub returns a-b.
func (a Vec3) sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// scale returns s*a.
func (a Vec3) scale(s float64) Vec3 {
	return Vec3{s * a.X, s * a.Y, s * a.Z}
}

// Dot returns the inner product of a and b.
func Dot(a, b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Mag returns the Euclidean norm of v.
func Mag(v Vec3) float64 {
	return math.Sqrt(Dot(v, v))
}
