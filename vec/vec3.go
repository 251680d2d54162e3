// Package vec provides fixed-width 32-bit floating-point 3- and
// 2-tuples with the arithmetic the path tracer needs: dot, cross,
// length, normalize, reflect, refract, and component-wise min/max/clamp.
package vec

import "github.com/chewxy/math32"

// Vec3 is a 3-component vector of 32-bit floats.
type Vec3 struct {
	X, Y, Z float32
}

// V3 constructs a Vec3 from three components.
func V3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// V3Scalar broadcasts a single scalar to all three components.
func V3Scalar(s float32) Vec3 {
	return Vec3{s, s, s}
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vec3) Div(o Vec3) Vec3 { return Vec3{v.X / o.X, v.Y / o.Y, v.Z / o.Z} }

func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

func (v Vec3) AddScalar(s float32) Vec3 { return Vec3{v.X + s, v.Y + s, v.Z + s} }
func (v Vec3) SubScalar(s float32) Vec3 { return Vec3{v.X - s, v.Y - s, v.Z - s} }
func (v Vec3) Scale(s float32) Vec3     { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) DivScalar(s float32) Vec3 { return Vec3{v.X / s, v.Y / s, v.Z / s} }

func (v Vec3) Dot(o Vec3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length2 returns the squared length, avoiding the Sqrt call.
func (v Vec3) Length2() float32 { return v.Dot(v) }

func (v Vec3) Length() float32 { return math32.Sqrt(v.Length2()) }

// Normalize returns a unit vector in the same direction as v.
// The zero vector normalizes to NaN components, matching the
// unchecked glm::normalize behavior the integrator relies on never
// seeing in practice (see DegenerateRay in the error handling design).
func (v Vec3) Normalize() Vec3 {
	return v.Scale(1.0 / v.Length())
}

func (v Vec3) Min(o Vec3) Vec3 {
	return Vec3{minF32(v.X, o.X), minF32(v.Y, o.Y), minF32(v.Z, o.Z)}
}

func (v Vec3) Max(o Vec3) Vec3 {
	return Vec3{maxF32(v.X, o.X), maxF32(v.Y, o.Y), maxF32(v.Z, o.Z)}
}

// Clamp clamps every component into [lo, hi].
func (v Vec3) Clamp(lo, hi float32) Vec3 {
	return Vec3{clampF32(v.X, lo, hi), clampF32(v.Y, lo, hi), clampF32(v.Z, lo, hi)}
}

// Pow raises every component to the given exponent.
func (v Vec3) Pow(e float32) Vec3 {
	return Vec3{math32.Pow(v.X, e), math32.Pow(v.Y, e), math32.Pow(v.Z, e)}
}

// Reflect reflects v about the normal n (n assumed unit-length).
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Refract bends v across the boundary with surface normal n, given the
// ratio of refractive indices (incident over transmitted). Assumes v
// and n are unit-length and that total internal reflection has already
// been ruled out by the caller (Schlick + critical-angle check).
func (v Vec3) Refract(n Vec3, etaiOverEtat float32) Vec3 {
	cosTheta := minF32(n.Neg().Dot(v), 1.0)
	perp := v.Add(n.Scale(cosTheta)).Scale(etaiOverEtat)
	parallel := n.Scale(-math32.Sqrt(math32.Abs(1.0 - perp.Length2())))
	return perp.Add(parallel)
}

// MixVec3 linearly interpolates between a and b by t.
func MixVec3(a, b Vec3, t float32) Vec3 {
	return a.Scale(1 - t).Add(b.Scale(t))
}

func minF32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxF32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func clampF32(x, lo, hi float32) float32 {
	return minF32(maxF32(x, lo), hi)
}
