package scene

import "github.com/ciekce/cpurt/vec"

// Ray is an origin + direction. Direction need not be unit-length; the
// intersector is parameter-invariant.
type Ray struct {
	Origin, Dir vec.Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) vec.Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// InvRay precomputes 1/dir for the AABB slab test.
type InvRay struct {
	Origin, InvDir vec.Vec3
}

// NewInvRay precomputes the inverse-direction ray used by the BVH slab
// test.
func NewInvRay(r Ray) InvRay {
	return InvRay{
		Origin: r.Origin,
		InvDir: vec.V3(1/r.Dir.X, 1/r.Dir.Y, 1/r.Dir.Z),
	}
}
