package scene

import "github.com/chewxy/math32"

// HitEpsilon is the minimum accepted ray parameter, used both to reject
// self-intersection at the origin and as the AABB slab-test floor.
const HitEpsilon = 0.001

// IntersectSphere returns the nearest t > HitEpsilon at which ray hits
// sphere, or -1 if it misses (or both roots fall at/before the
// epsilon).
func IntersectSphere(ray Ray, sp Sphere) float32 {
	oc := ray.Origin.Sub(sp.Pos)

	a := ray.Dir.Dot(ray.Dir)
	b := oc.Dot(ray.Dir)
	c := oc.Dot(oc) - sp.Radius2

	disc := b*b - a*c
	if disc < 0 {
		return -1
	}

	h := math32.Sqrt(disc)

	t := (-b - h) / a
	if t <= HitEpsilon {
		t = (-b + h) / a
		if t <= HitEpsilon {
			return -1
		}
	}

	return t
}

// IntersectAABB reports whether invRay hits box before parameter t,
// using the slab test: the intersection of three 1-D intervals.
func IntersectAABB(invRay InvRay, box AABB, t float32) bool {
	tx1 := (box.Min.X - invRay.Origin.X) * invRay.InvDir.X
	tx2 := (box.Max.X - invRay.Origin.X) * invRay.InvDir.X
	tMin, tMax := minMax(tx1, tx2)

	ty1 := (box.Min.Y - invRay.Origin.Y) * invRay.InvDir.Y
	ty2 := (box.Max.Y - invRay.Origin.Y) * invRay.InvDir.Y
	tyMin, tyMax := minMax(ty1, ty2)
	tMin = maxF32(tMin, tyMin)
	tMax = minF32(tMax, tyMax)

	tz1 := (box.Min.Z - invRay.Origin.Z) * invRay.InvDir.Z
	tz2 := (box.Max.Z - invRay.Origin.Z) * invRay.InvDir.Z
	tzMin, tzMax := minMax(tz1, tz2)
	tMin = maxF32(tMin, tzMin)
	tMax = minF32(tMax, tzMax)

	return tMax >= maxF32(HitEpsilon, tMin) && tMin < t
}

func minMax(a, b float32) (float32, float32) {
	if a < b {
		return a, b
	}
	return b, a
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
