package scene

import "github.com/ciekce/cpurt/vec"

// Sphere is the only primitive the tracer supports. Radius2 is cached
// at creation time from the same multiply used to derive it, so the
// intersector never recomputes it per ray.
type Sphere struct {
	Pos        vec.Vec3
	Radius     float32
	Radius2    float32
	MaterialID uint32
}

// AABB returns the sphere's axis-aligned bounding box.
func (s Sphere) AABB() AABB {
	r := vec.V3Scalar(s.Radius)
	return AABB{Min: s.Pos.Sub(r), Max: s.Pos.Add(r)}
}

// AABB is an axis-aligned bounding box with Min <= Max component-wise.
type AABB struct {
	Min, Max vec.Vec3
}

// Union returns the smallest AABB enclosing both a and b.
func Union(a, b AABB) AABB {
	return AABB{Min: a.Min.Min(b.Min), Max: a.Max.Max(b.Max)}
}

// Store is the append-only sphere table backing a scene.
type Store struct {
	Spheres []Sphere
}

// CreateSphere appends a new sphere and returns it.
func (s *Store) CreateSphere(pos vec.Vec3, radius float32, materialID uint32) Sphere {
	sp := Sphere{
		Pos:        pos,
		Radius:     radius,
		Radius2:    radius * radius,
		MaterialID: materialID,
	}
	s.Spheres = append(s.Spheres, sp)
	return sp
}
