package scene

import (
	"github.com/ciekce/cpurt/material"
	"github.com/ciekce/cpurt/vec"
)

// Scene bundles the material store, sphere store, and BVH into the
// single object the host constructs, populates, and builds. Materials
// and spheres are append-only and must be created before BuildBVH is
// called; they are never mutated afterwards.
type Scene struct {
	Materials *material.Store
	Spheres   Store
	BVH       BVH
}

// New returns a Scene whose material store already contains the
// reserved id-0 "missing texture" metal.
func New() *Scene {
	return &Scene{Materials: material.NewStore()}
}

func (s *Scene) CreateDiffuse(albedo vec.Vec3) material.Material {
	return s.Materials.CreateDiffuse(albedo)
}

func (s *Scene) CreateMetal(albedo vec.Vec3, roughness float32) material.Material {
	return s.Materials.CreateMetal(albedo, roughness)
}

func (s *Scene) CreateDielectric(color vec.Vec3, refractiveIndex float32) material.Material {
	return s.Materials.CreateDielectric(color, refractiveIndex)
}

func (s *Scene) CreateLight(emitted vec.Vec3) material.Material {
	return s.Materials.CreateLight(emitted)
}

func (s *Scene) CreateSphere(pos vec.Vec3, radius float32, materialID uint32) Sphere {
	return s.Spheres.CreateSphere(pos, radius, materialID)
}

// BuildBVH (re)builds the spatial index over the current sphere set.
// Safe to call again after adding more spheres; the previous BVH is
// discarded. Returns ErrEmptyScene if no spheres have been created —
// the scene is left traceable (every ray becomes a sky miss) rather
// than left in a broken state.
func (s *Scene) BuildBVH() error {
	bvh, err := Build(s.Spheres.Spheres)
	s.BVH = bvh
	return err
}

// TraceRay finds the nearest hit for ray against the scene's BVH, or
// fills result with the sky miss color.
func (s *Scene) TraceRay(result *TraceResult, ray Ray) {
	s.BVH.Trace(result, ray, s.Spheres.Spheres, s.Materials)
}
