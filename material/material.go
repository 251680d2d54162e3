// Package material holds the append-only table of surface materials
// referenced by scene spheres: a tagged variant dispatched by exhaustive
// switch in the integrator's hot path, never by interface/vtable call.
package material

import (
	"errors"

	"github.com/ciekce/cpurt/vec"
)

// ErrInvalidMaterialID is returned by (*Store).Material when id is not
// a dense id previously handed out by one of the Create* methods.
var ErrInvalidMaterialID = errors.New("material: id out of range")

// Kind identifies which variant of Material is populated.
type Kind uint8

const (
	Diffuse Kind = iota
	Metal
	Dielectric
	Light
)

// DiffuseData is a Lambertian surface: scatter direction is cosine-ish
// (normal + random unit vector), attenuated by Albedo.
type DiffuseData struct {
	Albedo vec.Vec3
}

// MetalData is a fuzzy mirror: reflect the incoming direction about the
// normal, then perturb by Roughness times a random unit vector.
type MetalData struct {
	Albedo    vec.Vec3
	Roughness float32
}

// DielectricData is a refractive boundary. Color is carried through
// creation but never applied to throughput by the integrator — see
// DESIGN.md's "unused dielectric tint" entry.
type DielectricData struct {
	Color           vec.Vec3
	RefractiveIndex float32
}

// LightData is an emissive surface; Emitted acts directly as radiance
// and is not clamped to [0,1].
type LightData struct {
	Emitted vec.Vec3
}

// Material is a tagged union over the four supported surface types,
// identified by a dense, append-only ID allocated at creation time.
type Material struct {
	ID   uint32
	Kind Kind

	Diffuse    DiffuseData
	Metal      MetalData
	Dielectric DielectricData
	Light      LightData
}

// Store is the append-only material table. Material ID 0 is always the
// magenta "missing texture" metal, created by NewStore.
type Store struct {
	materials []Material
}

// NewStore creates a material store pre-populated with the id-0
// "missing texture" metal (albedo (1,0,1), zero roughness).
func NewStore() *Store {
	s := &Store{}
	s.CreateMetal(vec.V3(1, 0, 1), 0)
	return s
}

func (s *Store) nextID() uint32 {
	return uint32(len(s.materials))
}

// CreateDiffuse appends a diffuse material, clamping albedo to [0,1]^3.
func (s *Store) CreateDiffuse(albedo vec.Vec3) Material {
	m := Material{
		ID:      s.nextID(),
		Kind:    Diffuse,
		Diffuse: DiffuseData{Albedo: albedo.Clamp(0, 1)},
	}
	s.materials = append(s.materials, m)
	return m
}

// CreateMetal appends a metal material, clamping albedo to [0,1]^3 and
// roughness to [0,1].
func (s *Store) CreateMetal(albedo vec.Vec3, roughness float32) Material {
	m := Material{
		ID:   s.nextID(),
		Kind: Metal,
		Metal: MetalData{
			Albedo:    albedo.Clamp(0, 1),
			Roughness: clampF32(roughness, 0, 1),
		},
	}
	s.materials = append(s.materials, m)
	return m
}

// CreateDielectric appends a dielectric material. refractiveIndex must
// be > 0; color is stored but unused by the integrator (see DESIGN.md).
func (s *Store) CreateDielectric(color vec.Vec3, refractiveIndex float32) Material {
	m := Material{
		ID:   s.nextID(),
		Kind: Dielectric,
		Dielectric: DielectricData{
			Color:           color,
			RefractiveIndex: refractiveIndex,
		},
	}
	s.materials = append(s.materials, m)
	return m
}

// CreateLight appends a light material. emitted is unbounded radiance.
func (s *Store) CreateLight(emitted vec.Vec3) Material {
	m := Material{
		ID:    s.nextID(),
		Kind:  Light,
		Light: LightData{Emitted: emitted},
	}
	s.materials = append(s.materials, m)
	return m
}

// Material returns the material with the given id, or ErrInvalidMaterialID
// if id was never handed out by a Create* call on this store.
func (s *Store) Material(id uint32) (*Material, error) {
	if id >= uint32(len(s.materials)) {
		return nil, ErrInvalidMaterialID
	}
	return &s.materials[id], nil
}

// Len returns the number of materials in the store, including the
// reserved id-0 entry.
func (s *Store) Len() int {
	return len(s.materials)
}

func clampF32(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
