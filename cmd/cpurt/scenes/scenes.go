// Package scenes holds the two demo scene builders carried over from
// the original renderer's main.cpp: a small hero shot and a large
// randomized field of spheres. Neither is part of the core renderer;
// both exist to give the CLI host something concrete to point a
// camera at.
package scenes

import (
	"github.com/ciekce/cpurt/rng"
	"github.com/ciekce/cpurt/scene"
	"github.com/ciekce/cpurt/vec"
)

// BuildHero recreates initTestScene: a diffuse ground plane under a
// dielectric sphere, a diffuse center sphere, and a light sphere,
// arranged for a straight-on shot. Returns the center sphere's
// position, a natural default camera target.
func BuildHero(s *scene.Scene) vec.Vec3 {
	ground := s.CreateDiffuse(vec.V3(0.8, 0.8, 0.0)).ID
	left := s.CreateDielectric(vec.V3(1.0, 1.0, 1.0), 1.52).ID
	center := s.CreateDiffuse(vec.V3(0.1, 0.2, 0.5)).ID
	right := s.CreateLight(vec.V3(-4.8, -3.6, -1.2)).ID

	s.CreateSphere(vec.V3(0.0, -100.5, 0.0), 100.0, ground)
	s.CreateSphere(vec.V3(-1.0, 0.0, 0.0), 0.5, left)
	centerSphere := s.CreateSphere(vec.V3(0.0, 0.0, 0.0), 0.5, center)
	s.CreateSphere(vec.V3(1.0, 0.0, 0.0), 0.5, right)

	return centerSphere.Pos
}

// BuildField recreates initBigScene: a ground plane plus a roughly
// 22x22 grid of small randomly-materialed spheres (skipping any whose
// center lies within 0.9 of (4,0.2,0), beside the hero sphere at
// (4,1,0); the other two hero spheres at (0,1,0) and (-4,1,0) get no
// such clearance), seeded deterministically so the same seed always
// produces the same field.
func BuildField(s *scene.Scene, seed uint32) {
	r := rng.New(&seed)

	ground := s.CreateDiffuse(vec.V3(0.5, 0.5, 0.5)).ID
	s.CreateSphere(vec.V3(0.0, -1000.0, 0.0), 1000.0, ground)

	glass := s.CreateDielectric(vec.V3(1.0, 1.0, 1.0), 1.52).ID

	avoid := vec.V3(4.0, 0.2, 0.0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := vec.V3(
				float32(a)+0.9*r.NextF32(),
				0.2,
				float32(b)+0.9*r.NextF32(),
			)

			if center.Sub(avoid).Length() <= 0.9 {
				continue
			}

			var materialID uint32
			switch selector := r.NextF32(); {
			case selector < 0.8:
				materialID = s.CreateDiffuse(r.NextColor().Mul(r.NextColor())).ID
			case selector < 0.95:
				materialID = s.CreateMetal(r.NextColor().Scale(0.5).AddScalar(0.5), r.NextF32()*0.5).ID
			default:
				materialID = glass
			}

			s.CreateSphere(center, 0.2, materialID)
		}
	}

	s.CreateSphere(vec.V3(0.0, 1.0, 0.0), 1.0, glass)

	brown := s.CreateDiffuse(vec.V3(0.4, 0.2, 0.1)).ID
	s.CreateSphere(vec.V3(-4.0, 1.0, 0.0), 1.0, brown)

	steel := s.CreateMetal(vec.V3(0.7, 0.6, 0.5), 0.0).ID
	s.CreateSphere(vec.V3(4.0, 1.0, 0.0), 1.0, steel)
}
