package render

import (
	"github.com/chewxy/math32"

	"github.com/ciekce/cpurt/camera"
	"github.com/ciekce/cpurt/config"
	"github.com/ciekce/cpurt/material"
	"github.com/ciekce/cpurt/rng"
	"github.com/ciekce/cpurt/scene"
	"github.com/ciekce/cpurt/vec"
)

// scatterEpsilon guards against the degenerate near-zero diffuse
// scatter direction. The check below is deliberately "all three
// components < epsilon" rather than "all three magnitudes < epsilon",
// reproducing a latent bug in the source renderer this was ported
// from (see DESIGN.md — it triggers for any direction whose components
// are all negative, not just near-zero ones).
const scatterEpsilon = 1e-9

// trace runs the bounce loop for a single primary ray, returning its
// radiance contribution before the per-pixel sample average and
// post-processing.
func trace(s *scene.Scene, initial scene.Ray, r *rng.JSF32, cfg config.Config) vec.Vec3 {
	throughput := vec.V3(1, 1, 1)
	ray := initial

	var result scene.TraceResult

	for i := uint32(0); i <= cfg.Bounces; i++ {
		s.TraceRay(&result, ray)

		if result.HitMaterial == nil {
			throughput = throughput.Mul(result.MissColor)
			return throughput
		}

		front := true
		normal := result.HitNormal
		if ray.Dir.Dot(result.HitNormal) > 0 {
			front = false
			normal = normal.Neg()
		}

		ray.Origin = result.HitPos

		m := result.HitMaterial
		bounce := true

		switch m.Kind {
		case material.Diffuse:
			throughput = throughput.Mul(m.Diffuse.Albedo)

			ray.Dir = result.HitNormal.Add(r.NextUnit())
			if ray.Dir.X < scatterEpsilon && ray.Dir.Y < scatterEpsilon && ray.Dir.Z < scatterEpsilon {
				ray.Dir = result.HitNormal
			}

		case material.Metal:
			throughput = throughput.Mul(m.Metal.Albedo)

			dir := ray.Dir.Normalize()
			ray.Dir = dir.Reflect(result.HitNormal).Add(r.NextUnit().Scale(m.Metal.Roughness))
			bounce = ray.Dir.Dot(result.HitNormal) > 0

		case material.Dielectric:
			dir := ray.Dir.Normalize()

			ratio := m.Dielectric.RefractiveIndex
			if front {
				ratio = 1.0 / m.Dielectric.RefractiveIndex
			}

			cosTheta := minF32(normal.Neg().Dot(dir), 1.0)
			sinTheta := math32.Sqrt(1 - cosTheta*cosTheta)

			if ratio*sinTheta > 1.0 || schlick(cosTheta, ratio) > r.NextF32() {
				ray.Dir = dir.Reflect(normal)
			} else {
				ray.Dir = dir.Refract(normal, ratio)
			}

		case material.Light:
			throughput = throughput.Mul(m.Light.Emitted)
			bounce = false
		}

		if !bounce {
			break
		}
	}

	// ran out of bounces (or a metal dove under the surface) without
	// hitting a light or missing entirely: discard all energy.
	if result.HitMaterial != nil && result.HitMaterial.Kind != material.Light {
		return vec.Vec3{}
	}

	return throughput
}

// traceAccumulate samples cfg.Samples primary rays through pixel (x, y)
// and returns their summed (not yet averaged) radiance.
func traceAccumulate(s *scene.Scene, cam *camera.Camera, r *rng.JSF32, x, y uint32, cfg config.Config) vec.Vec3 {
	sum := vec.Vec3{}
	for i := uint32(0); i < cfg.Samples; i++ {
		ray := cam.Ray(r, x, y)
		sum = sum.Add(trace(s, ray, r, cfg))
	}
	return sum
}

func schlick(cosTheta, refractiveIndex float32) float32 {
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 *= r0
	return r0 + (1-r0)*math32.Pow(1-cosTheta, 5)
}

func minF32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
