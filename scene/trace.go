package scene

import (
	"math"

	"github.com/ciekce/cpurt/internal/errs"
	"github.com/ciekce/cpurt/material"
	"github.com/ciekce/cpurt/vec"
)

var (
	skyHorizon = vec.V3(1.0, 1.0, 1.0)
	skyZenith  = vec.V3(0.5, 0.7, 1.0)
)

// TraceResult is populated by Trace for a single primary or bounce ray.
// Either HitMaterial is non-nil (a hit, with HitPos/HitNormal valid) or
// it is nil and MissColor holds the sky color — never both.
type TraceResult struct {
	HitMaterial *material.Material
	HitPos      vec.Vec3
	HitNormal   vec.Vec3
	MissColor   vec.Vec3
}

// traceContext is BVH traversal scratch: the best sphere seen so far
// and its hit parameter.
type traceContext struct {
	sphereIdx int32
	t         float32
}

// Trace walks the BVH from the root for ray, filling result with
// either the nearest hit's material/position/normal, or the
// procedural sky miss color.
func (b *BVH) Trace(result *TraceResult, ray Ray, spheres []Sphere, materials *material.Store) {
	ctx := traceContext{sphereIdx: -1, t: float32(math.Inf(1))}

	if len(b.Nodes) > 0 {
		invRay := NewInvRay(ray)
		b.walk(&ctx, ray, invRay, 0, spheres)
	}

	if ctx.sphereIdx >= 0 {
		sp := spheres[ctx.sphereIdx]
		pos := ray.At(ctx.t)
		result.HitMaterial = resolveMaterial(materials, sp.MaterialID)
		result.HitPos = pos
		result.HitNormal = pos.Sub(sp.Pos).Normalize()
		return
	}

	result.HitMaterial = nil
	result.MissColor = missColor(ray)
}

func (b *BVH) walk(ctx *traceContext, ray Ray, invRay InvRay, node uint32, spheres []Sphere) {
	n := b.Nodes[node]

	if n.isLeaf() {
		t := IntersectSphere(ray, spheres[n.SphereIdx])
		if t > 0 && t < ctx.t {
			ctx.sphereIdx = n.SphereIdx
			ctx.t = t
		}
		return
	}

	if !IntersectAABB(invRay, n.AABB, ctx.t) {
		return
	}

	b.walk(ctx, ray, invRay, n.Left, spheres)
	b.walk(ctx, ray, invRay, n.Right, spheres)
}

// TraceBruteForce is an O(n) fallback over every sphere, with no BVH
// acceleration. Used by tests to check BVH/brute-force equivalence
// (see scene_test.go); not used by the renderer.
func TraceBruteForce(result *TraceResult, ray Ray, spheres []Sphere, materials *material.Store) {
	best := int32(-1)
	bestT := float32(math.Inf(1))

	for i := range spheres {
		t := IntersectSphere(ray, spheres[i])
		if t > 0 && t < bestT {
			best = int32(i)
			bestT = t
		}
	}

	if best >= 0 {
		sp := spheres[best]
		pos := ray.At(bestT)
		result.HitMaterial = resolveMaterial(materials, sp.MaterialID)
		result.HitPos = pos
		result.HitNormal = pos.Sub(sp.Pos).Normalize()
		return
	}

	result.HitMaterial = nil
	result.MissColor = missColor(ray)
}

func missColor(ray Ray) vec.Vec3 {
	t := ray.Dir.Normalize().Y*0.5 + 0.5
	return vec.MixVec3(skyHorizon, skyZenith, t)
}

// resolveMaterial looks up sp's material, falling back to the store's
// reserved id-0 "missing texture" material and logging the error if
// the sphere somehow carries an id the store never handed out.
func resolveMaterial(materials *material.Store, id uint32) *material.Material {
	m, err := materials.Material(id)
	if err != nil {
		errs.Log(err)
		m, _ = materials.Material(0)
	}
	return m
}
